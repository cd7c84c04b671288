package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/sexp-format/go-sexp/debug"
	"github.com/signadot/sexp-format/go-sexp/ir"
)

// Parse parses one S-expression from d.  Trailing whitespace and comments
// are allowed; any further form is an error (see ParseAll).
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	s := &scanner{d: d, line: 1, col: 1, opts: pOpts}
	res, err := s.parseValue()
	if err != nil {
		return nil, err
	}
	s.skipSpace()
	if !s.eof() {
		return nil, s.errf("trailing input after expression")
	}
	if debug.Parse() {
		debug.Logf("parse: %d bytes, ok\n", len(d))
	}
	return res, nil
}

// ParseString parses one S-expression from s.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseAll parses every top-level S-expression in d.
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := newParseOpts(opts)
	s := &scanner{d: d, line: 1, col: 1, opts: pOpts}
	var res []*ir.Node
	for {
		s.skipSpace()
		if s.eof() {
			return res, nil
		}
		v, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
}

type scanner struct {
	d         []byte
	off       int
	line, col int
	opts      *parseOpts
}

func (s *scanner) eof() bool {
	return s.off >= len(s.d)
}

func (s *scanner) peek() byte {
	return s.d[s.off]
}

func (s *scanner) next() byte {
	c := s.d[s.off]
	s.off++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

func (s *scanner) errf(msg string, args ...any) error {
	where := fmt.Sprintf("%d:%d", s.line, s.col)
	if s.opts.filename != "" {
		where = s.opts.filename + ":" + where
	}
	return fmt.Errorf("%w: %s: %s", ErrParse, where, fmt.Sprintf(msg, args...))
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.next()
		case ';':
			for !s.eof() && s.peek() != '\n' {
				s.next()
			}
		default:
			return
		}
	}
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', '"', ';':
		return true
	}
	return false
}

func (s *scanner) parseValue() (*ir.Node, error) {
	s.skipSpace()
	if s.eof() {
		return nil, s.errf("unexpected end of input")
	}
	switch c := s.peek(); c {
	case '(':
		s.next()
		return s.parseListTail()
	case ')':
		return nil, s.errf("unexpected ')'")
	case '"':
		s.next()
		return s.parseString()
	case '\'':
		s.next()
		quoted, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		sym := s.node()
		sym.Type = ir.SymbolType
		sym.String = "quote"
		return s.list2(sym, quoted), nil
	case '#':
		return s.parseHash()
	case ':':
		s.next()
		tok := s.token()
		if tok == "" {
			return nil, s.errf("empty keyword")
		}
		n := s.node()
		n.Type = ir.KeywordType
		n.String = tok
		return n, nil
	default:
		return s.parseAtom()
	}
}

// parseListTail parses the remainder of a list after '(': elements, an
// optional dotted tail, and the closing ')'.
func (s *scanner) parseListTail() (*ir.Node, error) {
	var head, last *ir.Node
	for {
		s.skipSpace()
		if s.eof() {
			return nil, s.errf("unterminated list")
		}
		if s.peek() == ')' {
			s.next()
			if head == nil {
				n := s.node()
				n.Type = ir.NullType
				return n, nil
			}
			tail := s.node()
			tail.Type = ir.NullType
			last.Cdr = tail
			return head, nil
		}
		if s.peek() == '.' && head != nil && s.dotIsTail() {
			s.next()
			rest, err := s.parseValue()
			if err != nil {
				return nil, err
			}
			s.skipSpace()
			if s.eof() || s.peek() != ')' {
				return nil, s.errf("expected ')' after dotted tail")
			}
			s.next()
			last.Cdr = rest
			return head, nil
		}
		v, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		cell := s.node()
		cell.Type = ir.ConsType
		cell.Car = v
		if head == nil {
			head = cell
		} else {
			last.Cdr = cell
		}
		last = cell
	}
}

// dotIsTail reports whether the '.' at the current offset is the dotted-pair
// separator rather than the start of a number or symbol like .5 or ...
func (s *scanner) dotIsTail() bool {
	if s.off+1 >= len(s.d) {
		return true
	}
	return isDelim(s.d[s.off+1])
}

func (s *scanner) parseString() (*ir.Node, error) {
	var sb strings.Builder
	for {
		if s.eof() {
			return nil, s.errf("unterminated string")
		}
		c := s.next()
		switch c {
		case '"':
			n := s.node()
			n.Type = ir.StringType
			n.String = sb.String()
			return n, nil
		case '\\':
			if s.eof() {
				return nil, s.errf("unterminated string escape")
			}
			e := s.next()
			switch e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case '0':
				sb.WriteByte(0)
			default:
				return nil, s.errf("bad string escape \\%c", e)
			}
		default:
			sb.WriteByte(c)
		}
	}
}

func (s *scanner) parseHash() (*ir.Node, error) {
	s.next() // '#'
	if s.eof() {
		return nil, s.errf("unexpected end of input after '#'")
	}
	switch c := s.peek(); c {
	case 't', 'f':
		tok := s.token()
		switch tok {
		case "t", "true":
			n := s.node()
			n.Type = ir.BoolType
			n.Bool = true
			return n, nil
		case "f", "false":
			n := s.node()
			n.Type = ir.BoolType
			return n, nil
		}
		return nil, s.errf("bad hash token #%s", tok)
	case 'n':
		tok := s.token()
		if tok == "nil" {
			n := s.node()
			n.Type = ir.NilType
			return n, nil
		}
		return nil, s.errf("bad hash token #%s", tok)
	case '\\':
		s.next()
		return s.parseChar()
	case '(':
		s.next()
		return s.parseVectorTail()
	case 'u':
		tok := s.token()
		// token stops before '(' so #u8(...) scans as "u8"
		if tok == "u8" && !s.eof() && s.peek() == '(' {
			s.next()
			return s.parseBytesTail()
		}
		return nil, s.errf("bad hash token #%s", tok)
	default:
		return nil, s.errf("bad hash syntax #%c", c)
	}
}

func (s *scanner) parseChar() (*ir.Node, error) {
	if s.eof() {
		return nil, s.errf("unexpected end of input after '#\\'")
	}
	// a single delimiter char like #\( is itself the payload
	if isDelim(s.peek()) {
		n := s.node()
		n.Type = ir.CharType
		n.Char = rune(s.next())
		return n, nil
	}
	tok := s.token()
	var r rune
	switch tok {
	case "newline":
		r = '\n'
	case "space":
		r = ' '
	case "tab":
		r = '\t'
	case "return":
		r = '\r'
	default:
		var size int
		r, size = utf8.DecodeRuneInString(tok)
		if size != len(tok) || r == utf8.RuneError {
			return nil, s.errf("bad character literal #\\%s", tok)
		}
	}
	n := s.node()
	n.Type = ir.CharType
	n.Char = r
	return n, nil
}

func (s *scanner) parseVectorTail() (*ir.Node, error) {
	n := s.node()
	n.Type = ir.VectorType
	for {
		s.skipSpace()
		if s.eof() {
			return nil, s.errf("unterminated vector")
		}
		if s.peek() == ')' {
			s.next()
			return n, nil
		}
		v, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		n.Values = append(n.Values, v)
	}
}

func (s *scanner) parseBytesTail() (*ir.Node, error) {
	n := s.node()
	n.Type = ir.BytesType
	n.Bytes = []byte{}
	for {
		s.skipSpace()
		if s.eof() {
			return nil, s.errf("unterminated byte vector")
		}
		if s.peek() == ')' {
			s.next()
			return n, nil
		}
		tok := s.token()
		b, err := strconv.ParseUint(tok, 10, 8)
		if err != nil {
			return nil, s.errf("bad byte %q: %v", tok, err)
		}
		n.Bytes = append(n.Bytes, byte(b))
	}
}

func (s *scanner) parseAtom() (*ir.Node, error) {
	tok := s.token()
	if tok == "" {
		return nil, s.errf("unexpected character %q", s.peek())
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		n := s.node()
		n.Type = ir.NumberType
		n.Int64 = &i
		return n, nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		n := s.node()
		n.Type = ir.NumberType
		n.Float64 = &f
		return n, nil
	}
	n := s.node()
	n.Type = ir.SymbolType
	n.String = tok
	return n, nil
}

func (s *scanner) token() string {
	start := s.off
	for !s.eof() && !isDelim(s.peek()) {
		s.next()
	}
	return string(s.d[start:s.off])
}

func (s *scanner) node() *ir.Node {
	if s.opts.pool != nil {
		return s.opts.pool.Get()
	}
	return &ir.Node{}
}

func (s *scanner) list2(a, b *ir.Node) *ir.Node {
	inner := s.node()
	inner.Type = ir.ConsType
	inner.Car = b
	tail := s.node()
	tail.Type = ir.NullType
	inner.Cdr = tail
	outer := s.node()
	outer.Type = ir.ConsType
	outer.Car = a
	outer.Cdr = inner
	return outer
}
