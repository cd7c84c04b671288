package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/sexp-format/go-sexp/ir"
)

type EncState struct {
	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the S-expression text for node to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(n *ir.Node, w io.Writer, es *EncState) error {
	if n == nil {
		// vacated slots are never encoded; a nil at the API boundary
		// reads as the nil marker
		return writeString(w, es.color(ir.NilType, ValueColor, "#nil"))
	}
	switch n.Type {
	case ir.NilType:
		return writeString(w, es.color(n.Type, ValueColor, "#nil"))
	case ir.NullType:
		return writeString(w, es.color(n.Type, SepColor, "()"))
	case ir.BoolType:
		v := "#f"
		if n.Bool {
			v = "#t"
		}
		return writeString(w, es.color(n.Type, ValueColor, v))
	case ir.NumberType:
		return writeString(w, es.color(n.Type, ValueColor, numberText(n)))
	case ir.CharType:
		return writeString(w, es.color(n.Type, ValueColor, charText(n.Char)))
	case ir.StringType:
		return writeString(w, es.color(n.Type, ValueColor, quoteString(n.String)))
	case ir.SymbolType:
		return writeString(w, es.color(n.Type, ValueColor, n.String))
	case ir.KeywordType:
		return writeString(w, es.color(n.Type, ValueColor, ":"+n.String))
	case ir.BytesType:
		return encodeBytes(n, w, es)
	case ir.ConsType:
		return encodeCons(n, w, es)
	case ir.VectorType:
		return encodeVector(n, w, es)
	}
	return fmt.Errorf("%w: type %d", ErrBadType, int(n.Type))
}

func encodeCons(n *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es.color(n.Type, SepColor, "(")); err != nil {
		return err
	}
	for {
		if err := encode(n.Car, w, es); err != nil {
			return err
		}
		cdr := n.Cdr
		if cdr.IsCons() {
			if err := writeString(w, " "); err != nil {
				return err
			}
			n = cdr
			continue
		}
		if !cdr.IsNull() {
			if err := writeString(w, es.color(n.Type, SepColor, " . ")); err != nil {
				return err
			}
			if err := encode(cdr, w, es); err != nil {
				return err
			}
		}
		return writeString(w, es.color(n.Type, SepColor, ")"))
	}
}

func encodeVector(n *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es.color(n.Type, SepColor, "#(")); err != nil {
		return err
	}
	for i, v := range n.Values {
		if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.color(n.Type, SepColor, ")"))
}

func encodeBytes(n *ir.Node, w io.Writer, es *EncState) error {
	var sb strings.Builder
	sb.WriteString("#u8(")
	for i, b := range n.Bytes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(b), 10))
	}
	sb.WriteByte(')')
	return writeString(w, es.color(n.Type, ValueColor, sb.String()))
}

func numberText(n *ir.Node) string {
	if n.Int64 != nil {
		return strconv.FormatInt(*n.Int64, 10)
	}
	if n.Float64 != nil {
		v := strconv.FormatFloat(*n.Float64, 'g', -1, 64)
		// keep floats round-trippable as floats
		if !strings.ContainsAny(v, ".eE") && !strings.Contains(v, "Inf") && v != "NaN" {
			v += ".0"
		}
		return v
	}
	return n.Number
}

func charText(r rune) string {
	switch r {
	case '\n':
		return `#\newline`
	case ' ':
		return `#\space`
	case '\t':
		return `#\tab`
	case '\r':
		return `#\return`
	}
	return `#\` + string(r)
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}
