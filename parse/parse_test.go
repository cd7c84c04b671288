package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/sexp-format/go-sexp/encode"
	"github.com/signadot/sexp-format/go-sexp/ir"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string // canonical re-encoding; "" means want == in
	}{
		{"#nil", ""},
		{"()", ""},
		{"#t", ""},
		{"#f", ""},
		{"#true", "#t"},
		{"#false", "#f"},
		{"42", ""},
		{"-7", ""},
		{"1.5", ""},
		{"1e3", "1000.0"},
		{".5", "0.5"},
		{"4.", "4.0"},
		{"sym", ""},
		{"...", ""},
		{"a.b", ""},
		{":kw", ""},
		{`"hi"`, ""},
		{`"a\nb\t\"\\\0"`, ""},
		{`#\x`, ""},
		{`#\λ`, ""},
		{`#\newline`, ""},
		{`#\space`, ""},
		{`#\(`, ""},
		{"(1 2 3)", ""},
		{"(1 . 2)", ""},
		{"(1 2 . 3)", ""},
		{"(a (b (c)))", ""},
		{"#()", ""},
		{"#(1 #t \"s\")", "#(1 #t \"s\")"},
		{"#u8()", ""},
		{"#u8(0 128 255)", ""},
		{"'x", "(quote x)"},
		{"'(1 2)", "(quote (1 2))"},
		{"  ( 1\t2\n3 )  ", "(1 2 3)"},
		{"; comment\n42 ; trailing", "42"},
		{"(#nil . #nil)", ""},
	}
	for _, tc := range tests {
		n, err := ParseString(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		want := tc.want
		if want == "" {
			want = tc.in
		}
		if got := encode.MustString(n); got != want {
			t.Errorf("%q: re-encoded as %q, want %q", tc.in, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"(",
		")",
		"(1 2",
		"(1 . 2 3)",
		"(1 .)",
		`"unterminated`,
		`"bad \q escape"`,
		"#",
		"#q",
		"#truthy",
		"#u8(1 2",
		"#u8(256)",
		"#u8(-1)",
		"#u8(x)",
		"#(1 2",
		`#\`,
		`#\toolong`,
		"1 2",
		":",
		"'",
	}
	for _, in := range tests {
		n, err := ParseString(in)
		if err == nil {
			t.Errorf("%q: parsed as %s, want error", in, encode.MustString(n))
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: error %v does not wrap ErrParse", in, err)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseString("(1 2\n  #q)", WithFilename("in.sexp"))
	if err == nil {
		t.Fatal("no error")
	}
	if !strings.Contains(err.Error(), "in.sexp:2:") {
		t.Errorf("error %q does not carry file and line", err)
	}
}

func TestParseAll(t *testing.T) {
	nodes, err := ParseAll([]byte("1 (2 3) ; two forms so far\n#(4)"))
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d forms, want 3", len(nodes))
	}
	for i, want := range []string{"1", "(2 3)", "#(4)"} {
		if got := encode.MustString(nodes[i]); got != want {
			t.Errorf("form %d = %q, want %q", i, got, want)
		}
	}
	nodes, err = ParseAll([]byte("  ; nothing here\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 0 {
		t.Errorf("got %d forms from empty input", len(nodes))
	}
}

func TestParseDeepInput(t *testing.T) {
	// deep nesting parses and tears down without exhausting the stack
	const depth = 50_000
	in := strings.Repeat("(1 ", depth) + "2" + strings.Repeat(")", depth)
	n, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	var leaves int
	ir.Drop(n, ir.DropLeafFunc(func(*ir.Node) { leaves++ }))
	// each level contributes a 1 and a list terminator, plus the final 2
	if want := depth*2 + 1; leaves != want {
		t.Errorf("got %d leaves, want %d", leaves, want)
	}
}

func TestParseWithPool(t *testing.T) {
	pool := ir.NewNodePool()
	n, err := ParseString("(a #(1 2) . b)", WithPool(pool))
	if err != nil {
		t.Fatal(err)
	}
	ir.Drop(n, ir.DropPool(pool))
	got := pool.Get()
	if got.Type != ir.NilType || got.Car != nil {
		t.Errorf("pooled node not cleared: %+v", got)
	}
}
