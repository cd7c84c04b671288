package encode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/signadot/sexp-format/go-sexp/ir"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"nil node", nil, "#nil"},
		{"nil", ir.Nil(), "#nil"},
		{"null", ir.Null(), "()"},
		{"true", ir.FromBool(true), "#t"},
		{"false", ir.FromBool(false), "#f"},
		{"int", ir.FromInt(-42), "-42"},
		{"float", ir.FromFloat(1.5), "1.5"},
		{"whole float", ir.FromFloat(3), "3.0"},
		{"inf", ir.FromFloat(math.Inf(1)), "+Inf"},
		{"nan", ir.FromFloat(math.NaN()), "NaN"},
		{"raw number", &ir.Node{Type: ir.NumberType, Number: "1/3"}, "1/3"},
		{"char", ir.FromChar('x'), `#\x`},
		{"newline char", ir.FromChar('\n'), `#\newline`},
		{"space char", ir.FromChar(' '), `#\space`},
		{"string", ir.FromString("hi"), `"hi"`},
		{"string escapes", ir.FromString("a\n\"b\"\x00"), `"a\n\"b\"\0"`},
		{"symbol", ir.FromSymbol("foo"), "foo"},
		{"keyword", ir.FromKeyword("k"), ":k"},
		{"bytes", ir.FromBytes([]byte{0, 128, 255}), "#u8(0 128 255)"},
		{"empty bytes", ir.FromBytes(nil), "#u8()"},
		{
			"list",
			ir.FromList([]*ir.Node{ir.FromInt(1), ir.FromSymbol("a")}),
			"(1 a)",
		},
		{
			"dotted",
			ir.Cons(ir.FromInt(1), ir.FromInt(2)),
			"(1 . 2)",
		},
		{
			"improper chain",
			ir.Append([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}, ir.FromInt(3)),
			"(1 2 . 3)",
		},
		{"empty vector", ir.FromSlice(nil), "#()"},
		{
			"vector",
			ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.FromString("s")}),
			`#(#t "s")`,
		},
		{
			"nested",
			ir.Cons(
				ir.FromSlice([]*ir.Node{ir.Null()}),
				ir.Cons(ir.FromKeyword("k"), ir.Null()),
			),
			"(#(()) :k)",
		},
	}
	for _, tc := range tests {
		var sb strings.Builder
		if err := Encode(tc.node, &sb); err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if got := sb.String(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestEncodeBadType(t *testing.T) {
	var sb strings.Builder
	err := Encode(&ir.Node{Type: ir.Type(99)}, &sb)
	if !errors.Is(err, ErrBadType) {
		t.Errorf("got %v, want ErrBadType", err)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(ir.FromList([]*ir.Node{ir.FromInt(1)})); got != "(1)" {
		t.Errorf("got %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("no panic for invalid node")
		}
	}()
	MustString(&ir.Node{Type: ir.Type(99)})
}

func TestEncodeColorsEscapePercent(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()
	c := NewColors()
	if got := c.Color(ir.StringType, ValueColor, `"100%"`); got != `"100%"` {
		t.Errorf("got %q", got)
	}
	// unmapped colorables fall back to the identity default
	if got := c.Color(ir.NullType, ValueColor, "()"); got != "()" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeWithColors(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()
	var sb strings.Builder
	err := Encode(ir.FromList([]*ir.Node{ir.FromInt(1)}), &sb, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	got := sb.String()
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("no escape sequences in %q", got)
	}
	if !strings.Contains(got, "1") {
		t.Errorf("payload missing from %q", got)
	}
}
