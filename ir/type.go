package ir

import "fmt"

type Type int

const (
	NilType Type = iota
	NullType
	BoolType
	NumberType
	CharType
	StringType
	SymbolType
	KeywordType
	BytesType
	ConsType
	VectorType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NilType:     "Nil",
		NullType:    "Null",
		BoolType:    "Bool",
		NumberType:  "Number",
		CharType:    "Char",
		StringType:  "String",
		SymbolType:  "Symbol",
		KeywordType: "Keyword",
		BytesType:   "Bytes",
		ConsType:    "Cons",
		VectorType:  "Vector",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Nil":     NilType,
		"Null":    NullType,
		"Bool":    BoolType,
		"Number":  NumberType,
		"Char":    CharType,
		"String":  StringType,
		"Symbol":  SymbolType,
		"Keyword": KeywordType,
		"Bytes":   BytesType,
		"Cons":    ConsType,
		"Vector":  VectorType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NilType,
		NullType,
		BoolType,
		NumberType,
		CharType,
		StringType,
		SymbolType,
		KeywordType,
		BytesType,
		ConsType,
		VectorType,
	}
}

// HasChildren reports whether nodes of type t own child nodes.
//
// Note: the switch lists every Type with no default arm, because if which
// types have children ever changes, every site handling child slots will
// need to adjust for that.
func (t Type) HasChildren() bool {
	switch t {
	case ConsType, VectorType:
		return true
	case NilType,
		NullType,
		BoolType,
		NumberType,
		CharType,
		StringType,
		SymbolType,
		KeywordType,
		BytesType:
		return false
	}
	panic(fmt.Sprintf("ir: HasChildren on invalid type %d", int(t)))
}

func (t Type) IsLeaf() bool {
	return !t.HasChildren()
}
