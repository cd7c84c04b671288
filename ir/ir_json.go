package ir

import (
	"encoding/json"
	"fmt"
)

type irBase struct {
	Type    Type     `json:"type"`
	Bool    bool     `json:"bool,omitempty"`
	Char    string   `json:"char,omitempty"`
	String  string   `json:"string,omitempty"`
	Number  string   `json:"number,omitempty"`
	Int64   *int64   `json:"int,omitempty"`
	Float64 *float64 `json:"float,omitempty"`
	Bytes   []byte   `json:"bytes,omitempty"`
	Car     *Node    `json:"car,omitempty"`
	Cdr     *Node    `json:"cdr,omitempty"`
	Values  []*Node  `json:"values,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:    n.Type,
		Bool:    n.Bool,
		String:  n.String,
		Number:  n.Number,
		Int64:   n.Int64,
		Float64: n.Float64,
		Bytes:   n.Bytes,
		Car:     n.Car,
		Cdr:     n.Cdr,
		Values:  n.Values,
	}
	if n.Type == CharType {
		base.Char = string(n.Char)
	}
	return json.Marshal(base)
}

func (n *Node) UnmarshalJSON(d []byte) error {
	base := &irBase{}
	if err := json.Unmarshal(d, base); err != nil {
		return err
	}
	*n = Node{
		Type:    base.Type,
		Bool:    base.Bool,
		String:  base.String,
		Number:  base.Number,
		Int64:   base.Int64,
		Float64: base.Float64,
		Bytes:   base.Bytes,
		Car:     base.Car,
		Cdr:     base.Cdr,
		Values:  base.Values,
	}
	if base.Type == CharType {
		rs := []rune(base.Char)
		if len(rs) != 1 {
			return fmt.Errorf("char node wants one rune, got %q", base.Char)
		}
		n.Char = rs[0]
	}
	return nil
}
