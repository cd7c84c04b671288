package ir

// Node represents a single S-expression value.  The IR works as a recursive
// tagged union: which fields are meaningful depends on Type.
//
// Cons nodes own the values in their Car and Cdr slots; Vector nodes own the
// values in Values.  Ownership forms a tree: a node belongs to at most one
// slot of one parent.
type Node struct {
	Type Type

	Bool    bool
	Char    rune
	String  string // string contents, or symbol/keyword name
	Number  string // uninterpreted numeric literal when Int64 and Float64 are nil
	Int64   *int64
	Float64 *float64
	Bytes   []byte

	Car, Cdr *Node   // ConsType slots
	Values   []*Node // VectorType slots
}

func Nil() *Node {
	return &Node{Type: NilType}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: NumberType, Float64: &v}
}

func FromChar(v rune) *Node {
	return &Node{Type: CharType, Char: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromSymbol(v string) *Node {
	return &Node{Type: SymbolType, String: v}
}

func FromKeyword(v string) *Node {
	return &Node{Type: KeywordType, String: v}
}

func FromBytes(v []byte) *Node {
	return &Node{Type: BytesType, Bytes: v}
}

// Cons returns a fresh two-slot cell.  Nil slot arguments are normalized to
// Nil nodes so every slot holds a value.
func Cons(car, cdr *Node) *Node {
	if car == nil {
		car = Nil()
	}
	if cdr == nil {
		cdr = Nil()
	}
	return &Node{Type: ConsType, Car: car, Cdr: cdr}
}

// FromList returns the proper list holding elts, a chain of cons cells
// terminated by Null.  An empty elts yields Null itself.
func FromList(elts []*Node) *Node {
	return Append(elts, Null())
}

// Append returns the chain of cons cells holding elts with rest as the final
// cdr.  With a non-list rest this forms a dotted list.
func Append(elts []*Node, rest *Node) *Node {
	if rest == nil {
		rest = Null()
	}
	res := rest
	for i := len(elts) - 1; i >= 0; i-- {
		res = Cons(elts[i], res)
	}
	return res
}

// FromSlice returns a vector holding elts.  The slice is owned by the result.
func FromSlice(elts []*Node) *Node {
	for i, e := range elts {
		if e == nil {
			elts[i] = Nil()
		}
	}
	return &Node{Type: VectorType, Values: elts}
}

// IsBranch reports whether the node owns child nodes.  A nil node counts as
// a leaf.
func (n *Node) IsBranch() bool {
	if n == nil {
		return false
	}
	return n.Type.HasChildren()
}

func (n *Node) IsNil() bool     { return n == nil || n.Type == NilType }
func (n *Node) IsNull() bool    { return n != nil && n.Type == NullType }
func (n *Node) IsBool() bool    { return n != nil && n.Type == BoolType }
func (n *Node) IsNumber() bool  { return n != nil && n.Type == NumberType }
func (n *Node) IsChar() bool    { return n != nil && n.Type == CharType }
func (n *Node) IsString() bool  { return n != nil && n.Type == StringType }
func (n *Node) IsSymbol() bool  { return n != nil && n.Type == SymbolType }
func (n *Node) IsKeyword() bool { return n != nil && n.Type == KeywordType }
func (n *Node) IsBytes() bool   { return n != nil && n.Type == BytesType }
func (n *Node) IsCons() bool    { return n != nil && n.Type == ConsType }
func (n *Node) IsVector() bool  { return n != nil && n.Type == VectorType }

// IsList reports whether n is a proper list: Null, or a chain of cons cells
// whose final cdr is Null.
func (n *Node) IsList() bool {
	for ; n != nil; n = n.Cdr {
		switch n.Type {
		case NullType:
			return true
		case ConsType:
			// continue down the cdr chain
		default:
			return false
		}
	}
	return false
}

// IsDottedList reports whether n is a chain of one or more cons cells whose
// final cdr is neither Null nor a cons.
func (n *Node) IsDottedList() bool {
	if !n.IsCons() {
		return false
	}
	for n.Type == ConsType {
		n = n.Cdr
	}
	return n != nil && n.Type != NullType
}

// Name returns the text of a string, symbol or keyword node, and ok=false
// for every other type.
func (n *Node) Name() (string, bool) {
	if n == nil {
		return "", false
	}
	switch n.Type {
	case StringType, SymbolType, KeywordType:
		return n.String, true
	}
	return "", false
}

// AsInt returns the integer payload of a number node.
func (n *Node) AsInt() (int64, bool) {
	if n == nil || n.Type != NumberType || n.Int64 == nil {
		return 0, false
	}
	return *n.Int64, true
}

// AsFloat returns the numeric payload of a number node as a float64,
// converting integers.
func (n *Node) AsFloat() (float64, bool) {
	if n == nil || n.Type != NumberType {
		return 0, false
	}
	if n.Float64 != nil {
		return *n.Float64, true
	}
	if n.Int64 != nil {
		return float64(*n.Int64), true
	}
	return 0, false
}

// ToSlice returns the elements of a proper list or vector as a slice.
// ok is false for any other shape, including dotted lists.
func (n *Node) ToSlice() ([]*Node, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Type {
	case VectorType:
		return n.Values, true
	case NullType:
		return nil, true
	case ConsType:
		var res []*Node
		for n.Type == ConsType {
			res = append(res, n.Car)
			n = n.Cdr
		}
		if !n.IsNull() {
			return nil, false
		}
		return res, true
	}
	return nil, false
}

// ListLen returns the number of cons cells in the chain starting at n.
func (n *Node) ListLen() int {
	res := 0
	for n != nil && n.Type == ConsType {
		res++
		n = n.Cdr
	}
	return res
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Type:   n.Type,
		Bool:   n.Bool,
		Char:   n.Char,
		String: n.String,
		Number: n.Number,
	}
	if n.Int64 != nil {
		i := *n.Int64
		res.Int64 = &i
	}
	if n.Float64 != nil {
		f := *n.Float64
		res.Float64 = &f
	}
	if n.Bytes != nil {
		res.Bytes = append([]byte(nil), n.Bytes...)
	}
	res.Car = n.Car.Clone()
	res.Cdr = n.Cdr.Clone()
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Equal reports structural equality of two nodes.  A nil node is equal to
// Nil.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil {
		return b.IsNil()
	}
	if b == nil {
		return a.IsNil()
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NilType, NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case CharType:
		return a.Char == b.Char
	case StringType, SymbolType, KeywordType:
		return a.String == b.String
	case NumberType:
		return equalNumbers(a, b)
	case BytesType:
		return string(a.Bytes) == string(b.Bytes)
	case ConsType:
		// iterate the cdr chain so long lists compare without deep
		// recursion down the tail
		for {
			if !Equal(a.Car, b.Car) {
				return false
			}
			if a.Cdr.IsCons() && b.Cdr.IsCons() {
				a, b = a.Cdr, b.Cdr
				continue
			}
			return Equal(a.Cdr, b.Cdr)
		}
	case VectorType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalNumbers(a, b *Node) bool {
	if a.Int64 != nil && b.Int64 != nil {
		return *a.Int64 == *b.Int64
	}
	if a.Float64 != nil && b.Float64 != nil {
		return *a.Float64 == *b.Float64
	}
	if a.Int64 == nil && a.Float64 == nil && b.Int64 == nil && b.Float64 == nil {
		return a.Number == b.Number
	}
	return false
}

// Visit calls f for every node in the tree rooted at n, pre- and post-order.
// Returning dive=false from the pre-order call skips the node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive && n != nil {
		switch n.Type {
		case ConsType:
			if err := n.Car.Visit(f); err != nil {
				return err
			}
			if err := n.Cdr.Visit(f); err != nil {
				return err
			}
		case VectorType:
			for _, v := range n.Values {
				if err := v.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	_, err = f(n, true)
	return err
}
