// Package ir defines the document value model: a weakly-typed tree of
// null, scalar-text, ordered sequence, and key-ordered map nodes.
package ir

// Node is a document value. Scalars carry literal text only; any numeric
// or boolean reading of that text is up to the consumer. Maps keep their
// pairs in insertion order, with Fields and Values parallel.
type Node struct {
	Type   Type
	String string
	Fields []*Node
	Values []*Node
}

func (y *Node) IsNull() bool     { return y.Type == NullType }
func (y *Node) IsScalar() bool   { return y.Type == ScalarType }
func (y *Node) IsSequence() bool { return y.Type == SequenceType }
func (y *Node) IsMap() bool      { return y.Type == MapType }

// Scalar returns the node's text. Valid only for scalar nodes.
func (y *Node) Scalar() string {
	return y.String
}

// Len is the number of elements of a sequence or pairs of a map.
func (y *Node) Len() int {
	switch y.Type {
	case SequenceType:
		return len(y.Values)
	case MapType:
		return len(y.Fields)
	default:
		return 0
	}
}

// At returns the i-th element of a sequence.
func (y *Node) At(i int) *Node {
	if y.Type != SequenceType {
		panic("index on " + y.Type.String() + " node")
	}
	return y.Values[i]
}

// Pair returns the i-th key and value of a map, in stored order.
func (y *Node) Pair(i int) (key, val *Node) {
	if y.Type != MapType {
		panic("pair on " + y.Type.String() + " node")
	}
	return y.Fields[i], y.Values[i]
}

func Null() *Node {
	return &Node{Type: NullType}
}

// New returns an empty node of the given type.
func New(t Type) *Node {
	return &Node{Type: t}
}

func FromString(v string) *Node {
	return &Node{Type: ScalarType, String: v}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   SequenceType,
		Values: ySlice,
	}
	return res
}

// PushBack appends a child to a sequence. A null node becomes a
// sequence on first push, so New(NullType) and Null() can grow.
func (y *Node) PushBack(child *Node) {
	if y.Type == NullType && len(y.Values) == 0 {
		y.Type = SequenceType
	}
	if y.Type != SequenceType {
		panic("push_back on " + y.Type.String() + " node")
	}
	y.Values = append(y.Values, child)
}

// Insert adds a (key, value) pair to a map, replacing the value of a
// structurally equal key if one is present.
func (y *Node) Insert(key, val *Node) {
	if y.Type != MapType {
		panic("insert on " + y.Type.String() + " node")
	}
	for i := range y.Fields {
		if Equal(y.Fields[i], key) {
			y.Values[i] = val
			return
		}
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
}

// ForceInsert appends a (key, value) pair without looking for an equal
// key already in the map.
func (y *Node) ForceInsert(key, val *Node) {
	if y.Type != MapType {
		panic("insert on " + y.Type.String() + " node")
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
}

// Get returns the value stored under a scalar key with the given text,
// or nil.
func Get(y *Node, field string) *Node {
	if y.Type != MapType {
		return nil
	}
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].Type == ScalarType && y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Fields = make([]*Node, len(y.Fields))
	dst.Values = make([]*Node, len(y.Values))
	for i, yf := range y.Fields {
		dst.Fields[i] = yf.Clone()
	}
	for i, yv := range y.Values {
		dst.Values[i] = yv.Clone()
	}
	return dst
}

// Equal reports structural equality: same type, same scalar text, same
// children in the same order.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare orders nodes by type, then scalar text, then children. It
// gives maps built from unordered sources a stable key order.
func Compare(a, b *Node) int {
	if a.Type != b.Type {
		if a.Type < b.Type {
			return -1
		}
		return 1
	}
	if a.String != b.String {
		if a.String < b.String {
			return -1
		}
		return 1
	}
	if d := compareChildren(a.Fields, b.Fields); d != 0 {
		return d
	}
	return compareChildren(a.Values, b.Values)
}

func compareChildren(as, bs []*Node) int {
	n := min(len(as), len(bs))
	for i := range n {
		if d := Compare(as[i], bs[i]); d != 0 {
			return d
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}
