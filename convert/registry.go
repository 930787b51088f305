package convert

import (
	"fmt"
	"reflect"

	"github.com/signadot/doctree/ir"
)

// Category partitions the supported value types. Exactly one category
// matches any supported type; an overlap is a construction defect and
// panics, never a runtime branch.
type Category int

const (
	BoolCat Category = iota
	IntCat
	UintCat
	FloatCat
	CharCat
	StringCat
	NullCat
	NodeCat
	SequenceCat
	ArrayCat
	PairCat
	MapCat
	BinaryCat
	LiteralCat
)

func (c Category) String() string {
	s, ok := map[Category]string{
		BoolCat:     "Bool",
		IntCat:      "Int",
		UintCat:     "Uint",
		FloatCat:    "Float",
		CharCat:     "Char",
		StringCat:   "String",
		NullCat:     "Null",
		NodeCat:     "Node",
		SequenceCat: "Sequence",
		ArrayCat:    "Array",
		PairCat:     "Pair",
		MapCat:      "Map",
		BinaryCat:   "Binary",
		LiteralCat:  "Literal",
	}[c]
	if ok {
		return s
	}
	return "<unknown category>"
}

// rule binds a category predicate to its conversion strategy. decode is
// nil for encode-only categories.
type rule struct {
	cat    Category
	match  func(reflect.Type) bool
	encode func(reflect.Value) *ir.Node
	decode func(*ir.Node, reflect.Value) bool
}

var (
	charType    = reflect.TypeOf(Char(0))
	literalType = reflect.TypeOf(Literal(""))
	binaryType  = reflect.TypeOf(Binary(nil))
	nullType    = reflect.TypeOf(Null{})
	nodeType    = reflect.TypeOf((*ir.Node)(nil))
)

func isSignedInt(t reflect.Type) bool {
	if t == charType {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUnsignedInt(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isFloat(t reflect.Type) bool {
	return t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64
}

func isPair(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.NumField() == 2 &&
		t.Field(0).Name == "First" &&
		t.Field(1).Name == "Second"
}

var rules []rule

// rules is assigned in init rather than at its declaration to avoid an
// initialization cycle: the encode funcs reach classify, which reads rules.
func init() {
	rules = []rule{
		{BoolCat, func(t reflect.Type) bool { return t.Kind() == reflect.Bool }, encodeBool, decodeBool},
		{IntCat, isSignedInt, encodeInt, decodeInt},
		{UintCat, isUnsignedInt, encodeUint, decodeUint},
		{FloatCat, isFloat, encodeFloat, decodeFloat},
		{CharCat, func(t reflect.Type) bool { return t == charType }, encodeChar, decodeChar},
		{StringCat, func(t reflect.Type) bool { return t.Kind() == reflect.String && t != literalType }, encodeString, decodeString},
		{NullCat, func(t reflect.Type) bool { return t == nullType }, encodeNull, decodeNull},
		{NodeCat, func(t reflect.Type) bool { return t == nodeType }, encodeNode, decodeNode},
		{SequenceCat, func(t reflect.Type) bool { return t.Kind() == reflect.Slice && t != binaryType }, encodeSequence, decodeSequence},
		{ArrayCat, func(t reflect.Type) bool { return t.Kind() == reflect.Array }, encodeArray, decodeArray},
		{PairCat, isPair, encodePair, decodePair},
		{MapCat, func(t reflect.Type) bool { return t.Kind() == reflect.Map }, encodeMap, decodeMap},
		{BinaryCat, func(t reflect.Type) bool { return t == binaryType }, encodeBinary, decodeBinary},
		{LiteralCat, func(t reflect.Type) bool { return t == literalType }, encodeLiteral, nil},
	}
}

// classify returns the single rule matching t, nil when none does, and
// panics when two categories overlap.
func classify(t reflect.Type) *rule {
	var found *rule
	for i := range rules {
		r := &rules[i]
		if !r.match(t) {
			continue
		}
		if found != nil {
			panic(fmt.Sprintf("convert: categories %s and %s overlap on %s", found.cat, r.cat, t))
		}
		found = r
	}
	return found
}

func mustClassify(t reflect.Type) *rule {
	r := classify(t)
	if r == nil {
		panic(fmt.Sprintf("convert: no category for type %s", t))
	}
	return r
}

// probes covers every category; init asserts each probe classifies to
// exactly one rule, so a predicate edit that introduces an overlap
// fails at startup rather than at some later call site.
var probes = []reflect.Type{
	reflect.TypeOf(false),
	reflect.TypeOf(int(0)),
	reflect.TypeOf(int8(0)),
	reflect.TypeOf(int16(0)),
	reflect.TypeOf(int32(0)),
	reflect.TypeOf(int64(0)),
	reflect.TypeOf(uint(0)),
	reflect.TypeOf(uint8(0)),
	reflect.TypeOf(uint16(0)),
	reflect.TypeOf(uint32(0)),
	reflect.TypeOf(uint64(0)),
	reflect.TypeOf(float32(0)),
	reflect.TypeOf(float64(0)),
	charType,
	reflect.TypeOf(""),
	literalType,
	nullType,
	nodeType,
	reflect.TypeOf([]int(nil)),
	reflect.TypeOf([]byte(nil)),
	binaryType,
	reflect.TypeOf([4]string{}),
	reflect.TypeOf(Pair[int, string]{}),
	reflect.TypeOf(map[string]int(nil)),
}

func init() {
	for _, t := range probes {
		mustClassify(t)
	}
}
