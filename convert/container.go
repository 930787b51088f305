package convert

import (
	"reflect"
	"sort"

	"github.com/signadot/doctree/ir"
)

func encodeSequence(v reflect.Value) *ir.Node {
	node := ir.New(ir.SequenceType)
	for i := 0; i < v.Len(); i++ {
		node.PushBack(encodeValue(v.Index(i)))
	}
	return node
}

// decodeSequence clears the destination, then appends elements as they
// decode. A mid-sequence failure leaves the decoded prefix in place.
func decodeSequence(node *ir.Node, dst reflect.Value) bool {
	if !node.IsSequence() {
		return false
	}
	dst.Set(reflect.MakeSlice(dst.Type(), 0, node.Len()))
	for i := 0; i < node.Len(); i++ {
		elem := reflect.New(dst.Type().Elem()).Elem()
		if !decodeValue(node.At(i), elem) {
			return false
		}
		dst.Set(reflect.Append(dst, elem))
	}
	return true
}

func encodeArray(v reflect.Value) *ir.Node {
	node := ir.New(ir.SequenceType)
	for i := 0; i < v.Len(); i++ {
		node.PushBack(encodeValue(v.Index(i)))
	}
	return node
}

// decodeArray checks the length before reading any element, so a size
// mismatch leaves every slot untouched. An element failure after that
// still leaves earlier slots overwritten.
func decodeArray(node *ir.Node, dst reflect.Value) bool {
	if !node.IsSequence() || node.Len() != dst.Len() {
		return false
	}
	for i := 0; i < dst.Len(); i++ {
		if !decodeValue(node.At(i), dst.Index(i)) {
			return false
		}
	}
	return true
}

func encodePair(v reflect.Value) *ir.Node {
	node := ir.New(ir.SequenceType)
	node.PushBack(encodeValue(v.Field(0)))
	node.PushBack(encodeValue(v.Field(1)))
	return node
}

// decodePair requires a sequence of exactly two elements and decodes
// the components independently: either failing fails the pair, but the
// other component may already have been written.
func decodePair(node *ir.Node, dst reflect.Value) bool {
	if !node.IsSequence() || node.Len() != 2 {
		return false
	}
	okFirst := decodeValue(node.At(0), dst.Field(0))
	okSecond := decodeValue(node.At(1), dst.Field(1))
	return okFirst && okSecond
}

// encodeMap encodes keys through the registry like any other value, so
// non-scalar keys are legal when the key type has a category. Pairs are
// emitted in canonical node order to keep encoding deterministic across
// Go's randomized map iteration.
func encodeMap(v reflect.Value) *ir.Node {
	type kv struct {
		key, val *ir.Node
	}
	kvs := make([]kv, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		kvs = append(kvs, kv{encodeValue(iter.Key()), encodeValue(iter.Value())})
	}
	sort.Slice(kvs, func(i, j int) bool {
		return ir.Compare(kvs[i].key, kvs[j].key) < 0
	})
	node := ir.New(ir.MapType)
	for _, p := range kvs {
		node.ForceInsert(p.key, p.val)
	}
	return node
}

// decodeMap clears the destination and fills it in the node's own pair
// order; duplicate decoded keys follow last write wins. A mid-map
// failure leaves the pairs decoded so far in place.
func decodeMap(node *ir.Node, dst reflect.Value) bool {
	if !node.IsMap() {
		return false
	}
	t := dst.Type()
	dst.Set(reflect.MakeMapWithSize(t, node.Len()))
	for i := 0; i < node.Len(); i++ {
		kn, vn := node.Pair(i)
		key := reflect.New(t.Key()).Elem()
		val := reflect.New(t.Elem()).Elem()
		okKey := decodeValue(kn, key)
		okVal := decodeValue(vn, val)
		if !okKey || !okVal {
			return false
		}
		dst.SetMapIndex(key, val)
	}
	return true
}
