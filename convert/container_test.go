package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/doctree/ir"
)

func seqOf(texts ...string) *ir.Node {
	res := ir.New(ir.SequenceType)
	for _, s := range texts {
		res.PushBack(ir.FromString(s))
	}
	return res
}

func TestSequenceEncode(t *testing.T) {
	got := Encode([]int{1, 2, 3})
	if !ir.Equal(got, seqOf("1", "2", "3")) {
		t.Fatalf("got %v", got)
	}
	if !ir.Equal(Encode([]string(nil)), ir.New(ir.SequenceType)) {
		t.Fatal("nil slice did not encode to an empty sequence")
	}
}

func TestSequenceDecode(t *testing.T) {
	got, err := As[[]int](seqOf("0x1F", "-42", "0o17"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{31, -42, 15}, got); diff != "" {
		t.Fatal(diff)
	}
	if _, err := As[[]int](ir.New(ir.MapType)); err == nil {
		t.Fatal("decoded a slice from a map node")
	}
}

func TestSequenceDecodeKeepsPrefixOnFailure(t *testing.T) {
	dst := []int{9, 9, 9, 9}
	if Decode(seqOf("1", "x", "3"), &dst) {
		t.Fatal("sequence with a bad element decoded")
	}
	// cleared, then filled up to the failing element
	if diff := cmp.Diff([]int{1}, dst); diff != "" {
		t.Fatal(diff)
	}
}

func TestNestedSequences(t *testing.T) {
	v := [][]string{{"a"}, {"b", "c"}}
	got, err := As[[][]string](Encode(v))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestArraySizeMismatchLeavesSlots(t *testing.T) {
	arr := [4]int{9, 9, 9, 9}
	if Decode(seqOf("1", "2", "3"), &arr) {
		t.Fatal("3-element sequence decoded into a 4-slot array")
	}
	if arr != [4]int{9, 9, 9, 9} {
		t.Fatalf("slots modified on size mismatch: %v", arr)
	}
}

func TestArrayDecode(t *testing.T) {
	var arr [3]int
	if !Decode(seqOf("1", "2", "3"), &arr) || arr != [3]int{1, 2, 3} {
		t.Fatalf("got %v", arr)
	}
	// element failure after the size check leaves earlier slots written
	arr = [3]int{9, 9, 9}
	if Decode(seqOf("1", "x", "3"), &arr) {
		t.Fatal("array with a bad element decoded")
	}
	if arr[0] != 1 || arr[1] != 9 {
		t.Fatalf("got %v, want [1 9 9]", arr)
	}
}

func TestPairEncode(t *testing.T) {
	got := Encode(Pair[int, string]{First: 1, Second: "a"})
	if !ir.Equal(got, seqOf("1", "a")) {
		t.Fatalf("got %v", got)
	}
}

func TestPairDecode(t *testing.T) {
	got, err := As[Pair[int, string]](seqOf("1", "a"))
	if err != nil {
		t.Fatal(err)
	}
	if got.First != 1 || got.Second != "a" {
		t.Fatalf("got %v", got)
	}
	if _, err := As[Pair[int, string]](seqOf("1", "a", "b")); err == nil {
		t.Fatal("3-element sequence decoded into a pair")
	}
	// components decode independently: the good one lands
	var p Pair[string, int]
	if Decode(seqOf("a", "x"), &p) {
		t.Fatal("pair with a bad component decoded")
	}
	if p.First != "a" {
		t.Fatalf("got %v", p)
	}
}

func TestMapEncodeCanonicalOrder(t *testing.T) {
	got := Encode(map[string]int{"b": 2, "a": 1, "c": 3})
	want := ir.New(ir.MapType)
	want.ForceInsert(ir.FromString("a"), ir.FromString("1"))
	want.ForceInsert(ir.FromString("b"), ir.FromString("2"))
	want.ForceInsert(ir.FromString("c"), ir.FromString("3"))
	if !ir.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMapDecode(t *testing.T) {
	node := ir.New(ir.MapType)
	node.ForceInsert(ir.FromString("a"), ir.FromString("0x1F"))
	node.ForceInsert(ir.FromString("b"), ir.FromString("2"))
	got, err := As[map[string]int](node)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]int{"a": 31, "b": 2}, got); diff != "" {
		t.Fatal(diff)
	}
	if _, err := As[map[string]int](seqOf("a")); err == nil {
		t.Fatal("decoded a map from a sequence node")
	}
}

func TestMapDecodeLastWriteWins(t *testing.T) {
	node := ir.New(ir.MapType)
	node.ForceInsert(ir.FromString("a"), ir.FromString("1"))
	node.ForceInsert(ir.FromString("a"), ir.FromString("2"))
	got, err := As[map[string]int](node)
	if err != nil {
		t.Fatal(err)
	}
	if got["a"] != 2 {
		t.Fatalf("got %d, want 2", got["a"])
	}
}

func TestMapNonScalarKeys(t *testing.T) {
	v := map[Pair[int, int]]string{
		{First: 1, Second: 2}: "x",
	}
	got, err := As[map[Pair[int, int]]string](Encode(v))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestMapDecodeKeepsPrefixOnFailure(t *testing.T) {
	node := ir.New(ir.MapType)
	node.ForceInsert(ir.FromString("a"), ir.FromString("1"))
	node.ForceInsert(ir.FromString("b"), ir.FromString("x"))
	dst := map[string]int{"old": 0}
	if Decode(node, &dst) {
		t.Fatal("map with a bad value decoded")
	}
	if diff := cmp.Diff(map[string]int{"a": 1}, dst); diff != "" {
		t.Fatal(diff)
	}
}
