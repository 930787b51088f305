package ir

import "testing"

func TestInsertReplacesEqualKey(t *testing.T) {
	m := New(MapType)
	m.Insert(FromString("a"), FromString("1"))
	m.Insert(FromString("b"), FromString("2"))
	m.Insert(FromString("a"), FromString("3"))
	if m.Len() != 2 {
		t.Fatalf("got %d pairs, want 2", m.Len())
	}
	if got := Get(m, "a"); got == nil || got.String != "3" {
		t.Fatalf("got %v, want scalar 3", got)
	}
}

func TestForceInsertAppends(t *testing.T) {
	m := New(MapType)
	m.ForceInsert(FromString("a"), FromString("1"))
	m.ForceInsert(FromString("a"), FromString("2"))
	if m.Len() != 2 {
		t.Fatalf("got %d pairs, want 2", m.Len())
	}
	k0, v0 := m.Pair(0)
	k1, v1 := m.Pair(1)
	if k0.String != "a" || k1.String != "a" || v0.String != "1" || v1.String != "2" {
		t.Fatalf("pairs out of order: (%s,%s) (%s,%s)", k0.String, v0.String, k1.String, v1.String)
	}
}

func TestPushBackMorphsNull(t *testing.T) {
	y := Null()
	y.PushBack(FromString("x"))
	if !y.IsSequence() || y.Len() != 1 {
		t.Fatalf("got %s of len %d, want Sequence of len 1", y.Type, y.Len())
	}
}

func TestEqual(t *testing.T) {
	mk := func() *Node {
		m := New(MapType)
		m.ForceInsert(FromString("k"), FromSlice([]*Node{FromString("1"), Null()}))
		return m
	}
	if !Equal(mk(), mk()) {
		t.Fatal("structurally equal trees compare unequal")
	}
	other := mk()
	other.Values[0].Values[1] = FromString("")
	if Equal(mk(), other) {
		t.Fatal("null and empty scalar compare equal")
	}
}

func TestCompareOrders(t *testing.T) {
	cases := []struct {
		a, b *Node
		want int
	}{
		{Null(), FromString(""), -1},
		{FromString("a"), FromString("b"), -1},
		{FromString("b"), FromString("b"), 0},
		{FromSlice(nil), FromSlice([]*Node{Null()}), -1},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
		if got := Compare(c.b, c.a); got != -c.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", c.b, c.a, got, -c.want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	y := FromSlice([]*Node{FromString("x")})
	cp := y.Clone()
	cp.Values[0].String = "y"
	if y.Values[0].String != "x" {
		t.Fatal("clone shares children with the original")
	}
	if !Equal(y, FromSlice([]*Node{FromString("x")})) {
		t.Fatal("original modified by cloning")
	}
}
