package ir

import "testing"

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("got %s, want %s", back, typ)
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Object")); err == nil {
		t.Error("unknown type text unmarshaled")
	}
}

func TestIsLeaf(t *testing.T) {
	for typ, want := range map[Type]bool{
		NullType:     true,
		ScalarType:   true,
		SequenceType: false,
		MapType:      false,
	} {
		if typ.IsLeaf() != want {
			t.Errorf("%s.IsLeaf() = %v, want %v", typ, typ.IsLeaf(), want)
		}
	}
}
