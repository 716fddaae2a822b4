package ir

import "testing"

func TestCompareRank(t *testing.T) {
	// Null < Bool < Number < String < Array < Object
	ordered := []*Node{
		Null(),
		FromBool(false),
		FromFloat(0),
		FromString(""),
		FromSlice(nil),
		FromMap(nil),
	}
	for i := range ordered {
		for j := range ordered {
			c := Compare(ordered[i], ordered[j])
			switch {
			case i < j && c >= 0:
				t.Errorf("Compare(%v, %v) = %d, want < 0", ordered[i].Type, ordered[j].Type, c)
			case i > j && c <= 0:
				t.Errorf("Compare(%v, %v) = %d, want > 0", ordered[i].Type, ordered[j].Type, c)
			case i == j && c != 0:
				t.Errorf("Compare(%v, %v) = %d, want 0", ordered[i].Type, ordered[j].Type, c)
			}
		}
	}
}

func TestCompareScalars(t *testing.T) {
	tests := []struct {
		a, b *Node
		c    int
	}{
		{a: FromFloat(1), b: FromFloat(2), c: -1},
		{a: FromFloat(2), b: FromFloat(2), c: 0},
		{a: FromString("a"), b: FromString("b"), c: -1},
		{a: FromString("b"), b: FromString("b"), c: 0},
		{a: FromBool(false), b: FromBool(true), c: -1},
		{a: FromBool(true), b: FromBool(true), c: 0},
		{a: Null(), b: Null(), c: 0},
		{a: nil, b: Null(), c: -1},
		{a: Null(), b: nil, c: 1},
	}
	for _, tc := range tests {
		if c := Compare(tc.a, tc.b); c != tc.c {
			t.Errorf("Compare(%v, %v) = %d, want %d", tc.a, tc.b, c, tc.c)
		}
	}
}

func TestCompareArrays(t *testing.T) {
	a := FromSlice([]*Node{FromFloat(1), FromFloat(2)})
	b := FromSlice([]*Node{FromFloat(1), FromFloat(3)})
	if Compare(a, b) != -1 {
		t.Error("elementwise order ignored")
	}
	short := FromSlice([]*Node{FromFloat(1)})
	if Compare(short, a) != -1 {
		t.Error("shorter prefix should sort first")
	}
	// arrays are order-sensitive
	ab := FromSlice([]*Node{FromFloat(1), FromFloat(2)})
	ba := FromSlice([]*Node{FromFloat(2), FromFloat(1)})
	if Equal(ab, ba) {
		t.Error("array order should matter")
	}
}

func TestEqualObjectOrderInsensitive(t *testing.T) {
	ab := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromFloat(1)},
		{Key: FromString("b"), Val: FromFloat(2)},
	})
	ba := FromKeyVals([]KeyVal{
		{Key: FromString("b"), Val: FromFloat(2)},
		{Key: FromString("a"), Val: FromFloat(1)},
	})
	if !Equal(ab, ba) {
		t.Error("object insertion order should not affect equality")
	}

	other := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromFloat(1)},
		{Key: FromString("c"), Val: FromFloat(2)},
	})
	if Equal(ab, other) {
		t.Error("distinct keys compare equal")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	ab := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromFloat(1)},
		{Key: FromString("b"), Val: FromSlice([]*Node{FromBool(true), Null()})},
	})
	ba := FromKeyVals([]KeyVal{
		{Key: FromString("b"), Val: FromSlice([]*Node{FromBool(true), Null()})},
		{Key: FromString("a"), Val: FromFloat(1)},
	})
	if ab.Hash() != ba.Hash() {
		t.Error("equal objects should hash equal")
	}
	if FromFloat(1).Hash() == FromFloat(2).Hash() {
		t.Error("distinct numbers collided (suspicious)")
	}
	if FromString("x").Hash() == FromFloat(0).Hash() {
		t.Error("type not mixed into the hash")
	}
}
