package ir

import (
	"testing"
)

func TestGetSet(t *testing.T) {
	obj := &Node{Type: ObjectType}
	Set(obj, "a", FromFloat(1))
	Set(obj, "b", FromString("x"))
	if len(obj.Fields) != 2 || len(obj.Values) != 2 {
		t.Fatalf("got %d fields, %d values", len(obj.Fields), len(obj.Values))
	}
	if v := Get(obj, "a"); v == nil || v.Float64 != 1 {
		t.Errorf("Get(a): %v", v)
	}
	if v := Get(obj, "nope"); v != nil {
		t.Errorf("Get(nope): want nil, got %v", v)
	}

	// overwrite keeps the slot, does not grow the object
	Set(obj, "a", FromFloat(2))
	if len(obj.Fields) != 2 {
		t.Fatalf("overwrite grew object to %d fields", len(obj.Fields))
	}
	if v := Get(obj, "a"); v.Float64 != 2 {
		t.Errorf("Get(a) after overwrite: %v", v.Float64)
	}
	if Get(obj, "a").ParentIndex != 0 {
		t.Errorf("overwrite moved field index")
	}
}

func TestGetNonObject(t *testing.T) {
	if v := Get(FromFloat(3), "x"); v != nil {
		t.Errorf("Get on number: want nil, got %v", v)
	}
}

func TestAppend(t *testing.T) {
	arr := &Node{Type: ArrayType}
	Append(arr, FromFloat(1))
	Append(arr, Null())
	if len(arr.Values) != 2 {
		t.Fatalf("got %d values", len(arr.Values))
	}
	if arr.Values[1].Parent != arr || arr.Values[1].ParentIndex != 1 {
		t.Errorf("parent links not set on append")
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"b": FromFloat(2),
		"a": FromFloat(1),
	})
	if obj.Fields[0].String != "a" || obj.Fields[1].String != "b" {
		t.Errorf("keys not sorted: %q, %q", obj.Fields[0].String, obj.Fields[1].String)
	}
	if obj.Values[0].ParentField != "a" {
		t.Errorf("ParentField %q", obj.Values[0].ParentField)
	}
}

func TestFromKeyVals(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: FromString("z"), Val: FromFloat(26)},
		{Key: FromString("a"), Val: FromFloat(1)},
	})
	// insertion order preserved
	if obj.Fields[0].String != "z" {
		t.Errorf("first key %q", obj.Fields[0].String)
	}
	if v := Get(obj, "a"); v == nil || v.Float64 != 1 {
		t.Errorf("Get(a): %v", v)
	}
}

func TestClone(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: FromString("xs"), Val: FromSlice([]*Node{FromFloat(1), FromBool(true)})},
	})
	cp := obj.Clone()
	if !Equal(obj, cp) {
		t.Fatal("clone not equal to original")
	}
	Get(cp, "xs").Values[0].Float64 = 99
	if Equal(obj, cp) {
		t.Error("mutating clone changed original")
	}
	if Get(cp, "xs").Parent != cp {
		t.Error("clone parent links point outside the clone")
	}
}

func TestVisit(t *testing.T) {
	doc := FromSlice([]*Node{
		FromFloat(1),
		FromSlice([]*Node{FromFloat(2), FromFloat(3)}),
	})
	var pre, post int
	err := doc.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 5 || post != 5 {
		t.Errorf("pre=%d post=%d, want 5/5", pre, post)
	}

	// dive=false skips children
	pre = 0
	doc.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			pre++
		}
		return false, nil
	})
	if pre != 1 {
		t.Errorf("no-dive pre=%d, want 1", pre)
	}
}

func TestRoot(t *testing.T) {
	doc := FromSlice([]*Node{FromSlice([]*Node{FromFloat(1)})})
	leaf := doc.Values[0].Values[0]
	if leaf.Root() != doc {
		t.Error("Root did not reach the document node")
	}
}
