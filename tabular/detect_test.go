package tabular

import (
	"testing"

	"github.com/toon-format/toon-go/value"
)

func obj(fields ...value.Field) *value.Value {
	v, err := value.FromFields(fields)
	if err != nil {
		panic(err)
	}
	return v
}

func TestEligibleUniformObjects(t *testing.T) {
	arr := value.FromArray([]*value.Value{
		obj(value.Field{Key: "id", Val: value.FromInt64(1)}, value.Field{Key: "name", Val: mustStr("Alice")}),
		obj(value.Field{Key: "id", Val: value.FromInt64(2)}, value.Field{Key: "name", Val: mustStr("Bob")}),
	})
	keys, ok := Eligible(arr)
	if !ok {
		t.Fatal("expected eligible")
	}
	if len(keys) != 2 || keys[0] != "id" || keys[1] != "name" {
		t.Fatalf("got %v", keys)
	}
}

func TestIneligibleDifferentKeySets(t *testing.T) {
	arr := value.FromArray([]*value.Value{
		obj(value.Field{Key: "a", Val: value.FromInt64(1)}),
		obj(value.Field{Key: "b", Val: value.FromInt64(2)}),
	})
	if _, ok := Eligible(arr); ok {
		t.Fatal("expected ineligible")
	}
}

func TestIneligibleNestedAggregate(t *testing.T) {
	inner := value.FromArray(nil)
	arr := value.FromArray([]*value.Value{
		obj(value.Field{Key: "a", Val: inner}),
	})
	if _, ok := Eligible(arr); ok {
		t.Fatal("expected ineligible due to nested aggregate")
	}
}

func TestIneligibleEmptyArray(t *testing.T) {
	if _, ok := Eligible(value.FromArray(nil)); ok {
		t.Fatal("empty array should be ineligible")
	}
}

func TestIneligibleNonObjectElements(t *testing.T) {
	arr := value.FromArray([]*value.Value{value.FromInt64(1), value.FromInt64(2)})
	if _, ok := Eligible(arr); ok {
		t.Fatal("scalar array should be ineligible")
	}
}

func mustStr(s string) *value.Value {
	v, err := value.FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}
