package value

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromFloat64RejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := FromFloat64(f); err == nil {
			t.Fatalf("FromFloat64(%v): expected error, got nil", f)
		}
	}
}

func TestFromObjectSortsKeys(t *testing.T) {
	obj := FromObject(map[string]*Value{
		"zebra": Null(),
		"alpha": Null(),
		"mid":   Null(),
	})
	got := obj.Keys()
	want := []string{"alpha", "mid", "zebra"}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("Keys() = %v, want %v", got, want)
		}
	}
}

func TestFromFieldsRejectsDuplicates(t *testing.T) {
	_, err := FromFields([]Field{
		{Key: "a", Val: Null()},
		{Key: "a", Val: FromBool(true)},
	})
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestEqualIgnoresObjectOrder(t *testing.T) {
	a, _ := FromFields([]Field{{Key: "a", Val: FromInt64(1)}, {Key: "b", Val: FromInt64(2)}})
	b, _ := FromFields([]Field{{Key: "b", Val: FromInt64(2)}, {Key: "a", Val: FromInt64(1)}})
	if !Equal(a, b) {
		t.Fatal("Equal should ignore field order")
	}
}

func TestEqualNumberAcrossKinds(t *testing.T) {
	i := FromInt64(3)
	f, _ := FromFloat64(3.0)
	if !Equal(i, f) {
		t.Fatal("int64(3) should equal float64(3.0)")
	}
}

func TestEqualBigKindRequiresExactText(t *testing.T) {
	a, err := FromBigDecimal("123456789012345678901234567890")
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromBigDecimal("123456789012345678901234567890")
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(a, b) {
		t.Fatal("identical big-decimal text should be equal")
	}
	c, _ := FromBigDecimal("123456789012345678901234567891")
	if Equal(a, c) {
		t.Fatal("different big-decimal text should not be equal")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := FromArray([]*Value{FromInt64(1), FromInt64(2)})
	clone := orig.Clone()
	clone.Values[0] = FromInt64(99)
	if Equal(orig, clone) {
		t.Fatal("mutating clone should not affect original")
	}
}

func TestCloneIsStructurallyIdenticalBeforeMutation(t *testing.T) {
	name, err := FromString("Alice")
	if err != nil {
		t.Fatal(err)
	}
	orig, err := FromFields([]Field{
		{Key: "name", Val: name},
		{Key: "tags", Val: FromArray([]*Value{FromInt64(1), FromInt64(2)})},
	})
	if err != nil {
		t.Fatal(err)
	}
	clone := orig.Clone()
	if diff := cmp.Diff(orig, clone); diff != "" {
		t.Fatalf("Clone() structural mismatch (-orig +clone):\n%s", diff)
	}
}

func TestFromStringRejectsInvalidUTF8(t *testing.T) {
	if _, err := FromString(string([]byte{0xff, 0xfe})); err == nil {
		t.Fatal("expected ErrNonUTF8String")
	}
}

func TestIsJSONNumberLiteral(t *testing.T) {
	cases := map[string]bool{
		"0":       true,
		"-0":      true,
		"123":     true,
		"01":      false,
		"1.5":     true,
		"1.":      false,
		"1e10":    true,
		"1e+10":   true,
		"1.5e-10": true,
		"":        false,
		"-":       false,
		"abc":     false,
	}
	for lit, want := range cases {
		if got := isJSONNumberLiteral(lit); got != want {
			t.Errorf("isJSONNumberLiteral(%q) = %v, want %v", lit, got, want)
		}
	}
}
