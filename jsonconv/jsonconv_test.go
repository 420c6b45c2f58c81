package jsonconv

import (
	"testing"

	"github.com/toon-format/toon-go/value"
)

func TestFromJSONObject(t *testing.T) {
	v, err := FromJSON([]byte(`{"b":true,"a":1,"c":"hi","d":null,"e":[1,2,3]}`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != value.ObjectType {
		t.Fatalf("want object, got %v", v.Type)
	}
	if got := v.Get("a"); got == nil || got.Int64 != 1 {
		t.Fatalf("a = %v", got)
	}
	if got := v.Get("e"); got == nil || len(got.Values) != 3 {
		t.Fatalf("e = %v", got)
	}
}

func TestFromJSONBigNumberEscapeHatch(t *testing.T) {
	v, err := FromJSON([]byte(`123456789012345678901234567890`))
	if err != nil {
		t.Fatal(err)
	}
	if v.NumKind != value.BigKind {
		t.Fatalf("want BigKind, got %v", v.NumKind)
	}
	if v.Big != "123456789012345678901234567890" {
		t.Fatalf("got %q", v.Big)
	}
}

func TestFromJSONTrailingGarbage(t *testing.T) {
	if _, err := FromJSON([]byte(`1 2`)); err == nil {
		t.Fatal("expected error for trailing garbage")
	}
}

func TestToJSONRoundTrip(t *testing.T) {
	name, err := value.FromString("Alice")
	if err != nil {
		t.Fatal(err)
	}
	v, err := value.FromFields([]value.Field{
		{Key: "name", Val: name},
		{Key: "age", Val: value.FromInt64(30)},
	})
	if err != nil {
		t.Fatal(err)
	}
	raw, err := ToJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	got, err := FromJSON(raw)
	if err != nil {
		t.Fatalf("FromJSON(%s): %v", raw, err)
	}
	if !value.Equal(got, v) {
		t.Fatalf("round trip mismatch: got %v want %v", got, v)
	}
}
