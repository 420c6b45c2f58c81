package compact

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/toon-format/toon-go/value"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	name, err := value.FromString("Alice")
	if err != nil {
		t.Fatal(err)
	}
	v, err := value.FromFields([]value.Field{
		{Key: "active", Val: value.FromBool(true)},
		{Key: "age", Val: value.FromInt64(30)},
		{Key: "name", Val: name},
		{Key: "tags", Val: value.FromArray([]*value.Value{name})},
		{Key: "meta", Val: value.Null()},
	})
	if err != nil {
		t.Fatal(err)
	}
	enc, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	if !HasMagic(enc) {
		t.Fatalf("missing magic: % x", enc[:5])
	}
	got, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !value.Equal(got, v) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, v)
	}
	if diff := cmp.Diff(v, got); diff != "" {
		t.Fatalf("round trip is not structurally identical (-want +got):\n%s", diff)
	}
}

func TestEncodePrefersInt64ForExactFloats(t *testing.T) {
	v, err := value.FromFloat64(7)
	if err != nil {
		t.Fatal(err)
	}
	enc, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	if tag(enc[len(Magic)]) != tagInt64 {
		t.Fatalf("want tagInt64, got tag 0x%02x", enc[len(Magic)])
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("want ErrEmptyInput, got %v", err)
	}
}

func TestDecodeBadMagic(t *testing.T) {
	if _, err := Decode([]byte("not toon")); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("want ErrBadMagic, got %v", err)
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	buf := append(append([]byte{}, Magic[:]...), 0xFE)
	if _, err := Decode(buf); !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("want ErrUnknownTag, got %v", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	buf := append(append([]byte{}, Magic[:]...), byte(tagInt64), 1, 2, 3)
	if _, err := Decode(buf); !errors.Is(err, ErrTruncated) {
		t.Fatalf("want ErrTruncated, got %v", err)
	}
}

func TestDecodeTrailingGarbage(t *testing.T) {
	enc, err := Encode(value.FromInt64(1))
	if err != nil {
		t.Fatal(err)
	}
	enc = append(enc, 0x00)
	if _, err := Decode(enc); !errors.Is(err, ErrTrailingGarbage) {
		t.Fatalf("want ErrTrailingGarbage, got %v", err)
	}
}

func TestDecodeUnsortedKeysRejected(t *testing.T) {
	buf := append([]byte{}, Magic[:]...)
	buf = append(buf, byte(tagObject))
	buf = append(buf, 2, 0, 0, 0) // count=2
	buf = appendString(buf, "b")
	buf = append(buf, byte(tagNull))
	buf = appendString(buf, "a")
	buf = append(buf, byte(tagNull))
	if _, err := Decode(buf); !errors.Is(err, ErrUnsortedKeys) {
		t.Fatalf("want ErrUnsortedKeys, got %v", err)
	}
}

func appendString(buf []byte, s string) []byte {
	buf = append(buf, byte(tagString))
	buf = append(buf, byte(len(s)), 0, 0, 0)
	return append(buf, s...)
}

func TestEncodeDeterministic(t *testing.T) {
	v, err := value.FromFields([]value.Field{
		{Key: "z", Val: value.FromInt64(1)},
		{Key: "a", Val: value.FromInt64(2)},
	})
	if err != nil {
		t.Fatal(err)
	}
	e1, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	e2, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(e1) != string(e2) {
		t.Fatalf("non-deterministic encoding")
	}
}

func TestCompactEncodeDoesNotMutateInput(t *testing.T) {
	v, err := value.FromFields([]value.Field{
		{Key: "z", Val: value.FromInt64(1)},
		{Key: "nested", Val: value.FromArray([]*value.Value{value.FromInt64(1)})},
	})
	if err != nil {
		t.Fatal(err)
	}
	before := v.Clone()
	if _, err := Encode(v); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, v); diff != "" {
		t.Fatalf("Encode mutated its input (-before +after):\n%s", diff)
	}
}

func TestBigDecimalRoundTrip(t *testing.T) {
	v, err := value.FromBigDecimal("123456789012345678901234567890")
	if err != nil {
		t.Fatal(err)
	}
	enc, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, v) {
		t.Fatalf("round trip mismatch")
	}
}
