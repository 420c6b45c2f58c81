package compact

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/toon-format/toon-go/value"
)

// Encode renders v as a complete TOON-Compact document: the magic
// prefix followed by one tagged value.
func Encode(v *value.Value) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("compact: nil value")
	}
	var b bytes.Buffer
	b.Write(Magic[:])
	if err := encodeValue(&b, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func encodeValue(b *bytes.Buffer, v *value.Value) error {
	switch v.Type {
	case value.NullType:
		b.WriteByte(byte(tagNull))
	case value.BoolType:
		if v.Bool {
			b.WriteByte(byte(tagTrue))
		} else {
			b.WriteByte(byte(tagFalse))
		}
	case value.NumberType:
		return encodeNumber(b, v)
	case value.StringType:
		return encodeString(b, v.Str)
	case value.ArrayType:
		b.WriteByte(byte(tagArray))
		writeUint32(b, uint32(len(v.Values)))
		for _, e := range v.Values {
			if err := encodeValue(b, e); err != nil {
				return err
			}
		}
	case value.ObjectType:
		b.WriteByte(byte(tagObject))
		writeUint32(b, uint32(len(v.Fields)))
		// v.Fields is kept sorted ascending by every Value constructor,
		// so emission order already matches spec.md §4.4's requirement.
		for _, f := range v.Fields {
			if err := encodeString(b, f.Key); err != nil {
				return err
			}
			if err := encodeValue(b, f.Val); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("compact: unencodable value type %s", v.Type)
	}
	return nil
}

func encodeNumber(b *bytes.Buffer, v *value.Value) error {
	switch v.NumKind {
	case value.IntKind:
		b.WriteByte(byte(tagInt64))
		writeUint64(b, uint64(v.Int64))
	case value.BigKind:
		b.WriteByte(byte(tagBigDecimal))
		writeUint32(b, uint32(len(v.Big)))
		b.WriteString(v.Big)
	default:
		if i, ok := exactInt64(v.Float64); ok {
			b.WriteByte(byte(tagInt64))
			writeUint64(b, uint64(i))
			return nil
		}
		b.WriteByte(byte(tagFloat64))
		writeUint64(b, math.Float64bits(v.Float64))
	}
	return nil
}

// exactInt64 reports whether f has an exact int64 representation, per
// spec.md §4.4 ("Numbers are encoded as Int64 when they fit exactly").
func exactInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	i := int64(f)
	if float64(i) != f {
		return 0, false
	}
	return i, true
}

func encodeString(b *bytes.Buffer, s string) error {
	b.WriteByte(byte(tagString))
	writeUint32(b, uint32(len(s)))
	b.WriteString(s)
	return nil
}

func writeUint32(b *bytes.Buffer, n uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], n)
	b.Write(buf[:])
}

func writeUint64(b *bytes.Buffer, n uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	b.Write(buf[:])
}
