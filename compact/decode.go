package compact

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/toon-format/toon-go/value"
)

// Decode parses a complete TOON-Compact document.
func Decode(b []byte) (*value.Value, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if !HasMagic(b) {
		return nil, ErrBadMagic
	}
	d := &decoder{src: b, i: len(Magic)}
	v, err := d.readValue()
	if err != nil {
		return nil, err
	}
	if d.i != len(d.src) {
		return nil, ErrTrailingGarbage
	}
	return v, nil
}

type decoder struct {
	src []byte
	i   int
}

func (d *decoder) need(n int) error {
	if d.i+n > len(d.src) {
		return ErrTruncated
	}
	return nil
}

func (d *decoder) readByte() (byte, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	b := d.src[d.i]
	d.i++
	return b, nil
}

func (d *decoder) readUint32() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	n := binary.LittleEndian.Uint32(d.src[d.i:])
	d.i += 4
	return n, nil
}

func (d *decoder) readUint64() (uint64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	n := binary.LittleEndian.Uint64(d.src[d.i:])
	d.i += 8
	return n, nil
}

func (d *decoder) readBytes(n uint32) ([]byte, error) {
	if err := d.need(int(n)); err != nil {
		return nil, err
	}
	b := d.src[d.i : d.i+int(n)]
	d.i += int(n)
	return b, nil
}

func (d *decoder) readValue() (*value.Value, error) {
	t, err := d.readByte()
	if err != nil {
		return nil, err
	}
	switch tag(t) {
	case tagNull:
		return value.Null(), nil
	case tagFalse:
		return value.FromBool(false), nil
	case tagTrue:
		return value.FromBool(true), nil
	case tagInt64:
		n, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return value.FromInt64(int64(n)), nil
	case tagFloat64:
		n, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return value.FromFloat64(math.Float64frombits(n))
	case tagString:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		return value.FromString(s)
	case tagBigDecimal:
		n, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		raw, err := d.readBytes(n)
		if err != nil {
			return nil, err
		}
		return value.FromBigDecimal(string(raw))
	case tagArray:
		return d.readArray()
	case tagObject:
		return d.readObject()
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownTag, t)
	}
}

func (d *decoder) readString() (string, error) {
	n, err := d.readUint32()
	if err != nil {
		return "", err
	}
	raw, err := d.readBytes(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", ErrBadUTF8
	}
	return string(raw), nil
}

func (d *decoder) readArray() (*value.Value, error) {
	n, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	elems := make([]*value.Value, 0, n)
	for i := uint32(0); i < n; i++ {
		e, err := d.readValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	return value.FromArray(elems), nil
}

func (d *decoder) readObject() (*value.Value, error) {
	n, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	fields := make([]value.Field, 0, n)
	prev := ""
	for i := uint32(0); i < n; i++ {
		keyTag, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if tag(keyTag) != tagString {
			return nil, fmt.Errorf("%w: object key tag 0x%02x", ErrUnknownTag, keyTag)
		}
		key, err := d.readString()
		if err != nil {
			return nil, err
		}
		if i > 0 && key <= prev {
			return nil, ErrUnsortedKeys
		}
		prev = key
		val, err := d.readValue()
		if err != nil {
			return nil, err
		}
		fields = append(fields, value.Field{Key: key, Val: val})
	}
	return &value.Value{Type: value.ObjectType, Fields: fields}, nil
}
