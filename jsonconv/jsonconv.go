package jsonconv

import (
	"bytes"
	"fmt"
	"math/big"
	"strconv"

	"github.com/segmentio/encoding/json"

	"github.com/toon-format/toon-go/value"
)

// FromJSON parses a single JSON document into a *value.Value. Numbers
// that overflow int64 or float64 precision are captured verbatim as
// the BigKind escape hatch instead of being silently rounded.
func FromJSON(src []byte) (*value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(src[dec.InputOffset():])) != 0 {
		return nil, fmt.Errorf("jsonconv: trailing garbage after JSON document")
	}
	return fromAny(raw)
}

func fromAny(raw interface{}) (*value.Value, error) {
	switch x := raw.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.FromBool(x), nil
	case json.Number:
		return fromNumber(x)
	case string:
		return value.FromString(x)
	case []interface{}:
		elems := make([]*value.Value, len(x))
		for i, e := range x {
			v, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return value.FromArray(elems), nil
	case map[string]interface{}:
		fields := make([]value.Field, 0, len(x))
		for k, e := range x {
			v, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			fields = append(fields, value.Field{Key: k, Val: v})
		}
		return value.FromFields(fields)
	default:
		return nil, fmt.Errorf("jsonconv: unsupported decoded type %T", raw)
	}
}

func fromNumber(n json.Number) (*value.Value, error) {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return value.FromInt64(i), nil
	}
	if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
		// Only trust the float64 parse if the literal and the shortest
		// text that round-trips f denote the same decimal value (so
		// "1.0", "1.5e10" and "-0.0" stay plain floats); otherwise the
		// literal carries precision a double cannot hold.
		lit, okLit := new(big.Rat).SetString(n.String())
		short, okShort := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
		if okLit && okShort && lit.Cmp(short) == 0 {
			return value.FromFloat64(f)
		}
	}
	return value.FromBigDecimal(n.String())
}

// ToJSON renders v as a single JSON document.
func ToJSON(v *value.Value) ([]byte, error) {
	any, err := toAny(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(any)
}

func toAny(v *value.Value) (interface{}, error) {
	switch v.Type {
	case value.NullType:
		return nil, nil
	case value.BoolType:
		return v.Bool, nil
	case value.NumberType:
		switch v.NumKind {
		case value.IntKind:
			return json.Number(strconv.FormatInt(v.Int64, 10)), nil
		case value.BigKind:
			return json.Number(v.Big), nil
		default:
			return json.Number(strconv.FormatFloat(v.Float64, 'g', -1, 64)), nil
		}
	case value.StringType:
		return v.Str, nil
	case value.ArrayType:
		out := make([]interface{}, len(v.Values))
		for i, e := range v.Values {
			a, err := toAny(e)
			if err != nil {
				return nil, err
			}
			out[i] = a
		}
		return out, nil
	case value.ObjectType:
		out := make(map[string]interface{}, len(v.Fields))
		for _, f := range v.Fields {
			a, err := toAny(f.Val)
			if err != nil {
				return nil, err
			}
			out[f.Key] = a
		}
		return out, nil
	default:
		return nil, fmt.Errorf("jsonconv: unencodable value type %s", v.Type)
	}
}
