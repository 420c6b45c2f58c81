package toon

import (
	"errors"
	"fmt"

	"github.com/toon-format/toon-go/compact"
	"github.com/toon-format/toon-go/debug"
	"github.com/toon-format/toon-go/encode"
	"github.com/toon-format/toon-go/jsonconv"
	"github.com/toon-format/toon-go/parse"
	"github.com/toon-format/toon-go/value"
)

// ErrEmptyInput is returned by DecodeValue for a zero-byte input,
// before any format dispatch happens.
var ErrEmptyInput = errors.New("toon: empty input")

// EncodeValue renders v as either TOON-Text or TOON-Compact depending
// on the Compact option.
func EncodeValue(v *value.Value, opts ...EncodeOption) ([]byte, error) {
	o := &encodeOptions{}
	for _, f := range opts {
		f(o)
	}
	if o.compact {
		debug.Logf("encode: dispatching to compact codec")
		return compact.Encode(v)
	}
	debug.Logf("encode: dispatching to text codec")
	return encode.Encode(v, o.text...)
}

// DecodeValue parses a single TOON document, auto-detecting TOON-Text
// vs TOON-Compact from the leading magic (spec.md §4.6).
func DecodeValue(src []byte, opts ...DecodeOption) (*value.Value, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	o := &decodeOptions{}
	for _, f := range opts {
		f(o)
	}
	if compact.HasMagic(src) {
		debug.Logf("decode: magic prefix present, dispatching to compact codec")
		return compact.Decode(src)
	}
	debug.Logf("decode: no compact magic, dispatching to text codec")
	return parse.Parse(src, o.text...)
}

// EncodeJSON converts a JSON document to TOON bytes in one step.
func EncodeJSON(jsonSrc []byte, opts ...EncodeOption) ([]byte, error) {
	v, err := jsonconv.FromJSON(jsonSrc)
	if err != nil {
		return nil, fmt.Errorf("toon: decoding JSON: %w", err)
	}
	return EncodeValue(v, opts...)
}

// DecodeJSON converts TOON bytes to a JSON document in one step.
func DecodeJSON(src []byte, opts ...DecodeOption) ([]byte, error) {
	v, err := DecodeValue(src, opts...)
	if err != nil {
		return nil, err
	}
	return jsonconv.ToJSON(v)
}
