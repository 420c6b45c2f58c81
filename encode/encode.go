package encode

import (
	"bytes"
	"fmt"

	"github.com/toon-format/toon-go/debug"
	"github.com/toon-format/toon-go/tabular"
	"github.com/toon-format/toon-go/token"
	"github.com/toon-format/toon-go/value"
)

// Encode renders v as a complete TOON-Text document, always ending in
// a trailing newline.
func Encode(v *value.Value, opts ...Option) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("encode: nil value")
	}
	o := defaultOptions()
	for _, f := range opts {
		f(o)
	}
	if o.strict {
		if err := rejectBigKind(v); err != nil {
			return nil, err
		}
	}
	e := &encoder{opts: o}
	e.writeIndent(0)
	if err := e.writeValue(v, 0); err != nil {
		return nil, err
	}
	e.buf.WriteByte('\n')
	return e.buf.Bytes(), nil
}

type encoder struct {
	buf  bytes.Buffer
	opts *options
}

func (e *encoder) writeIndent(depth int) {
	for i := 0; i < depth*e.opts.indent; i++ {
		e.buf.WriteByte(' ')
	}
}

func (e *encoder) writeValue(v *value.Value, depth int) error {
	switch v.Type {
	case value.ObjectType:
		return e.writeObject(v, depth)
	case value.ArrayType:
		return e.writeArray(v, depth)
	default:
		return e.writeAtom(v)
	}
}

func (e *encoder) writeObject(v *value.Value, depth int) error {
	e.write(e.punct("{"))
	if len(v.Fields) == 0 {
		e.write(e.punct("}"))
		return nil
	}
	e.buf.WriteByte('\n')
	for _, f := range v.Fields {
		e.writeIndent(depth + 1)
		e.write(e.key(atomKey(f.Key)))
		e.write(e.punct(": "))
		if err := e.writeValue(f.Val, depth+1); err != nil {
			return err
		}
		e.buf.WriteByte('\n')
	}
	e.writeIndent(depth)
	e.write(e.punct("}"))
	return nil
}

func (e *encoder) writeArray(v *value.Value, depth int) error {
	if e.opts.tabularArrays {
		if keys, ok := tabular.Eligible(v); ok {
			debug.Logf("encode: array at depth %d is tabular-eligible, using header layout", depth)
			return e.writeTabularArray(v, keys, depth)
		}
		if e.opts.strict {
			return ErrNonUniformArray
		}
		debug.Logf("encode: array at depth %d is not tabular-eligible, falling back to ordinary layout", depth)
	}
	e.write(e.punct("["))
	if len(v.Values) == 0 {
		e.write(e.punct("]"))
		return nil
	}
	e.buf.WriteByte('\n')
	for i, elem := range v.Values {
		e.writeIndent(depth + 1)
		if err := e.writeValue(elem, depth+1); err != nil {
			return err
		}
		if i < len(v.Values)-1 {
			e.write(e.punct(","))
		}
		e.buf.WriteByte('\n')
	}
	e.writeIndent(depth)
	e.write(e.punct("]"))
	return nil
}

func (e *encoder) writeTabularArray(v *value.Value, keys []string, depth int) error {
	e.write(e.punct("["))
	e.buf.WriteByte('\n')
	e.writeIndent(depth + 1)
	e.write(e.punct("# "))
	for i, k := range keys {
		if i > 0 {
			e.write(e.punct(", "))
		}
		e.write(e.key(atomKey(k)))
	}
	e.buf.WriteByte('\n')
	for rowIdx, row := range v.Values {
		e.writeIndent(depth + 1)
		for i, k := range keys {
			if i > 0 {
				e.write(e.punct(", "))
			}
			cell := row.Get(k)
			if err := e.writeAtom(cell); err != nil {
				return err
			}
		}
		if rowIdx < len(v.Values)-1 {
			e.write(e.punct(","))
		}
		e.buf.WriteByte('\n')
	}
	e.writeIndent(depth)
	e.write(e.punct("]"))
	return nil
}

func (e *encoder) writeAtom(v *value.Value) error {
	switch v.Type {
	case value.NullType:
		e.write(e.literal("null"))
	case value.BoolType:
		e.write(e.literal(boolText(v.Bool)))
	case value.NumberType:
		e.write(e.number(formatNumber(v)))
	case value.StringType:
		e.write(e.str(atomString(v.Str)))
	default:
		return fmt.Errorf("encode: %s cannot appear as a tabular cell or bare atom", v.Type)
	}
	return nil
}

func (e *encoder) write(s string) {
	e.buf.WriteString(s)
}

func boolText(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func atomString(s string) string {
	if token.NeedsQuote(s) {
		return token.Quote(s)
	}
	return s
}

func atomKey(k string) string {
	if token.NeedsQuote(k) {
		return token.Quote(k)
	}
	return k
}

// rejectBigKind walks v with Value.Visit before a single byte is
// written, so Strict mode's refusal of the big-number escape hatch
// (spec.md §4.2's core non-strict rule: numbers outside the IEEE-754
// double range are rejected) produces no partial output, matching
// the "no output" contract of property 8 in spec.md §8.
func rejectBigKind(v *value.Value) error {
	var err error
	v.Visit(func(n *value.Value) bool {
		if n.Type == value.NumberType && n.NumKind == value.BigKind {
			err = value.ErrNumberOutOfRange
			return false
		}
		return err == nil
	})
	return err
}
