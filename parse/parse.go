package parse

import (
	"fmt"
	"strconv"

	"github.com/toon-format/toon-go/token"
	"github.com/toon-format/toon-go/value"
)

// Parse reads a complete TOON-Text document and returns its Value.
func Parse(src []byte, opts ...Option) (*value.Value, error) {
	o := &options{}
	for _, f := range opts {
		f(o)
	}
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	toks, err := token.Tokenize(src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, ErrEmptyInput
	}
	p := &parser{toks: toks, opts: o}
	if p.cur().Type != token.TIndent || p.cur().Depth != 0 {
		return nil, token.Expected("value at root indentation", p.cur().Pos)
	}
	p.i++
	val, err := p.parseInline(0)
	if err != nil {
		return nil, err
	}
	if p.i != len(p.toks) {
		return nil, fmt.Errorf("%w: %s", ErrTrailingGarbage, p.toks[p.i].Pos)
	}
	return val, nil
}

type parser struct {
	toks []token.Token
	i    int
	opts *options
}

func (p *parser) cur() *token.Token {
	if p.i < len(p.toks) {
		return &p.toks[p.i]
	}
	return nil
}

func (p *parser) eof(what string) error {
	var pos *token.Pos
	if len(p.toks) > 0 {
		pos = p.toks[len(p.toks)-1].Pos
	}
	return token.Expected(what+" before end of input", pos)
}

// parseInline parses the value that starts at the current token, which
// lives on a line whose indent depth is depth. Nested aggregates (the
// `{`/`[` case) recurse with children expected at depth+1.
func (p *parser) parseInline(depth int) (*value.Value, error) {
	t := p.cur()
	if t == nil {
		return nil, p.eof("value")
	}
	switch t.Type {
	case token.TLCurl:
		return p.parseObject(depth)
	case token.TLSquare:
		return p.parseArray(depth)
	case token.TNull:
		p.i++
		return value.Null(), nil
	case token.TTrue:
		p.i++
		return value.FromBool(true), nil
	case token.TFalse:
		p.i++
		return value.FromBool(false), nil
	case token.TInteger:
		p.i++
		return parseInt(t)
	case token.TFloat:
		p.i++
		return parseFloat(t)
	case token.TString, token.TBare:
		p.i++
		v, err := value.FromString(t.Str)
		return v, err
	default:
		return nil, token.Unexpected(t.Type.String(), t.Pos)
	}
}

// parseInt builds the Value for a TInteger token. The tokenizer's
// number grammar already validated the text, so a failed int64 parse
// only ever means magnitude overflow; that falls back to the BigKind
// escape hatch (SPEC_FULL.md §4) rather than an error, since the
// literal is still a valid JSON number just outside int64 range.
func parseInt(t *token.Token) (*value.Value, error) {
	i, err := strconv.ParseInt(t.Str, 10, 64)
	if err != nil {
		return value.FromBigDecimal(t.Str)
	}
	return value.FromInt64(i), nil
}

func parseFloat(t *token.Token) (*value.Value, error) {
	f, err := strconv.ParseFloat(t.Str, 64)
	if err != nil {
		return nil, token.Wrap(token.ErrBadNumber, err.Error(), t.Pos)
	}
	return value.FromFloat64(f)
}

func (p *parser) parseObject(depth int) (*value.Value, error) {
	p.i++ // consume '{'
	if t := p.cur(); t != nil && t.Type == token.TRCurl {
		p.i++
		return value.FromFields(nil)
	}
	var fields []value.Field
	for {
		t := p.cur()
		if t == nil {
			return nil, p.eof("'}'")
		}
		if t.Type != token.TIndent {
			return nil, token.Expected("newline before object entry", t.Pos)
		}
		if t.Depth == depth {
			p.i++
			if t := p.cur(); t == nil || t.Type != token.TRCurl {
				return nil, token.Expected("'}'", posOf(t))
			}
			p.i++
			break
		}
		if t.Depth != depth+1 {
			return nil, token.Wrap(token.ErrInconsistentIndent, "object entry indent mismatch", t.Pos)
		}
		p.i++
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		if t := p.cur(); t == nil || t.Type != token.TColon {
			return nil, token.Expected("':'", posOf(t))
		}
		p.i++
		val, err := p.parseInline(depth + 1)
		if err != nil {
			return nil, err
		}
		fields = append(fields, value.Field{Key: key, Val: val})
	}
	out, err := value.FromFields(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return out, nil
}

func (p *parser) parseKey() (string, error) {
	t := p.cur()
	if t == nil {
		return "", p.eof("object key")
	}
	switch t.Type {
	case token.TString, token.TBare:
		p.i++
		return t.Str, nil
	default:
		return "", token.Expected("object key", t.Pos)
	}
}

func (p *parser) parseArray(depth int) (*value.Value, error) {
	p.i++ // consume '['
	if t := p.cur(); t != nil && t.Type == token.TRSquare {
		p.i++
		return value.FromArray(nil), nil
	}
	if t := p.cur(); t != nil && t.Type == token.TIndent && t.Depth == depth+1 {
		if nt := p.peekAfterIndent(); nt != nil && nt.Type == token.THash {
			return p.parseTabularArray(depth)
		}
	}
	var elems []*value.Value
	for {
		t := p.cur()
		if t == nil {
			return nil, p.eof("']'")
		}
		if t.Type != token.TIndent {
			return nil, token.Expected("newline before array element", t.Pos)
		}
		if t.Depth == depth {
			p.i++
			if t := p.cur(); t == nil || t.Type != token.TRSquare {
				return nil, token.Expected("']'", posOf(t))
			}
			p.i++
			break
		}
		if t.Depth != depth+1 {
			return nil, token.Wrap(token.ErrInconsistentIndent, "array element indent mismatch", t.Pos)
		}
		p.i++
		val, err := p.parseInline(depth + 1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, val)
		if t := p.cur(); t != nil && t.Type == token.TComma {
			p.i++
		}
	}
	return value.FromArray(elems), nil
}

// peekAfterIndent looks at the token right after the current TIndent
// token without consuming anything.
func (p *parser) peekAfterIndent() *token.Token {
	if p.i+1 < len(p.toks) {
		return &p.toks[p.i+1]
	}
	return nil
}

func (p *parser) parseTabularArray(depth int) (*value.Value, error) {
	p.i++ // consume header line's TIndent
	p.i++ // consume '#'
	keys, err := p.readCells(func(t *token.Token) (string, error) {
		switch t.Type {
		case token.TString, token.TBare:
			return t.Str, nil
		default:
			return "", token.Expected("header key", t.Pos)
		}
	})
	if err != nil {
		return nil, err
	}
	var rows []*value.Value
	for {
		t := p.cur()
		if t == nil {
			return nil, p.eof("']'")
		}
		if t.Type != token.TIndent {
			return nil, token.Expected("newline before table row", t.Pos)
		}
		if t.Depth == depth {
			p.i++
			if t := p.cur(); t == nil || t.Type != token.TRSquare {
				return nil, token.Expected("']'", posOf(t))
			}
			p.i++
			break
		}
		if t.Depth != depth+1 {
			return nil, token.Wrap(token.ErrInconsistentIndent, "table row indent mismatch", t.Pos)
		}
		p.i++
		vals, err := p.readScalarCells()
		if err != nil {
			return nil, err
		}
		if len(vals) != len(keys) {
			return nil, fmt.Errorf("%w: row has %d cells, header has %d", ErrMixedCellType, len(vals), len(keys))
		}
		fields := make([]value.Field, len(keys))
		for i, k := range keys {
			fields[i] = value.Field{Key: k, Val: vals[i]}
		}
		row, err := value.FromFields(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		}
		rows = append(rows, row)
	}
	return value.FromArray(rows), nil
}

func (p *parser) parseScalarCell(t *token.Token) (*value.Value, error) {
	switch t.Type {
	case token.TNull:
		p.i++
		return value.Null(), nil
	case token.TTrue:
		p.i++
		return value.FromBool(true), nil
	case token.TFalse:
		p.i++
		return value.FromBool(false), nil
	case token.TInteger:
		p.i++
		return parseInt(t)
	case token.TFloat:
		p.i++
		return parseFloat(t)
	case token.TString, token.TBare:
		p.i++
		return value.FromString(t.Str)
	default:
		return nil, token.Expected("table cell", t.Pos)
	}
}

// readScalarCells reads a comma-separated run of scalar data-row
// cells on a single line, stopping at the next TIndent. A trailing
// comma before the line's TIndent is accepted and consumed, matching
// the ordinary-array contract of spec.md §4.1.
func (p *parser) readScalarCells() ([]*value.Value, error) {
	var out []*value.Value
	for {
		t := p.cur()
		if t == nil {
			return nil, p.eof("table cell")
		}
		v, err := p.parseScalarCell(t)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		if !p.consumeCellSeparator() {
			break
		}
	}
	return out, nil
}

// readCells reads a comma-separated run of header-key cells on a
// single line. Data rows use readScalarCells instead since their
// conversion function advances p.i itself (to share parseInline's
// per-type token handling).
func (p *parser) readCells(convert func(*token.Token) (string, error)) ([]string, error) {
	var out []string
	for {
		t := p.cur()
		if t == nil {
			return nil, p.eof("table cell")
		}
		s, err := convert(t)
		if err != nil {
			return nil, err
		}
		p.i++
		out = append(out, s)
		if !p.consumeCellSeparator() {
			break
		}
	}
	return out, nil
}

// consumeCellSeparator consumes a TComma, if present, and reports
// whether another cell is expected to follow. A comma immediately
// followed by the line-ending TIndent is a trailing comma: it is
// consumed but signals the end of the row, not another cell.
func (p *parser) consumeCellSeparator() bool {
	t := p.cur()
	if t == nil || t.Type != token.TComma {
		return false
	}
	p.i++
	if next := p.cur(); next == nil || next.Type == token.TIndent {
		return false
	}
	return true
}

func posOf(t *token.Token) *token.Pos {
	if t == nil {
		return nil
	}
	return t.Pos
}
