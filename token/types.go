package token

import "fmt"

type Type int

const (
	TIndent Type = iota
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	THash
	TNull
	TTrue
	TFalse
	TInteger
	TFloat
	TString // quoted string; Str holds the decoded value
	TBare   // unquoted bare string atom; Str holds the literal text
)

func (t Type) String() string {
	switch t {
	case TIndent:
		return "TIndent"
	case TLCurl:
		return "TLCurl"
	case TRCurl:
		return "TRCurl"
	case TLSquare:
		return "TLSquare"
	case TRSquare:
		return "TRSquare"
	case TColon:
		return "TColon"
	case TComma:
		return "TComma"
	case THash:
		return "THash"
	case TNull:
		return "TNull"
	case TTrue:
		return "TTrue"
	case TFalse:
		return "TFalse"
	case TInteger:
		return "TInteger"
	case TFloat:
		return "TFloat"
	case TString:
		return "TString"
	case TBare:
		return "TBare"
	default:
		return "<invalid token type>"
	}
}

// Token is one lexeme of a TOON-Text document.
type Token struct {
	Type Type
	Pos  *Pos

	Str   string // decoded text for TString/TBare/TInteger/TFloat (raw digits)
	Depth int    // indentation depth, meaningful only for TIndent
}

// Err carries a short expectation plus the input location, matching
// spec.md §4.1's "errors carry line and column and a short
// expectation" contract. It wraps one of the sentinel errors in
// errs.go so callers can classify failures with errors.Is.
type Err struct {
	Sentinel error
	Msg      string
	Pos      *Pos
}

func (e *Err) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Pos)
}

func (e *Err) Unwrap() error {
	return e.Sentinel
}

func Unexpected(what string, p *Pos) error {
	return &Err{Sentinel: ErrUnexpectedChar, Msg: fmt.Sprintf("unexpected %s", what), Pos: p}
}

func Expected(what string, p *Pos) error {
	return &Err{Sentinel: ErrExpectedToken, Msg: fmt.Sprintf("expected %s", what), Pos: p}
}

func Wrap(sentinel error, msg string, p *Pos) error {
	return &Err{Sentinel: sentinel, Msg: msg, Pos: p}
}
