package token

import "errors"

var (
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrBadEscape          = errors.New("bad escape sequence")
	ErrInconsistentIndent = errors.New("inconsistent indentation")
	ErrBadNumber          = errors.New("bad number")
	ErrBadUTF8            = errors.New("invalid UTF-8")
	ErrExpectedToken      = errors.New("expected token")
)
