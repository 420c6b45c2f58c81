package compact

import "errors"

var (
	ErrBadMagic        = errors.New("bad magic prefix")
	ErrUnknownTag      = errors.New("unknown tag")
	ErrTruncated       = errors.New("truncated input")
	ErrBadUTF8         = errors.New("string bytes are not valid UTF-8")
	ErrUnsortedKeys    = errors.New("object keys not strictly ascending")
	ErrTrailingGarbage = errors.New("trailing garbage after root value")
	ErrEmptyInput      = errors.New("empty input")
	ErrBadBigDecimal   = errors.New("bad big-decimal literal")
)
