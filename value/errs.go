package value

import "errors"

var (
	ErrNaNOrInfinity    = errors.New("NaN or infinity is not representable")
	ErrNumberOutOfRange = errors.New("number out of IEEE-754 double range")
	ErrNonUTF8String    = errors.New("string is not valid UTF-8")
	ErrDuplicateKey     = errors.New("duplicate object key")
	ErrBadBigDecimal    = errors.New("malformed big-decimal literal")
)
