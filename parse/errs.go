package parse

import "errors"

var (
	ErrEmptyInput      = errors.New("empty input")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrTrailingGarbage = errors.New("trailing garbage")
	ErrMixedCellType   = errors.New("mixed cell type in tabular row")
)
