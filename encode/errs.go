package encode

import "errors"

// ErrNonUniformArray is returned by Encode when Strict and
// TabularArrays are both requested and an Array fails the tabular
// eligibility test of spec.md §4.3. Without Strict, the same Array
// falls back to ordinary layout instead of erroring.
var ErrNonUniformArray = errors.New("array is not tabular-eligible")
