// Package encode renders a *value.Value as TOON-Text: the indented,
// human-editable surface syntax of spec.md §4. It walks the value tree
// once, choosing between ordinary and tabular array layouts per
// spec.md §4.3. Numbers are formatted here (number.go); string and key
// quoting is delegated to the token package so the text it writes
// always re-tokenizes losslessly.
package encode
