// Package tabular implements the tabular-array detector of spec.md
// §4.3: deciding whether an Array of uniform, flat Objects can be
// rendered as a header row plus data rows instead of the ordinary
// array layout. It holds no encoding or parsing logic of its own;
// encode calls Eligible to decide layout and to get the header's key
// order. The parse package reads tables back without calling it.
package tabular
