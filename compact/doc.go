// Package compact implements TOON-Compact, the self-delimiting binary
// framing of spec.md §4.4: a 5-byte magic prefix followed by one
// tagged value. Every multi-byte integer is little-endian; strings and
// aggregates are length- or count-prefixed so a reader never needs to
// scan for a terminator.
package compact
