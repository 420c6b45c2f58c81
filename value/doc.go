// Package value provides the neutral in-memory representation of a JSON
// value used by the rest of the toon module.
//
// A Value is a tagged union: exactly one of its fields is meaningful,
// selected by Type. It is produced by the jsonconv, compact, and parse
// packages and consumed by the encode and compact packages. Values carry
// no position information and no shared mutable state; they have no
// lifetime beyond a single encode or decode call.
//
// Object field order is not significant and is not preserved: Fields
// is kept sorted ascending by UTF-8 byte order at construction time via
// FromObject and FromFields, and the encoders emit Fields in that stored
// order without sorting again.
package value
