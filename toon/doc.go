// Package toon is the top-level facade: it selects text vs compact on
// encode, auto-detects the form on decode from the leading magic
// (spec.md §4.6), and exposes the JSON bridge through jsonconv. It
// mirrors the teacher's encode.Encode/parse.Parse top-level entry
// points, wired to this module's own value.Value IR.
package toon
