// Package token tokenizes TOON-Text (spec.md §4.1) into a flat stream
// of Token values. The tokenizer is a single left-to-right scan: it
// has no lookahead beyond one rune, and the only state it keeps across
// lines is the indent unit (width and character) fixed by the first
// indented line. Indentation is reported as a plain Token carrying a
// line's indent depth; the parse package turns that depth stream into a
// tree by passing the expected depth down its recursive descent
// (spec.md §4.1's "recursive descent over a line-oriented token
// stream").
package token
