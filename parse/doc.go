// Package parse implements the TOON-Text parser of spec.md §4.1 and
// §4.3: a recursive descent reader over the token.Token stream that
// reconstructs a *value.Value, passing the expected indent depth down
// each recursive call and checking every line's depth against it.
package parse
