// Package jsonconv converts between raw JSON bytes and *value.Value,
// the neutral JSON data model every TOON codec shares. It uses
// github.com/segmentio/encoding/json rather than encoding/json: the
// segmentio decoder exposes json.Number the same way, but its
// allocation-light tokenizer is the same one the rest of this pack
// reaches for on the hot JSON-decode path.
package jsonconv
