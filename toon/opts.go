package toon

import (
	"github.com/toon-format/toon-go/encode"
	"github.com/toon-format/toon-go/parse"
)

// EncodeOption configures EncodeValue. Recognized options cover both
// the text and compact codecs; options meaningless to the selected
// form are ignored, per spec.md §4.5 ("If compact, the tabular and
// indent options are ignored").
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	compact bool
	text    []encode.Option
}

// Compact selects TOON-Compact binary framing instead of TOON-Text.
func Compact(on bool) EncodeOption {
	return func(o *encodeOptions) { o.compact = on }
}

// Indent sets the TOON-Text indent width. Ignored when Compact is set.
func Indent(n int) EncodeOption {
	return func(o *encodeOptions) { o.text = append(o.text, encode.Indent(n)) }
}

// TabularArrays toggles the tabular array layout in TOON-Text. Ignored
// when Compact is set.
func TabularArrays(on bool) EncodeOption {
	return func(o *encodeOptions) { o.text = append(o.text, encode.TabularArrays(on)) }
}

// Strict enables the encoder's strict-mode checks.
func Strict() EncodeOption {
	return func(o *encodeOptions) { o.text = append(o.text, encode.Strict()) }
}

// Color turns on ANSI syntax coloring of TOON-Text output.
func Color(on bool) EncodeOption {
	return func(o *encodeOptions) { o.text = append(o.text, encode.Color(on)) }
}

// DecodeOption configures DecodeValue. Per spec.md §4.6 the decoder
// never consults a configuration hint to choose the form; these
// options only reach the text parser once the form is known.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	text []parse.Option
}

// StrictDecode enables the text parser's strict mode.
func StrictDecode() DecodeOption {
	return func(o *decodeOptions) { o.text = append(o.text, parse.Strict()) }
}
