package encode

// Option configures Encode, following the same functional-option shape
// as parse.Option and the teacher's EncodeOption record.
type Option func(*options)

type options struct {
	indent        int
	tabularArrays bool
	strict        bool
	color         bool
}

func defaultOptions() *options {
	return &options{indent: 2, tabularArrays: true}
}

// Indent sets the number of spaces per nesting level. The default is
// 2; spec.md §4.1 does not mandate a specific width, only that it be
// consistent throughout a document.
func Indent(n int) Option {
	return func(o *options) { o.indent = n }
}

// TabularArrays toggles whether eligible arrays of uniform objects are
// rendered with the `#`-header layout of spec.md §4.3. It is on by
// default; pass TabularArrays(false) to always use the ordinary array
// layout.
func TabularArrays(on bool) Option {
	return func(o *options) { o.tabularArrays = on }
}

// Strict rejects values an encoder could otherwise serialize lossily
// or silently reshape: a BigKind number whose canonical text the
// caller never validated, or an Array that fails tabular eligibility
// while TabularArrays is set (spec.md §4.3 "strict mode"). Mirrors
// parse.Strict for API symmetry.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// Color turns on ANSI syntax coloring of the output, grounded in the
// teacher's encode/encode_colors.go. When coloring is active the
// output carries ANSI escape sequences, which parse.Parse does not
// accept; with the escapes stripped (or when color.NoColor is set) the
// bytes are the same as without Color.
func Color(on bool) Option {
	return func(o *options) { o.color = on }
}
