package encode

import "github.com/fatih/color"

// Colorized output is presentation only: it never changes the bytes a
// decoder sees once stripped of ANSI escapes, since color.New(...).Sprint
// is a no-op pass-through whenever color.NoColor is set or e.opts.color
// is false. Grounded in the teacher's encode/encode_colors.go, which
// assigns one color per node kind (punctuation, keys, literals,
// numbers, strings) rather than a single blanket style.
var (
	punctColor   = color.New(color.FgHiBlack)
	keyColor     = color.New(color.FgCyan)
	literalColor = color.New(color.FgMagenta)
	numberColor  = color.New(color.FgYellow)
	strColor     = color.New(color.FgGreen)
)

func (e *encoder) punct(s string) string {
	if !e.opts.color {
		return s
	}
	return punctColor.Sprint(s)
}

func (e *encoder) key(s string) string {
	if !e.opts.color {
		return s
	}
	return keyColor.Sprint(s)
}

func (e *encoder) literal(s string) string {
	if !e.opts.color {
		return s
	}
	return literalColor.Sprint(s)
}

func (e *encoder) number(s string) string {
	if !e.opts.color {
		return s
	}
	return numberColor.Sprint(s)
}

func (e *encoder) str(s string) string {
	if !e.opts.color {
		return s
	}
	return strColor.Sprint(s)
}
