package encode

import (
	"strconv"
	"strings"

	"github.com/toon-format/toon-go/value"
)

// formatNumber renders a NumberType Value's canonical text per
// spec.md §4.2: integers print without a decimal point or exponent;
// floats use the shortest decimal digit string that round-trips
// through ParseFloat, laid out per the spec's own thresholds rather
// than strconv's 'g' verb (see formatCanonicalFloat).
func formatNumber(v *value.Value) string {
	switch v.NumKind {
	case value.IntKind:
		return strconv.FormatInt(v.Int64, 10)
	case value.BigKind:
		return v.Big
	default:
		return formatCanonicalFloat(v.Float64)
	}
}

// formatCanonicalFloat implements spec.md §4.2's float rule directly
// instead of delegating to strconv's 'g' verb. 'g' switches to
// exponential form at magnitude < 1e-4 and zero-pads/signs the
// exponent (1e-05, 1e+21), which matches neither the spec's switch
// points (plain decimal unless the integer part would need more than
// 21 digits, or the magnitude is smaller than 1e-6) nor its exponent
// spelling.
func formatCanonicalFloat(f float64) string {
	if f == 0 {
		// Negative zero decodes to 0 (spec.md §4.2).
		return "0"
	}
	neg := f < 0
	if neg {
		f = -f
	}
	// 'e' with precision -1 yields the shortest digit sequence that
	// round-trips through ParseFloat, normalized to exactly one digit
	// before the point: "d.ddddde±XX".
	shortest := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, expPart, _ := strings.Cut(shortest, "e")
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		// strconv always emits a well-formed signed exponent here.
		panic("encode: malformed float exponent from strconv: " + shortest)
	}
	digits := strings.Replace(mantissa, ".", "", 1)

	var out string
	if exp >= 21 || exp <= -7 {
		out = exponentialDigits(digits, exp)
	} else {
		out = plainDigits(digits, exp)
	}
	if neg {
		out = "-" + out
	}
	return out
}

// plainDigits lays digits out around a decimal point so the leading
// digit occupies the 10^exp place, padding with zeros on either side
// as needed. It naturally produces a bare integer (no "." or trailing
// zeros beyond the significant digits) whenever exp+1 >= len(digits).
func plainDigits(digits string, exp int) string {
	point := exp + 1 // digits that belong before the decimal point
	switch {
	case point <= 0:
		return "0." + strings.Repeat("0", -point) + digits
	case point >= len(digits):
		return digits + strings.Repeat("0", point-len(digits))
	default:
		return digits[:point] + "." + digits[point:]
	}
}

// exponentialDigits renders digits as "d[.ddd]e±XX" with an unpadded,
// always-signed exponent, unlike strconv's 'e'/'g' verbs.
func exponentialDigits(digits string, exp int) string {
	mantissa := digits[:1]
	if len(digits) > 1 {
		mantissa += "." + digits[1:]
	}
	sign := "+"
	if exp < 0 {
		sign = "-"
		exp = -exp
	}
	return mantissa + "e" + sign + strconv.Itoa(exp)
}
