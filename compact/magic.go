package compact

// Magic is the 5-byte prefix identifying a TOON-Compact stream.
var Magic = [5]byte{'T', 'O', 'O', 'N', 0x01}

// HasMagic reports whether b starts with the TOON-Compact magic.
func HasMagic(b []byte) bool {
	if len(b) < len(Magic) {
		return false
	}
	for i, c := range Magic {
		if b[i] != c {
			return false
		}
	}
	return true
}

type tag byte

const (
	tagNull    tag = 0x00
	tagFalse   tag = 0x01
	tagTrue    tag = 0x02
	tagInt64   tag = 0x03
	tagFloat64 tag = 0x04
	tagString  tag = 0x05
	tagArray   tag = 0x06
	tagObject  tag = 0x07
	// tagBigDecimal is the SPEC_FULL big-number escape hatch: 4-byte
	// length + canonical ASCII decimal text. Emitted for every BigKind
	// number, whatever its magnitude.
	tagBigDecimal tag = 0x08
)
