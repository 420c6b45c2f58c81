package tabular

import "github.com/toon-format/toon-go/value"

// Eligible reports whether arr qualifies for tabular layout under
// spec.md §4.3's rules 1-5, returning the shared, sorted key set to
// use as the header when it does.
//
// Rule 4 ("no element's values contain a newline or , in their
// canonical text form except when JSON-quoted") is not checked
// separately here: it is automatically satisfied by every Value this
// detector lets through, because rule 5 restricts cell values to
// scalars, and the encoder's atom rendering always either leaves a
// bare atom free of those characters by construction or escapes them
// inside a JSON-quoted literal. There is no scalar rendering that
// could violate rule 4 once rule 5 holds.
func Eligible(arr *value.Value) (keys []string, ok bool) {
	if arr.Type != value.ArrayType || len(arr.Values) == 0 {
		return nil, false
	}
	first := arr.Values[0]
	if first.Type != value.ObjectType {
		return nil, false
	}
	keys = first.Keys()
	for _, elem := range arr.Values {
		if elem.Type != value.ObjectType {
			return nil, false
		}
		if !sameKeys(keys, elem.Keys()) {
			return nil, false
		}
		for _, f := range elem.Fields {
			if !f.Val.IsScalar() {
				return nil, false
			}
		}
	}
	return keys, true
}

func sameKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
