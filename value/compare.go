package value

// Equal reports whether a and b are equal under the JSON equivalence
// of spec.md §3: Null/Bool/String/Array compare element-wise, Number
// compares under double-precision value equality (except that two
// BigKind numbers compare by exact canonical text, since that is the
// only case where double equality would lose precision on purpose),
// and Object compares as a mapping, ignoring field order.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return numberEqual(a, b)
	case StringType:
		return a.Str == b.Str
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for _, fa := range a.Fields {
			bv := b.Get(fa.Key)
			if bv == nil || !Equal(fa.Val, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func numberEqual(a, b *Value) bool {
	if a.NumKind == BigKind || b.NumKind == BigKind {
		return a.NumKind == BigKind && b.NumKind == BigKind && a.Big == b.Big
	}
	return a.asFloat() == b.asFloat()
}

func (v *Value) asFloat() float64 {
	if v.NumKind == IntKind {
		return float64(v.Int64)
	}
	return v.Float64
}
