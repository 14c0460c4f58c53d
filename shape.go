package toon

// Shape classification: pure, total functions the encoder and the
// format selector share to decide tabular vs nested rendering.

// IsUniformArray reports whether v is an array whose every element is an
// object with an identical key set. Arrays shorter than 2 are never
// uniform. Key set comparison ignores field order; element order within
// the array is preserved for row order.
func IsUniformArray(v *Value) bool {
	if v == nil || v.kind != KindArr {
		return false
	}
	return isUniformElems(v.arrVal)
}

func isUniformElems(elems []*Value) bool {
	if len(elems) < 2 {
		return false
	}

	first := elems[0]
	if first.Kind() != KindObj {
		return false
	}

	firstKeys := make(map[string]struct{}, len(first.objVal))
	for _, f := range first.objVal {
		firstKeys[f.Key] = struct{}{}
	}

	for _, elem := range elems[1:] {
		if elem.Kind() != KindObj {
			return false
		}
		if len(elem.objVal) != len(firstKeys) {
			return false
		}
		for _, f := range elem.objVal {
			if _, ok := firstKeys[f.Key]; !ok {
				return false
			}
		}
	}

	return true
}

// TabularWrapper reports whether v is an object with exactly one entry
// whose value is a non-empty array, returning the key and the array rows.
func TabularWrapper(v *Value) (key string, rows []*Value, ok bool) {
	if v == nil || v.kind != KindObj || len(v.objVal) != 1 {
		return "", nil, false
	}
	entry := v.objVal[0]
	if entry.Value.Kind() != KindArr || len(entry.Value.arrVal) == 0 {
		return "", nil, false
	}
	return entry.Key, entry.Value.arrVal, true
}
