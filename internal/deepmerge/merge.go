// Package deepmerge implements the recursive map merge and deep copy the
// override store is built on.
package deepmerge

// Merge returns the key-wise union of base and update. Where both sides
// hold a nested map at the same key the maps merge recursively; everywhere
// else the update value wins, including zero values (an override of false
// must replace an override of true). Neither input is mutated and the
// result shares no maps or slices with either.
func Merge(base, update map[string]any) map[string]any {
	out := Clone(base)
	if out == nil {
		out = make(map[string]any, len(update))
	}
	for key, value := range update {
		existing, ok := out[key]
		if ok {
			existingMap, existingIsMap := existing.(map[string]any)
			updateMap, updateIsMap := value.(map[string]any)
			if existingIsMap && updateIsMap {
				out[key] = Merge(existingMap, updateMap)
				continue
			}
		}
		out[key] = cloneValue(value)
	}
	return out
}

// Clone deep-copies a nested map. Nested map[string]any and []any values
// are copied recursively; other values are carried as-is. Clone(nil)
// returns nil.
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return Clone(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		return value
	}
}
