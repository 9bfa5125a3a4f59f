// Where: internal/domain/value/value.go
// What: Value conversion helpers for loosely typed input.
// Why: Keep numeric coercion strict and shared by packages that accept `any`.
package value

// AsFloat converts any Go integer or float kind to float64.
// Strings, booleans, nil and everything else are rejected, so "1" is not a number.
func AsFloat(value any) (float64, bool) {
	switch typed := value.(type) {
	case int:
		return float64(typed), true
	case int8:
		return float64(typed), true
	case int16:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case uint:
		return float64(typed), true
	case uint8:
		return float64(typed), true
	case uint16:
		return float64(typed), true
	case uint32:
		return float64(typed), true
	case uint64:
		return float64(typed), true
	case float32:
		return float64(typed), true
	case float64:
		return typed, true
	}
	return 0, false
}

// AsFloats converts every element, reporting the index of the first failure.
func AsFloats(values []any) ([]float64, int, bool) {
	out := make([]float64, 0, len(values))
	for i, v := range values {
		f, ok := AsFloat(v)
		if !ok {
			return nil, i, false
		}
		out = append(out, f)
	}
	return out, -1, true
}
