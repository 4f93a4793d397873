package schema

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CoerceFloat converts a loosely typed store value to a float64. It accepts
// native numeric types, json.Number, and numeric strings (DynamoDB number
// sets and older pipeline versions stored scores as strings). The second
// return value is false when the value is missing or not numeric-parseable.
func CoerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// CoerceInt converts a loosely typed store value to an int, truncating
// fractional parts the way the store's number type does.
func CoerceInt(v any) (int, bool) {
	f, ok := CoerceFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// CoerceString converts a store value to a string. Non-string values are
// treated as missing rather than stringified; a numeric description is not a
// description.
func CoerceString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// SubMap returns the nested object stored under key, or ok=false when the
// field is absent, null, or not an object.
func (r RawRecord) SubMap(key string) (map[string]any, bool) {
	v, exists := r[key]
	if !exists || v == nil {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return m, true
}
