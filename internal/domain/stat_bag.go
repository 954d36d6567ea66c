package domain

import "encoding/json"

// StatBag is a free-form map of named stats as authored in content JSON.
// Numbers arrive as float64 after decoding; accessors truncate toward zero.
type StatBag map[string]any

// Int returns the numeric value at key truncated to an int, or 0.
func (b StatBag) Int(key string) int {
	f, ok := numeric(b[key])
	if !ok {
		return 0
	}
	return int(f)
}

// Float returns the numeric value at key.
func (b StatBag) Float(key string) (float64, bool) {
	return numeric(b[key])
}

// String returns the string value at key, or "".
func (b StatBag) String(key string) string {
	s, _ := b[key].(string)
	return s
}

// IntMap returns a nested map of numbers at key, e.g. a damage_reduction table.
func (b StatBag) IntMap(key string) map[string]int {
	out := map[string]int{}
	switch m := b[key].(type) {
	case map[string]any:
		for k, v := range m {
			if f, ok := numeric(v); ok {
				out[k] = int(f)
			}
		}
	case map[string]int:
		for k, v := range m {
			out[k] = v
		}
	case map[string]float64:
		for k, v := range m {
			out[k] = int(v)
		}
	}
	return out
}

// Clone returns a deep copy. Nested maps and slices are copied so the clone
// never aliases the source.
func (b StatBag) Clone() StatBag {
	if b == nil {
		return StatBag{}
	}
	out := make(StatBag, len(b))
	for k, v := range b {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case StatBag:
		return t.Clone()
	case map[string]any:
		return map[string]any(StatBag(t).Clone())
	case map[string]int:
		m := make(map[string]int, len(t))
		for k, n := range t {
			m[k] = n
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	case []int:
		return append([]int(nil), t...)
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

func numeric(v any) (float64, bool) {
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
	default:
		return 0, false
	}
}
