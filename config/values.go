package config

import "trackmap/models"

// Values is a read-only view of one overlay's settings.
type Values struct {
	name   string
	values map[string]any
}

// NewValues wraps a plain map, mostly for tests and callers without a file.
func NewValues(name string, values map[string]any) Values {
	return Values{name: name, values: values}
}

func (v Values) Name() string { return v.name }

// Float returns key as a float32, or def when absent or not numeric.
func (v Values) Float(key string, def float32) float32 {
	f, ok := toFloat(v.values[key])
	if !ok {
		return def
	}
	return f
}

// Bool returns key as a bool, or def when absent or not a bool.
func (v Values) Bool(key string, def bool) bool {
	b, ok := v.values[key].(bool)
	if !ok {
		return def
	}
	return b
}

// Color reads key as [r, g, b, a] with components in [0,1]. Alpha may be
// omitted and defaults to 1. Anything else yields def.
func (v Values) Color(key string, def models.Color) models.Color {
	list, ok := v.values[key].([]any)
	if !ok || len(list) < 3 || len(list) > 4 {
		return def
	}
	c := [4]float32{0, 0, 0, 1}
	for i, raw := range list {
		f, ok := toFloat(raw)
		if !ok {
			return def
		}
		c[i] = f
	}
	return models.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func toFloat(raw any) (float32, bool) {
	switch n := raw.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	}
	return 0, false
}
