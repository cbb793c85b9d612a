package plugin

import "strconv"

// Params is one plugin instance's settings as read from the preset.
// Values are whatever the JSON decoder produced: float64, bool, string,
// nested maps. Accessors never fail; they fall back to the given default.
type Params map[string]any

// Float returns key as a number. Numeric strings are parsed; anything
// unparseable, or a missing key, yields def.
func (p Params) Float(key string, def float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case bool:
		if v {
			return 1.0
		}
		return 0.0
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// Bool returns key with JSON truthiness: non-zero numbers, non-empty
// strings and non-empty containers are true, null is false.
func (p Params) Bool(key string, def bool) bool {
	raw, ok := p[key]
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		return v != ""
	case map[string]any:
		return len(v) > 0
	case []any:
		return len(v) > 0
	}
	return def
}

// Option returns key as an enum option name. present is false when the key
// is absent; ok is false when it is present but not a string.
func (p Params) Option(key string) (value string, present, ok bool) {
	raw, present := p[key]
	if !present {
		return "", false, false
	}
	value, ok = raw.(string)
	return value, true, ok
}

// Section returns a nested settings object, or empty Params.
func (p Params) Section(key string) Params {
	switch v := p[key].(type) {
	case map[string]any:
		return Params(v)
	case Params:
		return v
	}
	return Params{}
}
