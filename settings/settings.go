// Package settings defines the persisted configuration format shared by all
// shape generators.
//
// A Config maps setting keys to a closed set of scalar values: Number, Bool
// and String. Generators decode a Config tolerantly: unknown keys are
// ignored, missing keys keep their defaults and values of the wrong kind are
// coerced where a lossless reading exists (for example the string "0.5" as a
// number, or the number 1 as true).
package settings

import (
	"math"
	"sort"
	"strconv"
)

// Value is a scalar setting value.
// This is a sealed interface - only Number, Bool and String implement it.
type Value interface {
	// valueMarker is an unexported method that seals this interface.
	valueMarker()
}

// Number is a numeric setting value.
type Number float64

// Bool is a boolean setting value.
type Bool bool

// String is a textual setting value, such as a generator name.
type String string

func (Number) valueMarker() {}
func (Bool) valueMarker()   {}
func (String) valueMarker() {}

// Of converts a Go scalar into a Value.
// Integer, float, bool and string kinds are accepted, as is any Value.
// The second result is false for every other type and for NaN or infinite
// numbers.
func Of(x any) (Value, bool) {
	switch v := x.(type) {
	case Value:
		return v, v != nil
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return Number(v), true
	case int8:
		return Number(v), true
	case int16:
		return Number(v), true
	case int32:
		return Number(v), true
	case int64:
		return Number(v), true
	case uint:
		return Number(v), true
	case uint8:
		return Number(v), true
	case uint16:
		return Number(v), true
	case uint32:
		return Number(v), true
	case uint64:
		return Number(v), true
	case bool:
		return Bool(v), true
	case string:
		return String(v), true
	}
	return nil, false
}

func finite(f float64) (Value, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return Number(f), true
}

// Native returns the Go scalar held by v: float64, bool or string.
func Native(v Value) any {
	switch t := v.(type) {
	case Number:
		return float64(t)
	case Bool:
		return bool(t)
	case String:
		return string(t)
	}
	return nil
}

// AsFloat coerces v to a finite float64.
// Bools read as 0 or 1; strings are parsed with strconv.ParseFloat.
func AsFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case Number:
		f := float64(t)
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	case Bool:
		if t {
			return 1, true
		}
		return 0, true
	case String:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// AsBool coerces v to a bool.
// Numbers read as true when non-zero; strings are parsed with
// strconv.ParseBool.
func AsBool(v Value) (bool, bool) {
	switch t := v.(type) {
	case Bool:
		return bool(t), true
	case Number:
		if math.IsNaN(float64(t)) {
			return false, false
		}
		return t != 0, true
	case String:
		b, err := strconv.ParseBool(string(t))
		if err != nil {
			return false, false
		}
		return b, true
	}
	return false, false
}

// AsString returns the text of a String value.
// Numbers and bools are not names and do not coerce.
func AsString(v Value) (string, bool) {
	if s, ok := v.(String); ok {
		return string(s), true
	}
	return "", false
}

// Clamp01 limits f to the range [0, 1].
func Clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Config is a generator configuration keyed by setting name.
type Config map[string]Value

// Float returns the value for key coerced to a number.
func (c Config) Float(key string) (float64, bool) {
	v, ok := c[key]
	if !ok {
		return 0, false
	}
	return AsFloat(v)
}

// FloatOr returns the value for key coerced to a number, or def.
func (c Config) FloatOr(key string, def float64) float64 {
	if f, ok := c.Float(key); ok {
		return f
	}
	return def
}

// Bool returns the value for key coerced to a bool.
func (c Config) Bool(key string) (bool, bool) {
	v, ok := c[key]
	if !ok {
		return false, false
	}
	return AsBool(v)
}

// BoolOr returns the value for key coerced to a bool, or def.
func (c Config) BoolOr(key string, def bool) bool {
	if b, ok := c.Bool(key); ok {
		return b
	}
	return def
}

// Text returns the string value for key.
func (c Config) Text(key string) (string, bool) {
	v, ok := c[key]
	if !ok {
		return "", false
	}
	return AsString(v)
}

// Keys returns the configured keys in sorted order.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the configuration.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Equal reports whether both configurations hold the same keys and values.
func (c Config) Equal(other Config) bool {
	if len(c) != len(other) {
		return false
	}
	for k, v := range c {
		w, ok := other[k]
		if !ok || v != w {
			return false
		}
	}
	return true
}

// ToMap converts the configuration into plain Go scalars for encoding.
func (c Config) ToMap() map[string]any {
	out := make(map[string]any, len(c))
	for k, v := range c {
		out[k] = Native(v)
	}
	return out
}

// FromMap converts decoded document data into a Config.
// Entries that are not scalars are dropped.
func FromMap(m map[string]any) Config {
	out := make(Config, len(m))
	for k, x := range m {
		if v, ok := Of(x); ok {
			out[k] = v
		}
	}
	return out
}
