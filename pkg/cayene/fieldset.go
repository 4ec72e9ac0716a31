package cayene

import (
	"fmt"
	"sort"
)

// FieldSet offers typed accessors on top of a decoded payload.
type FieldSet struct {
	data Payload
}

// FieldSet returns a FieldSet wrapper for the result's readings.
func (r Result) FieldSet() FieldSet {
	return FieldSet{data: r.Readings}
}

// FieldSet returns a FieldSet wrapper for the payload.
func (p Payload) FieldSet() FieldSet {
	return FieldSet{data: p}
}

// Map exposes the underlying payload for callers that need raw access.
func (fs FieldSet) Map() Payload {
	return fs.data
}

// Raw returns the stored value without conversions.
func (fs FieldSet) Raw(key string) (Value, bool) {
	if fs.data == nil {
		return nil, false
	}
	v, ok := fs.data[key]
	return v, ok
}

// Float returns a scalar reading as float64. Both Decimal and Unsigned
// readings qualify.
func (fs FieldSet) Float(key string) (float64, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return 0, fmt.Errorf("reading %q missing", key)
	}
	switch n := v.(type) {
	case Decimal:
		return float64(n), nil
	case Unsigned:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("reading %q is not scalar (%T)", key, v)
	}
}

// Uint returns an unsigned integer reading.
func (fs FieldSet) Uint(key string) (uint64, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return 0, fmt.Errorf("reading %q missing", key)
	}
	n, ok := v.(Unsigned)
	if !ok {
		return 0, fmt.Errorf("reading %q is not unsigned (%T)", key, v)
	}
	return uint64(n), nil
}

// Vector returns a three-axis reading.
func (fs FieldSet) Vector(key string) (Vector, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return Vector{}, fmt.Errorf("reading %q missing", key)
	}
	vec, ok := v.(Vector)
	if !ok {
		return Vector{}, fmt.Errorf("reading %q is not a vector (%T)", key, v)
	}
	return vec, nil
}

// Location returns a GPS reading.
func (fs FieldSet) Location(key string) (Location, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return Location{}, fmt.Errorf("reading %q missing", key)
	}
	loc, ok := v.(Location)
	if !ok {
		return Location{}, fmt.Errorf("reading %q is not a location (%T)", key, v)
	}
	return loc, nil
}

// Keys returns the reading keys in sorted order.
func (fs FieldSet) Keys() []string {
	keys := make([]string, 0, len(fs.data))
	for k := range fs.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
