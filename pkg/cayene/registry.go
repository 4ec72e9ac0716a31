package cayene

import (
	"sort"
	"sync"
)

// DecodeFunc converts a value slice of exactly the descriptor's width
// into a Value. The engine validates the width before calling it.
type DecodeFunc func(data []byte) Value

// TypeDescriptor describes one registered data type. Immutable once
// registered.
type TypeDescriptor struct {
	ID      byte
	Name    string
	Width   int
	Builtin bool
	Decode  DecodeFunc
}

// Registry maps type identifier bytes to their descriptors. Lookups and
// registrations may run concurrently; registrations are expected to
// happen before decoding starts.
type Registry struct {
	mu    sync.RWMutex
	types map[byte]TypeDescriptor
}

// NewRegistry returns a registry pre-populated with the standard
// Cayenne LPP data types.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[byte]TypeDescriptor, len(builtinTypes))}
	for _, td := range builtinTypes {
		r.types[td.ID] = td
	}
	return r
}

// Register stores a descriptor for an unused type identifier and
// reports whether the insertion happened. Registering an already known
// identifier is a no-op, so setup code can run idempotently. Malformed
// descriptors are rejected the same way.
func (r *Registry) Register(id byte, name string, width int, fn DecodeFunc) bool {
	if name == "" || width < 1 || fn == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[id]; exists {
		return false
	}
	r.types[id] = TypeDescriptor{ID: id, Name: name, Width: width, Decode: fn}
	return true
}

// Lookup returns the descriptor for a type identifier.
func (r *Registry) Lookup(id byte) (TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	td, ok := r.types[id]
	return td, ok
}

// Types returns a snapshot of all descriptors sorted by identifier.
func (r *Registry) Types() []TypeDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]TypeDescriptor, 0, len(r.types))
	for _, td := range r.types {
		out = append(out, td)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
