package world

import (
	"reflect"
	"sync"
)

// Resources is a typed key-value table shared by every system in a schedule.
// Values are keyed by their concrete type: inserting a second value of the
// same type replaces the first. The table itself is safe for concurrent use;
// coordination of access to the stored values is the scheduler's concern
// (declared read/write access), not the table's.
type Resources struct {
	mu      sync.RWMutex
	entries map[reflect.Type]any
}

// NewResources creates an empty resource table.
//
// Returns:
//   - *Resources: the newly created table
func NewResources() *Resources {
	return &Resources{
		entries: make(map[reflect.Type]any),
	}
}

// Insert stores value under its concrete type, replacing any existing value
// of that type.
//
// Parameters:
//   - value: the resource value to store (must be non-nil)
func (r *Resources) Insert(value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[reflect.TypeOf(value)] = value
}

// Len returns the number of stored resources.
//
// Returns:
//   - int: count of distinct resource types currently stored
func (r *Resources) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// lookup returns the raw entry for a type key.
func (r *Resources) lookup(key reflect.Type) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	return v, ok
}

// remove deletes the entry for a type key.
func (r *Resources) remove(key reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}

// Key returns the reflect.Type key under which a value of type T is stored.
// The same key is used by system access declarations, so a system declaring
// Writes(world.Key[Time]()) conflicts with one declaring Reads of the same.
//
// Returns:
//   - reflect.Type: the type key for T
func Key[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Get retrieves the resource of type T.
//
// Parameters:
//   - r: the resource table to read
//
// Returns:
//   - T: the stored value (zero value if absent)
//   - bool: true if a value of type T was present
func Get[T any](r *Resources) (T, bool) {
	v, ok := r.lookup(Key[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// MustGet retrieves the resource of type T and panics if it is absent.
// Intended for systems whose stage ordering guarantees the resource exists.
//
// Parameters:
//   - r: the resource table to read
//
// Returns:
//   - T: the stored value
func MustGet[T any](r *Resources) T {
	v, ok := Get[T](r)
	if !ok {
		panic("world: missing resource " + Key[T]().String())
	}
	return v
}

// Remove deletes the resource of type T, returning the removed value.
//
// Parameters:
//   - r: the resource table to mutate
//
// Returns:
//   - T: the removed value (zero value if absent)
//   - bool: true if a value of type T was present
func Remove[T any](r *Resources) (T, bool) {
	v, ok := Get[T](r)
	if ok {
		r.remove(Key[T]())
	}
	return v, ok
}
