package system

import "reflect"

// Access declares the world data and resources a parallel system reads and
// writes, keyed by reflect.Type (see world.Key). The executor uses declared
// access to decide which systems may run concurrently; it never inspects what
// a system actually touches, so an incomplete declaration is a data race
// waiting to happen.
type Access struct {
	reads  map[reflect.Type]struct{}
	writes map[reflect.Type]struct{}
}

// AccessOption is a functional option applied when building an Access
// declaration via NewAccess.
type AccessOption func(*Access)

// Reads declares read-only access to the given type keys.
//
// Parameters:
//   - keys: type keys obtained from world.Key
//
// Returns:
//   - AccessOption: option function to apply
func Reads(keys ...reflect.Type) AccessOption {
	return func(a *Access) {
		for _, k := range keys {
			a.reads[k] = struct{}{}
		}
	}
}

// Writes declares read-write access to the given type keys.
//
// Parameters:
//   - keys: type keys obtained from world.Key
//
// Returns:
//   - AccessOption: option function to apply
func Writes(keys ...reflect.Type) AccessOption {
	return func(a *Access) {
		for _, k := range keys {
			a.writes[k] = struct{}{}
		}
	}
}

// NewAccess builds an access declaration from the provided options.
// An empty declaration conflicts with nothing.
//
// Parameters:
//   - options: Reads/Writes options to apply
//
// Returns:
//   - Access: the built declaration
func NewAccess(options ...AccessOption) Access {
	a := Access{
		reads:  make(map[reflect.Type]struct{}),
		writes: make(map[reflect.Type]struct{}),
	}
	for _, opt := range options {
		opt(&a)
	}
	return a
}

// ConflictsWith reports whether two declarations cannot run concurrently:
// a conflict exists when either side writes a key the other reads or writes.
//
// Parameters:
//   - other: the declaration to compare against
//
// Returns:
//   - bool: true if the two declarations conflict
func (a Access) ConflictsWith(other Access) bool {
	for k := range a.writes {
		if _, ok := other.writes[k]; ok {
			return true
		}
		if _, ok := other.reads[k]; ok {
			return true
		}
	}
	for k := range other.writes {
		if _, ok := a.reads[k]; ok {
			return true
		}
	}
	return false
}
