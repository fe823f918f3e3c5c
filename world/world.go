package world

import (
	"reflect"
	"sort"
	"sync"
)

// Entity is an opaque identifier for an entity in the World. IDs are assigned
// sequentially starting at 1; 0 is never a valid entity.
type Entity uint64

// World is the entity/component store shared by every system in a schedule.
// Components are stored per type in entity-keyed maps. The store is safe for
// concurrent use; as with Resources, conflict-free concurrent access is
// achieved by the scheduler through declared access, not by this lock.
type World struct {
	mu         sync.RWMutex
	nextEntity Entity
	components map[reflect.Type]map[Entity]any
}

// NewWorld creates an empty world.
//
// Returns:
//   - *World: the newly created world
func NewWorld() *World {
	return &World{
		nextEntity: 1,
		components: make(map[reflect.Type]map[Entity]any),
	}
}

// Spawn allocates a new entity with no components.
//
// Returns:
//   - Entity: the newly assigned entity ID
func (w *World) Spawn() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	e := w.nextEntity
	w.nextEntity++
	return e
}

// Set attaches component to entity e, replacing any existing component of the
// same type.
//
// Parameters:
//   - e: the entity to attach to
//   - component: the component value (keyed by its concrete type)
func (w *World) Set(e Entity, component any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := reflect.TypeOf(component)
	store, ok := w.components[key]
	if !ok {
		store = make(map[Entity]any)
		w.components[key] = store
	}
	store[e] = component
}

// Despawn removes every component attached to entity e. The ID is not reused.
//
// Parameters:
//   - e: the entity to remove
func (w *World) Despawn(e Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, store := range w.components {
		delete(store, e)
	}
}

// EntityCount returns the number of entities holding at least one component.
//
// Returns:
//   - int: count of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	seen := make(map[Entity]struct{})
	for _, store := range w.components {
		for e := range store {
			seen[e] = struct{}{}
		}
	}
	return len(seen)
}

// componentStore returns the per-type map for a key, or nil.
func (w *World) componentStore(key reflect.Type) map[Entity]any {
	return w.components[key]
}

// Component retrieves entity e's component of type T.
//
// Parameters:
//   - w: the world to read
//   - e: the entity to look up
//
// Returns:
//   - T: the component value (zero value if absent)
//   - bool: true if the entity has a component of type T
func Component[T any](w *World, e Entity) (T, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	store := w.componentStore(Key[T]())
	if store == nil {
		var zero T
		return zero, false
	}
	v, ok := store[e]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// RemoveComponent detaches the component of type T from entity e.
//
// Parameters:
//   - w: the world to mutate
//   - e: the entity to detach from
//
// Returns:
//   - bool: true if a component of type T was present and removed
func RemoveComponent[T any](w *World, e Entity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	store := w.componentStore(Key[T]())
	if store == nil {
		return false
	}
	if _, ok := store[e]; !ok {
		return false
	}
	delete(store, e)
	return true
}

// Count returns the number of entities holding a component of type T.
//
// Parameters:
//   - w: the world to read
//
// Returns:
//   - int: count of entities with a T component
func Count[T any](w *World) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.componentStore(Key[T]()))
}

// Each invokes fn for every entity holding a component of type T, in
// ascending entity order so iteration is deterministic across frames.
// The component value returned by fn replaces the stored one, which keeps
// value-type components mutable without exposing interior pointers.
//
// Parameters:
//   - w: the world to iterate
//   - fn: callback receiving each entity and its component; its return value
//     is written back to the store
func Each[T any](w *World, fn func(Entity, T) T) {
	w.mu.Lock()
	defer w.mu.Unlock()
	store := w.componentStore(Key[T]())
	if store == nil {
		return
	}
	entities := make([]Entity, 0, len(store))
	for e := range store {
		entities = append(entities, e)
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i] < entities[j] })
	for _, e := range entities {
		store[e] = fn(e, store[e].(T))
	}
}
