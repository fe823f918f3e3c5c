// Package system defines the schedulable units of work that stages are built
// from: parallel systems with declared data access, and exclusive systems
// that are pinned to a single designated thread.
package system

import (
	"github.com/Carmen-Shannon/strata-go/world"
)

// System is a parallel work unit. Systems in the same stage may execute
// concurrently on the worker pool as long as their declared access does not
// conflict. A system runs to completion once started; it must not block on
// other systems in its stage.
type System interface {
	// Name returns the system's identifier, used in logs and error messages.
	Name() string

	// Access returns the system's declared read/write access.
	Access() Access

	// Run executes the system against the shared world and resources.
	//
	// Parameters:
	//   - w: the shared world
	//   - res: the shared resource table
	//
	// Returns:
	//   - error: an error to abort the remainder of the schedule
	Run(w *world.World, res *world.Resources) error
}

// ExclusiveSystem is a work unit that must run alone on the designated
// exclusive thread (an OS-locked goroutine), serialized against every other
// exclusive unit and against the barriers surrounding its stage. Exclusive
// systems declare no access; they are trusted to self-serialize around
// whatever non-shareable external state they touch.
type ExclusiveSystem interface {
	// Name returns the system's identifier, used in logs and error messages.
	Name() string

	// RunExclusive executes the system on the exclusive thread.
	//
	// Parameters:
	//   - w: the shared world
	//   - res: the shared resource table
	//
	// Returns:
	//   - error: an error to abort the remainder of the schedule
	RunExclusive(w *world.World, res *world.Resources) error
}

// funcSystem adapts a plain function into a System.
type funcSystem struct {
	name   string
	access Access
	fn     func(*world.World, *world.Resources) error
}

func (s *funcSystem) Name() string   { return s.name }
func (s *funcSystem) Access() Access { return s.access }

func (s *funcSystem) Run(w *world.World, res *world.Resources) error {
	return s.fn(w, res)
}

// New wraps fn as a parallel System with the given name and declared access.
//
// Parameters:
//   - name: the system identifier
//   - access: the declared read/write access (use NewAccess)
//   - fn: the function to run each frame
//
// Returns:
//   - System: the adapted system
func New(name string, access Access, fn func(*world.World, *world.Resources) error) System {
	return &funcSystem{name: name, access: access, fn: fn}
}

// funcExclusive adapts a plain function into an ExclusiveSystem.
type funcExclusive struct {
	name string
	fn   func(*world.World, *world.Resources) error
}

func (s *funcExclusive) Name() string { return s.name }

func (s *funcExclusive) RunExclusive(w *world.World, res *world.Resources) error {
	return s.fn(w, res)
}

// NewExclusive wraps fn as an ExclusiveSystem with the given name.
//
// Parameters:
//   - name: the system identifier
//   - fn: the function to run on the exclusive thread
//
// Returns:
//   - ExclusiveSystem: the adapted system
func NewExclusive(name string, fn func(*world.World, *world.Resources) error) ExclusiveSystem {
	return &funcExclusive{name: name, fn: fn}
}
