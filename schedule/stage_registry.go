// Package schedule implements the staged-scheduling core: a registry that
// groups submitted systems into named stages in deterministic first-seen
// order, a builder that compiles drained stages into a linear schedule with
// synchronization barriers, and an executor that runs compiled schedules on
// a worker pool.
package schedule

import (
	"github.com/Carmen-Shannon/strata-go/system"
)

// StageRegistry is an ordered mapping from stage name to the systems
// registered under that name. Parallel and exclusive systems are held in
// independent maps but share a single order-determining list: the first
// registration that introduces a name — of either kind — fixes that name's
// position in the global stage order, and later registrations under the same
// name never move it. This is what makes execution order reproducible even
// when configuration calls arrive from independently-authored plugins in
// arbitrary order.
//
// A StageRegistry is not safe for concurrent use; registration happens on
// the configuring goroutine only.
type StageRegistry struct {
	stageOrder []string
	parallel   map[string][]system.System
	exclusive  map[string][]system.ExclusiveSystem
}

// DrainedStage is one stage's content removed from the registry in order.
type DrainedStage struct {
	// Name is the stage name.
	Name string

	// Parallel holds the stage's parallel systems in registration order.
	Parallel []system.System

	// Exclusive holds the stage's exclusive systems in registration order.
	Exclusive []system.ExclusiveSystem
}

// NewStageRegistry creates an empty stage registry.
//
// Returns:
//   - *StageRegistry: the newly created registry
func NewStageRegistry() *StageRegistry {
	return &StageRegistry{
		parallel:  make(map[string][]system.System),
		exclusive: make(map[string][]system.ExclusiveSystem),
	}
}

// noteStage appends name to the stage order if neither kind has seen it yet.
func (r *StageRegistry) noteStage(name string) {
	if _, ok := r.parallel[name]; ok {
		return
	}
	if _, ok := r.exclusive[name]; ok {
		return
	}
	r.stageOrder = append(r.stageOrder, name)
}

// Add appends a parallel system to the named stage. Registration always
// succeeds; a previously unseen stage name is appended to the stage order.
//
// Parameters:
//   - stage: the stage name
//   - s: the system to append
func (r *StageRegistry) Add(stage string, s system.System) {
	r.noteStage(stage)
	r.parallel[stage] = append(r.parallel[stage], s)
}

// AddExclusive appends an exclusive system to the named stage. Registration
// always succeeds; a previously unseen stage name is appended to the stage
// order.
//
// Parameters:
//   - stage: the stage name
//   - s: the exclusive system to append
func (r *StageRegistry) AddExclusive(stage string, s system.ExclusiveSystem) {
	r.noteStage(stage)
	r.exclusive[stage] = append(r.exclusive[stage], s)
}

// StageOrder returns a copy of the current first-seen stage order.
//
// Returns:
//   - []string: stage names in first-registration order
func (r *StageRegistry) StageOrder() []string {
	out := make([]string, len(r.stageOrder))
	copy(out, r.stageOrder)
	return out
}

// DrainInOrder removes and returns every stage's content in stage order.
// Names that hold neither parallel nor exclusive systems are skipped.
// Draining is destructive: afterwards the registry is empty, and a second
// drain returns nil rather than an error.
//
// Returns:
//   - []DrainedStage: the removed stages in first-seen order
func (r *StageRegistry) DrainInOrder() []DrainedStage {
	var drained []DrainedStage
	for _, name := range r.stageOrder {
		par, hasPar := r.parallel[name]
		exc, hasExc := r.exclusive[name]
		if !hasPar && !hasExc {
			continue
		}
		delete(r.parallel, name)
		delete(r.exclusive, name)
		drained = append(drained, DrainedStage{
			Name:      name,
			Parallel:  par,
			Exclusive: exc,
		})
	}
	r.stageOrder = nil
	return drained
}
