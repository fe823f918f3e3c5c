package schedule

import (
	"github.com/Carmen-Shannon/strata-go/system"
)

// StepKind identifies what a schedule step contains.
type StepKind int

const (
	// StepParallel is a parallel system; consecutive parallel steps between
	// barriers form one batch the executor may run concurrently.
	StepParallel StepKind = iota

	// StepExclusive is a system pinned to the exclusive thread.
	StepExclusive

	// StepBarrier is a synchronization point: every unit appended before it
	// completes before any unit appended after it begins.
	StepBarrier
)

// Step is one entry in a compiled schedule. Exactly one of System or
// Exclusive is set for the corresponding kind; both are nil for a barrier.
type Step struct {
	Kind      StepKind
	System    system.System
	Exclusive system.ExclusiveSystem
}

// Schedule is an immutable, linear sequence of steps produced by a
// ScheduleBuilder. The same compiled schedule is executed to completion once
// per frame; it holds no per-run state.
type Schedule struct {
	steps []Step
}

// Steps returns the schedule's steps. The returned slice is shared and must
// not be mutated.
//
// Returns:
//   - []Step: the compiled steps in execution order
func (s *Schedule) Steps() []Step {
	return s.steps
}

// UnitCount returns the number of work units in the schedule, excluding
// barriers. Building conserves unit count, so this equals the number of
// systems fed to the builder.
//
// Returns:
//   - int: count of parallel and exclusive steps
func (s *Schedule) UnitCount() int {
	n := 0
	for _, st := range s.steps {
		if st.Kind != StepBarrier {
			n++
		}
	}
	return n
}

// BarrierCount returns the number of barriers in the schedule.
//
// Returns:
//   - int: count of barrier steps
func (s *Schedule) BarrierCount() int {
	n := 0
	for _, st := range s.steps {
		if st.Kind == StepBarrier {
			n++
		}
	}
	return n
}
