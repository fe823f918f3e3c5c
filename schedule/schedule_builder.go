package schedule

import (
	"github.com/Carmen-Shannon/strata-go/system"
)

// ScheduleBuilder appends steps to a single linear build sequence and
// produces an immutable Schedule. The fluent methods return the builder for
// chaining on the configuring goroutine.
type ScheduleBuilder struct {
	steps []Step
}

// NewScheduleBuilder creates an empty schedule builder.
//
// Returns:
//   - *ScheduleBuilder: the newly created builder
func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{}
}

// AddSystem appends a parallel system to the build sequence.
//
// Parameters:
//   - s: the system to append
//
// Returns:
//   - *ScheduleBuilder: the builder, for chaining
func (b *ScheduleBuilder) AddSystem(s system.System) *ScheduleBuilder {
	b.steps = append(b.steps, Step{Kind: StepParallel, System: s})
	return b
}

// AddExclusive appends an exclusive system to the build sequence.
//
// Parameters:
//   - s: the exclusive system to append
//
// Returns:
//   - *ScheduleBuilder: the builder, for chaining
func (b *ScheduleBuilder) AddExclusive(s system.ExclusiveSystem) *ScheduleBuilder {
	b.steps = append(b.steps, Step{Kind: StepExclusive, Exclusive: s})
	return b
}

// AddBarrier appends a synchronization barrier to the build sequence.
//
// Returns:
//   - *ScheduleBuilder: the builder, for chaining
func (b *ScheduleBuilder) AddBarrier() *ScheduleBuilder {
	b.steps = append(b.steps, Step{Kind: StepBarrier})
	return b
}

// Build produces the immutable Schedule from the accumulated steps.
//
// Returns:
//   - *Schedule: the compiled schedule
func (b *ScheduleBuilder) Build() *Schedule {
	steps := make([]Step, len(b.steps))
	copy(steps, b.steps)
	return &Schedule{steps: steps}
}

// BuildSchedules compiles the one-shot setup schedule and the repeating main
// schedule.
//
// The setup schedule is a single unordered batch: every setup system is
// appended with no barriers between them, so all of them are candidates to
// run concurrently (the executor still serializes conflicting access).
//
// The main schedule consumes the drained stages in the order given: for each
// stage, all parallel systems are appended, then all exclusive systems, then
// exactly one barrier. The barrier is appended unconditionally per drained
// stage, which keeps stage boundaries uniform whichever kinds the stage used.
// Relative order within a stage and within a kind is preserved, and the total
// unit count is conserved.
//
// Parameters:
//   - setup: the one-shot setup systems, in registration order
//   - stages: the stages drained from a StageRegistry, in stage order
//
// Returns:
//   - *Schedule: the setup schedule (run exactly once, before the main schedule)
//   - *Schedule: the main schedule (run once per frame)
func BuildSchedules(setup []system.System, stages []DrainedStage) (*Schedule, *Schedule) {
	setupBuilder := NewScheduleBuilder()
	for _, s := range setup {
		setupBuilder.AddSystem(s)
	}

	mainBuilder := NewScheduleBuilder()
	for _, stage := range stages {
		for _, s := range stage.Parallel {
			mainBuilder.AddSystem(s)
		}
		for _, s := range stage.Exclusive {
			mainBuilder.AddExclusive(s)
		}
		mainBuilder.AddBarrier()
	}

	return setupBuilder.Build(), mainBuilder.Build()
}
