package app

import (
	"time"

	"github.com/Carmen-Shannon/strata-go/schedule"
	"github.com/Carmen-Shannon/strata-go/system"
	"github.com/Carmen-Shannon/strata-go/world"
)

// Time is the frame clock resource maintained by the built-in time system.
// Systems read it to scale movement and animation by real elapsed time.
type Time struct {
	// Delta is the duration of the previous frame. Zero on the first frame.
	Delta time.Duration

	// Elapsed is the total time since the first frame.
	Elapsed time.Duration

	last time.Time
}

// NewTime creates a Time resource with no elapsed time.
//
// Returns:
//   - *Time: the newly created clock
func NewTime() *Time {
	return &Time{}
}

// tick advances the clock by the wall time since the previous tick.
func (t *Time) tick(now time.Time) {
	if !t.last.IsZero() {
		t.Delta = now.Sub(t.last)
		t.Elapsed += t.Delta
	}
	t.last = now
}

// timeSystem returns the parallel system that ticks the Time resource.
// It declares write access to *Time, so anything reading the clock in the
// same stage is serialized behind it.
func timeSystem() system.System {
	return system.New(
		"time_update",
		system.NewAccess(system.Writes(world.Key[*Time]())),
		func(_ *world.World, res *world.Resources) error {
			if t, ok := world.Get[*Time](res); ok {
				t.tick(time.Now())
			}
			return nil
		},
	)
}

// AddDefaultResources inserts the framework's built-in resources (the Time
// clock).
//
// Returns:
//   - *AppBuilder: the builder, for chaining
func (b *AppBuilder) AddDefaultResources() *AppBuilder {
	return b.InsertResource(NewTime())
}

// AddDefaultSystems registers the framework's built-in systems: the time
// system in the first stage, so every later stage sees this frame's clock.
//
// Returns:
//   - *AppBuilder: the builder, for chaining
func (b *AppBuilder) AddDefaultSystems() *AppBuilder {
	return b.AddSystemToStage(schedule.StageFirst, timeSystem())
}

// AddDefaults applies AddDefaultResources and AddDefaultSystems.
//
// Returns:
//   - *AppBuilder: the builder, for chaining
func (b *AppBuilder) AddDefaults() *AppBuilder {
	return b.AddDefaultResources().AddDefaultSystems()
}
