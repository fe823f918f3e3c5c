package schedule

import (
	"testing"

	"github.com/Carmen-Shannon/strata-go/system"
)

func TestBuildSchedulesOneBarrierPerStage(t *testing.T) {
	stages := []DrainedStage{
		{Name: "a", Parallel: []system.System{noopSystem("a1")}},
		{Name: "b", Parallel: []system.System{noopSystem("b1")}},
	}

	_, main := BuildSchedules(nil, stages)

	if got := main.BarrierCount(); got != 2 {
		t.Fatalf("barrier count = %d, want 2", got)
	}
	if got := main.UnitCount(); got != 2 {
		t.Fatalf("unit count = %d, want 2", got)
	}

	kinds := []StepKind{StepParallel, StepBarrier, StepParallel, StepBarrier}
	steps := main.Steps()
	if len(steps) != len(kinds) {
		t.Fatalf("step count = %d, want %d", len(steps), len(kinds))
	}
	for i, want := range kinds {
		if steps[i].Kind != want {
			t.Fatalf("step %d kind = %v, want %v", i, steps[i].Kind, want)
		}
	}
}

func TestBuildSchedulesExclusiveOnlyStageGetsBarrier(t *testing.T) {
	stages := []DrainedStage{
		{Name: "io", Exclusive: []system.ExclusiveSystem{noopExclusive("e1")}},
		{Name: "update", Parallel: []system.System{noopSystem("p1")}},
	}

	_, main := BuildSchedules(nil, stages)

	steps := main.Steps()
	if steps[0].Kind != StepExclusive || steps[1].Kind != StepBarrier {
		t.Fatalf("exclusive-only stage not followed by a barrier: %v %v", steps[0].Kind, steps[1].Kind)
	}
	if main.BarrierCount() != 2 {
		t.Fatalf("barrier count = %d, want 2", main.BarrierCount())
	}
}

func TestBuildSchedulesUnitCountConserved(t *testing.T) {
	stages := []DrainedStage{
		{
			Name:      "update",
			Parallel:  []system.System{noopSystem("p1"), noopSystem("p2"), noopSystem("p3")},
			Exclusive: []system.ExclusiveSystem{noopExclusive("e1")},
		},
		{Name: "render", Exclusive: []system.ExclusiveSystem{noopExclusive("e2")}},
	}
	setup := []system.System{noopSystem("s1"), noopSystem("s2")}

	setupSchedule, main := BuildSchedules(setup, stages)

	if got := setupSchedule.UnitCount(); got != 2 {
		t.Fatalf("setup unit count = %d, want 2", got)
	}
	if got := main.UnitCount(); got != 5 {
		t.Fatalf("main unit count = %d, want 5", got)
	}
}

func TestBuildSchedulesSetupHasNoBarriers(t *testing.T) {
	setup := []system.System{noopSystem("s1"), noopSystem("s2"), noopSystem("s3")}

	setupSchedule, _ := BuildSchedules(setup, nil)

	if got := setupSchedule.BarrierCount(); got != 0 {
		t.Fatalf("setup barrier count = %d, want 0", got)
	}
	for i, step := range setupSchedule.Steps() {
		if step.Kind != StepParallel {
			t.Fatalf("setup step %d kind = %v, want parallel", i, step.Kind)
		}
	}
}

func TestBuildSchedulesParallelBeforeExclusiveWithinStage(t *testing.T) {
	stages := []DrainedStage{
		{
			Name:      "update",
			Parallel:  []system.System{noopSystem("p1")},
			Exclusive: []system.ExclusiveSystem{noopExclusive("e1")},
		},
	}

	_, main := BuildSchedules(nil, stages)

	steps := main.Steps()
	if steps[0].Kind != StepParallel || steps[1].Kind != StepExclusive || steps[2].Kind != StepBarrier {
		t.Fatalf("unexpected step order: %v %v %v", steps[0].Kind, steps[1].Kind, steps[2].Kind)
	}
}
