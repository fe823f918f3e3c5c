package schedule

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/strata-go/system"
	"github.com/Carmen-Shannon/strata-go/world"
)

// appendLog is a mutex-guarded event log shared by test systems.
type appendLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *appendLog) add(entry string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func (l *appendLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

func logSystem(name string, log *appendLog) system.System {
	return system.New(name, system.NewAccess(), func(*world.World, *world.Resources) error {
		log.add(name)
		return nil
	})
}

func TestExecuteOrdersStagesByBarrier(t *testing.T) {
	e := NewExecutor(WithWorkers(4))
	defer e.Close()

	log := &appendLog{}
	_, main := BuildSchedules(nil, []DrainedStage{
		{Name: "a", Parallel: []system.System{logSystem("a", log)}},
		{Name: "b", Parallel: []system.System{logSystem("b", log)}},
	})

	if err := e.Execute(main, world.NewWorld(), world.NewResources()); err != nil {
		t.Fatalf("execute: %v", err)
	}

	got := log.snapshot()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("log order = %v, want [a b]", got)
	}
}

func TestExecuteExclusiveNeverOverlapsNextStage(t *testing.T) {
	e := NewExecutor(WithWorkers(4))
	defer e.Close()

	var exclusiveDone atomic.Bool
	exclusive := system.NewExclusive("slow_io", func(*world.World, *world.Resources) error {
		time.Sleep(20 * time.Millisecond)
		exclusiveDone.Store(true)
		return nil
	})
	check := system.New("check", system.NewAccess(), func(*world.World, *world.Resources) error {
		if !exclusiveDone.Load() {
			return errors.New("ran before the previous stage's exclusive unit finished")
		}
		return nil
	})

	_, main := BuildSchedules(nil, []DrainedStage{
		{Name: "io", Exclusive: []system.ExclusiveSystem{exclusive}},
		{Name: "update", Parallel: []system.System{check}},
	})

	if err := e.Execute(main, world.NewWorld(), world.NewResources()); err != nil {
		t.Fatalf("execute: %v", err)
	}
}

func TestExecuteExclusiveUnitsRunInRegistrationOrder(t *testing.T) {
	e := NewExecutor()
	defer e.Close()

	log := &appendLog{}
	mk := func(name string) system.ExclusiveSystem {
		return system.NewExclusive(name, func(*world.World, *world.Resources) error {
			log.add(name)
			return nil
		})
	}

	_, main := BuildSchedules(nil, []DrainedStage{
		{Name: "io", Exclusive: []system.ExclusiveSystem{mk("e1"), mk("e2"), mk("e3")}},
	})

	if err := e.Execute(main, world.NewWorld(), world.NewResources()); err != nil {
		t.Fatalf("execute: %v", err)
	}

	got := log.snapshot()
	if len(got) != 3 || got[0] != "e1" || got[1] != "e2" || got[2] != "e3" {
		t.Fatalf("exclusive order = %v, want [e1 e2 e3]", got)
	}
}

func TestExecuteConflictingSystemsNeverRunConcurrently(t *testing.T) {
	e := NewExecutor(WithWorkers(4))
	defer e.Close()

	key := world.Key[int]()
	var active atomic.Int32
	var violations atomic.Int32

	mk := func(name string) system.System {
		return system.New(name, system.NewAccess(system.Writes(key)), func(*world.World, *world.Resources) error {
			if active.Add(1) > 1 {
				violations.Add(1)
			}
			time.Sleep(5 * time.Millisecond)
			active.Add(-1)
			return nil
		})
	}

	_, main := BuildSchedules(nil, []DrainedStage{
		{Name: "update", Parallel: []system.System{mk("w1"), mk("w2"), mk("w3")}},
	})

	if err := e.Execute(main, world.NewWorld(), world.NewResources()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if v := violations.Load(); v != 0 {
		t.Fatalf("%d conflicting systems observed running concurrently", v)
	}
}

func TestExecuteTrailingBatchCompletesBeforeReturn(t *testing.T) {
	e := NewExecutor()
	defer e.Close()

	var ran atomic.Int32
	setup := []system.System{
		system.New("s1", system.NewAccess(), func(*world.World, *world.Resources) error {
			ran.Add(1)
			return nil
		}),
		system.New("s2", system.NewAccess(), func(*world.World, *world.Resources) error {
			ran.Add(1)
			return nil
		}),
	}

	setupSchedule, _ := BuildSchedules(setup, nil)
	if err := e.Execute(setupSchedule, world.NewWorld(), world.NewResources()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := ran.Load(); got != 2 {
		t.Fatalf("setup batch ran %d units before return, want 2", got)
	}
}

func TestExecuteFirstErrorAbortsAndPropagatesUnchanged(t *testing.T) {
	e := NewExecutor()
	defer e.Close()

	boom := errors.New("boom")
	var laterRan atomic.Bool

	_, main := BuildSchedules(nil, []DrainedStage{
		{Name: "a", Parallel: []system.System{
			system.New("failing", system.NewAccess(), func(*world.World, *world.Resources) error {
				return boom
			}),
		}},
		{Name: "b", Parallel: []system.System{
			system.New("later", system.NewAccess(), func(*world.World, *world.Resources) error {
				laterRan.Store(true)
				return nil
			}),
		}},
	})

	err := e.Execute(main, world.NewWorld(), world.NewResources())
	if !errors.Is(err, boom) {
		t.Fatalf("execute error = %v, want %v unchanged", err, boom)
	}
	if laterRan.Load() {
		t.Fatalf("stage after the failing stage still ran")
	}
}
