package schedule

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/strata-go/system"
	"github.com/Carmen-Shannon/strata-go/world"
)

// Executor runs compiled schedules against a world and resource table.
//
// Parallel systems between barriers form a batch. A batch is partitioned into
// conflict-free waves by declared access: walking the batch in registration
// order, a system joins the current wave unless it conflicts with a system
// already in it, in which case it is deferred to a later wave. The
// first-registered system therefore always wins its slot, which makes wave
// assignment deterministic. Each wave is submitted to the worker pool and
// awaited with a WaitGroup before the next wave starts.
//
// Exclusive systems run on a single dedicated OS-locked goroutine, serialized
// in registration order relative to each other and to the barriers around
// their stage. Platform APIs that demand thread affinity (GLFW, wgpu surface
// acquisition) are the expected tenants of that thread.
//
// The executor performs no runtime locking on behalf of systems: concurrency
// safety comes from non-overlapping declared access, not mutex arbitration.
type Executor struct {
	pool    worker.DynamicWorkerPool
	workers int

	exclusiveJobs chan exclusiveJob
	closeOnce     sync.Once
}

type exclusiveJob struct {
	run  func() error
	done chan error
}

// ExecutorOption is a functional option applied to an Executor during
// construction via NewExecutor.
type ExecutorOption func(*Executor)

// WithWorkers sets the number of worker goroutines used for parallel waves.
// Defaults to runtime.NumCPU()-1 (minimum 1).
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - ExecutorOption: option function to apply
func WithWorkers(n int) ExecutorOption {
	return func(e *Executor) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// NewExecutor creates an Executor with the provided options and starts its
// exclusive thread.
//
// Parameters:
//   - options: functional options for executor configuration
//
// Returns:
//   - *Executor: the newly created executor
func NewExecutor(options ...ExecutorOption) *Executor {
	e := &Executor{
		workers:       max(runtime.NumCPU()-1, 1),
		exclusiveJobs: make(chan exclusiveJob),
	}
	for _, opt := range options {
		opt(e)
	}

	// Workers are reused across frames; the queue size accommodates typical
	// stage widths with headroom.
	e.pool = worker.NewDynamicWorkerPool(e.workers, 256, 1*time.Second)

	go func() {
		runtime.LockOSThread()
		for job := range e.exclusiveJobs {
			job.done <- job.run()
		}
	}()

	return e
}

// Close stops the exclusive thread. The executor must not be used after
// Close. Safe to call multiple times.
func (e *Executor) Close() {
	e.closeOnce.Do(func() {
		close(e.exclusiveJobs)
	})
}

// Execute runs a compiled schedule to completion. Barriers guarantee that
// every unit before the barrier finishes before any unit after it starts.
// The first system error aborts the remainder of the schedule and is
// returned unchanged.
//
// Parameters:
//   - s: the compiled schedule to run
//   - w: the shared world
//   - res: the shared resource table
//
// Returns:
//   - error: the first system error encountered, or nil
func (e *Executor) Execute(s *Schedule, w *world.World, res *world.Resources) error {
	var batch []system.System

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := e.runBatch(batch, w, res)
		batch = batch[:0]
		return err
	}

	for _, step := range s.Steps() {
		switch step.Kind {
		case StepParallel:
			batch = append(batch, step.System)
		case StepExclusive:
			// An exclusive unit is a serialization point within its stage:
			// the pending parallel batch completes first, then the unit runs
			// alone on the exclusive thread.
			if err := flush(); err != nil {
				return err
			}
			if err := e.runExclusive(step.Exclusive, w, res); err != nil {
				return err
			}
		case StepBarrier:
			if err := flush(); err != nil {
				return err
			}
		}
	}

	// A trailing batch with no closing barrier (the setup schedule) still
	// completes before Execute returns.
	return flush()
}

// runBatch partitions a parallel batch into conflict-free waves and runs
// each wave on the worker pool.
func (e *Executor) runBatch(batch []system.System, w *world.World, res *world.Resources) error {
	remaining := batch
	for len(remaining) > 0 {
		var wave []system.System
		var deferred []system.System
		for _, s := range remaining {
			if conflictsWithAny(s, wave) {
				deferred = append(deferred, s)
				continue
			}
			wave = append(wave, s)
		}

		if err := e.runWave(wave, w, res); err != nil {
			return err
		}
		remaining = deferred
	}
	return nil
}

// conflictsWithAny reports whether s's declared access conflicts with any
// system already placed in the wave.
func conflictsWithAny(s system.System, wave []system.System) bool {
	for _, placed := range wave {
		if s.Access().ConflictsWith(placed.Access()) {
			return true
		}
	}
	return false
}

// runWave submits one conflict-free wave to the pool and waits for it.
// A WaitGroup provides the wave barrier since pool.Wait() blocks until
// workers idle-exit, which is unsuitable for frame-rate workloads.
func (e *Executor) runWave(wave []system.System, w *world.World, res *world.Resources) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, s := range wave {
		wg.Add(1)
		sys := s // capture for closure
		e.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				if err := sys.Run(w, res); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return nil, err
				}
				return nil, nil
			},
		})
	}

	wg.Wait()
	return firstErr
}

// runExclusive runs one exclusive system on the OS-locked thread and waits
// for it to finish.
func (e *Executor) runExclusive(s system.ExclusiveSystem, w *world.World, res *world.Resources) error {
	done := make(chan error, 1)
	e.exclusiveJobs <- exclusiveJob{
		run:  func() error { return s.RunExclusive(w, res) },
		done: done,
	}
	return <-done
}
