// Package app assembles an application out of independently-registered
// systems and render-graph fragments: an AppBuilder collects registrations
// during configuration, and Build compiles them into an immutable App that
// executes its schedule once per frame.
package app

import (
	"log"
	"sync"

	"github.com/Carmen-Shannon/strata-go/profiler"
	"github.com/Carmen-Shannon/strata-go/renderer"
	"github.com/Carmen-Shannon/strata-go/schedule"
	"github.com/Carmen-Shannon/strata-go/window"
	"github.com/Carmen-Shannon/strata-go/world"
)

// App is the built, immutable application: world, resources, compiled main
// schedule, and the optional renderer and window. Produced exactly once by
// AppBuilder.Build; after that, the only mutation paths are the systems
// running inside the schedule.
type App struct {
	world     *world.World
	resources *world.Resources
	main      *schedule.Schedule
	executor  *schedule.Executor
	renderer  renderer.Renderer
	window    window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	quitChannel chan struct{}
	quitOnce    sync.Once

	runErr error
}

// World returns the application's world.
//
// Returns:
//   - *world.World: the shared world
func (a *App) World() *world.World {
	return a.world
}

// Resources returns the application's resource table.
//
// Returns:
//   - *world.Resources: the shared resource table
func (a *App) Resources() *world.Resources {
	return a.resources
}

// Update executes one frame: the main schedule runs to completion (respecting
// its barriers), then the renderer walks the render graph. Errors from
// systems or the renderer propagate unchanged.
//
// Returns:
//   - error: the first system or renderer error, or nil
func (a *App) Update() error {
	if err := a.executor.Execute(a.main, a.world, a.resources); err != nil {
		return err
	}
	if a.renderer != nil {
		if err := a.renderer.Render(a.world, a.resources); err != nil {
			return err
		}
	}
	if a.profilingEnabled && a.profiler != nil {
		a.profiler.Tick()
	}
	return nil
}

// Run executes the main schedule once per iteration until the window closes
// or Quit is called. With a window, frames are driven by the window message
// loop; without one, Run loops on the calling goroutine. The first frame
// error stops the loop and is returned.
//
// Returns:
//   - error: the error that stopped the loop, or nil on a clean quit
func (a *App) Run() error {
	defer a.executor.Close()

	if a.window != nil {
		a.window.SetUpdateCallback(func() {
			select {
			case <-a.quitChannel:
				a.window.Close()
				return
			default:
			}
			if err := a.Update(); err != nil {
				log.Printf("app: frame aborted: %v", err)
				a.runErr = err
				a.Quit()
				a.window.Close()
			}
		})
		a.window.ProcessMessages()
		return a.runErr
	}

	for {
		select {
		case <-a.quitChannel:
			return a.runErr
		default:
			if err := a.Update(); err != nil {
				a.runErr = err
				a.Quit()
				return err
			}
		}
	}
}

// Quit signals the run loop to stop. Safe to call multiple times and from
// any goroutine, including from a system inside the schedule.
func (a *App) Quit() {
	a.quitOnce.Do(func() {
		close(a.quitChannel)
	})
}
