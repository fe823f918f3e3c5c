package app

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/strata-go/profiler"
	"github.com/Carmen-Shannon/strata-go/render_graph"
	"github.com/Carmen-Shannon/strata-go/renderer"
	"github.com/Carmen-Shannon/strata-go/schedule"
	"github.com/Carmen-Shannon/strata-go/system"
	"github.com/Carmen-Shannon/strata-go/window"
	"github.com/Carmen-Shannon/strata-go/world"
)

// ErrAlreadyBuilt is returned by Build when the builder's slots have already
// been consumed. Building twice is a misuse of the one-shot ownership
// transfer and fails fast rather than producing a corrupted application.
var ErrAlreadyBuilt = errors.New("app: builder already consumed by Build")

// AppBuilder is the assembly root in its configuring state. It owns the
// world, the resource table, the stage registry, the setup collector, and
// the render-graph slot; registration methods mutate them and return the
// builder so configuration reads as a fluent chain. Plugins receive the same
// builder handle and register through the same surface.
//
// Each owned field is an ownership slot: Build takes every slot exactly once
// and moves it into the produced App (or drops it). The slots are
// nil-checked precisely so a double Build is detectable.
//
// An AppBuilder is not safe for concurrent use; configuration happens on one
// goroutine.
type AppBuilder struct {
	world       *world.World
	resources   *world.Resources
	renderGraph *render_graph.RenderGraph
	registry    *schedule.StageRegistry
	setup       []system.System

	renderer  renderer.Renderer
	window    window.Window
	workers   int
	profiling bool
}

// NewAppBuilder creates an AppBuilder with a fresh world, resource table,
// empty render graph, and empty stage registry, then applies the options.
//
// Parameters:
//   - options: functional options for application configuration
//
// Returns:
//   - *AppBuilder: the newly created builder
func NewAppBuilder(options ...AppBuilderOption) *AppBuilder {
	b := &AppBuilder{
		world:       world.NewWorld(),
		resources:   world.NewResources(),
		renderGraph: render_graph.NewRenderGraph(),
		registry:    schedule.NewStageRegistry(),
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// AddSystem registers a parallel system into the default update stage.
//
// Parameters:
//   - s: the system to register
//
// Returns:
//   - *AppBuilder: the builder, for chaining
func (b *AppBuilder) AddSystem(s system.System) *AppBuilder {
	return b.AddSystemToStage(schedule.StageUpdate, s)
}

// AddSystemToStage registers a parallel system into the named stage. The
// first registration that introduces a stage name — by this method or
// AddExclusiveToStage — fixes the stage's position in the global order.
//
// Parameters:
//   - stage: the stage name
//   - s: the system to register
//
// Returns:
//   - *AppBuilder: the builder, for chaining
func (b *AppBuilder) AddSystemToStage(stage string, s system.System) *AppBuilder {
	b.registry.Add(stage, s)
	return b
}

// AddExclusiveToStage registers an exclusive system into the named stage.
//
// Parameters:
//   - stage: the stage name
//   - s: the exclusive system to register
//
// Returns:
//   - *AppBuilder: the builder, for chaining
func (b *AppBuilder) AddExclusiveToStage(stage string, s system.ExclusiveSystem) *AppBuilder {
	b.registry.AddExclusive(stage, s)
	return b
}

// AddSetupSystem registers a system into the one-shot setup batch, executed
// to completion before the main schedule is compiled. Setup systems have no
// stage and no relative ordering beyond conflict-freedom.
//
// Parameters:
//   - s: the setup system to register
//
// Returns:
//   - *AppBuilder: the builder, for chaining
func (b *AppBuilder) AddSetupSystem(s system.System) *AppBuilder {
	b.setup = append(b.setup, s)
	return b
}

// InsertResource stores a value in the resource table, keyed by its concrete
// type.
//
// Parameters:
//   - value: the resource value to insert
//
// Returns:
//   - *AppBuilder: the builder, for chaining
func (b *AppBuilder) InsertResource(value any) *AppBuilder {
	b.resources.Insert(value)
	return b
}

// SetupWorld invokes fn with the builder's world and resources, for direct
// entity and resource seeding during configuration.
//
// Parameters:
//   - fn: the configuration function
//
// Returns:
//   - *AppBuilder: the builder, for chaining
func (b *AppBuilder) SetupWorld(fn func(*world.World, *world.Resources)) *AppBuilder {
	fn(b.world, b.resources)
	return b
}

// SetupRenderGraph hands a builder pre-populated with the fragments
// registered so far to fn, then finalizes it and stores the result back.
// The graph slot is taken for the duration of the call, so composed
// configuration steps each add fragments without the root ever exposing its
// only graph instance to outside mutation. Panics if the slot is absent
// (builder already consumed) or if finalization fails — both are
// configuration-time programming errors.
//
// Parameters:
//   - fn: the configuration function receiving the graph builder
//
// Returns:
//   - *AppBuilder: the builder, for chaining
func (b *AppBuilder) SetupRenderGraph(fn func(*render_graph.RenderGraphBuilder)) *AppBuilder {
	if b.renderGraph == nil {
		panic("app: SetupRenderGraph on a consumed builder")
	}
	graphBuilder := b.renderGraph.Rebuild()
	b.renderGraph = nil

	fn(graphBuilder)

	graph, err := graphBuilder.Finish()
	if err != nil {
		panic(fmt.Sprintf("app: render graph finalization failed: %v", err))
	}
	b.renderGraph = graph
	return b
}

// AddPlugin invokes the plugin's Build against this builder.
//
// Parameters:
//   - p: the plugin to apply
//
// Returns:
//   - *AppBuilder: the builder, for chaining
func (b *AppBuilder) AddPlugin(p Plugin) *AppBuilder {
	p.Build(b)
	return b
}

// Build compiles the configuration into an App, consuming the builder:
//  1. the setup batch runs synchronously to completion against the world and
//     resources,
//  2. the stage registry is drained in stage order into the main schedule,
//  3. the finalized render graph is inserted into the resource table,
//  4. world, resources, schedule, renderer, and window move into the App.
//
// A second Build fails fast with ErrAlreadyBuilt before any side effects.
// A setup-system error aborts the build; no partially-built App is returned.
//
// Returns:
//   - *App: the built application
//   - error: ErrAlreadyBuilt on double build, or the setup error unchanged
func (b *AppBuilder) Build() (*App, error) {
	if b.world == nil || b.resources == nil || b.renderGraph == nil || b.registry == nil {
		return nil, ErrAlreadyBuilt
	}

	var executorOptions []schedule.ExecutorOption
	if b.workers > 0 {
		executorOptions = append(executorOptions, schedule.WithWorkers(b.workers))
	}
	executor := schedule.NewExecutor(executorOptions...)

	setupSchedule, mainSchedule := schedule.BuildSchedules(b.setup, b.registry.DrainInOrder())
	b.setup = nil

	if err := executor.Execute(setupSchedule, b.world, b.resources); err != nil {
		executor.Close()
		return nil, err
	}

	b.resources.Insert(b.renderGraph)

	if b.window != nil && b.renderer != nil {
		b.window.SetResizeCallback(b.renderer.Resize)
	}

	a := &App{
		world:            b.world,
		resources:        b.resources,
		main:             mainSchedule,
		executor:         executor,
		renderer:         b.renderer,
		window:           b.window,
		profiler:         profiler.NewProfiler(),
		profilingEnabled: b.profiling,
		quitChannel:      make(chan struct{}),
	}

	// Slots are consumed: empty them so a second Build is detectable.
	b.world = nil
	b.resources = nil
	b.renderGraph = nil
	b.registry = nil
	b.renderer = nil
	b.window = nil

	return a, nil
}

// Run builds the application and runs it until quit.
//
// Returns:
//   - error: a build error, or the error that stopped the run loop
func (b *AppBuilder) Run() error {
	a, err := b.Build()
	if err != nil {
		return err
	}
	return a.Run()
}
