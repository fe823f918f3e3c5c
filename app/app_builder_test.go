package app

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/strata-go/render_graph"
	"github.com/Carmen-Shannon/strata-go/schedule"
	"github.com/Carmen-Shannon/strata-go/system"
	"github.com/Carmen-Shannon/strata-go/world"
)

func countSystem(name string, counter *atomic.Int32) system.System {
	return system.New(name, system.NewAccess(), func(*world.World, *world.Resources) error {
		counter.Add(1)
		return nil
	})
}

func TestBuildTwiceFailsFast(t *testing.T) {
	b := NewAppBuilder()

	first, err := b.Build()
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	if first == nil {
		t.Fatalf("first build returned nil app")
	}

	second, err := b.Build()
	if !errors.Is(err, ErrAlreadyBuilt) {
		t.Fatalf("second build error = %v, want ErrAlreadyBuilt", err)
	}
	if second != nil {
		t.Fatalf("second build returned a non-nil app")
	}
}

func TestSetupCompletesBeforeMainSchedule(t *testing.T) {
	var counter atomic.Int32

	b := NewAppBuilder()
	b.AddSetupSystem(countSystem("setup", &counter))
	b.AddSystemToStage(schedule.StageFirst, system.New(
		"assert_setup_done",
		system.NewAccess(),
		func(*world.World, *world.Resources) error {
			if got := counter.Load(); got != 1 {
				return fmt.Errorf("counter = %d at first stage, want 1", got)
			}
			return nil
		},
	))

	a, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := counter.Load(); got != 1 {
		t.Fatalf("setup batch did not complete during Build: counter = %d", got)
	}
	if err := a.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestSetupErrorAbortsBuild(t *testing.T) {
	boom := errors.New("setup boom")
	b := NewAppBuilder()
	b.AddSetupSystem(system.New("failing_setup", system.NewAccess(), func(*world.World, *world.Resources) error {
		return boom
	}))

	a, err := b.Build()
	if !errors.Is(err, boom) {
		t.Fatalf("build error = %v, want %v unchanged", err, boom)
	}
	if a != nil {
		t.Fatalf("build returned a partially-built app")
	}
}

func TestFinalizedGraphInsertedIntoResources(t *testing.T) {
	b := NewAppBuilder()
	b.SetupRenderGraph(func(gb *render_graph.RenderGraphBuilder) {
		gb.AddDrawTarget(render_graph.NewDrawTarget("meshes", func(*world.World, *world.Resources, *render_graph.FrameContext) error {
			return nil
		}))
	})

	a, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	graph, ok := world.Get[*render_graph.RenderGraph](a.Resources())
	if !ok {
		t.Fatalf("render graph not inserted into resources")
	}
	if graph.DrawTarget("meshes") == nil {
		t.Fatalf("finalized graph missing registered fragment")
	}
}

func TestSetupRenderGraphLayersAcrossCalls(t *testing.T) {
	b := NewAppBuilder()
	b.SetupRenderGraph(func(gb *render_graph.RenderGraphBuilder) {
		gb.AddResourceProvider(render_graph.NewResourceProvider("camera", func(*world.World, *world.Resources, *render_graph.FrameContext) error {
			return nil
		}))
	})
	b.SetupRenderGraph(func(gb *render_graph.RenderGraphBuilder) {
		gb.AddResourceProvider(render_graph.NewResourceProvider("light", func(*world.World, *world.Resources, *render_graph.FrameContext) error {
			return nil
		}))
	})

	a, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	graph, _ := world.Get[*render_graph.RenderGraph](a.Resources())
	if graph.ResourceProvider("camera") == nil || graph.ResourceProvider("light") == nil {
		t.Fatalf("graph lost fragments across SetupRenderGraph calls")
	}
}

func TestStagesExecuteInFirstRegistrationOrder(t *testing.T) {
	var order []string
	log := func(name string) system.System {
		return system.New(name, system.NewAccess(), func(*world.World, *world.Resources) error {
			order = append(order, name)
			return nil
		})
	}

	// Registered against stage "late" first, so it runs before "early"
	// despite the names.
	b := NewAppBuilder()
	b.AddSystemToStage("late", log("from_late"))
	b.AddSystemToStage("early", log("from_early"))

	a, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := a.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(order) != 2 || order[0] != "from_late" || order[1] != "from_early" {
		t.Fatalf("execution order = %v, want [from_late from_early]", order)
	}
}

func TestDefaultsTickTimeResource(t *testing.T) {
	b := NewAppBuilder()
	b.AddDefaults()

	a, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if err := a.Update(); err != nil {
		t.Fatalf("first update: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if err := a.Update(); err != nil {
		t.Fatalf("second update: %v", err)
	}

	clock := world.MustGet[*Time](a.Resources())
	if clock.Elapsed <= 0 {
		t.Fatalf("time elapsed = %v after two frames, want > 0", clock.Elapsed)
	}
}

func TestQuitStopsHeadlessRun(t *testing.T) {
	var frames atomic.Int32
	var a *App

	b := NewAppBuilder()
	b.AddSystem(system.New("count_and_quit", system.NewAccess(), func(*world.World, *world.Resources) error {
		if frames.Add(1) >= 3 {
			a.Quit()
		}
		return nil
	}))

	built, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	a = built

	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("run did not stop after Quit")
	}
	if frames.Load() < 3 {
		t.Fatalf("run stopped after %d frames, want >= 3", frames.Load())
	}
}

type testPlugin struct {
	name  string
	built *bool
}

func (p *testPlugin) Name() string { return p.name }

func (p *testPlugin) Build(b *AppBuilder) {
	*p.built = true
	b.AddSystemToStage(schedule.StageUpdate, system.New(p.name+"_system", system.NewAccess(), func(*world.World, *world.Resources) error {
		return nil
	}))
}

func TestAddPluginRegistersThroughBuilder(t *testing.T) {
	var built bool
	b := NewAppBuilder()
	b.AddPlugin(&testPlugin{name: "demo", built: &built})

	if !built {
		t.Fatalf("plugin Build was not invoked")
	}
	if _, err := b.Build(); err != nil {
		t.Fatalf("build: %v", err)
	}
}
