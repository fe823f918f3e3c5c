package app

import (
	"github.com/Carmen-Shannon/strata-go/renderer"
	"github.com/Carmen-Shannon/strata-go/window"
)

// AppBuilderOption is a functional option applied to an AppBuilder during
// construction via NewAppBuilder.
type AppBuilderOption func(*AppBuilder)

// WithRenderer attaches a renderer, invoked once per frame by the run loop
// after the main schedule completes.
//
// Parameters:
//   - r: the renderer to attach
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) AppBuilderOption {
	return func(b *AppBuilder) {
		b.renderer = r
	}
}

// WithWindow attaches a window. When present, the run loop is driven by the
// window's message loop and the renderer surface follows window resizes.
//
// Parameters:
//   - w: the window to attach
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithWindow(w window.Window) AppBuilderOption {
	return func(b *AppBuilder) {
		b.window = w
	}
}

// WithWorkers sets the executor's worker count for parallel system waves.
// Values < 1 keep the executor default.
//
// Parameters:
//   - n: the number of workers
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithWorkers(n int) AppBuilderOption {
	return func(b *AppBuilder) {
		b.workers = n
	}
}

// WithProfiling enables per-frame profiler output in the run loop.
//
// Parameters:
//   - enabled: if true, the profiler logs frame and memory stats
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithProfiling(enabled bool) AppBuilderOption {
	return func(b *AppBuilder) {
		b.profiling = enabled
	}
}
