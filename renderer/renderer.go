// Package renderer executes a finalized render graph against a GPU backend,
// once per frame: resource providers first, then draw targets inside a
// single render pass.
package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/strata-go/render_graph"
	"github.com/Carmen-Shannon/strata-go/window"
	"github.com/Carmen-Shannon/strata-go/world"
	"github.com/cogentcore/webgpu/wgpu"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	clearColor           wgpu.Color
}

// Renderer walks the finalized render graph each frame. The graph is read
// from the shared resource table, which the application populates at build
// time; the renderer treats it as immutable. Renderer errors propagate
// unchanged to the run loop.
type Renderer interface {
	// Render executes one frame: every resource provider in registration
	// order, then BeginFrame, every draw target in registration order,
	// EndFrame, Present. A frame with no render graph in the resource table
	// is a no-op, not an error.
	//
	// Parameters:
	//   - w: the shared world
	//   - res: the shared resource table holding the finalized RenderGraph
	//
	// Returns:
	//   - error: the first fragment or backend error, unchanged
	Render(w *world.World, res *world.Resources) error

	// Resize reconfigures the backend surface for a new framebuffer size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Device returns the backend's GPU device for fragment resource creation.
	//
	// Returns:
	//   - *wgpu.Device: the device handle
	Device() *wgpu.Device

	// Queue returns the backend's GPU submission queue.
	//
	// Returns:
	//   - *wgpu.Queue: the queue handle
	Queue() *wgpu.Queue
}

// NewRenderer creates a Renderer over the selected backend, configured for
// the given window's surface.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - win: the window providing the surface descriptor and initial size
//   - options: functional options for renderer configuration
//
// Returns:
//   - Renderer: the configured renderer
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
	}

	// Options first so config flags are available before the backend
	// requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, msaa, r.clearColor)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(win.Width(), win.Height())
	return r
}

func (r *renderer) Render(w *world.World, res *world.Resources) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	graph, ok := world.Get[*render_graph.RenderGraph](res)
	if !ok {
		return nil
	}

	ctx := &render_graph.FrameContext{
		Device: r.backend.Device(),
		Queue:  r.backend.Queue(),
	}

	for _, provider := range graph.ResourceProviders() {
		if err := provider.Provide(w, res, ctx); err != nil {
			return err
		}
	}

	pass, err := r.backend.BeginFrame()
	if err != nil {
		return err
	}
	ctx.Pass = pass

	var drawErr error
	for _, target := range graph.DrawTargets() {
		if drawErr = target.Draw(w, res, ctx); drawErr != nil {
			break
		}
	}

	// The pass is always ended and the surface presented, even on a draw
	// error, so the swapchain texture is never leaked across frames.
	r.backend.EndFrame()
	r.backend.Present()
	return drawErr
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Device() *wgpu.Device {
	return r.backend.Device()
}

func (r *renderer) Queue() *wgpu.Queue {
	return r.backend.Queue()
}
