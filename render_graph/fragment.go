// Package render_graph collects named rendering fragments — draw targets and
// resource providers — into a mutable builder and finalizes them into an
// immutable graph that a renderer walks once per frame.
package render_graph

import (
	"github.com/Carmen-Shannon/strata-go/world"
	"github.com/cogentcore/webgpu/wgpu"
)

// FrameContext carries the per-frame GPU handles handed to fragments. During
// the resource-provision phase Pass is nil; during the draw phase it is the
// frame's active render pass. Cross-fragment wiring (a provider staging
// buffers a draw target binds) happens through the shared resource table and
// is opaque to the graph itself.
type FrameContext struct {
	// Device is the GPU device owned by the renderer backend.
	Device *wgpu.Device

	// Queue is the GPU submission queue owned by the renderer backend.
	Queue *wgpu.Queue

	// Pass is the active render pass encoder, non-nil only while draw
	// targets run.
	Pass *wgpu.RenderPassEncoder
}

// ResourceProvider is a named fragment that produces or refreshes rendering
// resources (uniform data, instance buffers, textures) before any draw
// target runs. Providers run in registration order with ctx.Pass nil.
type ResourceProvider interface {
	// Name returns the provider's graph key. Registering a second provider
	// under the same name overwrites the first.
	Name() string

	// Provide produces or refreshes the provider's resources for this frame.
	//
	// Parameters:
	//   - w: the shared world
	//   - res: the shared resource table
	//   - ctx: the frame context (Pass is nil)
	//
	// Returns:
	//   - error: an error to abort the frame
	Provide(w *world.World, res *world.Resources, ctx *FrameContext) error
}

// DrawTarget is a named fragment that encodes draw commands into the frame's
// render pass. Draw targets run in registration order after every provider
// has completed.
type DrawTarget interface {
	// Name returns the target's graph key. Registering a second target under
	// the same name overwrites the first.
	Name() string

	// Draw encodes the target's commands into ctx.Pass.
	//
	// Parameters:
	//   - w: the shared world
	//   - res: the shared resource table
	//   - ctx: the frame context (Pass is the active render pass)
	//
	// Returns:
	//   - error: an error to abort the frame
	Draw(w *world.World, res *world.Resources, ctx *FrameContext) error
}

// providerFunc adapts a function into a ResourceProvider.
type providerFunc struct {
	name string
	fn   func(*world.World, *world.Resources, *FrameContext) error
}

func (p *providerFunc) Name() string { return p.name }

func (p *providerFunc) Provide(w *world.World, res *world.Resources, ctx *FrameContext) error {
	return p.fn(w, res, ctx)
}

// NewResourceProvider wraps fn as a named ResourceProvider.
//
// Parameters:
//   - name: the graph key
//   - fn: the provision routine
//
// Returns:
//   - ResourceProvider: the adapted provider
func NewResourceProvider(name string, fn func(*world.World, *world.Resources, *FrameContext) error) ResourceProvider {
	return &providerFunc{name: name, fn: fn}
}

// targetFunc adapts a function into a DrawTarget.
type targetFunc struct {
	name string
	fn   func(*world.World, *world.Resources, *FrameContext) error
}

func (t *targetFunc) Name() string { return t.name }

func (t *targetFunc) Draw(w *world.World, res *world.Resources, ctx *FrameContext) error {
	return t.fn(w, res, ctx)
}

// NewDrawTarget wraps fn as a named DrawTarget.
//
// Parameters:
//   - name: the graph key
//   - fn: the draw routine
//
// Returns:
//   - DrawTarget: the adapted target
func NewDrawTarget(name string, fn func(*world.World, *world.Resources, *FrameContext) error) DrawTarget {
	return &targetFunc{name: name, fn: fn}
}
