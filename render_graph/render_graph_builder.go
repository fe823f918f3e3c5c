package render_graph

import "errors"

// ErrFinished is returned by Finish when the builder has already been
// finalized. Finalizing twice is a misuse of the one-shot ownership-transfer
// contract and fails fast rather than producing a second graph.
var ErrFinished = errors.New("render_graph: builder already finished")

// RenderGraphBuilder accumulates fragment registrations and finalizes them
// into an immutable RenderGraph. Within a fragment kind, registering a
// duplicate name overwrites the earlier routine (last registration wins, the
// usual "override a default" layering) while keeping the name's
// first-registration position, so walk order does not depend on how many
// times a fragment was overridden.
//
// A builder is consumed by Finish; adding fragments afterwards panics.
type RenderGraphBuilder struct {
	finished bool

	providers     map[string]ResourceProvider
	providerOrder []string
	targets       map[string]DrawTarget
	targetOrder   []string
}

// NewRenderGraphBuilder creates an empty render graph builder.
//
// Returns:
//   - *RenderGraphBuilder: the newly created builder
func NewRenderGraphBuilder() *RenderGraphBuilder {
	return &RenderGraphBuilder{
		providers: make(map[string]ResourceProvider),
		targets:   make(map[string]DrawTarget),
	}
}

// AddResourceProvider appends a resource provider fragment. A provider with
// the same name replaces the earlier routine in place.
//
// Parameters:
//   - p: the provider to add
//
// Returns:
//   - *RenderGraphBuilder: the builder, for chaining
func (b *RenderGraphBuilder) AddResourceProvider(p ResourceProvider) *RenderGraphBuilder {
	if b.finished {
		panic("render_graph: AddResourceProvider on a finished builder")
	}
	name := p.Name()
	if _, ok := b.providers[name]; !ok {
		b.providerOrder = append(b.providerOrder, name)
	}
	b.providers[name] = p
	return b
}

// AddDrawTarget appends a draw target fragment. A target with the same name
// replaces the earlier routine in place.
//
// Parameters:
//   - t: the draw target to add
//
// Returns:
//   - *RenderGraphBuilder: the builder, for chaining
func (b *RenderGraphBuilder) AddDrawTarget(t DrawTarget) *RenderGraphBuilder {
	if b.finished {
		panic("render_graph: AddDrawTarget on a finished builder")
	}
	name := t.Name()
	if _, ok := b.targets[name]; !ok {
		b.targetOrder = append(b.targetOrder, name)
	}
	b.targets[name] = t
	return b
}

// Finish finalizes the builder into an immutable RenderGraph and consumes
// the builder. A second Finish fails fast with ErrFinished.
//
// Returns:
//   - *RenderGraph: the finalized graph
//   - error: ErrFinished if the builder was already consumed
func (b *RenderGraphBuilder) Finish() (*RenderGraph, error) {
	if b.finished {
		return nil, ErrFinished
	}
	b.finished = true

	g := NewRenderGraph()
	g.providers = b.providers
	g.providerOrder = b.providerOrder
	g.targets = b.targets
	g.targetOrder = b.targetOrder

	b.providers = nil
	b.providerOrder = nil
	b.targets = nil
	b.targetOrder = nil
	return g, nil
}
