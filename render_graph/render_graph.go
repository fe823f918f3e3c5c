package render_graph

// RenderGraph is the finalized, immutable set of named draw targets and
// resource providers produced by a RenderGraphBuilder. Once finalized it is
// stored in the application's resource table and shared read-only with the
// renderer, which walks providers first and then draw targets, each in
// first-registration order.
type RenderGraph struct {
	providers     map[string]ResourceProvider
	providerOrder []string
	targets       map[string]DrawTarget
	targetOrder   []string
}

// NewRenderGraph creates an empty, finalized graph. Use Rebuild to obtain a
// builder for adding fragments.
//
// Returns:
//   - *RenderGraph: an empty graph
func NewRenderGraph() *RenderGraph {
	return &RenderGraph{
		providers: make(map[string]ResourceProvider),
		targets:   make(map[string]DrawTarget),
	}
}

// ResourceProviders returns the graph's providers in first-registration
// order.
//
// Returns:
//   - []ResourceProvider: the providers in walk order
func (g *RenderGraph) ResourceProviders() []ResourceProvider {
	out := make([]ResourceProvider, 0, len(g.providerOrder))
	for _, name := range g.providerOrder {
		out = append(out, g.providers[name])
	}
	return out
}

// DrawTargets returns the graph's draw targets in first-registration order.
//
// Returns:
//   - []DrawTarget: the targets in walk order
func (g *RenderGraph) DrawTargets() []DrawTarget {
	out := make([]DrawTarget, 0, len(g.targetOrder))
	for _, name := range g.targetOrder {
		out = append(out, g.targets[name])
	}
	return out
}

// ResourceProvider looks up a provider by name.
//
// Parameters:
//   - name: the graph key
//
// Returns:
//   - ResourceProvider: the provider, or nil if not present
func (g *RenderGraph) ResourceProvider(name string) ResourceProvider {
	return g.providers[name]
}

// DrawTarget looks up a draw target by name.
//
// Parameters:
//   - name: the graph key
//
// Returns:
//   - DrawTarget: the target, or nil if not present
func (g *RenderGraph) DrawTarget(name string) DrawTarget {
	return g.targets[name]
}

// Rebuild returns a fresh builder pre-populated with this graph's fragments.
// This is the visit-and-return protocol: the owner takes its graph, hands the
// builder to a configuration function, finalizes it, and stores the result
// back — composed configuration steps each add fragments without the owner
// ever exposing its only graph instance to outside mutation.
//
// Returns:
//   - *RenderGraphBuilder: a builder seeded with the graph's fragments
func (g *RenderGraph) Rebuild() *RenderGraphBuilder {
	b := NewRenderGraphBuilder()
	for _, name := range g.providerOrder {
		b.providers[name] = g.providers[name]
		b.providerOrder = append(b.providerOrder, name)
	}
	for _, name := range g.targetOrder {
		b.targets[name] = g.targets[name]
		b.targetOrder = append(b.targetOrder, name)
	}
	return b
}
