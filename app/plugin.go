package app

// Plugin is a capability object exposing exactly one configuration
// operation: given the assembly root in its configuring state, it performs
// arbitrary registration calls against it. How a Plugin value is obtained —
// statically linked, looked up from a registry, bridged from elsewhere — is
// outside the scheduler's concern.
type Plugin interface {
	// Name returns the plugin's identifier.
	Name() string

	// Build registers the plugin's systems, resources, and render-graph
	// fragments against the builder.
	//
	// Parameters:
	//   - b: the assembly root, in configuring state
	Build(b *AppBuilder)
}
