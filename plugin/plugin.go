// Package plugin provides a static, name-keyed registry of application
// plugins. Plugins register themselves at link time (typically from an init
// function) and the application applies them by name or all at once, in
// registration order. This replaces dynamic library loading with a
// statically linked capability-object registry.
package plugin

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/strata-go/app"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]app.Plugin)
	order    []string
)

// Register adds a plugin to the registry under its name. The first
// registration wins the name; a duplicate is rejected.
//
// Parameters:
//   - p: the plugin to register
//
// Returns:
//   - error: an error if the name is already registered
func Register(p app.Plugin) error {
	mu.Lock()
	defer mu.Unlock()
	name := p.Name()
	if _, ok := registry[name]; ok {
		return fmt.Errorf("plugin: %q already registered", name)
	}
	registry[name] = p
	order = append(order, name)
	return nil
}

// Lookup retrieves a registered plugin by name.
//
// Parameters:
//   - name: the plugin identifier
//
// Returns:
//   - app.Plugin: the plugin, or nil if not registered
//   - bool: true if the name was registered
func Lookup(name string) (app.Plugin, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[name]
	return p, ok
}

// All returns every registered plugin in registration order.
//
// Returns:
//   - []app.Plugin: the registered plugins
func All() []app.Plugin {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]app.Plugin, 0, len(order))
	for _, name := range order {
		out = append(out, registry[name])
	}
	return out
}

// BuildAll applies every registered plugin to the builder, in registration
// order.
//
// Parameters:
//   - b: the assembly root, in configuring state
func BuildAll(b *app.AppBuilder) {
	for _, p := range All() {
		b.AddPlugin(p)
	}
}
