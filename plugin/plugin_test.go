package plugin

import (
	"testing"

	"github.com/Carmen-Shannon/strata-go/app"
)

type namedPlugin struct {
	name   string
	builds *int
}

func (p *namedPlugin) Name() string { return p.name }

func (p *namedPlugin) Build(*app.AppBuilder) {
	if p.builds != nil {
		*p.builds++
	}
}

func resetRegistry() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]app.Plugin)
	order = nil
}

func TestRegisterRejectsDuplicateName(t *testing.T) {
	resetRegistry()

	if err := Register(&namedPlugin{name: "physics"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := Register(&namedPlugin{name: "physics"}); err == nil {
		t.Fatalf("duplicate name accepted")
	}

	p, ok := Lookup("physics")
	if !ok || p.Name() != "physics" {
		t.Fatalf("lookup after duplicate rejection = %v, %v", p, ok)
	}
}

func TestAllPreservesRegistrationOrder(t *testing.T) {
	resetRegistry()

	for _, name := range []string{"audio", "input", "physics"} {
		if err := Register(&namedPlugin{name: name}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	all := All()
	if len(all) != 3 {
		t.Fatalf("All returned %d plugins, want 3", len(all))
	}
	for i, want := range []string{"audio", "input", "physics"} {
		if all[i].Name() != want {
			t.Fatalf("All[%d] = %s, want %s", i, all[i].Name(), want)
		}
	}
}

func TestBuildAllAppliesEveryPlugin(t *testing.T) {
	resetRegistry()

	var builds int
	if err := Register(&namedPlugin{name: "a", builds: &builds}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := Register(&namedPlugin{name: "b", builds: &builds}); err != nil {
		t.Fatalf("register: %v", err)
	}

	b := app.NewAppBuilder()
	BuildAll(b)

	if builds != 2 {
		t.Fatalf("plugins built %d times, want 2", builds)
	}
}
