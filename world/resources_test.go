package world

import "testing"

type frameBudget struct {
	ms int
}

func TestInsertAndGetRoundTrip(t *testing.T) {
	r := NewResources()
	r.Insert(frameBudget{ms: 16})

	got, ok := Get[frameBudget](r)
	if !ok {
		t.Fatalf("resource not found")
	}
	if got.ms != 16 {
		t.Fatalf("resource = %+v", got)
	}
}

func TestInsertReplacesSameType(t *testing.T) {
	r := NewResources()
	r.Insert(frameBudget{ms: 16})
	r.Insert(frameBudget{ms: 33})

	got, _ := Get[frameBudget](r)
	if got.ms != 33 {
		t.Fatalf("resource.ms = %d, want 33", got.ms)
	}
	if r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}
}

func TestPointerAndValueAreDistinctKeys(t *testing.T) {
	r := NewResources()
	r.Insert(frameBudget{ms: 1})
	r.Insert(&frameBudget{ms: 2})

	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
	byValue, _ := Get[frameBudget](r)
	byPointer, _ := Get[*frameBudget](r)
	if byValue.ms != 1 || byPointer.ms != 2 {
		t.Fatalf("value = %d, pointer = %d", byValue.ms, byPointer.ms)
	}
}

func TestMustGetPanicsWhenAbsent(t *testing.T) {
	r := NewResources()
	defer func() {
		if recover() == nil {
			t.Fatalf("MustGet on an empty table did not panic")
		}
	}()
	MustGet[frameBudget](r)
}

func TestRemoveReturnsStoredValue(t *testing.T) {
	r := NewResources()
	r.Insert(frameBudget{ms: 16})

	got, ok := Remove[frameBudget](r)
	if !ok || got.ms != 16 {
		t.Fatalf("remove = %+v, %v", got, ok)
	}
	if _, ok := Get[frameBudget](r); ok {
		t.Fatalf("resource still present after remove")
	}
	if _, ok := Remove[frameBudget](r); ok {
		t.Fatalf("second remove reported a value present")
	}
}
