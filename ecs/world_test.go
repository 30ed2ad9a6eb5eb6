package ecs

import (
	"errors"
	"testing"
)

type testEvent struct{ n int }

func (testEvent) Type() EventType { return "test" }

type countingSystem struct {
	calls int
	err   error
}

func (s *countingSystem) Update(world *World, dt float64) error {
	s.calls++
	return s.err
}

func TestGetSingletonWithTag(t *testing.T) {
	w := NewWorld()

	_, err := w.GetSingletonWithTag("player")
	if !errors.Is(err, ErrNoSingleton) {
		t.Fatalf("Expected ErrNoSingleton, got %v", err)
	}

	e1 := w.CreateEntity()
	w.TagEntity(e1.ID, "player")

	got, err := w.GetSingletonWithTag("player")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.ID != e1.ID {
		t.Errorf("Expected entity %d, got %d", e1.ID, got.ID)
	}

	e2 := w.CreateEntity()
	w.TagEntity(e2.ID, "player")

	_, err = w.GetSingletonWithTag("player")
	if !errors.Is(err, ErrMultipleSingletons) {
		t.Fatalf("Expected ErrMultipleSingletons, got %v", err)
	}
	var singletonErr *SingletonError
	if !errors.As(err, &singletonErr) {
		t.Fatalf("Expected *SingletonError, got %T", err)
	}
	if singletonErr.Tag != "player" || singletonErr.Count != 2 {
		t.Errorf("Unexpected error fields: %+v", singletonErr)
	}
	if errors.Is(err, ErrNoSingleton) {
		t.Error("Multiple match must not match ErrNoSingleton")
	}
}

func TestRemoveEntityClearsTags(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.TagEntity(e.ID, "camera")
	w.AddComponent(e.ID, 1, "data")

	w.RemoveEntity(e.ID)

	if n := len(w.GetEntitiesWithTag("camera")); n != 0 {
		t.Errorf("Expected 0 tagged entities, got %d", n)
	}
	if w.HasComponent(e.ID, 1) {
		t.Error("Component survived entity removal")
	}
	if w.GetEntity(e.ID) != nil {
		t.Error("Entity survived removal")
	}
}

func TestUntagEntity(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.TagEntity(e.ID, "main_camera")
	w.UntagEntity(e.ID, "main_camera")

	if e.HasTag("main_camera") {
		t.Error("Entity still carries tag")
	}
	if _, err := w.GetSingletonWithTag("main_camera"); !errors.Is(err, ErrNoSingleton) {
		t.Errorf("Expected ErrNoSingleton, got %v", err)
	}
}

func TestQueriesAreOrderedByID(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 10; i++ {
		e := w.CreateEntity()
		w.TagEntity(e.ID, "marker")
		w.AddComponent(e.ID, 3, i)
	}

	tagged := w.GetEntitiesWithTag("marker")
	withComp := w.GetEntitiesWithComponent(3)
	for i := 1; i < len(tagged); i++ {
		if tagged[i-1].ID >= tagged[i].ID {
			t.Fatalf("Tag query out of order at %d", i)
		}
		if withComp[i-1].ID >= withComp[i].ID {
			t.Fatalf("Component query out of order at %d", i)
		}
	}
}

func TestUpdateStopsAtFirstError(t *testing.T) {
	w := NewWorld()
	boom := errors.New("boom")
	first := &countingSystem{err: boom}
	second := &countingSystem{}
	w.AddSystem(first)
	w.AddSystem(second)

	if err := w.Update(1.0 / 60.0); !errors.Is(err, boom) {
		t.Fatalf("Expected boom, got %v", err)
	}
	if first.calls != 1 || second.calls != 0 {
		t.Errorf("Expected calls 1/0, got %d/%d", first.calls, second.calls)
	}
}

func TestEventSubscribeUnsubscribe(t *testing.T) {
	w := NewWorld()
	var a, b int
	idA := w.GetEventManager().Subscribe("test", func(e Event) { a += e.(testEvent).n })
	w.GetEventManager().Subscribe("test", func(e Event) { b += e.(testEvent).n })

	w.EmitEvent(testEvent{n: 2})
	w.GetEventManager().Unsubscribe("test", idA)
	w.EmitEvent(testEvent{n: 3})

	if a != 2 {
		t.Errorf("Expected a=2, got %d", a)
	}
	if b != 5 {
		t.Errorf("Expected b=5, got %d", b)
	}
}
