package ecs

import "github.com/milk9111/furi/ecs/component"

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity kills e and drops all of its components.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, set := range w.stores {
		set.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether e is a live entity of w.
func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	return w.store(kind.ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	return w.store(kind.ID(), false).Has(e)
}

// Get returns the stored pointer, so callers mutate components in place.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	value, ok := w.store(kind.ID(), false).Get(e).(*T)
	return value, ok
}

// ForEach calls fn for every entity owning kind. fn must not add or remove
// components of the same kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	set := w.store(kind.ID(), false)
	ents := set.Entities()
	for i := 0; i < len(ents); i++ {
		if value, ok := set.denseValues[i].(*T); ok {
			fn(ents[i], value)
		}
	}
}

// Single returns the first entity owning kind together with its value.
func Single[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	e, ok := w.First(kind)
	if !ok {
		return 0, nil, false
	}
	value, ok := Get(w, e, kind)
	return e, value, ok
}
