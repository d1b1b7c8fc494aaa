package ecs

import "github.com/milk9111/furi/ecs/component"

// World owns entities, component storage, the system schedule and the frame
// clock. One World is one play session.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler Scheduler
	events    EventQueue

	delta   float64
	elapsed float64
	frames  int
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update advances the clock by dt seconds and runs every system once. Events
// pushed during the previous frame are dropped first.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.events.flush()
	w.delta = dt
	w.elapsed += dt
	w.frames++
	w.scheduler.Update(w)
}

// Delta returns the elapsed time of the current frame in seconds.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

// Elapsed returns the total simulated time in seconds.
func (w *World) Elapsed() float64 {
	if w == nil {
		return 0
	}
	return w.elapsed
}

// Frames returns how many updates have run.
func (w *World) Frames() int {
	if w == nil {
		return 0
	}
	return w.frames
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Query returns live entities owning every listed kind, in the dense order of
// the smallest store.
func (w *World) Query(kinds ...component.KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		set := w.stores[k.ID()]
		if set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}
	return intersect(sets)
}

// First returns the first entity owning kind.
func (w *World) First(kind component.KindID) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	ents := w.stores[kind.ID()].Entities()
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	set := w.stores[id]
	if set == nil && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		set = &SparseSet{}
		w.stores[id] = set
	}
	return set
}
