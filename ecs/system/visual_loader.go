package system

import (
	"log/slog"

	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
)

// VisualLoaderSystem counts down pending NPC visuals and marks them
// materialized once ready. A failed load still materializes with the
// fallback marker, so the NPC stays talkable.
type VisualLoaderSystem struct{}

func NewVisualLoaderSystem() *VisualLoaderSystem {
	return &VisualLoaderSystem{}
}

func (s *VisualLoaderSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var ready []ecs.Entity
	ecs.ForEach(w, component.PendingVisualComponent.Kind(), func(e ecs.Entity, pending *component.PendingVisual) {
		if pending.FramesLeft > 0 {
			pending.FramesLeft--
		}
		if pending.FramesLeft <= 0 {
			ready = append(ready, e)
		}
	})

	for _, e := range ready {
		pending, ok := ecs.Get(w, e, component.PendingVisualComponent.Kind())
		if !ok {
			continue
		}
		fallback := pending.Fail
		ecs.Remove(w, e, component.PendingVisualComponent.Kind())
		if err := ecs.Add(w, e, component.MaterializedComponent.Kind(), &component.Materialized{Fallback: fallback}); err != nil {
			panic("visual loader: add materialized: " + err.Error())
		}
		if fallback {
			name := ""
			if it, ok := ecs.Get(w, e, component.InteractiveComponent.Kind()); ok {
				name = it.Name
			}
			slog.Warn("npc visual unavailable, using fallback", "npc", name)
		}
	}
}
