package system

import (
	"log/slog"
	"slices"

	"github.com/milk9111/furi/dialogue"
	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
	"github.com/milk9111/furi/interact"
)

// InteractionResult is the payload of an EventInteraction. Name is empty
// when nothing was in range.
type InteractionResult struct {
	Name string
	Line dialogue.Line
}

// InteractionSystem answers interact presses with the nearest materialized
// NPC's line and keeps the HUD hint pointing at whoever is in range.
type InteractionSystem struct {
	index    *interact.Index
	indexed  []ecs.Entity
	selector dialogue.Selector
	visits   map[string]int
}

func NewInteractionSystem(selector dialogue.Selector) *InteractionSystem {
	return &InteractionSystem{
		index:    interact.NewIndex(),
		selector: selector,
		visits:   make(map[string]int),
	}
}

func (s *InteractionSystem) SetSelector(selector dialogue.Selector) {
	s.selector = selector
}

// Visits returns how often the named NPC has been talked to.
func (s *InteractionSystem) Visits(name string) int {
	return s.visits[name]
}

func (s *InteractionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, session, ok := ecs.Single(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	requested := ecs.Has(w, player, component.InteractRequestComponent.Kind())
	if requested {
		ecs.Remove(w, player, component.InteractRequestComponent.Kind())
	}

	_, panel, hasPanel := ecs.Single(w, component.DialogueComponent.Kind())
	if !session.Active {
		if hasPanel {
			panel.Hint = ""
		}
		return
	}

	transform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	threshold := interact.DefaultThreshold
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok && p.InteractRadius > 0 {
		threshold = p.InteractRadius
	}

	s.refresh(w)
	best, found := s.index.Resolve(transform.Position, threshold)

	if hasPanel {
		panel.Hint = ""
		if found {
			if it := s.interactive(w, best); it != nil {
				panel.Hint = it.Label
			}
		}
	}

	if !requested {
		return
	}
	if !found {
		w.Events().Push(ecs.Event{Type: ecs.EventInteraction, Entity: player, Data: InteractionResult{}})
		slog.Debug("interact: nothing in range", "position", transform.Position)
		return
	}

	it := s.interactive(w, best)
	if it == nil {
		return
	}
	s.visits[it.Name]++
	npc := dialogue.NPC{
		Name:    it.Name,
		Label:   it.Label,
		Profile: it.Profile,
		Text:    it.Text,
		Visits:  s.visits[it.Name],
	}
	var line dialogue.Line
	if s.selector != nil {
		line = s.selector.Select(npc)
	} else {
		line = npc.Default()
	}
	if hasPanel {
		panel.Post(line)
	}
	w.Events().Push(ecs.Event{Type: ecs.EventInteraction, Entity: player, Data: InteractionResult{Name: it.Name, Line: line}})
	slog.Debug("interact", "npc", it.Name, "visits", npc.Visits, "text", line.Text)
}

// refresh rebuilds the broadphase when the set of materialized NPCs changed.
// NPCs never move, so membership is enough. Entity handles carry a
// generation, so a despawn plus spawn in one frame still differs.
func (s *InteractionSystem) refresh(w *ecs.World) {
	ents := w.Query(component.InteractiveComponent.Kind(), component.TransformComponent.Kind())
	materialized := make([]ecs.Entity, 0, len(ents))
	for _, e := range ents {
		if ecs.Has(w, e, component.MaterializedComponent.Kind()) {
			materialized = append(materialized, e)
		}
	}
	if slices.Equal(materialized, s.indexed) {
		return
	}

	cands := make([]interact.Candidate, 0, len(materialized))
	for _, e := range materialized {
		it, _ := ecs.Get(w, e, component.InteractiveComponent.Kind())
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		cands = append(cands, interact.Candidate{
			Name:         it.Name,
			Position:     tr.Position,
			Materialized: true,
			Order:        it.Order,
		})
	}
	s.index.Rebuild(cands)
	s.indexed = materialized
}

func (s *InteractionSystem) interactive(w *ecs.World, c interact.Candidate) *component.Interactive {
	for _, e := range w.Query(component.InteractiveComponent.Kind()) {
		if it, ok := ecs.Get(w, e, component.InteractiveComponent.Kind()); ok && it.Name == c.Name {
			return it
		}
	}
	return nil
}
