package system

import (
	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
	"github.com/milk9111/furi/voice"
)

// DialogueSystem presents posted lines. The last line of a frame owns the
// panel; every line is handed to the speaker, which drops it if busy.
type DialogueSystem struct {
	speaker voice.Speaker
}

func NewDialogueSystem(speaker voice.Speaker) *DialogueSystem {
	return &DialogueSystem{speaker: speaker}
}

func (s *DialogueSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.DialogueComponent.Kind(), func(e ecs.Entity, panel *component.Dialogue) {
		if len(panel.Pending) == 0 {
			return
		}
		lines := panel.Pending
		panel.Pending = nil
		for _, line := range lines {
			panel.Current = line
			if s.speaker != nil {
				s.speaker.Speak(line.Text, line.Profile)
			}
			w.Events().Push(ecs.Event{Type: ecs.EventDialogue, Entity: e, Data: line})
		}
	})
}
