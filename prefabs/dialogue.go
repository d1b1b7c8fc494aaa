package prefabs

import (
	"fmt"

	"github.com/milk9111/furi/dialogue"
	"github.com/milk9111/furi/motion"
)

func (l LineSpec) Line() dialogue.Line {
	return dialogue.Line{Speaker: l.Speaker, Text: l.Text, Profile: l.Profile}
}

// Table is the fixed response table.
func (s *DialogueSpec) Table() *dialogue.Table {
	if s == nil {
		return dialogue.NewTable(nil)
	}
	lines := make(map[string]dialogue.Line, len(s.Responses))
	for name, l := range s.Responses {
		lines[name] = l.Line()
	}
	return dialogue.NewTable(lines)
}

// Selector returns the scripted selector over the table, or the table alone
// when no script is configured.
func (s *DialogueSpec) Selector() (dialogue.Selector, error) {
	table := s.Table()
	if s == nil || s.Script == "" {
		return table, nil
	}
	src, err := LoadScript(s.Script)
	if err != nil {
		return table, fmt.Errorf("prefabs: load script %s: %w", s.Script, err)
	}
	selector, err := dialogue.NewScriptSelector(src, table)
	if err != nil {
		return table, err
	}
	return selector, nil
}

// ModeGreetings maps each session mode to the line shown on activation.
func (s *DialogueSpec) ModeGreetings() map[motion.Mode]dialogue.Line {
	out := make(map[motion.Mode]dialogue.Line)
	if s == nil {
		return out
	}
	for _, mode := range []motion.Mode{motion.ModeNormal, motion.ModeTutorial} {
		if l, ok := s.Greetings[mode.String()]; ok {
			out[mode] = l.Line()
		}
	}
	return out
}

// MenuLine returns the canned line of a menu entry.
func (s *DialogueSpec) MenuLine(key string) (dialogue.Line, bool) {
	if s == nil {
		return dialogue.Line{}, false
	}
	l, ok := s.Menu[key]
	if !ok || l.Text == "" {
		return dialogue.Line{}, false
	}
	return l.Line(), true
}
