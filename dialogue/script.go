package dialogue

import (
	"fmt"
	"log/slog"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const respondDispatchScript = `
__result := undefined
if is_callable(respond) {
	__result = respond(__npc)
}
`

// ScriptSelector asks a tengo script for the line. The script defines
// respond(npc) returning {speaker, text, profile} or undefined; undefined,
// an empty text or a runtime error falls back.
type ScriptSelector struct {
	compiled *tengo.Compiled
	fallback Selector
}

func NewScriptSelector(src []byte, fallback Selector) (*ScriptSelector, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + respondDispatchScript))
	if err := script.Add("__npc", map[string]any{}); err != nil {
		return nil, fmt.Errorf("dialogue: script: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("dialogue: compile script: %w", err)
	}
	return &ScriptSelector{compiled: compiled, fallback: fallback}, nil
}

func (s *ScriptSelector) Select(npc NPC) Line {
	line, err := s.run(npc)
	if err != nil {
		slog.Warn("dialogue script failed", "npc", npc.Name, "error", err)
	}
	if err != nil || line.Text == "" {
		if s == nil || s.fallback == nil {
			return npc.Default()
		}
		return s.fallback.Select(npc)
	}
	return line
}

func (s *ScriptSelector) run(npc NPC) (Line, error) {
	if s == nil || s.compiled == nil {
		return Line{}, nil
	}
	if err := s.compiled.Set("__npc", map[string]any{
		"name":    npc.Name,
		"label":   npc.Label,
		"profile": npc.Profile,
		"text":    npc.Text,
		"visits":  npc.Visits,
	}); err != nil {
		return Line{}, err
	}
	if err := s.compiled.Run(); err != nil {
		return Line{}, err
	}

	result := s.compiled.Get("__result")
	if result.IsUndefined() {
		return Line{}, nil
	}
	fields := result.Map()
	if fields == nil {
		return Line{}, fmt.Errorf("respond returned %s, want map", result.ValueType())
	}
	line := Line{
		Speaker: stringField(fields, "speaker", npc.Label),
		Text:    stringField(fields, "text", ""),
		Profile: stringField(fields, "profile", npc.Profile),
	}
	return line, nil
}

func stringField(fields map[string]any, key, def string) string {
	if v, ok := fields[key].(string); ok && v != "" {
		return v
	}
	return def
}
