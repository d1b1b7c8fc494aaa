package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is the village shipped with the game.
const DefaultLevel = "village.json"

// Level is a static village layout: spawn points, buildings and the NPCs the
// player can talk to, in talk-priority order.
type Level struct {
	Name       string      `json:"name"`
	Spawns     Spawns      `json:"spawns"`
	Structures []Structure `json:"structures"`
	NPCs       []NPC       `json:"npcs"`
}

type Vec3 [3]float64

type Spawns struct {
	Tutorial Vec3 `json:"tutorial"`
	Normal   Vec3 `json:"normal"`
}

type Structure struct {
	Name     string `json:"name"`
	Position Vec3   `json:"position"`
	Size     Vec3   `json:"size"`
	Color    string `json:"color,omitempty"`
}

type NPC struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Profile  string `json:"profile"`
	Text     string `json:"text"`
	Position Vec3   `json:"position"`
	// Model is the preferred visual; a missing model gets the fallback.
	Model string `json:"model,omitempty"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return ParseLevel(data)
}

func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	seen := make(map[string]bool, len(lvl.NPCs))
	for _, npc := range lvl.NPCs {
		if npc.Name == "" {
			return nil, fmt.Errorf("level %q: npc without name", lvl.Name)
		}
		if seen[npc.Name] {
			return nil, fmt.Errorf("level %q: duplicate npc %q", lvl.Name, npc.Name)
		}
		seen[npc.Name] = true
	}
	return &lvl, nil
}
