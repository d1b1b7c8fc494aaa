// Package dialogue picks the line an NPC answers with.
package dialogue

// Line is one presented utterance.
type Line struct {
	Speaker string
	Text    string
	Profile string
}

// String is the panel rendering of the line.
func (l Line) String() string {
	if l.Speaker == "" {
		return l.Text
	}
	return l.Speaker + ": " + l.Text
}

// NPC is the identity and defaults of the entity that was talked to.
type NPC struct {
	Name    string
	Label   string
	Profile string
	Text    string
	// Visits counts conversations with this NPC, including the current one.
	Visits int
}

// Default is the NPC's own line.
func (n NPC) Default() Line {
	return Line{Speaker: n.Label, Text: n.Text, Profile: n.Profile}
}

// Selector maps a resolved NPC to the line it says.
type Selector interface {
	Select(npc NPC) Line
}

// Table is a fixed lookup by NPC name. Unknown names fall back to the NPC's
// own line.
type Table struct {
	lines map[string]Line
}

func NewTable(lines map[string]Line) *Table {
	copied := make(map[string]Line, len(lines))
	for name, line := range lines {
		copied[name] = line
	}
	return &Table{lines: copied}
}

func (t *Table) Select(npc NPC) Line {
	if t == nil {
		return npc.Default()
	}
	line, ok := t.lines[npc.Name]
	if !ok || line.Text == "" {
		return npc.Default()
	}
	if line.Speaker == "" {
		line.Speaker = npc.Label
	}
	if line.Profile == "" {
		line.Profile = npc.Profile
	}
	return line
}
