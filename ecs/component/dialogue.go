package component

import "github.com/milk9111/furi/dialogue"

// Dialogue is the presenter's state: lines waiting to be shown, the line on
// screen and the label of the talkable NPC in range.
type Dialogue struct {
	Pending []dialogue.Line
	Current dialogue.Line
	Hint    string
}

var DialogueComponent = NewComponent[Dialogue]()

// Post queues a line for the presenter.
func (d *Dialogue) Post(line dialogue.Line) {
	if d == nil || line.Text == "" {
		return
	}
	d.Pending = append(d.Pending, line)
}
