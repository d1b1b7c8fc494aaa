package component

// Interactive marks an entity the player can talk to. The world builder owns
// it; the controller and resolver only read it.
type Interactive struct {
	Name    string
	Label   string
	Profile string
	Text    string
	Order   int
}

var InteractiveComponent = NewComponent[Interactive]()

// Materialized is present once the entity's visual exists in the scene.
type Materialized struct {
	Fallback bool
}

var MaterializedComponent = NewComponent[Materialized]()

// PendingVisual counts down until the visual is ready.
type PendingVisual struct {
	FramesLeft int
	Fail       bool
}

var PendingVisualComponent = NewComponent[PendingVisual]()

// InteractRequest is added to the player for an accepted interact press and
// consumed by the interaction system in the same frame.
type InteractRequest struct{}

var InteractRequestComponent = NewComponent[InteractRequest]()
