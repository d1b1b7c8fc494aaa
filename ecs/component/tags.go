package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type NPCTag struct{}

var NPCTagComponent = NewComponent[NPCTag]()

type HUDTag struct{}

var HUDTagComponent = NewComponent[HUDTag]()
