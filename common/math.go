package common

// Logical screen size; the window scales it.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)
