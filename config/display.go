package config

// ILI9341 panel in portrait.
const (
	DisplayWidth  = 240
	DisplayHeight = 320
)
