package config

import "image/color"

const (
	// Drawing surface; the dial center sits on its midpoint.
	SurfaceWidth  = 301
	SurfaceHeight = 301

	// Panel below the surface holding the displays and controls
	PanelHeight = 139

	WindowWidth  = SurfaceWidth
	WindowHeight = SurfaceHeight + PanelHeight

	MidPoint    = 150.5
	OuterRadius = 101
	InnerRadius = OuterRadius - 25

	CrosshairHalfLength = 4.5
	MarkerRadius        = 5
	StrokeWidth         = 1

	// Magnitude slider
	SliderX      = 12
	SliderY      = SurfaceHeight + 64
	SliderWidth  = SurfaceWidth - 24
	SliderHeight = 12

	// Button dimensions
	ButtonWidth  = 80
	ButtonHeight = 20
	ButtonY      = SurfaceHeight + 88
	ResetX       = 12
	ClearX       = ResetX + ButtonWidth + 10

	// Click tone
	ToneSampleRate = 44100
)

var (
	StrokeColor     = color.RGBA{A: 255}
	MarkerColor     = color.RGBA{G: 128, A: 255}
	BackgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	PanelColor      = color.RGBA{R: 30, G: 34, B: 44, A: 255}
	ControlColor    = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	ControlHover    = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	BorderColor     = color.RGBA{R: 150, G: 170, B: 200, A: 255}
)
