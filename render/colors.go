package render

import "github.com/gdamore/tcell/v2"

// Scene colors
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)  // Tokyo Night background
	RgbGrass      = tcell.NewRGBColor(24, 64, 32)  // Infield and outfield
	RgbAsphalt    = tcell.NewRGBColor(58, 58, 66)  // Track surface
	RgbKerb       = tcell.NewRGBColor(200, 60, 60) // Ring edges
	RgbGateLight  = tcell.NewRGBColor(240, 240, 240)
	RgbGateDark   = tcell.NewRGBColor(20, 20, 20)

	RgbBoxActive   = tcell.NewRGBColor(255, 215, 0) // Gold question block
	RgbBoxInactive = tcell.NewRGBColor(90, 90, 90)  // Respawning
	RgbTurboGlow   = tcell.NewRGBColor(255, 140, 0) // Kart background while boosting
	RgbHudText     = tcell.NewRGBColor(220, 220, 220)
	RgbHudDim      = tcell.NewRGBColor(130, 130, 130)
	RgbCountdown   = tcell.NewRGBColor(255, 255, 255)
	RgbGo          = tcell.NewRGBColor(80, 255, 80)
	RgbBanner      = tcell.NewRGBColor(255, 215, 0)
)

// kartColors cycle by grid slot
var kartColors = []tcell.Color{
	tcell.NewRGBColor(255, 80, 80),   // Red
	tcell.NewRGBColor(80, 220, 80),   // Green
	tcell.NewRGBColor(100, 150, 255), // Blue
	tcell.NewRGBColor(255, 255, 0),   // Yellow
}

// KartColor returns the color of grid slot i
func KartColor(i int) tcell.Color {
	return kartColors[i%len(kartColors)]
}
