package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-kart/race"
	"github.com/lixenwraith/vi-kart/vmath"
)

// HUDLine is one kart's status row: name, lap, place, item and speed
func HUDLine(v race.KartView, laps int) string {
	lap := fmt.Sprintf("Lap %d/%d", v.Lap, laps)
	if v.Finished {
		lap = "Finished"
	}
	driver := ""
	if v.AI {
		driver = " [AI]"
	}
	return fmt.Sprintf("%-8s %-9s %-3s Item: %-6s Speed: %3d%s",
		v.Name, lap, v.PlaceLabel, v.ItemLabel, v.Speed, driver)
}

// arrows point east, then clockwise on screen (y grows down)
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// HeadingGlyph returns the arrow closest to a screen heading
func HeadingGlyph(heading float64) rune {
	sector := int(math.Round(vmath.NormalizeAngle(heading) / (vmath.Pi / 4)))
	return arrows[((sector%8)+8)%8]
}
