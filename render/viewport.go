package render

import (
	"math"

	"github.com/lixenwraith/vi-kart/constant"
	"github.com/lixenwraith/vi-kart/vmath"
)

// Viewport maps world pixels into a rectangle of terminal cells
// One world pixel spans Scale columns and Scale/CellAspect rows, so circles stay round
type Viewport struct {
	X, Y          int // top-left cell of the play area
	Width, Height int // play area in cells
	Scale         float64
	originX       float64 // world-space left edge shown at column X
	originY       float64
}

// NewViewport fits a worldW x worldH canvas centered into the given cell rectangle
func NewViewport(x, y, width, height int, worldW, worldH float64) Viewport {
	sx := float64(width) / worldW
	sy := float64(height) * constant.CellAspect / worldH
	scale := math.Min(sx, sy)
	if scale <= 0 {
		scale = 1
	}

	// Center the canvas, the spare axis shows more world
	shownW := float64(width) / scale
	shownH := float64(height) * constant.CellAspect / scale
	return Viewport{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Scale:   scale,
		originX: (worldW - shownW) / 2,
		originY: (worldH - shownH) / 2,
	}
}

// ToCell returns the cell containing world point p and whether it is inside the play area
func (v Viewport) ToCell(p vmath.Vec2) (int, int, bool) {
	cx := int(math.Floor((p.X - v.originX) * v.Scale))
	cy := int(math.Floor((p.Y - v.originY) * v.Scale / constant.CellAspect))
	return v.X + cx, v.Y + cy, cx >= 0 && cx < v.Width && cy >= 0 && cy < v.Height
}

// ToWorld returns the world point at the center of cell (x, y)
func (v Viewport) ToWorld(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: v.originX + (float64(x-v.X)+0.5)/v.Scale,
		Y: v.originY + (float64(y-v.Y)+0.5)*constant.CellAspect/v.Scale,
	}
}
