// Package render draws race snapshots into a tcell screen
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-kart/constant"
	"github.com/lixenwraith/vi-kart/race"
	"github.com/lixenwraith/vi-kart/track"
	"github.com/lixenwraith/vi-kart/vmath"
)

// TerminalPresenter implements race.Presenter on a tcell screen
// The static track layer is rebuilt only when the screen size changes
type TerminalPresenter struct {
	screen tcell.Screen
	track  *track.Track
	hints  Hints

	buf      *RenderBuffer
	scene    *RenderBuffer // track layer cache
	view     Viewport
	width    int
	height   int
	tooSmall bool
}

// Hints are the fixed help texts, empty strings are not drawn
type Hints struct {
	Footer string // controls line under the play area
	Idle   string // shown over the infield before the first start
}

// NewTerminalPresenter creates a presenter for tr
func NewTerminalPresenter(screen tcell.Screen, tr *track.Track, hints Hints) *TerminalPresenter {
	return &TerminalPresenter{
		screen: screen,
		track:  tr,
		hints:  hints,
		buf:    NewRenderBuffer(0, 0),
		scene:  NewRenderBuffer(0, 0),
	}
}

// Present implements race.Presenter
func (p *TerminalPresenter) Present(s race.Snapshot) {
	w, h := p.screen.Size()
	p.Compose(s, w, h)
	p.buf.Flush(p.screen)
}

// Compose draws s into the frame buffer for a w x h terminal without touching the screen
func (p *TerminalPresenter) Compose(s race.Snapshot, w, h int) *RenderBuffer {
	if w != p.width || h != p.height {
		p.layout(w, h)
	}

	base := tcell.StyleDefault.Background(RgbBackground)
	if p.tooSmall {
		p.buf.Fill(' ', base)
		p.buf.SetStringCentered(h/2, "Enlarge terminal", base.Foreground(RgbHudText))
		return p.buf
	}

	copy(p.buf.cells, p.scene.cells)
	p.drawBoxes(s.Boxes)
	p.drawKarts(s.Karts)
	p.drawHUD(s, base)
	p.drawOverlay(s, base)
	return p.buf
}

func (p *TerminalPresenter) layout(w, h int) {
	p.width, p.height = w, h
	p.buf.Resize(w, h)
	p.scene.Resize(w, h)

	playH := h - constant.HUDRows - constant.FooterRows
	p.tooSmall = w < constant.MinPlayCols || playH < constant.MinPlayRows
	if p.tooSmall {
		return
	}
	p.view = NewViewport(0, constant.HUDRows, w, playH, constant.WorldWidth, constant.WorldHeight)
	p.drawScene()
}

// drawScene rasterizes grass, asphalt, kerbs and the checkered gate into the cache
func (p *TerminalPresenter) drawScene() {
	base := tcell.StyleDefault.Background(RgbBackground)
	p.scene.Fill(' ', base)

	v := p.view
	kerb := 1.0 / v.Scale // one column of world pixels
	for y := v.Y; y < v.Y+v.Height; y++ {
		for x := v.X; x < v.X+v.Width; x++ {
			pt := v.ToWorld(x, y)
			d := vmath.V2Mag(vmath.V2Sub(pt, p.track.Center))
			theta := math.Atan2(pt.Y-p.track.Center.Y, pt.X-p.track.Center.X)

			switch {
			case d < p.track.Inner-kerb || d > p.track.Outer+kerb:
				p.scene.Set(x, y, ' ', base.Background(RgbGrass))
			case d < p.track.Inner || d > p.track.Outer:
				p.scene.Set(x, y, ' ', base.Background(RgbKerb))
			case p.track.InGate(theta):
				bg := RgbGateLight
				if (x+y)%2 == 0 {
					bg = RgbGateDark
				}
				p.scene.Set(x, y, ' ', base.Background(bg))
			default:
				p.scene.Set(x, y, ' ', base.Background(RgbAsphalt))
			}
		}
	}
}

func (p *TerminalPresenter) drawBoxes(boxes []race.BoxView) {
	for _, b := range boxes {
		x, y, ok := p.view.ToCell(b.Pos)
		if !ok {
			continue
		}
		if b.Active {
			p.buf.SetFg(x, y, '?', RgbBoxActive)
		} else {
			p.buf.SetFg(x, y, '·', RgbBoxInactive)
		}
	}
}

func (p *TerminalPresenter) drawKarts(karts []race.KartView) {
	for i, k := range karts {
		x, y, ok := p.view.ToCell(k.Pos)
		if !ok {
			continue
		}
		style := p.buf.Get(x, y).Style.Foreground(KartColor(i)).Bold(true)
		if k.TurboGlow {
			style = style.Background(RgbTurboGlow)
		}
		p.buf.Set(x, y, HeadingGlyph(k.Heading), style)
	}
}

func (p *TerminalPresenter) drawHUD(s race.Snapshot, base tcell.Style) {
	for y := 0; y < constant.HUDRows; y++ {
		for x := 0; x < p.width; x++ {
			p.buf.Set(x, y, ' ', base)
		}
	}
	for i, k := range s.Karts {
		if i >= constant.HUDRows-1 {
			break
		}
		x := p.buf.SetString(0, i, "■ ", base.Foreground(KartColor(i)))
		p.buf.SetString(x, i, HUDLine(k, s.Laps), base.Foreground(RgbHudText))
	}

	if p.hints.Footer != "" {
		y := p.height - 1
		for x := 0; x < p.width; x++ {
			p.buf.Set(x, y, ' ', base)
		}
		p.buf.SetString(0, y, p.hints.Footer, base.Foreground(RgbHudDim))
	}
}

// drawOverlay puts the countdown label and banner over the infield
func (p *TerminalPresenter) drawOverlay(s race.Snapshot, base tcell.Style) {
	mid := p.view.Y + p.view.Height/2
	if s.CountdownVisible {
		color := RgbCountdown
		if s.Countdown == race.CountdownLabels[len(race.CountdownLabels)-1] {
			color = RgbGo
		}
		p.buf.SetStringCentered(mid-1, " "+s.Countdown+" ", base.Foreground(color).Bold(true))
	}
	if s.BannerVisible {
		p.buf.SetStringCentered(mid+1, " "+s.Banner+" ", base.Foreground(RgbBanner).Bold(true))
	}
	if s.Phase == race.PhaseIdle && p.hints.Idle != "" {
		p.buf.SetStringCentered(mid, " "+p.hints.Idle+" ", base.Foreground(RgbHudText))
	}
}
