package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-kart/constant"
	"github.com/lixenwraith/vi-kart/input"
	"github.com/lixenwraith/vi-kart/kart"
	"github.com/lixenwraith/vi-kart/race"
	"github.com/lixenwraith/vi-kart/track"
	"github.com/lixenwraith/vi-kart/vmath"
)

func newTestDirector(t *testing.T, tr *track.Track) *race.Director {
	t.Helper()
	field := track.NewField(tr, constant.BoxCount, constant.BoxRingOffset)
	var entrants []race.Entrant
	for i, name := range []string{"Mario", "Luigi"} {
		k, err := kart.New(name, tr, tr.MidRadius(), race.GridTheta(i), kart.DefaultTuning())
		if err != nil {
			t.Fatalf("kart.New: %v", err)
		}
		entrants = append(entrants, race.Entrant{Kart: k, Controller: input.NewController(input.Player1Binding(), input.FixedRand(1))})
	}
	d, err := race.NewDirector(race.Options{Track: tr, Field: field, Laps: 3, NewID: func() string { return "test" }}, entrants...)
	if err != nil {
		t.Fatalf("NewDirector: %v", err)
	}
	return d
}

func TestViewportKeepsRingRound(t *testing.T) {
	v := NewViewport(0, 0, 80, 24, constant.WorldWidth, constant.WorldHeight)

	x, y, ok := v.ToCell(vmath.Vec2{X: 400, Y: 300})
	if !ok || x != 40 || y != 12 {
		t.Errorf("Expected world center at (40,12), got (%d,%d) ok=%v", x, y, ok)
	}

	// Equal world distances span twice the columns of rows
	r := 200.0
	xr, _, _ := v.ToCell(vmath.Vec2{X: 400 + r, Y: 300})
	_, yr, _ := v.ToCell(vmath.Vec2{X: 400, Y: 300 + r})
	dx, dy := xr-x, yr-y
	if math.Abs(float64(dx)-2*float64(dy)) > 1 {
		t.Errorf("Expected horizontal span twice vertical, got %d and %d", dx, dy)
	}

	if _, _, ok := v.ToCell(vmath.Vec2{X: -500, Y: 300}); ok {
		t.Error("Expected far-left point outside the play area")
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(2, 3, 60, 20, constant.WorldWidth, constant.WorldHeight)
	for y := v.Y; y < v.Y+v.Height; y += 5 {
		for x := v.X; x < v.X+v.Width; x += 7 {
			gx, gy, ok := v.ToCell(v.ToWorld(x, y))
			if !ok || gx != x || gy != y {
				t.Errorf("Cell (%d,%d) round-tripped to (%d,%d) ok=%v", x, y, gx, gy, ok)
			}
		}
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		heading float64
		want    rune
	}{
		{0, '→'},
		{vmath.HalfPi, '↓'},
		{vmath.Pi, '←'},
		{-vmath.HalfPi, '↑'},
		{vmath.Pi / 4, '↘'},
		{-3 * vmath.Pi / 4, '↖'},
		{vmath.TwoPi + 0.1, '→'},
	}
	for _, tt := range tests {
		if got := HeadingGlyph(tt.heading); got != tt.want {
			t.Errorf("Heading %v: expected %c, got %c", tt.heading, tt.want, got)
		}
	}
}

func TestHUDLine(t *testing.T) {
	v := race.KartView{Name: "Mario", Lap: 2, PlaceLabel: "1º", ItemLabel: "Turbo", Speed: 143}
	got := HUDLine(v, 3)
	for _, want := range []string{"Mario", "Lap 2/3", "1º", "Item: Turbo", "Speed: 143"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in %q", want, got)
		}
	}
	if strings.Contains(got, "[AI]") {
		t.Errorf("Unexpected AI marker in %q", got)
	}

	v.AI, v.Finished = true, true
	got = HUDLine(v, 3)
	if !strings.Contains(got, "Finished") || !strings.Contains(got, "[AI]") {
		t.Errorf("Expected finished AI line, got %q", got)
	}
}

func TestComposeDrawsRace(t *testing.T) {
	tr := track.Default()
	d := newTestDirector(t, tr)
	p := NewTerminalPresenter(tcell.NewSimulationScreen("UTF-8"), tr, Hints{Footer: "F2 start", Idle: "Press F2"})

	buf := p.Compose(d.Snapshot(), 100, 40)
	if !strings.Contains(buf.Row(0), "Mario") || !strings.Contains(buf.Row(1), "Luigi") {
		t.Errorf("Expected HUD rows for both karts, got %q / %q", buf.Row(0), buf.Row(1))
	}
	if !strings.Contains(buf.Row(39), "F2 start") {
		t.Errorf("Expected footer on last row, got %q", buf.Row(39))
	}
	if !strings.Contains(strings.Join(rows(buf), "\n"), "Press F2") {
		t.Error("Expected idle hint before the first start")
	}

	// Kart 1 sits on the line heading east
	x, y, ok := p.view.ToCell(d.Kart(0).Pos)
	if !ok {
		t.Fatal("Expected kart inside the play area")
	}
	if got := buf.Get(x, y).Rune; got != '→' {
		t.Errorf("Expected kart glyph at (%d,%d), got %q", x, y, got)
	}

	d.Start()
	buf = p.Compose(d.Snapshot(), 100, 40)
	mid := p.view.Y + p.view.Height/2
	if !strings.Contains(buf.Row(mid-1), " 3 ") {
		t.Errorf("Expected countdown label over the infield, got %q", buf.Row(mid-1))
	}
	if strings.Contains(strings.Join(rows(buf), "\n"), "Press F2") {
		t.Error("Expected idle hint gone after start")
	}
}

func TestComposeTooSmall(t *testing.T) {
	tr := track.Default()
	p := NewTerminalPresenter(tcell.NewSimulationScreen("UTF-8"), tr, Hints{})
	buf := p.Compose(newTestDirector(t, tr).Snapshot(), 20, 10)
	if !strings.Contains(buf.Row(5), "Enlarge") {
		t.Errorf("Expected resize hint, got %q", buf.Row(5))
	}
}

func TestPresentOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(90, 30)

	tr := track.Default()
	d := newTestDirector(t, tr)
	p := NewTerminalPresenter(screen, tr, Hints{Footer: "Esc quit"})
	p.Present(d.Snapshot())

	w, h := p.buf.Size()
	if w != 90 || h != 30 {
		t.Errorf("Expected buffer sized to the screen, got %dx%d", w, h)
	}
}

func TestRenderBufferBounds(t *testing.T) {
	b := NewRenderBuffer(4, 2)
	b.Set(-1, 0, 'x', tcell.StyleDefault)
	b.Set(4, 0, 'x', tcell.StyleDefault)
	if end := b.SetString(2, 1, "abc", tcell.StyleDefault); end != 5 {
		t.Errorf("Expected end column 5, got %d", end)
	}
	if got := b.Row(1); got != "  ab" {
		t.Errorf("Expected clipped row, got %q", got)
	}
	if b.Get(9, 9) != (Cell{}) {
		t.Error("Expected zero cell out of bounds")
	}
}

func rows(b *RenderBuffer) []string {
	_, h := b.Size()
	out := make([]string, h)
	for y := range out {
		out[y] = b.Row(y)
	}
	return out
}
