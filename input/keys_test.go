package input

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-kart/engine"
)

func TestKeyValid(t *testing.T) {
	valid := []Key{"KeyW", "KeyZ", "Digit0", "Digit9", "F1", "F12", KeyArrowUp, KeyShiftLeft, "Comma"}
	for _, k := range valid {
		if !k.Valid() {
			t.Errorf("Expected %q valid", k)
		}
	}
	invalid := []Key{"", "Keyw", "KeyAB", "Digit", "F0", "F13", "F01", "Shift", "arrowup"}
	for _, k := range invalid {
		if k.Valid() {
			t.Errorf("Expected %q invalid", k)
		}
	}
}

func TestKeyConstructors(t *testing.T) {
	if got := Letter('w'); got != "KeyW" {
		t.Errorf("Expected KeyW, got %q", got)
	}
	if got := Digit('7'); got != "Digit7" {
		t.Errorf("Expected Digit7, got %q", got)
	}
	if got := Function(2); got != "F2" {
		t.Errorf("Expected F2, got %q", got)
	}
	named := NamedKeys()
	for i := 1; i < len(named); i++ {
		if named[i-1] >= named[i] {
			t.Fatalf("Expected sorted named keys, got %q before %q", named[i-1], named[i])
		}
	}
}

func TestBindingValidation(t *testing.T) {
	if err := ValidateBindings(Player1Binding(), Player2Binding()); err != nil {
		t.Errorf("Expected default bindings valid, got %v", err)
	}

	dup := Player1Binding()
	dup.Item = dup.Up
	if err := dup.Validate(); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("Expected duplicate key rejected, got %v", err)
	}

	unknown := Player1Binding()
	unknown.Left = "Joystick"
	if err := unknown.Validate(); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("Expected unknown key rejected, got %v", err)
	}

	shared := Player2Binding()
	shared.Item = KeyShiftLeft
	if err := ValidateBindings(Player1Binding(), shared); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("Expected shared key rejected, got %v", err)
	}
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Key
		ok   bool
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyArrowUp, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyEnter, true},
		{"function", tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone), "F2", true},
		{"lower letter", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "KeyW", true},
		{"upper letter", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), "KeyW", true},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), "Digit3", true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeySpace, true},
		{"non-latin", tcell.NewEventKey(tcell.KeyRune, 'ж', tcell.ModNone), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyFromEvent(tt.ev)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Expected (%q, %v), got (%q, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestHeldKeysWindow(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	h := NewHeldKeys(clock, 300*time.Millisecond)

	h.Press("KeyW")
	if !h.Pressed("KeyW") {
		t.Fatal("Expected key pressed right after its event")
	}

	clock.Advance(200 * time.Millisecond)
	if !h.Pressed("KeyW") {
		t.Error("Expected key held inside the window")
	}

	// Auto-repeat extends the hold
	h.Press("KeyW")
	clock.Advance(200 * time.Millisecond)
	if !h.Pressed("KeyW") {
		t.Error("Expected repeat to extend the hold")
	}

	clock.Advance(100 * time.Millisecond)
	if h.Pressed("KeyW") {
		t.Error("Expected key released once the window elapsed")
	}
}

func TestHeldKeysReleaseAndClear(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	h := NewHeldKeys(clock, time.Second)

	h.Press("KeyW")
	h.Press(KeyArrowUp)
	h.Release("KeyW")
	if h.Pressed("KeyW") || !h.Pressed(KeyArrowUp) {
		t.Error("Expected Release to drop only its key")
	}
	h.Clear()
	if h.Pressed(KeyArrowUp) {
		t.Error("Expected Clear to drop every key")
	}
}

func TestHandleEventShift(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	h := NewHeldKeys(clock, time.Second)

	if !h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone)) {
		t.Fatal("Expected mapped event")
	}
	if !h.Pressed("KeyW") || !h.Pressed(KeyShiftLeft) {
		t.Error("Expected uppercase letter to press the letter and ShiftLeft")
	}

	h.Clear()
	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	if h.Pressed(KeyShiftLeft) {
		t.Error("Expected lowercase letter without shift")
	}

	if h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'ж', tcell.ModNone)) {
		t.Error("Expected unmapped event rejected")
	}
}
