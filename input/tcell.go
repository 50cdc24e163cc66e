package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyUp:        KeyArrowUp,
	tcell.KeyDown:      KeyArrowDown,
	tcell.KeyLeft:      KeyArrowLeft,
	tcell.KeyRight:     KeyArrowRight,
	tcell.KeyEnter:     KeyEnter,
	tcell.KeyTab:       KeyTab,
	tcell.KeyEscape:    KeyEscape,
	tcell.KeyBackspace: KeyBackspace,
	tcell.KeyHome:      "Home",
	tcell.KeyEnd:       "End",
	tcell.KeyPgUp:      "PageUp",
	tcell.KeyPgDn:      "PageDown",
	tcell.KeyInsert:    "Insert",
	tcell.KeyDelete:    "Delete",
	tcell.KeyF1:        "F1",
	tcell.KeyF2:        "F2",
	tcell.KeyF3:        "F3",
	tcell.KeyF4:        "F4",
	tcell.KeyF5:        "F5",
	tcell.KeyF6:        "F6",
	tcell.KeyF7:        "F7",
	tcell.KeyF8:        "F8",
	tcell.KeyF9:        "F9",
	tcell.KeyF10:       "F10",
	tcell.KeyF11:       "F11",
	tcell.KeyF12:       "F12",
}

var punctuation = map[rune]Key{
	' ':  KeySpace,
	',':  "Comma",
	'.':  "Period",
	'/':  "Slash",
	';':  "Semicolon",
	'\'': "Quote",
	'[':  "BracketLeft",
	']':  "BracketRight",
	'-':  "Minus",
	'=':  "Equal",
	'\\': "Backslash",
}

// KeyFromEvent maps a terminal key event to a key code
// Shifted letters map to the same code as unshifted ones
func KeyFromEvent(ev *tcell.EventKey) (Key, bool) {
	if ev.Key() != tcell.KeyRune {
		k, ok := tcellKeys[ev.Key()]
		return k, ok
	}

	r := ev.Rune()
	switch {
	case r < unicode.MaxASCII && unicode.IsLetter(r):
		return Letter(r), true
	case r >= '0' && r <= '9':
		return Digit(r), true
	}
	k, ok := punctuation[r]
	return k, ok
}

// shifted reports a shift modifier, either flagged or implied by an uppercase letter
// Terminals never report a bare shift press, only shifted keys
func shifted(ev *tcell.EventKey) bool {
	if ev.Modifiers()&tcell.ModShift != 0 {
		return true
	}
	return ev.Key() == tcell.KeyRune && unicode.IsUpper(ev.Rune())
}

// HandleEvent presses the key behind ev, returns false for unmapped keys
// A shifted key also presses ShiftLeft so shift bindings stay reachable
func (h *HeldKeys) HandleEvent(ev *tcell.EventKey) bool {
	k, ok := KeyFromEvent(ev)
	if ok {
		h.Press(k)
		if shifted(ev) {
			h.Press(KeyShiftLeft)
		}
	}
	return ok
}
