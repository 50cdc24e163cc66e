package input

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Key identifies a physical key by its DOM KeyboardEvent.code name ("KeyW", "ArrowUp", "Enter")
type Key string

// KeySet is the queryable set of currently pressed keys
// Read once per tick by the simulation, never blocked on
type KeySet interface {
	Pressed(Key) bool
}

// MapKeySet is a plain set, used by tests and scripted input
type MapKeySet map[Key]bool

// Pressed implements KeySet
func (m MapKeySet) Pressed(k Key) bool {
	return m[k]
}

// Press adds keys to the set
func (m MapKeySet) Press(keys ...Key) {
	for _, k := range keys {
		m[k] = true
	}
}

// Release removes keys from the set
func (m MapKeySet) Release(keys ...Key) {
	for _, k := range keys {
		delete(m, k)
	}
}

// Named keys outside the letter and digit ranges
const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyEnter      Key = "Enter"
	KeySpace      Key = "Space"
	KeyTab        Key = "Tab"
	KeyEscape     Key = "Escape"
	KeyBackspace  Key = "Backspace"
	KeyShiftLeft  Key = "ShiftLeft"
	KeyShiftRight Key = "ShiftRight"
)

var namedKeys = map[Key]struct{}{
	KeyArrowUp: {}, KeyArrowDown: {}, KeyArrowLeft: {}, KeyArrowRight: {},
	KeyEnter: {}, KeySpace: {}, KeyTab: {}, KeyEscape: {}, KeyBackspace: {},
	KeyShiftLeft: {}, KeyShiftRight: {},
	"Comma": {}, "Period": {}, "Slash": {}, "Semicolon": {}, "Quote": {},
	"BracketLeft": {}, "BracketRight": {}, "Minus": {}, "Equal": {}, "Backslash": {},
	"Home": {}, "End": {}, "PageUp": {}, "PageDown": {}, "Insert": {}, "Delete": {},
}

// Letter returns the code of a latin letter key, case-insensitive
func Letter(r rune) Key {
	return Key("Key" + strings.ToUpper(string(r)))
}

// Digit returns the code of a top-row digit key
func Digit(r rune) Key {
	return Key("Digit" + string(r))
}

// Function returns the code of function key n (1-12)
func Function(n int) Key {
	return Key("F" + strconv.Itoa(n))
}

// Valid reports whether k is a key code this package understands
func (k Key) Valid() bool {
	s := string(k)
	if _, ok := namedKeys[k]; ok {
		return true
	}
	switch {
	case len(s) == 4 && strings.HasPrefix(s, "Key"):
		return s[3] >= 'A' && s[3] <= 'Z'
	case len(s) == 6 && strings.HasPrefix(s, "Digit"):
		return s[5] >= '0' && s[5] <= '9'
	case len(s) > 1 && s[0] == 'F' && s[1] != '0':
		n, err := strconv.Atoi(s[1:])
		return err == nil && n >= 1 && n <= 12
	}
	return false
}

// NamedKeys lists the non-letter, non-digit, non-function codes in sorted order
func NamedKeys() []Key {
	return slices.Sorted(maps.Keys(namedKeys))
}
