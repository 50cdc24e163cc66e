package input

import (
	"errors"
	"fmt"
)

// ErrInvalidBinding reports an unusable key binding
var ErrInvalidBinding = errors.New("invalid key binding")

// Binding maps one kart's controls to keys
type Binding struct {
	Up    Key
	Down  Key
	Left  Key
	Right Key
	Item  Key
}

// Player1Binding is WASD plus left shift
func Player1Binding() Binding {
	return Binding{Up: "KeyW", Down: "KeyS", Left: "KeyA", Right: "KeyD", Item: KeyShiftLeft}
}

// Player2Binding is the arrow cluster plus enter
func Player2Binding() Binding {
	return Binding{Up: KeyArrowUp, Down: KeyArrowDown, Left: KeyArrowLeft, Right: KeyArrowRight, Item: KeyEnter}
}

// Keys returns the bound keys in control order
func (b Binding) Keys() []Key {
	return []Key{b.Up, b.Down, b.Left, b.Right, b.Item}
}

// Validate checks every key is known and no key is bound twice
func (b Binding) Validate() error {
	seen := make(map[Key]bool, 5)
	for _, k := range b.Keys() {
		if !k.Valid() {
			return fmt.Errorf("%w: unknown key %q", ErrInvalidBinding, k)
		}
		if seen[k] {
			return fmt.Errorf("%w: key %q bound twice", ErrInvalidBinding, k)
		}
		seen[k] = true
	}
	return nil
}

// ValidateBindings checks each binding and rejects keys shared between players
func ValidateBindings(bindings ...Binding) error {
	owner := make(map[Key]int)
	for i, b := range bindings {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("player %d: %w", i+1, err)
		}
		for _, k := range b.Keys() {
			if prev, ok := owner[k]; ok {
				return fmt.Errorf("%w: key %q shared by players %d and %d", ErrInvalidBinding, k, prev+1, i+1)
			}
			owner[k] = i
		}
	}
	return nil
}
