package track

// Item is the kind of pickup a kart can hold
type Item uint8

const (
	ItemNone Item = iota
	ItemTurbo
)

// String returns the HUD name of the item
func (i Item) String() string {
	switch i {
	case ItemTurbo:
		return "Turbo"
	default:
		return ""
	}
}
