package kart

// Intent is one tick of control input for a kart
type Intent struct {
	Accelerate bool
	Brake      bool
	Left       bool
	Right      bool
	UseItem    bool
}
