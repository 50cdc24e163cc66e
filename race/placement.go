package race

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/vi-kart/kart"
	"github.com/lixenwraith/vi-kart/track"
)

// Rank orders kart indices from first to last place
// Finished karts lead in finishing order; the rest rank by lap, then by progress around the ring
// Equal standings keep grid order
func Rank(tr *track.Track, karts []*kart.Kart, finishOrder []int) []int {
	finishPos := make(map[int]int, len(finishOrder))
	for pos, idx := range finishOrder {
		finishPos[idx] = pos
	}

	order := make([]int, len(karts))
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		fa, aDone := finishPos[a]
		fb, bDone := finishPos[b]
		switch {
		case aDone && bDone:
			return fa - fb
		case aDone:
			return -1
		case bDone:
			return 1
		}

		ka, kb := karts[a], karts[b]
		if ka.Lap != kb.Lap {
			return kb.Lap - ka.Lap
		}
		pa, pb := tr.Progress(ka.Theta), tr.Progress(kb.Theta)
		switch {
		case pa > pb:
			return -1
		case pa < pb:
			return 1
		}
		return 0
	})
	return order
}

// PlaceLabel formats a 1-based place as an ordinal ("1º")
func PlaceLabel(place int) string {
	return fmt.Sprintf("%dº", place)
}
