package selection

import (
	"math"

	"slotwise/models"
)

const (
	// neutralScore is returned when there are no gaps to batch against.
	neutralScore = 0.5
	// scoreDecayMinutes controls how fast desirability falls off with
	// distance from a gap edge: 1.0 at the edge, 0.5 at 30 minutes out.
	scoreDecayMinutes = 30.0
)

// ProximityScore rates how desirable a slot is given the day's inferred
// commitments. Slots adjacent to a gap score highest, so suggestions cluster
// next to already-busy periods instead of fragmenting free time. Only the
// nearest gap counts; distance is measured from the slot's start to the
// closer of the gap's two boundaries and is direction-symmetric. The result
// is always in (0, 1].
func ProximityScore(slot models.TimeSlot, gaps []models.Gap) float64 {
	if len(gaps) == 0 {
		return neutralScore
	}

	minDistance := math.Inf(1)
	for _, gap := range gaps {
		toStart := math.Abs(slot.Start.Sub(gap.Start).Minutes())
		toEnd := math.Abs(slot.Start.Sub(gap.End).Minutes())
		if toStart < minDistance {
			minDistance = toStart
		}
		if toEnd < minDistance {
			minDistance = toEnd
		}
	}

	return 1.0 / (1.0 + minDistance/scoreDecayMinutes)
}
