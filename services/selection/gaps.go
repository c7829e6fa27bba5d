package selection

import (
	"sort"
	"time"

	"slotwise/models"
)

// DefaultIncrementMinutes is the expected spacing between a provider's
// consecutive openings when the caller does not say otherwise.
const DefaultIncrementMinutes = 30

// gapThresholdFactor scales the increment into the discontinuity threshold.
// Hand-tuned; recalibrate here, not inline.
const gapThresholdFactor = 1.5

// DetectGaps finds discontinuities in a day's availability that indicate an
// existing meeting. Input order is not trusted; slots are sorted by start
// before walking consecutive pairs. A pair whose start-to-start distance
// exceeds gapThresholdFactor times the increment produces one gap, with no
// merging of adjacent gaps. Fewer than two slots yields no gaps. Duplicate
// starts produce a zero diff and are harmless here; deduplication is the
// selector's job.
func DetectGaps(slots []models.TimeSlot, incrementMinutes int) []models.Gap {
	if len(slots) < 2 {
		return nil
	}
	if incrementMinutes <= 0 {
		incrementMinutes = DefaultIncrementMinutes
	}

	sorted := make([]models.TimeSlot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	threshold := time.Duration(float64(incrementMinutes)*gapThresholdFactor) * time.Minute

	var gaps []models.Gap
	for i := 0; i < len(sorted)-1; i++ {
		diff := sorted[i+1].Start.Sub(sorted[i].Start)
		if diff > threshold {
			gaps = append(gaps, models.Gap{
				Start: sorted[i].Start,
				End:   sorted[i+1].Start,
			})
		}
	}
	return gaps
}
