package selection

import (
	"sort"
	"time"

	"slotwise/models"
)

// DefaultMaxSlots is the number of suggestions offered when the caller does
// not say otherwise.
const DefaultMaxSlots = 4

// SelectSmartSlots reduces a day's raw availability to at most maxSlots
// suggestions. Slots adjacent to inferred commitments are preferred
// (batching), and when the day has more than one period represented, one slot
// from outside the dominant period is guaranteed (diversity). The result is
// deduplicated by start instant, never longer than maxSlots, and always in
// chronological order.
//
// tz is an IANA zone name; an unknown zone falls back to UTC rather than
// failing, since the core degrades instead of erroring.
func SelectSmartSlots(slots []models.TimeSlot, tz string, maxSlots int) []models.TimeSlot {
	return SelectSmartSlotsWithIncrement(slots, tz, maxSlots, DefaultIncrementMinutes)
}

// SelectSmartSlotsWithIncrement is SelectSmartSlots with an explicit provider
// slot granularity, for callers whose providers do not deal in 30-minute
// openings.
func SelectSmartSlotsWithIncrement(slots []models.TimeSlot, tz string, maxSlots, incrementMinutes int) []models.TimeSlot {
	if maxSlots <= 0 {
		maxSlots = DefaultMaxSlots
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}

	deduped := dedupByStart(slots)
	if len(deduped) <= maxSlots {
		sortChronological(deduped)
		return deduped
	}

	// Score against inferred commitments. Sorting chronologically first and
	// then stably by score makes tie order deterministic (earlier slot wins).
	gaps := DetectGaps(deduped, incrementMinutes)
	sortChronological(deduped)
	scored := make([]models.ScoredSlot, len(deduped))
	for i, slot := range deduped {
		scored[i] = models.ScoredSlot{
			Slot:   slot,
			Score:  ProximityScore(slot, gaps),
			Bucket: BucketFor(slot, loc),
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	majority := majorityBucket(scored)

	// The highest-scoring slot outside the majority bucket, if any bucket
	// other than the majority is represented at all.
	var diversity *models.ScoredSlot
	for i := range scored {
		if scored[i].Bucket != majority {
			diversity = &scored[i]
			break
		}
	}

	var selected []models.TimeSlot
	if diversity != nil {
		selected = append(selected, diversity.Slot)
	}
	for _, ss := range scored {
		if len(selected) >= maxSlots {
			break
		}
		if diversity != nil && ss.Slot.Start.Equal(diversity.Slot.Start) {
			continue
		}
		selected = append(selected, ss.Slot)
	}

	sortChronological(selected)
	return selected
}

// majorityBucket tallies buckets over the top half of the score-sorted list
// (ceiling division) and returns the most common one. Ties resolve by
// bucketOrder, first max wins.
func majorityBucket(scored []models.ScoredSlot) models.TimeBucket {
	half := (len(scored) + 1) / 2
	tally := make(map[models.TimeBucket]int)
	for _, ss := range scored[:half] {
		tally[ss.Bucket]++
	}

	majority := bucketOrder[0]
	best := -1
	for _, bucket := range bucketOrder {
		if tally[bucket] > best {
			best = tally[bucket]
			majority = bucket
		}
	}
	return majority
}

// dedupByStart drops slots sharing a start instant with an earlier one. The
// provider may return the same opening with several candidate durations;
// those variants are interchangeable for selection.
func dedupByStart(slots []models.TimeSlot) []models.TimeSlot {
	seen := make(map[int64]bool, len(slots))
	deduped := make([]models.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		key := slot.Start.UnixNano()
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, slot)
	}
	return deduped
}

func sortChronological(slots []models.TimeSlot) {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})
}
