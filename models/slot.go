package models

import "time"

// TimeSlot represents a single bookable opening returned by the scheduling
// provider. Start and End are absolute instants; all timezone handling happens
// at classification time, not here. Two slots with the same Start are treated
// as duplicates regardless of End, since the provider may return the same
// opening with several candidate durations.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Gap is an inferred existing commitment, derived from a discontinuity between
// two chronologically adjacent available slots. Start is the instant of the
// last free slot before the gap, End the instant of the first free slot after
// it. Gaps are recomputed on every selection call and never persisted.
type Gap struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TimeBucket is a coarse period-of-day label for a slot's local start hour.
type TimeBucket string

const (
	BucketMorning   TimeBucket = "morning"   // [06:00, 12:00)
	BucketAfternoon TimeBucket = "afternoon" // [12:00, 17:00)
	BucketEvening   TimeBucket = "evening"   // everything else
)

// ScoredSlot pairs a slot with its proximity score and bucket. Ephemeral;
// produced and consumed within a single selection call.
type ScoredSlot struct {
	Slot   TimeSlot
	Score  float64
	Bucket TimeBucket
}
