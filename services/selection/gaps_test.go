package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"slotwise/models"
)

// daySlots builds 30-minute slots starting at each "15:04" time on a fixed
// UTC day.
func daySlots(t *testing.T, starts ...string) []models.TimeSlot {
	t.Helper()
	slots := make([]models.TimeSlot, 0, len(starts))
	for _, hm := range starts {
		parsed, err := time.Parse("15:04", hm)
		require.NoError(t, err)
		start := time.Date(2025, 6, 10, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
		slots = append(slots, models.TimeSlot{Start: start, End: start.Add(30 * time.Minute)})
	}
	return slots
}

func TestDetectGapsFewerThanTwoSlots(t *testing.T) {
	require.Empty(t, DetectGaps(nil, 0))
	require.Empty(t, DetectGaps(daySlots(t), 0))
	require.Empty(t, DetectGaps(daySlots(t, "09:00"), 0))
}

func TestDetectGapsContiguousDay(t *testing.T) {
	slots := daySlots(t, "09:00", "09:30", "10:00", "10:30")
	require.Empty(t, DetectGaps(slots, 0))
}

func TestDetectGapsSingleDiscontinuity(t *testing.T) {
	slots := daySlots(t, "09:00", "09:30", "10:00", "14:00", "14:30")

	gaps := DetectGaps(slots, 0)
	require.Len(t, gaps, 1)
	require.True(t, gaps[0].Start.Equal(slots[2].Start), "gap starts at last slot before the break")
	require.True(t, gaps[0].End.Equal(slots[3].Start), "gap ends at first slot after the break")
}

func TestDetectGapsInputOrderIsNotTrusted(t *testing.T) {
	slots := daySlots(t, "14:30", "09:00", "14:00", "09:30", "10:00")

	gaps := DetectGaps(slots, 0)
	require.Len(t, gaps, 1)
	require.Equal(t, 10, gaps[0].Start.Hour())
	require.Equal(t, 14, gaps[0].End.Hour())
}

func TestDetectGapsDuplicateStartsAreHarmless(t *testing.T) {
	slots := daySlots(t, "09:00", "09:00", "09:30", "14:00")

	gaps := DetectGaps(slots, 0)
	require.Len(t, gaps, 1)
	require.Equal(t, 9, gaps[0].Start.Hour())
	require.Equal(t, 30, gaps[0].Start.Minute())
}

func TestDetectGapsRespectsIncrement(t *testing.T) {
	// 80 minutes apart: a gap at the default 30-minute increment
	// (threshold 45m) but not at a 60-minute increment (threshold 90m).
	slots := daySlots(t, "09:00", "10:20")

	require.Len(t, DetectGaps(slots, 30), 1)
	require.Empty(t, DetectGaps(slots, 60))
}

func TestDetectGapsExactThresholdIsNotAGap(t *testing.T) {
	// 45 minutes apart equals 1.5x the 30-minute increment; only strictly
	// greater distances count.
	slots := daySlots(t, "09:00", "09:45")
	require.Empty(t, DetectGaps(slots, 30))
}

func TestDetectGapsMultipleGapsInOrder(t *testing.T) {
	slots := daySlots(t, "09:00", "11:00", "11:30", "15:00")

	gaps := DetectGaps(slots, 0)
	require.Len(t, gaps, 2)
	require.True(t, gaps[0].End.Before(gaps[1].Start) || gaps[0].End.Equal(gaps[1].Start))
	require.Equal(t, 9, gaps[0].Start.Hour())
	require.Equal(t, 11, gaps[0].End.Hour())
	require.Equal(t, 11, gaps[1].Start.Hour())
	require.Equal(t, 15, gaps[1].End.Hour())
}
