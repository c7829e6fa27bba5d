package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"slotwise/models"
)

func gapBetween(t *testing.T, startHM, endHM string) models.Gap {
	t.Helper()
	s, err := time.Parse("15:04", startHM)
	require.NoError(t, err)
	e, err := time.Parse("15:04", endHM)
	require.NoError(t, err)
	return models.Gap{
		Start: time.Date(2025, 6, 10, s.Hour(), s.Minute(), 0, 0, time.UTC),
		End:   time.Date(2025, 6, 10, e.Hour(), e.Minute(), 0, 0, time.UTC),
	}
}

func TestProximityScoreNoGapsIsNeutral(t *testing.T) {
	slots := daySlots(t, "09:00", "12:00", "18:00")
	for _, slot := range slots {
		require.Equal(t, 0.5, ProximityScore(slot, nil))
	}
}

func TestProximityScoreCalibrationPoints(t *testing.T) {
	gaps := []models.Gap{gapBetween(t, "10:00", "14:00")}

	// Exactly at either gap boundary.
	require.Equal(t, 1.0, ProximityScore(daySlots(t, "10:00")[0], gaps))
	require.Equal(t, 1.0, ProximityScore(daySlots(t, "14:00")[0], gaps))

	// 30 minutes from the nearer edge.
	require.InDelta(t, 0.5, ProximityScore(daySlots(t, "09:30")[0], gaps), 1e-9)
	require.InDelta(t, 0.5, ProximityScore(daySlots(t, "14:30")[0], gaps), 1e-9)

	// 60 minutes away.
	require.InDelta(t, 1.0/3.0, ProximityScore(daySlots(t, "09:00")[0], gaps), 1e-9)
	require.InDelta(t, 1.0/3.0, ProximityScore(daySlots(t, "15:00")[0], gaps), 1e-9)
}

func TestProximityScoreDecaysMonotonically(t *testing.T) {
	gaps := []models.Gap{gapBetween(t, "10:00", "14:00")}

	prev := 2.0
	for _, hm := range []string{"14:00", "14:30", "15:00", "15:30", "16:00"} {
		score := ProximityScore(daySlots(t, hm)[0], gaps)
		require.Less(t, score, prev, "score at %s should decay", hm)
		require.Greater(t, score, 0.0)
		prev = score
	}
}

func TestProximityScoreNearestGapWins(t *testing.T) {
	gaps := []models.Gap{
		gapBetween(t, "09:00", "10:00"),
		gapBetween(t, "15:00", "16:00"),
	}

	// 10:30 is 30 minutes from the first gap's end and hours from the
	// second; only the closer one counts.
	require.InDelta(t, 0.5, ProximityScore(daySlots(t, "10:30")[0], gaps), 1e-9)
}

func TestProximityScoreIsDirectionSymmetric(t *testing.T) {
	gaps := []models.Gap{gapBetween(t, "10:00", "14:00")}

	before := ProximityScore(daySlots(t, "09:15")[0], gaps)
	after := ProximityScore(daySlots(t, "14:45")[0], gaps)
	require.InDelta(t, before, after, 1e-9)
}
