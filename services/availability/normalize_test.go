package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"slotwise/models"
)

func TestNormalizeSlotsKeepsWellFormedEntries(t *testing.T) {
	raw := []models.ProviderSlot{
		{StartTime: "2025-06-10T09:00:00Z", EndTime: "2025-06-10T09:30:00Z"},
		{StartTime: "2025-06-10T09:30:00Z", EndTime: "2025-06-10T10:00:00Z", Status: "available"},
	}

	slots := NormalizeSlots(raw, zap.NewNop())
	require.Len(t, slots, 2)
	require.True(t, slots[0].Start.Equal(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)))
	require.True(t, slots[0].End.Equal(time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)))
}

func TestNormalizeSlotsDropsMalformedEntries(t *testing.T) {
	raw := []models.ProviderSlot{
		{StartTime: "not-a-time", EndTime: "2025-06-10T09:30:00Z"},
		{StartTime: "2025-06-10T09:30:00Z", EndTime: "nope"},
		// start >= end
		{StartTime: "2025-06-10T11:00:00Z", EndTime: "2025-06-10T10:00:00Z"},
		{StartTime: "2025-06-10T12:00:00Z", EndTime: "2025-06-10T12:00:00Z"},
		// the one good entry
		{StartTime: "2025-06-10T10:00:00Z", EndTime: "2025-06-10T10:30:00Z"},
	}

	slots := NormalizeSlots(raw, zap.NewNop())
	require.Len(t, slots, 1)
	require.Equal(t, 10, slots[0].Start.Hour())
}

func TestNormalizeSlotsDropsNonAvailableEntries(t *testing.T) {
	raw := []models.ProviderSlot{
		{StartTime: "2025-06-10T09:00:00Z", EndTime: "2025-06-10T09:30:00Z", Status: "busy"},
		{StartTime: "2025-06-10T09:30:00Z", EndTime: "2025-06-10T10:00:00Z", Status: "available"},
	}

	slots := NormalizeSlots(raw, zap.NewNop())
	require.Len(t, slots, 1)
}

func TestNormalizeSlotsEmptyInput(t *testing.T) {
	require.Empty(t, NormalizeSlots(nil, zap.NewNop()))
}
