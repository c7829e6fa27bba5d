package availability

import (
	"time"

	"slotwise/models"

	"go.uber.org/zap"
)

// NormalizeSlots converts the provider's wire slots into TimeSlots. Malformed
// entries (unparseable times, start not before end) and non-available entries
// are dropped with a warning rather than failing the whole response.
func NormalizeSlots(raw []models.ProviderSlot, logger *zap.Logger) []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, len(raw))
	for i, ps := range raw {
		if ps.Status != "" && ps.Status != "available" {
			continue
		}

		start, err := time.Parse(time.RFC3339, ps.StartTime)
		if err != nil {
			logger.Warn("skipping slot with bad start_time", zap.Int("index", i), zap.String("start", ps.StartTime))
			continue
		}
		end, err := time.Parse(time.RFC3339, ps.EndTime)
		if err != nil {
			logger.Warn("skipping slot with bad end_time", zap.Int("index", i), zap.String("end", ps.EndTime))
			continue
		}
		if !start.Before(end) {
			logger.Warn("skipping slot with start >= end", zap.Int("index", i), zap.Time("start", start), zap.Time("end", end))
			continue
		}

		slots = append(slots, models.TimeSlot{Start: start, End: end})
	}
	return slots
}
