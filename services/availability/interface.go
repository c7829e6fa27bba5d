package availability

import (
	"context"

	"slotwise/models"
)

// Source fetches a user's open availability for a given date ("2006-01-02")
// and returns it normalized to absolute-instant slots.
type Source interface {
	GetOpenSlots(ctx context.Context, userID, date string) ([]models.TimeSlot, error)
}
