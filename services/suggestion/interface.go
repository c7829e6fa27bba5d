package suggestion

import (
	"context"

	"slotwise/models"
)

// SuggestionService produces meeting-time suggestions for a user.
type SuggestionService interface {
	// SuggestForDates runs the full pipeline for each date ("2006-01-02"):
	// stored preferences, provider availability, smart selection.
	SuggestForDates(ctx context.Context, userID string, dates []string) (*models.SuggestionResult, error)
}
