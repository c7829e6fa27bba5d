package suggestion

import (
	"context"
	"fmt"
	"time"

	preferencesRepo "slotwise/database/repository/preferences"
	"slotwise/models"
	"slotwise/services/availability"
	"slotwise/services/selection"
	"slotwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSuggestionService is the production implementation.
type DefaultSuggestionService struct {
	Prefs  preferencesRepo.PreferencesRepository
	Source availability.Source
}

// SuggestForDates loads the user's preferences (falling back to defaults for
// unknown users), fetches each day's open slots, and reduces each day with
// the selection core. Days the provider cannot serve are skipped with a
// warning; the call only fails when every requested day fails.
func (s *DefaultSuggestionService) SuggestForDates(ctx context.Context, userID string, dates []string) (*models.SuggestionResult, error) {
	logger := utils.GetLogger()

	prefs, err := s.Prefs.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("SuggestForDates: failed to load preferences",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if prefs == nil {
		defaults := models.DefaultPreferences(userID)
		prefs = &defaults
	}

	result := &models.SuggestionResult{
		RequestID: uuid.New().String(),
		UserID:    userID,
		Timezone:  prefs.Timezone,
		Dates:     dates,
	}

	var lastErr error
	failed := 0
	for _, date := range dates {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			logger.Warn("SuggestForDates: skipping malformed date",
				zap.String("userID", userID), zap.String("date", date))
			failed++
			lastErr = fmt.Errorf("malformed date %q", date)
			continue
		}

		daySlots, err := s.Source.GetOpenSlots(ctx, userID, date)
		if err != nil {
			logger.Warn("SuggestForDates: availability fetch failed",
				zap.String("userID", userID), zap.String("date", date), zap.Error(err))
			failed++
			lastErr = err
			continue
		}

		selected := selection.SelectSmartSlotsWithIncrement(daySlots, prefs.Timezone, prefs.MaxSlots, prefs.IncrementMinutes)
		result.Slots = append(result.Slots, selected...)
	}

	if len(dates) > 0 && failed == len(dates) {
		return nil, fmt.Errorf("no availability for any requested date: %w", lastErr)
	}
	return result, nil
}
