package preferences

import (
	"context"
	"fmt"
	"time"

	"slotwise/models"
)

const (
	maxSlotsCeiling    = 10
	incrementFloorMins = 5
)

// Get returns the user's stored preferences, or the defaults when none exist.
func (s *DefaultPreferencesService) Get(ctx context.Context, userID string) (*models.Preferences, error) {
	prefs, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		defaults := models.DefaultPreferences(userID)
		return &defaults, nil
	}
	return prefs, nil
}

// Update validates and stores the user's preferences. Empty fields keep their
// defaults.
func (s *DefaultPreferencesService) Update(ctx context.Context, userID string, req models.UpdatePreferencesRequest) (*models.Preferences, error) {
	prefs := models.DefaultPreferences(userID)

	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return nil, fmt.Errorf("unknown timezone %q", req.Timezone)
		}
		prefs.Timezone = req.Timezone
	}
	if req.MaxSlots != 0 {
		if req.MaxSlots < 1 || req.MaxSlots > maxSlotsCeiling {
			return nil, fmt.Errorf("maxSlots must be between 1 and %d", maxSlotsCeiling)
		}
		prefs.MaxSlots = req.MaxSlots
	}
	if req.IncrementMinutes != 0 {
		if req.IncrementMinutes < incrementFloorMins {
			return nil, fmt.Errorf("incrementMinutes must be at least %d", incrementFloorMins)
		}
		prefs.IncrementMinutes = req.IncrementMinutes
	}

	return s.Repo.Upsert(ctx, prefs)
}

// Delete removes the user's stored preferences, reverting them to defaults.
func (s *DefaultPreferencesService) Delete(ctx context.Context, userID string) error {
	return s.Repo.DeleteByUserID(ctx, userID)
}
