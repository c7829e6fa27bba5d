package preferences

import (
	"context"

	preferencesRepo "slotwise/database/repository/preferences"
	"slotwise/models"
)

// PreferencesService manages per-user suggestion settings.
type PreferencesService interface {
	Get(ctx context.Context, userID string) (*models.Preferences, error)
	Update(ctx context.Context, userID string, req models.UpdatePreferencesRequest) (*models.Preferences, error)
	Delete(ctx context.Context, userID string) error
}

// DefaultPreferencesService is the production implementation.
type DefaultPreferencesService struct {
	Repo preferencesRepo.PreferencesRepository
}
