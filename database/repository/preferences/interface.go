// File: database/repository/preferences/interface.go
package preferencesRepo

import (
	"context"

	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PreferencesRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Preferences, error)
	Upsert(ctx context.Context, prefs models.Preferences) (*models.Preferences, error)
	DeleteByUserID(ctx context.Context, userID string) error
	ListUserIDs(ctx context.Context) ([]string, error)
	EnsureIndexes() error
}

type mongoPreferencesRepo struct {
	coll *mongo.Collection
}

// NewMongoPreferencesRepo constructs a new MongoDB PreferencesRepository.
func NewMongoPreferencesRepo() PreferencesRepository {
	db := database.MongoClient.Database("slotwise")
	return &mongoPreferencesRepo{
		coll: db.Collection("preferences"),
	}
}
