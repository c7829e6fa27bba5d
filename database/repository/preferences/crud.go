// File: database/repository/preferences/crud.go
package preferencesRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotwise/models"
)

func (r *mongoPreferencesRepo) GetByUserID(ctx context.Context, userID string) (*models.Preferences, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prefs models.Preferences
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&prefs)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &prefs, nil
}

func (r *mongoPreferencesRepo) Upsert(ctx context.Context, prefs models.Preferences) (*models.Preferences, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if prefs.ID == "" {
		prefs.ID = uuid.New().String()
	}
	prefs.UpdatedAt = time.Now().UTC()

	filter := bson.M{"userId": prefs.UserID}
	update := bson.M{"$set": bson.M{
		"timezone":         prefs.Timezone,
		"maxSlots":         prefs.MaxSlots,
		"incrementMinutes": prefs.IncrementMinutes,
		"updatedAt":        prefs.UpdatedAt,
	}, "$setOnInsert": bson.M{
		"id":     prefs.ID,
		"userId": prefs.UserID,
	}}

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return nil, err
	}

	var stored models.Preferences
	if err := r.coll.FindOne(ctx, filter).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *mongoPreferencesRepo) DeleteByUserID(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListUserIDs returns the IDs of every user with stored preferences. Used by
// the cache prewarm worker to know whose availability to refresh.
func (r *mongoPreferencesRepo) ListUserIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"userId": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			UserID string `bson:"userId"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.UserID)
	}
	return ids, cur.Err()
}
