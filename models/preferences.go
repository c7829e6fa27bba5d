package models

import "time"

// Preferences holds a user's slot-suggestion settings.
type Preferences struct {
	ID               string    `bson:"id" json:"id"`
	UserID           string    `bson:"userId" json:"userId"`
	Timezone         string    `bson:"timezone" json:"timezone"`                 // IANA zone name, e.g. "Europe/Berlin"
	MaxSlots         int       `bson:"maxSlots" json:"maxSlots"`                 // suggestions per day
	IncrementMinutes int       `bson:"incrementMinutes" json:"incrementMinutes"` // provider slot granularity
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultPreferences returns the settings used for users who have never
// stored any.
func DefaultPreferences(userID string) Preferences {
	return Preferences{
		UserID:           userID,
		Timezone:         "UTC",
		MaxSlots:         4,
		IncrementMinutes: 30,
	}
}

// UpdatePreferencesRequest defines the payload for storing preferences.
type UpdatePreferencesRequest struct {
	Timezone         string `json:"timezone"`
	MaxSlots         int    `json:"maxSlots"`
	IncrementMinutes int    `json:"incrementMinutes"`
}
