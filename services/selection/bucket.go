package selection

import (
	"time"

	"slotwise/models"
)

// bucketOrder is the enumeration order consulted when majority tallies tie.
// Keep this an explicit ordered list; tie resolution depends on it.
var bucketOrder = []models.TimeBucket{
	models.BucketMorning,
	models.BucketAfternoon,
	models.BucketEvening,
}

// BucketFor classifies a slot by its wall-clock start hour in loc.
// Morning is [6,12), afternoon [12,17). Everything else falls into evening,
// including the 21:00-06:00 range: providers deal in daytime business
// availability, so there is no separate night bucket. True overnight slots
// would land in evening too, which downstream grouping currently relies on.
func BucketFor(slot models.TimeSlot, loc *time.Location) models.TimeBucket {
	hour := slot.Start.In(loc).Hour()
	switch {
	case hour >= 6 && hour < 12:
		return models.BucketMorning
	case hour >= 12 && hour < 17:
		return models.BucketAfternoon
	default:
		return models.BucketEvening
	}
}
