package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slotwise/config"
	"slotwise/models"
	"slotwise/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedSource fronts another Source with a Redis cache. A provider's
// availability changes slowly compared to how often suggestions are
// requested, so a short TTL saves most upstream calls.
type CachedSource struct {
	Next  Source
	Cache *redis.Client
	TTL   time.Duration
}

// NewCachedSource wraps next with the shared cache client and the configured
// TTL.
func NewCachedSource(next Source) *CachedSource {
	return &CachedSource{
		Next:  next,
		Cache: utils.GetCacheClient(),
		TTL:   time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
	}
}

func cacheKey(userID, date string) string {
	return fmt.Sprintf("availability:%s:%s", userID, date)
}

// GetOpenSlots returns cached slots when present, otherwise fetches from the
// wrapped source and stores the result. Cache failures degrade to a direct
// fetch; they never fail the request.
func (cs *CachedSource) GetOpenSlots(ctx context.Context, userID, date string) ([]models.TimeSlot, error) {
	logger := utils.GetLogger()
	key := cacheKey(userID, date)

	if data, err := cs.Cache.Get(ctx, key).Bytes(); err == nil {
		var slots []models.TimeSlot
		if err := json.Unmarshal(data, &slots); err == nil {
			return slots, nil
		}
		logger.Warn("dropping undecodable availability cache entry", zap.String("key", key))
	}

	slots, err := cs.Next.GetOpenSlots(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(slots); err == nil {
		if err := cs.Cache.Set(ctx, key, data, cs.TTL).Err(); err != nil {
			logger.Warn("failed to cache availability", zap.String("key", key), zap.Error(err))
		}
	}
	return slots, nil
}
