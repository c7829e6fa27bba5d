package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"slotwise/config"
	"slotwise/models"
	"slotwise/utils"

	"go.uber.org/zap"
)

// ProviderClient fetches open slots from the scheduling provider's REST API.
// One request per user and date; no retries.
type ProviderClient struct {
	BaseURL  string
	APIToken string
	HTTP     *http.Client
}

// NewProviderClient constructs a client from AppConfig.
func NewProviderClient() *ProviderClient {
	return &ProviderClient{
		BaseURL:  config.AppConfig.ProviderBaseURL,
		APIToken: config.AppConfig.ProviderAPIToken,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

// GetOpenSlots queries the provider's availability endpoint and normalizes
// the response.
func (pc *ProviderClient) GetOpenSlots(ctx context.Context, userID, date string) ([]models.TimeSlot, error) {
	logger := utils.GetLogger()

	endpoint := fmt.Sprintf("%s/availability?user=%s&date=%s",
		pc.BaseURL, url.QueryEscape(userID), url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build availability request: %w", err)
	}
	if pc.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+pc.APIToken)
	}

	resp, err := pc.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("availability request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("Provider availability API returned non-OK status",
			zap.String("userID", userID), zap.String("date", date), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var payload models.ProviderAvailability
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode availability response: %w", err)
	}

	return NormalizeSlots(payload.Slots, logger), nil
}
