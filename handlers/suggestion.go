package handlers

import (
	"net/http"
	"strings"
	"time"

	"slotwise/models"
	"slotwise/services/selection"
	"slotwise/services/suggestion"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SuggestionHandler exposes the suggestion pipeline and the raw selection
// core over HTTP.
type SuggestionHandler struct {
	Service suggestion.SuggestionService
}

// NewSuggestionHandler constructs a SuggestionHandler.
func NewSuggestionHandler(svc suggestion.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{Service: svc}
}

// SuggestHandler runs the full pipeline for a user. Dates come from the
// "dates" query parameter as a comma-separated list of "2006-01-02" values;
// absent, it defaults to today (UTC).
func (h *SuggestionHandler) SuggestHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("userId")

	var dates []string
	if raw := c.Query("dates"); raw != "" {
		dates = strings.Split(raw, ",")
	} else {
		dates = []string{time.Now().UTC().Format("2006-01-02")}
	}

	result, err := h.Service.SuggestForDates(c.Request.Context(), userID, dates)
	if err != nil {
		logger.Error("Failed to compute suggestions",
			zap.String("userID", userID), zap.Strings("dates", dates), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to compute suggestions", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// SelectSlotsHandler runs the selection core over a caller-supplied slot
// list. This is the pure entry point: no preferences, no provider calls.
func (h *SuggestionHandler) SelectSlotsHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.SelectSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid slot selection request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	tz := req.Timezone
	if tz == "" {
		// Fall back to the timezone the middleware inferred from the
		// client's IP, then to UTC.
		if inferred, ok := c.Get("clientTimezone"); ok {
			tz, _ = inferred.(string)
		}
		if tz == "" {
			tz = "UTC"
		}
	}
	selected := selection.SelectSmartSlots(req.Slots, tz, req.MaxSlots)
	c.JSON(http.StatusOK, models.SelectSlotsResponse{Slots: selected})
}
