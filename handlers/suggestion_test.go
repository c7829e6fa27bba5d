package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"slotwise/models"
)

func selectRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSuggestionHandler(nil) // SelectSlotsHandler does not touch the service
	r.POST("/api/suggestions/select", h.SelectSlotsHandler)
	return r
}

func postSelect(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/suggestions/select", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSelectSlotsHandlerReducesSlots(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	var slots []models.TimeSlot
	for _, mins := range []int{540, 570, 600, 840, 870, 900, 930, 960} { // 09:00..16:00 with a midday break
		start := day.Add(time.Duration(mins) * time.Minute)
		slots = append(slots, models.TimeSlot{Start: start, End: start.Add(30 * time.Minute)})
	}

	w := postSelect(t, selectRouter(), models.SelectSlotsRequest{
		Slots:    slots,
		Timezone: "UTC",
		MaxSlots: 4,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SelectSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 4)
	for i := 0; i < len(resp.Slots)-1; i++ {
		require.True(t, resp.Slots[i].Start.Before(resp.Slots[i+1].Start))
	}
}

func TestSelectSlotsHandlerRejectsBadBody(t *testing.T) {
	r := selectRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/suggestions/select", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectSlotsHandlerDefaultsTimezoneAndMax(t *testing.T) {
	day := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	slots := []models.TimeSlot{
		{Start: day, End: day.Add(30 * time.Minute)},
		{Start: day.Add(30 * time.Minute), End: day.Add(60 * time.Minute)},
	}

	w := postSelect(t, selectRouter(), models.SelectSlotsRequest{Slots: slots})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SelectSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 2)
}
