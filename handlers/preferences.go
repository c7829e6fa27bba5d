package handlers

import (
	"net/http"

	"slotwise/models"
	"slotwise/services/preferences"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// PreferencesHandler exposes per-user suggestion settings.
type PreferencesHandler struct {
	Service preferences.PreferencesService
}

// NewPreferencesHandler constructs a PreferencesHandler.
func NewPreferencesHandler(svc preferences.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{Service: svc}
}

// GetPreferencesHandler returns stored preferences, or defaults for unknown
// users.
func (h *PreferencesHandler) GetPreferencesHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("userId")

	prefs, err := h.Service.Get(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get preferences", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferencesHandler validates and stores preferences.
func (h *PreferencesHandler) UpdatePreferencesHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("userId")

	var req models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid preferences update request", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	prefs, err := h.Service.Update(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to update preferences", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// DeletePreferencesHandler removes stored preferences.
func (h *PreferencesHandler) DeletePreferencesHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("userId")

	if err := h.Service.Delete(c.Request.Context(), userID); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "No preferences stored for user"})
			return
		}
		logger.Error("Failed to delete preferences", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete preferences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preferences deleted"})
}
