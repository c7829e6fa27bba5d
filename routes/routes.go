package routes

import (
	"time"

	"slotwise/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSuggestionRoutes registers suggestion endpoints.
func RegisterSuggestionRoutes(r *gin.Engine, sh *handlers.SuggestionHandler) {
	api := r.Group("/api/suggestions")
	{
		api.GET("/:userId", sh.SuggestHandler)
		api.POST("/select", sh.SelectSlotsHandler)
	}
}

// RegisterPreferencesRoutes registers per-user preferences endpoints.
func RegisterPreferencesRoutes(r *gin.Engine, ph *handlers.PreferencesHandler) {
	api := r.Group("/api/preferences")
	{
		api.GET("/:userId", ph.GetPreferencesHandler)
		api.PUT("/:userId", ph.UpdatePreferencesHandler)
		api.DELETE("/:userId", ph.DeletePreferencesHandler)
	}
}

// RegisterHealthRoute registers the health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// SetupRoutes wires CORS and all route groups onto the engine.
func SetupRoutes(r *gin.Engine, sh *handlers.SuggestionHandler, ph *handlers.PreferencesHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSuggestionRoutes(r, sh)
	RegisterPreferencesRoutes(r, ph)
	RegisterHealthRoute(r)
}
