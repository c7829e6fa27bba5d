// File: slotwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotwise/config"
	"slotwise/cron"
	"slotwise/database"
	preferencesRepoPkg "slotwise/database/repository/preferences"
	"slotwise/handlers"
	"slotwise/middleware"
	"slotwise/routes"
	"slotwise/services/availability"
	preferencesSvc "slotwise/services/preferences"
	"slotwise/services/suggestion"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.TimezoneMiddleware())

	// repositories.
	prefsRepo := preferencesRepoPkg.NewMongoPreferencesRepo()
	if err := prefsRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure preferences indexes: %v", err)
	}

	// services.
	source := availability.NewCachedSource(availability.NewProviderClient())
	prefsService := &preferencesSvc.DefaultPreferencesService{
		Repo: prefsRepo,
	}
	suggestionService := &suggestion.DefaultSuggestionService{
		Prefs:  prefsRepo,
		Source: source,
	}

	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)
	preferencesHandler := handlers.NewPreferencesHandler(prefsService)

	// Register routes with the assembled handlers.
	routes.SetupRoutes(router, suggestionHandler, preferencesHandler)

	// Background workers: cache prewarm consumer plus an hourly scheduler.
	cron.InitPrewarmWorker(source)
	go func() {
		cron.SchedulePrewarms(prefsRepo)
		for range time.Tick(time.Hour) {
			cron.SchedulePrewarms(prefsRepo)
		}
	}()

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
