package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TheTestGit/LinkedInPro/docs"
	"github.com/TheTestGit/LinkedInPro/internal/database"
	"github.com/TheTestGit/LinkedInPro/internal/router"
	"github.com/TheTestGit/LinkedInPro/internal/seed"
	"github.com/TheTestGit/LinkedInPro/internal/services"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
	"github.com/TheTestGit/LinkedInPro/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title LinkedIn Automation Dashboard API
// @version 1.0
// @description Backend for the LinkedIn automation SaaS dashboard: campaign state, daily analytics and the activity feed.

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Set Swagger base path dynamically
	basePath := getEnv("BASE_PATH", "/api")
	docs.SwaggerInfo.BasePath = basePath

	// Configure logging
	configureLogging()

	// Initialize Sentry
	utils.InitSentry()

	// Select the storage backend
	store, err := buildStorage()
	if err != nil {
		logrus.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize RabbitMQ event publishing
	eventsService, err := services.NewEventsService()
	if err != nil {
		logrus.Warnf("Failed to initialize RabbitMQ: %v", err)
	} else {
		logrus.Info("RabbitMQ events service initialized")
		defer eventsService.Close()
	}

	// All requests act as the configured dashboard account
	userID := uint(getEnvAsInt("DEFAULT_USER_ID", 1))

	// Initialize router
	r := router.SetupRouter(store, eventsService, userID)

	// Configure HTTP server
	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", port)
		logrus.Infof("API Health Check: http://localhost:%s/api/health", port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

// buildStorage picks the backend from STORAGE_BACKEND: "postgres" connects
// and migrates the database, anything else runs in-memory with the demo
// dataset loaded.
func buildStorage() (storage.Storage, error) {
	backend := getEnv("STORAGE_BACKEND", "memory")
	if backend == "postgres" {
		db, err := database.InitDB()
		if err != nil {
			return nil, err
		}
		logrus.Info("Using postgres storage backend")
		return storage.NewGormStorage(db), nil
	}

	store := storage.NewMemoryStorage()
	if err := seed.Run(store); err != nil {
		return nil, fmt.Errorf("failed to seed in-memory storage: %w", err)
	}
	logrus.Info("Using in-memory storage backend with demo data")
	return store, nil
}

func configureLogging() {
	logLevel := getEnv("LOG_LEVEL", "info")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, fmt.Sprintf("%d", defaultValue))
	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}
	return value
}
