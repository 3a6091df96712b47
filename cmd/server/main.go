package main

import (
	"alcyxob/exercise-tracker/internal/api"
	"alcyxob/exercise-tracker/internal/config"
	"alcyxob/exercise-tracker/internal/repository"
	"alcyxob/exercise-tracker/internal/repository/memory"
	"alcyxob/exercise-tracker/internal/repository/mongo"
	"alcyxob/exercise-tracker/internal/service"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title Exercise Tracker API
// @version 1.0
// @description Create users, record exercises and read filtered exercise logs.
// @BasePath /api
func main() {
	log.Println("Starting Exercise Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Printf("Configuration loaded (database driver: %s).", cfg.Database.Driver)

	// --- Repositories ---
	var (
		userRepo repository.UserRepository
		logRepo  repository.LogRepository
	)
	switch cfg.Database.Driver {
	case config.DriverMemory:
		log.Println("WARN: Using in-memory store; data is lost on restart.")
		db := memory.New()
		userRepo, logRepo = db.Users(), db.Logs()
	default:
		dbClient, err := mongo.ConnectDB(cfg.Database.URI, cfg.Database.Timeout)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Println("Database connection established.")

		userRepo = mongo.NewMongoUserRepository(appDB)
		logRepo = mongo.NewMongoLogRepository(appDB)
	}

	// --- Services ---
	userService := service.NewUserService(
		userRepo,
		logRepo,
		service.NewRandomIDGenerator(cfg.Registry.IDDigits),
		cfg.Registry.MaxIDAttempts,
	)
	logService := service.NewLogService(userRepo, logRepo, time.Now)

	// --- Gin Engine & Routes ---
	gin.SetMode(cfg.Server.Mode)
	router := gin.Default() // Includes Logger and Recovery middleware
	api.SetupRoutes(router, userService, logService)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// --- Graceful Shutdown ---
	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Your app is listening on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		// Return instead of log.Fatal so the deferred disconnect still runs.
		log.Printf("ERROR: ListenAndServe: %v", err)
		return
	}
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("ERROR: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
