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

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/lumina-app/lumina-engine/internal/adapters/gemini"
	adapterHTTP "github.com/lumina-app/lumina-engine/internal/adapters/handler/http"
	"github.com/lumina-app/lumina-engine/internal/adapters/repository"
	"github.com/lumina-app/lumina-engine/internal/core/domain"
	"github.com/lumina-app/lumina-engine/internal/core/services"
	"github.com/lumina-app/lumina-engine/internal/core/workers"
)

// @title        Lumina Engine API
// @version      1.0
// @description  Record store, analytics and AI report cache for the Lumina journaling app.
// @BasePath     /api/v1
func main() {
	startTime := time.Now()

	serverPort := os.Getenv("PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	var (
		store domain.BlobStore
		db    *sqlx.DB
		rdb   *redis.Client
	)

	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "postgres"
	}

	switch driver {
	case "postgres":
		dbUser := os.Getenv("DB_USER")
		dbPass := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")

		dbHost := os.Getenv("DB_HOST")
		if dbHost == "" {
			dbHost = "localhost"
		}
		dbPort := os.Getenv("DB_PORT")
		if dbPort == "" {
			dbPort = "5432"
		}

		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			dbUser, dbPass, dbHost, dbPort, dbName)

		log.Println("Connecting to database...")

		var err error
		db, err = sqlx.Connect("pgx", dsn)
		if err != nil {
			log.Fatalf("Critical: Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		store, err = repository.NewPostgresBlobStore(db)
		if err != nil {
			log.Fatalf("Critical: Failed to prepare blob storage: %v", err)
		}

		log.Println("Database connected successfully.")

	case "redis":
		redisHost := os.Getenv("REDIS_HOST")
		if redisHost == "" {
			redisHost = "localhost"
		}
		redisPort := os.Getenv("REDIS_PORT")
		if redisPort == "" {
			redisPort = "6379"
		}

		var err error
		rdb, err = repository.NewRedisClient(redisHost, redisPort, os.Getenv("REDIS_PASSWORD"), 0)
		if err != nil {
			log.Fatalf("Critical: Failed to connect to redis: %v", err)
		}
		defer rdb.Close()

		store = repository.NewRedisBlobStore(rdb)
		log.Println("Redis connected successfully.")

	case "memory":
		store = repository.NewMemoryBlobStore()
		log.Println("Using in-memory storage. Data will not survive a restart.")

	default:
		log.Fatalf("Critical: Unknown STORAGE_DRIVER %q (expected postgres, redis or memory)", driver)
	}

	// Redis can also back the rate limiter when Postgres holds the data.
	if rdb == nil && os.Getenv("REDIS_HOST") != "" && driver != "redis" {
		redisPort := os.Getenv("REDIS_PORT")
		if redisPort == "" {
			redisPort = "6379"
		}
		client, err := repository.NewRedisClient(os.Getenv("REDIS_HOST"), redisPort, os.Getenv("REDIS_PASSWORD"), 0)
		if err != nil {
			log.Printf("Redis unavailable, rate limiting disabled: %v", err)
		} else {
			rdb = client
			defer rdb.Close()
		}
	}

	var generator services.TextGenerator
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set. AI endpoints will serve fallback content only.")
	} else {
		generator = gemini.NewClient(apiKey)
	}

	journalService := services.NewJournalService(store)
	taskService := services.NewTaskService(store)
	medicationService := services.NewMedicationService(store)
	settingsService := services.NewSettingsService(store)
	statsService := services.NewStatsService(journalService, taskService, medicationService)
	aiService := services.NewAIService(generator)
	reportService := services.NewReportService(store, journalService, taskService, aiService)
	exportService := services.NewExportService(journalService, taskService, medicationService, settingsService)

	var worker *workers.MessageWorker
	if generator != nil {
		worker = workers.NewMessageWorker(taskService, aiService, workers.DefaultDebounce)
		defer worker.Stop()
	}

	var aiHandler *adapterHTTP.AIHandler
	if generator != nil {
		aiHandler = adapterHTTP.NewAIHandler(generator, aiService)
	}

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		MoodHandler:       adapterHTTP.NewMoodHandler(journalService),
		TaskHandler:       adapterHTTP.NewTaskHandler(taskService, settingsService, worker),
		MedicationHandler: adapterHTTP.NewMedicationHandler(medicationService),
		StatsHandler:      adapterHTTP.NewStatsHandler(statsService, reportService, settingsService),
		SettingsHandler:   adapterHTTP.NewSettingsHandler(settingsService, exportService),
		AIHandler:         aiHandler,
		DB:                db,
		Redis:             rdb,
		StartTime:         startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Lumina Engine running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
