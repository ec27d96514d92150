package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/records"
	"go-jobboard-backend/internal/store"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Job Board Backend API
// @version         1.0
// @description     Backend for a job board over a pluggable record store.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "store", cfg.StoreDriver)

	// 3. Setup Record Store
	recordStore, cleanup, err := newRecordStore(cfg)
	if err != nil {
		logger.Log.Error("Failed to open record store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// 4. Setup Repositories
	companyRepo := records.NewCompanyRepository(recordStore)
	jobRepo := records.NewJobRepository(recordStore)
	candidateRepo := records.NewCandidateRepository(recordStore)
	applicationRepo := records.NewApplicationRepository(recordStore)

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	authUC := usecase.NewAuthUsecase(candidateRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, applicationRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, applicationRepo, jobRepo, companyRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, time.Now)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		CandidateUC:   candidateUC,
		ApplicationUC: applicationUC,
		Config:        cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// newRecordStore builds the configured store backend. The returned
// cleanup is always safe to call.
func newRecordStore(cfg *config.Config) (store.RecordStore, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		s, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, func() {}, err
		}
		return s, func() { _ = s.Close() }, nil
	case config.StoreDriverPostgres:
		pool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			return nil, func() {}, err
		}
		return store.NewPostgresStore(pool), pool.Close, nil
	default:
		return store.NewCSVStore(cfg.DataDir), func() {}, nil
	}
}
