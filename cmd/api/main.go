package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plnalaca/pera/config"
	httpHandler "github.com/plnalaca/pera/internal/adapter/http/handler"
	pgStorage "github.com/plnalaca/pera/internal/adapter/storage/postgres"
	"github.com/plnalaca/pera/internal/service"
	"github.com/plnalaca/pera/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Pera learning backend")

	ctx := context.Background()

	// Apply schema migrations before serving traffic.
	if err := pgStorage.RunMigrations(ctx, cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	log.Info().Msg("Schema migrations applied")

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	lessonRepo := pgStorage.NewLessonRepo(pool)
	transactor := pgStorage.NewTransactor(pool)
	storeHealth := pgStorage.NewHealthCheck(pool)

	// Initialize business services
	userSvc := service.NewUserService(userRepo, lessonRepo, transactor, cfg.Database.QueryTimeout, log)
	lessonSvc := service.NewLessonService(userRepo, lessonRepo, cfg.Database.QueryTimeout, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		UserSvc:        userSvc,
		LessonSvc:      lessonSvc,
		StoreHealth:    storeHealth,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
