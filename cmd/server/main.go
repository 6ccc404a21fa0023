package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/jcp-backend-service/internal/clock"
	"github.com/yukikurage/jcp-backend-service/internal/config"
	"github.com/yukikurage/jcp-backend-service/internal/database"
	"github.com/yukikurage/jcp-backend-service/internal/handlers"
	"github.com/yukikurage/jcp-backend-service/internal/logger"
	"github.com/yukikurage/jcp-backend-service/internal/services"
)

func main() {
	log := logger.NewDefault()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log = logger.New(cfg.Env, os.Stdout).With().Str("service", cfg.Service.Name).Logger()

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	clk := clock.System()

	// Connect to database
	if err := database.Connect(cfg, log, clk); err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	// Run migrations
	log.Info().Msg("running database migrations")
	if err := database.Migrate(database.GetDB()); err != nil {
		return err
	}
	log.Info().Msg("database migrations completed")

	sqlDB, err := database.GetDB().DB()
	if err != nil {
		return err
	}

	statusService := services.NewStatusService(log, cfg.Service, clk, sqlDB, cfg.Database.PingTimeout)
	router := handlers.NewRouter(log, statusService)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("version", cfg.Service.Version).
			Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for SIGINT/SIGTERM or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
