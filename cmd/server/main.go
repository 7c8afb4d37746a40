// Package main is the entry point for the Financial Advisor Dashboard
// backend: the allocation optimization and portfolio metrics engine served
// over a JSON API.
//
// Startup sequence:
//  1. Load configuration from environment variables (.env honored)
//  2. Initialize structured logging
//  3. Open config.db and plans.db, ensure schemas, seed reference defaults
//  4. Wire the computation services (optimizer, metrics, projection,
//     rebalancing) behind the advice orchestrator
//  5. Start the HTTP server and wait for a shutdown signal
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/config"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/database"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/advice"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/metrics"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/optimizer"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/projection"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/rebalancing"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/modules/reference"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/internal/server"
	"github.com/beingsoumyashukla/Financial-Advisor-Dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	log.Info().Msg("Starting advisor service")

	// config.db holds the tunable reference tables, plans.db the advice
	// plan history.
	configDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "config.db"),
		Profile: database.ProfileStandard,
		Name:    "config",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open config database")
	}
	defer configDB.Close()

	plansDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "plans.db"),
		Profile: database.ProfileHistory,
		Name:    "plans",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open plans database")
	}
	defer plansDB.Close()

	if err := reference.InitSchema(configDB.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize reference schema")
	}
	if err := advice.InitSchema(plansDB.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize plans schema")
	}

	referenceRepo := reference.NewRepository(configDB.Conn(), log)
	if err := referenceRepo.Seed(); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed reference data")
	}
	referenceSvc := reference.NewService(referenceRepo, log)

	planRepo := advice.NewPlanRepository(plansDB.Conn(), log)
	adviceSvc := advice.NewService(
		optimizer.NewService(referenceSvc, log),
		metrics.NewService(referenceSvc, log),
		projection.NewService(log),
		rebalancing.NewService(log),
		planRepo,
		log,
	)

	srv := server.New(server.Config{
		Log:           log,
		Config:        cfg,
		AdviceService: adviceSvc,
		PlanRepo:      planRepo,
		ReferenceSvc:  referenceSvc,
		ReferenceRepo: referenceRepo,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Advisor service stopped")
}
