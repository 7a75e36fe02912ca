package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"railplan.onerail.org/internal/app"
	"railplan.onerail.org/internal/appconf"
	"railplan.onerail.org/internal/logging"
	"railplan.onerail.org/internal/restapi"
	"railplan.onerail.org/internal/routing"
	"railplan.onerail.org/internal/schedule"
)

func main() {
	var (
		envFlag     string
		apiKeysFlag string
		corsFlag    string
		dsn         string
		gtfsURL     string
		configPath  string
	)

	cfg := appconf.Config{}
	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "", "Comma separated API keys (empty disables the check)")
	flag.StringVar(&corsFlag, "cors-origins", "*", "Comma separated allowed CORS origins")
	flag.StringVar(&dsn, "dsn", "railplan.db", "SQLite path or postgres:// connection string")
	flag.StringVar(&gtfsURL, "gtfs-url", "", "GTFS zip (URL or file path) to seed an empty database")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	cfg.ApiKeys = splitAndTrim(apiKeysFlag)
	cfg.CORSAllowedOrigins = splitAndTrim(corsFlag)

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	if configPath != "" {
		merged, err := appconf.LoadFromFile(configPath, cfg)
		if err != nil {
			logger.Error("failed to load config file", "error", err, "path", configPath)
			os.Exit(1)
		}
		cfg = merged
	}

	ctx := context.Background()
	manager, err := schedule.InitManager(ctx, schedule.Config{
		DSN:        dsn,
		SeedSource: gtfsURL,
		Env:        cfg.Env,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize schedule manager", "error", err)
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(manager, logger, "schedule_manager")

	stats := manager.Stats()
	logger.Info("schedule loaded", "stations", stats.Stations, "trains", stats.Trains)

	application := &app.Application{
		Config:   cfg,
		Logger:   logger,
		Schedule: manager,
		Engine:   routing.NewEngine(manager, searchConfig(cfg.Search), logger),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      restapi.NewRestAPI(application).Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		logger.Info("shutting down server", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// searchConfig maps the file-level tunables onto the engine's config. Zero
// values fall through to the engine defaults.
func searchConfig(t appconf.SearchTunables) routing.Config {
	return routing.Config{
		MinConnection:   time.Duration(t.MinConnectionMinutes) * time.Minute,
		TransferPenalty: time.Duration(t.TransferPenaltyMinutes) * time.Minute,
		VisitedBucket:   time.Duration(t.VisitedBucketMinutes) * time.Minute,
		Horizon:         time.Duration(t.HorizonHours) * time.Hour,
		AvgSpeedKmph:    t.AvgSpeedKmph,
		MaxIterations:   t.MaxIterations,
	}
}

func splitAndTrim(flagValue string) []string {
	if flagValue == "" {
		return nil
	}
	parts := strings.Split(flagValue, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
