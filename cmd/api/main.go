package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"demandcast.sgpreschools.org/internal/app"
	"demandcast.sgpreschools.org/internal/appconf"
	"demandcast.sgpreschools.org/internal/demand"
	"demandcast.sgpreschools.org/internal/forecast"
	"demandcast.sgpreschools.org/internal/logging"
	"demandcast.sgpreschools.org/internal/restapi"
)

// envDefaults lets deployments override the flag defaults through the
// environment (DEMANDCAST_PORT, DEMANDCAST_DATA_DIR, and so on). Flags
// still win when passed explicitly.
type envDefaults struct {
	Port     int    `envconfig:"PORT" default:"4000"`
	Env      string `envconfig:"ENV" default:"development"`
	ApiKeys  string `envconfig:"API_KEYS" default:"test"`
	DataDir  string `envconfig:"DATA_DIR" default:"./data"`
	DBPath   string `envconfig:"DB_PATH" default:":memory:"`
	Strategy string `envconfig:"STRATEGY" default:"linear"`
}

func main() {
	var defaults envDefaults
	if err := envconfig.Process("demandcast", &defaults); err != nil {
		fmt.Fprintln(os.Stderr, "invalid environment configuration:", err)
		os.Exit(1)
	}

	var cfg appconf.Config
	var envFlag, apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", defaults.Port, "API server port")
	flag.StringVar(&envFlag, "env", defaults.Env, "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", defaults.ApiKeys, "Comma Separated API Keys (test, etc)")
	flag.StringVar(&cfg.DataDir, "data-dir", defaults.DataDir, "Directory holding the snapshot manifest and data files")
	flag.StringVar(&cfg.DBPath, "db-path", defaults.DBPath, "SQLite path for the snapshot store")
	flag.StringVar(&cfg.Strategy, "strategy", defaults.Strategy, "Default forecast strategy (linear|growth)")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Verbose logging")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)

	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	if _, err := forecast.StrategyFromName(cfg.Strategy); err != nil {
		logger.Error("invalid forecast strategy", "error", err)
		os.Exit(1)
	}

	manager, err := demand.InitManager(demand.Config{
		DataDir: cfg.DataDir,
		DBPath:  cfg.DBPath,
		Env:     cfg.Env,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		logger.Error("failed to load snapshot data", "error", err)
		os.Exit(1)
	}
	defer manager.Shutdown()

	manager.LogStatistics(logger)

	application := &app.Application{
		Config:        cfg,
		Logger:        logger,
		DemandManager: manager,
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
