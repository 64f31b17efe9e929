package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/yxchen/macro-data/internal/asset"
	"github.com/yxchen/macro-data/internal/config"
	"github.com/yxchen/macro-data/internal/database"
	"github.com/yxchen/macro-data/internal/ingest"
	"github.com/yxchen/macro-data/internal/logging"
	"github.com/yxchen/macro-data/internal/normalize"
	"github.com/yxchen/macro-data/internal/provider"
	"github.com/yxchen/macro-data/internal/source"
	"github.com/yxchen/macro-data/internal/store"
	"github.com/yxchen/macro-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/ingester.yaml", "path to config file")
	full := flag.Bool("full", false, "full backfill mode (default: incremental)")
	workers := flag.Int("workers", 0, "worker pool size (overrides config)")
	reportPath := flag.String("report", "", "write detailed JSON report to this path")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// .env is optional; scheduled runs typically inject real env vars.
	_ = godotenv.Load()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *workers > 0 {
		cfg.Ingest.Workers = *workers
	}

	logger, logCloser := logging.New(cfg.Logging)
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("starting ingester",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
		"full", *full,
		"workers", cfg.Ingest.Workers,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	st := store.New(pool, logger)
	if err := st.Migrate(ctx); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := st.SeedTypes(ctx); err != nil {
		logger.Error("type catalog seeding failed", "error", err)
		os.Exit(1)
	}

	registry, err := asset.NewRegistry(asset.Catalog())
	if err != nil {
		logger.Error("invalid asset catalog", "error", err)
		os.Exit(1)
	}

	adapters, err := buildAdapters(cfg, registry, logger)
	if err != nil {
		logger.Error("adapter construction failed", "error", err)
		os.Exit(1)
	}

	runner := ingest.NewRunner(
		ingest.Config{
			Workers:      cfg.Ingest.Workers,
			FetchTimeout: cfg.Ingest.FetchTimeout,
		},
		registry,
		adapters,
		st,
		normalize.New(st, logger),
		logger,
	)

	report := runner.RunAll(ctx, !*full)

	fmt.Println(report.Text())

	if *reportPath != "" {
		if err := report.WriteJSON(*reportPath); err != nil {
			logger.Error("failed to write JSON report", "error", err)
		} else {
			logger.Info("detailed report written", "path", *reportPath)
		}
	}

	if report.Summary.Failed > 0 {
		os.Exit(1)
	}
}

// buildAdapters wires one provider client per upstream family and the
// adapters on top of them.
func buildAdapters(cfg *config.IngesterConfig, registry *asset.Registry, logger *slog.Logger) (map[asset.Source]source.Adapter, error) {
	newClient := func(p config.ProviderConfig) *provider.Client {
		opts := []provider.ClientOption{
			provider.WithLogger(logger),
			provider.WithTimeout(p.Timeout),
			provider.WithRetries(p.MaxRetries, 0),
			provider.WithRateLimit(p.RatePerSec),
		}
		if p.GB18030 {
			opts = append(opts, provider.WithGB18030())
		}
		return provider.NewClient(p.BaseURL, opts...)
	}

	history := newClient(cfg.Providers.History)
	index := newClient(cfg.Providers.Index)
	bankFX := newClient(cfg.Providers.BankFX)
	macroClient := newClient(cfg.Providers.Macro)
	spot := newClient(cfg.Providers.Spot)

	var macroCodes []string
	for _, a := range registry.All() {
		if a.Source == asset.SourceMacro {
			macroCodes = append(macroCodes, a.Code)
		}
	}
	macroAdapter, err := source.NewMacroAdapter(macroClient, macroCodes)
	if err != nil {
		return nil, err
	}

	years := cfg.Ingest.HistoryYears
	return map[asset.Source]source.Adapter{
		asset.SourceHistory: source.NewHistoryAdapter(history, years),
		asset.SourceIndex:   source.NewIndexAdapter(index, years),
		asset.SourceForex:   source.NewForexAdapter(bankFX, history, years),
		asset.SourceMacro:   macroAdapter,
		asset.SourceSpot:    source.NewSpotAdapter(spot, years),
	}, nil
}
