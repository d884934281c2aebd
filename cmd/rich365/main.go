package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rich365/rich365/internal/app"
	"github.com/rich365/rich365/internal/catalogue"
	"github.com/rich365/rich365/internal/cli"
	"github.com/rich365/rich365/internal/config"
	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/llm"
	"github.com/rich365/rich365/internal/metrics"
	"github.com/rich365/rich365/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("RICH365_CONFIG"))
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("loading timezone: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	cat, err := loadCatalogue(cfg.CataloguePath)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	m, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	// The model client is optional; without it generation uses templates.
	llmCfg, err := llm.LoadConfig()
	if err != nil {
		return err
	}
	var client llm.LLMClient
	if llmCfg.Enabled {
		observers := llm.MultiObserver{m}
		if llmCfg.LogCalls {
			observers = append(observers, llm.NewLogObserver(logger))
		}
		client = llm.NewClient(llmCfg, observers)
	}

	clock := func() time.Time { return time.Now().In(loc) }
	svc, err := app.Build(app.Deps{
		DB:        database,
		Catalogue: cat,
		LLM:       client,
		Location:  loc,
		Clock:     clock,
		CacheSize: cfg.CacheSize,
		Logger:    logger,
		Observers: []service.UseCaseObserver{m, service.NewSlogUseCaseObserver(logger)},
	})
	if err != nil {
		return err
	}

	a := &cli.App{
		Profiles:    svc.Profiles,
		Calendar:    svc.Calendar,
		Generation:  svc.Generation,
		CheckIns:    svc.CheckIns,
		Leaderboard: svc.Leaderboard,
		Export:      svc.Export,
		Clock:       clock,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		HTTPAddr:    cfg.HTTP.Addr,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Metrics:     m,
		Logger:      logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return cli.NewRootCmd(a).ExecuteContext(ctx)
}

func loadCatalogue(path string) (*catalogue.Catalogue, error) {
	if path == "" {
		return catalogue.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalogue: %w", err)
	}
	defer f.Close()
	cat, err := catalogue.LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("loading catalogue %s: %w", path, err)
	}
	return cat, nil
}
