package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"vgdash/internal/api"
	"vgdash/internal/config"
	"vgdash/internal/engine"
	"vgdash/internal/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	logCfg := log.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = cfg.LogFormat
	logger := log.New(logCfg)
	log.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The API is live right away and answers 503 until the dataset is in.
	h := api.NewHandler(nil)
	e := api.NewServer(h, api.ServerOptions{
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
		Logger:      logger.WithComponent(log.ComponentHTTP),
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		engineLog := logger.WithComponent(log.ComponentEngine)
		engineLog.Info("Starting dataset load", log.FieldDataset, cfg.DatasetPath)
		t0 := time.Now()

		table, stats, err := engine.Load(cfg.DatasetPath)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		h.SetTable(table)

		engineLog.Info("Dataset ready",
			log.FieldRows, stats.Rows,
			"skipped", stats.Skipped,
			log.FieldDuration, time.Since(t0).Milliseconds())
		return nil
	})

	g.Go(func() error {
		logger.Info("Server ready (dataset loading in background)", "addr", cfg.Addr())
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
