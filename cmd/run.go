package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/wellquiz/internal/app"
	"github.com/abhisek/wellquiz/internal/catalog"
	"github.com/abhisek/wellquiz/internal/logging"
	"github.com/abhisek/wellquiz/internal/metrics"
	"github.com/abhisek/wellquiz/internal/quiz"
	"github.com/abhisek/wellquiz/internal/screens/play"
)

// runApp loads config and catalog, builds the engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closer.Close()

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	clock := play.NewClock()
	opts := []quiz.Option{
		quiz.WithDuration(cfg.GameDuration),
		quiz.WithRand(quiz.NewRand(cfg.Seed)),
		quiz.WithClock(clock),
		quiz.WithLogger(log),
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if cfg.MetricsAddr != "" {
		rec := metrics.NewRecorder()
		opts = append(opts, quiz.WithObserver(rec))
		go func() {
			if err := rec.Serve(ctx, cfg.MetricsAddr, log); err != nil {
				log.Error("metrics listener failed", slog.Any("error", err))
			}
		}()
	}

	log.Info("starting wellquiz",
		slog.Int("prompts", len(cat.Prompts)),
		slog.Int("interventions", len(cat.Interventions)),
		slog.Int("duration", cfg.GameDuration))

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Engine:       quiz.New(cat, opts...),
		Clock:        clock,
		ResultsShown: cfg.ResultsShown,
		Logger:       log,
		Splash:       !noSplash,
	})
}

// loadCatalog returns the built-in catalog, or the file at path if set.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}
