package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ersonp/adopt-card/internal/application/handlers"
	"github.com/ersonp/adopt-card/internal/domain/ports"
	"github.com/ersonp/adopt-card/internal/domain/services"
	"github.com/ersonp/adopt-card/internal/infrastructure/clock"
	"github.com/ersonp/adopt-card/internal/infrastructure/config"
	"github.com/ersonp/adopt-card/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config         *config.Config
	CardHandler    *handlers.CardHandler
	ListingHandler *handlers.ListingHandler
	ImportHandler  *handlers.ImportHandler
}

// baseDir returns the directory that holds .adopt.
func baseDir() (string, error) {
	if globalDir != "" {
		return globalDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	base, err := baseDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cal, err := buildClock(cfg.Clock)
	if err != nil {
		return err
	}

	repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: cfg.DBPath(base)})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	listingService := services.NewListingService(repo)
	presenter := services.NewPresenterService(cal)

	return fn(&Deps{
		Config:         cfg,
		CardHandler:    handlers.NewCardHandler(presenter, listingService),
		ListingHandler: handlers.NewListingHandler(listingService),
		ImportHandler:  handlers.NewImportHandler(services.NewImportService(listingService)),
	})
}

// buildClock returns the calendar ages are computed on. --today pins the
// current date; otherwise the system clock is used.
func buildClock(cfg config.ClockConfig) (ports.Clock, error) {
	loc, err := clock.ParseLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	if globalToday == "" {
		return clock.System(loc), nil
	}

	today, err := clock.ParseDate(globalToday, loc)
	if err != nil {
		return nil, fmt.Errorf("--today: %w", err)
	}
	return clock.Fixed(today, loc), nil
}

// previewClock builds a clock for commands that run without a catalog.
func previewClock() (ports.Clock, error) {
	base, err := baseDir()
	if err != nil {
		return nil, err
	}
	cfg := config.Default()
	if config.Exists(base) {
		if cfg, err = config.Load(base); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	return buildClock(cfg.Clock)
}

// parseBirthDate parses a --born flag value as a zone-naive date.
func parseBirthDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("--born is required (YYYY-MM-DD)")
	}
	return clock.ParseDate(value, time.UTC)
}
