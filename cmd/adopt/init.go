package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/adopt-card/internal/infrastructure/config"
	"github.com/ersonp/adopt-card/internal/infrastructure/relationaldb/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new adoption catalog",
		Long:  "Creates a .adopt directory with default configuration and an empty catalog database.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	base, err := baseDir()
	if err != nil {
		return err
	}

	if config.Exists(base) {
		return fmt.Errorf("adopt already initialized in %s", base)
	}

	if err := config.WriteDefault(base); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	fmt.Fprintf(out, "Created %s\n", config.ConfigFilePath(base))

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: cfg.DBPath(base)})
	if err != nil {
		return fmt.Errorf("creating catalog database: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	fmt.Fprintf(out, "Created catalog: %s\n", repo.Path())
	fmt.Fprintln(out, "Adoption catalog initialized successfully!")

	return nil
}
