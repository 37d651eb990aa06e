package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/domain/ports"
)

type listFlags struct {
	category string
	limit    int
	offset   int
}

func newListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List animals in the catalog",
		Long: `List animals in the adoption catalog, ordered by name.

Examples:
  adopt list
  adopt list --category rare
  adopt list --limit 20 --offset 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.category, "category", "c", "", "Only list this fee tier")
	cmd.Flags().IntVarP(&flags.limit, "limit", "l", DefaultListLimit, "Maximum number of animals to list")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "Number of animals to skip")

	return cmd
}

func runList(cmd *cobra.Command, flags listFlags) error {
	var filter ports.ListingFilter
	if flags.category != "" {
		category, err := entities.ParseCategory(flags.category)
		if err != nil {
			return err
		}
		filter.Category = category
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.ListingHandler.HandleList(ctx, filter, flags.limit, flags.offset)
		if err != nil {
			return fmt.Errorf("listing animals: %w", err)
		}

		if len(result.Listings) == 0 {
			fmt.Fprintln(out, "No animals found.")
			return nil
		}

		fmt.Fprintf(out, "Animals (%d total):\n\n", result.Total)
		for _, l := range result.Listings {
			fmt.Fprintf(out, "  %-10s %-24s %-10s %s  added %s\n",
				shortID(l.ID),
				l.Record.Name(),
				l.Record.Category(),
				l.Record.BirthDate().Format(entities.DateLayout),
				humanize.Time(l.CreatedAt),
			)
		}
		return nil
	})
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
