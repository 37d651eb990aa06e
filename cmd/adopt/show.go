package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ersonp/adopt-card/internal/application/handlers"
	"github.com/ersonp/adopt-card/internal/domain/entities"
)

func newShowCmd() *cobra.Command {
	var history bool

	cmd := &cobra.Command{
		Use:   "show <id-or-name>",
		Short: "Show a listing and its derived card fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], history)
		},
	}

	cmd.Flags().BoolVar(&history, "history", false, "Include the listing's change history")

	return cmd
}

func runShow(cmd *cobra.Command, ref string, history bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.CardHandler.HandlePresent(ctx, ref)
		if err != nil {
			return err
		}

		printListing(out, result)

		if !history {
			return nil
		}

		entries, err := d.ListingHandler.HandleHistory(ctx, result.Listing.ID)
		if err != nil {
			return fmt.Errorf("loading history: %w", err)
		}
		printHistory(out, entries)
		return nil
	})
}

func printListing(out io.Writer, result *handlers.CardResult) {
	l := result.Listing
	p := result.Presentation

	fmt.Fprintf(out, "ID:        %s\n", l.ID)
	fmt.Fprintf(out, "Name:      %s\n", l.Record.Name())
	fmt.Fprintf(out, "Born:      %s\n", l.Record.BirthDate().Format(entities.DateLayout))
	fmt.Fprintf(out, "Category:  %s\n", l.Record.Category())
	if l.Record.Image() != "" {
		fmt.Fprintf(out, "Image:     %s\n", l.Record.Image())
	}
	fmt.Fprintf(out, "Added:     %s\n", humanize.Time(l.CreatedAt))
	fmt.Fprintf(out, "Age:       %s\n", p.AgeText)
	fmt.Fprintf(out, "Fee:       %s\n", p.FeeText)
}

func printHistory(out io.Writer, entries []entities.AuditEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "\nNo history.")
		return
	}

	fmt.Fprintf(out, "\nHistory (%d):\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(out, "  %-8s %s\n", e.Action, humanize.Time(e.CreatedAt))
	}
}
