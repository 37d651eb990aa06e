package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/adopt-card/internal/domain/ports"
	"github.com/ersonp/adopt-card/internal/infrastructure/render"
)

func newCardCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "card <id-or-name>",
		Short: "Render the adoption card for a listing",
		Long: `Render the adoption card for a listing.

Examples:
  adopt card Stuart
  adopt card Stuart --format json
  adopt card Stuart --today 2026-10-17`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCard(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json)")

	return cmd
}

func runCard(cmd *cobra.Command, ref, format string) error {
	surface, err := newSurface(cmd, format)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		if _, err := d.CardHandler.HandleRender(ctx, ref, surface); err != nil {
			return err
		}
		return surface.Flush()
	})
}

// flushSurface is a card surface that writes itself out once populated.
type flushSurface interface {
	ports.CardSurface
	Flush() error
}

func newSurface(cmd *cobra.Command, format string) (flushSurface, error) {
	if !contains(validFormats, format) {
		return nil, fmt.Errorf("invalid --format value %q (valid: %v)", format, validFormats)
	}
	if format == "json" {
		return render.NewJSONCard(cmd.OutOrStdout()), nil
	}
	return render.NewTextCard(cmd.OutOrStdout()), nil
}
