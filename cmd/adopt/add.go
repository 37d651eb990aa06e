package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/adopt-card/internal/application/handlers"
	"github.com/ersonp/adopt-card/internal/domain/entities"
)

type addFlags struct {
	born     string
	category string
	image    string
}

func newAddCmd() *cobra.Command {
	var flags addFlags

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an animal to the catalog",
		Long: `Add an animal to the adoption catalog.

Examples:
  adopt add Stuart --born 2024-10-17 --category very-rare --image img/stuart.png
  adopt add Pip --born 2020-01-01 --category common`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.born, "born", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&flags.category, "category", "c", "", "Fee tier (common, uncommon, rare, very-rare)")
	cmd.Flags().StringVarP(&flags.image, "image", "i", "", "Image path or URL")

	return cmd
}

func runAdd(cmd *cobra.Command, name string, flags addFlags) error {
	birthDate, err := parseBirthDate(flags.born)
	if err != nil {
		return err
	}
	category, err := entities.ParseCategory(flags.category)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		listing, err := d.ListingHandler.HandleAdd(ctx, handlers.AddRequest{
			Name:      name,
			BirthDate: birthDate,
			Category:  category,
			Image:     entities.ImageRef(flags.image),
		})
		if err != nil {
			return fmt.Errorf("adding listing: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s, %s)\n", listing.Record.Name(), listing.Record.Category(), listing.ID)
		return nil
	})
}
