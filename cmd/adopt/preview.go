package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/adopt-card/internal/application/handlers"
	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/domain/services"
)

type previewFlags struct {
	name     string
	born     string
	category string
	image    string
	format   string
}

func newPreviewCmd() *cobra.Command {
	var flags previewFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a card for an animal that is not in the catalog",
		Long: `Render a card for an animal without saving it.

Example:
  adopt preview --name Stuart --born 2024-10-17 --category very-rare --today 2026-10-17`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "Animal name")
	cmd.Flags().StringVar(&flags.born, "born", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&flags.category, "category", "c", "", "Fee tier (common, uncommon, rare, very-rare)")
	cmd.Flags().StringVarP(&flags.image, "image", "i", "", "Image path or URL")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format (text, json)")

	return cmd
}

func runPreview(cmd *cobra.Command, flags previewFlags) error {
	surface, err := newSurface(cmd, flags.format)
	if err != nil {
		return err
	}

	birthDate, err := parseBirthDate(flags.born)
	if err != nil {
		return err
	}
	category, err := entities.ParseCategory(flags.category)
	if err != nil {
		return err
	}

	cal, err := previewClock()
	if err != nil {
		return err
	}

	record := entities.NewRecord(flags.name, birthDate, category, entities.ImageRef(flags.image))
	cards := handlers.NewCardHandler(services.NewPresenterService(cal), nil)
	cards.HandlePreview(record, surface)

	return surface.Flush()
}
