package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/domain/ports"
)

type exportFlags struct {
	format   string
	output   string
	category string
	limit    int
}

// exportColumns is the CSV header, in the order import expects.
var exportColumns = []string{"name", "birth_date", "category", "image"}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog to JSON or CSV",
		Long: `Exports animals in the same shape import reads, so a catalog can be
copied by exporting it and importing the file elsewhere.

Examples:
  adopt export --format csv --output animals.csv
  adopt export --category rare`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&flags.category, "category", "c", "", "Only export this fee tier")
	cmd.Flags().IntVarP(&flags.limit, "limit", "l", 0, "Maximum number of animals to export (0 for all)")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !contains(validExportFormats, flags.format) {
		return fmt.Errorf("invalid --format value %q (valid: %v)", flags.format, validExportFormats)
	}
	if flags.limit < 0 {
		return errors.New("--limit must not be negative")
	}

	var filter ports.ListingFilter
	if flags.category != "" {
		category, err := entities.ParseCategory(flags.category)
		if err != nil {
			return err
		}
		filter.Category = category
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.ListingHandler.HandleList(ctx, filter, flags.limit, 0)
		if err != nil {
			return fmt.Errorf("listing animals: %w", err)
		}
		if len(result.Listings) == 0 {
			return errors.New("no animals found to export")
		}

		if flags.output == "" {
			return formatListings(cmd.OutOrStdout(), flags.format, result.Listings)
		}

		if err := writeExportFile(flags.output, flags.format, result.Listings); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d animals to %s\n", len(result.Listings), flags.output)
		return nil
	})
}

func writeExportFile(path, format string, listings []entities.Listing) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	return formatListings(f, format, listings)
}

func formatListings(w io.Writer, format string, listings []entities.Listing) error {
	var err error
	switch format {
	case "json":
		err = formatJSON(w, listings)
	case "csv":
		err = formatCSV(w, listings)
	default:
		err = fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}

// formatJSON writes the records as an array of
// {"name", "birth_date", "category", "image"} objects.
func formatJSON(w io.Writer, listings []entities.Listing) error {
	records := make([]entities.Record, 0, len(listings))
	for _, l := range listings {
		records = append(records, l.Record)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func formatCSV(w io.Writer, listings []entities.Listing) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportColumns); err != nil {
		return err
	}

	for _, l := range listings {
		row := []string{
			l.Record.Name(),
			l.Record.BirthDate().Format(entities.DateLayout),
			l.Record.Category().String(),
			string(l.Record.Image()),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
