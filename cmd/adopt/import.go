package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/adopt-card/internal/application/handlers"
	"github.com/ersonp/adopt-card/internal/domain/services"
)

type importFlags struct {
	format     string
	dryRun     bool
	onConflict string
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import animals from JSON or CSV",
		Long: `Imports animals from a structured file.

JSON files hold an array of {"name", "birth_date", "category", "image"} objects.
CSV files need a header with name, birth_date and category; image is optional.
Use "-" to read from stdin together with --format json or --format csv.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format (json, csv, auto)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate without saving")
	cmd.Flags().StringVar(&flags.onConflict, "on-conflict", "skip", "Handling for names already listed (skip, overwrite)")

	return cmd
}

func runImport(cmd *cobra.Command, filePath string, flags importFlags) error {
	if !contains(validConflictStrategies, flags.onConflict) {
		return fmt.Errorf("invalid --on-conflict value %q (valid: %v)", flags.onConflict, validConflictStrategies)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withDeps(ctx, func(d *Deps) error {
		opts := handlers.ImportOptions{
			Format:     flags.format,
			DryRun:     flags.dryRun,
			OnConflict: services.ConflictStrategy(flags.onConflict),
		}

		var (
			result *handlers.ImportResult
			err    error
		)
		if filePath == "-" {
			fmt.Fprintln(out, "Importing from stdin...")
			result, err = d.ImportHandler.HandleReader(ctx, cmd.InOrStdin(), opts)
		} else {
			fmt.Fprintf(out, "Importing %s...\n", filePath)
			result, err = d.ImportHandler.Handle(ctx, filePath, opts)
		}
		if err != nil {
			if result != nil && result.Imported > 0 {
				fmt.Fprintf(out, "Imported before failure: %d\n", result.Imported)
			}
			return fmt.Errorf("importing file: %w", err)
		}

		fmt.Fprintf(out, "Read %d rows\n", result.Rows)

		if len(result.Errors) > 0 {
			fmt.Fprintf(out, "\nValidation errors (%d):\n", len(result.Errors))
			for _, e := range result.Errors {
				fmt.Fprintf(out, "  %s\n", e.Error())
			}
			fmt.Fprintln(out)
		}

		if flags.dryRun {
			fmt.Fprintf(out, "Dry run: %d valid, %d invalid\n", result.Imported, len(result.Errors))
			return nil
		}

		fmt.Fprintf(out, "Imported: %d\n", result.Imported)
		if result.Skipped > 0 {
			fmt.Fprintf(out, "Skipped (already listed): %d\n", result.Skipped)
		}
		return nil
	})
}
