package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ersonp/adopt-card/internal/domain/services"
	"github.com/ersonp/adopt-card/internal/infrastructure/parsers"
)

// ImportHandler loads animals into the catalog from JSON or CSV input.
type ImportHandler struct {
	service *services.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(service *services.ImportService) *ImportHandler {
	return &ImportHandler{
		service: service,
	}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	Format     string                    // "json", "csv", or "auto" (files only)
	DryRun     bool                      // Validate without saving
	OnConflict services.ConflictStrategy // How to handle names already listed
}

// ImportResult summarizes an import. Handle and HandleReader return it
// alongside a save error so callers can report rows already written.
type ImportResult struct {
	Rows     int // Rows read from the input
	Imported int
	Skipped  int
	Errors   []services.ImportError
}

// Handle imports the file at path. With an empty or "auto" format the
// parser is chosen from the file extension.
func (h *ImportHandler) Handle(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	parser := parsers.ForFormat(opts.Format)
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(path)
	}
	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return h.run(ctx, parser, file, opts)
}

// HandleReader imports records read from r. The format must be named
// explicitly since there is no file extension to go by.
func (h *ImportHandler) HandleReader(ctx context.Context, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	parser := parsers.ForFormat(opts.Format)
	if parser == nil {
		return nil, fmt.Errorf("unsupported format %q for stream input (use json or csv)", opts.Format)
	}
	return h.run(ctx, parser, r, opts)
}

func (h *ImportHandler) run(ctx context.Context, parser parsers.Parser, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	raw, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	result := &ImportResult{Rows: len(raw)}
	if len(raw) == 0 {
		return result, nil
	}

	imported, err := h.service.Import(ctx, raw, services.ImportOptions{
		DryRun:     opts.DryRun,
		OnConflict: opts.OnConflict,
	})
	if imported != nil {
		result.Imported = imported.Imported
		result.Skipped = imported.Skipped
		result.Errors = imported.Errors
	}
	return result, err
}
