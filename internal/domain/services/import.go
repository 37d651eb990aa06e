package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/infrastructure/parsers"
)

// ConflictStrategy defines how to handle listings whose name already exists.
type ConflictStrategy string

const (
	// ConflictSkip skips records whose name is already listed.
	ConflictSkip ConflictStrategy = "skip"
	// ConflictOverwrite replaces the existing listing's record, keeping its ID.
	ConflictOverwrite ConflictStrategy = "overwrite"
)

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun     bool             // Validate without saving
	OnConflict ConflictStrategy // How to handle existing names
}

// ImportError represents an error for a specific record during import.
type ImportError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Field   string // Which field has the error
	Value   string // The invalid value
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []ImportError
}

// ImportService handles importing records from external sources.
type ImportService struct {
	listings *ListingService
}

// NewImportService creates a new import service.
func NewImportService(listings *ListingService) *ImportService {
	return &ImportService{
		listings: listings,
	}
}

// Import validates raw records and adds the valid ones to the catalog.
// Invalid rows are reported in the result and do not stop the import.
// The import is not atomic: if saving a row fails, rows saved before it
// stay in the catalog and the partial result is returned with the error.
func (s *ImportService) Import(ctx context.Context, rawRecords []parsers.RawRecord, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	records, validationErrors := s.validateRecords(rawRecords)
	result.Errors = validationErrors

	if opts.DryRun {
		result.Imported = len(records)
		return result, nil
	}

	for _, record := range records {
		imported, err := s.save(ctx, record, opts.OnConflict)
		if err != nil {
			return result, fmt.Errorf("saving %q: %w", record.Name(), err)
		}
		if imported {
			result.Imported++
		} else {
			result.Skipped++
		}
	}

	return result, nil
}

// save stores one record and reports whether it was written.
func (s *ImportService) save(ctx context.Context, record entities.Record, onConflict ConflictStrategy) (bool, error) {
	existing, err := s.listings.FindByName(ctx, record.Name())
	if err != nil {
		return false, err
	}

	if existing == nil {
		_, err := s.listings.Add(ctx, record.Name(), record.BirthDate(), record.Category(), record.Image())
		return err == nil, err
	}

	if onConflict != ConflictOverwrite {
		return false, nil
	}
	_, err = s.listings.Replace(ctx, existing.ID, record)
	return err == nil, err
}

// validateRecords converts valid raw records and collects errors for the rest.
// A name repeated within the same input is reported after its first use.
func (s *ImportService) validateRecords(rawRecords []parsers.RawRecord) ([]entities.Record, []ImportError) {
	valid := make([]entities.Record, 0, len(rawRecords))
	seen := make(map[string]int, len(rawRecords))
	var errs []ImportError

	for i := range rawRecords {
		raw := &rawRecords[i]
		lineNum := raw.LineNum
		if lineNum == 0 {
			lineNum = i + 1
		}

		record, importErr := convertRawRecord(raw, lineNum)
		if importErr != nil {
			errs = append(errs, *importErr)
			continue
		}

		key := entities.NormalizeName(record.Name())
		if first, dup := seen[key]; dup {
			errs = append(errs, ImportError{
				Line:    lineNum,
				Field:   "name",
				Value:   record.Name(),
				Message: fmt.Sprintf("duplicate name %q (first seen on line %d)", record.Name(), first),
			})
			continue
		}
		seen[key] = lineNum

		valid = append(valid, record)
	}

	return valid, errs
}

// convertRawRecord validates a single raw record and converts it.
func convertRawRecord(raw *parsers.RawRecord, lineNum int) (entities.Record, *ImportError) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return entities.Record{}, &ImportError{Line: lineNum, Field: "name", Message: "missing required field: name"}
	}
	if raw.BirthDate == "" {
		return entities.Record{}, &ImportError{Line: lineNum, Field: "birth_date", Message: "missing required field: birth_date"}
	}
	if raw.Category == "" {
		return entities.Record{}, &ImportError{Line: lineNum, Field: "category", Message: "missing required field: category"}
	}

	birthDate, err := time.Parse(entities.DateLayout, strings.TrimSpace(raw.BirthDate))
	if err != nil {
		return entities.Record{}, &ImportError{
			Line:    lineNum,
			Field:   "birth_date",
			Value:   raw.BirthDate,
			Message: fmt.Sprintf("invalid birth_date %q (expected YYYY-MM-DD)", raw.BirthDate),
		}
	}

	category, err := entities.ParseCategory(raw.Category)
	if err != nil {
		return entities.Record{}, &ImportError{
			Line:    lineNum,
			Field:   "category",
			Value:   raw.Category,
			Message: fmt.Sprintf("invalid category %q (valid: %s)", raw.Category, strings.Join(entities.CategoryNames(), ", ")),
		}
	}

	return entities.NewRecord(name, birthDate, category, entities.ImageRef(strings.TrimSpace(raw.Image))), nil
}
