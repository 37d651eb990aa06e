// Package parsers provides parsers for importing adoption records from files.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawRecord is a record parsed from an external source before validation.
// All fields are kept as text; the import service validates them.
type RawRecord struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Category  string `json:"category"`
	Image     string `json:"image,omitempty"`
	LineNum   int    `json:"-"` // Line number in source file (set by parser)
}

// Parser defines the interface for parsing records from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawRecord, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}
