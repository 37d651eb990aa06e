package main

// Default limits for CLI commands.
const (
	DefaultListLimit = 50
)

// Valid card output formats.
var validFormats = []string{"text", "json"}

// Valid catalog export formats. Both can be read back by import.
var validExportFormats = []string{"json", "csv"}

// Valid import conflict strategies.
var validConflictStrategies = []string{"skip", "overwrite"}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
