// Package analyzers provides all custom static analyzers for adopt-card.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/adopt-card/tools/adopt-lint/analyzers/stdout"
	"github.com/ersonp/adopt-card/tools/adopt-lint/analyzers/wallclock"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		stdout.Analyzer,
		wallclock.Analyzer,
	}
}
