// adopt-lint checks the layering rules of the adopt-card module.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/adopt-card/tools/adopt-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
