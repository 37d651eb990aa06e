// Package wallclock detects domain code that reads the system clock directly.
package wallclock

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/ersonp/adopt-card/tools/adopt-lint/analyzers/scope"
)

// Analyzer reports time.Now, time.Since and time.Until calls in domain packages.
// Ages must be derived from an injected ports.Clock so that results depend
// only on their inputs.
var Analyzer = &analysis.Analyzer{
	Name:     "wallclock",
	Doc:      "detects time.Now/Since/Until calls in internal/domain packages",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var clockFuncs = map[string]bool{
	"Now":   true,
	"Since": true,
	"Until": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if !scope.Under(pass.Pkg.Path(), "internal/domain") {
		return nil, nil
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return
		}

		fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
		if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "time" || !clockFuncs[fn.Name()] {
			return
		}

		if scope.IsTestFile(pass, call.Pos()) {
			return
		}

		pass.Reportf(call.Pos(),
			"time.%s called in domain package - read the time through ports.Clock",
			fn.Name())
	})

	return nil, nil
}
