// Package stdout detects internal packages that write to the process's stdout.
package stdout

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/ersonp/adopt-card/tools/adopt-lint/analyzers/scope"
)

// Analyzer reports fmt.Print* calls and os.Stdout uses under internal/.
// Library code writes to an io.Writer it is handed; only cmd/ owns stdout.
var Analyzer = &analysis.Analyzer{
	Name:     "stdout",
	Doc:      "detects fmt.Print*/os.Stdout use in internal packages",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var printFuncs = map[string]bool{
	"Print":   true,
	"Printf":  true,
	"Println": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if !scope.Under(pass.Pkg.Path(), "internal") {
		return nil, nil
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.SelectorExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		sel := n.(*ast.SelectorExpr)

		obj := pass.TypesInfo.Uses[sel.Sel]
		if obj == nil || obj.Pkg() == nil || scope.IsTestFile(pass, sel.Pos()) {
			return
		}

		switch obj := obj.(type) {
		case *types.Func:
			if obj.Pkg().Path() == "fmt" && printFuncs[obj.Name()] {
				pass.Reportf(sel.Pos(),
					"fmt.%s writes to stdout from an internal package - write to an io.Writer instead",
					obj.Name())
			}
		case *types.Var:
			if obj.Pkg().Path() == "os" && obj.Name() == "Stdout" {
				pass.Reportf(sel.Pos(),
					"os.Stdout used in an internal package - accept an io.Writer instead")
			}
		}
	})

	return nil, nil
}
