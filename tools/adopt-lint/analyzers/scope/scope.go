// Package scope decides which packages an analyzer applies to.
package scope

import (
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Under reports whether pkgPath lies in the tree rooted at segment,
// e.g. "internal/domain" matches "example.com/app/internal/domain/services".
func Under(pkgPath, segment string) bool {
	path := "/" + pkgPath + "/"
	return strings.Contains(path, "/"+segment+"/")
}

// IsTestFile reports whether pos is in a _test.go file.
func IsTestFile(pass *analysis.Pass, pos token.Pos) bool {
	f := pass.Fset.File(pos)
	return f != nil && strings.HasSuffix(f.Name(), "_test.go")
}
