package fixers

import (
	"fmt"
	"go/ast"
	"path/filepath"
	"strings"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

var missingTestFileRule = Rule{
	Code:        MissingTestFileCode,
	Name:        "missingTestFile",
	Severity:    m.SeveritySuggestion,
	Description: "File declares functions but has no companion _test.go file",
	FixNames:    []string{"addTestFile"},
	Check:       checkMissingTestFile,
}

func checkMissingTestFile(ctx *Context, n ast.Node) []Finding {
	file, ok := n.(*ast.File)
	if !ok || ctx.HasTestFile || strings.HasSuffix(string(ctx.Path), "_test.go") {
		return nil
	}

	if !declaresFunctions(file) {
		return nil
	}

	testPath := TestFileFor(ctx.Path)
	message := fmt.Sprintf("No test file for %s", filepath.Base(string(ctx.Path)))

	return []Finding{{
		Problem: ctx.problem(MissingTestFileCode, m.SeveritySuggestion, file.Name, message),
		Fixes: []m.Fix{{
			Name:        "addTestFile",
			Description: fmt.Sprintf("Create %s", filepath.Base(string(testPath))),
			Changes:     []m.FileChange{{File: testPath}},
		}},
	}}
}

// TestFileFor returns the _test.go sibling of a Go source file.
func TestFileFor(path m.Path) m.Path {
	return m.Path(strings.TrimSuffix(string(path), ".go") + "_test.go")
}

func declaresFunctions(file *ast.File) bool {
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Body != nil && fn.Name.Name != "main" && fn.Name.Name != "init" {
			return true
		}
	}

	return false
}
