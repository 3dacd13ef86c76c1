package fixers

import (
	"go/ast"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

var redundantParensRule = Rule{
	Code:        RedundantParensCode,
	Name:        "redundantParens",
	Severity:    m.SeveritySuggestion,
	Description: "Parentheses around an if, for or switch header or a returned value",
	FixNames:    []string{"removeRedundantParens"},
	Check:       checkRedundantParens,
}

func checkRedundantParens(ctx *Context, n ast.Node) []Finding {
	var exprs []ast.Expr

	switch stmt := n.(type) {
	case *ast.IfStmt:
		exprs = append(exprs, stmt.Cond)
	case *ast.ForStmt:
		exprs = append(exprs, stmt.Cond)
	case *ast.SwitchStmt:
		exprs = append(exprs, stmt.Tag)
	case *ast.ReturnStmt:
		exprs = append(exprs, stmt.Results...)
	default:
		return nil
	}

	var findings []Finding

	for _, expr := range exprs {
		paren, ok := expr.(*ast.ParenExpr)
		if !ok || containsCompositeLit(paren.X) {
			continue
		}

		findings = append(findings, Finding{
			Problem: ctx.problem(RedundantParensCode, m.SeveritySuggestion, paren, "Redundant parentheses"),
			Fixes:   []m.Fix{ctx.removeParens(paren)},
		})
	}

	return findings
}

// removeParens deletes both parentheses. An opening parenthesis glued to the
// previous token becomes a space so `return(x)` turns into `return x`.
func (c *Context) removeParens(paren *ast.ParenExpr) m.Fix {
	lparen, rparen := c.offset(paren.Lparen), c.offset(paren.Rparen)

	opening := ""
	if lparen > 0 && !isSpace(c.Content[lparen-1]) {
		opening = " "
	}

	return m.Fix{
		Name:        "removeRedundantParens",
		Description: "Remove parentheses",
		Changes: []m.FileChange{{
			File: c.Path,
			Patches: []m.Patch{
				{Start: lparen, Length: 1, NewText: opening},
				{Start: rparen, Length: 1, NewText: ""},
			},
		}},
	}
}

// containsCompositeLit reports composite literals, which need the parentheses
// inside statement headers.
func containsCompositeLit(expr ast.Expr) bool {
	found := false

	ast.Inspect(expr, func(n ast.Node) bool {
		if _, ok := n.(*ast.CompositeLit); ok {
			found = true
		}

		return !found
	})

	return found
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
