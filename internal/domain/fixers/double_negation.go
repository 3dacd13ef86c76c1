package fixers

import (
	"go/ast"
	"go/token"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

var doubleNegationRule = Rule{
	Code:        DoubleNegationCode,
	Name:        "doubleNegation",
	Severity:    m.SeverityWarning,
	Description: "Double negation of a boolean expression",
	FixNames:    []string{"removeDoubleNegation"},
	Check:       checkDoubleNegation,
}

func checkDoubleNegation(ctx *Context, n ast.Node) []Finding {
	outer, ok := n.(*ast.UnaryExpr)
	if !ok || outer.Op != token.NOT {
		return nil
	}

	inner, ok := outer.X.(*ast.UnaryExpr)
	if !ok || inner.Op != token.NOT {
		return nil
	}

	replacement := ctx.text(inner.X)

	return []Finding{{
		Problem: ctx.problem(DoubleNegationCode, m.SeverityWarning, outer, "Double negation has no effect"),
		Fixes:   []m.Fix{ctx.replaceNode("removeDoubleNegation", "Remove double negation", outer, replacement)},
	}}
}
