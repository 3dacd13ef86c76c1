package fixers

import (
	"fmt"
	"go/ast"
	"go/token"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

var incrementAssignRule = Rule{
	Code:        IncrementAssignCode,
	Name:        "incrementAssign",
	Severity:    m.SeveritySuggestion,
	Description: "Assignment of a variable plus or minus one to itself",
	FixNames:    []string{"useIncDecStatement", "useCompoundAssignment"},
	Check:       checkIncrementAssign,
}

func checkIncrementAssign(ctx *Context, n ast.Node) []Finding {
	assign, ok := n.(*ast.AssignStmt)
	if !ok || assign.Tok != token.ASSIGN || len(assign.Lhs) != 1 || len(assign.Rhs) != 1 {
		return nil
	}

	sum, ok := assign.Rhs[0].(*ast.BinaryExpr)
	if !ok || (sum.Op != token.ADD && sum.Op != token.SUB) {
		return nil
	}

	one, ok := sum.Y.(*ast.BasicLit)
	if !ok || one.Kind != token.INT || one.Value != "1" {
		return nil
	}

	target := ctx.text(assign.Lhs[0])
	if ctx.text(sum.X) != target {
		return nil
	}

	incDec, compound := target+"++", target+" += 1"
	if sum.Op == token.SUB {
		incDec, compound = target+"--", target+" -= 1"
	}

	message := fmt.Sprintf("Assignment to %s can be simplified", target)

	return []Finding{{
		Problem: ctx.problem(IncrementAssignCode, m.SeveritySuggestion, assign, message),
		Fixes: []m.Fix{
			ctx.replaceNode("useIncDecStatement", "Replace with "+incDec, assign, incDec),
			ctx.replaceNode("useCompoundAssignment", "Replace with "+compound, assign, compound),
		},
	}}
}
