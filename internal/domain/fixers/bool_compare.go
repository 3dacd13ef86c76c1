package fixers

import (
	"fmt"
	"go/ast"
	"go/token"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

const (
	trueStr  = "true"
	falseStr = "false"
)

var boolCompareRule = Rule{
	Code:        BoolCompareCode,
	Name:        "boolCompare",
	Severity:    m.SeverityWarning,
	Description: "Comparison with a boolean literal",
	FixNames:    []string{"simplifyBoolCompare"},
	Check:       checkBoolCompare,
}

func checkBoolCompare(ctx *Context, n ast.Node) []Finding {
	expr, ok := n.(*ast.BinaryExpr)
	if !ok || (expr.Op != token.EQL && expr.Op != token.NEQ) {
		return nil
	}

	operand, literal, ok := splitBoolLiteral(expr)
	if !ok {
		return nil
	}

	replacement := ctx.text(operand)
	if (expr.Op == token.EQL) != (literal == trueStr) {
		replacement = "!" + wrapOperand(operand, replacement)
	}

	message := fmt.Sprintf("Redundant comparison with %s", literal)
	description := fmt.Sprintf("Replace with %s", replacement)

	return []Finding{{
		Problem: ctx.problem(BoolCompareCode, m.SeverityWarning, expr, message),
		Fixes:   []m.Fix{ctx.replaceNode("simplifyBoolCompare", description, expr, replacement)},
	}}
}

// splitBoolLiteral returns the non-literal side of a comparison with true or false.
func splitBoolLiteral(expr *ast.BinaryExpr) (ast.Expr, string, bool) {
	left, leftIsLiteral := boolLiteral(expr.X)
	right, rightIsLiteral := boolLiteral(expr.Y)

	switch {
	case leftIsLiteral == rightIsLiteral:
		return nil, "", false
	case rightIsLiteral:
		return expr.X, right, true
	default:
		return expr.Y, left, true
	}
}

func boolLiteral(expr ast.Expr) (string, bool) {
	ident, ok := expr.(*ast.Ident)
	if !ok || (ident.Name != trueStr && ident.Name != falseStr) {
		return "", false
	}

	return ident.Name, true
}

// wrapOperand parenthesises operands that bind looser than a unary operator.
func wrapOperand(operand ast.Expr, text string) string {
	switch operand.(type) {
	case *ast.Ident, *ast.CallExpr, *ast.SelectorExpr, *ast.ParenExpr, *ast.IndexExpr, *ast.UnaryExpr:
		return text
	default:
		return "(" + text + ")"
	}
}
