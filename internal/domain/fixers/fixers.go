// Package fixers holds the built-in Go rules. Every rule inspects AST nodes and
// reports problems together with the fixes that remedy them.
package fixers

import (
	"go/ast"
	"go/token"
	"sort"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

// Context is the parsed file a rule runs over.
type Context struct {
	Fset    *token.FileSet
	File    *ast.File
	Path    m.Path
	Content []byte

	// HasTestFile is true when the snapshot holds the file's _test.go sibling.
	HasTestFile bool
}

// Finding is a problem and the fixes offered for it.
type Finding struct {
	Problem m.Problem
	Fixes   []m.Fix
}

// Rule is a built-in check.
type Rule struct {
	Code        int
	Name        string
	Severity    m.Severity
	Description string
	FixNames    []string
	Check       func(ctx *Context, n ast.Node) []Finding
}

// SyntaxErrorCode is reported for files that do not parse.
const SyntaxErrorCode = 1000

// Rule codes.
const (
	BoolCompareCode     = 1001
	DoubleNegationCode  = 1002
	IncrementAssignCode = 1003
	RedundantParensCode = 1004
	MissingTestFileCode = 1005
)

// Catalog returns every built-in rule ordered by code.
func Catalog() []Rule {
	return []Rule{
		boolCompareRule,
		doubleNegationRule,
		incrementAssignRule,
		redundantParensRule,
		missingTestFileRule,
	}
}

// Info describes the catalogue, including the syntax error pseudo rule.
func Info() []m.RuleInfo {
	infos := []m.RuleInfo{{
		Code:        SyntaxErrorCode,
		Name:        "syntaxError",
		Severity:    m.SeverityError,
		Description: "File does not parse; reported without fixes",
	}}

	for _, rule := range Catalog() {
		infos = append(infos, m.RuleInfo{
			Code:        rule.Code,
			Name:        rule.Name,
			Severity:    rule.Severity,
			Description: rule.Description,
			Fixes:       rule.FixNames,
		})
	}

	return infos
}

// Run applies every rule to every node of the file. Findings are ordered by
// problem start, then by rule code.
func Run(ctx *Context) []Finding {
	rules := Catalog()

	var findings []Finding

	ast.Inspect(ctx.File, func(n ast.Node) bool {
		if n == nil {
			return true
		}

		for _, rule := range rules {
			findings = append(findings, rule.Check(ctx, n)...)
		}

		return true
	})

	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i].Problem.Location, findings[j].Problem.Location
		if a.Start != b.Start {
			return a.Start < b.Start
		}

		return findings[i].Problem.Code < findings[j].Problem.Code
	})

	return findings
}

func (c *Context) offset(pos token.Pos) int {
	return c.Fset.Position(pos).Offset
}

func (c *Context) text(n ast.Node) string {
	return string(c.Content[c.offset(n.Pos()):c.offset(n.End())])
}

func (c *Context) problem(code int, severity m.Severity, n ast.Node, message string) m.Problem {
	start := c.offset(n.Pos())

	return m.Problem{
		Code:     code,
		Message:  message,
		Severity: severity,
		Location: &m.Location{
			File:   c.Path,
			Start:  start,
			Length: c.offset(n.End()) - start,
		},
	}
}

// replaceNode builds a fix that replaces the whole source of n.
func (c *Context) replaceNode(name, description string, n ast.Node, newText string) m.Fix {
	start := c.offset(n.Pos())

	return m.Fix{
		Name:        name,
		Description: description,
		Changes: []m.FileChange{{
			File: c.Path,
			Patches: []m.Patch{{
				Start:   start,
				Length:  c.offset(n.End()) - start,
				NewText: newText,
			}},
		}},
	}
}
