package fixers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDoubleNegation(t *testing.T) {
	src := "package p\n\nfunc f(ok bool) bool {\n\treturn !!ok\n}\n"
	ctx := parseSource(t, "p.go", src)

	findings := findingsWithCode(Run(ctx), DoubleNegationCode)
	require.Len(t, findings, 1)
	assert.Equal(t, "removeDoubleNegation", findings[0].Fixes[0].Name)
	assert.Equal(t, "Double negation has no effect", findings[0].Problem.Message)
	assert.Contains(t, applyFirst(ctx, findings[0].Fixes[0]), "return ok\n")
}

func TestCheckDoubleNegation_Chain(t *testing.T) {
	ctx := parseExample(t, "negation")

	findings := findingsWithCode(Run(ctx), DoubleNegationCode)
	// !!ready, then !!!!ready reported at three nested positions
	require.Len(t, findings, 4)

	chain := findings[1:]
	assert.Equal(t, "!!ready", chain[0].Fixes[0].Patches()[0].NewText)
	assert.Equal(t, "!ready", chain[1].Fixes[0].Patches()[0].NewText)
	assert.Equal(t, "ready", chain[2].Fixes[0].Patches()[0].NewText)
	assert.Equal(t, chain[0].Problem.Location.Start+1, chain[1].Problem.Location.Start)
}

func TestCheckDoubleNegation_SingleNegationIgnored(t *testing.T) {
	src := "package p\n\nfunc f(ok bool) bool {\n\treturn !ok\n}\n"
	ctx := parseSource(t, "p.go", src)

	assert.Empty(t, findingsWithCode(Run(ctx), DoubleNegationCode))
}
