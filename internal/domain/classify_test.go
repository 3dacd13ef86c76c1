package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

func TestClassifyRun(t *testing.T) {
	patch := m.Patch{Start: 10, Length: 2, NewText: "x"}

	tests := []struct {
		name       string
		candidates []m.FixCandidate
		kind       RunKind
		length     int
	}{
		{
			name:   "empty",
			kind:   RunSingle,
			length: 0,
		},
		{
			name: "same problem",
			candidates: []m.FixCandidate{
				candidate("a", problemAt("/p/a.go", 1, 10, 2, "m"), patch),
				candidate("b", problemAt("/p/a.go", 1, 10, 2, "m"), m.Patch{Start: 10, Length: 2, NewText: "y"}),
				candidate("c", problemAt("/p/a.go", 1, 10, 2, "m"), m.Patch{Start: 0, Length: 1}),
				candidate("d", problemAt("/p/a.go", 1, 40, 2, "m"), m.Patch{Start: 40, Length: 1}),
			},
			kind:   RunSameProblem,
			length: 3,
		},
		{
			name: "same line",
			candidates: []m.FixCandidate{
				candidate("a", problemAt("/p/a.go", 1, 10, 2, "first"), patch),
				candidate("a", problemAt("/p/a.go", 2, 12, 2, "second"), patch),
			},
			kind:   RunSameLine,
			length: 2,
		},
		{
			name: "same span",
			candidates: []m.FixCandidate{
				candidate("a", problemAt("/p/a.go", 1, 10, 2, "m"), patch),
				candidate("b", problemAt("/p/a.go", 1, 11, 1, "m"), m.Patch{Start: 10, Length: 2, NewText: "y"}),
			},
			kind:   RunSameSpan,
			length: 2,
		},
		{
			name: "same span with same text is not a conflict",
			candidates: []m.FixCandidate{
				candidate("a", problemAt("/p/a.go", 1, 10, 2, "m"), patch),
				candidate("b", problemAt("/p/a.go", 1, 11, 1, "m"), patch),
			},
			kind:   RunSingle,
			length: 1,
		},
		{
			name: "same problem wins over same span",
			candidates: []m.FixCandidate{
				candidate("a", problemAt("/p/a.go", 1, 10, 2, "m"), patch),
				candidate("b", problemAt("/p/a.go", 1, 10, 2, "m"), m.Patch{Start: 10, Length: 2, NewText: "y"}),
			},
			kind:   RunSameProblem,
			length: 2,
		},
		{
			name: "different files",
			candidates: []m.FixCandidate{
				candidate("a", problemAt("/p/a.go", 1, 10, 2, "first"), patch),
				candidate("a", problemAt("/p/b.go", 2, 10, 2, "second"), patch),
			},
			kind:   RunSingle,
			length: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := ClassifyRun(tt.candidates)

			assert.Equal(t, tt.kind, run.Kind)
			assert.Len(t, run.Candidates, tt.length)
		})
	}
}

func TestClassify(t *testing.T) {
	candidates := []m.FixCandidate{
		candidate("a", problemAt("/p/a.go", 1, 0, 1, "m"), m.Patch{Start: 0, Length: 1, NewText: "x"}),
		candidate("b", problemAt("/p/a.go", 1, 0, 1, "m"), m.Patch{Start: 0, Length: 1, NewText: "y"}),
		candidate("c", problemAt("/p/a.go", 2, 5, 1, "m"), m.Patch{Start: 5, Length: 1, NewText: "z"}),
	}

	runs := Classify(candidates)

	require.Len(t, runs, 2)
	assert.Equal(t, RunSameProblem, runs[0].Kind)
	assert.Len(t, runs[0].Candidates, 2)
	assert.Equal(t, RunSingle, runs[1].Kind)
	assert.Equal(t, "c", runs[1].Candidates[0].Fix.Name)
}

func TestRemoveMultipleFixesPerProblem(t *testing.T) {
	candidates := []m.FixCandidate{
		candidate("a", problemAt("/p/a.go", 1, 0, 1, "m"), m.Patch{Start: 0, Length: 1, NewText: "x"}),
		candidate("b", problemAt("/p/a.go", 1, 0, 1, "m"), m.Patch{Start: 0, Length: 1, NewText: "y"}),
		candidate("c", problemAt("/p/a.go", 2, 5, 1, "m"), m.Patch{Start: 5, Length: 1, NewText: "z"}),
		candidate("d", problemAt("/p/a.go", 1, 0, 1, "m"), m.Patch{Start: 0, Length: 1, NewText: "w"}),
	}

	kept := RemoveMultipleFixesPerProblem(candidates)

	names := make([]string, 0, len(kept))
	for _, c := range kept {
		names = append(names, c.Fix.Name)
	}

	assert.Equal(t, []string{"a", "c", "d"}, names)
}

func TestRemoveDuplicatedFixes(t *testing.T) {
	patch := m.Patch{Start: 0, Length: 1, NewText: "x"}
	first := candidate("a", problemAt("/p/a.go", 1, 0, 1, "m"), patch)
	duplicate := candidate("a", problemAt("/p/a.go", 2, 3, 1, "m"), patch)
	otherMessage := candidate("a", problemAt("/p/a.go", 1, 0, 1, "other"), patch)

	kept := RemoveDuplicatedFixes([]m.FixCandidate{first, duplicate, otherMessage})

	assert.Equal(t, []m.FixCandidate{first, otherMessage}, kept)
}

func TestWorkQueue(t *testing.T) {
	candidates := []m.FixCandidate{
		candidate("a", problemAt("/p/a.go", 1, 0, 1, "m"), m.Patch{Start: 0, Length: 1}),
		candidate("b", problemAt("/p/a.go", 2, 2, 1, "m"), m.Patch{Start: 2, Length: 1}),
		candidate("c", problemAt("/p/a.go", 1, 4, 1, "m"), m.Patch{Start: 4, Length: 1}),
	}

	queue := newWorkQueue(candidates)
	require.Equal(t, 3, queue.Len())
	assert.Equal(t, "a", queue.Front().Candidates[0].Fix.Name)

	taken := queue.Take(func(c m.FixCandidate) bool { return c.Problem.Code == 1 })
	require.Len(t, taken, 2)
	assert.Equal(t, "a", taken[0].Fix.Name)
	assert.Equal(t, "c", taken[1].Fix.Name)

	assert.Equal(t, 1, queue.Len())
	queue.Drop(5)
	assert.Equal(t, 0, queue.Len())

	// the caller's slice is untouched
	assert.Equal(t, "a", candidates[0].Fix.Name)
	assert.Len(t, candidates, 3)
}
