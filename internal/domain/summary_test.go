package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "fixpass.dev/pkg/fixpass/internal/model"
	"fixpass.dev/pkg/fixpass/pkg"
)

type failingJournal struct {
	pkg.Journal[m.AppliedFix]
}

func (failingJournal) Range(func(uint64, m.AppliedFix) error) error {
	return errors.New("journal corrupted")
}

func TestFixTallies(t *testing.T) {
	journal, err := pkg.NewJournal[m.AppliedFix](t.TempDir())
	require.NoError(t, err)

	t.Cleanup(func() { _ = journal.Remove() })

	for _, applied := range []m.AppliedFix{
		{FixName: "simplifyBoolCompare", Code: 1001},
		{FixName: "removeDoubleNegation", Code: 1002},
		{FixName: "simplifyBoolCompare", Code: 1001},
		{FixName: "addParens", Code: 1004},
	} {
		require.NoError(t, journal.Append(applied))
	}

	tallies, err := fixTallies(journal)
	require.NoError(t, err)

	assert.Equal(t, []m.FixTally{
		{FixName: "simplifyBoolCompare", Code: 1001, Count: 2},
		{FixName: "addParens", Code: 1004, Count: 1},
		{FixName: "removeDoubleNegation", Code: 1002, Count: 1},
	}, tallies)

	_, err = fixTallies(failingJournal{})
	require.Error(t, err)
}

func TestNewRunReport(t *testing.T) {
	startedAt := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	result := m.ConvergeResult{
		State: m.StatePassLimitReached,
		Passes: []m.PassResult{
			{Pass: 1, Stats: m.PassStats{Diagnostics: 5, Accepted: 4, Applied: 3, Skipped: 1}},
			{Pass: 2, Stats: m.PassStats{Diagnostics: 2, Accepted: 1, Applied: 1, Skipped: 1}},
		},
		ChangedFiles: map[m.Path]m.ChangedFile{"/p/b.go": {}, "/p/a.go": {}},
		Remaining:    map[m.Path][]m.Patch{"/p/a.go": {{Start: 3, Length: 1}}},
		Conflicts:    []m.PatchConflict{{File: "/p/a.go", Start: 9, Length: 1, Texts: []string{"x", "y"}}},
		Pending:      []m.PendingFix{{FixName: "addTestFile", Files: []m.Path{"/p/a.go"}}},
	}

	report := newRunReport("run-1", startedAt, "/p", "builtin", result)

	assert.Equal(t, m.RunReport{
		ID:           "run-1",
		StartedAt:    startedAt,
		Project:      "/p",
		Oracle:       "builtin",
		State:        m.StatePassLimitReached,
		Passes:       2,
		Diagnostics:  5,
		Applied:      4,
		Skipped:      2,
		Pending:      result.Pending,
		ChangedFiles: []m.Path{"/p/a.go", "/p/b.go"},
		Unresolved:   []m.FilePatches{{File: "/p/a.go", Patches: []m.Patch{{Start: 3, Length: 1}}}},
		Conflicts:    result.Conflicts,
	}, report)

	result.State = m.StateConverged
	assert.Empty(t, newRunReport("run-2", startedAt, "/p", "builtin", result).Unresolved)
}
