package domain

import (
	"sort"
	"time"

	m "fixpass.dev/pkg/fixpass/internal/model"
	"fixpass.dev/pkg/fixpass/pkg"
)

// fixTallies counts applied fixes per (fix name, code) from the run journal.
func fixTallies(journal pkg.Journal[m.AppliedFix]) ([]m.FixTally, error) {
	type key struct {
		name string
		code int
	}

	counts := make(map[key]int)

	err := journal.Range(func(_ uint64, applied m.AppliedFix) error {
		counts[key{name: applied.FixName, code: applied.Code}]++
		return nil
	})
	if err != nil {
		return nil, err
	}

	tallies := make([]m.FixTally, 0, len(counts))
	for k, count := range counts {
		tallies = append(tallies, m.FixTally{FixName: k.name, Code: k.code, Count: count})
	}

	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].Count != tallies[j].Count {
			return tallies[i].Count > tallies[j].Count
		}

		return tallies[i].FixName < tallies[j].FixName
	})

	return tallies, nil
}

// newRunReport summarises a convergence result.
func newRunReport(id string, startedAt time.Time, root m.Path, oracle string, result m.ConvergeResult) m.RunReport {
	report := m.RunReport{
		ID:        id,
		StartedAt: startedAt,
		Project:   root,
		Oracle:    oracle,
		State:     result.State,
		Passes:    len(result.Passes),
		Conflicts: result.Conflicts,
	}

	// diagnostics of later passes are leftovers of the first one
	if len(result.Passes) > 0 {
		report.Diagnostics = result.Passes[0].Stats.Diagnostics
	}

	for _, pass := range result.Passes {
		report.Applied += pass.Stats.Applied
		report.Skipped += pass.Stats.Skipped
	}

	for path := range result.ChangedFiles {
		report.ChangedFiles = append(report.ChangedFiles, path)
	}

	sort.Slice(report.ChangedFiles, func(i, j int) bool {
		return report.ChangedFiles[i] < report.ChangedFiles[j]
	})

	if result.State == m.StatePassLimitReached {
		for _, file := range SortedFiles(result.Remaining) {
			report.Unresolved = append(report.Unresolved, m.FilePatches{File: file, Patches: result.Remaining[file]})
		}
	}

	report.Pending = result.Pending

	return report
}
