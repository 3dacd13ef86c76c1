package domain

import (
	m "fixpass.dev/pkg/fixpass/internal/model"
)

// RunKind is the conflict shape of a run of adjacent candidates.
type RunKind int

// Available RunKind values, listed by classification precedence.
const (
	RunSingle RunKind = iota
	RunSameProblem
	RunSameLine
	RunSameSpan
)

func (k RunKind) String() string {
	switch k {
	case RunSameProblem:
		return "same problem"
	case RunSameLine:
		return "same line"
	case RunSameSpan:
		return "same span"
	default:
		return "single"
	}
}

// Run is a maximal group of adjacent candidates sharing one conflict shape.
type Run struct {
	Kind       RunKind
	Candidates []m.FixCandidate
}

// ClassifyRun classifies the run that starts at the first candidate. Same-problem
// runs take precedence over same-line runs, which take precedence over same-span
// runs.
func ClassifyRun(candidates []m.FixCandidate) Run {
	if len(candidates) == 0 {
		return Run{Kind: RunSingle}
	}

	checks := []struct {
		kind RunKind
		same func(head, next m.FixCandidate) bool
	}{
		{RunSameProblem, sameProblem},
		{RunSameLine, sameLine},
		{RunSameSpan, sameSpan},
	}

	for _, check := range checks {
		n := runLength(candidates, check.same)
		if n > 1 {
			return Run{Kind: check.kind, Candidates: candidates[:n]}
		}
	}

	return Run{Kind: RunSingle, Candidates: candidates[:1]}
}

// Classify partitions candidates into consecutive runs.
func Classify(candidates []m.FixCandidate) []Run {
	var runs []Run

	for len(candidates) > 0 {
		run := ClassifyRun(candidates)
		runs = append(runs, run)
		candidates = candidates[len(run.Candidates):]
	}

	return runs
}

func runLength(candidates []m.FixCandidate, same func(head, next m.FixCandidate) bool) int {
	n := 1
	for n < len(candidates) && same(candidates[0], candidates[n]) {
		n++
	}

	return n
}

func sameProblem(head, next m.FixCandidate) bool {
	return head.Problem.SameLocation(next.Problem)
}

func sameLine(head, next m.FixCandidate) bool {
	if head.Problem.Message == next.Problem.Message || head.Problem.Code == next.Problem.Code {
		return false
	}

	if head.Fix.TargetFile() != next.Fix.TargetFile() {
		return false
	}

	return m.PatchesEqual(head.Fix.Patches(), next.Fix.Patches())
}

func sameSpan(head, next m.FixCandidate) bool {
	if head.Problem.Code != next.Problem.Code || head.Fix.TargetFile() != next.Fix.TargetFile() {
		return false
	}

	headPatches, nextPatches := head.Fix.Patches(), next.Fix.Patches()
	if len(headPatches) == 0 || len(nextPatches) == 0 {
		return false
	}

	return headPatches[0].SameSpan(nextPatches[0]) && headPatches[0].NewText != nextPatches[0].NewText
}

// RemoveMultipleFixesPerProblem keeps the first candidate of every same-problem run.
func RemoveMultipleFixesPerProblem(candidates []m.FixCandidate) []m.FixCandidate {
	kept := make([]m.FixCandidate, 0, len(candidates))

	for i := 0; i < len(candidates); {
		n := runLength(candidates[i:], sameProblem)
		kept = append(kept, candidates[i])
		i += n
	}

	return kept
}

// RemoveDuplicatedFixes drops candidates whose fix and problem message equal an
// earlier candidate's.
func RemoveDuplicatedFixes(candidates []m.FixCandidate) []m.FixCandidate {
	kept := make([]m.FixCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		duplicate := false

		for _, seen := range kept {
			if seen.Problem.Message == candidate.Problem.Message && seen.Fix.Equal(candidate.Fix) {
				duplicate = true
				break
			}
		}

		if !duplicate {
			kept = append(kept, candidate)
		}
	}

	return kept
}
