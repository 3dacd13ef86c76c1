package domain

import (
	"fmt"
	"strings"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

// FilterProblemsByCode keeps problems whose code is listed. With no codes every
// problem is kept. The summary has one line per requested code.
func FilterProblemsByCode(problems [][]m.Problem, codes []int) ([][]m.Problem, string) {
	if len(codes) == 0 {
		return compactProblems(problems), fmt.Sprintf("Found %d diagnostics in %d files", countProblems(problems), countFiles(problems))
	}

	wanted := make(map[int]struct{}, len(codes))
	for _, code := range codes {
		wanted[code] = struct{}{}
	}

	counts := make(map[int]int, len(codes))
	filtered := make([][]m.Problem, 0, len(problems))

	for _, group := range problems {
		kept := make([]m.Problem, 0, len(group))

		for _, problem := range group {
			if _, ok := wanted[problem.Code]; !ok {
				continue
			}

			counts[problem.Code]++
			kept = append(kept, problem)
		}

		if len(kept) > 0 {
			filtered = append(filtered, kept)
		}
	}

	lines := make([]string, 0, len(codes))

	for _, code := range codes {
		if counts[code] == 0 {
			lines = append(lines, fmt.Sprintf("No diagnostics found with code %d", code))
			continue
		}

		lines = append(lines, fmt.Sprintf("Found %d diagnostics with code %d", counts[code], code))
	}

	return filtered, strings.Join(lines, "\n")
}

// FilterProblemsByFiles keeps problems located in one of files.
func FilterProblemsByFiles(problems [][]m.Problem, files []m.Path) ([][]m.Problem, string) {
	if len(files) == 0 {
		return problems, ""
	}

	allowed := make(map[m.Path]struct{}, len(files))
	for _, file := range files {
		allowed[file] = struct{}{}
	}

	filtered := make([][]m.Problem, 0, len(problems))

	for _, group := range problems {
		kept := make([]m.Problem, 0, len(group))

		for _, problem := range group {
			if _, ok := allowed[problem.File()]; ok {
				kept = append(kept, problem)
			}
		}

		if len(kept) > 0 {
			filtered = append(filtered, kept)
		}
	}

	return filtered, fmt.Sprintf("Found %d diagnostics for the given files", countProblems(filtered))
}

// FilterCandidatesByName keeps candidates whose fix name is listed. With no names
// every candidate is kept.
func FilterCandidatesByName(candidates []m.FixCandidate, names []string) ([]m.FixCandidate, string) {
	if len(names) == 0 {
		return candidates, fmt.Sprintf("Found %d codefixes", len(candidates))
	}

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	counts := make(map[string]int, len(names))
	filtered := make([]m.FixCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		if _, ok := wanted[candidate.Fix.Name]; !ok {
			continue
		}

		counts[candidate.Fix.Name]++
		filtered = append(filtered, candidate)
	}

	lines := make([]string, 0, len(names))

	for _, name := range names {
		if counts[name] == 0 {
			lines = append(lines, fmt.Sprintf("No codefixes found with name %s", name))
			continue
		}

		lines = append(lines, fmt.Sprintf("Found %d codefixes with name %s", counts[name], name))
	}

	return filtered, strings.Join(lines, "\n")
}

func compactProblems(problems [][]m.Problem) [][]m.Problem {
	compacted := make([][]m.Problem, 0, len(problems))

	for _, group := range problems {
		if len(group) > 0 {
			compacted = append(compacted, group)
		}
	}

	return compacted
}

func countProblems(problems [][]m.Problem) int {
	total := 0
	for _, group := range problems {
		total += len(group)
	}

	return total
}

func countFiles(problems [][]m.Problem) int {
	files := 0

	for _, group := range problems {
		if len(group) > 0 {
			files++
		}
	}

	return files
}
