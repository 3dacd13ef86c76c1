package domain

import (
	"sort"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

// DropVendorProblems removes problems located in vendored files.
func DropVendorProblems(problems [][]m.Problem) [][]m.Problem {
	kept := make([][]m.Problem, 0, len(problems))

	for _, group := range problems {
		filtered := make([]m.Problem, 0, len(group))

		for _, problem := range group {
			if problem.Location != nil && IsVendorPath(problem.Location.File) {
				continue
			}

			filtered = append(filtered, problem)
		}

		if len(filtered) > 0 {
			kept = append(kept, filtered)
		}
	}

	return kept
}

// SplitCandidates separates candidates that carry patches from the zero-patch
// ones. Candidates targeting vendored files are dropped.
func SplitCandidates(candidates []m.FixCandidate) ([]m.FixCandidate, []m.FixCandidate) {
	var withEdits, noEdits []m.FixCandidate

	for _, candidate := range candidates {
		if IsVendorPath(candidate.Fix.TargetFile()) || IsVendorPath(candidate.Problem.File()) {
			continue
		}

		if candidate.Fix.HasEdits() {
			withEdits = append(withEdits, candidate)
			continue
		}

		noEdits = append(noEdits, candidate)
	}

	return withEdits, noEdits
}

// PendingBucket groups fixes that carry no patches by fix name and file.
type PendingBucket map[string]map[m.Path]struct{}

// NewPendingBucket returns an empty bucket.
func NewPendingBucket() PendingBucket {
	return make(PendingBucket)
}

// Add records zero-patch candidates under their fix name.
func (b PendingBucket) Add(candidates ...m.FixCandidate) {
	for _, candidate := range candidates {
		file := candidate.Problem.File()
		if file == "" {
			file = candidate.Fix.TargetFile()
		}

		files, ok := b[candidate.Fix.Name]
		if !ok {
			files = make(map[m.Path]struct{})
			b[candidate.Fix.Name] = files
		}

		files[file] = struct{}{}
	}
}

// Sorted returns the bucket ordered by fix name with sorted file lists.
func (b PendingBucket) Sorted() []m.PendingFix {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}

	sort.Strings(names)

	pending := make([]m.PendingFix, 0, len(names))

	for _, name := range names {
		files := make([]m.Path, 0, len(b[name]))
		for file := range b[name] {
			files = append(files, file)
		}

		sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })
		pending = append(pending, m.PendingFix{FixName: name, Files: files})
	}

	return pending
}
