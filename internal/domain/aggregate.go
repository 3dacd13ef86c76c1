package domain

import (
	"regexp"
	"sort"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

// vendorPathPattern matches third-party directories whose files are never edited.
var vendorPathPattern = regexp.MustCompile(`[\\/](node_modules|vendor)[\\/]`)

// IsVendorPath reports whether path lies inside a vendored dependency tree.
func IsVendorPath(path m.Path) bool {
	return vendorPathPattern.MatchString(string(path))
}

// AggregateEdits collects the patches of accepted candidates per file, each list
// kept in ascending start order. Vendored files are dropped.
func AggregateEdits(candidates []m.FixCandidate) m.FileEditSet {
	edits := make(m.FileEditSet)

	for _, candidate := range candidates {
		for _, change := range candidate.Fix.Changes {
			if len(change.Patches) == 0 || IsVendorPath(change.File) {
				continue
			}

			edits[change.File] = MergeByStart(edits[change.File], sortByStart(change.Patches))
		}
	}

	return edits
}

// MergeByStart merges two start-ordered patch lists. On equal starts the element
// of existing comes first.
func MergeByStart(existing, incoming []m.Patch) []m.Patch {
	merged := make([]m.Patch, 0, len(existing)+len(incoming))

	i, j := 0, 0
	for i < len(existing) && j < len(incoming) {
		if incoming[j].Start < existing[i].Start {
			merged = append(merged, incoming[j])
			j++

			continue
		}

		merged = append(merged, existing[i])
		i++
	}

	merged = append(merged, existing[i:]...)
	merged = append(merged, incoming[j:]...)

	return merged
}

func sortByStart(patches []m.Patch) []m.Patch {
	sorted := make([]m.Patch, len(patches))
	copy(sorted, patches)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	return sorted
}

// SortedFiles returns the files of an edit set in lexical order.
func SortedFiles(edits m.FileEditSet) []m.Path {
	files := make([]m.Path, 0, len(edits))
	for file := range edits {
		files = append(files, file)
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files
}
