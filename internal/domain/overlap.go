package domain

import (
	"fmt"
	"sort"
	"strings"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

// SortPatches returns a copy of patches ordered by start, shorter spans first on ties.
func SortPatches(patches []m.Patch) []m.Patch {
	sorted := make([]m.Patch, len(patches))
	copy(sorted, patches)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}

		return sorted[i].Length < sorted[j].Length
	})

	return sorted
}

// FilterOverlappingPatches greedily keeps patches that start after the end of the
// last kept one. Patches sharing a span with different text are returned as
// conflicts and none of them is kept. Exact duplicates collapse into one patch.
func FilterOverlappingPatches(file m.Path, patches []m.Patch) ([]m.Patch, []m.Patch, []m.PatchConflict) {
	sorted := SortPatches(patches)

	var (
		kept      []m.Patch
		excess    []m.Patch
		conflicts []m.PatchConflict
	)

	lastEnd := -1

	for i := 0; i < len(sorted); {
		group := sameSpanGroup(sorted, i)
		head := sorted[i]
		i += len(group)

		if head.Start <= lastEnd {
			excess = append(excess, group...)
			continue
		}

		texts := distinctTexts(group)
		if len(texts) > 1 {
			conflicts = append(conflicts, m.PatchConflict{
				File:   file,
				Start:  head.Start,
				Length: head.Length,
				Texts:  texts,
			})

			continue
		}

		kept = append(kept, head)
		lastEnd = head.End()
	}

	return kept, excess, conflicts
}

func sameSpanGroup(sorted []m.Patch, from int) []m.Patch {
	to := from + 1
	for to < len(sorted) && sorted[to].SameSpan(sorted[from]) {
		to++
	}

	return sorted[from:to]
}

func distinctTexts(group []m.Patch) []string {
	texts := make([]string, 0, len(group))
	seen := make(map[string]struct{}, len(group))

	for _, patch := range group {
		if _, ok := seen[patch.NewText]; ok {
			continue
		}

		seen[patch.NewText] = struct{}{}
		texts = append(texts, patch.NewText)
	}

	return texts
}

// ApplyPatches applies non-overlapping patches, sorted by start, from the back of
// the text to the front so earlier offsets stay valid.
func ApplyPatches(text string, patches []m.Patch) (string, error) {
	for i := len(patches) - 1; i >= 0; i-- {
		patch := patches[i]
		if patch.Start < 0 || patch.Length < 0 || patch.End() > len(text) {
			return "", fmt.Errorf("%w: [%d,%d) in text of length %d", ErrPatchOutOfRange, patch.Start, patch.End(), len(text))
		}

		var b strings.Builder

		b.Grow(len(text) - patch.Length + len(patch.NewText))
		b.WriteString(text[:patch.Start])
		b.WriteString(patch.NewText)
		b.WriteString(text[patch.End():])
		text = b.String()
	}

	return text, nil
}

// FileApplyResult is the outcome of resolving and applying the patches of one file.
type FileApplyResult struct {
	NewText   string
	Kept      []m.Patch
	Excess    []m.Patch
	Conflicts []m.PatchConflict
}

// ApplyCodefixesInFile resolves overlaps among patches and applies the survivors to text.
func ApplyCodefixesInFile(file m.Path, text string, patches []m.Patch) (FileApplyResult, error) {
	kept, excess, conflicts := FilterOverlappingPatches(file, patches)

	newText, err := ApplyPatches(text, kept)
	if err != nil {
		return FileApplyResult{}, fmt.Errorf("apply patches to %s: %w", file, err)
	}

	return FileApplyResult{
		NewText:   newText,
		Kept:      kept,
		Excess:    excess,
		Conflicts: conflicts,
	}, nil
}
