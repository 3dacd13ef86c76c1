package model

// Patch is a single text replacement expressed in byte offsets of the original text.
type Patch struct {
	Start   int
	Length  int
	NewText string
}

// End returns the offset just past the replaced span.
func (p Patch) End() int {
	return p.Start + p.Length
}

// SameSpan reports whether both patches replace exactly the same span.
func (p Patch) SameSpan(other Patch) bool {
	return p.Start == other.Start && p.Length == other.Length
}

// FileChange groups the patches a fix applies to one file.
type FileChange struct {
	File    Path
	Patches []Patch
}

// Fix is a named remedy for a Problem.
type Fix struct {
	Name        string
	Description string
	Changes     []FileChange

	// Commands are follow-up actions the oracle attached to the fix. They are
	// reported but never executed.
	Commands []string
}

// HasEdits reports whether at least one change set carries a patch.
func (f Fix) HasEdits() bool {
	for _, change := range f.Changes {
		if len(change.Patches) > 0 {
			return true
		}
	}

	return false
}

// TargetFile returns the file of the first change set.
func (f Fix) TargetFile() Path {
	if len(f.Changes) == 0 {
		return ""
	}

	return f.Changes[0].File
}

// Patches returns the patches of the first change set.
func (f Fix) Patches() []Patch {
	if len(f.Changes) == 0 {
		return nil
	}

	return f.Changes[0].Patches
}

// Equal reports structural equality of two fixes.
func (f Fix) Equal(other Fix) bool {
	if f.Name != other.Name || f.Description != other.Description {
		return false
	}

	if len(f.Changes) != len(other.Changes) || len(f.Commands) != len(other.Commands) {
		return false
	}

	for i := range f.Changes {
		if f.Changes[i].File != other.Changes[i].File {
			return false
		}

		if !PatchesEqual(f.Changes[i].Patches, other.Changes[i].Patches) {
			return false
		}
	}

	for i := range f.Commands {
		if f.Commands[i] != other.Commands[i] {
			return false
		}
	}

	return true
}

// PatchesEqual compares two patch lists element by element.
func PatchesEqual(a, b []Patch) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// FixCandidate pairs a Fix with the Problem it remedies.
type FixCandidate struct {
	Fix     Fix
	Problem Problem
}

// FileEditSet maps a file to the patches accepted for it.
type FileEditSet map[Path][]Patch
