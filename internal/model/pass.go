package model

// ChangedFile holds the text of a file before and after the engine edited it.
type ChangedFile struct {
	OriginalText string
	NewText      string
}

// PatchConflict records patches that target the same span with different text.
// None of them is applied.
type PatchConflict struct {
	File   Path
	Start  int
	Length int
	Texts  []string
}

// PassStats counts what happened to the candidates of a single pass.
type PassStats struct {
	Diagnostics int
	Candidates  int
	Accepted    int
	Applied     int
	Skipped     int
	Pending     int
}

// PassResult is the outcome of one pass of the convergence loop.
type PassResult struct {
	Pass         int
	ChangedFiles map[Path]ChangedFile
	Excess       map[Path][]Patch
	Conflicts    []PatchConflict
	Stats        PassStats
}

// Remaining returns the number of excess patches left for a later pass.
func (r PassResult) Remaining() int {
	total := 0
	for _, patches := range r.Excess {
		total += len(patches)
	}

	return total
}

// ConvergenceState is the state of the convergence loop.
type ConvergenceState int

// Available ConvergenceState values.
const (
	StateScanning ConvergenceState = iota
	StateConverged
	StatePassLimitReached
)

func (s ConvergenceState) String() string {
	switch s {
	case StateConverged:
		return "converged"
	case StatePassLimitReached:
		return "pass limit reached"
	default:
		return "scanning"
	}
}

// ConvergeResult is what the convergence loop hands back to its caller.
type ConvergeResult struct {
	State        ConvergenceState
	Passes       []PassResult
	ChangedFiles map[Path]ChangedFile

	// Remaining holds the excess patches of the last pass, keyed by file.
	Remaining map[Path][]Patch
	Conflicts []PatchConflict
	Pending   []PendingFix
}

// RemainingCount returns the number of patches that were never applied.
func (r ConvergeResult) RemainingCount() int {
	total := 0
	for _, patches := range r.Remaining {
		total += len(patches)
	}

	return total
}

// AppliedFix records a fix whose patches were all applied.
type AppliedFix struct {
	Pass        int
	FixName     string
	Description string
	Code        int
	Message     string
	File        Path
	Patches     int
}

// OutputFile pairs a changed project file with the path its new text goes to.
type OutputFile struct {
	Path   Path
	Output Path
	ChangedFile
}
