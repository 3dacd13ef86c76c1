package model

import "time"

// FilePatches is a serialisable (file, patches) pair.
type FilePatches struct {
	File    Path
	Patches []Patch
}

// PendingFix lists the files a zero-patch fix was proposed for.
type PendingFix struct {
	FixName string
	Files   []Path
}

// FixTally counts how many times a fix was applied in a run.
type FixTally struct {
	FixName string
	Code    int
	Count   int
}

// RunReport is the persisted journal of one fix run.
type RunReport struct {
	ID           string
	StartedAt    time.Time
	Project      Path
	Oracle       string
	State        ConvergenceState
	Passes       int
	Diagnostics  int
	Applied      int
	Skipped      int
	Tallies      []FixTally
	Pending      []PendingFix
	ChangedFiles []Path
	Written      bool
	OutputFolder Path
	Unresolved   []FilePatches
	Conflicts    []PatchConflict
}

// ProblemListing is one row of the list command output.
type ProblemListing struct {
	File     Path     `json:"file" yaml:"file"`
	Line     int      `json:"line" yaml:"line"`
	Column   int      `json:"column" yaml:"column"`
	Code     int      `json:"code" yaml:"code"`
	Severity string   `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
	Fixes    []string `json:"fixes" yaml:"fixes"`
}

// RuleInfo describes a built-in rule.
type RuleInfo struct {
	Code        int
	Name        string
	Severity    Severity
	Description string
	Fixes       []string
}
