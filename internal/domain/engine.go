package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

// DefaultMaxPasses bounds the convergence loop when no limit is configured.
const DefaultMaxPasses = 5

// EngineOptions restricts what a convergence run fixes.
type EngineOptions struct {
	Root       m.Path
	ErrorCodes []int
	FixNames   []string

	// Files are absolute paths; empty means every file of the project.
	Files     []m.Path
	MaxPasses int
}

// PassLogger receives the status lines of a run.
type PassLogger interface {
	Log(ctx context.Context, message string)
}

// Recorder receives every fix accepted by the arbiter.
type Recorder interface {
	Append(item m.AppliedFix) error
}

// Engine drives passes until the edit set converges.
type Engine interface {
	// Converge returns the accumulated result even when it fails, so callers
	// can report what was computed before the error.
	Converge(ctx context.Context, opts EngineOptions) (m.ConvergeResult, error)
}

type engine struct {
	loader   ProjectLoader
	oracle   Oracle
	arbiter  Arbiter
	logger   PassLogger
	recorder Recorder
}

// NewEngine creates an Engine. recorder may be nil.
func NewEngine(loader ProjectLoader, oracle Oracle, arbiter Arbiter, logger PassLogger, recorder Recorder) Engine {
	return &engine{
		loader:   loader,
		oracle:   oracle,
		arbiter:  arbiter,
		logger:   logger,
		recorder: recorder,
	}
}

func (e *engine) Converge(ctx context.Context, opts EngineOptions) (m.ConvergeResult, error) {
	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	result := m.ConvergeResult{
		State:        m.StateScanning,
		ChangedFiles: make(map[m.Path]m.ChangedFile),
	}
	pending := NewPendingBucket()

	for pass := 1; result.State == m.StateScanning; pass++ {
		project, err := e.loader.Load(ctx, opts.Root, result.ChangedFiles)
		if err != nil {
			slog.Error("Failed to build project snapshot", "root", opts.Root, "pass", pass, "error", err)
			result.Pending = pending.Sorted()

			return result, fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
		}

		if pass == 1 {
			if err := validateFiles(project, opts.Files); err != nil {
				return result, err
			}

			e.log(ctx, "Using oracle "+e.oracle.Name())
		} else {
			e.log(ctx, "Overlapping changes detected. Performing additional pass...")
		}

		passResult, err := e.runPass(ctx, pass, project, opts, pending)
		if err != nil {
			result.Pending = pending.Sorted()
			return result, err
		}

		result.Passes = append(result.Passes, passResult)
		result.Remaining = passResult.Excess
		result.Conflicts = mergeConflicts(result.Conflicts, passResult.Conflicts)
		mergeChangedFiles(result.ChangedFiles, passResult.ChangedFiles)

		remaining := passResult.Remaining()

		switch {
		case remaining == 0:
			result.State = m.StateConverged
		case pass >= maxPasses:
			e.log(ctx, fmt.Sprintf("%d changes remaining", remaining))
			result.State = m.StatePassLimitReached
		default:
			e.log(ctx, fmt.Sprintf("%d changes remaining", remaining))
		}
	}

	result.Pending = pending.Sorted()

	return result, nil
}

func (e *engine) runPass(ctx context.Context, pass int, project *Project, opts EngineOptions, pending PendingBucket) (m.PassResult, error) {
	result := m.PassResult{
		Pass:         pass,
		ChangedFiles: make(map[m.Path]m.ChangedFile),
		Excess:       make(map[m.Path][]m.Patch),
	}

	candidates, err := e.collectCandidates(ctx, project, opts, &result.Stats)
	if err != nil {
		return result, err
	}

	withEdits, noEdits := SplitCandidates(candidates)
	pending.Add(noEdits...)
	result.Stats.Candidates = len(candidates)
	result.Stats.Pending = len(noEdits)

	arbitration, err := e.arbiter.Arbitrate(ctx, project, withEdits)
	if err != nil {
		slog.Error("Arbitration failed", "pass", pass, "error", err)
		return result, err
	}

	result.Stats.Accepted = len(arbitration.Accepted)
	result.Stats.Skipped = arbitration.Skipped

	edits := AggregateEdits(arbitration.Accepted)
	kept := make(keptPatches)

	for _, file := range SortedFiles(edits) {
		text, ok := project.Text(file)
		if !ok {
			slog.Error("Accepted fix edits a file outside the snapshot", "file", file, "pass", pass)
			return result, fmt.Errorf("%w: file %s not found in project", ErrFileNotInProject, file)
		}

		applied, err := ApplyCodefixesInFile(file, text, edits[file])
		if err != nil {
			slog.Error("Failed to apply patches", "file", file, "pass", pass, "error", err)
			return result, err
		}

		if applied.NewText != text {
			result.ChangedFiles[file] = m.ChangedFile{OriginalText: text, NewText: applied.NewText}
		}

		if len(applied.Excess) > 0 {
			result.Excess[file] = applied.Excess
		}

		result.Conflicts = append(result.Conflicts, applied.Conflicts...)
		kept.add(file, applied.Kept)
	}

	for _, candidate := range arbitration.Accepted {
		if !kept.claim(candidate) {
			continue
		}

		result.Stats.Applied++
		e.record(pass, candidate)
	}

	return result, nil
}

// keptPatches counts the patches that survived overlap resolution, per file.
type keptPatches map[m.Path]map[m.Patch]int

func (k keptPatches) add(file m.Path, patches []m.Patch) {
	if len(patches) == 0 {
		return
	}

	if k[file] == nil {
		k[file] = make(map[m.Patch]int, len(patches))
	}

	for _, patch := range patches {
		k[file][patch]++
	}
}

// claim reports whether every patch of candidate was kept and consumes them, so
// a kept patch is credited to one candidate only.
func (k keptPatches) claim(candidate m.FixCandidate) bool {
	need := make(map[m.Path]map[m.Patch]int)

	for _, change := range candidate.Fix.Changes {
		if IsVendorPath(change.File) {
			continue
		}

		for _, patch := range change.Patches {
			if need[change.File] == nil {
				need[change.File] = make(map[m.Patch]int)
			}

			need[change.File][patch]++
		}
	}

	if len(need) == 0 {
		return false
	}

	for file, patches := range need {
		for patch, count := range patches {
			if k[file][patch] < count {
				return false
			}
		}
	}

	for file, patches := range need {
		for patch, count := range patches {
			k[file][patch] -= count
		}
	}

	return true
}

func (e *engine) collectCandidates(ctx context.Context, project *Project, opts EngineOptions, stats *m.PassStats) ([]m.FixCandidate, error) {
	problems, err := e.oracle.Problems(ctx, project)
	if err != nil {
		slog.Error("Oracle failed to report problems", "oracle", e.oracle.Name(), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}

	problems = DropVendorProblems(problems)
	if countProblems(problems) == 0 {
		e.log(ctx, "No more diagnostics.")
		return nil, nil
	}

	problems, summary := FilterProblemsByCode(problems, opts.ErrorCodes)
	e.log(ctx, summary)

	problems, summary = FilterProblemsByFiles(problems, opts.Files)
	e.log(ctx, summary)

	stats.Diagnostics = countProblems(problems)

	var candidates []m.FixCandidate

	for _, group := range problems {
		file := groupFile(group)
		if file == "" {
			continue
		}

		fixes, err := e.oracle.FixCandidates(ctx, project, file, group)
		if err != nil {
			slog.Error("Oracle failed to propose fixes", "oracle", e.oracle.Name(), "file", file, "error", err)
			return nil, fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
		}

		candidates = append(candidates, fixes...)
	}

	candidates, summary = FilterCandidatesByName(candidates, opts.FixNames)
	e.log(ctx, summary)

	return candidates, nil
}

func (e *engine) record(pass int, candidate m.FixCandidate) {
	if e.recorder == nil {
		return
	}

	applied := m.AppliedFix{
		Pass:        pass,
		FixName:     candidate.Fix.Name,
		Description: candidate.Fix.Description,
		Code:        candidate.Problem.Code,
		Message:     candidate.Problem.Message,
		File:        candidate.Fix.TargetFile(),
		Patches:     len(candidate.Fix.Patches()),
	}

	if err := e.recorder.Append(applied); err != nil {
		slog.Warn("Failed to record applied fix", "fix", applied.FixName, "error", err)
	}
}

func (e *engine) log(ctx context.Context, message string) {
	if e.logger == nil || message == "" {
		return
	}

	e.logger.Log(ctx, message)
}

func validateFiles(project *Project, files []m.Path) error {
	if len(files) == 0 {
		return nil
	}

	valid := 0

	for _, file := range files {
		if project.Has(file) {
			valid++
			continue
		}

		slog.Warn("File is not part of the project", "file", file, "root", project.Root)
	}

	if valid == 0 {
		return ErrAllFilesInvalid
	}

	return nil
}

// mergeChangedFiles folds a pass's changes into the cumulative map, keeping the
// text each file had before the first pass that touched it.
func mergeChangedFiles(all, pass map[m.Path]m.ChangedFile) {
	for file, changed := range pass {
		if previous, ok := all[file]; ok {
			changed.OriginalText = previous.OriginalText
		}

		all[file] = changed
	}
}

// mergeConflicts appends the conflicts of a pass that were not reported by an
// earlier pass. Unapplied conflicts are proposed again on every pass.
func mergeConflicts(all, pass []m.PatchConflict) []m.PatchConflict {
	for _, conflict := range pass {
		if !slices.ContainsFunc(all, func(seen m.PatchConflict) bool { return sameConflict(seen, conflict) }) {
			all = append(all, conflict)
		}
	}

	return all
}

func sameConflict(a, b m.PatchConflict) bool {
	return a.File == b.File && a.Start == b.Start && a.Length == b.Length && slices.Equal(a.Texts, b.Texts)
}

// groupFile returns the file of the first located problem of a file group.
func groupFile(group []m.Problem) m.Path {
	for _, problem := range group {
		if file := problem.File(); file != "" {
			return file
		}
	}

	return ""
}
