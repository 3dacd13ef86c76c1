package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"fortio.org/safecast"

	"fixpass.dev/pkg/fixpass/internal/adapter"
	m "fixpass.dev/pkg/fixpass/internal/model"
)

// commandReport is the JSON document an external analysis tool prints on stdout.
type commandReport struct {
	Problems []commandProblem `json:"problems"`
}

type commandProblem struct {
	Code     int          `json:"code"`
	Message  string       `json:"message"`
	Severity string       `json:"severity"`
	File     string       `json:"file"`
	Start    int64        `json:"start"`
	Length   int64        `json:"length"`
	Fixes    []commandFix `json:"fixes"`
}

type commandFix struct {
	FixName     string          `json:"fixName"`
	Description string          `json:"description"`
	Commands    []string        `json:"commands"`
	Changes     []commandChange `json:"changes"`
}

type commandChange struct {
	File    string         `json:"file"`
	Patches []commandPatch `json:"patches"`
}

type commandPatch struct {
	Start   int64  `json:"start"`
	Length  int64  `json:"length"`
	NewText string `json:"newText"`
}

type commandOracle struct {
	fs     adapter.SourceFSAdapter
	runner adapter.ToolRunnerAdapter
	argv   []string

	// findings of the last analysed snapshot
	project  *Project
	findings map[m.Path][]commandFinding
}

type commandFinding struct {
	problem m.Problem
	fixes   []m.Fix
}

// NewCommandOracle creates an oracle that runs argv inside a temporary copy of
// the project holding the snapshot's current text.
func NewCommandOracle(fs adapter.SourceFSAdapter, runner adapter.ToolRunnerAdapter, argv []string) Oracle {
	return &commandOracle{fs: fs, runner: runner, argv: argv}
}

func (o *commandOracle) Name() string {
	return "command"
}

func (o *commandOracle) Problems(ctx context.Context, project *Project) ([][]m.Problem, error) {
	findings, err := o.analyze(ctx, project)
	if err != nil {
		return nil, err
	}

	var problems [][]m.Problem

	for _, file := range sortedFindingFiles(findings) {
		group := make([]m.Problem, 0, len(findings[file]))
		for _, finding := range findings[file] {
			group = append(group, finding.problem)
		}

		problems = append(problems, group)
	}

	return problems, nil
}

func (o *commandOracle) FixCandidates(ctx context.Context, project *Project, file m.Path, problems []m.Problem) ([]m.FixCandidate, error) {
	findings, err := o.analyze(ctx, project)
	if err != nil {
		return nil, err
	}

	var candidates []m.FixCandidate

	for _, problem := range problems {
		for _, finding := range findings[file] {
			if !finding.problem.SameLocation(problem) || finding.problem.Message != problem.Message {
				continue
			}

			for _, fix := range finding.fixes {
				candidates = append(candidates, m.FixCandidate{Fix: fix, Problem: problem})
			}
		}
	}

	return candidates, nil
}

func (o *commandOracle) analyze(ctx context.Context, project *Project) (map[m.Path][]commandFinding, error) {
	if o.project == project && o.findings != nil {
		return o.findings, nil
	}

	workspace, err := o.prepareWorkspace(ctx, project)
	if workspace != "" {
		defer o.cleanupWorkspace(ctx, workspace)
	}

	if err != nil {
		return nil, err
	}

	stdout, stderr, runErr := o.runner.Run(ctx, workspace, o.argv)

	var report commandReport
	if err := json.Unmarshal(stdout, &report); err != nil {
		if runErr != nil {
			slog.Error("Analysis tool failed", "argv", o.argv, "stderr", string(stderr), "error", runErr)
			return nil, fmt.Errorf("run %s: %w", o.argv[0], runErr)
		}

		return nil, fmt.Errorf("decode tool output: %w", err)
	}

	if runErr != nil {
		slog.Warn("Analysis tool exited with an error but produced a report", "argv", o.argv, "error", runErr)
	}

	o.project = project
	o.findings = o.convert(project, workspace, report)

	return o.findings, nil
}

func (o *commandOracle) prepareWorkspace(ctx context.Context, project *Project) (m.Path, error) {
	tmpDir, err := o.fs.CreateTempDir(ctx, "fixpass-oracle-*")
	if err != nil {
		slog.Error("Failed to create temp dir", "error", err)
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	if err := o.fs.CopyDir(ctx, project.Root, tmpDir); err != nil {
		slog.Error("Failed to copy project to temp dir", "projectRoot", project.Root, "tmpDir", tmpDir, "error", err)
		return tmpDir, fmt.Errorf("failed to copy project: %w", err)
	}

	for _, file := range project.Files() {
		rel, err := o.fs.RelPath(ctx, project.Root, file.Path)
		if err != nil {
			return tmpDir, fmt.Errorf("failed to get relative path: %w", err)
		}

		target := o.fs.JoinPath(ctx, string(tmpDir), string(rel))
		if err := o.fs.WriteFile(ctx, target, []byte(file.Text), 0o600); err != nil {
			slog.Error("Failed to write snapshot file", "path", target, "error", err)
			return tmpDir, fmt.Errorf("failed to write snapshot file: %w", err)
		}
	}

	return tmpDir, nil
}

func (o *commandOracle) cleanupWorkspace(ctx context.Context, dir m.Path) {
	if err := o.fs.RemoveAll(ctx, dir); err != nil {
		slog.Warn("Failed to remove oracle workspace", "dir", dir, "error", err)
	}
}

func (o *commandOracle) convert(project *Project, workspace m.Path, report commandReport) map[m.Path][]commandFinding {
	findings := make(map[m.Path][]commandFinding)

	for _, raw := range report.Problems {
		problem := m.Problem{
			Code:     raw.Code,
			Message:  raw.Message,
			Severity: m.ParseSeverity(raw.Severity),
		}

		file := resolveToolPath(project.Root, workspace, raw.File)
		if file != "" {
			start, startErr := safecast.Conv[int](raw.Start)
			length, lengthErr := safecast.Conv[int](raw.Length)

			if startErr != nil || lengthErr != nil {
				slog.Warn("Dropping problem with invalid span", "file", raw.File, "start", raw.Start, "length", raw.Length)
				continue
			}

			problem.Location = &m.Location{File: file, Start: start, Length: length}
		}

		finding := commandFinding{problem: problem}

		for _, rawFix := range raw.Fixes {
			finding.fixes = append(finding.fixes, convertFix(project, workspace, rawFix))
		}

		findings[file] = append(findings[file], finding)
	}

	return findings
}

func convertFix(project *Project, workspace m.Path, raw commandFix) m.Fix {
	fix := m.Fix{Name: raw.FixName, Description: raw.Description, Commands: raw.Commands}

	for _, rawChange := range raw.Changes {
		file := resolveToolPath(project.Root, workspace, rawChange.File)
		change := m.FileChange{File: file}

		// files outside the snapshot keep their patches so the engine rejects the fix
		textLength := unknownLength
		if text, ok := project.Text(file); ok {
			textLength = len(text)
		}

		for _, rawPatch := range rawChange.Patches {
			patch, ok := convertPatch(rawPatch, textLength)
			if !ok {
				slog.Warn("Dropping patch outside of file", "fix", raw.FixName, "file", file, "start", rawPatch.Start, "length", rawPatch.Length)
				continue
			}

			change.Patches = append(change.Patches, patch)
		}

		fix.Changes = append(fix.Changes, change)
	}

	return fix
}

const unknownLength = -1

// convertPatch checks raw against textLength. With unknownLength only the sign of
// the span is checked.
func convertPatch(raw commandPatch, textLength int) (m.Patch, bool) {
	start, err := safecast.Conv[int](raw.Start)
	if err != nil {
		return m.Patch{}, false
	}

	length, err := safecast.Conv[int](raw.Length)
	if err != nil {
		return m.Patch{}, false
	}

	if start < 0 || length < 0 || (textLength != unknownLength && start+length > textLength) {
		return m.Patch{}, false
	}

	return m.Patch{Start: start, Length: length, NewText: raw.NewText}, true
}

// resolveToolPath maps a path printed by the tool back into the project. Relative
// paths are taken relative to the workspace root.
func resolveToolPath(root, workspace m.Path, path string) m.Path {
	if path == "" {
		return ""
	}

	if !filepath.IsAbs(path) {
		return m.Path(filepath.Join(string(root), path))
	}

	rel, err := filepath.Rel(string(workspace), path)
	if err != nil || !filepath.IsLocal(rel) {
		return m.Path(filepath.Clean(path))
	}

	return m.Path(filepath.Join(string(root), rel))
}

func sortedFindingFiles(findings map[m.Path][]commandFinding) []m.Path {
	edits := make(m.FileEditSet, len(findings))
	for file := range findings {
		edits[file] = nil
	}

	return SortedFiles(edits)
}
