package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fixpass.dev/pkg/fixpass/internal/adapter"
	"fixpass.dev/pkg/fixpass/internal/controller"
	"fixpass.dev/pkg/fixpass/internal/domain/fixers"
	m "fixpass.dev/pkg/fixpass/internal/model"
	"fixpass.dev/pkg/fixpass/pkg"
)

// OracleArgs selects the project and the oracle analysing it.
type OracleArgs struct {
	Project       m.Path
	Oracle        string
	OracleCommand []string
	// Extensions restricts the files loaded into the snapshot. The built-in
	// oracle always uses .go.
	Extensions []string
	Exclude    []string
}

// FixArgs contains the arguments of a fix run.
type FixArgs struct {
	OracleArgs
	ErrorCodes      []int
	FixNames        []string
	Files           []m.Path
	Interactive     bool
	ShowMultiple    bool
	Write           bool
	OutputFolder    m.Path
	IgnoreGitStatus bool
	MaxPasses       int
	ShowDiff        bool
	Reports         m.Path
}

// ListArgs contains the arguments for listing problems.
type ListArgs struct {
	OracleArgs
	ErrorCodes []int
	Files      []m.Path
	Format     string
}

// ViewArgs contains the arguments for viewing the last run report.
type ViewArgs struct {
	Reports m.Path
}

// Workflow is the entry point of every command.
type Workflow interface {
	Fix(ctx context.Context, args FixArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	Rules(ctx context.Context) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.GoFileAdapter
	adapter.ToolRunnerAdapter
	adapter.GitAdapter
	adapter.ReportStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	goFileAdapter adapter.GoFileAdapter,
	toolRunner adapter.ToolRunnerAdapter,
	gitAdapter adapter.GitAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter:   fsAdapter,
		GoFileAdapter:     goFileAdapter,
		ToolRunnerAdapter: toolRunner,
		GitAdapter:        gitAdapter,
		ReportStore:       reportStore,
		UI:                ui,
	}
}

func (w *workflow) Fix(ctx context.Context, args FixArgs) error {
	startedAt := time.Now()

	opts, err := w.checkFixArgs(ctx, args)
	if err != nil {
		return err
	}

	outputFolder, err := absOutputFolder(args.OutputFolder)
	if err != nil {
		return err
	}

	oracle, loader, err := w.newOracle(args.OracleArgs)
	if err != nil {
		return err
	}

	journal, err := pkg.NewJournal[m.AppliedFix]("")
	if err != nil {
		slog.Error("Failed to create run journal", "error", err)
		return fmt.Errorf("create journal: %w", err)
	}

	defer func() {
		if err := journal.Remove(); err != nil {
			slog.Warn("Failed to remove run journal", "path", journal.Path(), "error", err)
		}
	}()

	if err := w.Start(ctx, controller.WithFixMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	if len(args.ErrorCodes) == 0 && len(args.FixNames) == 0 {
		w.Log(ctx, NoFilterWarning)
	}

	engine := NewEngine(loader, oracle, NewArbiter(arbiterMode(args), w.UI), w.UI, journal)

	result, err := engine.Converge(ctx, opts)
	if err != nil {
		slog.Error("Fix run failed", "project", opts.Root, "passes", len(result.Passes), "error", err)
		return err
	}

	files, err := OutputFiles(result.ChangedFiles, opts.Root, outputFolder)
	if err != nil {
		return err
	}

	if args.Write {
		if err := Materialize(ctx, w.SourceFSAdapter, files); err != nil {
			return err
		}
	} else {
		w.Log(ctx, "Changes detected in the following files:")

		for _, file := range files {
			w.Log(ctx, "   "+string(file.Path))
		}
	}

	if args.ShowDiff {
		w.DisplayDiff(ctx, files)
	}

	report := newRunReport(uuid.NewString(), startedAt, opts.Root, oracle.Name(), result)
	report.Written = args.Write
	report.OutputFolder = outputFolder

	report.Tallies, err = fixTallies(journal)
	if err != nil {
		slog.Warn("Failed to read run journal", "error", err)
	}

	w.DisplaySummary(ctx, report)

	if args.Reports != "" {
		if err := w.SaveReport(ctx, args.Reports, report); err != nil {
			slog.Error("Failed to save run report", "reports", args.Reports, "error", err)
			return fmt.Errorf("save report: %w", err)
		}
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	root, err := w.resolveProject(ctx, args.OracleArgs)
	if err != nil {
		return err
	}

	files, err := absPaths(args.Files)
	if err != nil {
		return err
	}

	oracle, loader, err := w.newOracle(args.OracleArgs)
	if err != nil {
		return err
	}

	project, err := loader.Load(ctx, root, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}

	if err := validateFiles(project, files); err != nil {
		return err
	}

	problems, err := oracle.Problems(ctx, project)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}

	problems, _ = FilterProblemsByCode(DropVendorProblems(problems), args.ErrorCodes)
	problems, _ = FilterProblemsByFiles(problems, files)

	listings, err := w.listProblems(ctx, oracle, project, problems)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	return w.DisplayProblems(ctx, listings, args.Format)
}

func (w *workflow) listProblems(ctx context.Context, oracle Oracle, project *Project, problems [][]m.Problem) ([]m.ProblemListing, error) {
	var listings []m.ProblemListing

	for _, group := range problems {
		names := make(map[string][]string)

		if file := groupFile(group); file != "" {
			candidates, err := oracle.FixCandidates(ctx, project, file, group)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
			}

			for _, candidate := range candidates {
				key := problemKey(candidate.Problem)
				names[key] = append(names[key], candidate.Fix.Name)
			}
		}

		for _, problem := range group {
			listing := m.ProblemListing{
				File:     problem.File(),
				Code:     problem.Code,
				Severity: problem.Severity.String(),
				Message:  problem.Message,
				Fixes:    names[problemKey(problem)],
			}

			if problem.Location != nil {
				text, _ := project.Text(problem.Location.File)
				span := DescribeSpan(problem.Location.File, text, m.Patch{Start: problem.Location.Start})
				listing.Line = span.Line
				listing.Column = span.Column
			}

			listings = append(listings, listing)
		}
	}

	return listings, nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(ctx, args.Reports)
	if err != nil {
		if errors.Is(err, adapter.ErrReportNotFound) {
			w.Log(ctx, "No fix run recorded in "+string(args.Reports))
			return nil
		}

		return fmt.Errorf("load report: %w", err)
	}

	w.DisplaySummary(ctx, report)

	return nil
}

func (w *workflow) Rules(ctx context.Context) error {
	w.DisplayRules(ctx, fixers.Info())
	return nil
}

func (w *workflow) newOracle(args OracleArgs) (Oracle, ProjectLoader, error) {
	extensions := args.Extensions

	var (
		oracle Oracle
		err    error
	)

	switch args.Oracle {
	case "", OracleBuiltin:
		extensions = []string{".go"}

		oracle, err = NewGoOracle(w.GoFileAdapter)
		if err != nil {
			return nil, nil, err
		}
	case OracleCommand:
		if len(args.OracleCommand) == 0 {
			return nil, nil, fmt.Errorf("%w: no command configured", ErrOracleUnavailable)
		}

		oracle = NewCommandOracle(w.SourceFSAdapter, w.ToolRunnerAdapter, args.OracleCommand)
	default:
		return nil, nil, fmt.Errorf("%w: unknown oracle %q", ErrOracleUnavailable, args.Oracle)
	}

	loader, err := NewProjectLoader(w.SourceFSAdapter, extensions, args.Exclude)
	if err != nil {
		return nil, nil, err
	}

	return oracle, loader, nil
}

func arbiterMode(args FixArgs) ArbiterMode {
	switch {
	case args.Interactive:
		return ArbiterInteractive
	case args.ShowMultiple:
		return ArbiterShowMultiple
	default:
		return ArbiterPolicy
	}
}

func problemKey(problem m.Problem) string {
	if problem.Location == nil {
		return fmt.Sprintf("%d||%s", problem.Code, problem.Message)
	}

	return fmt.Sprintf("%d|%s|%d|%d|%s", problem.Code, problem.Location.File, problem.Location.Start, problem.Location.Length, problem.Message)
}
