package domain_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fixpass.dev/pkg/fixpass/internal/adapter"
	adaptermocks "fixpass.dev/pkg/fixpass/internal/adapter/mocks"
	controllermocks "fixpass.dev/pkg/fixpass/internal/controller/mocks"
	"fixpass.dev/pkg/fixpass/internal/domain"
	m "fixpass.dev/pkg/fixpass/internal/model"
)

type workflowMocks struct {
	git     *adaptermocks.MockGitAdapter
	reports *adaptermocks.MockReportStore
	runner  *adaptermocks.MockToolRunnerAdapter
	ui      *controllermocks.MockUI

	mu   sync.Mutex
	logs []string
}

func newWorkflowUnderTest(t *testing.T) (domain.Workflow, *workflowMocks) {
	t.Helper()

	mocks := &workflowMocks{
		git:     adaptermocks.NewMockGitAdapter(t),
		reports: adaptermocks.NewMockReportStore(t),
		runner:  adaptermocks.NewMockToolRunnerAdapter(t),
		ui:      controllermocks.NewMockUI(t),
	}

	wf := domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalGoFileAdapter(),
		mocks.runner,
		mocks.git,
		mocks.reports,
		mocks.ui,
	)

	return wf, mocks
}

func (w *workflowMocks) captureLogs() {
	w.ui.EXPECT().Log(mock.Anything, mock.Anything).Run(func(_ context.Context, message string) {
		w.mu.Lock()
		defer w.mu.Unlock()

		w.logs = append(w.logs, message)
	}).Return().Maybe()
}

func (w *workflowMocks) expectSession() {
	w.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	w.ui.EXPECT().Close(mock.Anything).Return().Once()
}

// copyExample copies an example project into a temporary directory.
func copyExample(t *testing.T, name string) string {
	t.Helper()

	src := filepath.Join("..", "..", "examples", name)
	dst := t.TempDir()

	entries, err := os.ReadDir(src)
	require.NoError(t, err)

	for _, entry := range entries {
		content, err := os.ReadFile(filepath.Join(src, entry.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dst, entry.Name()), content, 0o600))
	}

	return dst
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

func TestWorkflow_Fix_DryRun(t *testing.T) {
	// Arrange
	root := copyExample(t, "boolean")
	original := readFile(t, filepath.Join(root, "main.go"))

	wf, mocks := newWorkflowUnderTest(t)
	mocks.captureLogs()
	mocks.expectSession()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.MatchedBy(func(report m.RunReport) bool {
		return report.State == m.StateConverged &&
			report.Passes == 3 &&
			report.Applied == 5 &&
			!report.Written &&
			len(report.ChangedFiles) == 1 &&
			len(report.Tallies) == 2
	})).Return().Once()

	// Act
	err := wf.Fix(context.Background(), domain.FixArgs{OracleArgs: domain.OracleArgs{Project: m.Path(root)}})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, original, readFile(t, filepath.Join(root, "main.go")))
	assert.Contains(t, mocks.logs, domain.NoFilterWarning)
	assert.Contains(t, mocks.logs, "Using oracle builtin")
	assert.Contains(t, mocks.logs, "Changes detected in the following files:")
	assert.Contains(t, mocks.logs, "   "+filepath.Join(root, "main.go"))
}

func TestWorkflow_Fix_WriteInPlace(t *testing.T) {
	// Arrange
	root := copyExample(t, "boolean")
	reportsDir := t.TempDir()
	golden := readFile(t, filepath.Join("testdata", "cases", "boolean", "main.go.golden"))

	wf, mocks := newWorkflowUnderTest(t)
	mocks.captureLogs()
	mocks.expectSession()
	mocks.git.EXPECT().IsClean(mock.Anything, m.Path(root)).Return(true, nil).Once()
	mocks.ui.EXPECT().DisplayDiff(mock.Anything, mock.MatchedBy(func(files []m.OutputFile) bool {
		return len(files) == 1 && files[0].NewText == golden
	})).Return().Once()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.MatchedBy(func(report m.RunReport) bool {
		return report.Written && report.OutputFolder == ""
	})).Return().Once()
	mocks.reports.EXPECT().SaveReport(mock.Anything, m.Path(reportsDir), mock.MatchedBy(func(report m.RunReport) bool {
		return report.ID != "" && report.Oracle == "builtin"
	})).Return(nil).Once()

	// Act
	err := wf.Fix(context.Background(), domain.FixArgs{
		OracleArgs: domain.OracleArgs{Project: m.Path(root)},
		ErrorCodes: []int{1001, 1004},
		Write:      true,
		ShowDiff:   true,
		Reports:    m.Path(reportsDir),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, golden, readFile(t, filepath.Join(root, "main.go")))
	assert.NotContains(t, mocks.logs, domain.NoFilterWarning)
}

func TestWorkflow_Fix_OutputFolder(t *testing.T) {
	// Arrange
	root := copyExample(t, "increment")
	out := filepath.Join(t.TempDir(), "fixed")
	original := readFile(t, filepath.Join(root, "main.go"))

	wf, mocks := newWorkflowUnderTest(t)
	mocks.captureLogs()
	mocks.expectSession()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return().Once()

	// Act
	err := wf.Fix(context.Background(), domain.FixArgs{
		OracleArgs:   domain.OracleArgs{Project: m.Path(root)},
		FixNames:     []string{"useCompoundAssignment"},
		Write:        true,
		OutputFolder: m.Path(out),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, original, readFile(t, filepath.Join(root, "main.go")))
	assert.Contains(t, readFile(t, filepath.Join(out, "main.go")), "count += 1")
}

func TestWorkflow_Fix_GitStatus(t *testing.T) {
	tests := []struct {
		name  string
		clean bool
		err   error
	}{
		{name: "dirty tree", clean: false},
		{name: "not a repository", err: errors.New("not a git repository")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			root := copyExample(t, "boolean")

			wf, mocks := newWorkflowUnderTest(t)
			mocks.git.EXPECT().IsClean(mock.Anything, m.Path(root)).Return(tt.clean, tt.err).Once()

			// Act
			err := wf.Fix(context.Background(), domain.FixArgs{
				OracleArgs: domain.OracleArgs{Project: m.Path(root)},
				Write:      true,
			})

			// Assert
			require.ErrorIs(t, err, domain.ErrGitStatusNotClean)
		})
	}
}

func TestWorkflow_Fix_IgnoreGitStatus(t *testing.T) {
	root := copyExample(t, "parens")

	wf, mocks := newWorkflowUnderTest(t)
	mocks.captureLogs()
	mocks.expectSession()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return().Once()

	err := wf.Fix(context.Background(), domain.FixArgs{
		OracleArgs:      domain.OracleArgs{Project: m.Path(root)},
		Write:           true,
		IgnoreGitStatus: true,
	})

	require.NoError(t, err)
	assert.Contains(t, readFile(t, filepath.Join(root, "main.go")), "return n * 2")
}

func TestWorkflow_Fix_InvalidArguments(t *testing.T) {
	withGoMod := copyExample(t, "clean")
	withoutGoMod := t.TempDir()

	tests := []struct {
		name     string
		args     domain.FixArgs
		expected error
	}{
		{
			name:     "missing project",
			args:     domain.FixArgs{OracleArgs: domain.OracleArgs{Project: m.Path(filepath.Join(withoutGoMod, "missing"))}},
			expected: domain.ErrProjectNotFound,
		},
		{
			name:     "built-in oracle needs a module",
			args:     domain.FixArgs{OracleArgs: domain.OracleArgs{Project: m.Path(withoutGoMod)}},
			expected: domain.ErrProjectNotFound,
		},
		{
			name:     "unknown oracle",
			args:     domain.FixArgs{OracleArgs: domain.OracleArgs{Project: m.Path(withGoMod), Oracle: "nope"}},
			expected: domain.ErrOracleUnavailable,
		},
		{
			name:     "command oracle without a command",
			args:     domain.FixArgs{OracleArgs: domain.OracleArgs{Project: m.Path(withGoMod), Oracle: domain.OracleCommand}},
			expected: domain.ErrOracleUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf, _ := newWorkflowUnderTest(t)

			err := wf.Fix(context.Background(), tt.args)

			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestWorkflow_Fix_FilesOutsideProject(t *testing.T) {
	root := copyExample(t, "boolean")

	wf, mocks := newWorkflowUnderTest(t)
	mocks.captureLogs()
	mocks.expectSession()

	err := wf.Fix(context.Background(), domain.FixArgs{
		OracleArgs: domain.OracleArgs{Project: m.Path(root)},
		Files:      []m.Path{m.Path(filepath.Join(t.TempDir(), "other.go"))},
	})

	require.ErrorIs(t, err, domain.ErrAllFilesInvalid)
}

func TestWorkflow_Fix_CommandOracle(t *testing.T) {
	// Arrange
	root := copyExample(t, "clean")
	file := filepath.Join(root, "main.go")
	start := len("package main\n\nimport \"fmt\"\n\nfunc main() {\n\t")

	wf, mocks := newWorkflowUnderTest(t)
	mocks.captureLogs()
	mocks.expectSession()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.MatchedBy(func(report m.RunReport) bool {
		return report.Oracle == "command" && report.Applied == 1
	})).Return().Once()

	calls := 0
	mocks.runner.EXPECT().Run(mock.Anything, mock.Anything, []string{"linter", "--json"}).
		RunAndReturn(func(_ context.Context, _ m.Path, _ []string) ([]byte, []byte, error) {
			calls++
			if calls > 1 {
				return []byte(`{"problems": []}`), nil, nil
			}

			return []byte(fmt.Sprintf(`{"problems": [{"code": 42, "message": "rename", "file": "main.go", "start": %d, "length": 5,
				"fixes": [{"fixName": "rename", "changes": [{"file": "main.go", "patches": [{"start": %d, "length": 5, "newText": "isReady"}]}]}]}]}`, start, start)), nil, nil
		})

	// Act
	err := wf.Fix(context.Background(), domain.FixArgs{
		OracleArgs: domain.OracleArgs{
			Project:       m.Path(root),
			Oracle:        domain.OracleCommand,
			OracleCommand: []string{"linter", "--json"},
			Extensions:    []string{".go"},
		},
		ErrorCodes:      []int{42},
		Write:           true,
		IgnoreGitStatus: true,
	})

	// Assert
	require.NoError(t, err)
	assert.Contains(t, readFile(t, file), "\tisReady := len(")
	assert.Equal(t, 1, calls)
}

func TestWorkflow_Fix_CommandOracleEditsFileOutsideSnapshot(t *testing.T) {
	// Arrange
	root := copyExample(t, "clean")
	file := filepath.Join(root, "main.go")
	original := readFile(t, file)
	goMod := readFile(t, filepath.Join(root, "go.mod"))

	wf, mocks := newWorkflowUnderTest(t)
	mocks.captureLogs()
	mocks.expectSession()
	mocks.runner.EXPECT().Run(mock.Anything, mock.Anything, []string{"linter"}).
		Return([]byte(`{"problems": [{"code": 42, "message": "pin", "file": "main.go", "start": 0, "length": 7,
			"fixes": [
				{"fixName": "pinToolchain", "changes": [{"file": "go.mod", "patches": [{"start": 0, "length": 6, "newText": "module"}]}]},
				{"fixName": "touchMain", "changes": [{"file": "main.go", "patches": [{"start": 0, "length": 7, "newText": "package"}]}]}
			]}]}`), nil, nil).Once()

	// Act
	err := wf.Fix(context.Background(), domain.FixArgs{
		OracleArgs: domain.OracleArgs{
			Project:       m.Path(root),
			Oracle:        domain.OracleCommand,
			OracleCommand: []string{"linter"},
			Extensions:    []string{".go"},
		},
		FixNames:        []string{"pinToolchain"},
		Write:           true,
		IgnoreGitStatus: true,
	})

	// Assert
	require.ErrorIs(t, err, domain.ErrFileNotInProject)
	assert.Equal(t, original, readFile(t, file))
	assert.Equal(t, goMod, readFile(t, filepath.Join(root, "go.mod")))
}

func TestWorkflow_List(t *testing.T) {
	// Arrange
	root := copyExample(t, "boolean")

	wf, mocks := newWorkflowUnderTest(t)
	mocks.expectSession()
	mocks.ui.EXPECT().DisplayProblems(mock.Anything, mock.MatchedBy(func(problems []m.ProblemListing) bool {
		if len(problems) != 4 {
			return false
		}

		first := problems[0]

		return first.Line == 9 &&
			first.Column == 5 &&
			first.Code == 1001 &&
			first.Severity == "warning" &&
			len(first.Fixes) == 1 && first.Fixes[0] == "simplifyBoolCompare"
	}), "json").Return(nil).Once()

	// Act
	err := wf.List(context.Background(), domain.ListArgs{
		OracleArgs: domain.OracleArgs{Project: m.Path(root)},
		Format:     "json",
	})

	// Assert
	require.NoError(t, err)
}

func TestWorkflow_List_FilteredByCode(t *testing.T) {
	root := copyExample(t, "boolean")

	wf, mocks := newWorkflowUnderTest(t)
	mocks.expectSession()
	mocks.ui.EXPECT().DisplayProblems(mock.Anything, mock.MatchedBy(func(problems []m.ProblemListing) bool {
		return len(problems) == 0
	}), "table").Return(nil).Once()

	err := wf.List(context.Background(), domain.ListArgs{
		OracleArgs: domain.OracleArgs{Project: m.Path(root)},
		ErrorCodes: []int{1004},
		Format:     "table",
	})

	require.NoError(t, err)
}

func TestWorkflow_View(t *testing.T) {
	t.Run("no report yet", func(t *testing.T) {
		wf, mocks := newWorkflowUnderTest(t)
		mocks.reports.EXPECT().LoadReport(mock.Anything, m.Path(".fixpass")).
			Return(m.RunReport{}, fmt.Errorf("%w in .fixpass", adapter.ErrReportNotFound)).Once()
		mocks.ui.EXPECT().Log(mock.Anything, "No fix run recorded in .fixpass").Return().Once()

		err := wf.View(context.Background(), domain.ViewArgs{Reports: ".fixpass"})

		require.NoError(t, err)
	})

	t.Run("last report", func(t *testing.T) {
		report := m.RunReport{ID: "run-1", State: m.StateConverged}

		wf, mocks := newWorkflowUnderTest(t)
		mocks.reports.EXPECT().LoadReport(mock.Anything, m.Path(".fixpass")).Return(report, nil).Once()
		mocks.ui.EXPECT().DisplaySummary(mock.Anything, report).Return().Once()

		err := wf.View(context.Background(), domain.ViewArgs{Reports: ".fixpass"})

		require.NoError(t, err)
	})

	t.Run("unreadable report", func(t *testing.T) {
		loadErr := errors.New("bad msgpack")

		wf, mocks := newWorkflowUnderTest(t)
		mocks.reports.EXPECT().LoadReport(mock.Anything, m.Path(".fixpass")).Return(m.RunReport{}, loadErr).Once()

		err := wf.View(context.Background(), domain.ViewArgs{Reports: ".fixpass"})

		require.ErrorIs(t, err, loadErr)
	})
}

func TestWorkflow_Rules(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	mocks.ui.EXPECT().DisplayRules(mock.Anything, mock.MatchedBy(func(rules []m.RuleInfo) bool {
		return len(rules) == 6 && rules[0].Code == 1000
	})).Return().Once()

	require.NoError(t, wf.Rules(context.Background()))
}
