package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fixpass.dev/pkg/fixpass/internal/domain"
	domainmocks "fixpass.dev/pkg/fixpass/internal/domain/mocks"
	m "fixpass.dev/pkg/fixpass/internal/model"
)

func newFixTestCmd(t *testing.T) (*domainmocks.MockWorkflow, func(args ...string) error) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	execute := func(args ...string) error {
		cmd := newRootCmd()
		cmd.AddCommand(newFixCmd())
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"fix"}, args...))

		return cmd.Execute()
	}

	return mockWorkflow, execute
}

func TestFixCmd_Defaults(t *testing.T) {
	mockWorkflow, execute := newFixTestCmd(t)

	mockWorkflow.On("Fix", mock.Anything, mock.MatchedBy(func(args domain.FixArgs) bool {
		return args.Project == m.Path(".") &&
			args.Oracle == "builtin" &&
			len(args.ErrorCodes) == 0 &&
			len(args.FixNames) == 0 &&
			len(args.Files) == 0 &&
			!args.Interactive &&
			!args.ShowMultiple &&
			!args.Write &&
			args.OutputFolder == "" &&
			!args.IgnoreGitStatus &&
			args.MaxPasses == 5 &&
			!args.ShowDiff &&
			args.Reports == m.Path(".fixpass")
	})).Return(nil)

	require.NoError(t, execute())

	mockWorkflow.AssertExpectations(t)
}

func TestFixCmd_Filters(t *testing.T) {
	mockWorkflow, execute := newFixTestCmd(t)

	mockWorkflow.On("Fix", mock.Anything, mock.MatchedBy(func(args domain.FixArgs) bool {
		return len(args.ErrorCodes) == 2 &&
			args.ErrorCodes[0] == 1001 &&
			args.ErrorCodes[1] == 1004 &&
			len(args.FixNames) == 1 &&
			args.FixNames[0] == "removeRedundantParens"
	})).Return(nil)

	require.NoError(t, execute("-e", "1001", "--error-code", "1004", "-f", "removeRedundantParens"))

	mockWorkflow.AssertExpectations(t)
}

func TestFixCmd_Files(t *testing.T) {
	mockWorkflow, execute := newFixTestCmd(t)

	mockWorkflow.On("Fix", mock.Anything, mock.MatchedBy(func(args domain.FixArgs) bool {
		return len(args.Files) == 2 &&
			args.Files[0] == m.Path("a.go") &&
			args.Files[1] == m.Path("pkg/b.go")
	})).Return(nil)

	require.NoError(t, execute("a.go", "pkg/b.go"))

	mockWorkflow.AssertExpectations(t)
}

func TestFixCmd_Modes(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		match func(args domain.FixArgs) bool
	}{
		{
			name:  "interactive",
			args:  []string{"-i"},
			match: func(args domain.FixArgs) bool { return args.Interactive && !args.ShowMultiple },
		},
		{
			name:  "show multiple",
			args:  []string{"--show-multiple"},
			match: func(args domain.FixArgs) bool { return args.ShowMultiple && !args.Interactive },
		},
		{
			name: "write in place",
			args: []string{"-w", "--ignore-git-status"},
			match: func(args domain.FixArgs) bool {
				return args.Write && args.IgnoreGitStatus && args.OutputFolder == ""
			},
		},
		{
			name: "output folder",
			args: []string{"--write", "-o", "out"},
			match: func(args domain.FixArgs) bool {
				return args.Write && args.OutputFolder == m.Path("out")
			},
		},
		{
			name:  "pass limit and diff",
			args:  []string{"--max-passes", "2", "--diff"},
			match: func(args domain.FixArgs) bool { return args.MaxPasses == 2 && args.ShowDiff },
		},
		{
			name: "external oracle",
			args: []string{"--oracle", "command", "--oracle-cmd", "lint", "--ext", ".ts", "--project", "web"},
			match: func(args domain.FixArgs) bool {
				return args.Oracle == "command" &&
					len(args.OracleCommand) == 1 && args.OracleCommand[0] == "lint" &&
					len(args.Extensions) == 1 && args.Extensions[0] == ".ts" &&
					args.Project == m.Path("web")
			},
		},
		{
			name:  "reports directory",
			args:  []string{"--reports", "./runs"},
			match: func(args domain.FixArgs) bool { return args.Reports == m.Path("./runs") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow, execute := newFixTestCmd(t)
			mockWorkflow.On("Fix", mock.Anything, mock.MatchedBy(tt.match)).Return(nil)

			require.NoError(t, execute(tt.args...))

			mockWorkflow.AssertExpectations(t)
		})
	}
}

func TestFixCmd_WorkflowError(t *testing.T) {
	mockWorkflow, execute := newFixTestCmd(t)

	mockWorkflow.On("Fix", mock.Anything, mock.Anything).Return(domain.ErrGitStatusNotClean)

	err := execute("--write")
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrGitStatusNotClean))
}

func TestFixCmd_InvalidErrorCode(t *testing.T) {
	_, execute := newFixTestCmd(t)

	err := execute("-e", "not-a-number")
	require.Error(t, err)
}
