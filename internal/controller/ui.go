// Package controller provides the operator-facing side of fixpass: status lines,
// prompts, summaries and listings.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeFix StartMode = iota
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithFixMode sets the UI to fix run mode.
func WithFixMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFix
	}
}

// WithListMode sets the UI to problem listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// Output formats accepted by DisplayProblems.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// UI defines the interface for talking to the operator.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Log(ctx context.Context, message string)
	Prompt(ctx context.Context, request m.PromptRequest) (m.PromptResponse, error)
	DisplayDiff(ctx context.Context, files []m.OutputFile)
	DisplaySummary(ctx context.Context, report m.RunReport)
	DisplayProblems(ctx context.Context, problems []m.ProblemListing, format string) error
	DisplayRules(ctx context.Context, rules []m.RuleInfo)
}

// NewUI returns the TUI on terminals and the SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func applyStartOptions(options []StartOption) StartConfig {
	config := StartConfig{mode: ModeFix}
	for _, option := range options {
		option(&config)
	}

	return config
}
