package adapter

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

// ErrEmptyCommand is returned when the tool command line is empty.
var ErrEmptyCommand = errors.New("empty tool command")

// ToolRunnerAdapter runs external analysis tools.
type ToolRunnerAdapter interface {
	// Run executes argv inside workDir and returns stdout and stderr separately.
	Run(ctx context.Context, workDir m.Path, argv []string) (stdout []byte, stderr []byte, err error)
}

// LocalToolRunnerAdapter runs tools with os/exec.
type LocalToolRunnerAdapter struct {
	timeout time.Duration
}

// NewLocalToolRunnerAdapter constructs a LocalToolRunnerAdapter with the given
// timeout. A zero timeout defaults to two minutes.
func NewLocalToolRunnerAdapter(timeout time.Duration) *LocalToolRunnerAdapter {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	return &LocalToolRunnerAdapter{timeout: timeout}
}

// Run executes argv inside workDir.
func (a *LocalToolRunnerAdapter) Run(ctx context.Context, workDir m.Path, argv []string) ([]byte, []byte, error) {
	if len(argv) == 0 {
		return nil, nil, ErrEmptyCommand
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	// #nosec G204 - the command line comes from the operator's configuration
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = string(workDir)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.Bytes(), stderr.Bytes(), err
}
