package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

// ErrNotGitRepository is returned when a directory is not inside a git work tree.
var ErrNotGitRepository = errors.New("not a git repository")

// GitAdapter answers questions about the git work tree of a project.
type GitAdapter interface {
	// IsClean reports whether `git status --porcelain` is empty for dir.
	IsClean(ctx context.Context, dir m.Path) (bool, error)
}

// LocalGitAdapter shells out to the git binary.
type LocalGitAdapter struct{}

// NewLocalGitAdapter constructs a LocalGitAdapter.
func NewLocalGitAdapter() *LocalGitAdapter {
	return &LocalGitAdapter{}
}

// IsClean reports whether the work tree containing dir has no pending changes.
func (a *LocalGitAdapter) IsClean(ctx context.Context, dir m.Path) (bool, error) {
	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	cmd.Dir = string(dir)

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("%w: %s: %s", ErrNotGitRepository, dir, bytes.TrimSpace(stderr.Bytes()))
	}

	return len(bytes.TrimSpace(out)) == 0, nil
}
