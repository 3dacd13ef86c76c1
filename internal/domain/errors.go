// Package domain contains the codefix resolution engine and its workflows.
package domain

import (
	"errors"

	"fixpass.dev/pkg/fixpass/internal/controller"
)

var (
	// ErrProjectNotFound is returned when the project root is missing or not a Go module.
	ErrProjectNotFound = errors.New("project not found")
	// ErrAllFilesInvalid is returned when none of the requested files belong to the project.
	ErrAllFilesInvalid = errors.New("all provided files are invalid")
	// ErrGitStatusNotClean is returned when writing in place over a dirty or untracked tree.
	ErrGitStatusNotClean = errors.New("git status is not clean")
	// ErrOracleUnavailable wraps failures to build a snapshot or query the oracle.
	ErrOracleUnavailable = errors.New("oracle unavailable")
	// ErrFileNotInProject is returned when an accepted fix edits a file missing from the snapshot.
	ErrFileNotInProject = errors.New("file not found in project")
	// ErrPatchOutOfRange is returned when a patch does not fit the text it edits.
	ErrPatchOutOfRange = errors.New("patch out of range")
	// ErrPromptAborted is returned when the operator aborts an interactive prompt.
	ErrPromptAborted = controller.ErrPromptAborted
	// ErrInvalidChoice is returned when a prompt response is not one of the offered choices.
	ErrInvalidChoice = errors.New("invalid prompt choice")
)
