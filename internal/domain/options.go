package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

// Oracle kinds accepted by OracleArgs.Oracle.
const (
	OracleBuiltin = "builtin"
	OracleCommand = "command"
)

// NoFilterWarning is logged when a fix run is restricted neither by code nor by fix name.
const NoFilterWarning = "Warning! Not specifying either code fix names or error codes often results in unwanted changes."

// resolveProject returns the absolute project root. The built-in oracle needs a
// go.mod at or above the root.
func (w *workflow) resolveProject(ctx context.Context, args OracleArgs) (m.Path, error) {
	project := args.Project
	if project == "" {
		project = "."
	}

	abs, err := filepath.Abs(string(project))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrProjectNotFound, project, err)
	}

	root := m.Path(abs)

	info, err := w.FileInfo(ctx, root)
	if err != nil || !info.IsDir() {
		slog.Error("Project directory not found", "project", root, "error", err)
		return "", fmt.Errorf("%w: %s", ErrProjectNotFound, root)
	}

	if args.Oracle == "" || args.Oracle == OracleBuiltin {
		if _, err := w.FindProjectRoot(ctx, root); err != nil {
			slog.Error("Project is not a Go module", "project", root, "error", err)
			return "", fmt.Errorf("%w: %s: %w", ErrProjectNotFound, root, err)
		}
	}

	return root, nil
}

// checkFixArgs validates a fix run before any pass starts and derives the engine options.
func (w *workflow) checkFixArgs(ctx context.Context, args FixArgs) (EngineOptions, error) {
	root, err := w.resolveProject(ctx, args.OracleArgs)
	if err != nil {
		return EngineOptions{}, err
	}

	files, err := absPaths(args.Files)
	if err != nil {
		return EngineOptions{}, err
	}

	if args.Write && !args.IgnoreGitStatus && writesInPlace(root, args.OutputFolder) {
		clean, err := w.IsClean(ctx, root)
		if err != nil {
			slog.Error("Failed to read git status", "project", root, "error", err)
			return EngineOptions{}, fmt.Errorf("%w: %w", ErrGitStatusNotClean, err)
		}

		if !clean {
			return EngineOptions{}, ErrGitStatusNotClean
		}
	}

	maxPasses := args.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	return EngineOptions{
		Root:       root,
		ErrorCodes: args.ErrorCodes,
		FixNames:   args.FixNames,
		Files:      files,
		MaxPasses:  maxPasses,
	}, nil
}

func writesInPlace(root, outputFolder m.Path) bool {
	if outputFolder == "" {
		return true
	}

	abs, err := filepath.Abs(string(outputFolder))
	if err != nil {
		return false
	}

	return filepath.Clean(abs) == filepath.Clean(string(root))
}

func absPaths(paths []m.Path) ([]m.Path, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	result := make([]m.Path, 0, len(paths))

	for _, path := range paths {
		abs, err := filepath.Abs(string(path))
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}

		result = append(result, m.Path(abs))
	}

	return result, nil
}

func absOutputFolder(outputFolder m.Path) (m.Path, error) {
	if outputFolder == "" {
		return "", nil
	}

	abs, err := filepath.Abs(string(outputFolder))
	if err != nil {
		return "", fmt.Errorf("resolve output folder %s: %w", outputFolder, err)
	}

	return m.Path(abs), nil
}
