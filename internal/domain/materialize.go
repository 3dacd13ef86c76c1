package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

const outputFileMode os.FileMode = 0o644

// Materializer is the file-system surface final texts are written through.
// adapter.SourceFSAdapter satisfies it.
type Materializer interface {
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error
	MkdirAll(ctx context.Context, path m.Path) error
	Exists(ctx context.Context, path m.Path) bool
}

// OutputFilePath returns where the new text of file is written. Without an output
// folder, or when it is the project root, files are overwritten in place.
func OutputFilePath(file, root, outputFolder m.Path) (m.Path, error) {
	if outputFolder == "" || filepath.Clean(string(outputFolder)) == filepath.Clean(string(root)) {
		return file, nil
	}

	rel, err := filepath.Rel(string(root), string(file))
	if err != nil {
		return "", fmt.Errorf("relative path of %s: %w", file, err)
	}

	return m.Path(filepath.Join(string(outputFolder), rel)), nil
}

// OutputFiles lists changed files with their output paths, sorted by path.
func OutputFiles(changed map[m.Path]m.ChangedFile, root, outputFolder m.Path) ([]m.OutputFile, error) {
	files := make([]m.OutputFile, 0, len(changed))

	for path, change := range changed {
		output, err := OutputFilePath(path, root, outputFolder)
		if err != nil {
			return nil, err
		}

		files = append(files, m.OutputFile{Path: path, Output: output, ChangedFile: change})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	return files, nil
}

// Materialize writes every file's new text to its output path, creating missing
// parent directories.
func Materialize(ctx context.Context, materializer Materializer, files []m.OutputFile) error {
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := m.Path(filepath.Dir(string(file.Output)))
		if !materializer.Exists(ctx, dir) {
			if err := materializer.MkdirAll(ctx, dir); err != nil {
				slog.Error("Failed to create output directory", "dir", dir, "error", err)
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}

		if err := materializer.WriteFile(ctx, file.Output, []byte(file.NewText), outputFileMode); err != nil {
			slog.Error("Failed to write file", "path", file.Output, "error", err)
			return fmt.Errorf("write %s: %w", file.Output, err)
		}

		slog.Debug("Wrote file", "path", file.Path, "output", file.Output)
	}

	return nil
}
