package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"fixpass.dev/pkg/fixpass/internal/adapter"
	m "fixpass.dev/pkg/fixpass/internal/model"
)

// Project is an in-memory snapshot of the source files under a root.
type Project struct {
	Root  m.Path
	files []m.SourceFile
	index map[m.Path]int
}

// NewProject builds a snapshot from files. Files are ordered by path.
func NewProject(root m.Path, files []m.SourceFile) *Project {
	sorted := make([]m.SourceFile, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	index := make(map[m.Path]int, len(sorted))
	for i, file := range sorted {
		index[file.Path] = i
	}

	return &Project{Root: root, files: sorted, index: index}
}

// Files returns the snapshot files in path order.
func (p *Project) Files() []m.SourceFile {
	return p.files
}

// Text returns the current text of path.
func (p *Project) Text(path m.Path) (string, bool) {
	i, ok := p.index[path]
	if !ok {
		return "", false
	}

	return p.files[i].Text, true
}

// Has reports whether path is part of the snapshot.
func (p *Project) Has(path m.Path) bool {
	_, ok := p.index[path]
	return ok
}

// ProjectLoader builds project snapshots.
type ProjectLoader interface {
	// Load reads the project under root and replaces the text of every file in
	// overlay with its edited text.
	Load(ctx context.Context, root m.Path, overlay map[m.Path]m.ChangedFile) (*Project, error)
}

type projectLoader struct {
	fs         adapter.SourceFSAdapter
	extensions []string
	exclude    []*regexp.Regexp
	workers    int
}

// NewProjectLoader creates a loader that keeps files with one of extensions and
// skips paths, relative to the root, matching one of the exclude patterns.
func NewProjectLoader(fs adapter.SourceFSAdapter, extensions []string, exclude []string) (ProjectLoader, error) {
	compiled := make([]*regexp.Regexp, 0, len(exclude))

	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return &projectLoader{
		fs:         fs,
		extensions: extensions,
		exclude:    compiled,
		workers:    runtime.GOMAXPROCS(0),
	}, nil
}

func (l *projectLoader) Load(ctx context.Context, root m.Path, overlay map[m.Path]m.ChangedFile) (*Project, error) {
	paths, err := l.collect(ctx, root)
	if err != nil {
		slog.Error("Failed to walk project", "root", root, "error", err)
		return nil, fmt.Errorf("walk project %s: %w", root, err)
	}

	files := make([]m.SourceFile, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(l.workers)

	for i, path := range paths {
		if changed, ok := overlay[path]; ok {
			files[i] = m.SourceFile{Path: path, Text: changed.NewText}
			continue
		}

		group.Go(func() error {
			content, err := l.fs.ReadFile(groupCtx, path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			files[i] = m.SourceFile{Path: path, Text: string(content)}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to read project files", "root", root, "error", err)
		return nil, err
	}

	return NewProject(root, files), nil
}

func (l *projectLoader) collect(ctx context.Context, root m.Path) ([]m.Path, error) {
	var paths []m.Path

	err := l.fs.Walk(ctx, root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != string(root) && adapter.IsSkippedDir(info.Name()) {
				return adapter.SkipDir
			}

			return nil
		}

		if !l.accepts(root, path) {
			return nil
		}

		paths = append(paths, m.Path(path))

		return nil
	})

	return paths, err
}

func (l *projectLoader) accepts(root m.Path, path string) bool {
	if !hasExtension(path, l.extensions) {
		return false
	}

	rel, err := filepath.Rel(string(root), path)
	if err != nil {
		rel = path
	}

	rel = filepath.ToSlash(rel)

	for _, re := range l.exclude {
		if re.MatchString(rel) {
			return false
		}
	}

	return true
}

func hasExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}

	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}

	return false
}
