package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixpass.dev/pkg/fixpass/internal/adapter"
	m "fixpass.dev/pkg/fixpass/internal/model"
)

func TestOutputFilePath(t *testing.T) {
	root := m.Path(filepath.FromSlash("/project"))
	file := m.Path(filepath.FromSlash("/project/src/a.go"))

	tests := []struct {
		name     string
		output   m.Path
		expected m.Path
	}{
		{name: "in place", output: "", expected: file},
		{name: "output folder is the root", output: m.Path(filepath.FromSlash("/project/")), expected: file},
		{name: "separate folder", output: m.Path(filepath.FromSlash("/out")), expected: m.Path(filepath.FromSlash("/out/src/a.go"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := OutputFilePath(file, root, tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, path)
		})
	}
}

func TestOutputFiles_Sorted(t *testing.T) {
	files, err := OutputFiles(map[m.Path]m.ChangedFile{
		"/p/b.go": {NewText: "b"},
		"/p/a.go": {NewText: "a"},
	}, "/p", "")
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, m.Path("/p/a.go"), files[0].Path)
	assert.Equal(t, m.Path("/p/a.go"), files[0].Output)
	assert.Equal(t, "b", files[1].NewText)
}

func TestMaterialize(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeTree(t, root, map[string]string{"pkg/a.go": "old"})

	files, err := OutputFiles(map[m.Path]m.ChangedFile{
		m.Path(filepath.Join(root, "pkg", "a.go")): {OriginalText: "old", NewText: "new"},
	}, m.Path(root), m.Path(out))
	require.NoError(t, err)

	require.NoError(t, Materialize(context.Background(), adapter.NewLocalSourceFSAdapter(), files))

	written, err := os.ReadFile(filepath.Join(out, "pkg", "a.go"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(written))

	untouched, err := os.ReadFile(filepath.Join(root, "pkg", "a.go"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(untouched))
}

func TestMaterialize_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Materialize(ctx, adapter.NewLocalSourceFSAdapter(), []m.OutputFile{{Path: "/p/a.go", Output: "/p/a.go"}})
	require.ErrorIs(t, err, context.Canceled)
}
