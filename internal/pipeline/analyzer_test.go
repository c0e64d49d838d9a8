package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgallion1/doccover/internal/coverage"
	"github.com/dgallion1/doccover/internal/doctree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sampleTree has many packages whose classes implement an interface declared
// in the first package, so override credit crosses package boundaries.
func sampleTree(n int) *doctree.DocTree {
	api := &doctree.Type{
		Name: "Task", QualifiedName: "api.Task", Kind: doctree.KindInterface, Public: true,
		Comment: "A task.",
		Methods: []*doctree.Method{{Name: "run", Public: true, Comment: "Runs the task."}},
	}
	tree := &doctree.DocTree{
		Title:    "sample",
		Packages: []*doctree.Package{{Name: "api", Comment: "API.", Types: []*doctree.Type{api}}},
	}
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("impl%d", i)
		impl := &doctree.Type{
			Name: "Impl", QualifiedName: name + ".Impl", Kind: doctree.KindClass, Public: true,
			Interfaces: []string{"api.Task"},
			Methods:    []*doctree.Method{{Name: "run", Public: true}},
		}
		tree.Packages = append(tree.Packages, &doctree.Package{Name: name, Types: []*doctree.Type{impl}})
	}
	return tree
}

func TestAnalyze_MatchesSequentialBuild(t *testing.T) {
	tree := sampleTree(20)
	want, err := coverage.Build(tree, coverage.Configuration{})
	require.NoError(t, err)

	a := NewAnalyzer(4, quietLogger())
	got, err := a.Analyze(context.Background(), tree, coverage.Configuration{})
	require.NoError(t, err)

	assert.Equal(t, want.Documentable(), got.Documentable())
	assert.Equal(t, want.Documented(), got.Documented())
	require.Len(t, got.Packages(), 21)
	for i, ps := range got.Packages() {
		assert.Equal(t, tree.Packages[i].Name, ps.Name())
	}
	// Each impl package: undocumented package + undocumented class + credited run.
	assert.Equal(t, int64(3), got.Packages()[1].Documentable())
	assert.Equal(t, int64(1), got.Packages()[1].Documented())
}

func TestAnalyze_PropagatesUnsupportedKind(t *testing.T) {
	tree := sampleTree(3)
	tree.Packages[2].Types = append(tree.Packages[2].Types, &doctree.Type{Name: "R", Kind: "record"})

	_, err := NewAnalyzer(2, quietLogger()).Analyze(context.Background(), tree, coverage.Configuration{})
	require.Error(t, err)
	assert.ErrorIs(t, err, coverage.ErrUnsupportedKind)
	assert.Contains(t, err.Error(), "package impl1")
}

func TestAnalyze_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAnalyzer(2, quietLogger()).Analyze(ctx, sampleTree(5), coverage.Configuration{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_NilTree(t *testing.T) {
	_, err := NewAnalyzer(1, nil).Analyze(context.Background(), nil, coverage.Configuration{})
	assert.Error(t, err)
}

func TestAnalyzeBytes_JSON(t *testing.T) {
	data := []byte(`{"title": "demo", "packages": [{"name": "p", "comment": "P."}]}`)
	r, err := NewAnalyzer(1, quietLogger()).AnalyzeBytes(context.Background(), data, "demo.json", coverage.Configuration{})
	require.NoError(t, err)

	assert.Equal(t, "demo.json", r.Filename)
	assert.Equal(t, ContentHashHex(data), r.ContentHash)
	assert.Equal(t, "demo", r.Project.Name())
	assert.Equal(t, 100.0, r.Project.Percent())
}

func TestAnalyzeBytes_UnsupportedExtension(t *testing.T) {
	_, err := NewAnalyzer(1, quietLogger()).AnalyzeBytes(context.Background(), []byte("x"), "demo.txt", coverage.Configuration{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
}

func TestAnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages:\n  - name: p\n"), 0o644))

	r, err := NewAnalyzer(2, quietLogger()).AnalyzeFile(context.Background(), path, coverage.Configuration{})
	require.NoError(t, err)
	assert.Equal(t, "snap", r.Project.Name())
	assert.Equal(t, int64(1), r.Project.Documentable())
	assert.Equal(t, int64(0), r.Project.Documented())

	_, err = NewAnalyzer(1, quietLogger()).AnalyzeFile(context.Background(), filepath.Join(dir, "missing.json"), coverage.Configuration{})
	assert.ErrorContains(t, err, "read snapshot")
}

func TestAnalyzeBytes_RecordsStats(t *testing.T) {
	a := NewAnalyzer(1, quietLogger())
	data := []byte(`{"packages": [{"name": "p", "comment": "P.", "types": [{"name": "A", "kind": "class"}]}]}`)
	for i := 0; i < 3; i++ {
		_, err := a.AnalyzeBytes(context.Background(), data, "x.json", coverage.Configuration{})
		require.NoError(t, err)
	}
	_, err := a.AnalyzeBytes(context.Background(), data, "x.txt", coverage.Configuration{})
	require.Error(t, err)

	snap := a.Stats().Snapshot()
	assert.Equal(t, 3, snap.Count)
	assert.Equal(t, 3, snap.Packages)
	assert.Equal(t, 3, snap.Types)
	assert.Equal(t, 50.0, snap.Coverage.P50)
}
