// Package pipeline loads documentation snapshots and computes their coverage,
// building packages concurrently.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/doccover/internal/coverage"
	"github.com/dgallion1/doccover/internal/doctree"
	"github.com/dgallion1/doccover/internal/metrics"
	"github.com/dgallion1/doccover/internal/parser"
)

// Analyzer computes project coverage with a bounded number of workers.
type Analyzer struct {
	workers int
	log     *slog.Logger
	stats   *metrics.Window
}

// Result is one finished analysis.
type Result struct {
	Filename    string
	ContentHash string
	Project     *coverage.ProjectStats
	Elapsed     time.Duration
}

// NewAnalyzer creates an analyzer. workers below 1 means one worker.
func NewAnalyzer(workers int, log *slog.Logger) *Analyzer {
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{
		workers: max(workers, 1),
		log:     log,
		stats:   metrics.NewWindow(time.Hour),
	}
}

// Stats returns the window of recent successful analyses.
func (a *Analyzer) Stats() *metrics.Window { return a.stats }

// Analyze builds the coverage of tree. Packages are built in parallel and
// share one resolver; the result keeps the snapshot's package order. The
// first failing package cancels the rest.
func (a *Analyzer) Analyze(ctx context.Context, tree *doctree.DocTree, cfg coverage.Configuration) (*coverage.ProjectStats, error) {
	if tree == nil {
		return nil, errors.New("nil documentation tree")
	}
	res := coverage.NewResolver(tree)
	packages := make([]*coverage.PackageStats, len(tree.Packages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, p := range tree.Packages {
		i, p := i, p
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			ps, err := coverage.NewPackageStats(p, cfg, res)
			if err != nil {
				name := "<nil>"
				if p != nil {
					name = p.Name
				}
				return fmt.Errorf("package %s: %w", name, err)
			}
			packages[i] = ps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return coverage.NewProjectStats(tree.Title, packages), nil
}

// AnalyzeBytes decodes a snapshot, choosing the loader by filename, and
// analyzes it.
func (a *Analyzer) AnalyzeBytes(ctx context.Context, data []byte, filename string, cfg coverage.Configuration) (*Result, error) {
	log := a.log.With("filename", filename, "public_only", cfg.PublicOnly)
	start := time.Now()

	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, err
	}
	tree, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		return nil, err
	}

	project, err := a.Analyze(ctx, tree, cfg)
	if err != nil {
		log.Error("analysis failed", "error", err)
		return nil, err
	}

	r := &Result{
		Filename:    filename,
		ContentHash: ContentHashHex(data),
		Project:     project,
		Elapsed:     time.Since(start),
	}
	sum := project.Summary()
	a.stats.Observe(metrics.Analysis{
		Elapsed:  r.Elapsed,
		Packages: sum.Packages,
		Types:    sum.Types,
		Percent:  project.Percent(),
	})
	log.Info("analysis complete",
		"packages", sum.Packages,
		"types", sum.Types,
		"documentable", project.Documentable(),
		"documented", project.Documented(),
		"percent", project.Percent(),
		"elapsed", r.Elapsed,
	)
	return r, nil
}

// AnalyzeFile reads and analyzes the snapshot at path.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string, cfg coverage.Configuration) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return a.AnalyzeBytes(ctx, data, path, cfg)
}
