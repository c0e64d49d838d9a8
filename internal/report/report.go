// Package report renders coverage results as console text, markdown, HTML
// or JSON.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/doccover/internal/coverage"
	"github.com/dgallion1/doccover/internal/metrics"
	"github.com/dgallion1/doccover/internal/policy"
)

// Report is everything an exporter renders.
type Report struct {
	Project *coverage.ProjectStats
	Summary coverage.Summary
	// Types is the distribution of per-type coverage percentages.
	Types metrics.Distribution
	// Policy is nil when no limits were evaluated.
	Policy *policy.Result
}

// New assembles a report for project. res may be nil.
func New(project *coverage.ProjectStats, res *policy.Result) *Report {
	var percents []float64
	for _, ps := range project.Packages() {
		for _, ts := range ps.Types() {
			percents = append(percents, ts.Percent())
		}
	}
	return &Report{
		Project: project,
		Summary: project.Summary(),
		Types:   metrics.Summarize(percents),
		Policy:  res,
	}
}

// Row is one line of a flattened coverage tree.
type Row struct {
	Depth        int
	Kind         string
	Name         string
	Qualifier    string
	Documentable int64
	Undocumented int64
	Documented   int64
	Percent      float64
}

// Rows flattens the project depth-first. Groups with no members are left
// out; methods and constructors always appear.
func Rows(project *coverage.ProjectStats) []Row {
	var rows []Row
	coverage.Walk(project, func(n coverage.DocStats, depth int) bool {
		if isGroup(n) && n.Documentable() == 0 {
			return false
		}
		rows = append(rows, Row{
			Depth:        depth,
			Kind:         n.Kind(),
			Name:         n.Name(),
			Qualifier:    n.Qualifier(),
			Documentable: n.Documentable(),
			Undocumented: n.Undocumented(),
			Documented:   n.Documented(),
			Percent:      n.Percent(),
		})
		return true
	})
	return rows
}

func isGroup(n coverage.DocStats) bool {
	switch n.(type) {
	case *coverage.GroupStats, *coverage.ExceptionStats:
		return true
	}
	return false
}

// Exporter renders a report in one format.
type Exporter interface {
	// Ext is the output file extension including the dot.
	Ext() string
	Export(w io.Writer, r *Report) error
}

// Formats lists the accepted format names.
var Formats = []string{"console", "markdown", "html", "json"}

// ForFormat returns the exporter for a format name.
func ForFormat(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "console", "text":
		return &ConsoleExporter{}, nil
	case "markdown", "md":
		return &MarkdownExporter{}, nil
	case "html":
		return &HTMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteFile exports r to dir/name plus the exporter's extension and returns
// the path written.
func WriteFile(dir, name string, e Exporter, r *Report) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name+e.Ext())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := e.Export(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	return path, nil
}
