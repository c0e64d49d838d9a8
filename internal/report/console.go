package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ConsoleExporter prints an indented plain-text tree with colored
// percentages.
type ConsoleExporter struct {
	// NoColor disables ANSI colors regardless of the terminal.
	NoColor bool
}

func (e *ConsoleExporter) Ext() string { return ".txt" }

func (e *ConsoleExporter) Export(w io.Writer, r *Report) error {
	ew := &errWriter{w: w}

	for _, row := range Rows(r.Project)[1:] {
		label := row.Kind
		if row.Name != "" {
			label += ": " + row.Name
		}
		if row.Qualifier != "" && row.Depth <= 2 {
			label += " (" + row.Qualifier + ")"
		}
		ew.printf("%s%-*s %6d Undocumented: %6d Documented: %6d (%s)\n",
			strings.Repeat("  ", row.Depth-1), max(40-2*(row.Depth-1), 1), label,
			row.Documentable, row.Undocumented, row.Documented, e.percent(row.Percent))
	}

	s := r.Summary
	ew.printf("\nPackages: %d Documented: %d (%s)\n", s.Packages, s.DocumentedPackages, e.percent(s.PackagesPercent()))
	ew.printf("Types:    %d Documented: %d (%s)\n", s.Types, s.DocumentedTypes, e.percent(s.TypesPercent()))
	if d := r.Types; d.Count > 0 {
		ew.printf("Type coverage: min %.2f%% p50 %.2f%% p95 %.2f%% p99 %.2f%% max %.2f%% avg %.2f%%\n",
			d.Min, d.P50, d.P95, d.P99, d.Max, d.Avg)
	}
	ew.printf("\n%s %s\n", e.bold("Project Documentation Coverage:"), e.percent(r.Project.Percent()))

	if p := r.Policy; p != nil {
		status := e.paint(color.FgGreen, string(p.Status))
		if !p.Passed {
			status = e.paint(color.FgRed, string(p.Status))
		}
		ew.printf("Coverage limits: %s (%d checked, %d below minimum)\n", status, p.Checked, len(p.Violations))
		for _, v := range p.Violations {
			ew.printf("  %s\n", v)
		}
	}
	return ew.err
}

func (e *ConsoleExporter) percent(p float64) string {
	attr := color.FgRed
	switch {
	case p >= 80:
		attr = color.FgGreen
	case p >= 50:
		attr = color.FgYellow
	}
	return e.paint(attr, fmt.Sprintf("%.2f%%", p))
}

func (e *ConsoleExporter) bold(s string) string {
	return e.paint(color.Bold, s)
}

func (e *ConsoleExporter) paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if e.NoColor {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// errWriter keeps the first write error so a sequence of prints can be
// checked once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
