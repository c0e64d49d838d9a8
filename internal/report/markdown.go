package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// MarkdownExporter writes a markdown document with one table row per
// coverage node.
type MarkdownExporter struct{}

func (e *MarkdownExporter) Ext() string { return ".md" }

func (e *MarkdownExporter) Export(w io.Writer, r *Report) error {
	var buf bytes.Buffer
	writeMarkdown(&buf, r)
	_, err := w.Write(buf.Bytes())
	return err
}

func writeMarkdown(buf *bytes.Buffer, r *Report) {
	fmt.Fprintf(buf, "# JavaDoc Coverage Report: %s\n\n", mdEscape(r.Project.Name()))
	fmt.Fprintf(buf, "**Project Documentation Coverage: %.2f%%**\n\n", r.Project.Percent())

	buf.WriteString("| Element Type | Name | Package | Documentable | Undocumented | Documented | Documented Percent |\n")
	buf.WriteString("|---|---|---|---:|---:|---:|---:|\n")
	for _, row := range Rows(r.Project)[1:] {
		fmt.Fprintf(buf, "| %s%s | %s | %s | %d | %d | %d | %.2f%% |\n",
			strings.Repeat("&nbsp;", 4*(row.Depth-1)), row.Kind,
			mdEscape(row.Name), mdEscape(row.Qualifier),
			row.Documentable, row.Undocumented, row.Documented, row.Percent)
	}

	s := r.Summary
	buf.WriteString("\n## Summary\n\n")
	buf.WriteString("| | Total | Documented | Percent |\n|---|---:|---:|---:|\n")
	fmt.Fprintf(buf, "| Packages | %d | %d | %.2f%% |\n", s.Packages, s.DocumentedPackages, s.PackagesPercent())
	fmt.Fprintf(buf, "| Types | %d | %d | %.2f%% |\n", s.Types, s.DocumentedTypes, s.TypesPercent())

	if d := r.Types; d.Count > 0 {
		buf.WriteString("\n### Type coverage distribution\n\n")
		buf.WriteString("| Count | Min | P50 | P95 | P99 | Max | Avg |\n|---:|---:|---:|---:|---:|---:|---:|\n")
		fmt.Fprintf(buf, "| %d | %.2f%% | %.2f%% | %.2f%% | %.2f%% | %.2f%% | %.2f%% |\n",
			d.Count, d.Min, d.P50, d.P95, d.P99, d.Max, d.Avg)
	}

	if p := r.Policy; p != nil {
		fmt.Fprintf(buf, "\n## Coverage limits: %s\n\n", p.Status)
		if len(p.Violations) == 0 {
			fmt.Fprintf(buf, "All %d checked elements meet their minimum.\n", p.Checked)
		}
		for _, v := range p.Violations {
			fmt.Fprintf(buf, "- %s\n", mdEscape(v.String()))
		}
	}
}

var mdReplacer = strings.NewReplacer("|", `\|`, "<", "&lt;", ">", "&gt;", "*", `\*`, "_", `\_`)

func mdEscape(s string) string { return mdReplacer.Replace(s) }
