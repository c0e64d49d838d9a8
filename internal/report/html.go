package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>JavaDoc Coverage Report: {{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 1.5em; }
th, td { border: 1px solid #ccc; padding: 4px 8px; }
th { background: #333; color: #fff; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// HTMLExporter renders the markdown report to a standalone HTML page.
type HTMLExporter struct{}

func (e *HTMLExporter) Ext() string { return ".html" }

func (e *HTMLExporter) Export(w io.Writer, r *Report) error {
	var src, body bytes.Buffer
	writeMarkdown(&src, r)
	if err := md.Convert(src.Bytes(), &body); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	return page.Execute(w, struct {
		Title string
		Body  template.HTML
	}{
		Title: r.Project.Name(),
		Body:  template.HTML(body.String()),
	})
}
