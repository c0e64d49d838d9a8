package report

import (
	"encoding/json"
	"io"

	"github.com/dgallion1/doccover/internal/coverage"
	"github.com/dgallion1/doccover/internal/metrics"
	"github.com/dgallion1/doccover/internal/policy"
)

// Node is the JSON form of one coverage node.
type Node struct {
	Kind         string  `json:"kind"`
	Name         string  `json:"name,omitempty"`
	Qualifier    string  `json:"qualifier,omitempty"`
	Documentable int64   `json:"documentable"`
	Documented   int64   `json:"documented"`
	Undocumented int64   `json:"undocumented"`
	Percent      float64 `json:"percent"`
	Inherited    bool    `json:"inherited,omitempty"`
	Children     []Node  `json:"children,omitempty"`
}

// NewNode converts a coverage tree.
func NewNode(n coverage.DocStats) Node {
	out := Node{
		Kind:         n.Kind(),
		Name:         n.Name(),
		Qualifier:    n.Qualifier(),
		Documentable: n.Documentable(),
		Documented:   n.Documented(),
		Undocumented: n.Undocumented(),
		Percent:      n.Percent(),
	}
	if ms, ok := n.(*coverage.MethodStats); ok {
		out.Inherited = ms.Inherited()
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, NewNode(c))
	}
	return out
}

// Document is the top-level JSON report.
type Document struct {
	Project         Node                 `json:"project"`
	Summary         coverage.Summary     `json:"summary"`
	PackagesPercent float64              `json:"packages_percent"`
	TypesPercent    float64              `json:"types_percent"`
	TypeCoverage    metrics.Distribution `json:"type_coverage"`
	Policy          *policy.Result       `json:"policy,omitempty"`
}

// NewDocument builds the JSON form of r.
func NewDocument(r *Report) Document {
	return Document{
		Project:         NewNode(r.Project),
		Summary:         r.Summary,
		PackagesPercent: r.Summary.PackagesPercent(),
		TypesPercent:    r.Summary.TypesPercent(),
		TypeCoverage:    r.Types,
		Policy:          r.Policy,
	}
}

// JSONExporter writes the full coverage tree as indented JSON.
type JSONExporter struct{}

func (e *JSONExporter) Ext() string { return ".json" }

func (e *JSONExporter) Export(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(r))
}
