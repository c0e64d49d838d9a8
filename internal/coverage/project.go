package coverage

import (
	"errors"
	"fmt"

	"github.com/dgallion1/doccover/internal/doctree"
)

// KindProject labels the root node.
const KindProject = "Project"

// ProjectStats sums every package. The project has no documentation of its
// own, so its percent is the ratio of the summed counts.
type ProjectStats struct {
	node

	packages []*PackageStats
}

// NewProjectStats aggregates already built packages.
func NewProjectStats(title string, packages []*PackageStats) *ProjectStats {
	p := &ProjectStats{
		node:     node{kind: KindProject, name: title},
		packages: packages,
	}
	children := make([]DocStats, len(packages))
	for i, pkg := range packages {
		children[i] = pkg
	}
	p.reduce(0, 0, children)
	return p
}

// Build computes the coverage of tree sequentially.
func Build(tree *doctree.DocTree, cfg Configuration) (*ProjectStats, error) {
	if tree == nil {
		return nil, errors.New("nil documentation tree")
	}
	res := NewResolver(tree)
	packages := make([]*PackageStats, 0, len(tree.Packages))
	for _, p := range tree.Packages {
		ps, err := NewPackageStats(p, cfg, res)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", packageName(p), err)
		}
		packages = append(packages, ps)
	}
	return NewProjectStats(tree.Title, packages), nil
}

func (p *ProjectStats) Packages() []*PackageStats { return p.packages }

// Summary counts self-documented packages and types.
type Summary struct {
	Packages           int `json:"packages"`
	DocumentedPackages int `json:"documented_packages"`
	Types              int `json:"types"`
	DocumentedTypes    int `json:"documented_types"`
}

// PackagesPercent is the share of packages with their own comment.
func (s Summary) PackagesPercent() float64 {
	return Percent(int64(s.DocumentedPackages), int64(s.Packages))
}

// TypesPercent is the share of types with their own description.
func (s Summary) TypesPercent() float64 {
	return Percent(int64(s.DocumentedTypes), int64(s.Types))
}

// Summary counts the packages and types of the project and how many of them
// are documented themselves, regardless of their members.
func (p *ProjectStats) Summary() Summary {
	var s Summary
	for _, pkg := range p.packages {
		s.Packages++
		if pkg.IsDocumented() {
			s.DocumentedPackages++
		}
		for _, t := range pkg.types {
			s.Types++
			if t.IsDocumented() {
				s.DocumentedTypes++
			}
		}
	}
	return s
}

func packageName(p *doctree.Package) string {
	if p == nil {
		return "<nil>"
	}
	return p.Name
}
