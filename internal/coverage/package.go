package coverage

import (
	"fmt"
	"strings"

	"github.com/dgallion1/doccover/internal/doctree"
)

// KindPackage labels package nodes.
const KindPackage = "Package"

// PackageStats is the coverage of one package: its own comment plus every
// type that survives the public filter. A package with no surviving types
// still carries its own documentable unit.
type PackageStats struct {
	node

	pkg            *doctree.Package
	selfDocumented bool
	types          []*TypeStats
}

// NewPackageStats builds the coverage of p.
func NewPackageStats(p *doctree.Package, cfg Configuration, res *Resolver) (*PackageStats, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil package", ErrUnsupportedKind)
	}
	ps := &PackageStats{
		node:           node{kind: KindPackage, name: p.Name},
		pkg:            p,
		selfDocumented: strings.TrimSpace(p.Comment) != "",
	}

	children := make([]DocStats, 0, len(p.Types))
	for _, t := range p.Types {
		ok, err := included(cfg, t)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		ts, err := NewTypeStats(t, p.Name, cfg, res)
		if err != nil {
			return nil, err
		}
		ps.types = append(ps.types, ts)
		children = append(children, ts)
	}
	ps.reduce(1, boolToInt(ps.selfDocumented), children)
	return ps, nil
}

// IsDocumented reports whether the package comment is non-empty.
func (s *PackageStats) IsDocumented() bool { return s.selfDocumented }

func (s *PackageStats) Package() *doctree.Package { return s.pkg }
func (s *PackageStats) Types() []*TypeStats       { return s.types }
