package coverage

import (
	"testing"

	"github.com/dgallion1/doccover/internal/doctree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pos = &doctree.Position{File: "X.java", Line: 1}

func field(name, comment string, public bool) *doctree.Member {
	return &doctree.Member{Name: name, Comment: comment, Public: public, Position: pos}
}

func method(name, comment string) *doctree.Method {
	return &doctree.Method{Name: name, Comment: comment, Public: true}
}

func class(name string, public bool) *doctree.Type {
	return &doctree.Type{Name: name, QualifiedName: "p." + name, Kind: doctree.KindClass, Public: public}
}

func iface(name string) *doctree.Type {
	return &doctree.Type{Name: name, QualifiedName: "p." + name, Kind: doctree.KindInterface, Public: true}
}

func tree(pkgs ...*doctree.Package) *doctree.DocTree {
	return &doctree.DocTree{Title: "test", Packages: pkgs}
}

func pkg(name, comment string, types ...*doctree.Type) *doctree.Package {
	return &doctree.Package{Name: name, Comment: comment, Types: types}
}

func build(t *testing.T, tr *doctree.DocTree, cfg Configuration) *ProjectStats {
	t.Helper()
	p, err := Build(tr, cfg)
	require.NoError(t, err)
	assertInvariants(t, p)
	return p
}

// assertInvariants checks the counting invariants on every node under root.
func assertInvariants(t *testing.T, root DocStats) {
	t.Helper()
	Walk(root, func(n DocStats, _ int) bool {
		assert.GreaterOrEqual(t, n.Documented(), int64(0), "%s %s", n.Kind(), n.Name())
		assert.LessOrEqual(t, n.Documented(), n.Documentable(), "%s %s", n.Kind(), n.Name())
		assert.Equal(t, n.Documentable()-n.Documented(), n.Undocumented())
		if n.Documentable() == 0 {
			assert.Equal(t, int64(0), n.Documented())
			assert.Equal(t, 0.0, n.Percent())
		} else {
			assert.InDelta(t, 100*float64(n.Documented())/float64(n.Documentable()), n.Percent(), 1e-9)
		}

		var sumAble, sumDoc int64
		for _, c := range n.Children() {
			sumAble += c.Documentable()
			sumDoc += c.Documented()
		}
		self, selfDoc := selfUnits(n)
		assert.Equal(t, self+sumAble, n.Documentable(), "documentable law for %s %s", n.Kind(), n.Name())
		if ms, ok := n.(*MethodStats); ok && ms.Inherited() {
			assert.Equal(t, n.Documentable(), n.Documented())
		} else if len(n.Children()) > 0 || self > 0 {
			assert.Equal(t, selfDoc+sumDoc, n.Documented(), "documented law for %s %s", n.Kind(), n.Name())
		}
		return true
	})
}

func selfUnits(n DocStats) (int64, int64) {
	switch v := n.(type) {
	case *ProjectStats:
		return 0, 0
	case *PackageStats:
		return 1, boolToInt(v.IsDocumented())
	case *TypeStats:
		return 1, boolToInt(v.IsDocumented())
	case *MethodStats:
		self, doc := int64(1), boolToInt(v.IsDocumented())
		if !v.Method().IsVoid() {
			self++
			doc += boolToInt(v.IsReturnDocumented())
		}
		return self, doc
	case *GroupStats:
		return v.Documentable(), v.Documented()
	case *ExceptionStats:
		return v.Documentable(), v.Documented()
	}
	return 0, 0
}
