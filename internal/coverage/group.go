package coverage

import (
	"strings"

	"github.com/dgallion1/doccover/internal/doctree"
	"github.com/dgallion1/doccover/internal/javadoc"
)

// Group labels.
const (
	KindFields      = "Fields"
	KindEnumConsts  = "Enum Consts"
	KindAnnotations = "Annotations"
	KindParams      = "Params"
	KindExceptions  = "Exceptions"
)

// GroupStats counts a flat list of sibling declarations. A group has no
// documentation of its own, only its members do.
type GroupStats struct {
	node
}

// newMemberGroup counts members that were declared in source and survive the
// public filter. A member is documented when its trimmed comment is not empty.
func newMemberGroup(kind string, members []*doctree.Member, cfg Configuration) (*GroupStats, error) {
	g := &GroupStats{node: node{kind: kind}}
	for _, m := range members {
		ok, err := included(cfg, m)
		if err != nil {
			return nil, err
		}
		if !ok || !m.HasSourcePosition() {
			continue
		}
		g.documentable++
		if strings.TrimSpace(m.Comment) != "" {
			g.documented++
		}
	}
	return g, nil
}

// newParamGroup counts a method's formal parameters against its non-empty
// @param tags. Parameters are never filtered.
func newParamGroup(m *doctree.Method, tags []doctree.Tag) *GroupStats {
	g := &GroupStats{node: node{kind: KindParams}}
	g.documentable = int64(len(m.Params))
	for _, t := range javadoc.TagsNamed(tags, javadoc.TagParam) {
		if strings.TrimSpace(t.Text) != "" {
			g.documented++
		}
	}
	g.documented = min(g.documented, g.documentable)
	return g
}
