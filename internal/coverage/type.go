package coverage

import (
	"github.com/dgallion1/doccover/internal/doctree"
	"github.com/dgallion1/doccover/internal/javadoc"
)

// Type kinds.
const (
	KindClass      = "Class"
	KindInterface  = "Interface"
	KindEnum       = "Enum"
	KindAnnotation = "Annotation"
)

// TypeStats is the coverage of a class, interface, enum or annotation type
// and all of its members.
type TypeStats struct {
	node

	typ            *doctree.Type
	selfDocumented bool

	fields       *GroupStats
	enumConsts   *GroupStats
	annotations  *GroupStats
	constructors []*MethodStats
	methods      []*MethodStats
}

// NewTypeStats builds the coverage of t, declared in package pkg. It does
// not apply the public filter to t itself; PackageStats decides whether t is
// counted at all.
func NewTypeStats(t *doctree.Type, pkg string, cfg Configuration, res *Resolver) (*TypeStats, error) {
	if _, err := isPublic(t); err != nil {
		return nil, err
	}
	ts := &TypeStats{
		node:           node{kind: typeKindLabel(t.Kind), name: t.Name, qualifier: pkg},
		typ:            t,
		selfDocumented: javadoc.HasDescription(t.Comment),
	}

	var err error
	if ts.fields, err = newMemberGroup(KindFields, t.Fields, cfg); err != nil {
		return nil, err
	}
	var enumConsts, elements []*doctree.Member
	if t.Kind == doctree.KindEnum {
		enumConsts = t.EnumConstants
	}
	if t.Kind == doctree.KindAnnotation {
		elements = t.AnnotationElements
	}
	if ts.enumConsts, err = newMemberGroup(KindEnumConsts, enumConsts, cfg); err != nil {
		return nil, err
	}
	if ts.annotations, err = newMemberGroup(KindAnnotations, elements, cfg); err != nil {
		return nil, err
	}

	owner := t.ID(pkg)
	if ts.constructors, err = methodStatsList(t, t.Constructors, owner, cfg, res); err != nil {
		return nil, err
	}
	if ts.methods, err = methodStatsList(t, t.Methods, owner, cfg, res); err != nil {
		return nil, err
	}

	children := []DocStats{ts.fields, ts.enumConsts, ts.annotations}
	for _, c := range ts.constructors {
		children = append(children, c)
	}
	for _, m := range ts.methods {
		children = append(children, m)
	}
	ts.reduce(1, boolToInt(ts.selfDocumented), children)
	return ts, nil
}

func methodStatsList(t *doctree.Type, methods []*doctree.Method, owner string, cfg Configuration, res *Resolver) ([]*MethodStats, error) {
	out := make([]*MethodStats, 0, len(methods))
	for _, m := range methods {
		ok, err := included(cfg, m)
		if err != nil {
			return nil, err
		}
		if !ok || isEnumBuiltin(t, m) {
			continue
		}
		out = append(out, NewMethodStats(m, owner, res))
	}
	return out, nil
}

// isEnumBuiltin reports whether m is one of the members the compiler adds to
// every enum.
func isEnumBuiltin(t *doctree.Type, m *doctree.Method) bool {
	if t.Kind != doctree.KindEnum || m.Constructor {
		return false
	}
	return m.Name == "values" || m.Name == "valueOf"
}

func typeKindLabel(k doctree.TypeKind) string {
	switch k {
	case doctree.KindInterface:
		return KindInterface
	case doctree.KindEnum:
		return KindEnum
	case doctree.KindAnnotation:
		return KindAnnotation
	default:
		return KindClass
	}
}

// IsDocumented reports whether the type's own comment has a description.
func (s *TypeStats) IsDocumented() bool { return s.selfDocumented }

func (s *TypeStats) Type() *doctree.Type          { return s.typ }
func (s *TypeStats) Fields() *GroupStats          { return s.fields }
func (s *TypeStats) EnumConsts() *GroupStats      { return s.enumConsts }
func (s *TypeStats) Annotations() *GroupStats     { return s.annotations }
func (s *TypeStats) Constructors() []*MethodStats { return s.constructors }
func (s *TypeStats) Methods() []*MethodStats      { return s.methods }
