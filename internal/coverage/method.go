package coverage

import (
	"strings"

	"github.com/dgallion1/doccover/internal/doctree"
	"github.com/dgallion1/doccover/internal/javadoc"
)

// Method kinds.
const (
	KindMethod      = "Method"
	KindConstructor = "Constructor"
)

// MethodStats is the coverage of one method or constructor: its own comment,
// its return value, its parameters and its exceptions.
type MethodStats struct {
	node

	method           *doctree.Method
	selfDocumented   bool
	returnDocumented bool
	inherited        bool

	params     *GroupStats
	exceptions *ExceptionStats
}

// NewMethodStats builds the coverage of m, declared on the type identified by
// owner. When m documents nothing itself, res is asked whether an overridden
// ancestor method is fully documented; if so m gets full credit. A nil res
// disables that lookup.
func NewMethodStats(m *doctree.Method, owner string, res *Resolver) *MethodStats {
	ms := rawMethodStats(m)
	ms.qualifier = owner
	if ms.documented == 0 && res.InheritsDocs(m) {
		ms.documented = ms.documentable
		ms.inherited = true
	}
	return ms
}

// rawMethodStats counts m without override credit.
func rawMethodStats(m *doctree.Method) *MethodStats {
	tags := javadoc.MethodTags(m)
	ms := &MethodStats{
		node:           node{kind: KindMethod, name: m.Name},
		method:         m,
		selfDocumented: javadoc.HasDescription(m.Comment),
		params:         newParamGroup(m, tags),
		exceptions:     newExceptionStats(m, tags),
	}
	if m.Constructor {
		ms.kind = KindConstructor
	}

	selfUnits := int64(1)
	if !m.IsVoid() {
		selfUnits++
		ms.returnDocumented = returnDocumented(tags)
	}
	ms.reduce(selfUnits, boolToInt(ms.selfDocumented)+boolToInt(ms.returnDocumented),
		[]DocStats{ms.params, ms.exceptions})
	return ms
}

func returnDocumented(tags []doctree.Tag) bool {
	for _, t := range javadoc.TagsNamed(tags, javadoc.TagReturn) {
		if strings.TrimSpace(t.Text) != "" {
			return true
		}
	}
	return false
}

// IsDocumented reports whether the method's own comment has a description.
func (s *MethodStats) IsDocumented() bool { return s.selfDocumented }

// IsReturnDocumented reports whether a non-void method documents its result.
func (s *MethodStats) IsReturnDocumented() bool { return s.returnDocumented }

// Inherited reports whether the counts were credited from an overridden method.
func (s *MethodStats) Inherited() bool { return s.inherited }

func (s *MethodStats) Params() *GroupStats         { return s.params }
func (s *MethodStats) Exceptions() *ExceptionStats { return s.exceptions }
func (s *MethodStats) Method() *doctree.Method     { return s.method }

// Signature is the method name with its parameter types.
func (s *MethodStats) Signature() string { return s.method.Signature() }
