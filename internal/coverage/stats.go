// Package coverage computes documentation coverage over a doctree snapshot.
//
// Every node of the result implements DocStats. Nodes are built once,
// bottom-up, and never change afterwards; a node's counts are its own units
// plus the sum of its children's counts.
package coverage

// DocStats is the read-only view every coverage node exposes.
type DocStats interface {
	// Kind is a display label such as "Package", "Method" or "Fields".
	Kind() string
	// Name is the element name. Groups have none.
	Name() string
	// Qualifier is the containing package for types, the owning type for
	// methods, and empty otherwise.
	Qualifier() string

	Documentable() int64
	Documented() int64
	Undocumented() int64
	// Percent is 100*Documented/Documentable, or 0 when nothing is documentable.
	Percent() float64

	Children() []DocStats
}

// Configuration is the analysis policy threaded through every constructor.
type Configuration struct {
	// PublicOnly excludes non-public types and members from all counts.
	PublicOnly bool
}

// Percent returns 100*documented/documentable, guarding division by zero.
func Percent(documented, documentable int64) float64 {
	if documentable == 0 {
		return 0
	}
	return float64(documented) * 100 / float64(documentable)
}

type node struct {
	kind      string
	name      string
	qualifier string

	documentable int64
	documented   int64
	children     []DocStats
}

func (n *node) Kind() string         { return n.kind }
func (n *node) Name() string         { return n.name }
func (n *node) Qualifier() string    { return n.qualifier }
func (n *node) Documentable() int64  { return n.documentable }
func (n *node) Documented() int64    { return n.documented }
func (n *node) Undocumented() int64  { return n.documentable - n.documented }
func (n *node) Percent() float64     { return Percent(n.documented, n.documentable) }
func (n *node) Children() []DocStats { return n.children }

// reduce sets the node's counts to its own units plus the sum over children.
func (n *node) reduce(selfUnits, selfDocumented int64, children []DocStats) {
	n.children = children
	n.documentable = selfUnits
	n.documented = selfDocumented
	for _, c := range children {
		n.documentable += c.Documentable()
		n.documented += c.Documented()
	}
}

// Walk visits root and its descendants depth-first in child order. Returning
// false from fn skips the node's children.
func Walk(root DocStats, fn func(n DocStats, depth int) bool) {
	walk(root, 0, fn)
}

func walk(n DocStats, depth int, fn func(DocStats, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children() {
		walk(c, depth+1, fn)
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
