package coverage

import (
	"sync"

	"github.com/dgallion1/doccover/internal/doctree"
)

type docState uint8

const (
	stateUnknown docState = iota
	stateInProgress
	stateFull
	statePartial
)

// Resolver answers override-inheritance questions over a whole snapshot.
//
// Results are memoized per method. The memo is filled lazily under a mutex,
// so one Resolver can be shared by goroutines building different packages.
type Resolver struct {
	types  map[string]*doctree.Type
	owners map[*doctree.Method]string

	mu       sync.Mutex
	full     map[*doctree.Method]docState
	inherits map[*doctree.Method]bool
}

// NewResolver indexes the types and methods of tree.
func NewResolver(tree *doctree.DocTree) *Resolver {
	r := &Resolver{
		types:    make(map[string]*doctree.Type),
		owners:   make(map[*doctree.Method]string),
		full:     make(map[*doctree.Method]docState),
		inherits: make(map[*doctree.Method]bool),
	}
	if tree == nil {
		return r
	}
	for _, pkg := range tree.Packages {
		if pkg == nil {
			continue
		}
		for _, t := range pkg.Types {
			if t == nil {
				continue
			}
			id := t.ID(pkg.Name)
			r.types[id] = t
			for _, m := range t.Methods {
				if m != nil {
					r.owners[m] = id
				}
			}
		}
	}
	return r
}

// InheritsDocs reports whether m overrides at least one fully documented
// method. Constructors and methods unknown to the resolver never inherit.
func (r *Resolver) InheritsDocs(m *doctree.Method) bool {
	if r == nil || m == nil || m.Constructor {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inheritsLocked(m)
}

// FullyDocumented reports whether m's documented units equal its
// documentable units, counting override credit.
func (r *Resolver) FullyDocumented(m *doctree.Method) bool {
	if r == nil || m == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fullLocked(m)
}

func (r *Resolver) inheritsLocked(m *doctree.Method) bool {
	if v, ok := r.inherits[m]; ok {
		return v
	}
	result := false
	for _, om := range r.overriddenLocked(m) {
		if r.fullLocked(om) {
			result = true
			break
		}
	}
	r.inherits[m] = result
	return result
}

func (r *Resolver) fullLocked(m *doctree.Method) bool {
	switch r.full[m] {
	case stateFull:
		return true
	case statePartial, stateInProgress:
		// An in-progress method is reached through a cycle in the input.
		return false
	}

	r.full[m] = stateInProgress
	raw := rawMethodStats(m)
	full := raw.documented == raw.documentable
	if !full && raw.documented == 0 && !m.Constructor {
		full = r.inheritsLocked(m)
	}
	if full {
		r.full[m] = stateFull
	} else {
		r.full[m] = statePartial
	}
	return full
}

// overriddenLocked lists the methods m overrides, nearest supertypes first.
// Each supertype is visited once even when reachable along several paths.
func (r *Resolver) overriddenLocked(m *doctree.Method) []*doctree.Method {
	owner, ok := r.owners[m]
	if !ok {
		return nil
	}
	sig := m.Signature()
	visited := map[string]bool{owner: true}
	queue := r.types[owner].Supertypes()

	var out []*doctree.Method
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true

		t := r.types[id]
		if t == nil {
			continue
		}
		for _, am := range t.Methods {
			if am != nil && !am.Constructor && am.Signature() == sig {
				out = append(out, am)
			}
		}
		queue = append(queue, t.Supertypes()...)
	}
	return out
}
