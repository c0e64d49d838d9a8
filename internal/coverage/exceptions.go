package coverage

import (
	"strings"

	"github.com/dgallion1/doccover/internal/doctree"
	"github.com/dgallion1/doccover/internal/javadoc"
)

// ExceptionStats reconciles the exceptions a method declares with the ones
// its @throws tags document.
//
// A declared exception is matched by a tag when its qualified name ends with
// the tag's leading word. Tags normally carry simple names while declarations
// are qualified, so this is a heuristic: it can pair types that merely share
// a suffix.
type ExceptionStats struct {
	node

	declaredAndDocumented []string
	declaredOnly          []string
	documentedOnly        []string
}

func newExceptionStats(m *doctree.Method, tags []doctree.Tag) *ExceptionStats {
	e := &ExceptionStats{node: node{kind: KindExceptions}}

	declared := dedupe(m.Throws)
	var idents []string
	for _, t := range javadoc.TagsNamed(tags, javadoc.TagThrows, javadoc.TagException) {
		idents = append(idents, javadoc.FirstWord(t.Text))
	}

	tagMatched := make([]bool, len(idents))
	for _, d := range declared {
		matched := false
		for i, id := range idents {
			if matchesTag(d, id) {
				matched = true
				tagMatched[i] = true
			}
		}
		if matched {
			e.declaredAndDocumented = append(e.declaredAndDocumented, d)
		} else {
			e.declaredOnly = append(e.declaredOnly, d)
		}
	}
	for i, id := range idents {
		if !tagMatched[i] {
			e.documentedOnly = append(e.documentedOnly, id)
		}
	}

	both := int64(len(e.declaredAndDocumented))
	docOnly := int64(len(e.documentedOnly))
	e.documentable = int64(len(e.declaredOnly)) + both + docOnly
	e.documented = both + docOnly
	return e
}

// DeclaredAndDocumented lists declared exceptions that have a matching tag.
func (e *ExceptionStats) DeclaredAndDocumented() []string { return e.declaredAndDocumented }

// DeclaredOnly lists declared exceptions without a matching tag.
func (e *ExceptionStats) DeclaredOnly() []string { return e.declaredOnly }

// DocumentedOnly lists tag identifiers that match no declaration. An
// unparsable tag contributes an empty identifier.
func (e *ExceptionStats) DocumentedOnly() []string { return e.documentedOnly }

func matchesTag(declared, ident string) bool {
	return ident != "" && strings.HasSuffix(declared, ident)
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
