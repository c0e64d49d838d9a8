package coverage

import (
	"testing"

	"github.com/dgallion1/doccover/internal/doctree"
	"github.com/stretchr/testify/assert"
)

func TestExceptionStats_PartiallyDocumented(t *testing.T) {
	m := &doctree.Method{
		Name:   "read",
		Throws: []string{"java.io.IOException", "java.lang.IllegalArgumentException"},
		Tags:   []doctree.Tag{{Name: "@throws", Text: "IOException if the file cannot be read"}},
	}
	e := newExceptionStats(m, m.Tags)

	assert.Equal(t, KindExceptions, e.Kind())
	assert.Equal(t, int64(2), e.Documentable())
	assert.Equal(t, int64(1), e.Documented())
	assert.Equal(t, 50.0, e.Percent())
	assert.Equal(t, []string{"java.io.IOException"}, e.DeclaredAndDocumented())
	assert.Equal(t, []string{"java.lang.IllegalArgumentException"}, e.DeclaredOnly())
	assert.Empty(t, e.DocumentedOnly())
}

func TestExceptionStats_DocumentedOnlyCountsBothWays(t *testing.T) {
	m := &doctree.Method{
		Name:   "div",
		Throws: []string{"java.io.IOException"},
		Tags: []doctree.Tag{
			{Name: "@throws", Text: "IOException on I/O"},
			{Name: "@throws", Text: "ArithmeticException when dividing by zero"},
		},
	}
	e := newExceptionStats(m, m.Tags)

	assert.Equal(t, int64(2), e.Documentable())
	assert.Equal(t, int64(2), e.Documented())
	assert.Equal(t, []string{"ArithmeticException"}, e.DocumentedOnly())
}

func TestExceptionStats_PunctuationAfterIdentifier(t *testing.T) {
	m := &doctree.Method{
		Name:   "read",
		Throws: []string{"java.io.IOException"},
		Tags:   []doctree.Tag{{Name: "@throws", Text: "IOException, if bad"}},
	}
	e := newExceptionStats(m, m.Tags)

	assert.Equal(t, int64(1), e.Documentable())
	assert.Equal(t, int64(1), e.Documented())
	assert.Equal(t, []string{"java.io.IOException"}, e.DeclaredAndDocumented())
	assert.Empty(t, e.DocumentedOnly())
}

func TestExceptionStats_UndeclaredTagAddsOneAndOne(t *testing.T) {
	base := &doctree.Method{Name: "f", Throws: []string{"java.io.IOException"}}
	before := newExceptionStats(base, nil)

	tags := []doctree.Tag{{Name: "@throws", Text: "ArithmeticException always"}}
	after := newExceptionStats(base, tags)

	assert.Equal(t, before.Documentable()+1, after.Documentable())
	assert.Equal(t, before.Documented()+1, after.Documented())
}

func TestExceptionStats_UnparsableTagIsDocumentedOnly(t *testing.T) {
	m := &doctree.Method{
		Name:   "f",
		Throws: []string{"java.io.IOException"},
		Tags:   []doctree.Tag{{Name: "@throws", Text: "   "}},
	}
	e := newExceptionStats(m, m.Tags)

	assert.Equal(t, int64(2), e.Documentable())
	assert.Equal(t, int64(1), e.Documented())
	assert.Equal(t, []string{"java.io.IOException"}, e.DeclaredOnly())
	assert.Equal(t, []string{""}, e.DocumentedOnly())
}

func TestExceptionStats_ExceptionTagSynonym(t *testing.T) {
	m := &doctree.Method{
		Name:   "f",
		Throws: []string{"java.io.IOException"},
		Tags:   []doctree.Tag{{Name: "@exception", Text: "IOException when closed"}},
	}
	e := newExceptionStats(m, m.Tags)
	assert.Equal(t, int64(1), e.Documentable())
	assert.Equal(t, int64(1), e.Documented())
}

func TestExceptionStats_DuplicateDeclarationsCountOnce(t *testing.T) {
	m := &doctree.Method{
		Name:   "f",
		Throws: []string{"java.io.IOException", "java.io.IOException"},
	}
	e := newExceptionStats(m, nil)
	assert.Equal(t, int64(1), e.Documentable())
	assert.Equal(t, int64(0), e.Documented())
}

func TestExceptionStats_TwoTagsForOneDeclaration(t *testing.T) {
	m := &doctree.Method{
		Name:   "f",
		Throws: []string{"java.io.IOException"},
		Tags: []doctree.Tag{
			{Name: "@throws", Text: "IOException when closed"},
			{Name: "@throws", Text: "java.io.IOException when full"},
		},
	}
	e := newExceptionStats(m, m.Tags)
	assert.Equal(t, int64(1), e.Documentable())
	assert.Equal(t, int64(1), e.Documented())
}

func TestExceptionStats_SuffixHeuristic(t *testing.T) {
	// Known approximation: a tag naming a shorter simple name matches any
	// declared type ending with it.
	m := &doctree.Method{
		Name:   "f",
		Throws: []string{"com.acme.FooIOException"},
		Tags:   []doctree.Tag{{Name: "@throws", Text: "IOException"}},
	}
	e := newExceptionStats(m, m.Tags)
	assert.Equal(t, []string{"com.acme.FooIOException"}, e.DeclaredAndDocumented())
}

func TestExceptionStats_None(t *testing.T) {
	e := newExceptionStats(&doctree.Method{Name: "f"}, nil)
	assert.Equal(t, int64(0), e.Documentable())
	assert.Equal(t, 0.0, e.Percent())
}
