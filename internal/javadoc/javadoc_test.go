package javadoc

import (
	"testing"

	"github.com/dgallion1/doccover/internal/doctree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DescriptionAndTags(t *testing.T) {
	raw := "Reads the file.\nSecond line.\n@param path the path\n  continued\n@return the bytes\n@throws IOException when unreadable"
	c := Parse(raw)

	assert.Equal(t, "Reads the file.\nSecond line.", c.Description)
	require.Len(t, c.Tags, 3)
	assert.Equal(t, doctree.Tag{Name: "@param", Text: "path the path\ncontinued"}, c.Tags[0])
	assert.Equal(t, doctree.Tag{Name: "@return", Text: "the bytes"}, c.Tags[1])
	assert.Equal(t, doctree.Tag{Name: "@throws", Text: "IOException when unreadable"}, c.Tags[2])
}

func TestParse_StarredLines(t *testing.T) {
	raw := " * Adds numbers.\n * @param a first\n * @return sum"
	c := Parse(raw)

	assert.Equal(t, "Adds numbers.", c.Description)
	require.Len(t, c.Tags, 2)
	assert.Equal(t, "@param", c.Tags[0].Name)
	assert.Equal(t, "a first", c.Tags[0].Text)
}

func TestParse_SourceDelimiters(t *testing.T) {
	c := Parse("/**\n * Adds numbers.\n *\n * @return sum\n */")
	assert.Equal(t, "Adds numbers.", c.Description)
	require.Len(t, c.Tags, 1)
	assert.Equal(t, doctree.Tag{Name: "@return", Text: "sum"}, c.Tags[0])

	c = Parse("/** @throws IOException on error */")
	assert.Equal(t, "", c.Description)
	require.Len(t, c.Tags, 1)
	assert.Equal(t, "IOException on error", c.Tags[0].Text)
}

func TestParse_TagWithoutText(t *testing.T) {
	c := Parse("@throws")
	require.Len(t, c.Tags, 1)
	assert.Equal(t, "@throws", c.Tags[0].Name)
	assert.Equal(t, "", c.Tags[0].Text)
	assert.Equal(t, "", c.Description)
}

func TestHasDescription(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"", false},
		{"   \n\t ", false},
		{"Does a thing.", true},
		{"@return only tags", false},
		{"\n  @param x the x\n@return y", false},
		{"<p></p>\n@return markup only", false},
		{"<p>Real prose.</p>", true},
		{"{@inheritDoc}", true},
		{"Prose.\n@return y", true},
		{"/**\n * @return x\n */", false},
		{"/** @author x */", false},
		{"/**/", false},
		{"/**\n * Prose.\n */", true},
		{"/** Prose. */", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HasDescription(tt.raw), "raw=%q", tt.raw)
	}
}

func TestFirstWord(t *testing.T) {
	assert.Equal(t, "IOException", FirstWord("IOException if the file is missing"))
	assert.Equal(t, "java.io.IOException", FirstWord("  java.io.IOException\tbad"))
	assert.Equal(t, "", FirstWord("   "))
	assert.Equal(t, "IOException", FirstWord("IOException, if bad"))
	assert.Equal(t, "IOException", FirstWord("IOException: if bad"))
	assert.Equal(t, "java.io.IOException", FirstWord("java.io.IOException."))
	assert.Equal(t, "Outer$Inner", FirstWord("Outer$Inner when nested"))
	assert.Equal(t, "", FirstWord("{@link Foo}"))
}

func TestMethodTags_PrefersExplicitTags(t *testing.T) {
	m := &doctree.Method{
		Comment: "Doc.\n@return parsed",
		Tags:    []doctree.Tag{{Name: "@return", Text: "explicit"}},
	}
	tags := MethodTags(m)
	require.Len(t, tags, 1)
	assert.Equal(t, "explicit", tags[0].Text)

	m.Tags = nil
	tags = MethodTags(m)
	require.Len(t, tags, 1)
	assert.Equal(t, "parsed", tags[0].Text)
}

func TestTagsNamed(t *testing.T) {
	tags := []doctree.Tag{
		{Name: "@throws", Text: "A"},
		{Name: "@param", Text: "x"},
		{Name: "@exception", Text: "B"},
	}
	got := TagsNamed(tags, TagThrows, TagException)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Text)
	assert.Equal(t, "B", got[1].Text)
}
