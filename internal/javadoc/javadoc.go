// Package javadoc splits raw documentation comments into their descriptive
// prose and block tags.
package javadoc

import (
	"strings"
	"unicode"

	"github.com/dgallion1/doccover/internal/doctree"
	"golang.org/x/net/html"
)

// Block tag names understood by the coverage engine.
const (
	TagParam     = "@param"
	TagReturn    = "@return"
	TagThrows    = "@throws"
	TagException = "@exception"
)

// Comment is a raw comment split into description and block tags.
type Comment struct {
	Description string
	Tags        []doctree.Tag
}

// Parse splits raw comment text. The "/**" and "*/" delimiters of a source
// comment are dropped first. A block tag starts on a line whose first
// non-blank character (after an optional leading "*") is "@"; its text runs
// until the next block tag.
func Parse(raw string) Comment {
	var c Comment
	var desc strings.Builder
	var cur *doctree.Tag
	var text strings.Builder

	flush := func() {
		if cur != nil {
			cur.Text = strings.TrimSpace(text.String())
			c.Tags = append(c.Tags, *cur)
			cur = nil
		}
		text.Reset()
	}

	for _, line := range strings.Split(stripDelimiters(raw), "\n") {
		line = stripLeader(line)
		if strings.HasPrefix(line, "@") {
			flush()
			name, rest := line, ""
			if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
				name, rest = line[:i], line[i+1:]
			}
			cur = &doctree.Tag{Name: name}
			text.WriteString(rest)
			continue
		}
		if cur != nil {
			text.WriteString("\n")
			text.WriteString(line)
			continue
		}
		if desc.Len() > 0 {
			desc.WriteString("\n")
		}
		desc.WriteString(line)
	}
	flush()

	c.Description = strings.TrimSpace(desc.String())
	return c
}

// HasDescription reports whether the raw comment has prose before its first
// block tag. HTML markup alone does not count as prose.
func HasDescription(raw string) bool {
	desc := Parse(strings.TrimSpace(raw)).Description
	if desc == "" {
		return false
	}
	return PlainText(desc) != ""
}

// PlainText returns the text content of an HTML fragment, trimmed.
func PlainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var buf strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(buf.String())
		case html.TextToken:
			buf.Write(z.Text())
		}
	}
}

// FirstWord returns the identifier that leads text: the first
// whitespace-delimited token cut at the first character that cannot appear
// in a qualified name. It returns "" when text is blank.
func FirstWord(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	word := fields[0]
	if i := strings.IndexFunc(word, func(r rune) bool { return !isIdentRune(r) }); i >= 0 {
		word = word[:i]
	}
	return strings.TrimRight(word, ".")
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '$'
}

// TagsNamed returns the tags whose name is one of names, in order.
func TagsNamed(tags []doctree.Tag, names ...string) []doctree.Tag {
	var out []doctree.Tag
	for _, t := range tags {
		for _, n := range names {
			if t.Name == n {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// MethodTags returns the method's explicit tags, or the tags parsed from its
// comment when none were supplied.
func MethodTags(m *doctree.Method) []doctree.Tag {
	if m.Tags != nil {
		return m.Tags
	}
	return Parse(m.Comment).Tags
}

func stripDelimiters(raw string) string {
	raw = strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(raw, "/**"); ok {
		raw = strings.TrimPrefix(rest, "/")
	} else {
		raw = strings.TrimPrefix(raw, "/*")
	}
	return strings.TrimSuffix(raw, "*/")
}

func stripLeader(line string) string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "*") {
		line = strings.TrimSpace(strings.TrimLeft(line, "*"))
	}
	return line
}
