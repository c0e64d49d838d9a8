package doctree

import "strings"

// DocTree is the root of a parsed documentation model.
type DocTree struct {
	Title    string     `json:"title,omitempty" yaml:"title,omitempty"` // Project title (from metadata or filename)
	Packages []*Package `json:"packages" yaml:"packages"`
}

// Package is a named group of types with its own package-level comment.
type Package struct {
	Name    string  `json:"name" yaml:"name"`
	Comment string  `json:"comment,omitempty" yaml:"comment,omitempty"`
	Types   []*Type `json:"types,omitempty" yaml:"types,omitempty"`
}

// TypeKind identifies the flavor of a declared type.
type TypeKind string

const (
	KindClass      TypeKind = "class"
	KindInterface  TypeKind = "interface"
	KindEnum       TypeKind = "enum"
	KindAnnotation TypeKind = "annotation"
)

// Type is a class, interface, enum or annotation type.
type Type struct {
	Name          string   `json:"name" yaml:"name"`
	QualifiedName string   `json:"qualified_name,omitempty" yaml:"qualified_name,omitempty"`
	Kind          TypeKind `json:"kind" yaml:"kind"`
	Comment       string   `json:"comment,omitempty" yaml:"comment,omitempty"`
	Public        bool     `json:"public" yaml:"public"`

	Superclass string   `json:"superclass,omitempty" yaml:"superclass,omitempty"` // Qualified name, empty for none
	Interfaces []string `json:"interfaces,omitempty" yaml:"interfaces,omitempty"` // Qualified names of direct superinterfaces

	Fields             []*Member `json:"fields,omitempty" yaml:"fields,omitempty"`
	EnumConstants      []*Member `json:"enum_constants,omitempty" yaml:"enum_constants,omitempty"`
	AnnotationElements []*Member `json:"annotation_elements,omitempty" yaml:"annotation_elements,omitempty"`
	Constructors       []*Method `json:"constructors,omitempty" yaml:"constructors,omitempty"`
	Methods            []*Method `json:"methods,omitempty" yaml:"methods,omitempty"`
}

// Member is a leaf declaration: a field, enum constant or annotation element.
type Member struct {
	Name     string    `json:"name" yaml:"name"`
	Comment  string    `json:"comment,omitempty" yaml:"comment,omitempty"`
	Public   bool      `json:"public" yaml:"public"`
	Position *Position `json:"position,omitempty" yaml:"position,omitempty"` // nil for synthetic declarations
}

// Method is a method or constructor.
type Method struct {
	Name        string    `json:"name" yaml:"name"`
	Comment     string    `json:"comment,omitempty" yaml:"comment,omitempty"`
	Public      bool      `json:"public" yaml:"public"`
	Constructor bool      `json:"constructor,omitempty" yaml:"constructor,omitempty"`
	ReturnType  string    `json:"return_type,omitempty" yaml:"return_type,omitempty"` // Empty or "void" for no return value
	Params      []Param   `json:"params,omitempty" yaml:"params,omitempty"`
	Throws      []string  `json:"throws,omitempty" yaml:"throws,omitempty"` // Qualified names of declared exceptions
	Tags        []Tag     `json:"tags,omitempty" yaml:"tags,omitempty"`     // nil: derive from Comment
	Position    *Position `json:"position,omitempty" yaml:"position,omitempty"`
}

// Param is a formal parameter of a method.
type Param struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Tag is a block documentation tag such as @param, @return or @throws.
type Tag struct {
	Name string `json:"name" yaml:"name"` // Including the leading "@"
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Position is the source location of a declaration.
type Position struct {
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	Line int    `json:"line" yaml:"line"`
}

// HasSourcePosition reports whether the member was declared in source.
func (m *Member) HasSourcePosition() bool {
	return m.Position != nil
}

// HasSourcePosition reports whether the method was declared in source.
func (m *Method) HasSourcePosition() bool {
	return m.Position != nil
}

// IsVoid reports whether the method has no return value to document.
// Constructors never do.
func (m *Method) IsVoid() bool {
	if m.Constructor {
		return true
	}
	rt := strings.TrimSpace(m.ReturnType)
	return rt == "" || rt == "void"
}

// Signature returns the ordered parameter types, used for override matching.
func (m *Method) Signature() string {
	types := make([]string, len(m.Params))
	for i, p := range m.Params {
		types[i] = strings.TrimSpace(p.Type)
	}
	return m.Name + "(" + strings.Join(types, ",") + ")"
}

// ID returns the name that identifies the type across the tree. Types
// without a qualified name fall back to pkg.Name.
func (t *Type) ID(pkg string) string {
	if t.QualifiedName != "" {
		return t.QualifiedName
	}
	if pkg == "" {
		return t.Name
	}
	return pkg + "." + t.Name
}

// Supertypes returns the direct superclass (if any) followed by the direct
// superinterfaces.
func (t *Type) Supertypes() []string {
	out := make([]string, 0, len(t.Interfaces)+1)
	if t.Superclass != "" {
		out = append(out, t.Superclass)
	}
	return append(out, t.Interfaces...)
}
