package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethod_IsVoid(t *testing.T) {
	assert.True(t, (&Method{}).IsVoid())
	assert.True(t, (&Method{ReturnType: " void "}).IsVoid())
	assert.True(t, (&Method{Constructor: true, ReturnType: "Circle"}).IsVoid())
	assert.False(t, (&Method{ReturnType: "int"}).IsVoid())
}

func TestMethod_Signature(t *testing.T) {
	m := &Method{Name: "move", Params: []Param{{Name: "dx", Type: "int"}, {Name: "dy", Type: " int"}}}
	assert.Equal(t, "move(int,int)", m.Signature())
	assert.Equal(t, "run()", (&Method{Name: "run"}).Signature())
}

func TestHasSourcePosition(t *testing.T) {
	assert.False(t, (&Member{Name: "x"}).HasSourcePosition())
	assert.True(t, (&Member{Name: "x", Position: &Position{File: "A.java", Line: 3}}).HasSourcePosition())
	assert.True(t, (&Method{Name: "m", Position: &Position{}}).HasSourcePosition())
}

func TestType_ID(t *testing.T) {
	assert.Equal(t, "geo.Circle", (&Type{Name: "Circle", QualifiedName: "geo.Circle"}).ID("other"))
	assert.Equal(t, "geo.Circle", (&Type{Name: "Circle"}).ID("geo"))
	assert.Equal(t, "Circle", (&Type{Name: "Circle"}).ID(""))
}

func TestType_Supertypes(t *testing.T) {
	typ := &Type{Superclass: "geo.Base", Interfaces: []string{"geo.Shape", "geo.Named"}}
	assert.Equal(t, []string{"geo.Base", "geo.Shape", "geo.Named"}, typ.Supertypes())
	assert.Empty(t, (&Type{}).Supertypes())
}
