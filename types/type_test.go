/*
File   : lilang/types/type_test.go
*/
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_ReflexiveAndStructural(t *testing.T) {
	assert.True(t, Match(IntType, IntType))
	assert.True(t, Match(NewArray(IntType), NewArray(IntType)))
	assert.False(t, Match(NewArray(IntType), NewArray(FloatType)))
	assert.True(t, Match(NewPointer(StringType), NewPointer(StringType)))

	fnA := NewFunc([]*Type{IntType}, []*Type{BoolType})
	fnB := NewFunc([]*Type{IntType}, []*Type{BoolType})
	fnC := NewFunc([]*Type{FloatType}, []*Type{BoolType})
	assert.True(t, Match(fnA, fnB))
	assert.False(t, Match(fnA, fnC))
}

func TestAssignable_ReflexiveAndNumericWidening(t *testing.T) {
	assert.True(t, Assignable(IntType, IntType))
	assert.True(t, Assignable(IntType, FloatType))
	assert.True(t, Assignable(FloatType, IntType))
	assert.False(t, Assignable(StringType, IntType))
}

func TestAssignable_MatchImpliesAssignable(t *testing.T) {
	a := NewArray(StringType)
	b := NewArray(StringType)
	assert.True(t, Match(a, b))
	assert.True(t, Assignable(a, b))
}

func TestObj_AddressableAndAssignable(t *testing.T) {
	v := &Obj{Cat: CatVar, Type: IntType}
	idx := &Obj{Cat: CatIndexValue, Type: IntType}
	ptr := &Obj{Cat: CatIndirectPointer, Type: IntType}
	val := &Obj{Cat: CatValue, Type: IntType}

	assert.True(t, v.Addressable())
	assert.True(t, idx.Addressable())
	assert.False(t, ptr.Addressable())
	assert.False(t, val.Addressable())

	assert.True(t, v.Assignable())
	assert.True(t, idx.Assignable())
	assert.True(t, ptr.Assignable())
	assert.False(t, val.Assignable())
}

func TestScope_ChainedLookupAndShadowing(t *testing.T) {
	root := NewGlobalScope()
	child := NewScope(root)

	intTypeObj, ok := child.Lookup("int")
	assert.True(t, ok)
	assert.Equal(t, CatType, intTypeObj.Cat)

	xObj := &Obj{Cat: CatVar, Type: IntType}
	existed := child.Bind("x", xObj)
	assert.False(t, existed)

	got, ok := child.Lookup("x")
	assert.True(t, ok)
	assert.Same(t, xObj, got)

	_, ok = root.LookupLocal("x")
	assert.False(t, ok, "binding in child scope must not leak to parent")
}

func TestScope_RedeclarationDetected(t *testing.T) {
	s := NewScope(nil)
	s.Bind("x", &Obj{Cat: CatVar, Type: IntType})
	existed := s.Bind("x", &Obj{Cat: CatVar, Type: FloatType})
	assert.True(t, existed)
}
