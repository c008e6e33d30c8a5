/*
File   : lilang/types/scope.go

Scope is the chained symbol table of spec.md §3, generalized from the
teacher's scope.Scope (which chains runtime-value bindings for an
interpreter, complete with Consts/LetVars/LetTypes/Copy-for-closures
fields this front-end has no use for) down to its essential discipline:
a parent pointer and a name->Obj map, pushed on function-literal entry
and block entry, popped on exit.
*/
package types

// Scope is one lexical binding level.
type Scope struct {
	Parent   *Scope
	bindings map[string]*Obj
}

// NewScope creates a child scope of parent (nil for the root).
func NewScope(parent *Scope) *Scope {
	return &Scope{Parent: parent, bindings: make(map[string]*Obj)}
}

// NewGlobalScope creates the built-in top scope, pre-binding the
// nameable primitive types. Per spec.md §3 only int, float, and string
// are pre-bound — bool is never a nameable type in this language (see
// DESIGN.md Open Question resolutions, confirmed against
// original_source/src/compiler/syntax.cpp's type-token recognition).
func NewGlobalScope() *Scope {
	s := NewScope(nil)
	s.bindings["int"] = &Obj{Cat: CatType, Type: IntType}
	s.bindings["float"] = &Obj{Cat: CatType, Type: FloatType}
	s.bindings["string"] = &Obj{Cat: CatType, Type: StringType}
	return s
}

// Lookup walks the scope chain from s upward, returning the first
// binding found for name.
func (s *Scope) Lookup(name string) (*Obj, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if obj, ok := cur.bindings[name]; ok {
			return obj, true
		}
	}
	return nil, false
}

// LookupLocal checks only this scope, not its parents — used to detect
// redeclaration within the current block/function.
func (s *Scope) LookupLocal(name string) (*Obj, bool) {
	obj, ok := s.bindings[name]
	return obj, ok
}

// Bind adds name -> obj to this scope, overwriting any existing local
// binding. Returns true if name already existed in this scope (a
// redeclaration the caller should reject).
func (s *Scope) Bind(name string, obj *Obj) bool {
	_, existed := s.bindings[name]
	s.bindings[name] = obj
	return existed
}
