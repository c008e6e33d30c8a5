/*
File   : lilang/types/type.go

Package types implements the static semantic data model of spec.md §3:
the Type algebra, the per-expression Obj descriptor (value category ×
type), and the lexically chained Scope. None of this executes code —
it only classifies it, which is why it is grounded on the teacher's
objects/objects.go (a runtime-value type tag) and scope/scope.go (a
runtime variable-binding chain) with the "runtime value" half of both
dropped: spec.md §1 excludes code generation, so there is nothing here
that ever holds a computed value, only its shape.
*/
package types

import "strings"

// Kind tags the shape of a Type.
type Kind int

const (
	Int Kind = iota
	Float
	String
	Bool
	Fn
	Array
	Pointer
	Tuple
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Fn:
		return "fn"
	case Array:
		return "array"
	case Pointer:
		return "pointer"
	case Tuple:
		return "tuple"
	default:
		return "invalid"
	}
}

// Type is a tagged variant over spec.md §3's Type kinds. Elem holds the
// owned base type for Array/Pointer; Params/Results hold a function
// signature's parameter and return types; Components holds a tuple's
// member types (tuples are only ever synthesized as a multi-return call
// result, never written by a user).
type Type struct {
	Kind       Kind
	Elem       *Type
	Params     []*Type
	Results    []*Type
	Components []*Type
}

// Singleton primitive types: shared-immutable, exactly as spec.md §5
// requires ("a symbol bound in multiple identifier references points to
// one Obj instance" — the Types those Objs wrap are likewise shared).
var (
	IntType     = &Type{Kind: Int}
	FloatType   = &Type{Kind: Float}
	StringType  = &Type{Kind: String}
	BoolType    = &Type{Kind: Bool}
	InvalidType = &Type{Kind: Invalid}
)

// NewArray returns the array-of-elem type.
func NewArray(elem *Type) *Type { return &Type{Kind: Array, Elem: elem} }

// NewPointer returns the pointer-to-elem type.
func NewPointer(elem *Type) *Type { return &Type{Kind: Pointer, Elem: elem} }

// NewFunc returns a function type with the given parameter and result
// types.
func NewFunc(params, results []*Type) *Type {
	return &Type{Kind: Fn, Params: params, Results: results}
}

// NewTuple returns the synthetic multi-return type wrapping components.
func NewTuple(components []*Type) *Type {
	return &Type{Kind: Tuple, Components: components}
}

// Match is the structural equality defining spec.md §4.3's type
// matching: same kind, and recursively matching base/parameters/
// returns/components.
func Match(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Array, Pointer:
		return Match(a.Elem, b.Elem)
	case Fn:
		return matchList(a.Params, b.Params) && matchList(a.Results, b.Results)
	case Tuple:
		return matchList(a.Components, b.Components)
	default:
		return true
	}
}

func matchList(a, b []*Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Match(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Assignable implements spec.md §4.3: structural match, or implicit
// int<->float widening/narrowing under assignment.
func Assignable(from, to *Type) bool {
	if from == nil || to == nil {
		return false
	}
	if from.Kind == Invalid || to.Kind == Invalid {
		// invalid is a noise-suppressing sentinel: already-failed
		// expressions never cascade into a second diagnostic.
		return true
	}
	if Match(from, to) {
		return true
	}
	if from.Kind == Int && to.Kind == Float {
		return true
	}
	if from.Kind == Float && to.Kind == Int {
		return true
	}
	return false
}

// Castable is identical to Assignable per spec.md §4.3.
func Castable(from, to *Type) bool { return Assignable(from, to) }

// Comparable reports whether a type may appear as an operand of
// == != < > <= >= (spec.md §4.3: "the operand type must be comparable
// (∈ {int, float, bool})").
func Comparable(t *Type) bool {
	if t == nil {
		return false
	}
	return t.Kind == Int || t.Kind == Float || t.Kind == Bool || t.Kind == Invalid
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case Array:
		return "[]" + t.Elem.String()
	case Pointer:
		return "*" + t.Elem.String()
	case Fn:
		var params, results []string
		for _, p := range t.Params {
			params = append(params, p.String())
		}
		for _, r := range t.Results {
			results = append(results, r.String())
		}
		return "fn(" + strings.Join(params, ", ") + ")(" + strings.Join(results, ", ") + ")"
	case Tuple:
		var parts []string
		for _, c := range t.Components {
			parts = append(parts, c.String())
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return t.Kind.String()
	}
}
