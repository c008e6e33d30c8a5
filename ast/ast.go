/*
File   : lilang/ast/ast.go

Package ast defines the node model of spec.md §3: three disjoint node
families (Expr, Stmt, Decl) forming a strict tree, plus the double-
dispatch Visitor every node implements Accept against. The
double-dispatch shape is grounded on the teacher's parser/node.go
(NodeVisitor + per-node Accept) — spec.md §9 Design Notes calls this
out by name ("the source uses double-dispatch to run the semantic
pass") and we keep it rather than switching to a tagged-union match,
since the teacher itself already shows the double-dispatch idiom in
idiomatic Go.
*/
package ast

import (
	"lilang/token"
	"lilang/types"
)

// Span is the source range a node occupies; spec.md Testable Property 3
// requires every node's span to lie within its parent's.
type Span struct {
	Start token.Position
	End   token.Position
}

// Node is the common interface of every AST node.
type Node interface {
	Pos() token.Position
	EndPos() token.Position
}

// Expr is any expression node. Every Expr carries an Obj slot, set only
// by the semantic analyzer (spec.md §3: "every successfully-analyzed
// expression node carries a non-null Obj").
type Expr interface {
	Node
	exprNode()
	Accept(v Visitor)
	Obj() *types.Obj
	SetObj(o *types.Obj)
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
	Accept(v Visitor)
}

// Decl is any top-level declaration node.
type Decl interface {
	Node
	declNode()
	Accept(v Visitor)
}

// ExprBase is embedded by every concrete Expr to supply Span/Obj
// bookkeeping once.
type ExprBase struct {
	Span Span
	obj  *types.Obj
}

func (b ExprBase) Pos() token.Position    { return b.Span.Start }
func (b ExprBase) EndPos() token.Position { return b.Span.End }
func (b ExprBase) Obj() *types.Obj        { return b.obj }
func (b *ExprBase) SetObj(o *types.Obj)   { b.obj = o }
func (ExprBase) exprNode()                {}

// StmtBase is embedded by every concrete Stmt.
type StmtBase struct {
	Span Span
}

func (b StmtBase) Pos() token.Position    { return b.Span.Start }
func (b StmtBase) EndPos() token.Position { return b.Span.End }
func (StmtBase) stmtNode()                {}

// DeclBase is embedded by every concrete Decl.
type DeclBase struct {
	Span Span
}

func (b DeclBase) Pos() token.Position    { return b.Span.Start }
func (b DeclBase) EndPos() token.Position { return b.Span.End }
func (DeclBase) declNode()                {}

// Field is a binding in a function parameter list: `Type Name?`. An
// omitted name is recorded as "_" (spec.md §3).
type Field struct {
	Span Span
	Name string
	Type Expr
}

func (f *Field) Pos() token.Position    { return f.Span.Start }
func (f *Field) EndPos() token.Position { return f.Span.End }

// File is the root node: an ordered list of top-level declarations.
type File struct {
	Span  Span
	Decls []Decl
}

func (f *File) Pos() token.Position    { return f.Span.Start }
func (f *File) EndPos() token.Position { return f.Span.End }
func (f *File) Accept(v Visitor)       { v.VisitFile(f) }
