/*
File   : lilang/ast/expr.go

Expression node variants, per spec.md §3.
*/
package ast

import "lilang/token"

// Ident is a bare identifier reference.
type Ident struct {
	ExprBase
	Name string
}

func (n *Ident) Accept(v Visitor) { v.VisitIdent(n) }

// BasicLit is a number, float, or string literal. Kind is the literal
// token kind it was lexed as (token.NUMBER / token.FLOAT / token.STRING).
type BasicLit struct {
	ExprBase
	Kind  token.Kind
	Value string
}

func (n *BasicLit) Accept(v Visitor) { v.VisitBasicLit(n) }

// BinaryExpr is `X Op Y`.
type BinaryExpr struct {
	ExprBase
	Op   token.Kind
	OpAt token.Position
	X, Y Expr
}

func (n *BinaryExpr) Accept(v Visitor) { v.VisitBinaryExpr(n) }

// UnaryExpr is `Op X` for one of the prefix operators `+ - & ^ !`
// (and `|`, grouped with `+ - ^`; see DESIGN.md Open Question 1).
// Pointer construction/dereference via `*` is represented separately
// as StarExpr, since its meaning is context-dependent (spec.md §4.2
// "Disambiguation of * and &").
type UnaryExpr struct {
	ExprBase
	Op   token.Kind
	OpAt token.Position
	X    Expr
}

func (n *UnaryExpr) Accept(v Visitor) { v.VisitUnaryExpr(n) }

// ParenExpr is `(X)`; semantically transparent.
type ParenExpr struct {
	ExprBase
	X Expr
}

func (n *ParenExpr) Accept(v Visitor) { v.VisitParenExpr(n) }

// CallExpr is `Fun(Args...)` — a function call or, when Fun resolves
// to a Type, a cast.
type CallExpr struct {
	ExprBase
	Fun  Expr
	Args []Expr
}

func (n *CallExpr) Accept(v Visitor) { v.VisitCallExpr(n) }

// IndexExpr is `X[Index]`.
type IndexExpr struct {
	ExprBase
	X     Expr
	Index Expr
}

func (n *IndexExpr) Accept(v Visitor) { v.VisitIndexExpr(n) }

// StarExpr is `*X`, emitted unconditionally by the parser; semantic
// analysis decides whether it is pointer-type construction or pointer
// dereference based on X's Obj category (spec.md §4.2/§4.3).
type StarExpr struct {
	ExprBase
	X Expr
}

func (n *StarExpr) Accept(v Visitor) { v.VisitStarExpr(n) }

// ArrayType is `[]Elem` in type position.
type ArrayType struct {
	ExprBase
	Elt Expr
}

func (n *ArrayType) Accept(v Visitor) { v.VisitArrayType(n) }

// FuncType is `(Params)(Results)` in type position, or the signature
// half of a FuncLit.
type FuncType struct {
	ExprBase
	Params  []*Field
	Results []Expr
}

func (n *FuncType) Accept(v Visitor) { v.VisitFuncType(n) }

// FuncLit is `fn Name? Type Body`. Name is only present for a
// top-level FuncDecl's embedded literal; anonymous function
// expressions leave it empty.
type FuncLit struct {
	ExprBase
	Name string
	Type *FuncType
	Body *Block
}

func (n *FuncLit) Accept(v Visitor) { v.VisitFuncLit(n) }

// BadExpr is a parse-error placeholder that still occupies a span, so
// a caller's traversal need not special-case a missing node.
type BadExpr struct {
	ExprBase
}

func (n *BadExpr) Accept(v Visitor) { v.VisitBadExpr(n) }
