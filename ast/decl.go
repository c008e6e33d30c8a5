/*
File   : lilang/ast/decl.go

Declaration node variants, per spec.md §3.
*/
package ast

// VarDecl is `let Names (= Values | Type) ;` — exactly one of Type or
// Values is populated.
type VarDecl struct {
	DeclBase
	Names  []string
	Type   Expr
	Values []Expr
}

func (n *VarDecl) Accept(v Visitor) { v.VisitVarDecl(n) }

// FuncDecl is `fn Name Signature Body`, wrapping a named FuncLit.
type FuncDecl struct {
	DeclBase
	Lit *FuncLit
}

func (n *FuncDecl) Accept(v Visitor) { v.VisitFuncDecl(n) }
