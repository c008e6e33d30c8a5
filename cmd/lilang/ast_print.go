/*
File   : lilang/cmd/lilang/ast_print.go

printingVisitor implements ast.Visitor to render the tree as an
indented listing, one line per node, annotated with the Obj each
expression carries after semantic analysis. Grounded on the teacher's
main/print_visitor.go (PrintingVisitor: an Indent counter plus a
bytes.Buffer, one Visit method per node kind writing "Visiting <kind>
Node [...]" at the current indent) — generalized from printing runtime
Values to printing the static Obj/Type each node resolved to, since
this front-end never computes a runtime value.
*/
package main

import (
	"bytes"
	"fmt"

	"lilang/ast"
	"lilang/types"
)

const astIndentSize = 2

type printingVisitor struct {
	indent int
	buf    bytes.Buffer
}

func (p *printingVisitor) writeLine(format string, args ...interface{}) {
	p.buf.WriteString(fmt.Sprintf("%*s", p.indent, ""))
	p.buf.WriteString(fmt.Sprintf(format, args...))
	p.buf.WriteByte('\n')
}

func (p *printingVisitor) enter() { p.indent += astIndentSize }
func (p *printingVisitor) leave() { p.indent -= astIndentSize }

func (p *printingVisitor) VisitFile(n *ast.File) {
	p.writeLine("File")
	p.enter()
	for _, d := range n.Decls {
		d.Accept(p)
	}
	p.leave()
}

func (p *printingVisitor) VisitIdent(n *ast.Ident) {
	p.writeLine("Ident %q %s", n.Name, objString(n.Obj()))
}

func (p *printingVisitor) VisitBasicLit(n *ast.BasicLit) {
	p.writeLine("BasicLit(%s) %q %s", n.Kind, n.Value, objString(n.Obj()))
}

func (p *printingVisitor) VisitBinaryExpr(n *ast.BinaryExpr) {
	p.writeLine("BinaryExpr %s %s", n.Op, objString(n.Obj()))
	p.enter()
	n.X.Accept(p)
	n.Y.Accept(p)
	p.leave()
}

func (p *printingVisitor) VisitUnaryExpr(n *ast.UnaryExpr) {
	p.writeLine("UnaryExpr %s %s", n.Op, objString(n.Obj()))
	p.enter()
	n.X.Accept(p)
	p.leave()
}

func (p *printingVisitor) VisitParenExpr(n *ast.ParenExpr) {
	p.writeLine("ParenExpr %s", objString(n.Obj()))
	p.enter()
	n.X.Accept(p)
	p.leave()
}

func (p *printingVisitor) VisitCallExpr(n *ast.CallExpr) {
	p.writeLine("CallExpr %s", objString(n.Obj()))
	p.enter()
	n.Fun.Accept(p)
	for _, a := range n.Args {
		a.Accept(p)
	}
	p.leave()
}

func (p *printingVisitor) VisitIndexExpr(n *ast.IndexExpr) {
	p.writeLine("IndexExpr %s", objString(n.Obj()))
	p.enter()
	n.X.Accept(p)
	n.Index.Accept(p)
	p.leave()
}

func (p *printingVisitor) VisitStarExpr(n *ast.StarExpr) {
	p.writeLine("StarExpr %s", objString(n.Obj()))
	p.enter()
	n.X.Accept(p)
	p.leave()
}

func (p *printingVisitor) VisitArrayType(n *ast.ArrayType) {
	p.writeLine("ArrayType %s", objString(n.Obj()))
	p.enter()
	n.Elt.Accept(p)
	p.leave()
}

func (p *printingVisitor) VisitFuncType(n *ast.FuncType) {
	p.writeLine("FuncType %s", objString(n.Obj()))
	p.enter()
	for _, f := range n.Params {
		p.writeLine("Field %s", f.Name)
		p.enter()
		f.Type.Accept(p)
		p.leave()
	}
	for _, r := range n.Results {
		r.Accept(p)
	}
	p.leave()
}

func (p *printingVisitor) VisitFuncLit(n *ast.FuncLit) {
	name := n.Name
	if name == "" {
		name = "<anonymous>"
	}
	p.writeLine("FuncLit %s %s", name, objString(n.Obj()))
	p.enter()
	n.Type.Accept(p)
	n.Body.Accept(p)
	p.leave()
}

func (p *printingVisitor) VisitBadExpr(n *ast.BadExpr) {
	p.writeLine("BadExpr")
}

func (p *printingVisitor) VisitBlock(n *ast.Block) {
	p.writeLine("Block")
	p.enter()
	for _, s := range n.List {
		s.Accept(p)
	}
	p.leave()
}

func (p *printingVisitor) VisitIfStmt(n *ast.IfStmt) {
	p.writeLine("IfStmt")
	p.enter()
	n.Cond.Accept(p)
	n.Then.Accept(p)
	if n.Else != nil {
		n.Else.Accept(p)
	}
	p.leave()
}

func (p *printingVisitor) VisitWhileStmt(n *ast.WhileStmt) {
	p.writeLine("WhileStmt")
	p.enter()
	n.Cond.Accept(p)
	n.Body.Accept(p)
	p.leave()
}

func (p *printingVisitor) VisitForStmt(n *ast.ForStmt) {
	p.writeLine("ForStmt")
	p.enter()
	if n.Init != nil {
		n.Init.Accept(p)
	}
	n.Cond.Accept(p)
	if n.Post != nil {
		n.Post.Accept(p)
	}
	n.Body.Accept(p)
	p.leave()
}

func (p *printingVisitor) VisitReturnStmt(n *ast.ReturnStmt) {
	p.writeLine("ReturnStmt")
	p.enter()
	for _, r := range n.Results {
		r.Accept(p)
	}
	p.leave()
}

func (p *printingVisitor) VisitAssignStmt(n *ast.AssignStmt) {
	p.writeLine("AssignStmt %s", n.Op)
	p.enter()
	for _, l := range n.Lhs {
		l.Accept(p)
	}
	for _, r := range n.Rhs {
		r.Accept(p)
	}
	p.leave()
}

func (p *printingVisitor) VisitExprStmt(n *ast.ExprStmt) {
	p.writeLine("ExprStmt")
	p.enter()
	n.X.Accept(p)
	p.leave()
}

func (p *printingVisitor) VisitDeclStmt(n *ast.DeclStmt) {
	p.writeLine("DeclStmt")
	p.enter()
	n.Decl.Accept(p)
	p.leave()
}

func (p *printingVisitor) VisitEmptyStmt(n *ast.EmptyStmt) { p.writeLine("EmptyStmt") }
func (p *printingVisitor) VisitBadStmt(n *ast.BadStmt)     { p.writeLine("BadStmt") }
func (p *printingVisitor) VisitBreakStmt(n *ast.BreakStmt) { p.writeLine("BreakStmt") }
func (p *printingVisitor) VisitContinueStmt(n *ast.ContinueStmt) {
	p.writeLine("ContinueStmt")
}

func (p *printingVisitor) VisitVarDecl(n *ast.VarDecl) {
	p.writeLine("VarDecl %v", n.Names)
	p.enter()
	if n.Type != nil {
		n.Type.Accept(p)
	}
	for _, v := range n.Values {
		v.Accept(p)
	}
	p.leave()
}

func (p *printingVisitor) VisitFuncDecl(n *ast.FuncDecl) {
	p.writeLine("FuncDecl %s", n.Lit.Name)
	p.enter()
	n.Lit.Type.Accept(p)
	n.Lit.Body.Accept(p)
	p.leave()
}

func objString(o *types.Obj) string {
	if o == nil {
		return ""
	}
	return fmt.Sprintf("=> %s %s", o.Cat, o.Type)
}
