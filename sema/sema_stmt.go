/*
File   : lilang/sema/sema_stmt.go

Statement-level checks: scope push/pop on Block entry, condition
typing for if/while/for, return arity/type checking against the
enclosing function's result list, assignment arity/unpacking/
assignability, and break/continue loop-nesting validation.
*/
package sema

import (
	"lilang/ast"
	"lilang/token"
	"lilang/types"
)

func (a *Analyzer) VisitBlock(n *ast.Block) {
	a.pushScope()
	for _, s := range n.List {
		s.Accept(a)
	}
	a.popScope()
}

func (a *Analyzer) checkBoolCond(cond ast.Expr, construct string) {
	obj := a.eval(cond)
	if !obj.IsInvalid() && obj.Type.Kind != types.Bool {
		a.errorf(cond.Pos(), "%s condition must be bool, got %s", construct, obj.Type)
	}
}

func (a *Analyzer) VisitIfStmt(n *ast.IfStmt) {
	a.checkBoolCond(n.Cond, "if")
	n.Then.Accept(a)
	if n.Else != nil {
		n.Else.Accept(a)
	}
}

func (a *Analyzer) VisitWhileStmt(n *ast.WhileStmt) {
	a.checkBoolCond(n.Cond, "while")
	a.loopDepth++
	n.Body.Accept(a)
	a.loopDepth--
}

func (a *Analyzer) VisitForStmt(n *ast.ForStmt) {
	a.pushScope()
	if n.Init != nil {
		n.Init.Accept(a)
	}
	a.checkBoolCond(n.Cond, "for")
	if n.Post != nil {
		n.Post.Accept(a)
	}
	a.loopDepth++
	n.Body.Accept(a)
	a.loopDepth--
	a.popScope()
}

func (a *Analyzer) VisitReturnStmt(n *ast.ReturnStmt) {
	results := make([]*types.Obj, len(n.Results))
	for i, r := range n.Results {
		results[i] = a.eval(r)
	}
	if len(results) != len(a.curResult) {
		a.errorf(n.Pos(), "expected %d return value(s), got %d", len(a.curResult), len(results))
		return
	}
	for i, want := range a.curResult {
		if !results[i].IsInvalid() && !types.Assignable(results[i].Type, want) {
			a.errorf(n.Results[i].Pos(), "cannot return value of type %s as result %d of type %s", results[i].Type, i+1, want)
		}
	}
}

func (a *Analyzer) VisitExprStmt(n *ast.ExprStmt) {
	a.eval(n.X)
}

func (a *Analyzer) VisitDeclStmt(n *ast.DeclStmt) {
	n.Decl.Accept(a)
}

func (a *Analyzer) VisitEmptyStmt(n *ast.EmptyStmt) {}

func (a *Analyzer) VisitBadStmt(n *ast.BadStmt) {}

func (a *Analyzer) VisitBreakStmt(n *ast.BreakStmt) {
	if a.loopDepth == 0 {
		a.errorf(n.Pos(), "break used outside of a loop")
	}
}

func (a *Analyzer) VisitContinueStmt(n *ast.ContinueStmt) {
	if a.loopDepth == 0 {
		a.errorf(n.Pos(), "continue used outside of a loop")
	}
}

// VisitAssignStmt checks `Lhs... Op Rhs...`, including the tuple-
// unpacking form `Lhs1, Lhs2 = f()` where f returns more than one
// value (spec.md §4.3/§6).
func (a *Analyzer) VisitAssignStmt(n *ast.AssignStmt) {
	rhs := make([]*types.Obj, len(n.Rhs))
	for i, r := range n.Rhs {
		rhs[i] = a.eval(r)
	}

	// Tuple-unpack form: one multi-valued call on the right, many
	// targets on the left.
	if len(n.Lhs) > 1 && len(rhs) == 1 && rhs[0].Type != nil && rhs[0].Type.Kind == types.Tuple {
		comps := rhs[0].Type.Components
		if len(comps) != len(n.Lhs) {
			a.errorf(n.Pos(), "cannot unpack %d value(s) into %d target(s)", len(comps), len(n.Lhs))
			return
		}
		for i, lhs := range n.Lhs {
			a.assignOne(lhs, comps[i], n.Op)
		}
		return
	}

	if len(n.Lhs) != len(rhs) {
		a.errorf(n.Pos(), "assignment count mismatch: %d target(s), %d value(s)", len(n.Lhs), len(rhs))
		return
	}
	for i, lhs := range n.Lhs {
		a.assignOne(lhs, rhs[i].Type, n.Op)
	}
}

// assignOne checks one Lhs/value pair of an AssignStmt. For `:=`, an
// Lhs Ident not yet bound in the current scope is declared rather than
// required to already exist (spec.md is silent on `:=`'s declare-vs-
// reassign rule; this follows the Go convention the teacher itself
// relies on — see DESIGN.md Open Question resolutions).
func (a *Analyzer) assignOne(lhs ast.Expr, valType *types.Type, op token.Kind) {
	if op == token.DEFINE {
		if id, ok := lhs.(*ast.Ident); ok {
			if _, existed := a.scope.LookupLocal(id.Name); !existed {
				obj := &types.Obj{Cat: types.CatVar, Type: valType}
				a.scope.Bind(id.Name, obj)
				id.SetObj(obj)
				return
			}
		}
	}

	obj := a.eval(lhs)
	if obj.IsInvalid() {
		return
	}
	if !obj.Assignable() {
		a.errorf(lhs.Pos(), "cannot assign to non-assignable expression")
		return
	}
	if valType == nil || valType.Kind == types.Invalid {
		return
	}

	switch op {
	case token.ASSIGN, token.DEFINE:
		if !types.Assignable(valType, obj.Type) {
			a.errorf(lhs.Pos(), "cannot assign value of type %s to %s", valType, obj.Type)
		}
	case token.ADD_ASSIGN, token.SUB_ASSIGN, token.MUL_ASSIGN, token.QUO_ASSIGN:
		if !isNumeric(obj.Type) || !isNumeric(valType) {
			a.errorf(lhs.Pos(), "operator %s requires numeric operands, got %s and %s", op, obj.Type, valType)
		}
	case token.AND_ASSIGN, token.OR_ASSIGN, token.XOR_ASSIGN:
		if obj.Type.Kind != types.Int || valType.Kind != types.Int {
			a.errorf(lhs.Pos(), "operator %s requires int operands, got %s and %s", op, obj.Type, valType)
		}
	}
}
