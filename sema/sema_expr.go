/*
File   : lilang/sema/sema_expr.go

Per-expression-kind Obj computation, per spec.md §6's operator and
operand rules. Every method ends by calling n.SetObj so the node
carries its result for both the caller (a.eval) and a downstream
consumer (e.g. a printer) to read back.
*/
package sema

import (
	"lilang/ast"
	"lilang/token"
	"lilang/types"
)

func (a *Analyzer) VisitIdent(n *ast.Ident) {
	obj, ok := a.scope.Lookup(n.Name)
	if !ok {
		a.errorf(n.Pos(), "undeclared identifier: %s", n.Name)
		n.SetObj(types.Invalid)
		return
	}
	n.SetObj(obj)
}

func (a *Analyzer) VisitBasicLit(n *ast.BasicLit) {
	switch n.Kind {
	case token.NUMBER:
		n.SetObj(&types.Obj{Cat: types.CatValue, Type: types.IntType})
	case token.FLOAT:
		n.SetObj(&types.Obj{Cat: types.CatValue, Type: types.FloatType})
	case token.STRING:
		n.SetObj(&types.Obj{Cat: types.CatValue, Type: types.StringType})
	default:
		n.SetObj(types.Invalid)
	}
}

func (a *Analyzer) VisitParenExpr(n *ast.ParenExpr) {
	n.SetObj(a.eval(n.X))
}

func (a *Analyzer) VisitUnaryExpr(n *ast.UnaryExpr) {
	x := a.eval(n.X)
	switch n.Op {
	case token.NOT:
		if !x.IsInvalid() && x.Type.Kind != types.Bool {
			a.errorf(n.OpAt, "operator ! requires a bool operand, got %s", x.Type)
			n.SetObj(types.Invalid)
			return
		}
		n.SetObj(&types.Obj{Cat: types.CatValue, Type: types.BoolType})

	case token.AMP:
		if x.IsInvalid() {
			n.SetObj(types.Invalid)
			return
		}
		if !x.Addressable() {
			a.errorf(n.OpAt, "cannot take the address of a non-addressable expression")
			n.SetObj(types.Invalid)
			return
		}
		n.SetObj(&types.Obj{Cat: types.CatValue, Type: types.NewPointer(x.Type)})

	case token.PLUS, token.MINUS, token.CARET, token.PIPE:
		if !x.IsInvalid() && x.Type.Kind != types.Int {
			a.errorf(n.OpAt, "operator %s requires an int operand, got %s", n.Op, x.Type)
			n.SetObj(types.Invalid)
			return
		}
		n.SetObj(&types.Obj{Cat: types.CatValue, Type: types.IntType})

	default:
		n.SetObj(types.Invalid)
	}
}

// VisitStarExpr disambiguates `*X` per spec.md §4.2: pointer-type
// construction when X names a type, pointer dereference when X is a
// value of pointer type.
func (a *Analyzer) VisitStarExpr(n *ast.StarExpr) {
	x := a.eval(n.X)
	if x.IsInvalid() {
		n.SetObj(types.Invalid)
		return
	}
	if x.Cat == types.CatType {
		n.SetObj(&types.Obj{Cat: types.CatType, Type: types.NewPointer(x.Type)})
		return
	}
	if x.Type.Kind != types.Pointer {
		a.errorf(n.Pos(), "cannot dereference non-pointer type %s", x.Type)
		n.SetObj(types.Invalid)
		return
	}
	n.SetObj(&types.Obj{Cat: types.CatIndirectPointer, Type: x.Type.Elem})
}

func isNumeric(t *types.Type) bool {
	return t != nil && (t.Kind == types.Int || t.Kind == types.Float || t.Kind == types.Invalid)
}

// widen returns the result type of a binary numeric operator applied
// to operands of type a and b: float if either is float, else int.
func widen(a, b *types.Type) *types.Type {
	if a.Kind == types.Invalid || b.Kind == types.Invalid {
		return types.InvalidType
	}
	if a.Kind == types.Float || b.Kind == types.Float {
		return types.FloatType
	}
	return types.IntType
}

func (a *Analyzer) VisitBinaryExpr(n *ast.BinaryExpr) {
	lx := a.eval(n.X)
	ly := a.eval(n.Y)
	bad := lx.IsInvalid() || ly.IsInvalid()

	switch n.Op {
	case token.LAND, token.LOR:
		if !bad && (lx.Type.Kind != types.Bool || ly.Type.Kind != types.Bool) {
			a.errorf(n.OpAt, "operator %s requires bool operands, got %s and %s", n.Op, lx.Type, ly.Type)
			bad = true
		}
		n.SetObj(boolOr(bad))

	case token.EQL, token.NEQ:
		if !bad && !(types.Comparable(lx.Type) && types.Comparable(ly.Type) &&
			(types.Match(lx.Type, ly.Type) || (isNumeric(lx.Type) && isNumeric(ly.Type)))) {
			a.errorf(n.OpAt, "cannot compare %s and %s", lx.Type, ly.Type)
			bad = true
		}
		n.SetObj(boolOr(bad))

	case token.LSS, token.GTR, token.LEQ, token.GEQ:
		if !bad && !(types.Comparable(lx.Type) && types.Comparable(ly.Type) &&
			(types.Match(lx.Type, ly.Type) || (isNumeric(lx.Type) && isNumeric(ly.Type)))) {
			a.errorf(n.OpAt, "operator %s requires comparable operands of the same kind, got %s and %s", n.Op, lx.Type, ly.Type)
			bad = true
		}
		n.SetObj(boolOr(bad))

	case token.PLUS, token.MINUS, token.STAR, token.SLASH:
		if !bad && !(isNumeric(lx.Type) && isNumeric(ly.Type)) {
			a.errorf(n.OpAt, "operator %s requires numeric operands, got %s and %s", n.Op, lx.Type, ly.Type)
			n.SetObj(types.Invalid)
			return
		}
		if bad {
			n.SetObj(types.Invalid)
			return
		}
		n.SetObj(&types.Obj{Cat: types.CatValue, Type: widen(lx.Type, ly.Type)})

	case token.PIPE, token.CARET, token.AMP, token.PERCENT:
		if !bad && (lx.Type.Kind != types.Int || ly.Type.Kind != types.Int) {
			a.errorf(n.OpAt, "operator %s requires int operands, got %s and %s", n.Op, lx.Type, ly.Type)
			n.SetObj(types.Invalid)
			return
		}
		if bad {
			n.SetObj(types.Invalid)
			return
		}
		n.SetObj(&types.Obj{Cat: types.CatValue, Type: types.IntType})

	default:
		n.SetObj(types.Invalid)
	}
}

func boolOr(bad bool) *types.Obj {
	if bad {
		return types.Invalid
	}
	return &types.Obj{Cat: types.CatValue, Type: types.BoolType}
}

// VisitCallExpr handles both a function call and a type cast: a cast
// is a CallExpr whose Fun evaluates to a type (spec.md §4.3).
func (a *Analyzer) VisitCallExpr(n *ast.CallExpr) {
	fn := a.eval(n.Fun)
	args := make([]*types.Obj, len(n.Args))
	for i, arg := range n.Args {
		args[i] = a.eval(arg)
	}

	if fn.IsInvalid() {
		n.SetObj(types.Invalid)
		return
	}

	if fn.Cat == types.CatType {
		if len(args) != 1 {
			a.errorf(n.Pos(), "cast to %s requires exactly one argument, got %d", fn.Type, len(args))
			n.SetObj(types.Invalid)
			return
		}
		if !args[0].IsInvalid() && !types.Castable(args[0].Type, fn.Type) {
			a.errorf(n.Pos(), "cannot cast %s to %s", args[0].Type, fn.Type)
			n.SetObj(types.Invalid)
			return
		}
		n.SetObj(&types.Obj{Cat: types.CatValue, Type: fn.Type})
		return
	}

	if fn.Type.Kind != types.Fn {
		a.errorf(n.Pos(), "cannot call a value of type %s", fn.Type)
		n.SetObj(types.Invalid)
		return
	}

	// Multi-return piped into a call: a single argument whose type is a
	// tuple of the same arity as the callee unpacks component-wise,
	// rather than being matched as one argument against the first
	// parameter (spec.md §4.3 CallExpr special case).
	if len(args) == 1 && args[0].Type != nil && args[0].Type.Kind == types.Tuple {
		comps := args[0].Type.Components
		if len(comps) == len(fn.Type.Params) {
			for i, param := range fn.Type.Params {
				if comps[i].Kind != types.Invalid && !types.Assignable(comps[i], param) {
					a.errorf(n.Args[0].Pos(), "cannot use tuple component %d of type %s as %s", i+1, comps[i], param)
				}
			}
		} else {
			a.errorf(n.Pos(), "expected %d argument(s), got tuple of %d value(s)", len(fn.Type.Params), len(comps))
		}
	} else if len(args) != len(fn.Type.Params) {
		a.errorf(n.Pos(), "expected %d argument(s), got %d", len(fn.Type.Params), len(args))
	} else {
		for i, param := range fn.Type.Params {
			if !args[i].IsInvalid() && !types.Assignable(args[i].Type, param) {
				a.errorf(n.Args[i].Pos(), "cannot use argument %d of type %s as %s", i+1, args[i].Type, param)
			}
		}
	}

	switch len(fn.Type.Results) {
	case 0:
		n.SetObj(types.Invalid)
	case 1:
		n.SetObj(&types.Obj{Cat: types.CatValue, Type: fn.Type.Results[0]})
	default:
		n.SetObj(&types.Obj{Cat: types.CatValue, Type: types.NewTuple(fn.Type.Results)})
	}
}

func (a *Analyzer) VisitIndexExpr(n *ast.IndexExpr) {
	x := a.eval(n.X)
	idx := a.eval(n.Index)

	if x.IsInvalid() {
		n.SetObj(types.Invalid)
		return
	}
	if x.Type.Kind != types.Array {
		a.errorf(n.Pos(), "cannot index non-array type %s", x.Type)
		n.SetObj(types.Invalid)
		return
	}
	if !idx.IsInvalid() && idx.Type.Kind != types.Int {
		a.errorf(n.Index.Pos(), "array index must be int, got %s", idx.Type)
	}
	n.SetObj(&types.Obj{Cat: types.CatIndexValue, Type: x.Type.Elem})
}

func (a *Analyzer) VisitArrayType(n *ast.ArrayType) {
	elt := a.eval(n.Elt)
	if elt.Cat != types.CatType {
		if !elt.IsInvalid() {
			a.errorf(n.Elt.Pos(), "array element must be a type, found a value of type %s", elt.Type)
		}
		n.SetObj(types.Invalid)
		return
	}
	n.SetObj(&types.Obj{Cat: types.CatType, Type: types.NewArray(elt.Type)})
}

func (a *Analyzer) VisitFuncType(n *ast.FuncType) {
	a.resolveFuncType(n)
}

// VisitFuncLit handles an anonymous function literal used as an
// expression. A named FuncLit embedded in a FuncDecl is instead driven
// directly by VisitFuncDecl, which calls analyzeFuncBody itself.
func (a *Analyzer) VisitFuncLit(n *ast.FuncLit) {
	fnType := a.resolveFuncType(n.Type)
	a.analyzeFuncBody(n.Type.Params, fnType.Results, n.Body)
	n.SetObj(&types.Obj{Cat: types.CatValue, Type: fnType})
}

// analyzeFuncBody pushes a parameter scope, binds each named
// parameter (reporting a duplicate name), checks body under the given result-type list (for
// ReturnStmt validation), then restores the previous scope/result
// context.
func (a *Analyzer) analyzeFuncBody(params []*ast.Field, results []*types.Type, body *ast.Block) {
	outerResult := a.curResult
	a.curResult = results

	a.pushScope()
	for _, f := range params {
		if f.Name == "_" {
			continue
		}
		typ := a.resolveType(f.Type)
		if existed := a.scope.Bind(f.Name, &types.Obj{Cat: types.CatVar, Type: typ}); existed {
			a.errorf(f.Pos(), "duplicate parameter %q", f.Name)
		}
	}
	body.Accept(a)
	a.popScope()

	a.curResult = outerResult
}

func (a *Analyzer) VisitBadExpr(n *ast.BadExpr) {
	n.SetObj(types.Invalid)
}
