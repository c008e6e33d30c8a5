/*
File   : lilang/sema/sema_decl.go

Declaration checking: VarDecl's two forms (typed-but-uninitialized, and
initialized-with-inferred-type, including tuple unpacking) and
FuncDecl's body check, reusing the signature computed during the
pre-registration pass in sema.go.
*/
package sema

import (
	"lilang/ast"
	"lilang/types"
)

// VisitVarDecl binds every name in n.Names into the current scope,
// rejecting a name already declared locally.
func (a *Analyzer) VisitVarDecl(n *ast.VarDecl) {
	declTypes := a.varDeclTypes(n)
	for i, name := range n.Names {
		if _, existed := a.scope.LookupLocal(name); existed {
			a.errorf(n.Pos(), "%q is already declared in this scope", name)
			continue
		}
		a.scope.Bind(name, &types.Obj{Cat: types.CatVar, Type: declTypes[i]})
	}
}

// varDeclTypes resolves the type each of n.Names should be bound to,
// handling the three shapes spec.md §4.2/§6 allow: an explicit type
// with no initializer, one initializer per name, or a single
// multi-valued call initializing every name via tuple unpacking.
func (a *Analyzer) varDeclTypes(n *ast.VarDecl) []*types.Type {
	out := make([]*types.Type, len(n.Names))

	if n.Type != nil {
		t := a.resolveType(n.Type)
		for i := range out {
			out[i] = t
		}
		return out
	}

	vals := make([]*types.Obj, len(n.Values))
	for i, v := range n.Values {
		vals[i] = a.eval(v)
	}

	if len(n.Names) > 1 && len(vals) == 1 && vals[0].Type != nil && vals[0].Type.Kind == types.Tuple {
		comps := vals[0].Type.Components
		if len(comps) != len(n.Names) {
			a.errorf(n.Pos(), "cannot unpack %d value(s) into %d variable(s)", len(comps), len(n.Names))
			for i := range out {
				out[i] = types.InvalidType
			}
			return out
		}
		copy(out, comps)
		return out
	}

	if len(n.Names) != len(vals) {
		a.errorf(n.Pos(), "expected %d initializer(s), got %d", len(n.Names), len(vals))
		for i := range out {
			out[i] = types.InvalidType
		}
		return out
	}

	for i, v := range vals {
		out[i] = v.Type
	}
	return out
}

// VisitFuncDecl checks a named top-level function's body. The
// function's own Fn type was already computed and bound during
// sema.go's pre-registration pass; here we only need its Results to
// validate the body's return statements.
func (a *Analyzer) VisitFuncDecl(n *ast.FuncDecl) {
	fnType := n.Lit.Type.Obj().Type // set by registerFuncSignature
	a.analyzeFuncBody(n.Lit.Type.Params, fnType.Results, n.Lit.Body)
	n.Lit.SetObj(&types.Obj{Cat: types.CatFunc, Type: fnType})
}
