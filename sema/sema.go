/*
File   : lilang/sema/sema.go

Package sema implements the semantic analyzer of spec.md §6: a single
double-dispatch pass over the parser's *ast.File that attaches a
types.Obj to every expression node and accumulates a report.List of
semantic errors, never aborting on the first one (spec.md §7).

Grounded on the teacher's eval/evaluator.go (the original Visitor
implementation that walked the same node family to produce runtime
values) and scope/scope.go (the scope-push/pop discipline on block and
function entry) — generalized from "compute a Value" to "compute an
Obj", since this front-end performs no code generation.
*/
package sema

import (
	"lilang/ast"
	"lilang/report"
	"lilang/token"
	"lilang/types"
)

// Analyzer implements ast.Visitor. It holds the current lexical scope,
// the accumulated diagnostics, the loop-nesting depth (for break/
// continue validation), and the result-type list of the function body
// currently being checked (for return-statement validation).
type Analyzer struct {
	scope     *types.Scope
	errs      report.List
	loopDepth int
	curResult []*types.Type
}

// Analyze runs the semantic pass over file and returns the accumulated
// diagnostics. The tree's nodes are mutated in place (each Expr gets
// its Obj set via SetObj).
func Analyze(file *ast.File) report.List {
	a := &Analyzer{scope: types.NewGlobalScope()}
	file.Accept(a)
	return a.errs
}

// VisitFile is the double-dispatch entry point ast.File.Accept calls
// back into, satisfying ast.Visitor for *Analyzer.
func (a *Analyzer) VisitFile(n *ast.File) {
	a.run(n)
}

func (a *Analyzer) run(file *ast.File) {
	// Pre-register every top-level function's signature before
	// checking any body, so mutual recursion and forward calls between
	// top-level functions resolve (spec.md §6 does not forbid it, and
	// the teacher's own REPL evaluates declarations in a single
	// environment where this is already implicit).
	for _, d := range file.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok {
			a.registerFuncSignature(fd)
		}
	}
	for _, d := range file.Decls {
		d.Accept(a)
	}
}

// registerFuncSignature computes fd's Fn type from its signature alone
// (no body check yet) and binds it in the global scope, reporting a
// redeclaration error if the name is already in use.
func (a *Analyzer) registerFuncSignature(fd *ast.FuncDecl) {
	fnType := a.resolveFuncType(fd.Lit.Type)
	if existed := a.scope.Bind(fd.Lit.Name, &types.Obj{Cat: types.CatFunc, Type: fnType}); existed {
		a.errorf(fd.Pos(), "%q is already declared in this scope", fd.Lit.Name)
	}
}

// resolveFuncType evaluates a FuncType's parameter and result Type
// expressions into a *types.Type without touching any value scope —
// used both during signature pre-registration and when a FuncType
// expression is evaluated as a type in its own right.
func (a *Analyzer) resolveFuncType(ft *ast.FuncType) *types.Type {
	params := make([]*types.Type, len(ft.Params))
	for i, f := range ft.Params {
		params[i] = a.resolveType(f.Type)
	}
	results := make([]*types.Type, len(ft.Results))
	for i, r := range ft.Results {
		results[i] = a.resolveType(r)
	}
	t := types.NewFunc(params, results)
	ft.SetObj(&types.Obj{Cat: types.CatType, Type: t})
	return t
}

// resolveType evaluates expr as a Type expression, reporting an error
// and returning InvalidType if it does not name a type.
func (a *Analyzer) resolveType(expr ast.Expr) *types.Type {
	obj := a.eval(expr)
	if obj.Cat != types.CatType {
		if !obj.IsInvalid() {
			a.errorf(expr.Pos(), "expected a type, found a value of type %s", obj.Type)
		}
		return types.InvalidType
	}
	return obj.Type
}

// eval visits expr and returns the Obj it was annotated with.
func (a *Analyzer) eval(expr ast.Expr) *types.Obj {
	expr.Accept(a)
	obj := expr.Obj()
	if obj == nil {
		return types.Invalid
	}
	return obj
}

// errorf records a semantic diagnostic at pos.
func (a *Analyzer) errorf(pos token.Position, format string, args ...interface{}) {
	a.errs.Add(report.Semantic, pos, format, args...)
}

func (a *Analyzer) pushScope() { a.scope = types.NewScope(a.scope) }
func (a *Analyzer) popScope()  { a.scope = a.scope.Parent }
