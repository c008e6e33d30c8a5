/*
File   : lilang/sema/sema_test.go

Table-driven semantic analyzer tests in the teacher's testify style,
covering spec.md §8's concrete end-to-end scenarios plus the
SPEC_FULL.md redesign-flag fixes (if-condition-must-be-bool,
break/continue-outside-loop).
*/
package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lilang/ast"
	"lilang/lexer"
	"lilang/parser"
	"lilang/types"
)

func mustAnalyze(t *testing.T, src string) (*ast.File, int) {
	t.Helper()
	toks, lexErrs := lexer.Lex([]byte(src))
	require.True(t, lexErrs.Empty(), "unexpected lexical errors: %v", lexErrs.Items())
	file, parseErrs := parser.Parse(toks)
	require.True(t, parseErrs.Empty(), "unexpected syntax errors: %v", parseErrs.Items())
	errs := Analyze(file)
	return file, errs.Len()
}

func TestAnalyze_VarDeclInferredIntFromArithmetic(t *testing.T) {
	file, n := mustAnalyze(t, "let x = 1 + 2 * 3;")
	assert.Equal(t, 0, n)
	vd := file.Decls[0].(*ast.VarDecl)
	obj := vd.Values[0].Obj()
	require.NotNil(t, obj)
	assert.Equal(t, types.Int, obj.Type.Kind)
}

func TestAnalyze_FloatToIntAssignmentIsImplicitlyAllowed(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() {
	let x int;
	x = 1.5;
}`)
	assert.Equal(t, 0, n)
}

func TestAnalyze_UndeclaredIdentifierIsOneSemanticError(t *testing.T) {
	_, n := mustAnalyze(t, "let x = y;")
	assert.Equal(t, 1, n)
}

func TestAnalyze_TupleUnpackOnDeclaration(t *testing.T) {
	file, n := mustAnalyze(t, `
fn f()(int, int) {
	return 1, 2;
}
let a, b = f();
`)
	require.Equal(t, 0, n)
	vd := file.Decls[1].(*ast.VarDecl)
	assert.Equal(t, []string{"a", "b"}, vd.Names)
}

func TestAnalyze_IfConditionMustBeBool(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() {
	if (1) {
	}
}`)
	assert.Equal(t, 1, n, "bare int condition must be rejected per the if-must-be-bool redesign fix")
}

func TestAnalyze_WhileConditionMustBeBool(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() {
	while (1) {
	}
}`)
	assert.Equal(t, 1, n)
}

func TestAnalyze_AddressOfNonAddressableIsError(t *testing.T) {
	_, n := mustAnalyze(t, "let p = &1;")
	assert.Equal(t, 1, n)
}

func TestAnalyze_AddressOfVariableIsAllowed(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() {
	let x = 1;
	let p = &x;
}`)
	assert.Equal(t, 0, n)
}

func TestAnalyze_DereferencePointerYieldsIndirectPointer(t *testing.T) {
	file, n := mustAnalyze(t, `
fn f() {
	let x = 1;
	let p = &x;
	let y = *p;
}`)
	require.Equal(t, 0, n)
	fd := file.Decls[0].(*ast.FuncDecl)
	letY := fd.Lit.Body.List[2].(*ast.DeclStmt).Decl.(*ast.VarDecl)
	star := letY.Values[0].(*ast.StarExpr)
	obj := star.Obj()
	require.NotNil(t, obj)
	assert.Equal(t, types.CatIndirectPointer, obj.Cat)
	assert.Equal(t, types.Int, obj.Type.Kind)
}

func TestAnalyze_StarOnTypeConstructsPointerType(t *testing.T) {
	_, n := mustAnalyze(t, "let p *int;")
	assert.Equal(t, 0, n)
}

func TestAnalyze_CastRequiresExactlyOneArgument(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() {
	let x = float(1, 2);
}`)
	assert.Equal(t, 1, n)
}

func TestAnalyze_CastBetweenNumericTypesSucceeds(t *testing.T) {
	file, n := mustAnalyze(t, `
fn f() {
	let x = float(1);
}`)
	assert.Equal(t, 0, n)
	fd := file.Decls[0].(*ast.FuncDecl)
	vd := fd.Lit.Body.List[0].(*ast.DeclStmt).Decl.(*ast.VarDecl)
	obj := vd.Values[0].Obj()
	require.NotNil(t, obj)
	assert.Equal(t, types.Float, obj.Type.Kind)
}

func TestAnalyze_CallArityMismatchIsError(t *testing.T) {
	_, n := mustAnalyze(t, `
fn add(int a, int b) int {
	return a + b;
}
let x = add(1);
`)
	assert.Equal(t, 1, n)
}

func TestAnalyze_CallArgumentTypeMismatchIsError(t *testing.T) {
	_, n := mustAnalyze(t, `
fn takesInt(int a) {
}
fn f() {
	takesInt("hi");
}
`)
	assert.Equal(t, 1, n)
}

func TestAnalyze_MultiReturnPipedIntoWrappingCall(t *testing.T) {
	_, n := mustAnalyze(t, `
fn pair()(int, int) {
	return 1, 2;
}
fn sum(int a, int b) int {
	return a + b;
}
let total = sum(pair());
`)
	assert.Equal(t, 0, n)
}

func TestAnalyze_RedeclarationInSameScopeIsError(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() {
	let x = 1;
	let x = 2;
}`)
	assert.Equal(t, 1, n)
}

func TestAnalyze_ShadowingInNestedBlockIsAllowed(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() {
	let x = 1;
	{
		let x = 2.5;
	}
}`)
	assert.Equal(t, 0, n)
}

func TestAnalyze_DuplicateParameterIsError(t *testing.T) {
	_, n := mustAnalyze(t, "fn f(int x, int x) {}")
	assert.Equal(t, 1, n)
}

func TestAnalyze_BreakOutsideLoopIsError(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() {
	break;
}`)
	assert.Equal(t, 1, n)
}

func TestAnalyze_ContinueOutsideLoopIsError(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() {
	continue;
}`)
	assert.Equal(t, 1, n)
}

func TestAnalyze_BreakInsideWhileIsAllowed(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() {
	while (1 == 1) {
		break;
	}
}`)
	assert.Equal(t, 0, n)
}

func TestAnalyze_BreakInsideNestedIfInsideLoopIsAllowed(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() {
	for (let i = 0; i < 10; i = i + 1) {
		if (i == 5) {
			break;
		}
	}
}`)
	assert.Equal(t, 0, n)
}

func TestAnalyze_IndexingNonArrayIsError(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() {
	let x = 1;
	let y = x[0];
}`)
	assert.Equal(t, 1, n)
}

func TestAnalyze_ArrayParamIndexingYieldsElementType(t *testing.T) {
	file, n := mustAnalyze(t, `
fn first([]int xs) int {
	return xs[0];
}`)
	assert.Equal(t, 0, n)
	fd := file.Decls[0].(*ast.FuncDecl)
	ret := fd.Lit.Body.List[0].(*ast.ReturnStmt)
	idx := ret.Results[0].(*ast.IndexExpr)
	obj := idx.Obj()
	require.NotNil(t, obj)
	assert.Equal(t, types.CatIndexValue, obj.Cat)
	assert.Equal(t, types.Int, obj.Type.Kind)
}

func TestAnalyze_ReturnArityMismatchIsError(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f()(int, int) {
	return 1;
}`)
	assert.Equal(t, 1, n)
}

func TestAnalyze_ReturnTypeMismatchIsError(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() string {
	return 1 == 1;
}`)
	assert.Equal(t, 1, n)
}

func TestAnalyze_MutualRecursionBetweenTopLevelFunctionsResolves(t *testing.T) {
	_, n := mustAnalyze(t, `
fn isEven(int n) int {
	if (n == 0) {
		return 1;
	}
	return isOdd(n - 1);
}
fn isOdd(int n) int {
	if (n == 0) {
		return 0;
	}
	return isEven(n - 1);
}`)
	assert.Equal(t, 0, n)
}

func TestAnalyze_DefineOperatorDeclaresNewVariable(t *testing.T) {
	file, n := mustAnalyze(t, `
fn f() {
	x := 1;
}`)
	assert.Equal(t, 0, n)
	fd := file.Decls[0].(*ast.FuncDecl)
	assign := fd.Lit.Body.List[0].(*ast.AssignStmt)
	ident := assign.Lhs[0].(*ast.Ident)
	obj := ident.Obj()
	require.NotNil(t, obj)
	assert.Equal(t, types.CatVar, obj.Cat)
}

func TestAnalyze_AssignToNonAssignableIsError(t *testing.T) {
	_, n := mustAnalyze(t, `
fn f() {
	1 = 2;
}`)
	assert.Equal(t, 1, n)
}

func TestAnalyze_ParameterGetsFreshVarObjDistinctFromItsTypeObj(t *testing.T) {
	file, n := mustAnalyze(t, "fn f(int x) { x = 2; }")
	assert.Equal(t, 0, n)
	fd := file.Decls[0].(*ast.FuncDecl)
	param := fd.Lit.Type.Params[0]
	paramTypeObj := param.Type.(*ast.Ident).Obj()
	require.NotNil(t, paramTypeObj)
	assert.Equal(t, types.CatType, paramTypeObj.Cat, "the type-position Ident 'int' resolves to a Type Obj")

	assignStmt := fd.Lit.Body.List[0].(*ast.AssignStmt)
	xIdent := assignStmt.Lhs[0].(*ast.Ident)
	xObj := xIdent.Obj()
	require.NotNil(t, xObj)
	assert.Equal(t, types.CatVar, xObj.Cat, "the parameter binding itself is a distinct Var Obj")
}
