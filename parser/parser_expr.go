/*
File   : lilang/parser/parser_expr.go

Expression and type-expression parsing: precedence climbing over the
table in precedence.go, grounded on the teacher's
parser/parser_precedence.go (registered-by-precedence parse functions)
generalized to an explicit parseBinary(minPrec) so the recursion depth
IS the precedence level, per spec.md §4.2's own description of the
algorithm.

Type expressions (Ident | *Type | []Type | fn SIGNATURE) share this
same machinery: they are parsed by parseUnary/parseOperand exactly like
value expressions, since the grammar does not distinguish the two
syntactically — spec.md leaves that to semantic analysis.
*/
package parser

import (
	"lilang/ast"
	"lilang/token"
)

// parseExpr parses a full expression at the lowest precedence level.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinary(orPrec)
}

// parseType parses a Type expression. Syntactically identical to
// parseUnary (type position never starts a binary expression).
func (p *Parser) parseType() ast.Expr {
	return p.parseUnary()
}

// parseBinary implements precedence climbing: it parses a unary
// operand, then repeatedly folds in binary operators whose precedence
// is at least minPrec, recursing at prec+1 for the right operand so
// same-precedence operators associate left.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseUnary()
	for {
		prec := precedence(p.cur.Kind)
		if prec < minPrec {
			return left
		}
		op := p.cur
		p.advance()
		right := p.parseBinary(prec + 1)
		left = &ast.BinaryExpr{
			ExprBase: ast.ExprBase{Span: ast.Span{Start: left.Pos(), End: p.prevEnd}},
			Op:       op.Kind,
			OpAt:     op.Pos,
			X:        left,
			Y:        right,
		}
	}
}

// parseUnary handles the prefix operators `+ - & * ^ ! |`, which bind
// tighter than any binary operator, then falls through to primary
// expressions. `*` is special-cased into StarExpr since its meaning
// (pointer type vs. dereference) is resolved later by sema.
func (p *Parser) parseUnary() ast.Expr {
	if p.at(token.STAR) {
		start := p.cur.Pos
		p.advance()
		x := p.parseUnary()
		return &ast.StarExpr{ExprBase: ast.ExprBase{Span: p.span(start)}, X: x}
	}
	if isUnaryOp(p.cur.Kind) {
		op := p.cur
		p.advance()
		x := p.parseUnary()
		return &ast.UnaryExpr{
			ExprBase: ast.ExprBase{Span: p.span(op.Pos)},
			Op:       op.Kind,
			OpAt:     op.Pos,
			X:        x,
		}
	}
	return p.parsePrimary()
}

// parsePrimary parses Operand (Call | Index)*, chaining postfix calls
// and indexing left-to-right onto whatever operand started the chain.
func (p *Parser) parsePrimary() ast.Expr {
	x := p.parseOperand()
	for {
		switch p.cur.Kind {
		case token.LPAREN:
			x = p.parseCall(x)
		case token.LBRACKET:
			x = p.parseIndex(x)
		default:
			return x
		}
	}
}

func (p *Parser) parseCall(fun ast.Expr) ast.Expr {
	start := fun.Pos()
	p.advance() // consume '('
	var args []ast.Expr
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		args = append(args, p.parseExpr())
		if !p.at(token.COMMA) {
			break
		}
		p.advance()
	}
	p.expect(token.RPAREN)
	return &ast.CallExpr{ExprBase: ast.ExprBase{Span: p.span(start)}, Fun: fun, Args: args}
}

func (p *Parser) parseIndex(x ast.Expr) ast.Expr {
	start := x.Pos()
	p.advance() // consume '['
	idx := p.parseExpr()
	p.expect(token.RBRACKET)
	return &ast.IndexExpr{ExprBase: ast.ExprBase{Span: p.span(start)}, X: x, Index: idx}
}

// parseOperand parses the grammar's Operand production: an identifier,
// a literal, a parenthesized expression, an array-type prefix `[]Type`,
// or a function literal/type introduced by `fn`.
func (p *Parser) parseOperand() ast.Expr {
	switch p.cur.Kind {
	case token.IDENT:
		t := p.cur
		p.advance()
		return &ast.Ident{ExprBase: ast.ExprBase{Span: ast.Span{Start: t.Pos, End: t.End()}}, Name: t.Literal}

	case token.NUMBER, token.FLOAT, token.STRING:
		t := p.cur
		p.advance()
		return &ast.BasicLit{ExprBase: ast.ExprBase{Span: ast.Span{Start: t.Pos, End: t.End()}}, Kind: t.Kind, Value: t.Literal}

	case token.LPAREN:
		start := p.cur.Pos
		p.advance()
		x := p.parseExpr()
		p.expect(token.RPAREN)
		return &ast.ParenExpr{ExprBase: ast.ExprBase{Span: p.span(start)}, X: x}

	case token.LBRACKET:
		start := p.cur.Pos
		p.advance()
		p.expect(token.RBRACKET)
		elt := p.parseUnary()
		return &ast.ArrayType{ExprBase: ast.ExprBase{Span: p.span(start)}, Elt: elt}

	case token.FN:
		return p.parseFuncLitOrType()

	default:
		start := p.cur.Pos
		p.errorf("operand expected, found %s", describeToken(p.cur))
		p.syncTo(exprFollow)
		return &ast.BadExpr{ExprBase: ast.ExprBase{Span: p.span(start)}}
	}
}

// parseFuncLitOrType parses `fn SIGNATURE` and, if a block follows,
// continues into a FuncLit body; otherwise the bare FuncType is
// returned as a value expression, allowing a cast-style chained call
// like `fn(int)(int)(x)` (spec.md §4.2).
func (p *Parser) parseFuncLitOrType() ast.Expr {
	start := p.cur.Pos
	p.advance() // consume 'fn'
	sig := p.parseFuncSignature(start)
	if p.at(token.LBRACE) {
		body := p.parseBlock()
		sig.Span.End = p.prevEnd
		return &ast.FuncLit{
			ExprBase: ast.ExprBase{Span: ast.Span{Start: start, End: p.prevEnd}},
			Type:     sig,
			Body:     body,
		}
	}
	return sig
}

// parseFuncSignature parses `( FieldList? ) ReturnList` and returns it
// as a *ast.FuncType.
func (p *Parser) parseFuncSignature(start token.Position) *ast.FuncType {
	p.expect(token.LPAREN)
	var params []*ast.Field
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		params = append(params, p.parseField())
		if !p.at(token.COMMA) {
			break
		}
		p.advance()
	}
	p.expect(token.RPAREN)

	results := p.parseReturnList()
	return &ast.FuncType{
		ExprBase: ast.ExprBase{Span: p.span(start)},
		Params:   params,
		Results:  results,
	}
}

// parseField parses `Type Ident?`: the trailing identifier is optional
// and defaults to "_" for an anonymous parameter (spec.md §3).
func (p *Parser) parseField() *ast.Field {
	start := p.cur.Pos
	typ := p.parseType()
	name := "_"
	if p.at(token.IDENT) {
		name = p.cur.Literal
		p.advance()
	}
	return &ast.Field{Span: p.span(start), Name: name, Type: typ}
}

// parseReturnList parses the ReturnList production: a single bare
// Type, a parenthesized (possibly empty) Type list, or nothing at all.
func (p *Parser) parseReturnList() []ast.Expr {
	switch {
	case p.at(token.LPAREN):
		p.advance()
		var results []ast.Expr
		for !p.at(token.RPAREN) && !p.at(token.EOF) {
			results = append(results, p.parseType())
			if !p.at(token.COMMA) {
				break
			}
			p.advance()
		}
		p.expect(token.RPAREN)
		return results

	case isTypeStart(p.cur.Kind):
		return []ast.Expr{p.parseType()}

	default:
		return nil
	}
}

// parseExprList parses a comma-separated list of one or more
// expressions.
func (p *Parser) parseExprList() []ast.Expr {
	list := []ast.Expr{p.parseExpr()}
	for p.at(token.COMMA) {
		p.advance()
		list = append(list, p.parseExpr())
	}
	return list
}
