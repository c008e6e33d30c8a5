/*
File   : lilang/parser/parser_decl.go

Top-level and in-block declaration parsing: `let` VarDecls and `fn`
FuncDecls, plus the File production that is simply a list of these.
Grounded on the teacher's parser.go ParseProgram loop (repeatedly parse
a statement until EOF, collecting errors rather than stopping).
*/
package parser

import (
	"lilang/ast"
	"lilang/token"
)

// parseFile parses the whole token stream as a sequence of top-level
// declarations, recovering to the next declaration keyword on error so
// one malformed declaration does not abort the rest of the file.
func (p *Parser) parseFile() *ast.File {
	start := p.cur.Pos
	var decls []ast.Decl
	for !p.at(token.EOF) {
		switch p.cur.Kind {
		case token.LET:
			decls = append(decls, p.parseVarDecl())
		case token.FN:
			decls = append(decls, p.parseFuncDecl())
		default:
			p.errorf("expected a declaration, found %s", describeToken(p.cur))
			for !p.at(token.LET) && !p.at(token.FN) && !p.at(token.EOF) {
				p.advance()
			}
		}
	}
	return &ast.File{Span: p.span(start), Decls: decls}
}

// parseVarDecl parses `let Names ( = ExprList | Type ) ;`.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	start := p.cur.Pos
	p.advance() // 'let'

	var names []string
	names = append(names, p.expect(token.IDENT).Literal)
	for p.at(token.COMMA) {
		p.advance()
		names = append(names, p.expect(token.IDENT).Literal)
	}

	decl := &ast.VarDecl{Names: names}
	switch {
	case p.at(token.ASSIGN):
		p.advance()
		decl.Values = p.parseExprList()
	case isTypeStart(p.cur.Kind):
		decl.Type = p.parseType()
	default:
		p.errorf("expected '=' or a type after variable list, found %s", describeToken(p.cur))
		p.syncTo(stmtFollow)
	}

	p.expect(token.SEMICOLON)
	decl.Span = p.span(start)
	return decl
}

// parseFuncDecl parses `fn Ident Signature Body`.
func (p *Parser) parseFuncDecl() *ast.FuncDecl {
	start := p.cur.Pos
	p.advance() // 'fn'
	name := p.expect(token.IDENT).Literal
	sig := p.parseFuncSignature(start)
	body := p.parseBlock()

	lit := &ast.FuncLit{
		ExprBase: ast.ExprBase{Span: p.span(start)},
		Name:     name,
		Type:     sig,
		Body:     body,
	}
	return &ast.FuncDecl{DeclBase: ast.DeclBase{Span: p.span(start)}, Lit: lit}
}
