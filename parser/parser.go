/*
File   : lilang/parser/parser.go

Package parser implements the recursive-descent, one-token-lookahead
parser of spec.md §4: Lex output in, a *ast.File and a report.List of
syntax errors out, never aborting on a malformed construct.

Grounded on the teacher's parser/parser.go (Parser.curToken/peekToken
pair, nextToken/expectPeek, and its accumulate-into-a-slice error
policy) — generalized from the teacher's single-token error message
shape into panic-mode recovery via follow sets, since spec.md §4.3
requires the parser to resynchronize and keep parsing after an error
rather than stop at the first one.
*/
package parser

import (
	"lilang/ast"
	"lilang/report"
	"lilang/token"
)

// Parser holds the token stream and two-token lookahead window used by
// every parse* method below.
type Parser struct {
	toks []token.Token // comments already filtered out, EOF-terminated
	idx  int           // index of the token after next

	cur  token.Token
	next token.Token

	prevEnd token.Position
	errs    report.List
}

// New builds a Parser over toks, which may still contain COMMENT
// tokens — the parser skips them transparently per spec.md §4.1, here
// implemented by filtering them out up front rather than interleaving
// the skip into every advance (an equivalent, simpler reading of
// "transparently").
func New(toks []token.Token) *Parser {
	filtered := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind != token.COMMENT {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == 0 {
		filtered = append(filtered, token.Token{Kind: token.EOF})
	}
	p := &Parser{toks: filtered}
	p.idx = 0
	p.cur = p.readRaw()
	p.next = p.readRaw()
	return p
}

// Parse runs the full File production and returns the resulting tree
// together with every syntax error encountered along the way.
func Parse(toks []token.Token) (*ast.File, report.List) {
	p := New(toks)
	return p.parseFile(), p.errs
}

func (p *Parser) readRaw() token.Token {
	if p.idx >= len(p.toks) {
		return p.toks[len(p.toks)-1] // repeat trailing EOF
	}
	t := p.toks[p.idx]
	p.idx++
	return t
}

// advance consumes cur, sliding next into its place.
func (p *Parser) advance() {
	p.prevEnd = p.cur.End()
	p.cur = p.next
	p.next = p.readRaw()
}

// at reports whether the current token has the given kind.
func (p *Parser) at(kind token.Kind) bool { return p.cur.Kind == kind }

// errorf records a syntax error at the current token's position.
func (p *Parser) errorf(format string, args ...interface{}) {
	p.errs.Add(report.Syntax, p.cur.Pos, format, args...)
}

// expect checks that cur has the given kind, recording an error if not,
// and unconditionally advances one token so the parser always makes
// forward progress (spec.md §4.3: "Expect always advances one token").
// It returns the token that was current before advancing.
func (p *Parser) expect(kind token.Kind) token.Token {
	t := p.cur
	if t.Kind != kind {
		p.errorf("expected %s, found %s", kind, describeToken(t))
	}
	p.advance()
	return t
}

func describeToken(t token.Token) string {
	if t.Kind == token.EOF {
		return "end of file"
	}
	return string(t.Kind)
}

// exprFollow is the recovery set used after a malformed expression:
// the parser discards tokens until it finds one of these, or EOF.
var exprFollow = map[token.Kind]bool{
	token.RPAREN:    true,
	token.COMMA:     true,
	token.SEMICOLON: true,
	token.RBRACKET:  true,
}

// stmtFollow is the recovery set used after a malformed statement.
var stmtFollow = map[token.Kind]bool{
	token.RBRACE:    true,
	token.SEMICOLON: true,
}

// syncTo advances until cur is in set, is EOF, or is RBRACE (statement
// lists always end in one, so it is always safe to stop there too).
func (p *Parser) syncTo(set map[token.Kind]bool) {
	for !set[p.cur.Kind] && p.cur.Kind != token.EOF && p.cur.Kind != token.RBRACE {
		p.advance()
	}
}

// span builds a Span from start to the end of the most recently
// consumed token.
func (p *Parser) span(start token.Position) ast.Span {
	return ast.Span{Start: start, End: p.prevEnd}
}
