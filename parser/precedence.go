/*
File   : lilang/parser/precedence.go

The operator precedence table of spec.md §4.2, grounded on the
teacher's parser/parser_precedence.go (named *_PRIORITY constants plus
a getPrecedence switch) — generalized to the smaller, fixed operator
set this grammar actually defines (no shift/range/member-access
operators, since spec.md's table never lists them).
*/
package parser

import "lilang/token"

const (
	lowestPrec = 0

	orPrec    = 1 // ||
	andPrec   = 2 // &&
	cmpPrec   = 3 // == != < > <= >=
	addPrec   = 4 // + - | ^
	mulPrec   = 5 // & * / %
	unaryPrec = 6 // tighter than any binary operator
)

// precedence returns kind's binary-operator precedence, or lowestPrec
// if kind is not a binary operator.
func precedence(kind token.Kind) int {
	switch kind {
	case token.LOR:
		return orPrec
	case token.LAND:
		return andPrec
	case token.EQL, token.NEQ, token.LSS, token.GTR, token.LEQ, token.GEQ:
		return cmpPrec
	case token.PLUS, token.MINUS, token.PIPE, token.CARET:
		return addPrec
	case token.AMP, token.STAR, token.SLASH, token.PERCENT:
		return mulPrec
	default:
		return lowestPrec
	}
}

// isUnaryOp reports whether kind may start a unary/prefix expression:
// `+ - & * ^ ! |` per spec.md §4.2.
func isUnaryOp(kind token.Kind) bool {
	switch kind {
	case token.PLUS, token.MINUS, token.AMP, token.STAR, token.CARET, token.NOT, token.PIPE:
		return true
	default:
		return false
	}
}

// isAssignOp reports whether kind is a SimpleStmt assignment operator:
// `= += -= *= /= &= |= ^= :=` per spec.md §4.2 (notably no %=, no
// shift-assigns — this grammar does not define them).
func isAssignOp(kind token.Kind) bool {
	switch kind {
	case token.ASSIGN, token.DEFINE, token.ADD_ASSIGN, token.SUB_ASSIGN,
		token.MUL_ASSIGN, token.QUO_ASSIGN, token.AND_ASSIGN, token.OR_ASSIGN, token.XOR_ASSIGN:
		return true
	default:
		return false
	}
}

// isTypeStart reports whether kind can begin a Type expression:
// Ident | *Type | []Type | fn SIGNATURE.
func isTypeStart(kind token.Kind) bool {
	switch kind {
	case token.IDENT, token.STAR, token.LBRACKET, token.FN:
		return true
	default:
		return false
	}
}
