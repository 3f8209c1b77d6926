package ast

import "lpp/token"

type LetStatement struct {
	Token token.Token
	Name  *Ident
	Value Expression
}

type ReturnStatement struct {
	Token token.Token
	Value Expression
}

// ExpressionStatement is an expression followed by a semicolon. Token is the
// first token of the expression.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

// Block is a braced statement sequence. Token is the opening brace.
type Block struct {
	Token      token.Token
	Statements []Statement
}

// Program is the root of a parse.
type Program struct {
	Statements []Statement
}
