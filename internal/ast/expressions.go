package ast

import "lpp/token"

type Ident struct {
	Token token.Token
}

type Int struct {
	Token token.Token
	Value uint32
}

type Bool struct {
	Token token.Token
	Value bool
}

// StringLiteral holds the raw text between the quotes.
type StringLiteral struct {
	Token token.Token
	Value string
}

// Prefix is a unary operator applied to an operand. Token is the operator.
type Prefix struct {
	Token   token.Token
	Operand Expression
}

// Infix is a binary operator expression. Token is the operator.
type Infix struct {
	Token token.Token
	Left  Expression
	Right Expression
}

// If is a conditional expression. Alternative is nil when there is no else
// branch.
type If struct {
	Token       token.Token
	Condition   Expression
	Consequence *Block
	Alternative *Block
}

// Func is a function literal. Token is the fn keyword.
type Func struct {
	Token  token.Token
	Params []*Ident
	Body   *Block
}

// Call applies Function to Args. Token is the opening parenthesis.
type Call struct {
	Token    token.Token
	Function Expression
	Args     []Expression
}
