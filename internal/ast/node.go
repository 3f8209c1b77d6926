// Package ast defines the syntax tree produced by the parser.
//
// Nodes keep the token they were built from and own their children. Text is
// recovered from the source on demand, so most operations take the
// source.Source the tree was parsed from.
package ast

import (
	"strings"

	"lpp/internal/source"
)

type Node interface {
	NodeType() NodeType
	// Pos is the byte offset where the node's token starts.
	Pos() int
	TokenLiteral(src source.Source) string
	Render(b *strings.Builder, src source.Source)
}

type Expression interface {
	Node
	isExpression()
}

type Statement interface {
	Node
	isStatement()
}

func (i *Ident) NodeType() NodeType               { return IDENT }
func (n *Int) NodeType() NodeType                 { return INT_LITERAL }
func (n *Bool) NodeType() NodeType                { return BOOL_LITERAL }
func (s *StringLiteral) NodeType() NodeType       { return STRING_LITERAL }
func (p *Prefix) NodeType() NodeType              { return PREFIX_EXPR }
func (in *Infix) NodeType() NodeType              { return INFIX_EXPR }
func (i *If) NodeType() NodeType                  { return IF_EXPR }
func (f *Func) NodeType() NodeType                { return FUNC_LITERAL }
func (c *Call) NodeType() NodeType                { return CALL_EXPR }
func (l *LetStatement) NodeType() NodeType        { return LET_STMT }
func (r *ReturnStatement) NodeType() NodeType     { return RETURN_STMT }
func (e *ExpressionStatement) NodeType() NodeType { return EXPR_STMT }
func (b *Block) NodeType() NodeType               { return BLOCK }
func (p *Program) NodeType() NodeType             { return PROGRAM }

func (i *Ident) Pos() int               { return i.Token.Start }
func (n *Int) Pos() int                 { return n.Token.Start }
func (n *Bool) Pos() int                { return n.Token.Start }
func (s *StringLiteral) Pos() int       { return s.Token.Start }
func (p *Prefix) Pos() int              { return p.Token.Start }
func (in *Infix) Pos() int              { return in.Token.Start }
func (i *If) Pos() int                  { return i.Token.Start }
func (f *Func) Pos() int                { return f.Token.Start }
func (c *Call) Pos() int                { return c.Token.Start }
func (l *LetStatement) Pos() int        { return l.Token.Start }
func (r *ReturnStatement) Pos() int     { return r.Token.Start }
func (e *ExpressionStatement) Pos() int { return e.Token.Start }
func (b *Block) Pos() int               { return b.Token.Start }

// Pos of a Program is the position of its first statement, or 0 when empty.
func (p *Program) Pos() int {
	if len(p.Statements) == 0 {
		return 0
	}
	return p.Statements[0].Pos()
}

func (i *Ident) TokenLiteral(src source.Source) string         { return i.Token.Literal(src) }
func (n *Int) TokenLiteral(src source.Source) string           { return n.Token.Literal(src) }
func (n *Bool) TokenLiteral(src source.Source) string          { return n.Token.Literal(src) }
func (s *StringLiteral) TokenLiteral(src source.Source) string { return s.Token.Literal(src) }
func (p *Prefix) TokenLiteral(src source.Source) string        { return p.Token.Literal(src) }
func (in *Infix) TokenLiteral(src source.Source) string        { return in.Token.Literal(src) }
func (i *If) TokenLiteral(src source.Source) string            { return i.Token.Literal(src) }
func (f *Func) TokenLiteral(src source.Source) string          { return f.Token.Literal(src) }
func (c *Call) TokenLiteral(src source.Source) string          { return c.Token.Literal(src) }
func (l *LetStatement) TokenLiteral(src source.Source) string  { return l.Token.Literal(src) }
func (r *ReturnStatement) TokenLiteral(src source.Source) string {
	return r.Token.Literal(src)
}
func (e *ExpressionStatement) TokenLiteral(src source.Source) string {
	return e.Token.Literal(src)
}
func (b *Block) TokenLiteral(src source.Source) string { return b.Token.Literal(src) }

func (p *Program) TokenLiteral(src source.Source) string {
	if len(p.Statements) == 0 {
		return ""
	}
	return p.Statements[0].TokenLiteral(src)
}

func (*Ident) isExpression()         {}
func (*Int) isExpression()           {}
func (*Bool) isExpression()          {}
func (*StringLiteral) isExpression() {}
func (*Prefix) isExpression()        {}
func (*Infix) isExpression()         {}
func (*If) isExpression()            {}
func (*Func) isExpression()          {}
func (*Call) isExpression()          {}

func (*LetStatement) isStatement()        {}
func (*ReturnStatement) isStatement()     {}
func (*ExpressionStatement) isStatement() {}
func (*Block) isStatement()               {}
