package ast

import (
	"strconv"
	"strings"

	"lpp/internal/source"
)

// Render returns the canonical text of node. Statements in a Program are
// each followed by ";". Statements in a Block are separated by ";".
func Render(node Node, src source.Source) string {
	var b strings.Builder
	node.Render(&b, src)
	return b.String()
}

func (p *Program) Render(b *strings.Builder, src source.Source) {
	for _, stmt := range p.Statements {
		renderStatement(b, stmt, src)
		b.WriteString(";")
	}
}

func (blk *Block) Render(b *strings.Builder, src source.Source) {
	for i, stmt := range blk.Statements {
		if i > 0 {
			b.WriteString(";")
		}
		renderStatement(b, stmt, src)
	}
}

// renderStatement wraps nested blocks in braces so that sequencing survives
// the round trip.
func renderStatement(b *strings.Builder, stmt Statement, src source.Source) {
	if blk, ok := stmt.(*Block); ok {
		b.WriteString("{")
		blk.Render(b, src)
		b.WriteString("}")
		return
	}
	stmt.Render(b, src)
}

func (l *LetStatement) Render(b *strings.Builder, src source.Source) {
	b.WriteString("let ")
	l.Name.Render(b, src)
	b.WriteString(" = ")
	l.Value.Render(b, src)
}

func (r *ReturnStatement) Render(b *strings.Builder, src source.Source) {
	b.WriteString("return ")
	r.Value.Render(b, src)
}

func (e *ExpressionStatement) Render(b *strings.Builder, src source.Source) {
	e.Expression.Render(b, src)
}

func (i *Ident) Render(b *strings.Builder, src source.Source) {
	b.WriteString(i.Token.Literal(src))
}

func (n *Int) Render(b *strings.Builder, _ source.Source) {
	b.WriteString(strconv.FormatUint(uint64(n.Value), 10))
}

func (n *Bool) Render(b *strings.Builder, src source.Source) {
	b.WriteString(n.Token.Literal(src))
}

func (s *StringLiteral) Render(b *strings.Builder, _ source.Source) {
	b.WriteString(s.Value)
}

func (p *Prefix) Render(b *strings.Builder, src source.Source) {
	b.WriteString(p.Token.Literal(src))
	p.Operand.Render(b, src)
}

func (in *Infix) Render(b *strings.Builder, src source.Source) {
	in.Left.Render(b, src)
	b.WriteString(" ")
	b.WriteString(in.Token.Literal(src))
	b.WriteString(" ")
	in.Right.Render(b, src)
}

func (i *If) Render(b *strings.Builder, src source.Source) {
	b.WriteString("if(")
	i.Condition.Render(b, src)
	b.WriteString(") {")
	i.Consequence.Render(b, src)
	b.WriteString("}")
	if i.Alternative != nil {
		b.WriteString(" else {")
		i.Alternative.Render(b, src)
		b.WriteString("}")
	}
}

func (f *Func) Render(b *strings.Builder, src source.Source) {
	b.WriteString("fn(")
	for i, param := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		param.Render(b, src)
	}
	b.WriteString(") {")
	f.Body.Render(b, src)
	b.WriteString("}")
}

func (c *Call) Render(b *strings.Builder, src source.Source) {
	c.Function.Render(b, src)
	b.WriteString("(")
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		arg.Render(b, src)
	}
	b.WriteString(")")
}
