package grammar

import (
	"strings"
)

// String renders the program in the same canonical form as ast.Render.
func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
		b.WriteString(";")
	}
	return b.String()
}

func (s *Statement) String() string {
	switch {
	case s.Let != nil:
		return "let " + s.Let.Name + " = " + s.Let.Value.String()
	case s.Return != nil:
		return "return " + s.Return.Value.String()
	case s.Expression != nil:
		return s.Expression.Expression.String()
	case s.Block != nil:
		return "{" + s.Block.String() + "}"
	}
	return ""
}

func (blk *Block) String() string {
	parts := make([]string, 0, len(blk.Statements))
	for _, s := range blk.Statements {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ";")
}

func (e *Expression) String() string {
	switch {
	case e.Ident != nil:
		return *e.Ident
	case e.Int != nil:
		return e.Int.String()
	case e.Bool != nil:
		if *e.Bool {
			return "true"
		}
		return "false"
	case e.Str != nil:
		return string(*e.Str)
	case e.If != nil:
		return e.If.String()
	case e.Prefix != nil:
		return e.Prefix.Operator + e.Prefix.Operand.String()
	case e.Func != nil:
		return "fn(" + strings.Join(e.Func.Params, ", ") + ") {" + e.Func.Body.String() + "}"
	}
	return ""
}

func (i *If) String() string {
	var b strings.Builder
	b.WriteString("if(")
	b.WriteString(i.Condition.String())
	b.WriteString(") {")
	b.WriteString(i.Consequence.String())
	b.WriteString("}")
	if i.Alternative != nil {
		b.WriteString(" else {")
		b.WriteString(i.Alternative.String())
		b.WriteString("}")
	}
	return b.String()
}
