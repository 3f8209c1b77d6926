package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lpp/internal/source"
	"lpp/token"
)

// span returns the token covering the first occurrence of text in src.
func span(src source.Source, kind token.Kind, text string) token.Token {
	start := strings.Index(src.Text(), text)
	if start < 0 {
		panic("text not in source: " + text)
	}
	return token.New(kind, start, start+len(text))
}

func TestLetStatementRender(t *testing.T) {
	src := source.String("let my_var = other_var;")
	let := &LetStatement{
		Token: span(src, token.Let, "let"),
		Name:  &Ident{Token: span(src, token.Ident, "my_var")},
		Value: &Ident{Token: span(src, token.Ident, "other_var")},
	}

	assert.Equal(t, "let my_var = other_var", Render(let, src))
	assert.Equal(t, "let", let.TokenLiteral(src))
	assert.Equal(t, LET_STMT, let.NodeType())
}

func TestProgramRenderTerminatesEveryStatement(t *testing.T) {
	src := source.String(`return 7; "hi"; -x;`)
	program := &Program{Statements: []Statement{
		&ReturnStatement{
			Token: span(src, token.Return, "return"),
			Value: &Int{Token: span(src, token.Int, "7"), Value: 7},
		},
		&ExpressionStatement{
			Token:      span(src, token.String, `"hi"`),
			Expression: &StringLiteral{Token: span(src, token.String, `"hi"`), Value: "hi"},
		},
		&ExpressionStatement{
			Token: span(src, token.Minus, "-"),
			Expression: &Prefix{
				Token:   span(src, token.Minus, "-"),
				Operand: &Ident{Token: span(src, token.Ident, "x")},
			},
		},
	}}

	assert.Equal(t, "return 7;hi;-x;", Render(program, src))
	assert.Equal(t, "return", program.TokenLiteral(src))
	assert.Equal(t, 0, program.Pos())
}

func TestEmptyProgram(t *testing.T) {
	src := source.String("")
	assert.Equal(t, "", Render(&Program{}, src))
	assert.Equal(t, "", (&Program{}).TokenLiteral(src))
}

func TestIfRender(t *testing.T) {
	src := source.String("if (True) { a; b; } else { !c; }")
	cond := &Bool{Token: span(src, token.True, "True"), Value: true}
	consequence := &Block{
		Token: span(src, token.LBrace, "{"),
		Statements: []Statement{
			&ExpressionStatement{Expression: &Ident{Token: span(src, token.Ident, "a")}},
			&ExpressionStatement{Expression: &Ident{Token: span(src, token.Ident, "b")}},
		},
	}
	alternative := &Block{Statements: []Statement{
		&ExpressionStatement{Expression: &Prefix{
			Token:   span(src, token.Neg, "!"),
			Operand: &Ident{Token: span(src, token.Ident, "c")},
		}},
	}}

	withElse := &If{Condition: cond, Consequence: consequence, Alternative: alternative}
	assert.Equal(t, "if(True) {a;b} else {!c}", Render(withElse, src))

	withoutElse := &If{Condition: cond, Consequence: consequence}
	assert.Equal(t, "if(True) {a;b}", Render(withoutElse, src))
}

func TestNestedBlockRender(t *testing.T) {
	src := source.String("a b")
	a := &ExpressionStatement{Expression: &Ident{Token: span(src, token.Ident, "a")}}
	b := &ExpressionStatement{Expression: &Ident{Token: span(src, token.Ident, "b")}}

	outer := &Block{Statements: []Statement{a, &Block{Statements: []Statement{b}}}}
	assert.Equal(t, "a;{b}", Render(outer, src))

	program := &Program{Statements: []Statement{outer}}
	assert.Equal(t, "{a;{b}};", Render(program, src))
}

func TestInfixFuncCallRender(t *testing.T) {
	src := source.String("add x y * 2")
	x := &Ident{Token: span(src, token.Ident, "x")}
	y := &Ident{Token: span(src, token.Ident, "y")}

	mul := &Infix{
		Token: span(src, token.Mul, "*"),
		Left:  y,
		Right: &Int{Value: 2},
	}
	assert.Equal(t, "y * 2", Render(mul, src))

	fn := &Func{
		Params: []*Ident{x, y},
		Body: &Block{Statements: []Statement{
			&ReturnStatement{Value: mul},
		}},
	}
	assert.Equal(t, "fn(x, y) {return y * 2}", Render(fn, src))
	assert.Equal(t, "fn() {}", Render(&Func{Body: &Block{}}, src))

	call := &Call{
		Function: &Ident{Token: span(src, token.Ident, "add")},
		Args:     []Expression{x, mul},
	}
	assert.Equal(t, "add(x, y * 2)", Render(call, src))
}

func TestIntRendersValue(t *testing.T) {
	src := source.String("4294967296")
	n := &Int{Token: token.New(token.Int, 0, 10), Value: 0}
	assert.Equal(t, "0", Render(n, src))
	assert.Equal(t, "4294967296", n.TokenLiteral(src))
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "IF_EXPR", IF_EXPR.String())
	assert.Equal(t, "PROGRAM", PROGRAM.String())
	assert.Equal(t, "NodeType(?)", NodeType(99).String())
}
