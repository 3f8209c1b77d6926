package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lpp/grammar"
	"lpp/internal/parser"
	"lpp/internal/source"
)

func TestParseProgram(t *testing.T) {
	program, err := grammar.ParseString("test.lpp", `
let add = fn(a, b) { return a; };
if (true) { "yes"; } else { !false; };
{ -5; }
`)
	require.NoError(t, err)
	require.Len(t, program.Statements, 3)

	let := program.Statements[0].Let
	require.NotNil(t, let)
	assert.Equal(t, "add", let.Name)
	require.NotNil(t, let.Value.Func)
	assert.Equal(t, []string{"a", "b"}, let.Value.Func.Params)
	assert.Equal(t, 2, program.Statements[0].Pos.Line)

	ifExpr := program.Statements[1].Expression.Expression.If
	require.NotNil(t, ifExpr)
	require.NotNil(t, ifExpr.Condition.Bool)
	assert.True(t, bool(*ifExpr.Condition.Bool))
	assert.NotNil(t, ifExpr.Alternative)

	block := program.Statements[2].Block
	require.NotNil(t, block)
	require.Len(t, block.Statements, 1)

	assert.Equal(t,
		`let add = fn(a, b) {return a};if(true) {yes} else {!false};{-5};`,
		program.String())
}

func TestKeywordsAreNotIdentifiers(t *testing.T) {
	_, err := grammar.ParseString("kw.lpp", "let let = 5;")
	assert.Error(t, err)

	program, err := grammar.ParseString("kw.lpp", "let letter = iffy;")
	require.NoError(t, err)
	assert.Equal(t, "letter", program.Statements[0].Let.Name)
}

func TestIntegerLiteralWraps(t *testing.T) {
	program, err := grammar.ParseString("int.lpp", "let n = 4294967297;")
	require.NoError(t, err)
	assert.Equal(t, grammar.Uint32(1), *program.Statements[0].Let.Value.Int)
}

func TestErrorOffset(t *testing.T) {
	_, err := grammar.ParseString("bad.lpp", "let x = 1; let = 2;")
	require.Error(t, err)

	offset, ok := grammar.ErrorOffset(err)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, offset, 11)
	assert.LessOrEqual(t, offset, 15)
}

func TestEBNF(t *testing.T) {
	ebnf := grammar.EBNF()
	assert.Contains(t, ebnf, "Program")
	assert.Contains(t, ebnf, "Statement")
	assert.Contains(t, ebnf, `"let"`)
}

func TestReferenceAgreesWithParser(t *testing.T) {
	inputs := []string{
		"",
		"let my_var = other_var;",
		"return 5; return true;",
		"if (x) { a; } else { b; };",
		"if (x) { a; b; };",
		"-a; !true; !-!x;",
		`let s = "hi there";`,
		"{ a; { b; } }",
		"{ }",
		"let f = fn(a, b) { return a; };",
		"fn() { };",
		"let n = 4294967297;",
		"let ñandú = 12;",
		"1234sdf;",
		"if (x) { let f = fn(a) { if (a) { b; }; }; };",

		"let x",
		"{ let a = 5; @ }",
		"a b;",
		`let s = "open`,
		"if (x) { a; } else",
		"fn(a, ) { };",
		"x == y;",
		"a; @",
		"{ a; b }",
		"x;;",
		"letx = 1;",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			src := source.String(input)
			mismatch := grammar.Compare(src, parser.ParseSource(src))
			assert.Nil(t, mismatch)
		})
	}
}
