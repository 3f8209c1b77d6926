package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Program mirrors the hand-written parser's grammar declaratively. It is
// used as a reference to cross-check that parser.
type Program struct {
	Statements []*Statement `@@*`
}

type Statement struct {
	Pos lexer.Position

	Let        *LetStatement        `  @@`
	Return     *ReturnStatement     `| @@`
	Expression *ExpressionStatement `| @@`
	Block      *Block               `| @@`
}

type LetStatement struct {
	Name  string      `"let" @Ident "="`
	Value *Expression `@@ ";"`
}

type ReturnStatement struct {
	Value *Expression `"return" @@ ";"`
}

type ExpressionStatement struct {
	Expression *Expression `@@ ";"`
}

type Block struct {
	Statements []*Statement `"{" @@* "}"`
}

type Expression struct {
	Ident  *string  `  @Ident`
	Int    *Uint32  `| @Int`
	Bool   *Boolean `| @("true" | "false")`
	Str    *Quoted  `| @String`
	If     *If      `| @@`
	Prefix *Prefix  `| @@`
	Func   *Func    `| @@`
}

type If struct {
	Condition   *Expression `"if" "(" @@ ")"`
	Consequence *Block      `@@`
	Alternative *Block      `( "else" @@ )?`
}

type Prefix struct {
	Operator string      `@("!" | "-")`
	Operand  *Expression `@@`
}

type Func struct {
	Params []string `"fn" "(" ( @Ident ( "," @Ident )* )? ")"`
	Body   *Block   `@@`
}

// Uint32 is an integer literal. Values past math.MaxUint32 wrap around.
type Uint32 uint32

func (u *Uint32) Capture(values []string) error {
	var v uint32
	for _, c := range values[0] {
		if c < '0' || c > '9' {
			return fmt.Errorf("invalid digit %q in integer literal", c)
		}
		v = 10*v + uint32(c-'0')
	}
	*u = Uint32(v)
	return nil
}

func (u Uint32) String() string { return strconv.FormatUint(uint64(u), 10) }

// Quoted is a string literal without its quotes.
type Quoted string

func (q *Quoted) Capture(values []string) error {
	*q = Quoted(strings.TrimSuffix(strings.TrimPrefix(values[0], `"`), `"`))
	return nil
}

type Boolean bool

func (b *Boolean) Capture(values []string) error {
	*b = values[0] == "true"
	return nil
}
