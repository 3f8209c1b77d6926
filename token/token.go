// Package token SPDX-License-Identifier: Apache-2.0
package token

import (
	"fmt"
	"sort"

	"lpp/internal/source"
)

// Kind is the tag of a token.
type Kind int

const (
	Assign Kind = iota
	Comma
	Division
	Else
	EOF
	Eq
	False
	Func
	GT
	Ident
	If
	Illegal
	Int
	LBrace
	Let
	LParen
	LT
	Minus
	Mul // multiplication
	Neg // negation
	NotEq
	Plus
	Return
	RParen
	RBrace
	Semicolon
	String
	True
)

var kindNames = [...]string{
	Assign:    "Assign",
	Comma:     "Comma",
	Division:  "Division",
	Else:      "Else",
	EOF:       "EOF",
	Eq:        "Eq",
	False:     "False",
	Func:      "Func",
	GT:        "GT",
	Ident:     "Ident",
	If:        "If",
	Illegal:   "Illegal",
	Int:       "Int",
	LBrace:    "LBrace",
	Let:       "Let",
	LParen:    "LParen",
	LT:        "LT",
	Minus:     "Minus",
	Mul:       "Mul",
	Neg:       "Neg",
	NotEq:     "NotEq",
	Plus:      "Plus",
	Return:    "Return",
	RParen:    "RParen",
	RBrace:    "RBrace",
	Semicolon: "Semicolon",
	String:    "String",
	True:      "True",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) IsKeyword() bool {
	switch k {
	case Else, False, Func, If, Let, Return, True:
		return true
	}
	return false
}

func (k Kind) IsOperator() bool {
	switch k {
	case Assign, Division, Eq, GT, LT, Minus, Mul, Neg, NotEq, Plus:
		return true
	}
	return false
}

// Token is a span of source text. It does not own the text; use Literal to
// recover it.
type Token struct {
	Kind  Kind
	Start int // inclusive byte offset
	End   int // exclusive byte offset
}

func New(kind Kind, start, end int) Token {
	return Token{Kind: kind, Start: start, End: end}
}

func (t Token) Range() (int, int) { return t.Start, t.End }

func (t Token) Len() int { return t.End - t.Start }

func (t Token) Literal(src source.Source) string {
	return src.Text()[t.Start:t.End]
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%d..%d)", t.Kind, t.Start, t.End)
}

type keyword struct {
	text string
	kind Kind
}

// keywords must stay sorted by text; FromLiteral binary searches it.
var keywords = [...]keyword{
	{"else", Else},
	{"false", False},
	{"fn", Func},
	{"if", If},
	{"let", Let},
	{"return", Return},
	{"true", True},
}

// FromLiteral resolves an identifier-shaped lexeme to its keyword kind, or
// Ident when it is not a keyword.
func FromLiteral(literal string) Kind {
	i := sort.Search(len(keywords), func(i int) bool {
		return keywords[i].text >= literal
	})
	if i < len(keywords) && keywords[i].text == literal {
		return keywords[i].kind
	}
	return Ident
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = kw.text
	}
	return out
}
