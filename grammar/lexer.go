package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

const letters = `a-zA-Z_áéíóúÁÉÍÓÚñÑ`

var LppLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Ident", `[` + letters + `][` + letters + `0-9]*`, nil},

		// Never matched directly; identifiers are promoted by promoteKeywords.
		{"Keyword", `let|return|if|else|fn|true|false`, nil},

		{"Int", `[0-9]+`, nil},

		// No escape sequences
		{"String", `"[^"]*"`, nil},

		// Two-character operators first
		{"Operator", `==|!=|[-+*/<>=!]`, nil},

		{"Punctuation", `[(){},;]`, nil},

		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})

var keywords = map[string]bool{
	"let": true, "return": true, "if": true, "else": true,
	"fn": true, "true": true, "false": true,
}

var keywordType = LppLexer.Symbols()["Keyword"]

// promoteKeywords retypes reserved identifiers so that @Ident never
// captures them.
func promoteKeywords(tok lexer.Token) (lexer.Token, error) {
	if keywords[tok.Value] {
		tok.Type = keywordType
	}
	return tok, nil
}
