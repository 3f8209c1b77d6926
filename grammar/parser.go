package grammar

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
)

var refParser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(LppLexer),
		participle.Elide("Whitespace"),
		participle.Map(promoteKeywords, "Ident"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

func ParseString(filename, source string) (*Program, error) {
	return refParser.ParseString(filename, source)
}

// EBNF returns the grammar in EBNF notation.
func EBNF() string {
	return refParser.String()
}

// ErrorOffset returns the byte offset a participle error points at.
func ErrorOffset(err error) (int, bool) {
	var pe participle.Error
	if !errors.As(err, &pe) {
		return 0, false
	}
	return pe.Position().Offset, true
}
