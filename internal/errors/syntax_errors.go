package errors

import (
	"fmt"

	"lpp/internal/parser"
	"lpp/internal/source"
	"lpp/token"
)

// SyntaxErrorBuilder builds a CompilerError step by step.
type SyntaxErrorBuilder struct {
	err CompilerError
}

func NewSyntaxError(code, message string, pos source.Position) *SyntaxErrorBuilder {
	return &SyntaxErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *SyntaxErrorBuilder) WithLength(length int) *SyntaxErrorBuilder {
	b.err.Length = length
	return b
}

func (b *SyntaxErrorBuilder) WithSuggestion(message string) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *SyntaxErrorBuilder) WithReplacement(message, replacement string) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message, Replacement: replacement})
	return b
}

func (b *SyntaxErrorBuilder) WithNote(note string) *SyntaxErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *SyntaxErrorBuilder) WithHelp(help string) *SyntaxErrorBuilder {
	b.err.HelpText = help
	return b
}

func (b *SyntaxErrorBuilder) Build() CompilerError {
	return b.err
}

// FromParseError converts an error recorded by the parser.
func FromParseError(src source.Source, err parser.ParseError) CompilerError {
	pos := source.PositionOf(src, err.Offset)

	switch {
	case err.Kind == parser.NoMoreTokens:
		return NewSyntaxError(ErrorUnexpectedEOF, parser.MsgNoMoreTokens, pos).
			WithSuggestion("statements end with ';' and blocks with '}'").
			Build()

	case err.Kind == parser.InvalidValueFormat:
		return NewSyntaxError(ErrorInvalidLiteral, err.Message, pos).
			WithLength(err.Length).
			Build()

	case err.Message == parser.MsgUnterminatedString:
		return NewSyntaxError(ErrorUnterminatedString, err.Message, pos).
			WithLength(err.Length).
			WithSuggestion(`add a closing '"'`).
			WithNote("string literals have no escape sequences and cannot contain '\"'").
			Build()

	case err.Message == parser.MsgExpectedStatement:
		return NewSyntaxError(ErrorExpectedStatement, err.Message, pos).
			WithLength(err.Length).
			WithHelp("a block holds let, return, expression statements or nested blocks").
			Build()

	default:
		return NewSyntaxError(ErrorSyntax, err.Message, pos).WithLength(err.Length).Build()
	}
}

// UnparsedInput reports the first token no statement could consume.
func UnparsedInput(src source.Source, tok token.Token) CompilerError {
	literal := tok.Literal(src)
	b := NewSyntaxError(ErrorUnparsedInput,
		fmt.Sprintf("unparseable input at position %d", tok.Start),
		source.PositionOf(src, tok.Start)).
		WithLength(tok.Len())

	switch tok.Kind {
	case token.Illegal:
		b.WithNote(fmt.Sprintf("'%s' is not a valid character", literal))
	case token.Ident, token.Int, token.String, token.True, token.False:
		b.WithSuggestion("expression statements end with ';'")
	}
	return b.Build()
}

// GrammarMismatch reports a disagreement between the reference grammar and
// the parser.
func GrammarMismatch(src source.Source, offset int, detail string) CompilerError {
	return NewSyntaxError(ErrorGrammarMismatch, "reference grammar disagrees: "+detail,
		source.PositionOf(src, offset)).
		Build()
}

// Diagnostics converts everything a parse produced into CompilerErrors, in
// source order of discovery.
func Diagnostics(src source.Source, res *parser.Result) []CompilerError {
	var out []CompilerError
	for _, err := range res.Errors {
		out = append(out, FromParseError(src, err))
	}

	at, unparsed := res.UnparsedAt()
	if !unparsed || coveredBy(res.Errors, at) {
		return out
	}

	tok, _ := res.UnparsedToken()
	return append(out, UnparsedInput(src, tok))
}

// coveredBy reports whether an existing error already explains the
// remainder at offset.
func coveredBy(errs []parser.ParseError, offset int) bool {
	for _, err := range errs {
		if err.Offset >= offset {
			return true
		}
	}
	return false
}
