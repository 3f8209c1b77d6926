package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lpp/internal/parser"
	"lpp/internal/source"
)

func init() {
	color.NoColor = true
}

func TestErrorReporter(t *testing.T) {
	text := "let a = 1;\n{ let b = 2; @ }\nreturn a;"
	src := source.String(text)
	res := parser.ParseSource(src)

	diags := Diagnostics(src, res)
	require.Len(t, diags, 1)
	assert.Equal(t, ErrorExpectedStatement, diags[0].Code)
	assert.Equal(t, source.Position{Line: 2, Column: 14, Offset: 24}, diags[0].Position)

	formatted := NewErrorReporter("test.lpp", text).FormatError(diags[0])
	assert.Contains(t, formatted, "error["+ErrorExpectedStatement+"]: expected a statement")
	assert.Contains(t, formatted, "test.lpp:2:14")
	assert.Contains(t, formatted, "  1 │ let a = 1;\n")
	assert.Contains(t, formatted, "  2 │ { let b = 2; @ }\n")
	assert.Contains(t, formatted, "    │ "+strings.Repeat(" ", 13)+"^\n")
	assert.Contains(t, formatted, "help:")
}

func TestMarkerUsesDisplayWidth(t *testing.T) {
	text := `let ñandú = "sin cerrar`
	src := source.String(text)
	res := parser.ParseSource(src)

	diags := Diagnostics(src, res)
	require.Len(t, diags, 1)
	assert.Equal(t, ErrorUnterminatedString, diags[0].Code)
	assert.Equal(t, 13, diags[0].Position.Column)

	formatted := NewErrorReporter("wide.lpp", text).FormatError(diags[0])
	marker := strings.Repeat(" ", 12) + strings.Repeat("^", 11)
	assert.Contains(t, formatted, "    │ "+marker+"\n")
}

func TestUnexpectedEOF(t *testing.T) {
	src := source.String("let x")
	diags := Diagnostics(src, parser.ParseSource(src))

	require.Len(t, diags, 1)
	assert.Equal(t, ErrorUnexpectedEOF, diags[0].Code)
	assert.Equal(t, 6, diags[0].Position.Column)
	assert.NotEmpty(t, diags[0].Suggestions)
}

func TestUnparsedInput(t *testing.T) {
	src := source.String("a; @")
	diags := Diagnostics(src, parser.ParseSource(src))

	require.Len(t, diags, 1)
	assert.Equal(t, ErrorUnparsedInput, diags[0].Code)
	assert.Equal(t, "unparseable input at position 3", diags[0].Message)
	assert.Equal(t, []string{"'@' is not a valid character"}, diags[0].Notes)
}

func TestMissingSemicolonSuggestion(t *testing.T) {
	src := source.String("a b;")
	diags := Diagnostics(src, parser.ParseSource(src))

	require.Len(t, diags, 1)
	assert.Equal(t, ErrorUnparsedInput, diags[0].Code)
	require.Len(t, diags[0].Suggestions, 1)
	assert.Equal(t, "expression statements end with ';'", diags[0].Suggestions[0].Message)
}

func TestCleanSourceHasNoDiagnostics(t *testing.T) {
	src := source.String("let a = fn(x) { return !x; };")
	assert.Empty(t, Diagnostics(src, parser.ParseSource(src)))
}

func TestFromParseErrorFallback(t *testing.T) {
	src := source.String("abc")
	err := FromParseError(src, parser.ParseError{Kind: parser.Msg, Message: "boom", Offset: 1, Length: 2})
	assert.Equal(t, ErrorSyntax, err.Code)
	assert.Equal(t, 2, err.Position.Column)
	assert.Equal(t, 2, err.Length)
	assert.Equal(t, "1:2: error[E0104]: boom", err.Error())
}

func TestSyntaxErrorBuilder(t *testing.T) {
	err := NewSyntaxError(ErrorSyntax, "oops", source.Position{Line: 1, Column: 1}).
		WithLength(3).
		WithSuggestion("first").
		WithReplacement("second", "let x = 1;").
		WithNote("a note").
		WithHelp("some help").
		Build()

	formatted := NewErrorReporter("b.lpp", "abc").FormatError(err)
	assert.Contains(t, formatted, "help try: first")
	assert.Contains(t, formatted, "second")
	assert.Contains(t, formatted, "let x = 1;")
	assert.Contains(t, formatted, "note: a note")
	assert.Contains(t, formatted, "help: some help")
	assert.Contains(t, formatted, "    │ ^^^\n")
}

func TestGetErrorDescription(t *testing.T) {
	assert.Equal(t, "syntax error", GetErrorDescription(ErrorSyntax))
	assert.Equal(t, "unknown error code", GetErrorDescription("E9999"))
}

func TestFromParseErrorCodesFollowParserMessages(t *testing.T) {
	src := source.String(`{ a; "x`)

	tests := []struct {
		err  parser.ParseError
		code string
	}{
		{parser.ParseError{Kind: parser.Msg, Message: parser.MsgUnterminatedString, Offset: 5, Length: 2}, ErrorUnterminatedString},
		{parser.ParseError{Kind: parser.Msg, Message: parser.MsgExpectedStatement, Offset: 5, Length: 1}, ErrorExpectedStatement},
		{parser.ParseError{Kind: parser.NoMoreTokens, Message: parser.MsgNoMoreTokens, Offset: 7}, ErrorUnexpectedEOF},
		{parser.ParseError{Kind: parser.Msg, Message: "something else", Offset: 0}, ErrorSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.err.Message, func(t *testing.T) {
			got := FromParseError(src, tt.err)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.err.Message, got.Message)
		})
	}
}

func TestExcerptDropsCarriageReturns(t *testing.T) {
	text := "let a = 1;\r\n{ let b = 2; @ }\r\n"
	src := source.String(text)

	diags := Diagnostics(src, parser.ParseSource(src))
	require.Len(t, diags, 1)

	formatted := NewErrorReporter("crlf.lpp", text).FormatError(diags[0])
	assert.Contains(t, formatted, "  1 │ let a = 1;\n")
	assert.Contains(t, formatted, "  2 │ { let b = 2; @ }\n")
	assert.NotContains(t, formatted, "\r")
}
