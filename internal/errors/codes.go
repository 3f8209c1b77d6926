package errors

// Error codes for the lpp front end.
//
// Error code ranges:
// E0001-E0099: Lexer errors
// E0100-E0199: Parser errors
// E0900-E0999: Tooling errors

const (
	// E0001: String literal without a closing quote
	ErrorUnterminatedString = "E0001"

	// E0100: A block broke after at least one statement
	ErrorExpectedStatement = "E0100"

	// E0101: A rule needed a token past the end of input
	ErrorUnexpectedEOF = "E0101"

	// E0102: A literal token carried a value of the wrong type
	ErrorInvalidLiteral = "E0102"

	// E0103: No statement matched the remaining input
	ErrorUnparsedInput = "E0103"

	// E0104: Any other parser message
	ErrorSyntax = "E0104"

	// E0900: The reference grammar disagrees with the parser
	ErrorGrammarMismatch = "E0900"
)

// errorDescriptions maps codes to one-line summaries.
var errorDescriptions = map[string]string{
	ErrorUnterminatedString: "string literal is missing its closing quote",
	ErrorExpectedStatement:  "a block stopped parsing partway through",
	ErrorUnexpectedEOF:      "input ended where a token was required",
	ErrorInvalidLiteral:     "literal value has the wrong type",
	ErrorUnparsedInput:      "input could not be parsed as a statement",
	ErrorSyntax:             "syntax error",
	ErrorGrammarMismatch:    "reference grammar and parser disagree",
}

// GetErrorDescription returns the summary for code, or "unknown error code".
func GetErrorDescription(code string) string {
	if desc, ok := errorDescriptions[code]; ok {
		return desc
	}
	return "unknown error code"
}
