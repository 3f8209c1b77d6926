package parser

import "fmt"

type ErrorKind int

const (
	// Msg is a free-text diagnostic.
	Msg ErrorKind = iota
	// InvalidValueFormat means a literal token carried a value of the wrong
	// type.
	InvalidValueFormat
	// NoMoreTokens means a rule required a token past the end of input.
	NoMoreTokens
)

func (k ErrorKind) String() string {
	switch k {
	case Msg:
		return "Msg"
	case InvalidValueFormat:
		return "InvalidValueFormat"
	case NoMoreTokens:
		return "NoMoreTokens"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is a diagnostic recorded while parsing. Offset and Length are
// byte positions in the source.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Offset  int
	Length  int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Message, e.Offset)
}

// Messages of the errors the parser records itself.
const (
	MsgUnterminatedString = "unterminated string literal"
	MsgExpectedStatement  = "expected a statement"
	MsgNoMoreTokens       = "unexpected end of input"
)
