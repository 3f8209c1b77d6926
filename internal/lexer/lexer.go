package lexer

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"lpp/internal/source"
	"lpp/token"
)

// State is the externally observable state of a Lexer.
type State int

const (
	Open State = iota
	Ended
	ErrorAt
)

// Status reports where a lexer stopped. Offset is only meaningful for
// Ended and ErrorAt.
type Status struct {
	State  State
	Offset int
}

func (s Status) String() string {
	switch s.State {
	case Open:
		return "Open"
	case Ended:
		return "Ended"
	case ErrorAt:
		return fmt.Sprintf("ErrorAt(%d)", s.Offset)
	default:
		return fmt.Sprintf("State(%d)", int(s.State))
	}
}

// Lexer turns a Source into tokens, one per call to Next. It never un-reads
// text it has already turned into a token.
type Lexer struct {
	src    source.Source
	pos    int
	status Status
}

func New(src source.Source) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) Status() Status { return l.status }

// Pos is the byte offset of the next unread character. After an ErrorAt
// stop it points at the start of the lexeme that blocked the lexer.
func (l *Lexer) Pos() int { return l.pos }

func (l *Lexer) Source() source.Source { return l.src }

// Next scans one token. It returns false once the input is exhausted or the
// lexer is blocked; both states are terminal.
func (l *Lexer) Next() (token.Token, token.Value, bool) {
	if l.status.State != Open {
		return token.Token{}, nil, false
	}

	l.skipWhitespace()
	rest := l.src.After(l.pos)
	if rest == "" {
		l.status = Status{State: Ended, Offset: l.pos}
		return token.Token{}, nil, false
	}

	if kind, n, ok := readOperator(rest); ok {
		return l.emit(kind, n), nil, true
	}

	if n := ReadIdent(rest); n > 0 {
		return l.emit(token.FromLiteral(rest[:n]), n), nil, true
	}

	if n, v := ReadUint32(rest); n > 0 {
		return l.emit(token.Int, n), token.IntValue(v), true
	}

	if n, v, err := ReadString(rest); n > 0 {
		if err != nil {
			l.status = Status{State: ErrorAt, Offset: l.pos + n}
			return token.Token{}, nil, false
		}
		return l.emit(token.String, n), token.StringValue(v), true
	}

	_, n := utf8.DecodeRuneInString(rest)
	return l.emit(token.Illegal, n), nil, true
}

// All yields the remaining tokens with their values.
func (l *Lexer) All() iter.Seq2[token.Token, token.Value] {
	return func(yield func(token.Token, token.Value) bool) {
		for {
			tok, val, ok := l.Next()
			if !ok || !yield(tok, val) {
				return
			}
		}
	}
}

// Item is a token paired with its value, if any.
type Item struct {
	Token token.Token
	Value token.Value
}

// Collect lexes src to the end and returns every token plus the final
// status.
func Collect(src source.Source) ([]Item, Status) {
	l := New(src)
	var items []Item
	for tok, val := range l.All() {
		items = append(items, Item{Token: tok, Value: val})
	}
	return items, l.Status()
}

func (l *Lexer) emit(kind token.Kind, n int) token.Token {
	start := l.pos
	l.pos += n
	return token.New(kind, start, l.pos)
}

func (l *Lexer) skipWhitespace() {
	rest := l.src.After(l.pos)
	n := 0
	for n < len(rest) && isWhitespace(rest[n]) {
		n++
	}
	l.pos += n
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// readOperator matches punctuation and operators. Two-character operators
// are tried before their one-character prefixes.
func readOperator(text string) (token.Kind, int, bool) {
	next := func(c byte) bool { return len(text) > 1 && text[1] == c }

	switch text[0] {
	case '=':
		if next('=') {
			return token.Eq, 2, true
		}
		return token.Assign, 1, true
	case '!':
		if next('=') {
			return token.NotEq, 2, true
		}
		return token.Neg, 1, true
	case '+':
		return token.Plus, 1, true
	case 0:
		return token.EOF, 1, true
	case '(':
		return token.LParen, 1, true
	case ')':
		return token.RParen, 1, true
	case '{':
		return token.LBrace, 1, true
	case '}':
		return token.RBrace, 1, true
	case ',':
		return token.Comma, 1, true
	case ';':
		return token.Semicolon, 1, true
	case '-':
		return token.Minus, 1, true
	case '/':
		return token.Division, 1, true
	case '*':
		return token.Mul, 1, true
	case '<':
		return token.LT, 1, true
	case '>':
		return token.GT, 1, true
	}
	return 0, 0, false
}
