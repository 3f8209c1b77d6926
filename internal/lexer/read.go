package lexer

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var ErrUnterminatedString = errors.New("unterminated string literal")

const accentedLetters = "áéíóúÁÉÍÓÚñÑ"

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r == '_' ||
		strings.ContainsRune(accentedLetters, r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// ReadIdent returns the byte length of the identifier at the start of text,
// or 0 when text does not start with one.
func ReadIdent(text string) int {
	n := 0
	for i, r := range text {
		if i == 0 && !isLetter(r) {
			return 0
		}
		if !isLetter(r) && !isDigit(r) {
			break
		}
		n += utf8.RuneLen(r)
	}
	return n
}

// ReadUint32 reads the run of ASCII digits at the start of text. Values past
// math.MaxUint32 wrap around.
func ReadUint32(text string) (int, uint32) {
	var value uint32
	n := 0
	for n < len(text) && isDigit(rune(text[n])) {
		value = 10*value + uint32(text[n]-'0')
		n++
	}
	return n, value
}

// ReadString reads a double-quoted string without escape sequences. It
// returns 0 when text does not start with a quote. An unterminated string
// returns the scanned length and ErrUnterminatedString.
func ReadString(text string) (int, string, error) {
	if text == "" || text[0] != '"' {
		return 0, "", nil
	}

	end := strings.IndexByte(text[1:], '"')
	if end < 0 {
		return len(text), "", ErrUnterminatedString
	}
	return end + 2, strings.Clone(text[1 : end+1]), nil
}
