package parser

import (
	"lpp/internal/branch"
	"lpp/internal/lexer"
	"lpp/token"
)

// fill pulls tokens from the lexer until n are cached. It returns false when
// the lexer stops first.
func (p *Parser) fill(n int) bool {
	for len(p.tokens) < n {
		tok, val, ok := p.lexer.Next()
		if !ok {
			p.noteLexerStop()
			return false
		}
		p.tokens = append(p.tokens, tok)
		if val != nil {
			p.values = append(p.values, val)
		}
	}
	return true
}

func (p *Parser) noteLexerStop() {
	status := p.lexer.Status()
	if status.State != lexer.ErrorAt || p.lexErrorReported {
		return
	}
	p.lexErrorReported = true
	start := p.lexer.Pos()
	p.AddError(ParseError{
		Kind:    Msg,
		Message: MsgUnterminatedString,
		Offset:  start,
		Length:  status.Offset - start,
	})
}

// tokenAt returns the token at index i, lexing up to it if needed. Reading
// past the end records NoMoreTokens, unless the lexer stopped on a malformed
// lexeme, which is reported once on its own.
func (p *Parser) tokenAt(i int) (token.Token, bool) {
	if !p.fill(i + 1) {
		if p.lexErrorReported {
			return token.Token{}, false
		}
		p.AddError(ParseError{Kind: NoMoreTokens, Message: MsgNoMoreTokens, Offset: p.offsetAt(i)})
		return token.Token{}, false
	}
	return p.tokens[i], true
}

// exhausted reports whether there is no token at index i, without recording
// an error.
func (p *Parser) exhausted(i int) bool {
	return !p.fill(i + 1)
}

func (p *Parser) valueAt(i int) (token.Value, bool) {
	if i < 0 || i >= len(p.values) {
		return nil, false
	}
	return p.values[i], true
}

// offsetAt is the start of token i, or the end of the scanned input when
// token i does not exist.
func (p *Parser) offsetAt(i int) int {
	if i < len(p.tokens) {
		return p.tokens[i].Start
	}
	if status := p.lexer.Status(); status.State != lexer.Open {
		return status.Offset
	}
	if len(p.tokens) > 0 {
		return p.tokens[len(p.tokens)-1].End
	}
	return 0
}

func (p *Parser) takeNextToken(b *branch.Branch[Cursor]) (token.Token, bool) {
	c := b.Data()
	tok, ok := p.tokenAt(c.TokenPos)
	if !ok {
		return token.Token{}, false
	}
	c.TokenPos++
	return tok, true
}

// takeTokenKind consumes the next token only when it has the given kind.
func (p *Parser) takeTokenKind(b *branch.Branch[Cursor], kind token.Kind) (token.Token, bool) {
	c := b.Data()
	tok, ok := p.tokenAt(c.TokenPos)
	if !ok || tok.Kind != kind {
		return token.Token{}, false
	}
	c.TokenPos++
	return tok, true
}

// peekKind returns the kind of the next token without consuming it. At the
// end of input it returns false and records nothing.
func (p *Parser) peekKind(b *branch.Branch[Cursor]) (token.Kind, bool) {
	i := b.Data().TokenPos
	if p.exhausted(i) {
		return 0, false
	}
	return p.tokens[i].Kind, true
}

// takeNextValue consumes the value of the most recently taken Int or String
// token.
func (p *Parser) takeNextValue(b *branch.Branch[Cursor]) (token.Value, bool) {
	c := b.Data()
	v, ok := p.valueAt(c.ValueIdx)
	if !ok {
		return nil, false
	}
	c.ValueIdx++
	return v, true
}
