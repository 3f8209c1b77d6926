package parser

import (
	"lpp/internal/ast"
	"lpp/internal/lexer"
	"lpp/internal/source"
	"lpp/token"
)

// Result is everything a host needs after parsing a whole source.
type Result struct {
	Program   *ast.Program
	Errors    []ParseError
	LexStatus lexer.Status
	Cursor    Cursor
	// Consumed is the byte offset just past the last committed token.
	Consumed int

	unparsed    token.Token
	hasUnparsed bool
}

// ParseSource parses src as a program.
func ParseSource(src source.Source) *Result {
	p := New(src)
	program := p.ParseProgram()

	var unparsed token.Token
	hasUnparsed := !p.exhausted(p.cursor.TokenPos)
	if hasUnparsed {
		unparsed = p.tokens[p.cursor.TokenPos]
	}

	res := &Result{
		Program:     program,
		Errors:      p.Errors(),
		LexStatus:   p.LexStatus(),
		Cursor:      p.Cursor(),
		unparsed:    unparsed,
		hasUnparsed: hasUnparsed,
	}
	if pos := p.cursor.TokenPos; pos > 0 {
		res.Consumed = p.tokens[pos-1].End
	}
	return res
}

// UnparsedAt returns the offset of the first token no statement could
// consume.
func (r *Result) UnparsedAt() (int, bool) {
	return r.unparsed.Start, r.hasUnparsed
}

// UnparsedToken returns the first token no statement could consume.
func (r *Result) UnparsedToken() (token.Token, bool) {
	return r.unparsed, r.hasUnparsed
}

// Complete reports whether the whole input parsed without errors.
func (r *Result) Complete() bool {
	_, unparsed := r.UnparsedAt()
	return !unparsed && len(r.Errors) == 0 && r.LexStatus.State != lexer.ErrorAt
}
