package parser

import (
	"github.com/tliron/commonlog"

	"lpp/internal/ast"
	"lpp/internal/branch"
	"lpp/internal/lexer"
	"lpp/internal/source"
	"lpp/token"
)

var log = commonlog.GetLogger("lpp.parser")

// Cursor is how far a branch has read into the parser's token and value
// caches.
type Cursor struct {
	TokenPos int
	ValueIdx int
}

// Parser is a backtracking recursive-descent parser. Tokens are pulled from
// the lexer on first use and cached, so backtracking never re-lexes. A Parser
// is not safe for concurrent use.
type Parser struct {
	src    source.Source
	lexer  *lexer.Lexer
	tokens []token.Token
	values []token.Value
	errors []ParseError
	cursor Cursor

	lexErrorReported bool
}

func New(src source.Source) *Parser {
	return NewWithLexer(src, lexer.New(src))
}

// NewWithLexer builds a parser over an existing lexer. The lexer must read
// from src.
func NewWithLexer(src source.Source, lx *lexer.Lexer) *Parser {
	return &Parser{src: src, lexer: lx}
}

func (p *Parser) Source() source.Source { return p.src }

// Cursor is the committed position of the parser.
func (p *Parser) Cursor() Cursor { return p.cursor }

// Errors returns every error recorded so far, in order.
func (p *Parser) Errors() []ParseError { return p.errors }

func (p *Parser) LexStatus() lexer.Status { return p.lexer.Status() }

// Tokens returns the tokens cached so far.
func (p *Parser) Tokens() []token.Token { return p.tokens }

// AddError records err. Recorded errors survive backtracking.
func (p *Parser) AddError(err ParseError) {
	p.errors = append(p.errors, err)
}

func (p *Parser) BranchData() Cursor { return p.cursor }

func (p *Parser) CommitBranch(c Cursor) error {
	p.cursor = c
	return nil
}

func (p *Parser) ReportError(err error) {
	p.AddError(ParseError{Kind: Msg, Message: err.Error(), Offset: p.offsetAt(p.cursor.TokenPos)})
}

// ParseProgram parses statements until the input ends or no statement
// matches. Use Cursor or ParseSource to find an unparsed remainder.
func (p *Parser) ParseProgram() *ast.Program {
	b := branch.Open[Cursor](p)
	program := p.program(b)
	p.commit(b)
	p.logSummary("program")
	return program
}

func (p *Parser) ParseStatement() (ast.Statement, bool) {
	b := branch.Open[Cursor](p)
	stmt, ok := p.statement(b)
	if ok {
		p.commit(b)
	}
	p.logSummary("statement")
	return stmt, ok
}

func (p *Parser) ParseExpression() (ast.Expression, bool) {
	b := branch.Open[Cursor](p)
	expr, ok := p.expression(b)
	if ok {
		p.commit(b)
	}
	p.logSummary("expression")
	return expr, ok
}

func (p *Parser) commit(b *branch.Branch[Cursor]) {
	if err := b.Commit(); err != nil {
		p.ReportError(err)
	}
}

func (p *Parser) logSummary(entry string) {
	log.Debugf("parsed %s: %d tokens cached, %d consumed, %d errors, lexer %s",
		entry, len(p.tokens), p.cursor.TokenPos, len(p.errors), p.lexer.Status())
}
