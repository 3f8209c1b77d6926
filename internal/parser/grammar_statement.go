package parser

import (
	"lpp/internal/ast"
	"lpp/internal/branch"
	"lpp/token"
)

func (p *Parser) program(b *branch.Branch[Cursor]) *ast.Program {
	program := &ast.Program{}
	for !p.exhausted(b.Data().TokenPos) {
		stmt, ok := branch.Inspect(b, p.statement)
		if !ok {
			break
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program
}

// statement tries each kind of statement in order. Running out of input is
// recorded once here rather than by every alternative.
func (p *Parser) statement(b *branch.Branch[Cursor]) (ast.Statement, bool) {
	if _, ok := p.tokenAt(b.Data().TokenPos); !ok {
		return nil, false
	}
	return branch.First[Cursor, ast.Statement](b,
		p.letStatement,
		p.returnStatement,
		p.expressionStatement,
		p.blockStatement,
	)
}

func (p *Parser) letStatement(b *branch.Branch[Cursor]) (ast.Statement, bool) {
	tok, ok := p.takeTokenKind(b, token.Let)
	if !ok {
		return nil, false
	}
	name, ok := branch.Inspect(b, p.ident)
	if !ok {
		return nil, false
	}
	if _, ok := p.takeTokenKind(b, token.Assign); !ok {
		return nil, false
	}
	value, ok := branch.Inspect(b, p.expression)
	if !ok {
		return nil, false
	}
	if _, ok := p.takeTokenKind(b, token.Semicolon); !ok {
		return nil, false
	}
	return &ast.LetStatement{Token: tok, Name: name, Value: value}, true
}

func (p *Parser) returnStatement(b *branch.Branch[Cursor]) (ast.Statement, bool) {
	tok, ok := p.takeTokenKind(b, token.Return)
	if !ok {
		return nil, false
	}
	value, ok := branch.Inspect(b, p.expression)
	if !ok {
		return nil, false
	}
	if _, ok := p.takeTokenKind(b, token.Semicolon); !ok {
		return nil, false
	}
	return &ast.ReturnStatement{Token: tok, Value: value}, true
}

func (p *Parser) expressionStatement(b *branch.Branch[Cursor]) (ast.Statement, bool) {
	start, ok := p.tokenAt(b.Data().TokenPos)
	if !ok {
		return nil, false
	}
	expr, ok := branch.Inspect(b, p.expression)
	if !ok {
		return nil, false
	}
	if _, ok := p.takeTokenKind(b, token.Semicolon); !ok {
		return nil, false
	}
	return &ast.ExpressionStatement{Token: start, Expression: expr}, true
}

func (p *Parser) blockStatement(b *branch.Branch[Cursor]) (ast.Statement, bool) {
	blk, ok := p.block(b)
	if !ok {
		return nil, false
	}
	return blk, true
}

// block parses "{" Statement* "}". A block that breaks after at least one
// statement records "expected a statement" before failing.
func (p *Parser) block(b *branch.Branch[Cursor]) (*ast.Block, bool) {
	open, ok := p.takeTokenKind(b, token.LBrace)
	if !ok {
		return nil, false
	}

	blk := &ast.Block{Token: open}
	for {
		kind, ok := p.peekKind(b)
		if !ok {
			// records NoMoreTokens
			p.takeTokenKind(b, token.RBrace)
			return nil, false
		}
		if kind == token.RBrace {
			p.takeNextToken(b)
			return blk, true
		}

		stmt, ok := branch.Inspect(b, p.statement)
		if !ok {
			if len(blk.Statements) > 0 {
				at := b.Data().TokenPos
				p.AddError(ParseError{
					Kind:    Msg,
					Message: MsgExpectedStatement,
					Offset:  p.offsetAt(at),
					Length:  p.tokens[at].Len(),
				})
			}
			return nil, false
		}
		blk.Statements = append(blk.Statements, stmt)
	}
}
