package parser

import (
	"lpp/internal/ast"
	"lpp/internal/branch"
	"lpp/token"
)

func (p *Parser) expression(b *branch.Branch[Cursor]) (ast.Expression, bool) {
	if _, ok := p.tokenAt(b.Data().TokenPos); !ok {
		return nil, false
	}
	return branch.First[Cursor, ast.Expression](b,
		p.identExpression,
		p.intLiteral,
		p.boolLiteral,
		p.stringLiteral,
		p.ifExpression,
		p.prefixExpression,
		p.funcLiteral,
	)
}

func (p *Parser) ident(b *branch.Branch[Cursor]) (*ast.Ident, bool) {
	tok, ok := p.takeTokenKind(b, token.Ident)
	if !ok {
		return nil, false
	}
	return &ast.Ident{Token: tok}, true
}

func (p *Parser) identExpression(b *branch.Branch[Cursor]) (ast.Expression, bool) {
	id, ok := p.ident(b)
	if !ok {
		return nil, false
	}
	return id, true
}

func (p *Parser) intLiteral(b *branch.Branch[Cursor]) (ast.Expression, bool) {
	tok, ok := p.takeTokenKind(b, token.Int)
	if !ok {
		return nil, false
	}
	v, _ := p.takeNextValue(b)
	n, ok := v.(token.IntValue)
	if !ok {
		p.invalidValue(tok, "integer")
		return nil, false
	}
	return &ast.Int{Token: tok, Value: uint32(n)}, true
}

func (p *Parser) boolLiteral(b *branch.Branch[Cursor]) (ast.Expression, bool) {
	tok, ok := p.takeNextToken(b)
	if !ok {
		return nil, false
	}
	switch tok.Kind {
	case token.True:
		return &ast.Bool{Token: tok, Value: true}, true
	case token.False:
		return &ast.Bool{Token: tok, Value: false}, true
	}
	return nil, false
}

func (p *Parser) stringLiteral(b *branch.Branch[Cursor]) (ast.Expression, bool) {
	tok, ok := p.takeTokenKind(b, token.String)
	if !ok {
		return nil, false
	}
	v, _ := p.takeNextValue(b)
	s, ok := v.(token.StringValue)
	if !ok {
		p.invalidValue(tok, "string")
		return nil, false
	}
	return &ast.StringLiteral{Token: tok, Value: string(s)}, true
}

func (p *Parser) invalidValue(tok token.Token, want string) {
	p.AddError(ParseError{
		Kind:    InvalidValueFormat,
		Message: "invalid " + want + " literal",
		Offset:  tok.Start,
		Length:  tok.Len(),
	})
}

func (p *Parser) ifExpression(b *branch.Branch[Cursor]) (ast.Expression, bool) {
	tok, ok := p.takeTokenKind(b, token.If)
	if !ok {
		return nil, false
	}
	if _, ok := p.takeTokenKind(b, token.LParen); !ok {
		return nil, false
	}
	cond, ok := branch.Inspect(b, p.expression)
	if !ok {
		return nil, false
	}
	if _, ok := p.takeTokenKind(b, token.RParen); !ok {
		return nil, false
	}
	consequence, ok := branch.Inspect(b, p.block)
	if !ok {
		return nil, false
	}

	expr := &ast.If{Token: tok, Condition: cond, Consequence: consequence}
	if kind, ok := p.peekKind(b); !ok || kind != token.Else {
		return expr, true
	}
	p.takeNextToken(b)
	alternative, ok := branch.Inspect(b, p.block)
	if !ok {
		return nil, false
	}
	expr.Alternative = alternative
	return expr, true
}

func (p *Parser) prefixExpression(b *branch.Branch[Cursor]) (ast.Expression, bool) {
	tok, ok := p.takeNextToken(b)
	if !ok || (tok.Kind != token.Neg && tok.Kind != token.Minus) {
		return nil, false
	}
	operand, ok := branch.Inspect(b, p.expression)
	if !ok {
		return nil, false
	}
	return &ast.Prefix{Token: tok, Operand: operand}, true
}

func (p *Parser) funcLiteral(b *branch.Branch[Cursor]) (ast.Expression, bool) {
	tok, ok := p.takeTokenKind(b, token.Func)
	if !ok {
		return nil, false
	}
	if _, ok := p.takeTokenKind(b, token.LParen); !ok {
		return nil, false
	}

	var params []*ast.Ident
	if kind, ok := p.peekKind(b); ok && kind == token.Ident {
		for {
			param, ok := branch.Inspect(b, p.ident)
			if !ok {
				return nil, false
			}
			params = append(params, param)
			if kind, ok := p.peekKind(b); !ok || kind != token.Comma {
				break
			}
			p.takeNextToken(b)
		}
	}

	if _, ok := p.takeTokenKind(b, token.RParen); !ok {
		return nil, false
	}
	body, ok := branch.Inspect(b, p.block)
	if !ok {
		return nil, false
	}
	return &ast.Func{Token: tok, Params: params, Body: body}, true
}
