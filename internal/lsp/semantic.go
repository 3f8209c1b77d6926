package lsp

import (
	"slices"
	"strings"

	"lpp/internal/ast"
	"lpp/internal/lexer"
	"lpp/internal/parser"
	"lpp/internal/source"
	"lpp/token"
)

// SemanticToken is one classified token. Line and StartChar are 0-based,
// StartChar and Length are in UTF-16 code units.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask over SemanticTokenModifiers
}

const declarationModifier = 1 << 0

// collectSemanticTokens classifies the lexer tokens of src. Identifiers
// that res declares through let or fn parameters carry the declaration
// modifier. Tokens spanning lines are skipped.
func collectSemanticTokens(src source.Source, res *parser.Result) []SemanticToken {
	variables, params := declarationSites(res)

	items, _ := lexer.Collect(src)
	text := src.Text()

	var tokens []SemanticToken
	for _, item := range items {
		tok := item.Token
		tokenType, ok := classify(tok.Kind)
		if !ok {
			continue
		}

		modifiers := 0
		switch {
		case params[tok.Start]:
			tokenType, modifiers = "parameter", declarationModifier
		case variables[tok.Start]:
			modifiers = declarationModifier
		}

		literal := text[tok.Start:tok.End]
		if strings.ContainsRune(literal, '\n') {
			continue
		}

		pos := positionAt(text, tok.Start)
		tokens = append(tokens, SemanticToken{
			Line:           pos.Line,
			StartChar:      pos.Character,
			Length:         uint32(utf16Len(literal)),
			TokenType:      slices.Index(SemanticTokenTypes, tokenType),
			TokenModifiers: modifiers,
		})
	}
	return tokens
}

// declarationSites returns the start offsets of let names and of fn
// parameters.
func declarationSites(res *parser.Result) (variables, params map[int]bool) {
	variables = make(map[int]bool)
	params = make(map[int]bool)
	if res == nil || res.Program == nil {
		return variables, params
	}

	for _, ident := range ast.Declarations(res.Program) {
		variables[ident.Pos()] = true
	}
	ast.Inspect(res.Program, func(n ast.Node) bool {
		if fn, ok := n.(*ast.Func); ok {
			for _, p := range fn.Params {
				params[p.Pos()] = true
			}
		}
		return true
	})
	return variables, params
}

func classify(kind token.Kind) (string, bool) {
	switch {
	case kind.IsKeyword():
		return "keyword", true
	case kind.IsOperator():
		return "operator", true
	}

	switch kind {
	case token.Ident:
		return "variable", true
	case token.Int:
		return "number", true
	case token.String:
		return "string", true
	}
	return "", false
}

// encodeSemanticTokens packs tokens into the LSP relative encoding: each
// entry stores its line and start as deltas from the previous token.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		deltaStart := tok.StartChar
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}
	return data
}
