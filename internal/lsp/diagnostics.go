package lsp

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	lpperrors "lpp/internal/errors"
	"lpp/internal/parser"
	"lpp/internal/source"
)

const diagnosticSource = "lpp"

// convertDiagnostics turns a parse result into LSP diagnostics. Ranges are
// zero-based and counted in UTF-16 code units.
func convertDiagnostics(src source.Source, res *parser.Result) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, err := range lpperrors.Diagnostics(src, res) {
		diagnostics = append(diagnostics, convertDiagnostic(src, err))
	}
	return diagnostics
}

func convertDiagnostic(src source.Source, err lpperrors.CompilerError) protocol.Diagnostic {
	start := err.Position.Offset
	end := start + max(err.Length, 1)

	message := err.Message
	for _, s := range err.Suggestions {
		message += "\nhelp: " + s.Message
	}
	for _, note := range err.Notes {
		message += "\nnote: " + note
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: positionAt(src.Text(), start),
			End:   positionAt(src.Text(), end),
		},
		Severity: ptrSeverity(severity(err.Level)),
		Code:     &protocol.IntegerOrString{Value: err.Code},
		Source:   ptrString(diagnosticSource),
		Message:  message,
	}
}

func severity(level lpperrors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case lpperrors.Warning:
		return protocol.DiagnosticSeverityWarning
	case lpperrors.Note:
		return protocol.DiagnosticSeverityInformation
	case lpperrors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

// positionAt converts a byte offset into an LSP position. Offsets past the
// end of text are clamped.
func positionAt(text string, offset int) protocol.Position {
	offset = min(max(offset, 0), len(text))
	before := text[:offset]

	line := strings.Count(before, "\n")
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(utf16Len(before[lineStart:])),
	}
}

func utf16Len(s string) int {
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
