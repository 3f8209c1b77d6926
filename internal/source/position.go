package source

import (
	"strings"

	"github.com/rivo/uniseg"
)

type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in grapheme clusters
	Offset int // 0-based byte offset
}

// PositionOf converts a byte offset into a line/column pair. Offsets past
// the end of the text are clamped.
func PositionOf(src Source, offset int) Position {
	text := src.Text()
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1

	return Position{
		Line:   line,
		Column: uniseg.GraphemeClusterCount(before[lineStart:]) + 1,
		Offset: offset,
	}
}

// Line returns the text of the 1-based line n without its newline, or ""
// when n is out of range.
func Line(src Source, n int) string {
	lines := strings.Split(src.Text(), "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[n-1], "\r")
}
