package token

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"lpp/internal/source"
)

func TestKeywordTableSorted(t *testing.T) {
	assert.True(t, sort.SliceIsSorted(keywords[:], func(i, j int) bool {
		return keywords[i].text < keywords[j].text
	}), "keyword table must stay sorted for binary search")
}

func TestFromLiteral(t *testing.T) {
	tests := []struct {
		literal string
		want    Kind
	}{
		{"let", Let},
		{"fn", Func},
		{"if", If},
		{"else", Else},
		{"return", Return},
		{"true", True},
		{"false", False},
		{"letter", Ident},
		{"l", Ident},
		{"zzz", Ident},
		{"aaa", Ident},
		{"True", Ident},
		{"ñandú", Ident},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			assert.Equal(t, tt.want, FromLiteral(tt.literal))
		})
	}
}

func TestTokenSpan(t *testing.T) {
	src := source.String("let answer = 42;")
	tok := New(Ident, 4, 10)

	start, end := tok.Range()
	assert.Equal(t, 4, start)
	assert.Equal(t, 10, end)
	assert.Equal(t, 6, tok.Len())
	assert.Equal(t, "answer", tok.Literal(src))
	assert.Equal(t, "Ident(4..10)", tok.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "NotEq", NotEq.String())
	assert.Equal(t, "True", True.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestKindClasses(t *testing.T) {
	assert.True(t, Let.IsKeyword())
	assert.False(t, Ident.IsKeyword())
	assert.True(t, NotEq.IsOperator())
	assert.False(t, Semicolon.IsOperator())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "1234", IntValue(1234).String())
	assert.Equal(t, `"hi"`, StringValue("hi").String())
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"else", "false", "fn", "if", "let", "return", "true"}, Keywords())
}
