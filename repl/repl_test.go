package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestStart(t *testing.T) {
	color.NoColor = true

	in := strings.NewReader("let a = 5;\n\nif (a) { -a; };\n{ b; @ }\n")
	var out bytes.Buffer
	Start(in, &out)

	text := out.String()
	assert.Contains(t, text, ">> let a = 5;\n")
	assert.Contains(t, text, ">> if(a) {-a};\n")
	assert.Contains(t, text, "error[E0100]: expected a statement")
	assert.Contains(t, text, "<input>:1:6")
	assert.True(t, strings.HasSuffix(text, ">> \n"))
}

func TestEvalUnparsedInput(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	Eval(&out, "a; @")
	assert.Contains(t, out.String(), "error[E0103]: unparseable input at position 3")
}
