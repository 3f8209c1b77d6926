package grammar

import (
	"fmt"

	"lpp/internal/ast"
	"lpp/internal/parser"
	"lpp/internal/source"
)

// Mismatch describes where the reference grammar and the hand-written
// parser disagree.
type Mismatch struct {
	Offset    int
	Reference string
	Parser    string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("at offset %d: reference %q, parser %q", m.Offset, m.Reference, m.Parser)
}

// Compare parses src with the reference grammar and checks it against res,
// the hand-written parser's result for the same source. It returns nil when
// both accept the input with the same rendering or both reject it.
func Compare(src source.Source, res *parser.Result) *Mismatch {
	ref, err := ParseString(source.Name(src), src.Text())

	if !res.Complete() {
		if err != nil {
			return nil
		}
		at, _ := res.UnparsedAt()
		if len(res.Errors) > 0 {
			at = res.Errors[0].Offset
		}
		return &Mismatch{Offset: at, Reference: "accepted", Parser: "rejected"}
	}

	if err != nil {
		offset, _ := ErrorOffset(err)
		return &Mismatch{Offset: offset, Reference: err.Error(), Parser: "accepted"}
	}

	stmts := res.Program.Statements
	for i, refStmt := range ref.Statements {
		want := refStmt.String() + ";"
		if i >= len(stmts) {
			return &Mismatch{Offset: refStmt.Pos.Offset, Reference: want, Parser: ""}
		}
		got := ast.Render(&ast.Program{Statements: stmts[i : i+1]}, src)
		if got != want {
			return &Mismatch{Offset: refStmt.Pos.Offset, Reference: want, Parser: got}
		}
	}
	if len(stmts) > len(ref.Statements) {
		extra := stmts[len(ref.Statements)]
		return &Mismatch{
			Offset:    extra.Pos(),
			Reference: "",
			Parser:    ast.Render(&ast.Program{Statements: stmts[len(ref.Statements):]}, src),
		}
	}
	return nil
}
