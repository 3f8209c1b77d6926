package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	PROGRAM

	// Statements
	LET_STMT
	RETURN_STMT
	EXPR_STMT
	BLOCK

	// Expressions
	IDENT
	INT_LITERAL
	BOOL_LITERAL
	STRING_LITERAL
	PREFIX_EXPR
	INFIX_EXPR
	IF_EXPR
	FUNC_LITERAL
	CALL_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:        "ILLEGAL",
	PROGRAM:        "PROGRAM",
	LET_STMT:       "LET_STMT",
	RETURN_STMT:    "RETURN_STMT",
	EXPR_STMT:      "EXPR_STMT",
	BLOCK:          "BLOCK",
	IDENT:          "IDENT",
	INT_LITERAL:    "INT_LITERAL",
	BOOL_LITERAL:   "BOOL_LITERAL",
	STRING_LITERAL: "STRING_LITERAL",
	PREFIX_EXPR:    "PREFIX_EXPR",
	INFIX_EXPR:     "INFIX_EXPR",
	IF_EXPR:        "IF_EXPR",
	FUNC_LITERAL:   "FUNC_LITERAL",
	CALL_EXPR:      "CALL_EXPR",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "NodeType(?)"
}
