package ast

// Inspect walks the tree rooted at node depth-first in source order, calling
// f for each node. When f returns false the node's children are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Statements {
			Inspect(stmt, f)
		}
	case *Block:
		for _, stmt := range n.Statements {
			Inspect(stmt, f)
		}
	case *LetStatement:
		Inspect(n.Name, f)
		Inspect(n.Value, f)
	case *ReturnStatement:
		Inspect(n.Value, f)
	case *ExpressionStatement:
		Inspect(n.Expression, f)
	case *Prefix:
		Inspect(n.Operand, f)
	case *Infix:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *If:
		Inspect(n.Condition, f)
		Inspect(n.Consequence, f)
		if n.Alternative != nil {
			Inspect(n.Alternative, f)
		}
	case *Func:
		for _, param := range n.Params {
			Inspect(param, f)
		}
		Inspect(n.Body, f)
	case *Call:
		Inspect(n.Function, f)
		for _, arg := range n.Args {
			Inspect(arg, f)
		}
	}
}

// Declarations returns the identifiers introduced by let statements and
// function parameters under node.
func Declarations(node Node) []*Ident {
	var out []*Ident
	Inspect(node, func(n Node) bool {
		switch n := n.(type) {
		case *LetStatement:
			out = append(out, n.Name)
		case *Func:
			out = append(out, n.Params...)
		}
		return true
	})
	return out
}
