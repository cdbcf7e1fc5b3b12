package ast

// Inspect traverses the tree rooted at node in depth-first pre-order. It calls
// f(n) for each node; if f returns false the children of n are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	switch n := node.(type) {
	case *SourceFile:
		inspectStatements(n.Statements, f)
	case *BlockStatement:
		inspectStatements(n.Statements, f)
	case *ExpressionStatement:
		Inspect(n.Expression, f)
	case *ReturnStatement:
		inspectExpr(n.Value, f)
	case *ThrowStatement:
		inspectExpr(n.Value, f)
	case *IfStatement:
		inspectExpr(n.Condition, f)
		Inspect(n.Consequence, f)
		if n.Alternative != nil {
			Inspect(n.Alternative, f)
		}
	case *VariableStatement:
		for _, d := range n.Declarations {
			Inspect(d, f)
		}
	case *VariableDeclaration:
		inspectIdent(n.Name, f)
		inspectExpr(n.Initializer, f)
	case *FunctionDeclaration:
		inspectIdent(n.Name, f)
		inspectParams(n.Parameters, f)
		inspectBlock(n.Body, f)
	case *ClassDeclaration:
		inspectIdent(n.Name, f)
		inspectExpr(n.Extends, f)
		for _, m := range n.Members {
			Inspect(m, f)
		}
	case *ConstructorDeclaration:
		inspectParams(n.Parameters, f)
		inspectBlock(n.Body, f)
	case *MethodDeclaration:
		inspectIdent(n.Name, f)
		inspectParams(n.Parameters, f)
		inspectBlock(n.Body, f)
	case *PropertyDeclaration:
		inspectIdent(n.Name, f)
		inspectExpr(n.Initializer, f)
	case *ImportDeclaration:
		inspectIdent(n.Namespace, f)
		inspectIdent(n.Default, f)
		for _, s := range n.Named {
			inspectIdent(s.Name, f)
			inspectIdent(s.Alias, f)
		}
	case *ExportDeclaration:
		for _, s := range n.Named {
			inspectIdent(s.Name, f)
			inspectIdent(s.Alias, f)
		}
	case *PropertyAccessExpression:
		Inspect(n.Expression, f)
		inspectIdent(n.Name, f)
	case *ElementAccessExpression:
		Inspect(n.Expression, f)
		Inspect(n.Argument, f)
	case *CallExpression:
		Inspect(n.Callee, f)
		inspectExprs(n.Arguments, f)
	case *NewExpression:
		Inspect(n.Callee, f)
		inspectExprs(n.Arguments, f)
	case *BinaryExpression:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *PrefixUnaryExpression:
		Inspect(n.Operand, f)
	case *ConditionalExpression:
		Inspect(n.Condition, f)
		Inspect(n.WhenTrue, f)
		Inspect(n.WhenFalse, f)
	case *ParenthesizedExpression:
		Inspect(n.Expression, f)
	case *VoidExpression:
		Inspect(n.Expression, f)
	case *SpreadElement:
		Inspect(n.Expression, f)
	case *ArrayLiteral:
		inspectExprs(n.Elements, f)
	case *ObjectLiteral:
		for _, p := range n.Properties {
			Inspect(p, f)
		}
	case *PropertyAssignment:
		Inspect(n.Key, f)
		Inspect(n.Value, f)
	case *ShorthandPropertyAssignment:
		inspectIdent(n.Name, f)
	case *SpreadAssignment:
		Inspect(n.Expression, f)
	case *Parameter:
		inspectIdent(n.Name, f)
		inspectExpr(n.Initializer, f)
	case *ArrowFunction:
		inspectParams(n.Parameters, f)
		inspectBlock(n.Body, f)
		inspectExpr(n.Expression, f)
	case *FunctionExpression:
		inspectIdent(n.Name, f)
		inspectParams(n.Parameters, f)
		inspectBlock(n.Body, f)
	}
}

func inspectStatements(stmts []Statement, f func(Node) bool) {
	for _, s := range stmts {
		Inspect(s, f)
	}
}

func inspectExprs(exprs []Expression, f func(Node) bool) {
	for _, e := range exprs {
		Inspect(e, f)
	}
}

func inspectParams(params []*Parameter, f func(Node) bool) {
	for _, p := range params {
		Inspect(p, f)
	}
}

// The helpers below keep typed nil pointers out of Inspect.

func inspectExpr(e Expression, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}

func inspectIdent(id *Identifier, f func(Node) bool) {
	if id != nil {
		Inspect(id, f)
	}
}

func inspectBlock(b *BlockStatement, f func(Node) bool) {
	if b != nil {
		Inspect(b, f)
	}
}
