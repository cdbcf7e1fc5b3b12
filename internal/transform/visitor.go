package transform

import (
	"github.com/ts-plus/typescript-sub002/internal/ast"
)

// The rewrite pass mutates the tree in place. visitExpr returns the node that
// replaces e; nodes that need no rewriting are returned as they are, so the
// resolver facts keyed by original nodes stay valid for their subtrees.

func (c *fileContext) visitStatements(stmts []ast.Statement) []ast.Statement {
	for i, s := range stmts {
		stmts[i] = c.visitStmt(s)
	}
	return stmts
}

// visitBlock rewrites a block and inserts the pinned copies its scope needs.
func (c *fileContext) visitBlock(block *ast.BlockStatement) {
	if block == nil {
		return
	}
	c.registerUniqueBindings(block)
	stmts := c.insertHoists(block, block.Statements)
	block.Statements = c.visitStatements(stmts)
}

func (c *fileContext) visitStmt(stmt ast.Statement) ast.Statement {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		s.Expression = c.visitExpr(s.Expression)
	case *ast.ReturnStatement:
		s.Value = c.visitExpr(s.Value)
	case *ast.ThrowStatement:
		s.Value = c.visitExpr(s.Value)
	case *ast.IfStatement:
		s.Condition = c.visitExpr(s.Condition)
		s.Consequence = c.visitStmt(s.Consequence)
		if s.Alternative != nil {
			s.Alternative = c.visitStmt(s.Alternative)
		}
	case *ast.BlockStatement:
		c.visitBlock(s)
	case *ast.VariableStatement:
		for _, d := range s.Declarations {
			d.Initializer = c.visitExpr(d.Initializer)
		}
	case *ast.FunctionDeclaration:
		c.visitFunction(s.Parameters, s.Body, nil)
	case *ast.ClassDeclaration:
		s.Extends = c.visitExpr(s.Extends)
		for _, m := range s.Members {
			c.visitClassMember(m)
		}
	}
	return stmt
}

func (c *fileContext) visitClassMember(m ast.ClassMember) {
	switch m := m.(type) {
	case *ast.ConstructorDeclaration:
		c.visitFunction(m.Parameters, m.Body, nil)
	case *ast.MethodDeclaration:
		c.visitFunction(m.Parameters, m.Body, nil)
	case *ast.PropertyDeclaration:
		m.Initializer = c.visitExpr(m.Initializer)
	}
}

// visitFunction rewrites a function-like with the trace parameter of params in
// scope. Exactly one of body and expr is set; the rewritten expr is returned.
func (c *fileContext) visitFunction(params []*ast.Parameter, body *ast.BlockStatement, expr ast.Expression) ast.Expression {
	c.pushFunction(params)
	defer c.popFunction()
	for _, p := range params {
		p.Initializer = c.visitExpr(p.Initializer)
	}
	if body != nil {
		c.visitBlock(body)
		return nil
	}
	return c.visitExpr(expr)
}

func (c *fileContext) visitExprs(exprs []ast.Expression) []ast.Expression {
	for i, e := range exprs {
		exprs[i] = c.visitExpr(e)
	}
	return exprs
}

func (c *fileContext) visitExpr(expr ast.Expression) ast.Expression {
	switch e := expr.(type) {
	case nil:
		return nil
	case *ast.Identifier:
		return c.visitIdentifier(e)
	case *ast.PropertyAccessExpression:
		return c.visitPropertyAccess(e)
	case *ast.ElementAccessExpression:
		return c.visitElementAccess(e)
	case *ast.CallExpression:
		return c.visitCall(e)
	case *ast.BinaryExpression:
		return c.visitBinary(e)
	case *ast.NewExpression:
		e.Callee = c.visitExpr(e.Callee)
		e.Arguments = c.visitExprs(e.Arguments)
	case *ast.PrefixUnaryExpression:
		e.Operand = c.visitExpr(e.Operand)
	case *ast.ConditionalExpression:
		e.Condition = c.visitExpr(e.Condition)
		e.WhenTrue = c.visitExpr(e.WhenTrue)
		e.WhenFalse = c.visitExpr(e.WhenFalse)
	case *ast.ParenthesizedExpression:
		e.Expression = c.visitExpr(e.Expression)
	case *ast.VoidExpression:
		e.Expression = c.visitExpr(e.Expression)
	case *ast.SpreadElement:
		e.Expression = c.visitExpr(e.Expression)
	case *ast.ArrayLiteral:
		e.Elements = c.visitExprs(e.Elements)
	case *ast.ObjectLiteral:
		c.visitObject(e)
	case *ast.ArrowFunction:
		if e.Body != nil {
			c.visitFunction(e.Parameters, e.Body, nil)
		} else {
			e.Expression = c.visitFunction(e.Parameters, nil, e.Expression)
		}
	case *ast.FunctionExpression:
		c.visitFunction(e.Parameters, e.Body, nil)
	}
	return expr
}

// visitIdentifier qualifies identifiers bound to a global import.
func (c *fileContext) visitIdentifier(id *ast.Identifier) ast.Expression {
	if g := c.resolver.GlobalImport(id); g != nil {
		return ast.NewPropertyAccess(c.imports.Get(g.Path), g.Name)
	}
	return id
}

func (c *fileContext) visitObject(obj *ast.ObjectLiteral) {
	for i, m := range obj.Properties {
		switch m := m.(type) {
		case *ast.PropertyAssignment:
			switch m.Key.(type) {
			case *ast.Identifier, *ast.StringLiteral, *ast.NumericLiteral:
			default:
				m.Key = c.visitExpr(m.Key)
			}
			m.Value = c.visitExpr(m.Value)
		case *ast.ShorthandPropertyAssignment:
			// { x } with x a global import becomes { x: alias.x }
			if v := c.visitIdentifier(m.Name); v != ast.Expression(m.Name) {
				obj.Properties[i] = &ast.PropertyAssignment{Token: m.Token, Key: ast.NewIdentifier(m.Name.Value), Value: v}
			}
		case *ast.SpreadAssignment:
			m.Expression = c.visitExpr(m.Expression)
		}
	}
}

// registerUniqueBindings allocates the pinned names of the declarations scope
// needs, before anything inside scope is rewritten.
func (c *fileContext) registerUniqueBindings(scope ast.Node) {
	for _, decl := range c.resolver.UniqueBindings(scope) {
		if _, ok := c.blockNames[decl]; ok {
			continue
		}
		id := c.names.Next(decl.Name)
		c.blockNames[decl] = id
		c.hoists[scope] = append(c.hoists[scope], hoist{decl: decl, id: id})
	}
}
