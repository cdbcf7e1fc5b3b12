package transform

import (
	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/checker"
)

// lowerDo lowers a Do block
//
//	Do(($) => {
//	    const a = $(e1);
//	    const b = $(e2);
//	    return a + b;
//	})
//
// into flatMap(e1, (a) => map(e2, (b) => a + b)). Statements are folded from
// last to first into the continuation of the preceding bind. It reports false
// when the call is not a block-bodied Do with at least one bind.
func (c *fileContext) lowerDo(call *ast.CallExpression, do *checker.DoBlock) (ast.Expression, bool) {
	if len(call.Arguments) != 1 || do.Map == nil || do.FlatMap == nil {
		return nil, false
	}
	arrow, ok := call.Arguments[0].(*ast.ArrowFunction)
	if !ok || arrow.Body == nil || !c.hasBind(arrow.Body.Statements) {
		return nil, false
	}

	c.registerUniqueBindings(arrow.Body)
	stmts := c.insertHoists(arrow.Body, arrow.Body.Statements)

	var acc []ast.Statement
	isLast := true
	for i := len(stmts) - 1; i >= 0; i-- {
		stmt := stmts[i]
		if i == len(stmts)-1 {
			if ret, ok := stmt.(*ast.ReturnStatement); ok {
				if bind := c.bindCall(ret.Value); bind != nil {
					// return $(e) needs no map: it is e itself.
					acc = []ast.Statement{ast.NewReturn(c.visitExpr(bind.Arguments[0]))}
					isLast = false
					continue
				}
			}
		}
		if name, bind := c.bindStatement(stmt); bind != nil {
			var params []*ast.Identifier
			if name != nil {
				params = []*ast.Identifier{name}
			}
			sig := do.FlatMap
			if isLast {
				sig = do.Map
			}
			isLast = false
			acc = []ast.Statement{ast.NewReturn(c.doStep(sig, bind, params, acc))}
			continue
		}
		acc = append([]ast.Statement{c.visitStmt(stmt)}, acc...)
	}

	if len(acc) == 1 {
		if ret, ok := acc[0].(*ast.ReturnStatement); ok && ret.Value != nil {
			return ret.Value, true
		}
	}
	return ast.NewImmediatelyInvoked(acc...), true
}

// doStep emits one map or flatMap of the effect bound by bind into the
// continuation body.
func (c *fileContext) doStep(sig *checker.Signature, bind *ast.CallExpression, params []*ast.Identifier, body []ast.Statement) ast.Expression {
	effect := c.visitExpr(bind.Arguments[0])
	fn := c.extensionReference(sig, bind.Token)
	args := c.withTrace(sig, bind.Token, []ast.Expression{continuation(params, body)})
	return extensionCall(fn, sig.IsPipeable, effect, args...)
}

// continuation is (params) => expr when body is a single return, else a block
// bodied arrow.
func continuation(params []*ast.Identifier, body []ast.Statement) *ast.ArrowFunction {
	if len(body) == 1 {
		if ret, ok := body[0].(*ast.ReturnStatement); ok && ret.Value != nil {
			return ast.NewArrow(params, ret.Value)
		}
	}
	return ast.NewArrowBlock(params, body...)
}

// bindCall returns expr if it is a bind call $(e) with one argument.
func (c *fileContext) bindCall(expr ast.Expression) *ast.CallExpression {
	call, ok := expr.(*ast.CallExpression)
	if !ok || len(call.Arguments) != 1 || !c.resolver.IsDoBind(call) {
		return nil
	}
	return call
}

// bindStatement matches `const name = $(e)` and `$(e);`.
func (c *fileContext) bindStatement(stmt ast.Statement) (*ast.Identifier, *ast.CallExpression) {
	switch s := stmt.(type) {
	case *ast.VariableStatement:
		if len(s.Declarations) == 1 {
			if bind := c.bindCall(s.Declarations[0].Initializer); bind != nil {
				return s.Declarations[0].Name, bind
			}
		}
	case *ast.ExpressionStatement:
		if bind := c.bindCall(s.Expression); bind != nil {
			return nil, bind
		}
	}
	return nil, nil
}

func (c *fileContext) hasBind(stmts []ast.Statement) bool {
	for i, stmt := range stmts {
		if _, bind := c.bindStatement(stmt); bind != nil {
			return true
		}
		if ret, ok := stmt.(*ast.ReturnStatement); ok && i == len(stmts)-1 && c.bindCall(ret.Value) != nil {
			return true
		}
	}
	return false
}
