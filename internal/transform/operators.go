package transform

import (
	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/checker"
	"github.com/ts-plus/typescript-sub002/internal/diagnostics"
	"github.com/ts-plus/typescript-sub002/internal/token"
)

// extensionCall emits fn(args...)(receiver) for pipeable extensions and
// fn(receiver, args...) otherwise.
func extensionCall(fn ast.Expression, pipeable bool, receiver ast.Expression, args ...ast.Expression) *ast.CallExpression {
	if pipeable {
		return ast.NewCall(ast.NewCall(fn, args...), receiver)
	}
	return ast.NewCall(fn, append([]ast.Expression{receiver}, args...)...)
}

// withTrace appends the trace argument when sig declares one.
func (c *fileContext) withTrace(sig *checker.Signature, tok token.Token, args []ast.Expression) []ast.Expression {
	if sig.HasTraceParameter {
		return append(args, c.trace(tok))
	}
	return args
}

// visitElementAccess rewrites a[b] resolved to an indexer extension.
func (c *fileContext) visitElementAccess(e *ast.ElementAccessExpression) ast.Expression {
	sig := c.resolver.ResolvedSignature(e)
	e.Expression = c.visitExpr(e.Expression)
	e.Argument = c.visitExpr(e.Argument)
	if sig == nil || sig.Kind != checker.Indexer {
		return e
	}
	fn := c.extensionReference(sig, e.Token)
	return extensionCall(fn, sig.IsPipeable, e.Expression, e.Argument)
}

// visitBinary rewrites a custom operator into a call of its extension.
func (c *fileContext) visitBinary(e *ast.BinaryExpression) ast.Expression {
	if c.resolver.IsPipeMacroCall(e) {
		return c.optimizePipe([]ast.Expression{e.Left, e.Right})
	}
	sig := c.resolver.ResolvedSignature(e)
	if sig == nil || sig.Kind != checker.Operator {
		e.Left = c.visitExpr(e.Left)
		e.Right = c.visitExpr(e.Right)
		return e
	}
	decl, ok := operatorDeclaration(sig.Declaration)
	if !ok {
		c.fail(diagnostics.NewInvariantError(diagnostics.ErrT002, e.Token, e.Operator))
		return e
	}
	leftLazy, rightLazy := c.resolver.LazyFlag(e.Left), c.resolver.LazyFlag(e.Right)
	left, right := c.visitExpr(e.Left), c.visitExpr(e.Right)
	if leftLazy {
		left = ast.NewThunk(left)
	}
	if rightLazy {
		right = ast.NewThunk(right)
	}
	fn := c.declarationReference(decl, e.Token)
	args := c.withTrace(sig, e.Token, []ast.Expression{right})
	return extensionCall(fn, sig.IsPipeable, left, args...)
}

// visitPropertyAccess rewrites static and getter extensions.
func (c *fileContext) visitPropertyAccess(e *ast.PropertyAccessExpression) ast.Expression {
	if c.resolver.IsIdentityMacroCall(e) {
		return c.visitExpr(e.Expression)
	}
	sig := c.resolver.ResolvedSignature(e)
	if sig != nil && sig.Kind == checker.Static {
		// The receiver is a companion object and is dropped unvisited.
		return c.extensionReference(sig, e.Token)
	}
	e.Expression = c.visitExpr(e.Expression)
	if sig == nil || sig.Kind != checker.Getter {
		return e
	}
	fn := c.extensionReference(sig, e.Token)
	args := c.withTrace(sig, e.Token, []ast.Expression{simplify(e.Expression)})
	return ast.NewCall(fn, args...)
}

// simplify unwraps a parenthesized numeric literal, (1).foo, which only needs
// the parentheses as a member access target.
func simplify(expr ast.Expression) ast.Expression {
	if p, ok := expr.(*ast.ParenthesizedExpression); ok {
		if lit, ok := p.Expression.(*ast.NumericLiteral); ok {
			return lit
		}
	}
	return expr
}
