package transform

import (
	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/checker"
	"github.com/ts-plus/typescript-sub002/internal/token"
)

// optimizePipe folds pipe(seed, f, g, ...) into g(f(seed)). Stages with a
// data-first variant are called directly with the accumulated value as their
// first argument: pipe(a, map(f)) becomes mapDataFirst(a, f).
//
// The stages are inspected before they are rewritten; once rewritten their
// shape no longer shows the curried call.
func (c *fileContext) optimizePipe(stages []ast.Expression) ast.Expression {
	acc := c.visitExpr(stages[0])
	for _, stage := range stages[1:] {
		if call, ok := stage.(*ast.CallExpression); ok {
			if target := c.resolver.OptimizedDataFirstTarget(call); target != nil {
				tracer().Debugf("pipe stage fused into %s", target.ExportName)
				acc = c.dataFirstCall(target, call.Token, acc, c.visitExprs(call.Arguments))
				continue
			}
		}
		acc = ast.NewCall(c.visitExpr(stage), acc)
	}
	return acc
}

// dataFirstCall builds target(first, args...).
func (c *fileContext) dataFirstCall(target *checker.Target, tok token.Token, first ast.Expression, args []ast.Expression) *ast.CallExpression {
	fn := c.targetReference(target, tok)
	return ast.NewCall(fn, append([]ast.Expression{first}, args...)...)
}

// fuseDataFirst rewrites f(a)(x), with f(a) a curried call that has a
// data-first variant, into target(x, a). The imports held by the dropped
// callee f are retracted.
func (c *fileContext) fuseDataFirst(outer, inner *ast.CallExpression, target *checker.Target) ast.Expression {
	visited := c.visitExpr(inner)
	if visited != ast.Expression(inner) {
		// The curried call itself was rewritten into another shape.
		outer.Callee = visited
		return c.visitPlainCall(outer, false)
	}
	lazy := c.resolver.LazyFlag(outer.Arguments[0])
	arg := c.visitExpr(outer.Arguments[0])
	if lazy {
		arg = ast.NewThunk(arg)
	}
	fused := c.dataFirstCall(target, outer.Token, arg, inner.Arguments)
	c.retract(inner.Callee)
	tracer().Debugf("curried call fused into %s", target.ExportName)
	return fused
}
