package transform

import (
	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/checker"
	"github.com/ts-plus/typescript-sub002/internal/diagnostics"
)

// visitCall dispatches a call expression. The order matters: macros are
// recognized on the unrewritten call before anything below it is visited.
func (c *fileContext) visitCall(call *ast.CallExpression) ast.Expression {
	r := c.resolver
	if _, ok := call.Callee.(*ast.SuperExpression); ok {
		return c.visitPlainCall(call, true)
	}
	if r.IsPipeMacroCall(call) && len(call.Arguments) > 0 {
		return c.optimizePipe(call.Arguments)
	}
	if r.IsIdentityMacroCall(call) {
		if len(call.Arguments) == 1 {
			if _, spread := call.Arguments[0].(*ast.SpreadElement); !spread {
				return c.visitExpr(call.Arguments[0])
			}
		}
		return c.visitPlainCall(call, true)
	}
	if r.IsRemoveMacroCall(call) {
		return ast.NewVoidZero()
	}
	if r.IsDeriveMacroCall(call) {
		return c.derive(r.DerivationFor(call), call.Token)
	}
	if len(call.Arguments) == 1 {
		if inner, ok := call.Callee.(*ast.CallExpression); ok {
			if target := r.OptimizedDataFirstTarget(inner); target != nil {
				return c.fuseDataFirst(call, inner, target)
			}
		}
	}
	if do := r.DoBlock(call); do != nil {
		if lowered, ok := c.lowerDo(call, do); ok {
			return lowered
		}
	}
	if ext := r.CallExtension(call); ext != nil {
		return c.visitCallExtension(call, ext)
	}
	if r.IsFluentCall(call) {
		return c.visitFluent(call)
	}
	return c.visitPlainCall(call, true)
}

// visitCallExtension rewrites x(args) with x resolved to a __call extension.
func (c *fileContext) visitCallExtension(call *ast.CallExpression, ext *checker.Signature) ast.Expression {
	callee := c.visitExpr(call.Callee)
	call.Callee = c.extensionReference(ext, call.Token)
	c.retract(callee)
	return c.visitPlainCall(call, false)
}

// visitFluent rewrites a fluent call, in method form recv.ext(args) or in call
// form ext(recv, args).
func (c *fileContext) visitFluent(call *ast.CallExpression) ast.Expression {
	sig := c.resolver.ResolvedSignature(call)
	if sig == nil || sig.Kind != checker.Fluent {
		c.fail(diagnostics.NewInvariantError(diagnostics.ErrT003, call.Token, calleeName(call)))
		return call
	}
	var receiver ast.Expression
	var args []ast.Expression
	if pa, ok := call.Callee.(*ast.PropertyAccessExpression); ok {
		receiver, args = pa.Expression, call.Arguments
	} else if len(call.Arguments) > 0 {
		receiver, args = call.Arguments[0], call.Arguments[1:]
	} else {
		c.fail(diagnostics.NewInvariantError(diagnostics.ErrT003, call.Token, calleeName(call)))
		return call
	}

	if sig.Declaration != nil && sig.Declaration.Macro == checker.MacroPipe {
		return c.optimizePipe(append([]ast.Expression{receiver}, args...))
	}

	lazy := c.resolver.LazyFlag(receiver)
	receiver = c.visitExpr(receiver)
	if lazy {
		receiver = ast.NewThunk(receiver)
	}
	args = c.visitExprs(args)
	fn := c.extensionReference(sig, call.Token)
	args = c.withTrace(sig, call.Token, args)

	out := extensionCall(fn, sig.IsPipeable, receiver, args...)
	if sig.IsPipeable {
		out.Callee.(*ast.CallExpression).TypeArguments = call.TypeArguments
	} else {
		out.TypeArguments = call.TypeArguments
	}
	return out
}

// visitPlainCall is the default treatment of a call: automatic parameters
// missing from the call are derived, lazy arguments thunked and the trace
// appended when the last parameter carries it.
func (c *fileContext) visitPlainCall(call *ast.CallExpression, visitCallee bool) ast.Expression {
	if visitCallee {
		call.Callee = c.visitExpr(call.Callee)
	}
	spread := false
	for i, arg := range call.Arguments {
		_, isSpread := arg.(*ast.SpreadElement)
		spread = spread || isSpread
		lazy := c.resolver.LazyFlag(arg)
		arg = c.visitExpr(arg)
		if lazy {
			arg = ast.NewThunk(arg)
		}
		call.Arguments[i] = arg
	}
	sig := c.resolver.CallSignature(call)
	if sig == nil || spread {
		return call
	}
	// Skipped optional parameters before a filled one are passed as void 0.
	skipped := 0
	for i := len(call.Arguments); i < len(sig.Parameters); i++ {
		var arg ast.Expression
		p := sig.Parameters[i]
		switch {
		case p.Automatic:
			arg = c.derive(p.Derivation, call.Token)
		case p.Trace && i == len(sig.Parameters)-1:
			arg = c.trace(call.Token)
		default:
			skipped++
			continue
		}
		for ; skipped > 0; skipped-- {
			call.Arguments = append(call.Arguments, ast.NewVoidZero())
		}
		call.Arguments = append(call.Arguments, arg)
	}
	return call
}

// calleeName is a printable name for the callee of call.
func calleeName(call *ast.CallExpression) string {
	switch callee := call.Callee.(type) {
	case *ast.Identifier:
		return callee.Value
	case *ast.PropertyAccessExpression:
		return callee.Name.Value
	default:
		return call.TokenLiteral()
	}
}
