package transform

import (
	"fmt"

	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/checker"
	"github.com/ts-plus/typescript-sub002/internal/config"
	"github.com/ts-plus/typescript-sub002/internal/token"
)

// derive lowers a derivation into the expression that constructs the value.
// Failed or missing derivations become code that throws at run time.
func (c *fileContext) derive(d checker.Derivation, tok token.Token) ast.Expression {
	switch d := d.(type) {
	case nil:
		return notImplemented()
	case *checker.InvalidDerivation:
		tracer().Debugf("invalid derivation at %d:%d: %s", tok.Line, tok.Column, d.Message)
		return notImplemented()
	case *checker.FromBlockScope:
		if id, ok := c.blockNames[d.Declaration]; ok {
			return id
		}
		return c.declarationReference(d.Declaration, tok)
	case *checker.FromImplicitScope:
		return c.declarationReference(d.Declaration, tok)
	case *checker.EmptyObjectDerivation:
		return ast.NewObject()
	case *checker.FromLiteral:
		return literal(d.Value)
	case *checker.FromIntersectionStructure:
		members := make([]ast.ObjectMember, 0, len(d.Fields))
		for _, f := range d.Fields {
			members = append(members, ast.NewSpreadAssignment(c.derive(f, tok)))
		}
		return ast.NewObject(members...)
	case *checker.FromObjectStructure:
		members := make([]ast.ObjectMember, 0, len(d.Fields))
		for _, f := range d.Fields {
			members = append(members, ast.NewPropertyAssignment(f.Name, c.derive(f.Value, tok)))
		}
		return ast.NewObject(members...)
	case *checker.FromTupleStructure:
		return ast.NewArray(c.deriveAll(d.Fields, tok)...)
	case *checker.FromPriorDerivation:
		if id, ok := c.unique.LookupDerivation(d.Derivation); ok {
			return id
		}
		// A prior derivation is always evaluated before its back references.
		tracer().Errorf("prior derivation at %d:%d has no name, emitting a failing stub", tok.Line, tok.Column)
		return notImplemented()
	case *checker.FromRule:
		return c.deriveRule(d, tok)
	default:
		tracer().Errorf("unknown derivation %T", d)
		return notImplemented()
	}
}

func (c *fileContext) deriveAll(ds []checker.Derivation, tok token.Token) []ast.Expression {
	out := make([]ast.Expression, 0, len(ds))
	for _, d := range ds {
		out = append(out, c.derive(d, tok))
	}
	return out
}

// deriveRule invokes a rule. A self-referential rule is wrapped as
//
//	lazyRule((derived_N) => rule(args...))
//
// where back references inside args resolve to derived_N.
func (c *fileContext) deriveRule(d *checker.FromRule, tok token.Token) ast.Expression {
	if len(d.UsedBy) == 0 {
		return ast.NewCall(c.declarationReference(d.Rule, tok), c.deriveAll(d.Arguments, tok)...)
	}
	if d.LazyRule == nil {
		tracer().Errorf("recursive rule at %d:%d without a lazy rule", tok.Line, tok.Column)
		return notImplemented()
	}
	// Name first: arguments refer back to it.
	self := c.unique.DerivationName(d)
	lazy := c.declarationReference(d.LazyRule, tok)
	body := ast.NewCall(c.declarationReference(d.Rule, tok), c.deriveAll(d.Arguments, tok)...)
	return ast.NewCall(lazy, ast.NewArrow([]*ast.Identifier{self}, body))
}

// notImplemented builds (() => { throw new Error("Not Implemented"); })()
func notImplemented() ast.Expression {
	return ast.NewImmediatelyInvoked(ast.NewThrowError(config.NotImplementedMessage))
}

func literal(v interface{}) ast.Expression {
	switch v := v.(type) {
	case string:
		return ast.NewStringLiteral(v)
	case bool:
		return ast.NewBooleanLiteral(v)
	case int:
		return ast.NewNumericLiteral(float64(v))
	case int64:
		return ast.NewNumericLiteral(float64(v))
	case float32:
		return ast.NewNumericLiteral(float64(v))
	case float64:
		return ast.NewNumericLiteral(v)
	default:
		return ast.NewStringLiteral(fmt.Sprint(v))
	}
}
