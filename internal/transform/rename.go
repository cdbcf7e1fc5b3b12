package transform

import (
	"github.com/ts-plus/typescript-sub002/internal/ast"
)

// --- Block hoists ---

// placeHoists inserts `const pinned = name` right after the const declaring
// name in stmts. Pins whose declaration is not among stmts are returned apart.
func (c *fileContext) placeHoists(scope ast.Node, stmts []ast.Statement) (out, unplaced []ast.Statement) {
	hs := c.hoists[scope]
	if len(hs) == 0 {
		return stmts, nil
	}
	delete(c.hoists, scope)
	placed := make([]bool, len(hs))
	out = make([]ast.Statement, 0, len(stmts)+len(hs))
	for _, stmt := range stmts {
		out = append(out, stmt)
		vs, ok := stmt.(*ast.VariableStatement)
		if !ok || vs.Kind != ast.Const {
			continue
		}
		for _, d := range vs.Declarations {
			for i, h := range hs {
				if placed[i] || h.decl.Name != d.Name.Value {
					continue
				}
				if h.decl.Line != 0 && d.Token.HasPosition() && h.decl.Line != d.Token.Line {
					continue
				}
				out = append(out, pin(h))
				placed[i] = true
			}
		}
	}
	for i, h := range hs {
		if !placed[i] {
			unplaced = append(unplaced, pin(h))
		}
	}
	return out, unplaced
}

// insertHoists is placeHoists for a block: unplaced pins go to its top.
func (c *fileContext) insertHoists(scope ast.Node, stmts []ast.Statement) []ast.Statement {
	out, unplaced := c.placeHoists(scope, stmts)
	if len(unplaced) == 0 {
		return out
	}
	return append(unplaced, out...)
}

func pin(h hoist) ast.Statement {
	return ast.NewConst(h.id, ast.NewIdentifier(h.decl.Name), false)
}

// --- File-level aliases ---

// renameDeclarations moves every top-level function, variable or class that
// is referenced through an alias to that alias. An exported declaration loses
// its export and is re-exported under its original name:
//
//	export function foo() {}
//	export let n = 0;
//
// becomes
//
//	function foo_1() {}
//	export const foo = foo_1;
//	let n_1 = 0;
//	export { n_1 as n };
//
// An alias no top-level declaration carries falls back to the plain name.
// The returned map holds the renamed names.
func renameDeclarations(stmts []ast.Statement, aliases map[string]*Alias) ([]ast.Statement, map[string]*ast.Identifier) {
	renames := make(map[string]*ast.Identifier)
	if len(aliases) == 0 {
		return stmts, renames
	}
	out := make([]ast.Statement, 0, len(stmts))
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.FunctionDeclaration:
			a := aliases[s.Name.Value]
			if a == nil {
				break
			}
			orig := s.Name.Value
			renames[orig] = a.Identifier
			s.Name = a.Identifier
			exported := s.Exported
			s.Exported = false
			out = append(out, s)
			if exported {
				out = append(out, forward(orig, a.Identifier))
			}
			continue
		case *ast.ClassDeclaration:
			a := aliases[s.Name.Value]
			if a == nil {
				break
			}
			orig := s.Name.Value
			renames[orig] = a.Identifier
			s.Name = a.Identifier
			exported := s.Exported
			s.Exported = false
			out = append(out, s, restoreClassName(a.Identifier, orig))
			if exported {
				out = append(out, forward(orig, a.Identifier))
			}
			continue
		case *ast.VariableStatement:
			if !hasAliased(s, aliases) {
				break
			}
			// Split so each declaration keeps or loses its export on its own.
			for _, d := range s.Declarations {
				single := &ast.VariableStatement{Token: s.Token, Exported: s.Exported, Kind: s.Kind, Declarations: []*ast.VariableDeclaration{d}}
				a := aliases[d.Name.Value]
				if a == nil {
					out = append(out, single)
					continue
				}
				orig := d.Name.Value
				renames[orig] = a.Identifier
				d.Name = a.Identifier
				single.Exported = false
				out = append(out, single)
				switch {
				case !s.Exported:
				case s.Kind == ast.Const:
					out = append(out, forward(orig, a.Identifier))
				default:
					// a const copy would not follow later assignments
					out = append(out, ast.NewExportAs(a.Identifier, orig))
				}
			}
			continue
		}
		out = append(out, stmt)
	}
	for name, a := range aliases {
		if _, ok := renames[name]; ok {
			continue
		}
		tracer().Infof("no top-level declaration of %s, referencing it by name", name)
		a.Identifier.Value = name
		a.Identifier.Token.Lexeme = name
	}
	return out, renames
}

func hasAliased(s *ast.VariableStatement, aliases map[string]*Alias) bool {
	for _, d := range s.Declarations {
		if aliases[d.Name.Value] != nil {
			return true
		}
	}
	return false
}

// forward builds export const orig = alias
func forward(orig string, alias *ast.Identifier) ast.Statement {
	return ast.NewConst(ast.NewIdentifier(orig), alias, true)
}

// restoreClassName builds Object.defineProperty(alias, "name", { value: "orig" })
// so the renamed class still reports its original name.
func restoreClassName(alias *ast.Identifier, orig string) ast.Statement {
	desc := ast.NewObject(&ast.PropertyAssignment{
		Token: alias.Token,
		Key:   ast.NewIdentifier("value"),
		Value: ast.NewStringLiteral(orig),
	})
	call := ast.NewCall(ast.NewPropertyAccess(ast.NewIdentifier("Object"), "defineProperty"),
		alias, ast.NewStringLiteral("name"), desc)
	return ast.NewExpressionStatement(call)
}

// --- References ---

// referenceRenamer renames free references to renamed top-level names,
// leaving alone references shadowed by a nested declaration or parameter.
type referenceRenamer struct {
	renames map[string]*ast.Identifier
	scopes  []map[string]bool
}

func renameReferences(stmts []ast.Statement, renames map[string]*ast.Identifier) {
	if len(renames) == 0 {
		return
	}
	r := &referenceRenamer{renames: renames}
	for _, s := range stmts {
		r.stmt(s)
	}
}

func (r *referenceRenamer) shadowed(name string) bool {
	for _, scope := range r.scopes {
		if scope[name] {
			return true
		}
	}
	return false
}

func (r *referenceRenamer) ident(id *ast.Identifier) {
	if id == nil {
		return
	}
	if alias, ok := r.renames[id.Value]; ok && !r.shadowed(id.Value) {
		id.Value = alias.Value
		id.Token.Lexeme = alias.Value
	}
}

// declaredIn lists the names declared directly in stmts.
func declaredIn(stmts []ast.Statement) map[string]bool {
	names := make(map[string]bool)
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.VariableStatement:
			for _, d := range s.Declarations {
				names[d.Name.Value] = true
			}
		case *ast.FunctionDeclaration:
			names[s.Name.Value] = true
		case *ast.ClassDeclaration:
			names[s.Name.Value] = true
		}
	}
	return names
}

func (r *referenceRenamer) block(block *ast.BlockStatement) {
	if block == nil {
		return
	}
	r.scopes = append(r.scopes, declaredIn(block.Statements))
	for _, s := range block.Statements {
		r.stmt(s)
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *referenceRenamer) function(params []*ast.Parameter, body *ast.BlockStatement, expr ast.Expression, self *ast.Identifier) {
	names := make(map[string]bool)
	for _, p := range params {
		names[p.Name.Value] = true
	}
	if self != nil {
		names[self.Value] = true
	}
	r.scopes = append(r.scopes, names)
	for _, p := range params {
		r.expr(p.Initializer)
	}
	if body != nil {
		r.block(body)
	} else {
		r.expr(expr)
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *referenceRenamer) stmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		r.expr(s.Expression)
	case *ast.ReturnStatement:
		r.expr(s.Value)
	case *ast.ThrowStatement:
		r.expr(s.Value)
	case *ast.IfStatement:
		r.expr(s.Condition)
		r.stmt(s.Consequence)
		if s.Alternative != nil {
			r.stmt(s.Alternative)
		}
	case *ast.BlockStatement:
		r.block(s)
	case *ast.VariableStatement:
		for _, d := range s.Declarations {
			r.expr(d.Initializer)
		}
	case *ast.FunctionDeclaration:
		r.function(s.Parameters, s.Body, nil, nil)
	case *ast.ClassDeclaration:
		r.expr(s.Extends)
		for _, m := range s.Members {
			switch m := m.(type) {
			case *ast.ConstructorDeclaration:
				r.function(m.Parameters, m.Body, nil, nil)
			case *ast.MethodDeclaration:
				r.function(m.Parameters, m.Body, nil, nil)
			case *ast.PropertyDeclaration:
				r.expr(m.Initializer)
			}
		}
	}
}

func (r *referenceRenamer) exprs(exprs []ast.Expression) {
	for _, e := range exprs {
		r.expr(e)
	}
}

func (r *referenceRenamer) expr(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Identifier:
		r.ident(e)
	case *ast.PropertyAccessExpression:
		r.expr(e.Expression)
	case *ast.ElementAccessExpression:
		r.expr(e.Expression)
		r.expr(e.Argument)
	case *ast.CallExpression:
		r.expr(e.Callee)
		r.exprs(e.Arguments)
	case *ast.NewExpression:
		r.expr(e.Callee)
		r.exprs(e.Arguments)
	case *ast.BinaryExpression:
		r.expr(e.Left)
		r.expr(e.Right)
	case *ast.PrefixUnaryExpression:
		r.expr(e.Operand)
	case *ast.ConditionalExpression:
		r.expr(e.Condition)
		r.expr(e.WhenTrue)
		r.expr(e.WhenFalse)
	case *ast.ParenthesizedExpression:
		r.expr(e.Expression)
	case *ast.VoidExpression:
		r.expr(e.Expression)
	case *ast.SpreadElement:
		r.expr(e.Expression)
	case *ast.ArrayLiteral:
		r.exprs(e.Elements)
	case *ast.ObjectLiteral:
		r.object(e)
	case *ast.ArrowFunction:
		r.function(e.Parameters, e.Body, e.Expression, nil)
	case *ast.FunctionExpression:
		r.function(e.Parameters, e.Body, nil, e.Name)
	}
}

func (r *referenceRenamer) object(obj *ast.ObjectLiteral) {
	for i, m := range obj.Properties {
		switch m := m.(type) {
		case *ast.PropertyAssignment:
			switch m.Key.(type) {
			case *ast.Identifier, *ast.StringLiteral, *ast.NumericLiteral:
			default:
				r.expr(m.Key)
			}
			r.expr(m.Value)
		case *ast.ShorthandPropertyAssignment:
			alias, ok := r.renames[m.Name.Value]
			if !ok || r.shadowed(m.Name.Value) {
				continue
			}
			// { foo } keeps its key: { foo: foo_1 }
			obj.Properties[i] = &ast.PropertyAssignment{Token: m.Token, Key: ast.NewIdentifier(m.Name.Value), Value: alias}
		case *ast.SpreadAssignment:
			r.expr(m.Expression)
		}
	}
}
