package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/checker"
	"github.com/ts-plus/typescript-sub002/internal/config"
	"github.com/ts-plus/typescript-sub002/internal/prettyprinter"
	"github.com/ts-plus/typescript-sub002/internal/token"
)

// Small tree builders. There is no parser in this module, so tests assemble
// the trees the checker would hand over.

const testConfigJSON = `{
  "moduleMap": {
    "^b\\.ts$": "pkg/b",
    "^lib/(.*)\\.ts$": "@lib/$1"
  },
  "traceMap": {
    "^src/(.*)$": "(app) $1"
  }
}`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.ParseConfig([]byte(testConfigJSON), "mem://localhost/project/tsplus.config.json")
	require.NoError(t, err)
	return cfg
}

func at(line, col int) token.Token {
	return token.Token{Type: token.PUNCT, Line: line, Column: col}
}

func id(name string) *ast.Identifier {
	return &ast.Identifier{Token: token.Token{Type: token.IDENT, Lexeme: name, Line: 1, Column: 1}, Value: name}
}

func num(text string) *ast.NumericLiteral {
	return &ast.NumericLiteral{Token: token.Token{Type: token.NUMBER, Lexeme: text, Line: 1, Column: 1}, Value: text}
}

func call(callee ast.Expression, args ...ast.Expression) *ast.CallExpression {
	return &ast.CallExpression{Token: at(1, 1), Callee: callee, Arguments: args}
}

func callAt(tok token.Token, callee ast.Expression, args ...ast.Expression) *ast.CallExpression {
	return &ast.CallExpression{Token: tok, Callee: callee, Arguments: args}
}

func prop(expr ast.Expression, name string) *ast.PropertyAccessExpression {
	return &ast.PropertyAccessExpression{Token: at(1, 1), Expression: expr, Name: id(name)}
}

func binary(left ast.Expression, op string, right ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{Token: at(1, 1), Left: left, Operator: op, Right: right}
}

func exprStmt(e ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Token: at(1, 1), Expression: e}
}

func constStmt(name string, init ast.Expression) *ast.VariableStatement {
	return constAt(1, name, init)
}

func constAt(line int, name string, init ast.Expression) *ast.VariableStatement {
	n := id(name)
	n.Token.Line = line
	return &ast.VariableStatement{
		Token: at(line, 1),
		Kind:  ast.Const,
		Declarations: []*ast.VariableDeclaration{
			{Token: n.Token, Name: n, Initializer: init},
		},
	}
}

func params(names ...string) []*ast.Parameter {
	out := make([]*ast.Parameter, 0, len(names))
	for _, n := range names {
		name := id(n)
		out = append(out, &ast.Parameter{Token: name.Token, Name: name})
	}
	return out
}

func block(stmts ...ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{Token: at(1, 1), Statements: stmts}
}

func function(name string, ps []*ast.Parameter, stmts ...ast.Statement) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{Token: at(1, 1), Name: id(name), Parameters: ps, Body: block(stmts...)}
}

func arrowBlock(ps []*ast.Parameter, stmts ...ast.Statement) *ast.ArrowFunction {
	return &ast.ArrowFunction{Token: at(1, 1), Parameters: ps, Body: block(stmts...)}
}

func ret(e ast.Expression) *ast.ReturnStatement {
	return &ast.ReturnStatement{Token: at(1, 1), Value: e}
}

func nsImport(alias, path string) *ast.ImportDeclaration {
	return &ast.ImportDeclaration{Token: at(1, 1), Namespace: id(alias), Module: ast.NewStringLiteral(path)}
}

func source(name string, stmts ...ast.Statement) *ast.SourceFile {
	return &ast.SourceFile{FileName: name, Statements: stmts}
}

// fnDecl declares an exported function of file.
func fnDecl(file, name string) *checker.Declaration {
	return &checker.Declaration{Name: name, File: file, Kind: checker.FunctionDeclaration, Exported: true}
}

func fluent(decl *checker.Declaration) *checker.Signature {
	return &checker.Signature{Kind: checker.Fluent, Declaration: decl, ExportName: decl.Name, IsFluent: true}
}

// newTestContext prepares a file context the way TransformFile does.
func newTestContext(t *testing.T, resolver checker.Resolver, file *ast.SourceFile) *fileContext {
	t.Helper()
	return New(resolver, testConfig(t)).newFileContext(file)
}

func printNode(node ast.Node) string {
	return prettyprinter.Print(node)
}

// transformAndPrint runs the pass over file and prints the result.
func transformAndPrint(t *testing.T, table *checker.Table, file *ast.SourceFile) string {
	t.Helper()
	out, errs := New(table, testConfig(t)).TransformFile(file)
	require.Empty(t, errs)
	require.NotNil(t, out)
	return printNode(out)
}
