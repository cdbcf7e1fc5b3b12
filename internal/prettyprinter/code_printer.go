package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/ts-plus/typescript-sub002/internal/ast"
)

// --- Code Printer (Output is TypeScript source) ---

// Expression precedence levels (higher = binds tighter)
const (
	precComma       = 0
	precSpread      = 1
	precAssignment  = 2
	precConditional = 3
	precUnary       = 16
	precCall        = 18
	precPrimary     = 20
)

var operatorPrecedence = map[string]int{
	",":          precComma,
	"=":          precAssignment,
	"+=":         precAssignment,
	"-=":         precAssignment,
	"??":         4,
	"||":         5,
	"&&":         6,
	"|":          7,
	"^":          8,
	"&":          9,
	"==":         10,
	"!=":         10,
	"===":        10,
	"!==":        10,
	"<":          11,
	">":          11,
	"<=":         11,
	">=":         11,
	"instanceof": 11,
	"in":         11,
	"<<":         12,
	">>":         12,
	">>>":        12,
	"+":          13,
	"-":          13,
	"*":          14,
	"/":          14,
	"%":          14,
	"**":         15,
}

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 10 // Unknown operators are printed like comparisons
}

// Right-associative operators
var rightAssoc = map[string]bool{
	"**": true,
	"=":  true,
	"+=": true,
	"-=": true,
}

func expressionPrecedence(expr ast.Expression) int {
	switch e := expr.(type) {
	case *ast.BinaryExpression:
		return getPrecedence(e.Operator)
	case *ast.ConditionalExpression:
		return precConditional
	case *ast.ArrowFunction:
		return precAssignment
	case *ast.SpreadElement:
		return precSpread
	case *ast.PrefixUnaryExpression, *ast.VoidExpression:
		return precUnary
	case *ast.CallExpression, *ast.NewExpression, *ast.PropertyAccessExpression, *ast.ElementAccessExpression:
		return precCall
	default:
		return precPrimary
	}
}

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
	column int // current column position
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders node as TypeScript source.
func Print(node ast.Node) string {
	p := NewCodePrinter()
	node.Accept(p)
	return p.String()
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
	// Track column position
	if idx := strings.LastIndex(s, "\n"); idx != -1 {
		p.column = len(s) - idx - 1
	} else {
		p.column += len(s)
	}
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
	p.column = 0
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
	p.column = p.indent * 4
}

// printExpr prints an expression, adding parentheses only if its precedence is
// below minPrec.
func (p *CodePrinter) printExpr(expr ast.Expression, minPrec int) {
	if expr == nil {
		p.write("<???>")
		return
	}
	needParens := expressionPrecedence(expr) < minPrec
	if needParens {
		p.write("(")
	}
	if e, ok := expr.(*ast.BinaryExpression); ok {
		prec := getPrecedence(e.Operator)
		leftPrec, rightPrec := prec, prec+1
		if rightAssoc[e.Operator] {
			leftPrec, rightPrec = prec+1, prec
		}
		p.printExpr(e.Left, leftPrec)
		if e.Operator == "," {
			p.write(", ")
		} else {
			p.write(" " + e.Operator + " ")
		}
		p.printExpr(e.Right, rightPrec)
	} else {
		expr.Accept(p)
	}
	if needParens {
		p.write(")")
	}
}

// printTarget prints the callee of a call or the object of a member access.
func (p *CodePrinter) printTarget(expr ast.Expression) {
	if wrappedTarget(expr) {
		p.write("(")
		expr.Accept(p)
		p.write(")")
		return
	}
	p.printExpr(expr, precCall)
}

// wrappedTarget reports whether printTarget parenthesizes expr.
func wrappedTarget(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.FunctionExpression, *ast.NumericLiteral, *ast.ObjectLiteral:
		return true
	}
	return false
}

func (p *CodePrinter) printArguments(typeArgs []ast.TypeNode, args []ast.Expression) {
	p.printTypeArguments(typeArgs)
	p.write("(")
	for i, arg := range args {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(arg, precSpread)
	}
	p.write(")")
}

func (p *CodePrinter) printTypeArguments(typeArgs []ast.TypeNode) {
	if len(typeArgs) == 0 {
		return
	}
	p.write("<")
	for i, t := range typeArgs {
		if i > 0 {
			p.write(", ")
		}
		t.Accept(p)
	}
	p.write(">")
}

func (p *CodePrinter) printParameters(params []*ast.Parameter) {
	p.write("(")
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		param.Accept(p)
	}
	p.write(")")
}

func (p *CodePrinter) printStatements(stmts []ast.Statement) {
	for _, stmt := range stmts {
		p.writeIndent()
		if stmt != nil {
			stmt.Accept(p)
		} else {
			p.write("<???>")
		}
		p.writeln()
	}
}

// startsStatementAmbiguously reports whether an expression statement would begin
// with '{' or 'function' and so needs wrapping parentheses.
func startsStatementAmbiguously(expr ast.Expression) bool {
	for {
		switch e := expr.(type) {
		case *ast.ObjectLiteral, *ast.FunctionExpression:
			return true
		case *ast.BinaryExpression:
			expr = e.Left
		case *ast.CallExpression:
			expr = e.Callee
			if wrappedTarget(expr) {
				return false
			}
		case *ast.PropertyAccessExpression:
			expr = e.Expression
			if wrappedTarget(expr) {
				return false
			}
		case *ast.ElementAccessExpression:
			expr = e.Expression
			if wrappedTarget(expr) {
				return false
			}
		case *ast.ConditionalExpression:
			expr = e.Condition
		default:
			return false
		}
	}
}

// --- Statements ---

func (p *CodePrinter) VisitSourceFile(n *ast.SourceFile) {
	for _, stmt := range n.Statements {
		if stmt != nil {
			stmt.Accept(p)
		} else {
			p.write("<???>")
		}
		p.writeln()
	}
}

func (p *CodePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	if len(n.Statements) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.writeln()
	p.indent++
	p.printStatements(n.Statements)
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	if startsStatementAmbiguously(n.Expression) {
		p.write("(")
		p.printExpr(n.Expression, precComma)
		p.write(")")
	} else {
		p.printExpr(n.Expression, precComma)
	}
	p.write(";")
}

func (p *CodePrinter) VisitReturnStatement(n *ast.ReturnStatement) {
	p.write("return")
	if n.Value != nil {
		p.write(" ")
		p.printExpr(n.Value, precComma)
	}
	p.write(";")
}

func (p *CodePrinter) VisitThrowStatement(n *ast.ThrowStatement) {
	p.write("throw ")
	p.printExpr(n.Value, precComma)
	p.write(";")
}

func (p *CodePrinter) VisitIfStatement(n *ast.IfStatement) {
	p.write("if (")
	p.printExpr(n.Condition, precComma)
	p.write(") ")
	n.Consequence.Accept(p)
	if n.Alternative != nil {
		p.write(" else ")
		n.Alternative.Accept(p)
	}
}

func (p *CodePrinter) VisitVariableStatement(n *ast.VariableStatement) {
	if n.Exported {
		p.write("export ")
	}
	p.write(n.Kind.String() + " ")
	for i, decl := range n.Declarations {
		if i > 0 {
			p.write(", ")
		}
		decl.Accept(p)
	}
	p.write(";")
}

func (p *CodePrinter) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	p.write(n.Name.Value)
	if n.Type != nil {
		p.write(": ")
		n.Type.Accept(p)
	}
	if n.Initializer != nil {
		p.write(" = ")
		p.printExpr(n.Initializer, precAssignment)
	}
}

func (p *CodePrinter) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if n.Exported {
		p.write("export ")
	}
	p.write("function ")
	p.write(n.Name.Value)
	p.printParameters(n.Parameters)
	if n.ReturnType != nil {
		p.write(": ")
		n.ReturnType.Accept(p)
	}
	p.write(" ")
	n.Body.Accept(p)
}

func (p *CodePrinter) VisitClassDeclaration(n *ast.ClassDeclaration) {
	if n.Exported {
		p.write("export ")
	}
	p.write("class ")
	p.write(n.Name.Value)
	if n.Extends != nil {
		p.write(" extends ")
		p.printExpr(n.Extends, precCall)
	}
	if len(n.Members) == 0 {
		p.write(" {}")
		return
	}
	p.write(" {")
	p.writeln()
	p.indent++
	for _, m := range n.Members {
		p.writeIndent()
		m.Accept(p)
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitConstructorDeclaration(n *ast.ConstructorDeclaration) {
	p.write("constructor")
	p.printParameters(n.Parameters)
	p.write(" ")
	n.Body.Accept(p)
}

func (p *CodePrinter) VisitMethodDeclaration(n *ast.MethodDeclaration) {
	if n.Static {
		p.write("static ")
	}
	p.write(n.Name.Value)
	p.printParameters(n.Parameters)
	p.write(" ")
	n.Body.Accept(p)
}

func (p *CodePrinter) VisitPropertyDeclaration(n *ast.PropertyDeclaration) {
	if n.Static {
		p.write("static ")
	}
	p.write(n.Name.Value)
	if n.Type != nil {
		p.write(": ")
		n.Type.Accept(p)
	}
	if n.Initializer != nil {
		p.write(" = ")
		p.printExpr(n.Initializer, precAssignment)
	}
	p.write(";")
}

func (p *CodePrinter) VisitImportDeclaration(n *ast.ImportDeclaration) {
	p.write("import ")
	wrote := false
	if n.Default != nil {
		p.write(n.Default.Value)
		wrote = true
	}
	if n.Namespace != nil {
		if wrote {
			p.write(", ")
		}
		p.write("* as " + n.Namespace.Value)
		wrote = true
	}
	if len(n.Named) > 0 {
		if wrote {
			p.write(", ")
		}
		p.printSpecifiers(n.Named)
		wrote = true
	}
	if wrote {
		p.write(" from ")
	}
	n.Module.Accept(p)
	p.write(";")
}

func (p *CodePrinter) VisitExportDeclaration(n *ast.ExportDeclaration) {
	p.write("export ")
	p.printSpecifiers(n.Named)
	p.write(";")
}

func (p *CodePrinter) printSpecifiers(specs []*ast.ImportSpecifier) {
	p.write("{ ")
	for i, s := range specs {
		if i > 0 {
			p.write(", ")
		}
		p.write(s.Name.Value)
		if s.Alias != nil {
			p.write(" as " + s.Alias.Value)
		}
	}
	p.write(" }")
}

// --- Expressions ---

func (p *CodePrinter) VisitIdentifier(n *ast.Identifier) {
	p.write(n.Value)
}

func (p *CodePrinter) VisitNumericLiteral(n *ast.NumericLiteral) {
	p.write(n.Value)
}

func (p *CodePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.write(ast.Quote(n.Value))
}

func (p *CodePrinter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	p.write(strconv.FormatBool(n.Value))
}

func (p *CodePrinter) VisitThisExpression(n *ast.ThisExpression) {
	p.write("this")
}

func (p *CodePrinter) VisitSuperExpression(n *ast.SuperExpression) {
	p.write("super")
}

func (p *CodePrinter) VisitPropertyAccessExpression(n *ast.PropertyAccessExpression) {
	p.printTarget(n.Expression)
	if n.QuestionDot {
		p.write("?.")
	} else {
		p.write(".")
	}
	p.write(n.Name.Value)
}

func (p *CodePrinter) VisitElementAccessExpression(n *ast.ElementAccessExpression) {
	p.printTarget(n.Expression)
	p.write("[")
	p.printExpr(n.Argument, precComma)
	p.write("]")
}

func (p *CodePrinter) VisitCallExpression(n *ast.CallExpression) {
	p.printTarget(n.Callee)
	p.printArguments(n.TypeArguments, n.Arguments)
}

func (p *CodePrinter) VisitNewExpression(n *ast.NewExpression) {
	p.write("new ")
	p.printTarget(n.Callee)
	p.printArguments(n.TypeArguments, n.Arguments)
}

func (p *CodePrinter) VisitBinaryExpression(n *ast.BinaryExpression) {
	p.printExpr(n, precComma)
}

func (p *CodePrinter) VisitPrefixUnaryExpression(n *ast.PrefixUnaryExpression) {
	p.write(n.Operator)
	if inner, ok := n.Operand.(*ast.PrefixUnaryExpression); ok && inner.Operator == n.Operator {
		// - -x must not print as --x
		p.write(" ")
	}
	p.printExpr(n.Operand, precUnary)
}

func (p *CodePrinter) VisitConditionalExpression(n *ast.ConditionalExpression) {
	p.printExpr(n.Condition, precConditional+1)
	p.write(" ? ")
	p.printExpr(n.WhenTrue, precAssignment)
	p.write(" : ")
	p.printExpr(n.WhenFalse, precAssignment)
}

func (p *CodePrinter) VisitParenthesizedExpression(n *ast.ParenthesizedExpression) {
	p.write("(")
	p.printExpr(n.Expression, precComma)
	p.write(")")
}

func (p *CodePrinter) VisitVoidExpression(n *ast.VoidExpression) {
	p.write("void ")
	p.printExpr(n.Expression, precUnary)
}

func (p *CodePrinter) VisitSpreadElement(n *ast.SpreadElement) {
	p.write("...")
	p.printExpr(n.Expression, precAssignment)
}

func (p *CodePrinter) VisitArrayLiteral(n *ast.ArrayLiteral) {
	p.write("[")
	for i, el := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(el, precSpread)
	}
	p.write("]")
}

func (p *CodePrinter) VisitObjectLiteral(n *ast.ObjectLiteral) {
	if len(n.Properties) == 0 {
		p.write("{}")
		return
	}
	p.write("{ ")
	for i, prop := range n.Properties {
		if i > 0 {
			p.write(", ")
		}
		prop.Accept(p)
	}
	p.write(" }")
}

func (p *CodePrinter) VisitPropertyAssignment(n *ast.PropertyAssignment) {
	n.Key.Accept(p)
	p.write(": ")
	p.printExpr(n.Value, precAssignment)
}

func (p *CodePrinter) VisitShorthandPropertyAssignment(n *ast.ShorthandPropertyAssignment) {
	p.write(n.Name.Value)
}

func (p *CodePrinter) VisitSpreadAssignment(n *ast.SpreadAssignment) {
	p.write("...")
	p.printExpr(n.Expression, precAssignment)
}

func (p *CodePrinter) VisitParameter(n *ast.Parameter) {
	if n.Rest {
		p.write("...")
	}
	p.write(n.Name.Value)
	if n.Optional {
		p.write("?")
	}
	if n.Type != nil {
		p.write(": ")
		n.Type.Accept(p)
	}
	if n.Initializer != nil {
		p.write(" = ")
		p.printExpr(n.Initializer, precAssignment)
	}
}

func (p *CodePrinter) VisitArrowFunction(n *ast.ArrowFunction) {
	p.printParameters(n.Parameters)
	p.write(" => ")
	if n.Body != nil {
		n.Body.Accept(p)
		return
	}
	if _, ok := n.Expression.(*ast.ObjectLiteral); ok {
		p.write("(")
		n.Expression.Accept(p)
		p.write(")")
		return
	}
	p.printExpr(n.Expression, precAssignment)
}

func (p *CodePrinter) VisitFunctionExpression(n *ast.FunctionExpression) {
	p.write("function")
	if n.Name != nil {
		p.write(" " + n.Name.Value)
	}
	p.printParameters(n.Parameters)
	p.write(" ")
	n.Body.Accept(p)
}

// --- Types ---

func (p *CodePrinter) VisitTypeReference(n *ast.TypeReference) {
	p.write(n.Name)
	p.printTypeArguments(n.Arguments)
}
