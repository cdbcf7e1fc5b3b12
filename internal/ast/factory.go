package ast

import (
	"strconv"

	"github.com/ts-plus/typescript-sub002/internal/token"
)

// Constructors for synthesized nodes. Synthesized nodes carry a SYNTHETIC token
// without a source position.

func NewIdentifier(name string) *Identifier {
	return &Identifier{Token: token.Synthetic(name), Value: name}
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{Token: token.Synthetic(Quote(value)), Value: value}
}

func NewNumericLiteral(value float64) *NumericLiteral {
	text := strconv.FormatFloat(value, 'f', -1, 64)
	return &NumericLiteral{Token: token.Synthetic(text), Value: text}
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{Token: token.Synthetic(strconv.FormatBool(value)), Value: value}
}

// NewPropertyAccess builds expr.name
func NewPropertyAccess(expr Expression, name string) *PropertyAccessExpression {
	return &PropertyAccessExpression{Token: token.Synthetic(name), Expression: expr, Name: NewIdentifier(name)}
}

// NewCall builds callee(args...)
func NewCall(callee Expression, args ...Expression) *CallExpression {
	return &CallExpression{Token: token.Synthetic("("), Callee: callee, Arguments: args}
}

// NewArrow builds (params...) => expr
func NewArrow(params []*Identifier, expr Expression) *ArrowFunction {
	return &ArrowFunction{Token: token.Synthetic("=>"), Parameters: NewParameters(params...), Expression: expr}
}

// NewArrowBlock builds (params...) => { stmts }
func NewArrowBlock(params []*Identifier, stmts ...Statement) *ArrowFunction {
	return &ArrowFunction{Token: token.Synthetic("=>"), Parameters: NewParameters(params...), Body: NewBlock(stmts...)}
}

// NewThunk builds () => expr
func NewThunk(expr Expression) *ArrowFunction {
	return NewArrow(nil, expr)
}

// NewImmediatelyInvoked builds (() => { stmts })()
func NewImmediatelyInvoked(stmts ...Statement) *CallExpression {
	return NewCall(NewArrowBlock(nil, stmts...))
}

func NewParameters(names ...*Identifier) []*Parameter {
	params := make([]*Parameter, 0, len(names))
	for _, name := range names {
		params = append(params, &Parameter{Token: name.Token, Name: name})
	}
	return params
}

func NewBlock(stmts ...Statement) *BlockStatement {
	return &BlockStatement{Token: token.Synthetic("{"), Statements: stmts}
}

func NewReturn(value Expression) *ReturnStatement {
	return &ReturnStatement{Token: token.Synthetic("return"), Value: value}
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{Token: token.Synthetic(""), Expression: expr}
}

// NewVoidZero builds void 0
func NewVoidZero() *VoidExpression {
	return &VoidExpression{Token: token.Synthetic("void"), Expression: NewNumericLiteral(0)}
}

// NewConst builds [export] const name = init
func NewConst(name *Identifier, init Expression, exported bool) *VariableStatement {
	return &VariableStatement{
		Token:    token.Synthetic("const"),
		Exported: exported,
		Kind:     Const,
		Declarations: []*VariableDeclaration{
			{Token: name.Token, Name: name, Initializer: init},
		},
	}
}

// NewNamespaceImport builds import * as alias from "path"
func NewNamespaceImport(alias *Identifier, path string) *ImportDeclaration {
	return &ImportDeclaration{Token: token.Synthetic("import"), Namespace: alias, Module: NewStringLiteral(path)}
}

// NewExportAs builds export { local as name }
func NewExportAs(local *Identifier, name string) *ExportDeclaration {
	return &ExportDeclaration{Token: token.Synthetic("export"), Named: []*ImportSpecifier{{Name: local, Alias: NewIdentifier(name)}}}
}

// NewThrowError builds throw new Error(message)
func NewThrowError(message string) *ThrowStatement {
	return &ThrowStatement{
		Token: token.Synthetic("throw"),
		Value: &NewExpression{
			Token:     token.Synthetic("new"),
			Callee:    NewIdentifier("Error"),
			Arguments: []Expression{NewStringLiteral(message)},
		},
	}
}

// NewObject builds { props... }
func NewObject(props ...ObjectMember) *ObjectLiteral {
	return &ObjectLiteral{Token: token.Synthetic("{"), Properties: props}
}

// NewPropertyAssignment builds "key": value with a quoted key.
func NewPropertyAssignment(key string, value Expression) *PropertyAssignment {
	return &PropertyAssignment{Token: token.Synthetic(key), Key: NewStringLiteral(key), Value: value}
}

func NewSpreadAssignment(expr Expression) *SpreadAssignment {
	return &SpreadAssignment{Token: token.Synthetic("..."), Expression: expr}
}

func NewArray(elems ...Expression) *ArrayLiteral {
	return &ArrayLiteral{Token: token.Synthetic("["), Elements: elems}
}

func NewBinary(left Expression, op string, right Expression) *BinaryExpression {
	return &BinaryExpression{Token: token.Synthetic(op), Left: left, Operator: op, Right: right}
}
