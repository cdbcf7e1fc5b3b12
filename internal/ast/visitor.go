package ast

// Visitor is implemented by anything that walks the tree with double dispatch,
// e.g. the code printer.
type Visitor interface {
	VisitSourceFile(n *SourceFile)

	// Statements
	VisitBlockStatement(n *BlockStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitThrowStatement(n *ThrowStatement)
	VisitIfStatement(n *IfStatement)
	VisitVariableStatement(n *VariableStatement)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitClassDeclaration(n *ClassDeclaration)
	VisitConstructorDeclaration(n *ConstructorDeclaration)
	VisitMethodDeclaration(n *MethodDeclaration)
	VisitPropertyDeclaration(n *PropertyDeclaration)
	VisitImportDeclaration(n *ImportDeclaration)
	VisitExportDeclaration(n *ExportDeclaration)

	// Expressions
	VisitIdentifier(n *Identifier)
	VisitNumericLiteral(n *NumericLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitThisExpression(n *ThisExpression)
	VisitSuperExpression(n *SuperExpression)
	VisitPropertyAccessExpression(n *PropertyAccessExpression)
	VisitElementAccessExpression(n *ElementAccessExpression)
	VisitCallExpression(n *CallExpression)
	VisitNewExpression(n *NewExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitPrefixUnaryExpression(n *PrefixUnaryExpression)
	VisitConditionalExpression(n *ConditionalExpression)
	VisitParenthesizedExpression(n *ParenthesizedExpression)
	VisitVoidExpression(n *VoidExpression)
	VisitSpreadElement(n *SpreadElement)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitObjectLiteral(n *ObjectLiteral)
	VisitPropertyAssignment(n *PropertyAssignment)
	VisitShorthandPropertyAssignment(n *ShorthandPropertyAssignment)
	VisitSpreadAssignment(n *SpreadAssignment)
	VisitParameter(n *Parameter)
	VisitArrowFunction(n *ArrowFunction)
	VisitFunctionExpression(n *FunctionExpression)

	// Types
	VisitTypeReference(n *TypeReference)
}
