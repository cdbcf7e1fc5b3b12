package ast

import (
	"github.com/ts-plus/typescript-sub002/internal/token"
)

// PropertyAccessExpression represents dot access, e.g. obj.name or obj?.name
type PropertyAccessExpression struct {
	Token       token.Token // The name token
	Expression  Expression
	Name        *Identifier
	QuestionDot bool
}

func (pa *PropertyAccessExpression) Accept(v Visitor)      { v.VisitPropertyAccessExpression(pa) }
func (pa *PropertyAccessExpression) expressionNode()       {}
func (pa *PropertyAccessExpression) TokenLiteral() string  { return pa.Token.Lexeme }
func (pa *PropertyAccessExpression) GetToken() token.Token { return pa.Token }

// ElementAccessExpression represents indexing, e.g. arr[i]
type ElementAccessExpression struct {
	Token      token.Token // The '[' token
	Expression Expression
	Argument   Expression
}

func (ea *ElementAccessExpression) Accept(v Visitor)      { v.VisitElementAccessExpression(ea) }
func (ea *ElementAccessExpression) expressionNode()       {}
func (ea *ElementAccessExpression) TokenLiteral() string  { return ea.Token.Lexeme }
func (ea *ElementAccessExpression) GetToken() token.Token { return ea.Token }

// CallExpression represents a call, e.g. f<A>(x, ...rest)
type CallExpression struct {
	Token         token.Token // The '(' token, or the callee's name token
	Callee        Expression
	TypeArguments []TypeNode
	Arguments     []Expression
}

func (ce *CallExpression) Accept(v Visitor)      { v.VisitCallExpression(ce) }
func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }

// NewExpression represents a constructor call, e.g. new Error("x")
type NewExpression struct {
	Token         token.Token // The 'new' token
	Callee        Expression
	TypeArguments []TypeNode
	Arguments     []Expression
}

func (ne *NewExpression) Accept(v Visitor)      { v.VisitNewExpression(ne) }
func (ne *NewExpression) expressionNode()       {}
func (ne *NewExpression) TokenLiteral() string  { return ne.Token.Lexeme }
func (ne *NewExpression) GetToken() token.Token { return ne.Token }

// BinaryExpression represents an infix operation, e.g. a + b
type BinaryExpression struct {
	Token    token.Token // The operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpression) Accept(v Visitor)      { v.VisitBinaryExpression(be) }
func (be *BinaryExpression) expressionNode()       {}
func (be *BinaryExpression) TokenLiteral() string  { return be.Token.Lexeme }
func (be *BinaryExpression) GetToken() token.Token { return be.Token }

// PrefixUnaryExpression represents a prefix operation, e.g. -5 or !ok
type PrefixUnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (pu *PrefixUnaryExpression) Accept(v Visitor)      { v.VisitPrefixUnaryExpression(pu) }
func (pu *PrefixUnaryExpression) expressionNode()       {}
func (pu *PrefixUnaryExpression) TokenLiteral() string  { return pu.Token.Lexeme }
func (pu *PrefixUnaryExpression) GetToken() token.Token { return pu.Token }

// ConditionalExpression represents cond ? a : b
type ConditionalExpression struct {
	Token     token.Token // The '?' token
	Condition Expression
	WhenTrue  Expression
	WhenFalse Expression
}

func (ce *ConditionalExpression) Accept(v Visitor)      { v.VisitConditionalExpression(ce) }
func (ce *ConditionalExpression) expressionNode()       {}
func (ce *ConditionalExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *ConditionalExpression) GetToken() token.Token { return ce.Token }

// ParenthesizedExpression represents (expr) as written in the source.
type ParenthesizedExpression struct {
	Token      token.Token
	Expression Expression
}

func (pe *ParenthesizedExpression) Accept(v Visitor)      { v.VisitParenthesizedExpression(pe) }
func (pe *ParenthesizedExpression) expressionNode()       {}
func (pe *ParenthesizedExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *ParenthesizedExpression) GetToken() token.Token { return pe.Token }

// VoidExpression represents void expr
type VoidExpression struct {
	Token      token.Token
	Expression Expression
}

func (ve *VoidExpression) Accept(v Visitor)      { v.VisitVoidExpression(ve) }
func (ve *VoidExpression) expressionNode()       {}
func (ve *VoidExpression) TokenLiteral() string  { return ve.Token.Lexeme }
func (ve *VoidExpression) GetToken() token.Token { return ve.Token }

// SpreadElement represents ...expr in an argument list or array literal.
type SpreadElement struct {
	Token      token.Token
	Expression Expression
}

func (se *SpreadElement) Accept(v Visitor)      { v.VisitSpreadElement(se) }
func (se *SpreadElement) expressionNode()       {}
func (se *SpreadElement) TokenLiteral() string  { return se.Token.Lexeme }
func (se *SpreadElement) GetToken() token.Token { return se.Token }

// ArrayLiteral represents [a, b, c]
type ArrayLiteral struct {
	Token    token.Token // The '[' token
	Elements []Expression
}

func (al *ArrayLiteral) Accept(v Visitor)      { v.VisitArrayLiteral(al) }
func (al *ArrayLiteral) expressionNode()       {}
func (al *ArrayLiteral) TokenLiteral() string  { return al.Token.Lexeme }
func (al *ArrayLiteral) GetToken() token.Token { return al.Token }

// ObjectMember is a property of an object literal.
type ObjectMember interface {
	Node
	objectMember()
}

// ObjectLiteral represents { key: value, ...spread }. Member order is kept.
type ObjectLiteral struct {
	Token      token.Token // The '{' token
	Properties []ObjectMember
}

func (ol *ObjectLiteral) Accept(v Visitor)      { v.VisitObjectLiteral(ol) }
func (ol *ObjectLiteral) expressionNode()       {}
func (ol *ObjectLiteral) TokenLiteral() string  { return ol.Token.Lexeme }
func (ol *ObjectLiteral) GetToken() token.Token { return ol.Token }

// PropertyAssignment is key: value. Key is an *Identifier, *StringLiteral or *NumericLiteral.
type PropertyAssignment struct {
	Token token.Token
	Key   Expression
	Value Expression
}

func (pa *PropertyAssignment) Accept(v Visitor)      { v.VisitPropertyAssignment(pa) }
func (pa *PropertyAssignment) objectMember()         {}
func (pa *PropertyAssignment) TokenLiteral() string  { return pa.Token.Lexeme }
func (pa *PropertyAssignment) GetToken() token.Token { return pa.Token }

// ShorthandPropertyAssignment is { name }.
type ShorthandPropertyAssignment struct {
	Token token.Token
	Name  *Identifier
}

func (sp *ShorthandPropertyAssignment) Accept(v Visitor)      { v.VisitShorthandPropertyAssignment(sp) }
func (sp *ShorthandPropertyAssignment) objectMember()         {}
func (sp *ShorthandPropertyAssignment) TokenLiteral() string  { return sp.Token.Lexeme }
func (sp *ShorthandPropertyAssignment) GetToken() token.Token { return sp.Token }

// SpreadAssignment is { ...expr }.
type SpreadAssignment struct {
	Token      token.Token
	Expression Expression
}

func (sa *SpreadAssignment) Accept(v Visitor)      { v.VisitSpreadAssignment(sa) }
func (sa *SpreadAssignment) objectMember()         {}
func (sa *SpreadAssignment) TokenLiteral() string  { return sa.Token.Lexeme }
func (sa *SpreadAssignment) GetToken() token.Token { return sa.Token }

// Parameter is a function parameter.
type Parameter struct {
	Token       token.Token
	Name        *Identifier
	Type        TypeNode // Optional
	Optional    bool
	Rest        bool
	Initializer Expression // Optional default value
}

func (p *Parameter) Accept(v Visitor)      { v.VisitParameter(p) }
func (p *Parameter) TokenLiteral() string  { return p.Token.Lexeme }
func (p *Parameter) GetToken() token.Token { return p.Token }

// ArrowFunction represents (params) => body. Exactly one of Body and
// Expression is set: a block body or a concise expression body.
type ArrowFunction struct {
	Token      token.Token // The '=>' token
	Parameters []*Parameter
	Body       *BlockStatement
	Expression Expression
}

func (af *ArrowFunction) Accept(v Visitor)      { v.VisitArrowFunction(af) }
func (af *ArrowFunction) expressionNode()       {}
func (af *ArrowFunction) TokenLiteral() string  { return af.Token.Lexeme }
func (af *ArrowFunction) GetToken() token.Token { return af.Token }

// FunctionExpression represents function name(params) { body }
type FunctionExpression struct {
	Token      token.Token // The 'function' token
	Name       *Identifier // Optional
	Parameters []*Parameter
	Body       *BlockStatement
}

func (fe *FunctionExpression) Accept(v Visitor)      { v.VisitFunctionExpression(fe) }
func (fe *FunctionExpression) expressionNode()       {}
func (fe *FunctionExpression) TokenLiteral() string  { return fe.Token.Lexeme }
func (fe *FunctionExpression) GetToken() token.Token { return fe.Token }
