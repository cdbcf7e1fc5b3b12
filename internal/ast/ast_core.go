// Package ast defines the TypeScript syntax tree rewritten by the transformation pass.
//
// Only the shapes the pass inspects or produces are modelled. Nodes are
// mutable: the transformer rewrites a file in place and a node that is kept keeps
// its identity.
package ast

import (
	"github.com/ts-plus/typescript-sub002/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
	GetToken() token.Token
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
}

// SourceFile is the root of every tree.
type SourceFile struct {
	FileName   string
	Statements []Statement
}

func (sf *SourceFile) Accept(v Visitor) { v.VisitSourceFile(sf) }
func (sf *SourceFile) TokenLiteral() string {
	if len(sf.Statements) > 0 {
		return sf.Statements[0].TokenLiteral()
	}
	return ""
}
func (sf *SourceFile) GetToken() token.Token { return token.Token{} }

// Identifier represents a name in expression or binding position.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) Accept(v Visitor)     { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// NumericLiteral keeps the literal text as written, e.g. 1, 0.5, 1e3.
type NumericLiteral struct {
	Token token.Token
	Value string
}

func (nl *NumericLiteral) Accept(v Visitor)      { v.VisitNumericLiteral(nl) }
func (nl *NumericLiteral) expressionNode()       {}
func (nl *NumericLiteral) TokenLiteral() string  { return nl.Token.Lexeme }
func (nl *NumericLiteral) GetToken() token.Token { return nl.Token }

// StringLiteral represents a string, e.g. "hello". Value is unquoted.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(sl) }
func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }

// BooleanLiteral represents true/false.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) Accept(v Visitor)      { v.VisitBooleanLiteral(b) }
func (b *BooleanLiteral) expressionNode()       {}
func (b *BooleanLiteral) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BooleanLiteral) GetToken() token.Token { return b.Token }

// ThisExpression is the `this` keyword.
type ThisExpression struct {
	Token token.Token
}

func (te *ThisExpression) Accept(v Visitor)      { v.VisitThisExpression(te) }
func (te *ThisExpression) expressionNode()       {}
func (te *ThisExpression) TokenLiteral() string  { return te.Token.Lexeme }
func (te *ThisExpression) GetToken() token.Token { return te.Token }

// SuperExpression is the `super` keyword, only valid as a callee or member object.
type SuperExpression struct {
	Token token.Token
}

func (se *SuperExpression) Accept(v Visitor)      { v.VisitSuperExpression(se) }
func (se *SuperExpression) expressionNode()       {}
func (se *SuperExpression) TokenLiteral() string  { return se.Token.Lexeme }
func (se *SuperExpression) GetToken() token.Token { return se.Token }
