package ast

import (
	"github.com/ts-plus/typescript-sub002/internal/token"
)

// TypeNode is a type annotation. The pass never inspects types; it only carries
// them (type arguments of rewritten calls, parameter annotations) to the output.
type TypeNode interface {
	Node
	typeNode()
}

// TypeReference represents a named type with optional arguments, e.g. Option<A>
type TypeReference struct {
	Token     token.Token
	Name      string
	Arguments []TypeNode
}

func (tr *TypeReference) Accept(v Visitor)      { v.VisitTypeReference(tr) }
func (tr *TypeReference) typeNode()             {}
func (tr *TypeReference) TokenLiteral() string  { return tr.Token.Lexeme }
func (tr *TypeReference) GetToken() token.Token { return tr.Token }
