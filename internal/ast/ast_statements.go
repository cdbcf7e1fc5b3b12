package ast

import (
	"github.com/ts-plus/typescript-sub002/internal/token"
)

// BlockStatement represents a list of statements within curly braces.
type BlockStatement struct {
	Token      token.Token // {
	Statements []Statement
}

func (bs *BlockStatement) Accept(v Visitor)      { v.VisitBlockStatement(bs) }
func (bs *BlockStatement) statementNode()        {}
func (bs *BlockStatement) TokenLiteral() string  { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token { return bs.Token }

// ExpressionStatement is a statement that consists of a single expression.
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) Accept(v Visitor)      { v.VisitExpressionStatement(es) }
func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }

// ReturnStatement represents return or return <expression>.
type ReturnStatement struct {
	Token token.Token // The 'return' token
	Value Expression  // Optional return value
}

func (rs *ReturnStatement) Accept(v Visitor)      { v.VisitReturnStatement(rs) }
func (rs *ReturnStatement) statementNode()        {}
func (rs *ReturnStatement) TokenLiteral() string  { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }

// ThrowStatement represents throw <expression>.
type ThrowStatement struct {
	Token token.Token
	Value Expression
}

func (ts *ThrowStatement) Accept(v Visitor)      { v.VisitThrowStatement(ts) }
func (ts *ThrowStatement) statementNode()        {}
func (ts *ThrowStatement) TokenLiteral() string  { return ts.Token.Lexeme }
func (ts *ThrowStatement) GetToken() token.Token { return ts.Token }

// IfStatement represents if (cond) then else alternative.
type IfStatement struct {
	Token       token.Token
	Condition   Expression
	Consequence Statement
	Alternative Statement // Optional
}

func (is *IfStatement) Accept(v Visitor)      { v.VisitIfStatement(is) }
func (is *IfStatement) statementNode()        {}
func (is *IfStatement) TokenLiteral() string  { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token { return is.Token }

type DeclarationKind int

const (
	Const DeclarationKind = iota
	Let
	Var
)

func (k DeclarationKind) String() string {
	switch k {
	case Let:
		return "let"
	case Var:
		return "var"
	default:
		return "const"
	}
}

// VariableStatement represents [export] const|let|var a = 1, b = 2
type VariableStatement struct {
	Token        token.Token
	Exported     bool
	Kind         DeclarationKind
	Declarations []*VariableDeclaration
}

func (vs *VariableStatement) Accept(v Visitor)      { v.VisitVariableStatement(vs) }
func (vs *VariableStatement) statementNode()        {}
func (vs *VariableStatement) TokenLiteral() string  { return vs.Token.Lexeme }
func (vs *VariableStatement) GetToken() token.Token { return vs.Token }

// VariableDeclaration is a single declarator of a VariableStatement.
type VariableDeclaration struct {
	Token       token.Token // The name token
	Name        *Identifier
	Type        TypeNode // Optional
	Initializer Expression
}

func (vd *VariableDeclaration) Accept(v Visitor)      { v.VisitVariableDeclaration(vd) }
func (vd *VariableDeclaration) TokenLiteral() string  { return vd.Token.Lexeme }
func (vd *VariableDeclaration) GetToken() token.Token { return vd.Token }

// FunctionDeclaration represents [export] function name(params): T { body }
type FunctionDeclaration struct {
	Token      token.Token // The 'function' token
	Exported   bool
	Name       *Identifier
	Parameters []*Parameter
	ReturnType TypeNode // Optional
	Body       *BlockStatement
}

func (fd *FunctionDeclaration) Accept(v Visitor)      { v.VisitFunctionDeclaration(fd) }
func (fd *FunctionDeclaration) statementNode()        {}
func (fd *FunctionDeclaration) TokenLiteral() string  { return fd.Token.Lexeme }
func (fd *FunctionDeclaration) GetToken() token.Token { return fd.Token }

// ClassMember is a member of a class body.
type ClassMember interface {
	Node
	classMember()
}

// ClassDeclaration represents [export] class Name extends Base { members }
type ClassDeclaration struct {
	Token    token.Token // The 'class' token
	Exported bool
	Name     *Identifier
	Extends  Expression // Optional
	Members  []ClassMember
}

func (cd *ClassDeclaration) Accept(v Visitor)      { v.VisitClassDeclaration(cd) }
func (cd *ClassDeclaration) statementNode()        {}
func (cd *ClassDeclaration) TokenLiteral() string  { return cd.Token.Lexeme }
func (cd *ClassDeclaration) GetToken() token.Token { return cd.Token }

// ConstructorDeclaration is constructor(params) { body }
type ConstructorDeclaration struct {
	Token      token.Token
	Parameters []*Parameter
	Body       *BlockStatement
}

func (cd *ConstructorDeclaration) Accept(v Visitor)      { v.VisitConstructorDeclaration(cd) }
func (cd *ConstructorDeclaration) classMember()          {}
func (cd *ConstructorDeclaration) TokenLiteral() string  { return cd.Token.Lexeme }
func (cd *ConstructorDeclaration) GetToken() token.Token { return cd.Token }

// MethodDeclaration is [static] name(params) { body }
type MethodDeclaration struct {
	Token      token.Token
	Static     bool
	Name       *Identifier
	Parameters []*Parameter
	Body       *BlockStatement
}

func (md *MethodDeclaration) Accept(v Visitor)      { v.VisitMethodDeclaration(md) }
func (md *MethodDeclaration) classMember()          {}
func (md *MethodDeclaration) TokenLiteral() string  { return md.Token.Lexeme }
func (md *MethodDeclaration) GetToken() token.Token { return md.Token }

// PropertyDeclaration is [static] name[: T] [= initializer]
type PropertyDeclaration struct {
	Token       token.Token
	Static      bool
	Name        *Identifier
	Type        TypeNode
	Initializer Expression
}

func (pd *PropertyDeclaration) Accept(v Visitor)      { v.VisitPropertyDeclaration(pd) }
func (pd *PropertyDeclaration) classMember()          {}
func (pd *PropertyDeclaration) TokenLiteral() string  { return pd.Token.Lexeme }
func (pd *PropertyDeclaration) GetToken() token.Token { return pd.Token }

// ImportSpecifier is name [as alias] inside import { ... }.
type ImportSpecifier struct {
	Name  *Identifier
	Alias *Identifier // Optional
}

// ImportDeclaration represents one of
//
//	import * as ns from "path"
//	import def, { a, b as c } from "path"
type ImportDeclaration struct {
	Token     token.Token // The 'import' token
	Namespace *Identifier // import * as Namespace
	Default   *Identifier
	Named     []*ImportSpecifier
	Module    *StringLiteral
}

func (id *ImportDeclaration) Accept(v Visitor)      { v.VisitImportDeclaration(id) }
func (id *ImportDeclaration) statementNode()        {}
func (id *ImportDeclaration) TokenLiteral() string  { return id.Token.Lexeme }
func (id *ImportDeclaration) GetToken() token.Token { return id.Token }

// ExportDeclaration represents export { a, b as c }. Specifiers reuse the
// import shape: Name is the local binding, Alias the exported name.
type ExportDeclaration struct {
	Token token.Token // The 'export' token
	Named []*ImportSpecifier
}

func (ed *ExportDeclaration) Accept(v Visitor)      { v.VisitExportDeclaration(ed) }
func (ed *ExportDeclaration) statementNode()        {}
func (ed *ExportDeclaration) TokenLiteral() string  { return ed.Token.Lexeme }
func (ed *ExportDeclaration) GetToken() token.Token { return ed.Token }
