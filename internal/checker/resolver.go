// Package checker describes what the transformation pass needs to know from the
// type checker. The checker itself lives elsewhere; this package holds the
// read-only facts it computes and a map-backed Resolver to carry them.
package checker

import (
	"github.com/ts-plus/typescript-sub002/internal/ast"
)

// DeclarationKind is the syntactic kind of a resolved declaration.
type DeclarationKind int

const (
	FunctionDeclaration DeclarationKind = iota
	VariableDeclaration
	ClassDeclaration
	ArrowFunction
	FunctionExpression
	CallExpression
	OtherDeclaration
)

// IsNamed reports whether a declaration of this kind carries its own export name.
func (k DeclarationKind) IsNamed() bool {
	return k == FunctionDeclaration || k == VariableDeclaration || k == ClassDeclaration
}

// Declaration is a resolved declaration: an extension, a derivation rule or an
// implicit value.
type Declaration struct {
	Name     string
	File     string // path of the declaring source file
	Kind     DeclarationKind
	Exported bool
	// Location is an explicit import path override (a location tag on the declaration).
	Location string
	// Line is the 1-based line of the declaration, used to pin block scoped copies.
	Line int
	// Parent is the enclosing syntactic declaration, e.g. the variable an arrow
	// function is assigned to.
	Parent *Declaration
	// Macro names the fixed macro the declaration implements ("pipe", "identity", ...).
	Macro string
}

// ExtensionKind is the syntactic form an extension is invoked through.
type ExtensionKind int

const (
	Fluent ExtensionKind = iota
	Getter
	Static
	Operator
	Indexer
	Call // __call
)

func (k ExtensionKind) String() string {
	switch k {
	case Fluent:
		return "fluent"
	case Getter:
		return "getter"
	case Static:
		return "static"
	case Operator:
		return "operator"
	case Indexer:
		return "indexer"
	case Call:
		return "call"
	default:
		return "unknown"
	}
}

// Signature is the resolved extension behind a call-like site.
type Signature struct {
	Kind        ExtensionKind
	Declaration *Declaration
	// ExportName is the name to call in the declaring module. Operators derive
	// theirs from Declaration instead.
	ExportName        string
	IsPipeable        bool
	IsFluent          bool
	HasTraceParameter bool
}

// DefinitionFile is the path of the file that declares the extension.
func (s *Signature) DefinitionFile() string {
	if s.Declaration == nil {
		return ""
	}
	return s.Declaration.File
}

// Target is the data-first variant of a curried extension.
type Target struct {
	Declaration *Declaration
	ExportName  string
}

// Parameter is a formal parameter of a resolved call signature.
type Parameter struct {
	Name string
	// Automatic parameters are filled in with Derivation when no argument is given.
	Automatic  bool
	Derivation Derivation
	// Trace marks the trailing trace-carrier parameter.
	Trace bool
}

// CallSignature is the resolved signature of a plain call.
type CallSignature struct {
	Parameters []Parameter
}

// DoBlock holds the map and flatMap extensions resolved for a Do block.
type DoBlock struct {
	Map     *Signature
	FlatMap *Signature
}

// GlobalImport is an identifier bound to a global import.
type GlobalImport struct {
	Path string
	Name string
}

// Resolver exposes the facts computed by the checker, keyed by the nodes of the
// original tree.
type Resolver interface {
	// ResolvedSignature returns the extension behind a call, binary operator,
	// property access or element access, or nil.
	ResolvedSignature(node ast.Node) *Signature
	// IsFluentCall reports whether the checker resolved call as a fluent call.
	IsFluentCall(call *ast.CallExpression) bool
	// CallExtension returns the __call extension a call resolves to, or nil.
	CallExtension(call *ast.CallExpression) *Signature
	CallSignature(call *ast.CallExpression) *CallSignature

	IsPipeMacroCall(node ast.Node) bool
	// IsIdentityMacroCall covers both the call and the getter variant.
	IsIdentityMacroCall(node ast.Node) bool
	IsRemoveMacroCall(call *ast.CallExpression) bool
	IsDeriveMacroCall(call *ast.CallExpression) bool
	DerivationFor(node ast.Node) Derivation

	// LazyFlag reports whether an argument, operand or receiver is thunked.
	LazyFlag(node ast.Expression) bool
	// OptimizedDataFirstTarget returns the data-first variant of a curried call, or nil.
	OptimizedDataFirstTarget(call *ast.CallExpression) *Target

	// DoBlock returns the resolved map/flatMap pair for a Do call, or nil.
	DoBlock(call *ast.CallExpression) *DoBlock
	// IsDoBind reports whether call is a bind call inside a Do block.
	IsDoBind(call *ast.CallExpression) bool

	GlobalImport(id *ast.Identifier) *GlobalImport
	// UniqueBindings lists the declarations that need a pinned copy in scope,
	// where scope is a *ast.BlockStatement or the *ast.SourceFile.
	UniqueBindings(scope ast.Node) []*Declaration
}
