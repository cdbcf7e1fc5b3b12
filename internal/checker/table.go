package checker

import (
	"github.com/ts-plus/typescript-sub002/internal/ast"
)

// Table is a Resolver backed by maps. A checker adapter (or a test) records the
// facts for the nodes of one compilation and hands the table to the transformer.
type Table struct {
	signatures     map[ast.Node]*Signature
	fluentCalls    map[*ast.CallExpression]bool
	callExtensions map[*ast.CallExpression]*Signature
	callSignatures map[*ast.CallExpression]*CallSignature
	macros         map[ast.Node]string
	derivations    map[ast.Node]Derivation
	lazy           map[ast.Expression]bool
	dataFirst      map[*ast.CallExpression]*Target
	doBlocks       map[*ast.CallExpression]*DoBlock
	doBinds        map[*ast.CallExpression]bool
	globals        map[*ast.Identifier]*GlobalImport
	uniqueBindings map[ast.Node][]*Declaration
}

func NewTable() *Table {
	return &Table{
		signatures:     make(map[ast.Node]*Signature),
		fluentCalls:    make(map[*ast.CallExpression]bool),
		callExtensions: make(map[*ast.CallExpression]*Signature),
		callSignatures: make(map[*ast.CallExpression]*CallSignature),
		macros:         make(map[ast.Node]string),
		derivations:    make(map[ast.Node]Derivation),
		lazy:           make(map[ast.Expression]bool),
		dataFirst:      make(map[*ast.CallExpression]*Target),
		doBlocks:       make(map[*ast.CallExpression]*DoBlock),
		doBinds:        make(map[*ast.CallExpression]bool),
		globals:        make(map[*ast.Identifier]*GlobalImport),
		uniqueBindings: make(map[ast.Node][]*Declaration),
	}
}

// Macro names recognized by the pass.
const (
	MacroPipe     = "pipe"
	MacroIdentity = "identity"
	MacroRemove   = "remove"
	MacroDerive   = "Derive"
)

// --- Recording ---

// SetSignature records the extension behind node. Fluent signatures on calls
// also mark the call as fluent.
func (t *Table) SetSignature(node ast.Node, sig *Signature) *Table {
	t.signatures[node] = sig
	if call, ok := node.(*ast.CallExpression); ok && sig.Kind == Fluent {
		t.fluentCalls[call] = true
	}
	return t
}

// MarkFluent flags call as fluent without recording a signature.
func (t *Table) MarkFluent(call *ast.CallExpression) *Table {
	t.fluentCalls[call] = true
	return t
}

func (t *Table) SetCallExtension(call *ast.CallExpression, sig *Signature) *Table {
	t.callExtensions[call] = sig
	return t
}

func (t *Table) SetCallSignature(call *ast.CallExpression, sig *CallSignature) *Table {
	t.callSignatures[call] = sig
	return t
}

// SetMacro records node as an invocation of one of the fixed macros.
func (t *Table) SetMacro(node ast.Node, macro string) *Table {
	t.macros[node] = macro
	return t
}

func (t *Table) SetDerivation(node ast.Node, d Derivation) *Table {
	t.derivations[node] = d
	return t
}

func (t *Table) SetLazy(expr ast.Expression) *Table {
	t.lazy[expr] = true
	return t
}

func (t *Table) SetDataFirst(call *ast.CallExpression, target *Target) *Table {
	t.dataFirst[call] = target
	return t
}

func (t *Table) SetDoBlock(call *ast.CallExpression, block *DoBlock) *Table {
	t.doBlocks[call] = block
	return t
}

func (t *Table) SetDoBind(call *ast.CallExpression) *Table {
	t.doBinds[call] = true
	return t
}

func (t *Table) SetGlobalImport(id *ast.Identifier, g *GlobalImport) *Table {
	t.globals[id] = g
	return t
}

func (t *Table) AddUniqueBinding(scope ast.Node, decl *Declaration) *Table {
	t.uniqueBindings[scope] = append(t.uniqueBindings[scope], decl)
	return t
}

// --- Resolver ---

func (t *Table) ResolvedSignature(node ast.Node) *Signature {
	return t.signatures[node]
}

func (t *Table) IsFluentCall(call *ast.CallExpression) bool {
	return t.fluentCalls[call]
}

func (t *Table) CallExtension(call *ast.CallExpression) *Signature {
	return t.callExtensions[call]
}

func (t *Table) CallSignature(call *ast.CallExpression) *CallSignature {
	return t.callSignatures[call]
}

func (t *Table) IsPipeMacroCall(node ast.Node) bool {
	return t.macros[node] == MacroPipe
}

func (t *Table) IsIdentityMacroCall(node ast.Node) bool {
	return t.macros[node] == MacroIdentity
}

func (t *Table) IsRemoveMacroCall(call *ast.CallExpression) bool {
	return t.macros[call] == MacroRemove
}

func (t *Table) IsDeriveMacroCall(call *ast.CallExpression) bool {
	return t.macros[call] == MacroDerive
}

func (t *Table) DerivationFor(node ast.Node) Derivation {
	return t.derivations[node]
}

func (t *Table) LazyFlag(node ast.Expression) bool {
	return t.lazy[node]
}

func (t *Table) OptimizedDataFirstTarget(call *ast.CallExpression) *Target {
	return t.dataFirst[call]
}

func (t *Table) DoBlock(call *ast.CallExpression) *DoBlock {
	return t.doBlocks[call]
}

func (t *Table) IsDoBind(call *ast.CallExpression) bool {
	return t.doBinds[call]
}

func (t *Table) GlobalImport(id *ast.Identifier) *GlobalImport {
	return t.globals[id]
}

func (t *Table) UniqueBindings(scope ast.Node) []*Declaration {
	return t.uniqueBindings[scope]
}

var _ Resolver = (*Table)(nil)
