package transform

import (
	"fmt"

	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/checker"
	"github.com/ts-plus/typescript-sub002/internal/config"
	"github.com/ts-plus/typescript-sub002/internal/diagnostics"
	"github.com/ts-plus/typescript-sub002/internal/token"
)

// importPath returns the module path decl is imported from: the location on
// the declaration, else the first matching moduleMap rule.
func (c *fileContext) importPath(decl *checker.Declaration, tok token.Token) (string, bool) {
	if decl.Location != "" {
		return decl.Location, true
	}
	if c.config != nil {
		if path, ok := c.config.ImportPath(decl.File); ok {
			return path, true
		}
	}
	c.fail(diagnostics.NewError(diagnostics.ErrT001, tok, decl.File))
	return "", false
}

// reference builds the expression that names exportName of decl from the
// current file. Declarations of the current file are referenced through their
// export alias; others through the namespace import of their module.
func (c *fileContext) reference(decl *checker.Declaration, exportName string, tok token.Token) ast.Expression {
	if decl == nil {
		return ast.NewIdentifier(exportName)
	}
	if c.isCurrentFile(decl.File) {
		if !decl.Kind.IsNamed() {
			return ast.NewIdentifier(exportName)
		}
		return c.unique.ExportAlias(exportName, decl.Exported).Identifier
	}
	path, ok := c.importPath(decl, tok)
	if !ok {
		return ast.NewIdentifier(exportName)
	}
	return ast.NewPropertyAccess(c.imports.Get(path), exportName)
}

func (c *fileContext) declarationReference(decl *checker.Declaration, tok token.Token) ast.Expression {
	if decl == nil {
		return notImplemented()
	}
	return c.reference(decl, decl.Name, tok)
}

func (c *fileContext) extensionReference(sig *checker.Signature, tok token.Token) ast.Expression {
	name := sig.ExportName
	if name == "" && sig.Declaration != nil {
		name = sig.Declaration.Name
	}
	return c.reference(sig.Declaration, name, tok)
}

func (c *fileContext) targetReference(target *checker.Target, tok token.Token) ast.Expression {
	return c.reference(target.Declaration, target.ExportName, tok)
}

// operatorDeclaration finds the declaration that carries the export name of an
// operator extension: the declaration itself, or its named parent or
// grandparent (an arrow function assigned to a const, a curried call, ...).
func operatorDeclaration(decl *checker.Declaration) (*checker.Declaration, bool) {
	for level := 0; decl != nil && level <= 2; level++ {
		if decl.Kind.IsNamed() {
			return decl, true
		}
		decl = decl.Parent
	}
	return nil, false
}

// trace returns the trace argument for a call at tok: the trace parameter in
// scope, else fileName_N + ":line:col".
func (c *fileContext) trace(tok token.Token) ast.Expression {
	if id := c.traceInScope(); id != nil {
		return id
	}
	return ast.NewBinary(c.traceFileVar(), "+", ast.NewStringLiteral(fmt.Sprintf(":%d:%d", tok.Line, tok.Column)))
}

func (c *fileContext) traceFileVar() *ast.Identifier {
	if c.traceVar == nil {
		c.traceVar = c.names.Next(config.FileNameVarBase)
	}
	return c.traceVar
}

// traceName is the file name traces of this file report.
func (c *fileContext) traceName() string {
	if c.config != nil {
		return c.config.TraceName(c.fileName)
	}
	return c.fileName
}
