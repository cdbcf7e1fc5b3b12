package transform

import (
	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/diagnostics"
)

// TransformFile rewrites file. The statements of the result are, in order:
// the trace file name const (if any trace was emitted), the synthesized
// namespace imports, pinned copies of file-level bindings and the rewritten
// statements.
//
// The input tree is rewritten in place and must not be used afterwards. When
// any error is reported the result is nil.
func (t *Transformer) TransformFile(file *ast.SourceFile) (*ast.SourceFile, []*diagnostics.DiagnosticError) {
	c := t.newFileContext(file)
	tracer().Debugf("transforming %s", c.fileName)

	c.collectNamespaceImports()
	c.registerUniqueBindings(file)
	stmts := c.visitStatements(file.Statements)
	stmts, hoisted := c.placeHoists(file, stmts)
	if c.failed() {
		tracer().Infof("%s: %d errors, file left untransformed", c.fileName, len(c.errors))
		return nil, c.errors
	}

	aliases := t.unique.Aliases()
	t.unique.ResetFile()
	stmts, renames := renameDeclarations(stmts, aliases)
	renameReferences(hoisted, renames)
	renameReferences(stmts, renames)

	out := make([]ast.Statement, 0, len(stmts)+len(hoisted)+4)
	if c.traceVar != nil {
		out = append(out, ast.NewConst(c.traceVar, ast.NewStringLiteral(c.traceName()), false))
	}
	out = append(out, c.imports.Statements()...)
	out = append(out, hoisted...)
	out = append(out, stmts...)
	tracer().Debugf("%s: %d imports, %d aliases", c.fileName, len(c.imports.Paths()), len(aliases))
	return &ast.SourceFile{FileName: file.FileName, Statements: out}, nil
}

// collectNamespaceImports registers the file's own import * as X from "p"
// declarations so references to p reuse X.
func (c *fileContext) collectNamespaceImports() {
	for _, stmt := range c.file.Statements {
		if imp, ok := stmt.(*ast.ImportDeclaration); ok && imp.Namespace != nil && imp.Module != nil {
			c.imports.Add(imp.Namespace, imp.Module.Value)
		}
	}
}
