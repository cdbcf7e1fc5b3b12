package transform

import (
	"path/filepath"

	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/checker"
	"github.com/ts-plus/typescript-sub002/internal/config"
	"github.com/ts-plus/typescript-sub002/internal/diagnostics"
)

// Transformer runs the pass over the files of one compilation. It is not safe
// for concurrent use: files are processed one after the other.
type Transformer struct {
	resolver checker.Resolver
	config   *config.Config
	unique   *UniqueNames
}

// New creates a Transformer reading facts from resolver. cfg may be nil, in
// which case every cross-file reference needs a location on its declaration.
func New(resolver checker.Resolver, cfg *config.Config) *Transformer {
	return &Transformer{
		resolver: resolver,
		config:   cfg,
		unique:   NewUniqueNames(),
	}
}

// UniqueNames exposes the name caches of the compilation.
func (t *Transformer) UniqueNames() *UniqueNames {
	return t.unique
}

// hoist is a pinned copy `const id = decl.Name` of a declaration that nested
// derivations reference.
type hoist struct {
	decl *checker.Declaration
	id   *ast.Identifier
}

// fileContext is the state of one file while it is rewritten. It never
// outlives the call to TransformFile.
type fileContext struct {
	*Transformer

	file     *ast.SourceFile
	fileName string
	names    *NameGenerator
	imports  *ImportLedger

	// traceVar is the lazily created const holding the trace name of the file.
	traceVar *ast.Identifier
	// functions is the stack of enclosing function-likes; each entry is the
	// trace parameter of that function or nil.
	functions []*ast.Identifier

	blockNames map[*checker.Declaration]*ast.Identifier
	hoists     map[ast.Node][]hoist

	errors []*diagnostics.DiagnosticError
}

func (t *Transformer) newFileContext(file *ast.SourceFile) *fileContext {
	names := NewNameGenerator()
	names.Reserve(file)
	t.unique.beginFile(names)
	return &fileContext{
		Transformer: t,
		file:        file,
		fileName:    file.FileName,
		names:       names,
		imports:     NewImportLedger(names),
		blockNames:  make(map[*checker.Declaration]*ast.Identifier),
		hoists:      make(map[ast.Node][]hoist),
	}
}

// fail records err; any recorded error discards the rewritten file.
func (c *fileContext) fail(err *diagnostics.DiagnosticError) {
	if err == nil {
		return
	}
	if err.File == "" {
		err.WithFile(c.fileName)
	}
	tracer().Errorf("%s", err.Error())
	c.errors = append(c.errors, err)
}

func (c *fileContext) failed() bool {
	return len(c.errors) > 0
}

// isCurrentFile reports whether file is the file being rewritten.
func (c *fileContext) isCurrentFile(file string) bool {
	return filepath.Clean(file) == filepath.Clean(c.fileName)
}

// retract releases the imports held by a subtree dropped from the output.
func (c *fileContext) retract(dead ast.Node) {
	c.fail(c.imports.Retract(dead))
}

func (c *fileContext) pushFunction(params []*ast.Parameter) {
	var trace *ast.Identifier
	if n := len(params); n > 0 && params[n-1].Name != nil && params[n-1].Name.Value == config.TraceParameterName {
		trace = params[n-1].Name
	}
	c.functions = append(c.functions, trace)
}

func (c *fileContext) popFunction() {
	c.functions = c.functions[:len(c.functions)-1]
}

// traceInScope returns the trace parameter of the nearest enclosing function
// that declares one, or nil.
func (c *fileContext) traceInScope() *ast.Identifier {
	for i := len(c.functions) - 1; i >= 0; i-- {
		if c.functions[i] != nil {
			return c.functions[i]
		}
	}
	return nil
}
