package transform

import (
	"math"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/config"
	"github.com/ts-plus/typescript-sub002/internal/diagnostics"
	"github.com/ts-plus/typescript-sub002/internal/token"
)

// infiniteRefs is the count of imports that are never collected.
const infiniteRefs = math.MaxInt32

type importEntry struct {
	path        string
	alias       *ast.Identifier
	refs        int
	preexisting bool
}

// ImportLedger tracks the namespace imports a file needs. Every Get is one
// reference from the rewritten tree; Remove retracts one when the referencing
// code is optimized away. Entries whose count drops to zero are not emitted.
type ImportLedger struct {
	names   *NameGenerator
	entries *linkedhashmap.Map // path -> *importEntry, first insertion order
	aliases map[*ast.Identifier]string
	retired map[*ast.Identifier]string
}

func NewImportLedger(names *NameGenerator) *ImportLedger {
	return &ImportLedger{
		names:   names,
		entries: linkedhashmap.New(),
		aliases: make(map[*ast.Identifier]string),
		retired: make(map[*ast.Identifier]string),
	}
}

func (l *ImportLedger) entry(path string) *importEntry {
	if v, ok := l.entries.Get(path); ok {
		return v.(*importEntry)
	}
	return nil
}

// Get returns the namespace alias for path and counts one more reference.
func (l *ImportLedger) Get(path string) *ast.Identifier {
	if e := l.entry(path); e != nil {
		if e.refs != infiniteRefs {
			e.refs++
		}
		return e.alias
	}
	alias := l.names.Next(config.ImportAliasBase)
	l.entries.Put(path, &importEntry{path: path, alias: alias, refs: 1})
	l.aliases[alias] = path
	tracer().Debugf("import %q as %s", path, alias.Value)
	return alias
}

// Add registers an import * as id from "path" already present in the file.
// It is reused by Get and never emitted or collected.
func (l *ImportLedger) Add(id *ast.Identifier, path string) {
	if e := l.entry(path); e != nil {
		if e.preexisting {
			return
		}
		delete(l.aliases, e.alias)
	}
	l.entries.Put(path, &importEntry{path: path, alias: id, refs: infiniteRefs, preexisting: true})
	l.aliases[id] = path
}

// Remove retracts one reference to path. Removing a path that is not in the
// ledger does nothing.
func (l *ImportLedger) Remove(path string) {
	e := l.entry(path)
	if e == nil || e.refs == infiniteRefs {
		return
	}
	e.refs--
	if e.refs == 0 {
		l.entries.Remove(path)
		delete(l.aliases, e.alias)
		l.retired[e.alias] = path
		tracer().Debugf("import %q retracted", path)
	}
}

// Retract removes one reference for every ledger alias occurring in dead, a
// subtree that was dropped from the output. An alias whose import was already
// collected is a double retraction and reported as an invariant violation.
func (l *ImportLedger) Retract(dead ast.Node) *diagnostics.DiagnosticError {
	var err *diagnostics.DiagnosticError
	ast.Inspect(dead, func(n ast.Node) bool {
		id, ok := n.(*ast.Identifier)
		if !ok || id == nil {
			return true
		}
		if path, ok := l.aliases[id]; ok {
			l.Remove(path)
		} else if path, ok := l.retired[id]; ok && err == nil {
			err = diagnostics.NewInvariantError(diagnostics.ErrT004, token.Token{},
				"import "+path+" retracted below zero")
		}
		return true
	})
	return err
}

// RefCount returns the current count of path, zero if it is not in the ledger.
func (l *ImportLedger) RefCount(path string) int {
	if e := l.entry(path); e != nil {
		return e.refs
	}
	return 0
}

// Paths lists the paths that will be imported, in first insertion order.
func (l *ImportLedger) Paths() []string {
	var paths []string
	l.entries.Each(func(_ interface{}, v interface{}) {
		if e := v.(*importEntry); !e.preexisting {
			paths = append(paths, e.path)
		}
	})
	return paths
}

// Statements builds the import declarations to prepend to the file.
func (l *ImportLedger) Statements() []ast.Statement {
	var stmts []ast.Statement
	l.entries.Each(func(_ interface{}, v interface{}) {
		if e := v.(*importEntry); !e.preexisting {
			stmts = append(stmts, ast.NewNamespaceImport(e.alias, e.path))
		}
	})
	return stmts
}
