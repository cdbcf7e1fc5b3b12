package transform

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/checker"
	"github.com/ts-plus/typescript-sub002/internal/config"
)

// NameGenerator hands out identifiers of the form base_N that occur nowhere
// else in the file.
type NameGenerator struct {
	taken    *hashset.Set
	counters map[string]int
}

func NewNameGenerator() *NameGenerator {
	return &NameGenerator{taken: hashset.New(), counters: make(map[string]int)}
}

// Reserve marks every identifier below node as taken.
func (g *NameGenerator) Reserve(node ast.Node) {
	ast.Inspect(node, func(n ast.Node) bool {
		if id, ok := n.(*ast.Identifier); ok && id != nil {
			g.taken.Add(id.Value)
		}
		return true
	})
}

// Next returns a fresh identifier derived from base.
func (g *NameGenerator) Next(base string) *ast.Identifier {
	for {
		g.counters[base]++
		name := fmt.Sprintf("%s_%d", base, g.counters[base])
		if !g.taken.Contains(name) {
			g.taken.Add(name)
			return ast.NewIdentifier(name)
		}
	}
}

// Alias is the private local binding a file-level declaration is referenced by.
type Alias struct {
	Identifier *ast.Identifier
	Exported   bool
}

// UniqueNames caches the synthesized names of the current file: one identifier
// per derivation node, and one alias per file-level name.
type UniqueNames struct {
	names       *NameGenerator
	derivations map[checker.Derivation]*ast.Identifier
	aliases     map[string]*Alias
}

func NewUniqueNames() *UniqueNames {
	return &UniqueNames{
		derivations: make(map[checker.Derivation]*ast.Identifier),
		aliases:     make(map[string]*Alias),
	}
}

// beginFile switches name generation to the generator of the next file.
// Derivation names came from the previous generator and are dropped with it.
func (u *UniqueNames) beginFile(names *NameGenerator) {
	u.names = names
	clear(u.derivations)
	u.ResetFile()
}

// DerivationName returns the identifier bound to d, allocating it on first
// use. Nodes are told apart by identity, never by structure.
func (u *UniqueNames) DerivationName(d checker.Derivation) *ast.Identifier {
	if id, ok := u.derivations[d]; ok {
		return id
	}
	id := u.names.Next(config.DerivationVarBase)
	u.derivations[d] = id
	return id
}

// LookupDerivation returns the identifier already bound to d.
func (u *UniqueNames) LookupDerivation(d checker.Derivation) (*ast.Identifier, bool) {
	id, ok := u.derivations[d]
	return id, ok
}

// ExportAlias returns the alias for the file-level name. The first call for a
// name decides whether the original declaration is exported.
func (u *UniqueNames) ExportAlias(name string, exported bool) *Alias {
	if a, ok := u.aliases[name]; ok {
		return a
	}
	a := &Alias{Identifier: u.names.Next(name), Exported: exported}
	u.aliases[name] = a
	return a
}

func (u *UniqueNames) HasAlias(name string) bool {
	_, ok := u.aliases[name]
	return ok
}

// Aliases returns a copy of the aliases allocated for the current file.
func (u *UniqueNames) Aliases() map[string]*Alias {
	out := make(map[string]*Alias, len(u.aliases))
	for k, v := range u.aliases {
		out[k] = v
	}
	return out
}

// ResetFile forgets the aliases of the current file. Derivation names stay
// until the next file begins.
func (u *UniqueNames) ResetFile() {
	clear(u.aliases)
}
