package transform

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/checker"
)

func TestNameGenerator_SkipsNamesInFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()
	g := NewNameGenerator()
	g.Reserve(source("a.ts",
		constStmt("tsplus_module_1", num("1")),
		exprStmt(call(id("tsplus_module_3"))),
	))

	assert.Equal(t, "tsplus_module_2", g.Next("tsplus_module").Value)
	assert.Equal(t, "tsplus_module_4", g.Next("tsplus_module").Value)
	// counters are kept per base
	assert.Equal(t, "fileName_1", g.Next("fileName").Value)
}

func TestUniqueNames_DerivationNameByIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()
	u := NewUniqueNames()
	u.beginFile(NewNameGenerator())

	d1 := &checker.FromLiteral{Value: "x"}
	d2 := &checker.FromLiteral{Value: "x"}

	first := u.DerivationName(d1)
	require.Same(t, first, u.DerivationName(d1))
	other := u.DerivationName(d2)
	assert.NotSame(t, first, other)
	assert.NotEqual(t, first.Value, other.Value)

	got, ok := u.LookupDerivation(d1)
	require.True(t, ok)
	assert.Same(t, first, got)
	_, ok = u.LookupDerivation(&checker.FromLiteral{Value: "x"})
	assert.False(t, ok)
}

func TestUniqueNames_ExportAlias(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()
	u := NewUniqueNames()
	u.beginFile(NewNameGenerator())

	a := u.ExportAlias("map", true)
	assert.Equal(t, "map_1", a.Identifier.Value)
	assert.True(t, a.Exported)

	// first call wins
	b := u.ExportAlias("map", false)
	assert.Same(t, a, b)
	assert.True(t, b.Exported)
	assert.True(t, u.HasAlias("map"))
	assert.False(t, u.HasAlias("flatMap"))

	aliases := u.Aliases()
	u.ResetFile()
	assert.False(t, u.HasAlias("map"))
	assert.Len(t, aliases, 1, "the copy survives the reset")
}

func TestUniqueNames_DerivationsAreScopedToTheFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()
	u := NewUniqueNames()
	u.beginFile(NewNameGenerator())
	d := &checker.EmptyObjectDerivation{}
	name := u.DerivationName(d)

	u.ResetFile()
	got, ok := u.LookupDerivation(d)
	require.True(t, ok)
	assert.Same(t, name, got)

	next := NewNameGenerator()
	next.Reserve(source("b.ts", constStmt("derived_1", num("1"))))
	u.beginFile(next)
	_, ok = u.LookupDerivation(d)
	assert.False(t, ok)
	assert.Equal(t, "derived_2", u.DerivationName(d).Value)
}

func TestNameGenerator_ReserveIgnoresNil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()
	g := NewNameGenerator()
	g.Reserve(source("a.ts", &ast.ReturnStatement{}))
	assert.Equal(t, "derived_1", g.Next("derived").Value)
}
