package transform

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/diagnostics"
)

func TestImportLedger_GetRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()
	l := NewImportLedger(NewNameGenerator())

	a := l.Get("pkg/a")
	assert.Equal(t, "tsplus_module_1", a.Value)
	assert.Same(t, a, l.Get("pkg/a"))
	b := l.Get("pkg/b")
	assert.Equal(t, "tsplus_module_2", b.Value)
	assert.Equal(t, 2, l.RefCount("pkg/a"))

	l.Remove("pkg/a")
	assert.Equal(t, []string{"pkg/a", "pkg/b"}, l.Paths())
	l.Remove("pkg/a")
	assert.Equal(t, []string{"pkg/b"}, l.Paths())
	assert.Equal(t, 0, l.RefCount("pkg/a"))

	// never added
	l.Remove("pkg/c")
	assert.Equal(t, []string{"pkg/b"}, l.Paths())
}

func TestImportLedger_Statements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()
	l := NewImportLedger(NewNameGenerator())
	l.Get("pkg/z")
	l.Get("pkg/a")

	stmts := l.Statements()
	require.Len(t, stmts, 2)
	assert.Equal(t, `import * as tsplus_module_1 from "pkg/z";`, printNode(stmts[0]))
	assert.Equal(t, `import * as tsplus_module_2 from "pkg/a";`, printNode(stmts[1]))
}

func TestImportLedger_PreexistingIsReusedAndNeverEmitted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()
	l := NewImportLedger(NewNameGenerator())
	ns := id("O")
	l.Add(ns, "@lib/option")

	assert.Same(t, ns, l.Get("@lib/option"))
	l.Remove("@lib/option")
	l.Remove("@lib/option")
	assert.Same(t, ns, l.Get("@lib/option"))
	assert.Empty(t, l.Paths())
	assert.Empty(t, l.Statements())
}

func TestImportLedger_AddReplacesSynthesized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()
	l := NewImportLedger(NewNameGenerator())
	l.Get("@lib/option")
	ns := id("O")
	l.Add(ns, "@lib/option")
	assert.Same(t, ns, l.Get("@lib/option"))
	assert.Empty(t, l.Statements())
}

func TestImportLedger_Retract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()
	l := NewImportLedger(NewNameGenerator())
	a := l.Get("pkg/a")
	l.Get("pkg/a")
	dead := ast.NewCall(ast.NewPropertyAccess(a, "map"), ast.NewPropertyAccess(a, "id"))

	require.Nil(t, l.Retract(dead))
	assert.Empty(t, l.Paths())

	// a second retraction of the same subtree goes below zero
	err := l.Retract(dead)
	require.NotNil(t, err)
	assert.Equal(t, diagnostics.ErrT004, err.Code)
	assert.NotNil(t, err.Cause())
}

func TestImportLedger_RetractIgnoresForeignIdentifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()
	l := NewImportLedger(NewNameGenerator())
	l.Get("pkg/a")
	require.Nil(t, l.Retract(ast.NewCall(id("tsplus_module_1"))))
	assert.Equal(t, 1, l.RefCount("pkg/a"), "only the alias node itself counts")
}

// ledgerOp is one random Get (Remove == false) or Remove of one of a few paths.
type ledgerOp struct {
	Remove bool
	Path   uint8
}

func TestImportLedger_EmitsExactlyPositiveBalances(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()
	paths := []string{"pkg/a", "pkg/b", "pkg/c", "pkg/d"}
	property := func(ops []ledgerOp) bool {
		l := NewImportLedger(NewNameGenerator())
		balance := make(map[string]int)
		for _, op := range ops {
			p := paths[int(op.Path)%len(paths)]
			if op.Remove {
				l.Remove(p)
				if balance[p] > 0 {
					balance[p]--
				}
			} else {
				l.Get(p)
				balance[p]++
			}
		}
		emitted := make(map[string]bool)
		for _, p := range l.Paths() {
			if balance[p] <= 0 || emitted[p] {
				return false
			}
			emitted[p] = true
		}
		for p, n := range balance {
			if n > 0 && !emitted[p] {
				return false
			}
			if l.RefCount(p) != n {
				return false
			}
		}
		return len(l.Statements()) == len(emitted)
	}
	cfg := &quick.Config{MaxCount: 500, Rand: rand.New(rand.NewSource(7))}
	if err := quick.Check(property, cfg); err != nil {
		t.Error(err)
	}
}
