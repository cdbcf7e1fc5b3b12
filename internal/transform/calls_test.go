package transform

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/checker"
	"github.com/ts-plus/typescript-sub002/internal/diagnostics"
)

func TestIdentityMacro_ReusesArgumentNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	x := id("x")
	identity := call(id("identity"), x)
	table := checker.NewTable().SetMacro(identity, checker.MacroIdentity)
	c := newTestContext(t, table, source("src/main.ts"))

	assert.Same(t, x, c.visitExpr(identity))
}

func TestIdentityMacro_WrongArityIsLeftAlone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	two := call(id("identity"), id("x"), id("y"))
	spread := call(id("identity"), &ast.SpreadElement{Expression: id("xs")})
	table := checker.NewTable().
		SetMacro(two, checker.MacroIdentity).
		SetMacro(spread, checker.MacroIdentity)
	c := newTestContext(t, table, source("src/main.ts"))

	assert.Same(t, two, c.visitExpr(two))
	assert.Equal(t, "identity(x, y)", printNode(two))
	assert.Equal(t, "identity(...xs)", printNode(c.visitExpr(spread)))
}

func TestIdentityGetter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	x := id("x")
	access := prop(x, "self")
	table := checker.NewTable().SetMacro(access, checker.MacroIdentity)
	c := newTestContext(t, table, source("src/main.ts"))
	assert.Same(t, x, c.visitExpr(access))
}

func TestRemoveMacro(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	removed := call(id("remove"), call(id("sideEffect")))
	table := checker.NewTable().SetMacro(removed, checker.MacroRemove)
	c := newTestContext(t, table, source("src/main.ts"))
	assert.Equal(t, "void 0", printNode(c.visitExpr(removed)))
}

func TestPipeFusion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	t.Run("plain stages", func(t *testing.T) {
		pipe := call(id("pipe"), id("seed"), id("f"), id("g"))
		table := checker.NewTable().SetMacro(pipe, checker.MacroPipe)
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "g(f(seed))", printNode(c.visitExpr(pipe)))
	})

	t.Run("data-first stage", func(t *testing.T) {
		stage := call(prop(id("O"), "map"), id("h"))
		pipe := call(id("pipe"), id("seed"), stage, id("g"))
		table := checker.NewTable().
			SetMacro(pipe, checker.MacroPipe).
			SetDataFirst(stage, &checker.Target{Declaration: fnDecl("lib/option.ts", "map_"), ExportName: "map_"})
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "g(tsplus_module_1.map_(seed, h))", printNode(c.visitExpr(pipe)))
		assert.Equal(t, 1, c.imports.RefCount("@lib/option"))
	})

	t.Run("binary pipe operator", func(t *testing.T) {
		op := binary(id("seed"), "|", id("f"))
		table := checker.NewTable().SetMacro(op, checker.MacroPipe)
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "f(seed)", printNode(c.visitExpr(op)))
	})
}

func TestDataFirstFusionRetractsCallee(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	mapID := id("map")
	inner := call(mapID, id("f"))
	outer := call(inner, id("a"))
	table := checker.NewTable().
		SetGlobalImport(mapID, &checker.GlobalImport{Path: "@lib/option", Name: "map"}).
		SetDataFirst(inner, &checker.Target{Declaration: fnDecl("lib/option.ts", "map_"), ExportName: "map_"})
	c := newTestContext(t, table, source("src/main.ts"))

	assert.Equal(t, "tsplus_module_1.map_(a, f)", printNode(c.visitExpr(outer)))
	assert.Equal(t, 1, c.imports.RefCount("@lib/option"))
	assert.Empty(t, c.errors)
}

func TestDataFirstFusionThunksLazyReceiver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	receiver := call(id("compute"))
	inner := call(id("orElse"), id("fallback"))
	outer := call(inner, receiver)
	table := checker.NewTable().
		SetLazy(receiver).
		SetDataFirst(inner, &checker.Target{Declaration: fnDecl("lib/option.ts", "orElse_"), ExportName: "orElse_"})
	c := newTestContext(t, table, source("src/main.ts"))

	assert.Equal(t, "tsplus_module_1.orElse_(() => compute(), fallback)", printNode(c.visitExpr(outer)))
	assert.Empty(t, c.errors)
}

func TestCallExtensionRetractsGlobalImport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	sync := id("Sync")
	c0 := call(sync, id("x"))
	table := checker.NewTable().
		SetGlobalImport(sync, &checker.GlobalImport{Path: "@lib/sync", Name: "Sync"}).
		SetCallExtension(c0, &checker.Signature{Kind: checker.Call, Declaration: fnDecl("lib/effect.ts", "syncCall"), ExportName: "syncCall"})
	c := newTestContext(t, table, source("src/main.ts"))

	assert.Equal(t, "tsplus_module_2.syncCall(x)", printNode(c.visitExpr(c0)))
	assert.Equal(t, []string{"@lib/effect"}, c.imports.Paths())
}

func TestSuperCallIsNeverAnExtension(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	sup := call(&ast.SuperExpression{Token: at(1, 1)}, id("x"))
	table := checker.NewTable().
		SetCallExtension(sup, &checker.Signature{Kind: checker.Call, Declaration: fnDecl("lib/effect.ts", "syncCall")})
	c := newTestContext(t, table, source("src/main.ts"))
	assert.Equal(t, "super(x)", printNode(c.visitExpr(sup)))
	assert.Empty(t, c.imports.Paths())
}

func TestFluentCall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	t.Run("method form", func(t *testing.T) {
		x := call(prop(id("xs"), "map"), id("f"))
		table := checker.NewTable().SetSignature(x, fluent(fnDecl("lib/array.ts", "map")))
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "tsplus_module_1.map(xs, f)", printNode(c.visitExpr(x)))
	})

	t.Run("call form", func(t *testing.T) {
		x := call(id("map"), id("xs"), id("f"))
		table := checker.NewTable().SetSignature(x, fluent(fnDecl("lib/array.ts", "map")))
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "tsplus_module_1.map(xs, f)", printNode(c.visitExpr(x)))
	})

	t.Run("pipeable lazy receiver", func(t *testing.T) {
		recv := call(id("compute"))
		x := call(prop(recv, "zip"), id("that"))
		sig := fluent(fnDecl("lib/effect.ts", "zip"))
		sig.IsPipeable = true
		table := checker.NewTable().SetSignature(x, sig).SetLazy(recv)
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "tsplus_module_1.zip(that)(() => compute())", printNode(c.visitExpr(x)))
	})

	t.Run("pipe macro declaration", func(t *testing.T) {
		x := call(prop(id("a"), "pipe"), id("f"), id("g"))
		decl := fnDecl("lib/function.ts", "pipe")
		decl.Macro = checker.MacroPipe
		table := checker.NewTable().SetSignature(x, fluent(decl))
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "g(f(a))", printNode(c.visitExpr(x)))
		assert.Empty(t, c.imports.Paths())
	})

	t.Run("trace", func(t *testing.T) {
		x := callAt(at(7, 5), prop(id("fx"), "tap"), id("f"))
		sig := fluent(fnDecl("lib/effect.ts", "tap"))
		sig.HasTraceParameter = true
		table := checker.NewTable().SetSignature(x, sig)
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, `tsplus_module_1.tap(fx, f, fileName_1 + ":7:5")`, printNode(c.visitExpr(x)))
		assert.Equal(t, "(app) main.ts", c.traceName())
	})
}

func TestFluentCallWithoutSignature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	x := call(prop(id("xs"), "map"), id("f"))
	table := checker.NewTable().MarkFluent(x)
	c := newTestContext(t, table, source("src/main.ts"))
	c.visitExpr(x)

	require.Len(t, c.errors, 1)
	assert.Equal(t, diagnostics.ErrT003, c.errors[0].Code)
	assert.Contains(t, c.errors[0].Message, "map")
	assert.NotNil(t, c.errors[0].Cause())
}

func TestPlainCallArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	t.Run("automatic parameters after skipped optionals", func(t *testing.T) {
		x := call(id("show"), id("v"))
		table := checker.NewTable().SetCallSignature(x, &checker.CallSignature{Parameters: []checker.Parameter{
			{Name: "value"},
			{Name: "options"},
			{Name: "S", Automatic: true, Derivation: &checker.FromImplicitScope{Declaration: fnDecl("lib/show.ts", "showString")}},
			{Name: "extra"},
		}})
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "show(v, void 0, tsplus_module_1.showString)", printNode(c.visitExpr(x)))
	})

	t.Run("lazy argument", func(t *testing.T) {
		arg := call(id("expensive"))
		x := call(id("when"), id("cond"), arg)
		table := checker.NewTable().SetLazy(arg)
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "when(cond, () => expensive())", printNode(c.visitExpr(x)))
	})

	t.Run("trace from enclosing function", func(t *testing.T) {
		inner := call(id("fail"), id("e"))
		fnBody := function("run", params("e", "__tsplusTrace"), &ast.ReturnStatement{Token: at(2, 5), Value: inner})
		table := checker.NewTable().SetCallSignature(inner, &checker.CallSignature{Parameters: []checker.Parameter{
			{Name: "e"},
			{Name: "__tsplusTrace", Trace: true},
		}})
		c := newTestContext(t, table, source("src/main.ts", fnBody))
		c.visitStmt(fnBody)
		assert.Equal(t, "fail(e, __tsplusTrace)", printNode(inner))
		assert.Nil(t, c.traceVar)
	})

	t.Run("supplied trace is kept", func(t *testing.T) {
		x := call(id("fail"), id("e"), id("t"))
		table := checker.NewTable().SetCallSignature(x, &checker.CallSignature{Parameters: []checker.Parameter{
			{Name: "e"},
			{Name: "__tsplusTrace", Trace: true},
		}})
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "fail(e, t)", printNode(c.visitExpr(x)))
	})
}

func TestOperatorExtension(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	concat := &checker.Declaration{Name: "concat", File: "lib/string.ts", Kind: checker.VariableDeclaration, Exported: true}
	arrow := &checker.Declaration{Kind: checker.ArrowFunction, File: "lib/string.ts", Parent: concat}
	curried := &checker.Declaration{Kind: checker.CallExpression, File: "lib/string.ts", Parent: arrow}

	t.Run("parent carries the name", func(t *testing.T) {
		op := binary(id("a"), "+", id("b"))
		table := checker.NewTable().SetSignature(op, &checker.Signature{Kind: checker.Operator, Declaration: arrow})
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "tsplus_module_1.concat(a, b)", printNode(c.visitExpr(op)))
	})

	t.Run("grandparent, pipeable with lazy operand", func(t *testing.T) {
		op := binary(id("a"), "+", id("b"))
		table := checker.NewTable().
			SetSignature(op, &checker.Signature{Kind: checker.Operator, Declaration: curried, IsPipeable: true}).
			SetLazy(op.Right)
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "tsplus_module_1.concat(() => b)(a)", printNode(c.visitExpr(op)))
	})

	t.Run("no named ancestor", func(t *testing.T) {
		op := binary(id("a"), "+", id("b"))
		orphan := &checker.Declaration{Kind: checker.CallExpression, Parent: &checker.Declaration{Kind: checker.ArrowFunction,
			Parent: &checker.Declaration{Kind: checker.OtherDeclaration, Parent: concat}}}
		table := checker.NewTable().SetSignature(op, &checker.Signature{Kind: checker.Operator, Declaration: orphan})
		c := newTestContext(t, table, source("src/main.ts"))
		c.visitExpr(op)
		require.Len(t, c.errors, 1)
		assert.Equal(t, diagnostics.ErrT002, c.errors[0].Code)
	})
}

func TestPropertyAndElementExtensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsplus.transform")
	defer teardown()

	t.Run("static", func(t *testing.T) {
		access := prop(id("Option"), "some")
		x := call(access, num("1"))
		table := checker.NewTable().SetSignature(access, &checker.Signature{Kind: checker.Static, Declaration: fnDecl("lib/option.ts", "some"), ExportName: "some"})
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "tsplus_module_1.some(1)", printNode(c.visitExpr(x)))
	})

	t.Run("getter on a number literal", func(t *testing.T) {
		access := prop(&ast.ParenthesizedExpression{Token: at(1, 1), Expression: num("1")}, "double")
		table := checker.NewTable().SetSignature(access, &checker.Signature{Kind: checker.Getter, Declaration: fnDecl("lib/number.ts", "double"), ExportName: "double"})
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "tsplus_module_1.double(1)", printNode(c.visitExpr(access)))
	})

	t.Run("indexer", func(t *testing.T) {
		elem := &ast.ElementAccessExpression{Token: at(1, 1), Expression: id("xs"), Argument: num("0")}
		table := checker.NewTable().SetSignature(elem, &checker.Signature{Kind: checker.Indexer, Declaration: fnDecl("lib/array.ts", "at"), ExportName: "at", IsPipeable: true})
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "tsplus_module_1.at(0)(xs)", printNode(c.visitExpr(elem)))
	})

	t.Run("global import", func(t *testing.T) {
		ref := id("Either")
		obj := &ast.ObjectLiteral{Token: at(1, 1), Properties: []ast.ObjectMember{&ast.ShorthandPropertyAssignment{Token: at(1, 1), Name: ref}}}
		table := checker.NewTable().SetGlobalImport(ref, &checker.GlobalImport{Path: "@lib/either", Name: "Either"})
		c := newTestContext(t, table, source("src/main.ts"))
		assert.Equal(t, "{ Either: tsplus_module_1.Either }", printNode(c.visitExpr(obj)))
	})
}
