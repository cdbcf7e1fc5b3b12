/*
Package transform implements the extension rewriting pass.

The pass takes a type-checked source file together with the facts the checker
resolved for it (see package checker) and rewrites every extension invocation
into a plain call against the module that declares the extension:

	a.isJust() ? a.value : fallback

becomes

	import * as tsplus_module_1 from "pkg/b";
	tsplus_module_1.isJustImpl(a) ? tsplus_module_1.valueImpl(a) : fallback

Besides fluent, getter, static, operator, indexer and __call extensions the pass
lowers the fixed macros (pipe, identity, remove, Derive and Do blocks), splices
derived values for automatic parameters, thunks lazy arguments, appends trace
arguments and keeps names synthesized per file free of collisions.

A Transformer lives for one compilation. Each file is processed in two passes:
the rewrite pass, then the rename pass that moves file-level declarations
referenced under a private alias and re-exports them under their public name.
*/
package transform

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tsplus.transform'.
func tracer() tracing.Trace {
	return tracing.Select("tsplus.transform")
}
