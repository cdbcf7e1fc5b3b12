package prettyprinter

import (
	"github.com/ts-plus/typescript-sub002/internal/pipeline"
)

// Processor prints the source file of the context into its Output.
type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.SourceFile == nil {
		return ctx
	}
	ctx.Output = Print(ctx.SourceFile)
	return ctx
}
