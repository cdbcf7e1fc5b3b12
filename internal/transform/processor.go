package transform

import (
	"github.com/ts-plus/typescript-sub002/internal/pipeline"
)

// Processor runs the pass as a pipeline stage. A nil Transformer is created
// from the resolver and config of the first context it sees.
type Processor struct {
	Transformer *Transformer
}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.SourceFile == nil || ctx.Resolver == nil {
		return ctx
	}
	if p.Transformer == nil {
		p.Transformer = New(ctx.Resolver, ctx.Config)
	}

	out, errs := p.Transformer.TransformFile(ctx.SourceFile)
	// Ensure all errors have file path set
	for _, err := range errs {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	ctx.Errors = append(ctx.Errors, errs...)
	if out != nil {
		ctx.SourceFile = out
	}
	return ctx
}
