package pipeline

import (
	"github.com/ts-plus/typescript-sub002/internal/ast"
	"github.com/ts-plus/typescript-sub002/internal/checker"
	"github.com/ts-plus/typescript-sub002/internal/config"
	"github.com/ts-plus/typescript-sub002/internal/diagnostics"
)

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one source file through the stages.
type PipelineContext struct {
	FilePath   string
	SourceFile *ast.SourceFile
	Resolver   checker.Resolver
	Config     *config.Config

	// Output is the printed result of the final stage.
	Output string

	Errors []*diagnostics.DiagnosticError
}

func NewPipelineContext(filePath string, file *ast.SourceFile, resolver checker.Resolver, cfg *config.Config) *PipelineContext {
	return &PipelineContext{
		FilePath:   filePath,
		SourceFile: file,
		Resolver:   resolver,
		Config:     cfg,
		Errors:     []*diagnostics.DiagnosticError{},
	}
}

// HasErrors reports whether any stage recorded an error.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}
