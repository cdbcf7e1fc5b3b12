// Command tsplusc checks a tsplus.config.json and shows, for each source file
// given, the import path and trace name the transformation synthesizes for it.
//
//	tsplusc [-c config] [--trace Debug|Info|Error] [--no-color] file...
//
// Without -c the config is searched upwards from the working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/schuko/tracing"
	"github.com/ts-plus/typescript-sub002/internal/config"
	"github.com/ts-plus/typescript-sub002/internal/diagnostics"
	"github.com/ts-plus/typescript-sub002/internal/token"
	"github.com/viant/afs"
)

// Options are the command line options of tsplusc.
type Options struct {
	Config  string `short:"c" long:"config" description:"URL or path of the config file"`
	Trace   string `long:"trace" default:"Error" description:"trace level [Debug|Info|Error]"`
	NoColor bool   `long:"no-color" description:"never colour diagnostics"`
	Args    struct {
		Files []string `positional-arg-name:"file"`
	} `positional-args:"yes"`
}

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

func main() {
	color := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	os.Exit(run(context.Background(), afs.New(), os.Args[1:], os.Stdout, os.Stderr, color))
}

// run executes tsplusc and returns the exit code.
func run(ctx context.Context, fs afs.Service, args []string, stdout, stderr io.Writer, color bool) int {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	tracing.Select("tsplus.transform").SetTraceLevel(tracing.TraceLevelFromString(opts.Trace))
	color = color && !opts.NoColor

	URL := opts.Config
	if URL == "" {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if URL, err = config.FindConfig(ctx, fs, wd); err != nil {
			report(stderr, color, diagnostics.Wrap(diagnostics.ErrC001, err))
			return 1
		}
		if URL == "" {
			report(stderr, color, diagnostics.NewError(diagnostics.ErrC001, token.Token{}, "no "+config.ConfigFileName+" found from "+wd))
			return 1
		}
	}
	cfg, err := config.LoadConfig(ctx, fs, URL)
	if err != nil {
		if d, ok := err.(*diagnostics.DiagnosticError); ok {
			report(stderr, color, d)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	fmt.Fprintf(stdout, "%s: %d module rules, %d trace rules\n", URL, len(cfg.ModuleMap), len(cfg.TraceMap))

	code := 0
	for _, file := range opts.Args.Files {
		path, ok := cfg.ImportPath(file)
		if !ok {
			report(stderr, color, diagnostics.NewError(diagnostics.ErrT001, token.Token{}, cfg.Relative(file)).WithFile(file))
			code = 1
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\t%s\n", file, path, cfg.TraceName(file))
	}
	return code
}

func report(w io.Writer, color bool, d *diagnostics.DiagnosticError) {
	if color {
		fmt.Fprintf(w, "%s%s%s\n", colorRed, d.Error(), colorReset)
		return
	}
	fmt.Fprintln(w, d.Error())
}
