package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-pdf2pptx"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// commands lists the subcommand names, matched case-sensitively.
var commands = []string{"convert", "info", "doctor", "version", "help", "completion"}

// isCommand reports whether name is a known subcommand.
func isCommand(name string) bool {
	for _, c := range commands {
		if c == name {
			return true
		}
	}
	return false
}

// looksLikePDF reports whether arg names a PDF file, which selects the
// short form "pdf2pptx in.pdf out.pptx".
func looksLikePDF(arg string) bool {
	return strings.EqualFold(filepath.Ext(arg), ".pdf")
}

// runMain dispatches to a subcommand and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	name, rest := args[1], args[2:]
	if !isCommand(name) {
		if looksLikePDF(name) || strings.HasPrefix(name, "-") {
			return runConvertCmd(args[1:], env)
		}
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", name)
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch name {
	case "convert":
		return runConvertCmd(rest, env)
	case "info":
		return runInfoCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "pdf2pptx %s\n", Version)
		return ExitSuccess
	case "completion":
		return runCompletion(rest, env)
	default:
		return runHelp(rest, env)
	}
}

// runConvertCmd parses flags, builds the converter pool and runs the
// conversion.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	setMaxProcs(flags.common.verbose, env.Stderr)

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		return reportError(env.Stderr, err)
	}
	env.Config = cfg

	timeout, err := resolveTimeoutWithEnv(flags.timeout, envCfg.Timeout, cfg.Timeout)
	if err != nil {
		return reportError(env.Stderr, err)
	}

	poolSize := pdf2pptx.ResolvePoolSize(cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := pdf2pptx.NewConverterPool(poolSize, converterOptions(cfg, timeout, env)...)
	defer func() { _ = pool.Close() }()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, &poolAdapter{pool: pool}, env); err != nil {
		return reportError(env.Stderr, err)
	}
	return ExitSuccess
}

// setMaxProcs configures GOMAXPROCS from the container CPU quota. The
// library's log lines are shown only in verbose mode.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// reportError prints err with any hint and returns its exit code.
// Batch failures were already reported per file, hints included.
func reportError(w io.Writer, err error) int {
	var bf *batchFailure
	if errors.As(err, &bf) {
		fmt.Fprintf(w, "error: %v\n", err)
	} else {
		fmt.Fprintf(w, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// poolAdapter adapts *pdf2pptx.ConverterPool to the Pool interface.
type poolAdapter struct {
	pool *pdf2pptx.ConverterPool
}

func (a *poolAdapter) Acquire() (CLIConverter, error) {
	conv, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Release panics when given a converter the pool did not hand out.
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*pdf2pptx.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}
