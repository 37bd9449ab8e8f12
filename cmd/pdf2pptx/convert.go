package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alnah/go-pdf2pptx"
	"github.com/alnah/go-pdf2pptx/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoPDFFiles         = errors.New("no PDF files found")
	ErrTooManyArgs        = errors.New("too many arguments")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input pdf2pptx.Input) (*pdf2pptx.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*pdf2pptx.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
}

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	input   pdf2pptx.Input // Template; PDFPath is set per file
	verbose bool
}

// batchFailure reports failed conversions. It unwraps to the first
// failure so the exit code reflects its cause.
type batchFailure struct {
	failed int
	total  int
	first  error
}

func (e *batchFailure) Error() string {
	return fmt.Sprintf("%d of %d conversion(s) failed", e.failed, e.total)
}

func (e *batchFailure) Unwrap() error { return e.first }

// runConvert orchestrates the conversion process. env.Config must already
// hold the resolved configuration.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, pool Pool, env *Environment) error {
	cfg := env.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	if len(positionalArgs) > 2 {
		return fmt.Errorf("%w: expected <input> [output], got %d", ErrTooManyArgs, len(positionalArgs))
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	target := resolveOutputTarget(positionalArgs, flags.output, cfg)

	files, err := discoverFiles(inputPath, target)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPDFFiles, inputPath)
	}

	params := &conversionParams{
		input:   buildInput(cfg),
		verbose: flags.common.verbose,
	}

	results := convertBatch(ctx, pool, files, params)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return &batchFailure{failed: failedCount, total: len(results), first: firstError(results)}
	}
	return nil
}

// resolveConfig loads the config file and layers env vars and flags on
// top: CLI flags > env vars > config file > defaults.
func resolveConfig(flags *convertFlags, env *envConfig) (*config.Config, error) {
	if err := validateWorkers(flags.workers); err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	name := flags.common.config
	if name == "" {
		name = env.ConfigPath
	}
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// A page selection or notes source given on the command line replaces the
// configured one as a whole.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	// Page selection
	sel, err := pageSelectionFromFlags(flags.pages)
	if err != nil {
		return err
	}
	if sel != nil {
		cfg.Pages = config.PagesConfig{SkipFirst: sel.SkipFirst, Skip: sel.Skip}
	}

	// Rendering
	if flags.render.dpi != 0 {
		cfg.Render.DPI = flags.render.dpi
	}
	if flags.render.backend != "" {
		cfg.Render.Backend = flags.render.backend
	}
	if flags.render.format != "" {
		cfg.Render.Format = flags.render.format
	}
	if flags.render.jpegQuality != 0 {
		cfg.Render.JPEGQuality = flags.render.jpegQuality
	}
	if flags.render.maxWidth != 0 {
		cfg.Render.MaxWidth = flags.render.maxWidth
	}

	// Notes
	if flags.notes.pptx != "" && flags.notes.markdown != "" {
		return fmt.Errorf("%w: --notes-pptx and --notes-md", pdf2pptx.ErrConflictingNotes)
	}
	if flags.notes.pptx != "" {
		cfg.Notes.PPTX = flags.notes.pptx
		cfg.Notes.Markdown = ""
	}
	if flags.notes.markdown != "" {
		cfg.Notes.Markdown = flags.notes.markdown
		cfg.Notes.PPTX = ""
	}
	if flags.notes.codeStyle != "" {
		cfg.Notes.CodeStyle = flags.notes.codeStyle
	}

	// Document flags
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.document.subject != "" {
		cfg.Document.Subject = flags.document.subject
	}
	if flags.document.keywords != "" {
		cfg.Document.Keywords = flags.document.keywords
	}

	if flags.assets.templateDir != "" {
		cfg.Assets.BasePath = flags.assets.templateDir
	}
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	return nil
}

// buildInput maps the resolved config to a conversion template.
func buildInput(cfg *config.Config) pdf2pptx.Input {
	in := pdf2pptx.Input{
		DPI:         cfg.Render.DPI,
		Format:      cfg.Render.Format,
		JPEGQuality: cfg.Render.JPEGQuality,
		MaxWidth:    cfg.Render.MaxWidth,
	}
	if cfg.Pages.SkipFirst || len(cfg.Pages.Skip) > 0 {
		in.Pages = &pdf2pptx.PageSelection{SkipFirst: cfg.Pages.SkipFirst, Skip: cfg.Pages.Skip}
	}
	if cfg.Notes.PPTX != "" || cfg.Notes.Markdown != "" {
		in.Notes = &pdf2pptx.NotesSource{DeckPath: cfg.Notes.PPTX, MarkdownPath: cfg.Notes.Markdown}
	}
	if d := cfg.Document; d != (config.DocumentConfig{}) {
		in.Metadata = &pdf2pptx.Metadata{Title: d.Title, Author: d.Author, Subject: d.Subject, Keywords: d.Keywords}
	}
	return in
}

// converterOptions maps the resolved config to converter options.
func converterOptions(cfg *config.Config, timeout time.Duration, env *Environment) []pdf2pptx.Option {
	opts := []pdf2pptx.Option{
		pdf2pptx.WithBackend(cfg.Render.Backend),
		pdf2pptx.WithAssetPath(cfg.Assets.BasePath),
		pdf2pptx.WithCodeStyle(cfg.Notes.CodeStyle),
	}
	if env != nil && env.Now != nil {
		opts = append(opts, pdf2pptx.WithClock(env.Now))
	}
	if timeout > 0 {
		opts = append(opts, pdf2pptx.WithTimeout(timeout))
	}
	return opts
}

// resolveTimeoutWithEnv picks the timeout: flag > env > config. Zero means
// the library default.
func resolveTimeoutWithEnv(flagValue string, envValue time.Duration, configValue string) (time.Duration, error) {
	if flagValue != "" {
		return parsePositiveDuration(flagValue)
	}
	if envValue > 0 {
		return envValue, nil
	}
	if configValue != "" {
		return parsePositiveDuration(configValue)
	}
	return 0, nil
}

func parsePositiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidTimeout, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, s)
	}
	return d, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputTarget determines the output file or directory: positional
// output > --output > config.
func resolveOutputTarget(args []string, flagOutput string, cfg *config.Config) outputTarget {
	if len(args) > 1 {
		return outputTarget{path: args[1], positional: true}
	}
	if flagOutput != "" {
		return outputTarget{path: flagOutput}
	}
	return outputTarget{path: cfg.Output.DefaultDir}
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
