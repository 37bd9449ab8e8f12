package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page selection flags.
type pageFlags struct {
	skipFirst bool
	skip      string // comma-separated 1-based page numbers
}

// renderFlags holds rasterization flags.
type renderFlags struct {
	dpi         int
	backend     string
	format      string
	jpegQuality int
	maxWidth    int
}

// notesFlags holds speaker notes flags.
type notesFlags struct {
	pptx      string
	markdown  string
	codeStyle string
}

// documentFlags holds deck metadata flags.
type documentFlags struct {
	title    string
	author   string
	subject  string
	keywords string
}

// assetFlags holds package skeleton flags.
type assetFlags struct {
	templateDir string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	workers  int
	timeout  string
	pages    pageFlags
	render   renderFlags
	notes    notesFlags
	document documentFlags
	assets   assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPageFlags adds page selection flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.BoolVar(&f.skipFirst, "skip-first", false, "drop the first page")
	fs.StringVar(&f.skip, "skip", "", "drop pages by 1-based number, e.g. 2,4")
}

// addRenderFlags adds rasterization flags to a FlagSet.
// Zero values defer to config, then library defaults.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.IntVar(&f.dpi, "dpi", 0, "rasterization resolution (default 200)")
	fs.StringVar(&f.backend, "backend", "", "rasterizer: fitz, poppler (default fitz)")
	fs.StringVar(&f.format, "format", "", "page image format: png, jpeg (default png)")
	fs.IntVar(&f.jpegQuality, "jpeg-quality", 0, "jpeg quality 1-100 (default 90)")
	fs.IntVar(&f.maxWidth, "max-width", 0, "downscale page images wider than this (pixels)")
}

// addNotesFlags adds speaker notes flags to a FlagSet.
func addNotesFlags(fs *flag.FlagSet, f *notesFlags) {
	fs.StringVar(&f.pptx, "notes-pptx", "", "copy notes from this deck, slide by slide")
	fs.StringVar(&f.markdown, "notes-md", "", "notes from a Markdown file split at ---")
	fs.StringVar(&f.codeStyle, "code-style", "", "chroma style for code in Markdown notes")
}

// addDocumentFlags adds deck metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "deck title (\"\" = PDF file name)")
	fs.StringVar(&f.author, "author", "", "deck author")
	fs.StringVar(&f.subject, "subject", "", "deck subject")
	fs.StringVar(&f.keywords, "keywords", "", "deck keywords")
}

// addAssetFlags adds package skeleton flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.templateDir, "template-dir", "", "directory overriding theme/master parts")
}

// newConvertFlagSet registers every convert flag into f. Parsing and
// shell completion share it.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-document timeout, e.g. 30s, 2m (default none)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.pages)
	addRenderFlags(fs, &f.render)
	addNotesFlags(fs, &f.notes)
	addDocumentFlags(fs, &f.document)
	addAssetFlags(fs, &f.assets)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage and parse errors are written to w.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(w)
	fs.Usage = func() { printConvertUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
