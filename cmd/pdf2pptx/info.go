package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/alnah/go-pdf2pptx"
	"github.com/alnah/go-pdf2pptx/internal/yamlutil"
	flag "github.com/spf13/pflag"
)

// infoFlags holds flags for the info command.
type infoFlags struct {
	json  bool
	yaml  bool
	pages pageFlags
}

// infoReport is the machine-readable info output.
type infoReport struct {
	Path         string              `json:"path" yaml:"path"`
	PageCount    int                 `json:"pageCount" yaml:"pageCount"`
	Pages        []pdf2pptx.PageInfo `json:"pages" yaml:"pages"`
	Slides       []infoSlide         `json:"slides" yaml:"slides"`
	IgnoredSkips []int               `json:"ignoredSkips,omitempty" yaml:"ignoredSkips,omitempty"`
}

// infoSlide previews one slide the convert command would produce.
type infoSlide struct {
	SourcePage   int     `json:"sourcePage" yaml:"sourcePage"`
	WidthInches  float64 `json:"widthInches" yaml:"widthInches"`
	HeightInches float64 `json:"heightInches" yaml:"heightInches"`
}

// ErrConflictingOutputFormats is returned when --json and --yaml are both set.
var ErrConflictingOutputFormats = errors.New("--json and --yaml are mutually exclusive")

// newInfoFlagSet registers the info flags into f.
func newInfoFlagSet(f *infoFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.BoolVar(&f.json, "json", false, "print JSON")
	fs.BoolVar(&f.yaml, "yaml", false, "print YAML")
	addPageFlags(fs, &f.pages)
	return fs
}

func parseInfoFlags(args []string, w io.Writer) (*infoFlags, []string, error) {
	f := &infoFlags{}
	fs := newInfoFlagSet(f)
	fs.SetOutput(w)
	fs.Usage = func() { printInfoUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// runInfoCmd prints the page count and page sizes of one PDF, and the
// slides a conversion with the given page flags would produce.
func runInfoCmd(args []string, env *Environment) int {
	flags, positional, err := parseInfoFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}
	if len(positional) != 1 {
		fmt.Fprintln(env.Stderr, "error: info requires exactly one PDF file")
		printInfoUsage(env.Stderr)
		return ExitUsage
	}

	report, err := buildInfoReport(positional[0], flags)
	if err != nil {
		return reportError(env.Stderr, err)
	}

	switch {
	case flags.json:
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return reportError(env.Stderr, err)
		}
	case flags.yaml:
		out, err := yamlutil.Marshal(report)
		if err != nil {
			return reportError(env.Stderr, err)
		}
		_, _ = env.Stdout.Write(out)
	default:
		printInfoReport(env.Stdout, report)
	}
	return ExitSuccess
}

func buildInfoReport(path string, flags *infoFlags) (*infoReport, error) {
	if flags.json && flags.yaml {
		return nil, ErrConflictingOutputFormats
	}
	sel, err := pageSelectionFromFlags(flags.pages)
	if err != nil {
		return nil, err
	}
	if err := validatePDFExtension(path); err != nil {
		return nil, err
	}

	doc, err := pdf2pptx.Inspect(path)
	if err != nil {
		return nil, err
	}

	kept, ignored := pdf2pptx.SelectPages(doc.PageCount(), sel)
	report := &infoReport{
		Path:         doc.Path,
		PageCount:    doc.PageCount(),
		Pages:        doc.Pages,
		Slides:       make([]infoSlide, 0, len(kept)),
		IgnoredSkips: ignored,
	}
	for _, idx := range kept {
		p := doc.Pages[idx]
		size, err := pdf2pptx.CalculateSlideSize(
			int(math.Round(p.WidthPoints)), int(math.Round(p.HeightPoints)))
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", p.Number, err)
		}
		report.Slides = append(report.Slides, infoSlide{
			SourcePage:   p.Number,
			WidthInches:  size.Width,
			HeightInches: size.Height,
		})
	}
	return report, nil
}

// pageSelectionFromFlags builds a validated selection, or nil when no
// page flag is set.
func pageSelectionFromFlags(f pageFlags) (*pdf2pptx.PageSelection, error) {
	if f.skipFirst && f.skip != "" {
		return nil, fmt.Errorf("%w: --skip-first and --skip", pdf2pptx.ErrConflictingSkipOptions)
	}
	if f.skipFirst {
		return &pdf2pptx.PageSelection{SkipFirst: true}, nil
	}
	if f.skip == "" {
		return nil, nil
	}
	pages, err := pdf2pptx.ParseSkipList(f.skip)
	if err != nil {
		return nil, err
	}
	return &pdf2pptx.PageSelection{Skip: pages}, nil
}

func printInfoReport(w io.Writer, r *infoReport) {
	fmt.Fprintf(w, "%s: %d page(s)\n\n", r.Path, r.PageCount)
	fmt.Fprintln(w, "Page  Size (pt)        Size (in)")
	for _, p := range r.Pages {
		fmt.Fprintf(w, "%4d  %-15s  %.2f x %.2f\n", p.Number,
			fmt.Sprintf("%g x %g", p.WidthPoints, p.HeightPoints), p.WidthInches, p.HeightInches)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%d slide(s)\n", len(r.Slides))
	for i, s := range r.Slides {
		fmt.Fprintf(w, "  slide %d <- page %d (%.2fx%.2fin)\n", i+1, s.SourcePage, s.WidthInches, s.HeightInches)
	}
	if len(r.IgnoredSkips) > 0 {
		fmt.Fprintf(w, "\nwarning: skipped page(s) %s not in document\n", joinInts(r.IgnoredSkips))
	}
}
