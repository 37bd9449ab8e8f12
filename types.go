package pdf2pptx

import (
	"context"
	"image"
	"strings"
	"time"
)

// Rendering defaults and limits.
const (
	DefaultDPI         = 200
	MinDPI             = 1
	MaxDPI             = 1200
	DefaultJPEGQuality = 90
)

// Backend names accepted by WithBackend.
const (
	BackendFitz    = "fitz"
	BackendPoppler = "poppler"
)

// Image formats for embedded page rasters.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// normalizeFormat maps aliases to a canonical format. Empty means PNG.
func normalizeFormat(f string) (string, bool) {
	switch strings.ToLower(f) {
	case "", FormatPNG:
		return FormatPNG, true
	case FormatJPEG, "jpg":
		return FormatJPEG, true
	}
	return "", false
}

// Input contains conversion parameters.
type Input struct {
	PDFPath     string         // Source document (required)
	DPI         int            // Rasterization resolution (0 = DefaultDPI)
	Pages       *PageSelection // Pages to drop (nil = keep all)
	Notes       *NotesSource   // Speaker notes source (nil = no notes)
	Format      string         // "png" or "jpeg" (empty = png)
	JPEGQuality int            // 1-100, jpeg only (0 = DefaultJPEGQuality)
	MaxWidth    int            // Downscale wider rasters to this many pixels (0 = off)
	Metadata    *Metadata      // Deck properties (nil = title from file name)
}

// PageSelection configures which source pages are dropped.
// SkipFirst and Skip are mutually exclusive.
type PageSelection struct {
	SkipFirst bool
	Skip      []int // 1-based page numbers
}

// Validate checks the selection without looking at the document.
// Returns nil if s is nil.
func (s *PageSelection) Validate() error {
	if s == nil {
		return nil
	}
	if s.SkipFirst && len(s.Skip) > 0 {
		return ErrConflictingSkipOptions
	}
	return nil
}

// NotesSource names where speaker notes come from. Notes map positionally:
// output slide i receives the notes of reference slide i (or Markdown
// section i), counted after skipped pages are removed.
type NotesSource struct {
	DeckPath     string // Reference PPTX
	MarkdownPath string // Markdown file split at thematic breaks
}

// Validate checks that at most one source is set.
// Returns nil if n is nil.
func (n *NotesSource) Validate() error {
	if n == nil {
		return nil
	}
	if n.DeckPath != "" && n.MarkdownPath != "" {
		return ErrConflictingNotes
	}
	return nil
}

func (n *NotesSource) isSet() bool {
	return n != nil && (n.DeckPath != "" || n.MarkdownPath != "")
}

// Metadata is written to the deck's core properties.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// SlideSize is a slide size in inches.
type SlideSize struct {
	Width  float64
	Height float64
}

// SlideInfo describes one generated slide.
type SlideInfo struct {
	SourcePage  int       // 1-based page number in the PDF
	Size        SlideSize // Slide size in inches
	PixelWidth  int       // Embedded raster width
	PixelHeight int       // Embedded raster height
	HasNotes    bool
}

// ConvertResult contains the output of a successful conversion.
type ConvertResult struct {
	PPTX         []byte      // Serialized presentation
	Slides       []SlideInfo // One entry per slide, in order
	SourcePages  int         // Page count of the PDF
	IgnoredSkips []int       // Skip numbers that name no page, ascending
}

// Document is an open PDF that renders pages on demand.
type Document interface {
	NumPages() int
	RenderPage(ctx context.Context, index, dpi int) (image.Image, error)
	Close() error
}

// Rasterizer opens PDFs for rendering. The built-in backends are selected
// with WithBackend; WithRasterizer plugs in any other implementation.
type Rasterizer interface {
	Open(ctx context.Context, path string) (Document, error)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout   time.Duration
	backend   string
	assetPath string
	codeStyle string
	now       func() time.Time
}

// WithTimeout bounds each conversion. Without it a conversion runs until
// the caller's context is done.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("pdf2pptx: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithBackend selects a built-in rasterizer: "fitz" (MuPDF, default) or
// "poppler" (pdftoppm). Unknown names make NewConverter fail.
func WithBackend(name string) Option {
	return func(c *Converter) {
		c.cfg.backend = name
	}
}

// WithRasterizer replaces the built-in backend.
func WithRasterizer(r Rasterizer) Option {
	return func(c *Converter) {
		c.rasterizer = r
	}
}

// WithAssetPath overrides the embedded package skeleton with parts from
// dir (theme.xml, slideMaster.xml, ...). Missing parts fall back to the
// embedded ones.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithCodeStyle sets the chroma style for code blocks in Markdown notes.
func WithCodeStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.codeStyle = name
	}
}

// WithClock sets the time source for the deck's creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		c.cfg.now = now
	}
}
