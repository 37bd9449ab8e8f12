package pdf2pptx

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-pdf2pptx/internal/assets"
	"github.com/alnah/go-pdf2pptx/internal/mdnotes"
	"github.com/alnah/go-pdf2pptx/internal/pdfinfo"
	"github.com/alnah/go-pdf2pptx/internal/pptx"
	"github.com/alnah/go-pdf2pptx/internal/raster"
)

// Compile-time interface implementation check.
var _ pptx.PartLoader = (*assets.AssetResolver)(nil)

// Converter turns PDF documents into slide decks, one full-bleed page
// image per slide. Create with NewConverter, use Convert for each document,
// and Close when done. A Converter runs one conversion at a time; use
// ConverterPool for parallel work.
type Converter struct {
	cfg        converterConfig
	parts      pptx.PartLoader
	rasterizer Rasterizer
	markdown   *mdnotes.Converter
	header     func(path string) error
	inspect    func(path string) (*pdfinfo.Info, error)

	mu     sync.Mutex
	closed bool
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithBackend, WithTimeout, WithAssetPath).
// Returns an error for an unknown backend or code style, or an invalid asset path.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:     converterConfig{now: time.Now},
		header:  pdfinfo.CheckHeader,
		inspect: pdfinfo.Inspect,
	}

	for _, opt := range opts {
		opt(c)
	}

	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.parts = resolver

	if c.rasterizer == nil {
		c.rasterizer, err = newBackendRasterizer(strings.ToLower(c.cfg.backend))
		if err != nil {
			return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrUnknownBackend, c.cfg.backend, BackendFitz, BackendPoppler)
		}
	}

	c.markdown, err = mdnotes.New(mdnotes.WithCodeStyle(c.cfg.codeStyle))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodeStyle, c.cfg.codeStyle)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the serialized deck.
// The context is used for cancellation and timeout.
// Nothing is returned but an error if any page fails; the caller writes
// the result only on success.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return nil, ErrConverterClosed
	}

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	if err := c.preflight(input.PDFPath); err != nil {
		return nil, err
	}

	notes, keepTypeface, err := c.loadNotes(ctx, input.Notes)
	if err != nil {
		return nil, err
	}

	doc, err := c.rasterizer.Open(ctx, input.PDFPath)
	if err != nil {
		return nil, c.openError(ctx, input.PDFPath, err)
	}
	defer func() { _ = doc.Close() }()

	pageCount := doc.NumPages()
	kept, ignored := SelectPages(pageCount, input.Pages)

	deck, err := pptx.New(c.parts, pptx.WithClock(c.cfg.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPresentation, err)
	}
	deck.SetProperties(metadataFor(input))

	res := &ConvertResult{
		SourcePages:  pageCount,
		IgnoredSkips: ignored,
		Slides:       make([]SlideInfo, 0, len(kept)),
	}

	for pos, pageIndex := range kept {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slideInfo, err := c.addPage(ctx, deck, doc, input, pageIndex)
		if err != nil {
			return nil, err
		}
		if notes != nil {
			slide := deck.Slides()[pos]
			if body := notes.NotesAt(pos); !body.IsEmpty() {
				slideInfo.HasNotes = copyNotes(body, slide.NotesTextBody(), keepTypeface)
			}
		}
		res.Slides = append(res.Slides, slideInfo)
	}

	res.PPTX, err = deck.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPresentation, err)
	}
	return res, nil
}

// addPage renders one page and appends it as a full-bleed slide.
func (c *Converter) addPage(ctx context.Context, deck *pptx.Deck, doc Document, input Input, pageIndex int) (SlideInfo, error) {
	page := pageIndex + 1
	img, err := doc.RenderPage(ctx, pageIndex, dpiOrDefault(input.DPI))
	if err != nil {
		if ctx.Err() != nil {
			return SlideInfo{}, ctx.Err()
		}
		return SlideInfo{}, fmt.Errorf("%w: page %d: %v", ErrRasterize, page, err)
	}
	if img == nil {
		return SlideInfo{}, fmt.Errorf("%w: page %d: no image", ErrInvalidImage, page)
	}

	bounds := img.Bounds()
	size, err := CalculateSlideSize(bounds.Dx(), bounds.Dy())
	if err != nil {
		return SlideInfo{}, fmt.Errorf("page %d: %w", page, err)
	}

	img = raster.Downscale(img, input.MaxWidth)
	format, _ := normalizeFormat(input.Format)
	data, err := raster.Encode(img, format, input.JPEGQuality)
	if err != nil {
		return SlideInfo{}, fmt.Errorf("%w: page %d: %v", ErrInvalidImage, page, err)
	}

	emu := pptx.SizeFromInches(size.Width, size.Height)
	slide, err := deck.AddSlide(emu)
	if err != nil {
		return SlideInfo{}, fmt.Errorf("%w: page %d: %v", ErrInvalidImage, page, err)
	}
	if _, err := slide.AddPicture(pptx.Image{Data: data, Format: pptx.ImageFormat(format)}, 0, 0, emu); err != nil {
		return SlideInfo{}, fmt.Errorf("%w: page %d: %v", ErrPresentation, page, err)
	}

	final := img.Bounds()
	return SlideInfo{
		SourcePage:  page,
		Size:        size,
		PixelWidth:  final.Dx(),
		PixelHeight: final.Dy(),
	}, nil
}

// preflight checks the document is a readable file with a PDF header
// before any rendering starts. Structural damage is left to the renderer,
// which repairs what it can.
func (c *Converter) preflight(path string) error {
	if c.header == nil {
		return nil
	}
	if err := c.header(path); err != nil {
		return inspectError(path, err)
	}
	return nil
}

// inspectError maps pdfinfo failures to the public sentinels.
func inspectError(path string, err error) error {
	switch {
	case errors.Is(err, pdfinfo.ErrUnreadable):
		return fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	case errors.Is(err, pdfinfo.ErrEncrypted):
		return fmt.Errorf("%w: %w: %s", ErrDocumentCorrupt, ErrDocumentEncrypted, path)
	default:
		return fmt.Errorf("%w: %v", ErrDocumentCorrupt, err)
	}
}

// openError classifies a rasterizer Open failure. pdfinfo reports
// password protection, which backends describe inconsistently.
func (c *Converter) openError(ctx context.Context, path string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, raster.ErrBackendUnavailable) {
		return fmt.Errorf("%w: %w", ErrRasterize, err)
	}
	if c.inspect != nil {
		if _, ierr := c.inspect(path); errors.Is(ierr, pdfinfo.ErrEncrypted) {
			return inspectError(path, ierr)
		}
	}
	return fmt.Errorf("%w: %v", ErrDocumentCorrupt, err)
}

// validateInput checks options that need no I/O.
func (c *Converter) validateInput(input Input) error {
	if strings.TrimSpace(input.PDFPath) == "" {
		return ErrEmptyPath
	}
	if err := input.Pages.Validate(); err != nil {
		return err
	}
	if err := input.Notes.Validate(); err != nil {
		return err
	}
	if input.DPI != 0 && (input.DPI < MinDPI || input.DPI > MaxDPI) {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidDPI, input.DPI, MinDPI, MaxDPI)
	}
	if _, ok := normalizeFormat(input.Format); !ok {
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidFormat, input.Format, FormatPNG, FormatJPEG)
	}
	if input.JPEGQuality < 0 || input.JPEGQuality > 100 {
		return fmt.Errorf("%w: %d (must be between 1 and 100)", ErrInvalidQuality, input.JPEGQuality)
	}
	if input.MaxWidth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxWidth, input.MaxWidth)
	}
	return nil
}

// Close releases the converter. Convert fails with ErrConverterClosed
// afterwards. Safe to call more than once.
func (c *Converter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func dpiOrDefault(dpi int) int {
	if dpi == 0 {
		return DefaultDPI
	}
	return dpi
}

// metadataFor fills the deck title from the file name when none is given.
func metadataFor(input Input) pptx.Properties {
	var p pptx.Properties
	if m := input.Metadata; m != nil {
		p = pptx.Properties{Title: m.Title, Author: m.Author, Subject: m.Subject, Keywords: m.Keywords}
	}
	if p.Title == "" {
		base := filepath.Base(input.PDFPath)
		p.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return p
}
