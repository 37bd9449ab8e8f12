package raster

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/gen2brain/go-fitz"
)

// FitzOpener renders with MuPDF through go-fitz.
type FitzOpener struct{}

// Compile-time interface checks.
var (
	_ Opener   = (*FitzOpener)(nil)
	_ Document = (*fitzDocument)(nil)
)

// Open opens path with MuPDF.
func (o *FitzOpener) Open(ctx context.Context, path string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	return &fitzDocument{doc: doc, pages: doc.NumPage()}, nil
}

// fitzDocument serializes access: a MuPDF context is not safe for
// concurrent use.
type fitzDocument struct {
	mu     sync.Mutex
	doc    *fitz.Document
	pages  int
	closed bool
}

func (d *fitzDocument) NumPages() int { return d.pages }

func (d *fitzDocument) RenderPage(ctx context.Context, index, dpi int) (image.Image, error) {
	if err := checkRenderArgs(index, dpi, d.pages); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, fmt.Errorf("%w: document closed", ErrRender)
	}

	img, err := d.doc.ImageDPI(index, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", ErrRender, index+1, err)
	}
	return img, nil
}

func (d *fitzDocument) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	return d.doc.Close()
}
