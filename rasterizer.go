package pdf2pptx

import (
	"context"

	"github.com/alnah/go-pdf2pptx/internal/raster"
)

// backendRasterizer adapts an internal raster.Opener to Rasterizer.
type backendRasterizer struct {
	opener raster.Opener
}

func (b *backendRasterizer) Open(ctx context.Context, path string) (Document, error) {
	doc, err := b.opener.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// newBackendRasterizer returns the built-in rasterizer for name.
func newBackendRasterizer(name string) (Rasterizer, error) {
	opener, err := raster.NewOpener(name)
	if err != nil {
		return nil, err
	}
	return &backendRasterizer{opener: opener}, nil
}

// Compile-time interface checks.
var (
	_ Rasterizer = (*backendRasterizer)(nil)
	_ Document   = (raster.Document)(nil)
)
