package raster

import (
	"context"
	_ "embed"
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// probePDF is a one-page, one-inch square document.
//
//go:embed probe.pdf
var probePDF []byte

// Probe renders a built-in one-page PDF at 72 DPI and returns the image
// size, which is 72x72 for a working backend. dir holds the scratch file
// and defaults to the system temp directory.
func Probe(ctx context.Context, o Opener, dir string) (image.Point, error) {
	f, err := os.CreateTemp(dir, "pdf2pptx-probe-*.pdf")
	if err != nil {
		return image.Point{}, fmt.Errorf("creating probe file: %w", err)
	}
	path := f.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := f.Write(probePDF); err != nil {
		_ = f.Close()
		return image.Point{}, fmt.Errorf("writing probe file: %w", err)
	}
	if err := f.Close(); err != nil {
		return image.Point{}, fmt.Errorf("writing probe file: %w", err)
	}

	doc, err := o.Open(ctx, filepath.Clean(path))
	if err != nil {
		return image.Point{}, err
	}
	defer func() { _ = doc.Close() }()

	img, err := doc.RenderPage(ctx, 0, 72)
	if err != nil {
		return image.Point{}, err
	}
	return img.Bounds().Size(), nil
}
