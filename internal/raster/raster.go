package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
)

// Sentinel errors for rendering.
var (
	ErrOpen               = errors.New("cannot open document")
	ErrRender             = errors.New("page rendering failed")
	ErrPageRange          = errors.New("page index out of range")
	ErrInvalidDPI         = errors.New("dpi must be positive")
	ErrBackendUnavailable = errors.New("rendering backend unavailable")
	ErrUnknownBackend     = errors.New("unknown rendering backend")
	ErrUnsupportedFormat  = errors.New("unsupported image format")
)

// Backend names.
const (
	BackendFitz    = "fitz"
	BackendPoppler = "poppler"
)

// Document is an open PDF that renders pages on demand.
type Document interface {
	// NumPages returns the number of pages.
	NumPages() int
	// RenderPage renders the zero-based page at dpi.
	RenderPage(ctx context.Context, index, dpi int) (image.Image, error)
	Close() error
}

// Opener opens documents for rendering.
type Opener interface {
	Open(ctx context.Context, path string) (Document, error)
}

// NewOpener returns the Opener for a backend name. Empty selects fitz.
func NewOpener(backend string) (Opener, error) {
	switch backend {
	case "", BackendFitz:
		return &FitzOpener{}, nil
	case BackendPoppler:
		return &PopplerOpener{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func checkRenderArgs(index, dpi, pages int) error {
	if index < 0 || index >= pages {
		return ErrPageRange
	}
	if dpi <= 0 {
		return ErrInvalidDPI
	}
	return nil
}
