package pptx

import "errors"

// Sentinel errors for deck operations.
var (
	ErrInvalidSize       = errors.New("slide size must be positive")
	ErrEmptyImage        = errors.New("image data is empty")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrInvalidColor      = errors.New("invalid RGB color")
	ErrNilPartLoader     = errors.New("part loader cannot be nil")
	ErrPartLoad          = errors.New("failed to load package part")
	ErrWrite             = errors.New("failed to write presentation")

	// Reader errors.
	ErrInvalidPackage  = errors.New("not a valid OOXML package")
	ErrNotPresentation = errors.New("package is not a presentation")
	ErrMissingPart     = errors.New("package part not found")
	ErrMalformedPart   = errors.New("malformed package part")
)
