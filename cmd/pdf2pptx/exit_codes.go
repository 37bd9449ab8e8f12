package main

import (
	"context"
	"errors"
	"os"

	"github.com/alnah/go-pdf2pptx"
	"github.com/alnah/go-pdf2pptx/internal/config"
	"github.com/alnah/go-pdf2pptx/internal/hints"
	"github.com/alnah/go-pdf2pptx/internal/mdnotes"
	"github.com/alnah/go-pdf2pptx/internal/raster"
)

// Exit codes for the pdf2pptx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Successful conversion
	ExitGeneral    = 1 // General/unexpected error, corrupt input
	ExitUsage      = 2 // Invalid flags, config, or validation
	ExitIO         = 3 // File not found, permission denied
	ExitRasterizer = 4 // MuPDF/poppler errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Rasterizer errors (exit 4)
	if errors.Is(err, pdf2pptx.ErrRasterize) {
		return ExitRasterizer
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, pdf2pptx.ErrDocumentUnreadable) ||
		errors.Is(err, pdf2pptx.ErrReferenceDeckUnreadable) ||
		errors.Is(err, pdf2pptx.ErrNotesUnreadable) ||
		errors.Is(err, ErrWritePPTX) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoPDFFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, pdf2pptx.ErrEmptyPath) ||
		errors.Is(err, pdf2pptx.ErrConflictingSkipOptions) ||
		errors.Is(err, pdf2pptx.ErrInvalidSkipList) ||
		errors.Is(err, pdf2pptx.ErrInvalidDPI) ||
		errors.Is(err, pdf2pptx.ErrInvalidFormat) ||
		errors.Is(err, pdf2pptx.ErrInvalidQuality) ||
		errors.Is(err, pdf2pptx.ErrInvalidMaxWidth) ||
		errors.Is(err, pdf2pptx.ErrConflictingNotes) ||
		errors.Is(err, pdf2pptx.ErrUnknownBackend) ||
		errors.Is(err, pdf2pptx.ErrUnknownCodeStyle) ||
		errors.Is(err, pdf2pptx.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrConflictingOutputFormats) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint line for err, or "".
func hintFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, pdf2pptx.ErrConflictingSkipOptions):
		return hints.ForSkipConflict()
	case errors.Is(err, pdf2pptx.ErrDocumentEncrypted):
		return hints.ForEncryptedPDF()
	case errors.Is(err, pdf2pptx.ErrDocumentCorrupt):
		return hints.ForCorruptPDF()
	case errors.Is(err, raster.ErrBackendUnavailable):
		return hints.ForPopplerMissing()
	case errors.Is(err, pdf2pptx.ErrUnknownCodeStyle):
		return hints.ForCodeStyle(mdnotes.StyleNames())
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	}
	return ""
}
