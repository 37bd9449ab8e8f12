package pdf2pptx

import "errors"

// Sentinel errors for library operations.
var (
	// Configuration errors. Reported before any file is opened.
	ErrEmptyPath              = errors.New("PDF path cannot be empty")
	ErrConflictingSkipOptions = errors.New("skip-first and skip list are mutually exclusive")
	ErrInvalidSkipList        = errors.New("invalid skip list")
	ErrInvalidDPI             = errors.New("invalid DPI")
	ErrInvalidFormat          = errors.New("invalid image format")
	ErrInvalidQuality         = errors.New("invalid JPEG quality")
	ErrInvalidMaxWidth        = errors.New("invalid max width")
	ErrConflictingNotes       = errors.New("notes deck and notes markdown are mutually exclusive")
	ErrUnknownBackend         = errors.New("unknown rasterizer backend")
	ErrUnknownCodeStyle       = errors.New("unknown code style")
	ErrInvalidAssetPath       = errors.New("invalid asset path")

	// Input errors. Reported before any slide is built.
	ErrDocumentUnreadable      = errors.New("PDF document unreadable")
	ErrDocumentCorrupt         = errors.New("PDF document corrupt")
	ErrDocumentEncrypted       = errors.New("PDF document is password protected")
	ErrReferenceDeckUnreadable = errors.New("reference presentation unreadable")
	ErrNotesUnreadable         = errors.New("markdown notes unreadable")

	// Pipeline errors. Abort the run; nothing is written.
	ErrRasterize       = errors.New("page rasterization failed")
	ErrInvalidImage    = errors.New("invalid page image")
	ErrPresentation    = errors.New("building presentation failed")
	ErrConverterClosed = errors.New("converter is closed")
)
