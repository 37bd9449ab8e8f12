package pdf2pptx

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-pdf2pptx/internal/pptx"
)

// notesProvider yields the notes body for output slide i, or nil.
type notesProvider interface {
	NotesAt(i int) *pptx.TextBody
}

// markdownNotes adapts Markdown sections to notesProvider.
type markdownNotes []*pptx.TextBody

func (m markdownNotes) NotesAt(i int) *pptx.TextBody {
	if i < 0 || i >= len(m) {
		return nil
	}
	return m[i]
}

var (
	_ notesProvider = (*pptx.Presentation)(nil)
	_ notesProvider = markdownNotes(nil)
)

// loadNotes reads the configured notes source. It runs before any page is
// rendered so an unreadable source fails the run early.
func (c *Converter) loadNotes(ctx context.Context, src *NotesSource) (notesProvider, bool, error) {
	if !src.isSet() {
		return nil, false, nil
	}

	if src.DeckPath != "" {
		pres, err := pptx.Open(src.DeckPath)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s: %v", ErrReferenceDeckUnreadable, src.DeckPath, err)
		}
		return pres, false, nil
	}

	data, err := os.ReadFile(src.MarkdownPath) // #nosec G304 -- user-provided notes path
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrNotesUnreadable, err)
	}
	bodies, err := c.markdown.Convert(ctx, data)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, false, fmt.Errorf("%w: %s: %v", ErrNotesUnreadable, src.MarkdownPath, err)
	}
	return markdownNotes(bodies), true, nil
}

// copyNotes replaces dst's content with src's paragraphs and runs and
// reports whether anything was copied. Runs keep text, bold, italic,
// underline, size and explicit RGB color. keepTypeface also copies the
// latin typeface, used for Markdown code.
func copyNotes(src, dst *pptx.TextBody, keepTypeface bool) bool {
	if src.IsEmpty() || dst == nil {
		return false
	}

	dst.Clear()
	for i, sp := range src.Paragraphs {
		dp := dst.Paragraphs[0]
		if i > 0 {
			dp = dst.AddParagraph()
		}
		for _, sr := range sp.Runs {
			dr := dp.AddRun(sr.Text)
			dr.Font = copyFont(sr.Font, keepTypeface)
		}
	}
	return true
}

func copyFont(f pptx.Font, keepTypeface bool) pptx.Font {
	out := pptx.Font{
		Underline: f.Underline,
		Size:      f.Size,
	}
	if f.Bold != nil {
		out.Bold = pptx.Bool(*f.Bold)
	}
	if f.Italic != nil {
		out.Italic = pptx.Bool(*f.Italic)
	}
	if f.Color != nil {
		c := *f.Color
		out.Color = &c
	}
	if keepTypeface {
		out.Typeface = f.Typeface
	}
	return out
}
