package pptx

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Underline styles used by DrawingML run properties (a:rPr/@u).
const (
	UnderlineNone   = "none"
	UnderlineSingle = "sng"
	UnderlineDouble = "dbl"
)

// RGB is an explicit sRGB color.
type RGB struct {
	R, G, B uint8
}

// String returns the color as six uppercase hex digits, the srgbClr format.
func (c RGB) String() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ParseRGB parses "RRGGBB" or "#RRGGBB".
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// Font holds run-level formatting. Zero values mean "inherited": the
// attribute is not written and the renderer falls back to the master style.
type Font struct {
	Bold      *bool
	Italic    *bool
	Underline string // a:rPr/@u value, "" = inherited
	Size      int    // hundredths of a point, 0 = inherited
	Color     *RGB   // nil = inherited or theme color
	Typeface  string // latin typeface, "" = inherited
}

// Run is a span of text sharing one Font.
type Run struct {
	Text string
	Font Font
}

// Paragraph is an ordered sequence of runs.
type Paragraph struct {
	Runs []*Run
}

// AddRun appends a run with the given text and returns it.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{Text: text}
	p.Runs = append(p.Runs, r)
	return r
}

// Text concatenates the text of all runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// TextBody is the content of a text frame: one or more paragraphs.
// A fresh body holds a single empty paragraph, like a new text frame.
type TextBody struct {
	Paragraphs []*Paragraph
}

// NewTextBody returns a body with one empty paragraph.
func NewTextBody() *TextBody {
	return &TextBody{Paragraphs: []*Paragraph{{}}}
}

// Clear discards all content, leaving a single empty paragraph.
func (b *TextBody) Clear() {
	b.Paragraphs = []*Paragraph{{}}
}

// AddParagraph appends an empty paragraph and returns it.
func (b *TextBody) AddParagraph() *Paragraph {
	p := &Paragraph{}
	b.Paragraphs = append(b.Paragraphs, p)
	return p
}

// IsEmpty reports whether the body has no runs at all.
func (b *TextBody) IsEmpty() bool {
	if b == nil {
		return true
	}
	for _, p := range b.Paragraphs {
		if len(p.Runs) > 0 {
			return false
		}
	}
	return true
}

// Text returns the plain text, one line per paragraph.
func (b *TextBody) Text() string {
	if b == nil {
		return ""
	}
	lines := make([]string, len(b.Paragraphs))
	for i, p := range b.Paragraphs {
		lines[i] = p.Text()
	}
	return strings.Join(lines, "\n")
}

// Bool returns a pointer to v, for Font.Bold and Font.Italic.
func Bool(v bool) *bool {
	return &v
}
