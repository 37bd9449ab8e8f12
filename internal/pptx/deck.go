package pptx

import (
	"bytes"
	"fmt"
	"time"
)

// Names of the static skeleton parts a PartLoader must supply.
const (
	PartTheme       = "theme"
	PartNotesTheme  = "notesTheme"
	PartSlideMaster = "slideMaster"
	PartSlideLayout = "slideLayout"
	PartNotesMaster = "notesMaster"
	PartPresProps   = "presProps"
	PartViewProps   = "viewProps"
	PartTableStyles = "tableStyles"
)

// StaticParts lists every skeleton part in the order it is written.
var StaticParts = []string{
	PartTheme,
	PartNotesTheme,
	PartSlideMaster,
	PartSlideLayout,
	PartNotesMaster,
	PartPresProps,
	PartViewProps,
	PartTableStyles,
}

// PartLoader supplies the XML of static skeleton parts by name.
type PartLoader interface {
	LoadPart(name string) ([]byte, error)
}

// ImageFormat identifies an embedded picture encoding.
type ImageFormat string

// Supported picture encodings.
const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
)

// Valid reports whether the format can be embedded.
func (f ImageFormat) Valid() bool {
	return f == FormatPNG || f == FormatJPEG
}

// ContentType returns the MIME type registered in [Content_Types].xml.
func (f ImageFormat) ContentType() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Image is an encoded picture ready to embed.
type Image struct {
	Data   []byte
	Format ImageFormat
}

// Picture is an image placed on a slide.
type Picture struct {
	Image Image
	X, Y  int64
	Size  Size
	Name  string
}

// Slide is one slide of a Deck. Create slides with Deck.AddSlide.
type Slide struct {
	index    int
	size     Size
	pictures []*Picture
	notes    *TextBody
}

// Index returns the zero-based position of the slide in its deck.
func (s *Slide) Index() int { return s.index }

// Size returns the size the slide was created with.
func (s *Slide) Size() Size { return s.size }

// Pictures returns the pictures in insertion order.
func (s *Slide) Pictures() []*Picture { return s.pictures }

// AddPicture places img at (x, y) with the given displayed size.
func (s *Slide) AddPicture(img Image, x, y int64, size Size) (*Picture, error) {
	if len(img.Data) == 0 {
		return nil, ErrEmptyImage
	}
	if !img.Format.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, img.Format)
	}
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.Width, size.Height)
	}
	pic := &Picture{
		Image: img,
		X:     x,
		Y:     y,
		Size:  size,
		Name:  fmt.Sprintf("Picture %d", len(s.pictures)+1),
	}
	s.pictures = append(s.pictures, pic)
	return pic, nil
}

// NotesTextBody returns the text body of the slide's notes placeholder,
// creating the notes slide on first access.
func (s *Slide) NotesTextBody() *TextBody {
	if s.notes == nil {
		s.notes = NewTextBody()
	}
	return s.notes
}

// HasNotes reports whether a notes slide was created.
func (s *Slide) HasNotes() bool {
	return s.notes != nil
}

// Properties is the document metadata written to docProps/core.xml.
type Properties struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Deck is a presentation under construction.
type Deck struct {
	parts  PartLoader
	size   Size
	slides []*Slide
	props  Properties
	now    func() time.Time
}

// Option configures a Deck.
type Option func(*Deck)

// WithClock sets the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *Deck) {
		d.now = now
	}
}

// New creates an empty deck whose skeleton parts come from parts.
func New(parts PartLoader, opts ...Option) (*Deck, error) {
	if parts == nil {
		return nil, ErrNilPartLoader
	}
	d := &Deck{
		parts: parts,
		size:  DefaultSize,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// AddSlide appends a blank slide of the given size. The deck-level slide
// size becomes this size (clamped to the range PowerPoint accepts).
func (d *Deck) AddSlide(size Size) (*Slide, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.Width, size.Height)
	}
	s := &Slide{index: len(d.slides), size: size}
	d.slides = append(d.slides, s)
	d.size = clampSlideSize(size)
	return s, nil
}

// Size returns the current deck-level slide size.
func (d *Deck) Size() Size { return d.size }

// Slides returns the slides in order.
func (d *Deck) Slides() []*Slide { return d.slides }

// SetProperties replaces the document metadata.
func (d *Deck) SetProperties(p Properties) { d.props = p }

// Bytes serializes the deck to a PPTX package in memory.
func (d *Deck) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
