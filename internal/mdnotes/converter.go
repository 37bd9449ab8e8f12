package mdnotes

import (
	"context"
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-pdf2pptx/internal/pptx"
)

// Sentinel errors.
var (
	ErrUnknownStyle = errors.New("unknown code style")
	ErrConversion   = errors.New("markdown notes conversion failed")
)

// DefaultCodeStyle is a light chroma style readable on white notes pages.
const DefaultCodeStyle = "monokailight"

// DefaultCodeTypeface is the monospace face for code spans and blocks.
const DefaultCodeTypeface = "Courier New"

// Converter parses Markdown into per-slide notes bodies.
type Converter struct {
	md       goldmark.Markdown
	style    *chroma.Style
	typeface string
}

// Option configures a Converter.
type Option func(*Converter) error

// WithCodeStyle selects the chroma style used for fenced code blocks.
func WithCodeStyle(name string) Option {
	return func(c *Converter) error {
		if name == "" {
			return nil
		}
		s, ok := styles.Registry[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStyle, name)
		}
		c.style = s
		return nil
	}
}

// StyleNames lists the registered chroma style names, sorted.
func StyleNames() []string {
	return styles.Names()
}

// WithCodeTypeface sets the typeface for code.
func WithCodeTypeface(name string) Option {
	return func(c *Converter) error {
		if name != "" {
			c.typeface = name
		}
		return nil
	}
}

// New creates a Converter with GFM extensions enabled.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
				extension.Linkify,
				extension.TaskList,
			),
		),
		style:    styles.Get(DefaultCodeStyle),
		typeface: DefaultCodeTypeface,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Convert parses source and returns one notes body per section.
// goldmark has no context support, so parsing runs in a goroutine and
// Convert returns early when ctx is done.
func (c *Converter) Convert(ctx context.Context, source []byte) ([]*pptx.TextBody, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		bodies []*pptx.TextBody
		err    error
	}
	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: panic: %v", ErrConversion, r)}
			}
		}()
		src := normalize(source)
		doc := c.md.Parser().Parse(text.NewReader(src))
		b := newBuilder(src, c.style, c.typeface)
		done <- result{bodies: b.build(doc)}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.bodies, r.err
	}
}
