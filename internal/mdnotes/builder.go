package mdnotes

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"

	"github.com/alnah/go-pdf2pptx/internal/pptx"
)

// Heading sizes in hundredths of a point. Deeper levels keep the
// inherited size and are only bolded.
var headingSizes = map[int]int{1: 1600, 2: 1400}

var linkColor = pptx.RGB{R: 0x05, G: 0x63, B: 0xC1}

const (
	bullet = "• "
	indent = "    "
)

// builder walks a goldmark AST and accumulates notes bodies.
type builder struct {
	src      []byte
	style    *chroma.Style
	typeface string

	bodies []*pptx.TextBody
	paras  []*pptx.Paragraph
	cur    *pptx.Paragraph
}

func newBuilder(src []byte, style *chroma.Style, typeface string) *builder {
	return &builder{src: src, style: style, typeface: typeface}
}

func (b *builder) build(doc ast.Node) []*pptx.TextBody {
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() == ast.KindThematicBreak {
			b.flushSection()
			continue
		}
		b.block(n, 0, pptx.Font{})
	}
	b.flushSection()
	return b.bodies
}

func (b *builder) flushSection() {
	body := pptx.NewTextBody()
	if len(b.paras) > 0 {
		body.Paragraphs = b.paras
	}
	b.bodies = append(b.bodies, body)
	b.paras = nil
	b.cur = nil
}

// startParagraph begins a new paragraph with an optional prefix run.
func (b *builder) startParagraph(prefix string, font pptx.Font) {
	b.cur = &pptx.Paragraph{}
	b.paras = append(b.paras, b.cur)
	if prefix != "" {
		b.addRun(prefix, font)
	}
}

func (b *builder) addRun(s string, font pptx.Font) {
	if s == "" {
		return
	}
	if b.cur == nil {
		b.startParagraph("", pptx.Font{})
	}
	r := b.cur.AddRun(s)
	r.Font = font
}

func (b *builder) block(n ast.Node, depth int, font pptx.Font) {
	switch n := n.(type) {
	case *ast.Heading:
		f := font
		f.Bold = pptx.Bool(true)
		f.Size = headingSizes[n.Level]
		b.startParagraph("", f)
		b.inlines(n, f)

	case *ast.Paragraph, *ast.TextBlock:
		b.startParagraph(strings.Repeat(indent, depth), font)
		b.inlines(n, font)

	case *ast.List:
		num := n.Start
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			marker := bullet
			if n.IsOrdered() {
				marker = strconv.Itoa(num) + ". "
				num++
			}
			b.listItem(item, marker, depth, font)
		}

	case *ast.Blockquote:
		f := font
		f.Italic = pptx.Bool(true)
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			b.block(c, depth, f)
		}

	case *ast.FencedCodeBlock:
		b.code(n.Lines(), string(n.Language(b.src)), depth, font)

	case *ast.CodeBlock:
		b.code(n.Lines(), "", depth, font)

	case *extast.Table:
		b.table(n, depth, font)

	case *ast.HTMLBlock:
		// Raw HTML has no notes equivalent.

	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			b.block(c, depth, font)
		}
	}
}

// listItem writes the item's first block after the marker and the rest
// one level deeper.
func (b *builder) listItem(item ast.Node, marker string, depth int, font pptx.Font) {
	first := true
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.Kind() {
		case ast.KindParagraph, ast.KindTextBlock:
			if first {
				b.startParagraph(strings.Repeat(indent, depth)+marker, font)
				b.inlines(c, font)
				first = false
				continue
			}
			b.block(c, depth+1, font)
		default:
			if first {
				b.startParagraph(strings.Repeat(indent, depth)+marker, font)
				first = false
			}
			b.block(c, depth+1, font)
		}
	}
	if first {
		b.startParagraph(strings.Repeat(indent, depth)+marker, font)
	}
}

func (b *builder) table(t *extast.Table, depth int, font pptx.Font) {
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		f := font
		if row.Kind() == extast.KindTableHeader {
			f.Bold = pptx.Bool(true)
		}
		b.startParagraph(strings.Repeat(indent, depth), f)
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if cell != row.FirstChild() {
				b.addRun(" | ", f)
			}
			b.inlines(cell, f)
		}
	}
}

func (b *builder) inlines(parent ast.Node, font pptx.Font) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		b.inline(n, font)
	}
}

func (b *builder) inline(n ast.Node, font pptx.Font) {
	switch n := n.(type) {
	case *ast.Text:
		b.addRun(string(n.Segment.Value(b.src)), font)
		switch {
		case n.HardLineBreak():
			b.startParagraph("", font)
		case n.SoftLineBreak():
			b.addRun(" ", font)
		}

	case *ast.String:
		b.addRun(string(n.Value), font)

	case *ast.Emphasis:
		f := font
		if n.Level >= 2 {
			f.Bold = pptx.Bool(true)
		} else {
			f.Italic = pptx.Bool(true)
		}
		b.inlines(n, f)

	case *ast.CodeSpan:
		f := font
		f.Typeface = b.typeface
		b.inlines(n, f)

	case *ast.Link:
		f := font
		f.Underline = pptx.UnderlineSingle
		f.Color = &linkColor
		before := b.plainText(n)
		b.inlines(n, f)
		if dest := string(n.Destination); dest != "" && dest != before {
			b.addRun(" <"+dest+">", font)
		}

	case *ast.AutoLink:
		f := font
		f.Underline = pptx.UnderlineSingle
		f.Color = &linkColor
		b.addRun(string(n.URL(b.src)), f)

	case *ast.Image:
		b.addRun("[image: "+b.plainText(n)+"]", font)

	case *extast.TaskCheckBox:
		if n.IsChecked {
			b.addRun("[x] ", font)
		} else {
			b.addRun("[ ] ", font)
		}

	case *ast.RawHTML:
		// Dropped.

	default:
		b.inlines(n, font)
	}
}

// plainText returns the concatenated text of n's descendants.
func (b *builder) plainText(n ast.Node) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			buf.Write(c.Segment.Value(b.src))
		case *ast.String:
			buf.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
