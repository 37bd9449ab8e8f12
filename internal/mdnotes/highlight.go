package mdnotes

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-pdf2pptx/internal/pptx"
)

// code writes one paragraph per source line, coloring tokens with the
// converter's chroma style.
func (b *builder) code(lines *text.Segments, lang string, depth int, font pptx.Font) {
	var src strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		src.Write(seg.Value(b.src))
	}
	code := strings.TrimRight(src.String(), "\n")

	base := font
	base.Typeface = b.typeface
	prefix := strings.Repeat(indent, depth)
	b.startParagraph(prefix, base)

	iter, err := selectLexer(lang, code).Tokenise(nil, code)
	if err != nil {
		for i, line := range strings.Split(code, "\n") {
			if i > 0 {
				b.startParagraph(prefix, base)
			}
			b.addRun(line, base)
		}
		return
	}

	for _, tok := range trimTrailingNewlines(iter.Tokens()) {
		f := b.tokenFont(tok.Type, base)
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				b.startParagraph(prefix, base)
			}
			b.addRun(part, f)
		}
	}
}

// trimTrailingNewlines drops the newline lexers append to their input.
func trimTrailingNewlines(tokens []chroma.Token) []chroma.Token {
	for len(tokens) > 0 {
		last := &tokens[len(tokens)-1]
		last.Value = strings.TrimRight(last.Value, "\n")
		if last.Value != "" {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

func selectLexer(lang, code string) chroma.Lexer {
	var l chroma.Lexer
	if lang != "" {
		l = lexers.Get(lang)
	}
	if l == nil {
		l = lexers.Analyse(code)
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

func (b *builder) tokenFont(tt chroma.TokenType, base pptx.Font) pptx.Font {
	f := base
	if b.style == nil {
		return f
	}
	entry := b.style.Get(tt)
	if entry.Colour.IsSet() {
		f.Color = &pptx.RGB{R: entry.Colour.Red(), G: entry.Colour.Green(), B: entry.Colour.Blue()}
	}
	if entry.Bold == chroma.Yes {
		f.Bold = pptx.Bool(true)
	}
	if entry.Italic == chroma.Yes {
		f.Italic = pptx.Bool(true)
	}
	if entry.Underline == chroma.Yes {
		f.Underline = pptx.UnderlineSingle
	}
	return f
}
