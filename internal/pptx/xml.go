package pptx

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// XML namespaces.
const (
	nsA    = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP    = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsRels = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCT   = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Relationship types.
const (
	relOfficeDocument = nsR + "/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = nsR + "/extended-properties"
	relSlideMaster    = nsR + "/slideMaster"
	relSlideLayout    = nsR + "/slideLayout"
	relNotesMaster    = nsR + "/notesMaster"
	relNotesSlide     = nsR + "/notesSlide"
	relSlide          = nsR + "/slide"
	relTheme          = nsR + "/theme"
	relImage          = nsR + "/image"
	relPresProps      = nsR + "/presProps"
	relViewProps      = nsR + "/viewProps"
	relTableStyles    = nsR + "/tableStyles"
)

// Content types.
const (
	ctRels         = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML          = "application/xml"
	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctNotesSlide   = "application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctNotesMaster  = "application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

type relationship struct {
	id     string
	typ    string
	target string
}

func relsXML(rels []relationship) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<Relationships xmlns="%s">`, nsRels)
	for _, r := range rels {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s"/>`, r.id, r.typ, escape(r.target))
	}
	b.WriteString(`</Relationships>`)
	return []byte(b.String())
}

// writeTextBody writes the a:p elements of body.
func writeTextBody(b *strings.Builder, body *TextBody) {
	if body == nil || len(body.Paragraphs) == 0 {
		b.WriteString(`<a:p><a:endParaRPr lang="en-US" dirty="0"/></a:p>`)
		return
	}
	for _, p := range body.Paragraphs {
		writeParagraph(b, p)
	}
}

func writeParagraph(b *strings.Builder, p *Paragraph) {
	if len(p.Runs) == 0 {
		b.WriteString(`<a:p><a:endParaRPr lang="en-US" dirty="0"/></a:p>`)
		return
	}
	b.WriteString(`<a:p>`)
	for _, r := range p.Runs {
		writeRun(b, r)
	}
	b.WriteString(`</a:p>`)
}

func writeRun(b *strings.Builder, r *Run) {
	f := r.Font
	b.WriteString(`<a:r><a:rPr lang="en-US"`)
	if f.Size > 0 {
		fmt.Fprintf(b, ` sz="%d"`, f.Size)
	}
	if f.Bold != nil {
		fmt.Fprintf(b, ` b="%s"`, xmlBool(*f.Bold))
	}
	if f.Italic != nil {
		fmt.Fprintf(b, ` i="%s"`, xmlBool(*f.Italic))
	}
	if f.Underline != "" {
		fmt.Fprintf(b, ` u="%s"`, escape(f.Underline))
	}
	b.WriteString(` dirty="0"`)

	if f.Color == nil && f.Typeface == "" {
		b.WriteString(`/>`)
	} else {
		b.WriteString(`>`)
		if f.Color != nil {
			fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, f.Color)
		}
		if f.Typeface != "" {
			face := escape(f.Typeface)
			fmt.Fprintf(b, `<a:latin typeface="%s"/><a:cs typeface="%s"/>`, face, face)
		}
		b.WriteString(`</a:rPr>`)
	}
	fmt.Fprintf(b, `<a:t>%s</a:t></a:r>`, escape(r.Text))
}

func xmlBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
