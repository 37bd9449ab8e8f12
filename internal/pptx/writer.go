package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
	"time"
)

// Fixed identifiers of the skeleton. Static parts supplied by a PartLoader
// must use these relationship ids (the slide master refers to its layout as
// rId1, and so on).
const (
	slideMasterID   = 2147483648
	firstSlideID    = 256
	firstSlideRelID = 7
	notesWidthEMU   = 6858000
	notesHeightEMU  = 9144000
	applicationName = "go-pdf2pptx"
)

type staticPart struct {
	path        string
	contentType string
	rels        []relationship
}

var staticParts = map[string]staticPart{
	PartTheme:       {path: "ppt/theme/theme1.xml", contentType: ctTheme},
	PartNotesTheme:  {path: "ppt/theme/theme2.xml", contentType: ctTheme},
	PartPresProps:   {path: "ppt/presProps.xml", contentType: ctPresProps},
	PartViewProps:   {path: "ppt/viewProps.xml", contentType: ctViewProps},
	PartTableStyles: {path: "ppt/tableStyles.xml", contentType: ctTableStyles},
	PartSlideMaster: {
		path:        "ppt/slideMasters/slideMaster1.xml",
		contentType: ctSlideMaster,
		rels: []relationship{
			{id: "rId1", typ: relSlideLayout, target: "../slideLayouts/slideLayout1.xml"},
			{id: "rId2", typ: relTheme, target: "../theme/theme1.xml"},
		},
	},
	PartSlideLayout: {
		path:        "ppt/slideLayouts/slideLayout1.xml",
		contentType: ctSlideLayout,
		rels: []relationship{
			{id: "rId1", typ: relSlideMaster, target: "../slideMasters/slideMaster1.xml"},
		},
	},
	PartNotesMaster: {
		path:        "ppt/notesMasters/notesMaster1.xml",
		contentType: ctNotesMaster,
		rels: []relationship{
			{id: "rId1", typ: relTheme, target: "../theme/theme2.xml"},
		},
	},
}

// packagePart is one zip entry of the output package.
type packagePart struct {
	name        string
	contentType string // "" for parts covered by a Default entry
	data        []byte
	store       bool // already compressed
}

// Write serializes the deck as a PPTX package to w.
func (d *Deck) Write(w io.Writer) error {
	parts, err := d.buildPackage()
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	modified := d.now()
	for _, p := range parts {
		if err := writeZipEntry(zw, p, modified); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func writeZipEntry(zw *zip.Writer, p packagePart, modified time.Time) error {
	method := zip.Deflate
	if p.store {
		method = zip.Store
	}
	fw, err := zw.CreateHeader(&zip.FileHeader{
		Name:     p.name,
		Method:   method,
		Modified: modified,
	})
	if err != nil {
		return fmt.Errorf("create zip entry %s: %w", p.name, err)
	}
	if _, err := fw.Write(p.data); err != nil {
		return fmt.Errorf("write zip entry %s: %w", p.name, err)
	}
	return nil
}

// buildPackage assembles every part. [Content_Types].xml comes first, as
// some consumers expect.
func (d *Deck) buildPackage() ([]packagePart, error) {
	var parts []packagePart

	for _, name := range StaticParts {
		data, err := d.parts.LoadPart(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrPartLoad, name, err)
		}
		info := staticParts[name]
		parts = append(parts, packagePart{name: info.path, contentType: info.contentType, data: data})
		if len(info.rels) > 0 {
			parts = append(parts, packagePart{name: relsPath(info.path), data: relsXML(info.rels)})
		}
	}

	mediaCount := 0
	notesCount := 0
	for i, s := range d.slides {
		n := i + 1
		slidePath := fmt.Sprintf("ppt/slides/slide%d.xml", n)
		rels := []relationship{
			{id: "rId1", typ: relSlideLayout, target: "../slideLayouts/slideLayout1.xml"},
		}
		embeds := make([]string, len(s.pictures))
		for j, pic := range s.pictures {
			mediaCount++
			mediaName := fmt.Sprintf("image%d.%s", mediaCount, pic.Image.Format)
			embeds[j] = fmt.Sprintf("rId%d", j+2)
			rels = append(rels, relationship{id: embeds[j], typ: relImage, target: "../media/" + mediaName})
			parts = append(parts, packagePart{name: "ppt/media/" + mediaName, data: pic.Image.Data, store: true})
		}
		if s.notes != nil {
			notesCount++
			notesPath := fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n)
			rels = append(rels, relationship{
				id:     fmt.Sprintf("rId%d", len(s.pictures)+2),
				typ:    relNotesSlide,
				target: fmt.Sprintf("../notesSlides/notesSlide%d.xml", n),
			})
			parts = append(parts,
				packagePart{name: notesPath, contentType: ctNotesSlide, data: notesSlideXML(s.notes)},
				packagePart{name: relsPath(notesPath), data: relsXML([]relationship{
					{id: "rId1", typ: relNotesMaster, target: "../notesMasters/notesMaster1.xml"},
					{id: "rId2", typ: relSlide, target: fmt.Sprintf("../slides/slide%d.xml", n)},
				})},
			)
		}
		parts = append(parts,
			packagePart{name: slidePath, contentType: ctSlide, data: slideXML(s, embeds)},
			packagePart{name: relsPath(slidePath), data: relsXML(rels)},
		)
	}

	parts = append(parts,
		packagePart{name: "ppt/presentation.xml", contentType: ctPresentation, data: d.presentationXML()},
		packagePart{name: "ppt/_rels/presentation.xml.rels", data: d.presentationRelsXML()},
		packagePart{name: "docProps/core.xml", contentType: ctCoreProps, data: d.corePropsXML()},
		packagePart{name: "docProps/app.xml", contentType: ctExtProps, data: d.appPropsXML(notesCount)},
		packagePart{name: "_rels/.rels", data: relsXML([]relationship{
			{id: "rId1", typ: relOfficeDocument, target: "ppt/presentation.xml"},
			{id: "rId2", typ: relCoreProps, target: "docProps/core.xml"},
			{id: "rId3", typ: relExtendedProps, target: "docProps/app.xml"},
		})},
	)

	return append([]packagePart{{name: "[Content_Types].xml", data: contentTypesXML(parts)}}, parts...), nil
}

// relsPath returns the relationships part of a part: a/b.xml -> a/_rels/b.xml.rels.
func relsPath(partPath string) string {
	dir, file := "", partPath
	if i := strings.LastIndex(partPath, "/"); i >= 0 {
		dir, file = partPath[:i+1], partPath[i+1:]
	}
	return dir + "_rels/" + file + ".rels"
}

func contentTypesXML(parts []packagePart) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<Types xmlns="%s">`, nsCT)
	fmt.Fprintf(&b, `<Default Extension="rels" ContentType="%s"/>`, ctRels)
	fmt.Fprintf(&b, `<Default Extension="xml" ContentType="%s"/>`, ctXML)
	fmt.Fprintf(&b, `<Default Extension="png" ContentType="%s"/>`, FormatPNG.ContentType())
	fmt.Fprintf(&b, `<Default Extension="jpeg" ContentType="%s"/>`, FormatJPEG.ContentType())
	for _, p := range parts {
		if p.contentType == "" {
			continue
		}
		fmt.Fprintf(&b, `<Override PartName="/%s" ContentType="%s"/>`, p.name, p.contentType)
	}
	b.WriteString(`</Types>`)
	return []byte(b.String())
}

func (d *Deck) presentationXML() []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" saveSubsetFonts="1">`, nsA, nsR, nsP)
	fmt.Fprintf(&b, `<p:sldMasterIdLst><p:sldMasterId id="%d" r:id="rId1"/></p:sldMasterIdLst>`, slideMasterID)
	b.WriteString(`<p:notesMasterIdLst><p:notesMasterId r:id="rId2"/></p:notesMasterIdLst>`)
	if len(d.slides) > 0 {
		b.WriteString(`<p:sldIdLst>`)
		for i := range d.slides {
			fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, firstSlideID+i, firstSlideRelID+i)
		}
		b.WriteString(`</p:sldIdLst>`)
	}
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, d.size.Width, d.size.Height)
	fmt.Fprintf(&b, `<p:notesSz cx="%d" cy="%d"/>`, notesWidthEMU, notesHeightEMU)
	b.WriteString(`<p:defaultTextStyle/>`)
	b.WriteString(`</p:presentation>`)
	return []byte(b.String())
}

func (d *Deck) presentationRelsXML() []byte {
	rels := []relationship{
		{id: "rId1", typ: relSlideMaster, target: "slideMasters/slideMaster1.xml"},
		{id: "rId2", typ: relNotesMaster, target: "notesMasters/notesMaster1.xml"},
		{id: "rId3", typ: relTheme, target: "theme/theme1.xml"},
		{id: "rId4", typ: relPresProps, target: "presProps.xml"},
		{id: "rId5", typ: relViewProps, target: "viewProps.xml"},
		{id: "rId6", typ: relTableStyles, target: "tableStyles.xml"},
	}
	for i := range d.slides {
		rels = append(rels, relationship{
			id:     fmt.Sprintf("rId%d", firstSlideRelID+i),
			typ:    relSlide,
			target: fmt.Sprintf("slides/slide%d.xml", i+1),
		})
	}
	return relsXML(rels)
}

func slideXML(s *Slide, embeds []string) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)
	for i, pic := range s.pictures {
		b.WriteString(`<p:pic><p:nvPicPr>`)
		fmt.Fprintf(&b, `<p:cNvPr id="%d" name="%s"/>`, i+2, escape(pic.Name))
		b.WriteString(`<p:cNvPicPr><a:picLocks noChangeAspect="1"/></p:cNvPicPr><p:nvPr/></p:nvPicPr>`)
		fmt.Fprintf(&b, `<p:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`, embeds[i])
		fmt.Fprintf(&b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
			pic.X, pic.Y, pic.Size.Width, pic.Size.Height)
		b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`)
	}
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return []byte(b.String())
}

func notesSlideXML(body *TextBody) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:notes xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`)
	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Slide Image Placeholder 1"/>`)
	b.WriteString(`<p:cNvSpPr><a:spLocks noGrp="1" noRot="1" noChangeAspect="1"/></p:cNvSpPr>`)
	b.WriteString(`<p:nvPr><p:ph type="sldImg"/></p:nvPr></p:nvSpPr><p:spPr/></p:sp>`)
	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="3" name="Notes Placeholder 2"/>`)
	b.WriteString(`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>`)
	b.WriteString(`<p:nvPr><p:ph type="body" idx="3"/></p:nvPr></p:nvSpPr><p:spPr/>`)
	b.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/>`)
	writeTextBody(&b, body)
	b.WriteString(`</p:txBody></p:sp>`)
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:notes>`)
	return []byte(b.String())
}

func (d *Deck) corePropsXML() []byte {
	now := d.now().UTC().Format(time.RFC3339)
	p := d.props

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/"` +
		` xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	fmt.Fprintf(&b, `<dc:title>%s</dc:title>`, escape(p.Title))
	if p.Subject != "" {
		fmt.Fprintf(&b, `<dc:subject>%s</dc:subject>`, escape(p.Subject))
	}
	fmt.Fprintf(&b, `<dc:creator>%s</dc:creator>`, escape(p.Author))
	if p.Keywords != "" {
		fmt.Fprintf(&b, `<cp:keywords>%s</cp:keywords>`, escape(p.Keywords))
	}
	fmt.Fprintf(&b, `<cp:lastModifiedBy>%s</cp:lastModifiedBy>`, escape(p.Author))
	b.WriteString(`<cp:revision>1</cp:revision>`)
	fmt.Fprintf(&b, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, now)
	fmt.Fprintf(&b, `<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, now)
	b.WriteString(`</cp:coreProperties>`)
	return []byte(b.String())
}

func (d *Deck) appPropsXML(notesCount int) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"` +
		` xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">`)
	fmt.Fprintf(&b, `<Application>%s</Application>`, applicationName)
	b.WriteString(`<PresentationFormat>Custom</PresentationFormat>`)
	fmt.Fprintf(&b, `<Slides>%d</Slides><Notes>%d</Notes>`, len(d.slides), notesCount)
	b.WriteString(`<HiddenSlides>0</HiddenSlides><MMClips>0</MMClips><ScaleCrop>false</ScaleCrop>`)
	b.WriteString(`<LinksUpToDate>false</LinksUpToDate><SharedDoc>false</SharedDoc>`)
	b.WriteString(`<HyperlinksChanged>false</HyperlinksChanged><AppVersion>16.0000</AppVersion>`)
	b.WriteString(`</Properties>`)
	return []byte(b.String())
}
