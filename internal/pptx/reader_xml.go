package pptx

type xmlRelationships struct {
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type xmlPresentation struct {
	SlideIDs []struct {
		RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
	SlideSize struct {
		CX int64 `xml:"cx,attr"`
		CY int64 `xml:"cy,attr"`
	} `xml:"sldSz"`
}

// xmlSlide matches both p:sld and p:notes, which share cSld/spTree.
type xmlSlide struct {
	Tree xmlShapeTree `xml:"cSld>spTree"`
}

type xmlShapeTree struct {
	Shapes   []xmlShape     `xml:"sp"`
	Pictures []xmlPicture   `xml:"pic"`
	Groups   []xmlShapeTree `xml:"grpSp"`
}

type xmlShape struct {
	Placeholder *struct {
		Type string `xml:"type,attr"`
		Idx  string `xml:"idx,attr"`
	} `xml:"nvSpPr>nvPr>ph"`
	TxBody *xmlTextBody `xml:"txBody"`
}

type xmlPicture struct {
	Blip struct {
		Embed string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships embed,attr"`
	} `xml:"blipFill>blip"`
	Off struct {
		X int64 `xml:"x,attr"`
		Y int64 `xml:"y,attr"`
	} `xml:"spPr>xfrm>off"`
	Ext struct {
		CX int64 `xml:"cx,attr"`
		CY int64 `xml:"cy,attr"`
	} `xml:"spPr>xfrm>ext"`
}

type xmlTextBody struct {
	Paragraphs []xmlParagraph `xml:"p"`
}

type xmlParagraph struct {
	Runs []xmlRun `xml:"r"`
}

type xmlRun struct {
	Props *xmlRunProps `xml:"rPr"`
	Text  string       `xml:"t"`
}

type xmlRunProps struct {
	Bold      *string `xml:"b,attr"`
	Italic    *string `xml:"i,attr"`
	Underline string  `xml:"u,attr"`
	Size      int     `xml:"sz,attr"`
	SolidFill *struct {
		SRGB *struct {
			Val string `xml:"val,attr"`
		} `xml:"srgbClr"`
	} `xml:"solidFill"`
	Latin *struct {
		Typeface string `xml:"typeface,attr"`
	} `xml:"latin"`
}

// allPictures returns pictures of the tree and of nested groups, in
// document order per level.
func (t xmlShapeTree) allPictures() []xmlPicture {
	pics := append([]xmlPicture(nil), t.Pictures...)
	for _, g := range t.Groups {
		pics = append(pics, g.allPictures()...)
	}
	return pics
}

// bodyPlaceholder returns the notes body placeholder, the first shape whose
// placeholder type is "body".
func (t xmlShapeTree) bodyPlaceholder() *xmlShape {
	for i := range t.Shapes {
		ph := t.Shapes[i].Placeholder
		if ph != nil && ph.Type == "body" {
			return &t.Shapes[i]
		}
	}
	return nil
}

func (b *xmlTextBody) toTextBody() *TextBody {
	body := &TextBody{}
	for _, p := range b.Paragraphs {
		para := &Paragraph{}
		for _, r := range p.Runs {
			para.Runs = append(para.Runs, &Run{Text: r.Text, Font: r.Props.toFont()})
		}
		body.Paragraphs = append(body.Paragraphs, para)
	}
	if len(body.Paragraphs) == 0 {
		body.Paragraphs = []*Paragraph{{}}
	}
	return body
}

func (p *xmlRunProps) toFont() Font {
	if p == nil {
		return Font{}
	}
	f := Font{
		Bold:      parseXMLBool(p.Bold),
		Italic:    parseXMLBool(p.Italic),
		Underline: p.Underline,
		Size:      p.Size,
	}
	if p.SolidFill != nil && p.SolidFill.SRGB != nil {
		if c, err := ParseRGB(p.SolidFill.SRGB.Val); err == nil {
			f.Color = &c
		}
	}
	if p.Latin != nil {
		f.Typeface = p.Latin.Typeface
	}
	return f
}

func parseXMLBool(v *string) *bool {
	if v == nil {
		return nil
	}
	switch *v {
	case "1", "true", "on":
		return Bool(true)
	case "0", "false", "off":
		return Bool(false)
	}
	return nil
}
