package pptx

// Notes:
// - Round trips go through Write then Read so the reader is exercised on the
//   exact XML the writer produces.
// - Hand-written packages cover constructs the writer never emits (theme
//   colors, notes without a body placeholder).
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestRoundTrip - Write then Read
// ---------------------------------------------------------------------------

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	d := newTestDeck(t)
	sizes := []Size{SizeFromInches(10, 12.9412), SizeFromInches(10, 5.625)}
	for _, size := range sizes {
		s, err := d.AddSlide(size)
		if err != nil {
			t.Fatalf("AddSlide() error = %v", err)
		}
		if _, err := s.AddPicture(Image{Data: pngData, Format: FormatPNG}, 0, 0, size); err != nil {
			t.Fatalf("AddPicture() error = %v", err)
		}
	}

	red := RGB{R: 0xC0, G: 0x10, B: 0x20}
	notes := d.Slides()[0].NotesTextBody()
	first := notes.Paragraphs[0]
	r := first.AddRun("Intro ")
	r.Font.Bold = Bool(true)
	r = first.AddRun("<emphasis> & more")
	r.Font.Italic = Bool(true)
	r.Font.Underline = UnderlineSingle
	r.Font.Size = 1800
	r.Font.Color = &red
	second := notes.AddParagraph()
	r = second.AddRun("code")
	r.Font.Typeface = "Consolas"
	r.Font.Bold = Bool(false)

	data, err := d.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	pres, err := Read(data)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(pres.Slides) != 2 {
		t.Fatalf("len(Slides) = %d, want 2", len(pres.Slides))
	}
	if pres.Size != sizes[1] {
		t.Errorf("presentation size = %+v, want %+v", pres.Size, sizes[1])
	}
	for i, s := range pres.Slides {
		if len(s.Pictures) != 1 {
			t.Fatalf("slide %d: len(Pictures) = %d, want 1", i, len(s.Pictures))
		}
		pic := s.Pictures[0]
		if pic.Size != sizes[i] {
			t.Errorf("slide %d picture size = %+v, want %+v", i, pic.Size, sizes[i])
		}
		if pic.X != 0 || pic.Y != 0 {
			t.Errorf("slide %d picture offset = (%d,%d), want origin", i, pic.X, pic.Y)
		}
		if pic.Target == "" {
			t.Errorf("slide %d picture target not resolved", i)
		}
	}

	if diff := cmp.Diff(notes, pres.NotesAt(0)); diff != "" {
		t.Errorf("notes mismatch (-want +got):\n%s", diff)
	}
	if pres.NotesAt(1) != nil {
		t.Errorf("slide 2 notes = %+v, want nil", pres.NotesAt(1))
	}
	if pres.NotesAt(5) != nil {
		t.Error("NotesAt() out of range should be nil")
	}
}

func TestRoundTripEmptyDeck(t *testing.T) {
	t.Parallel()

	data, err := newTestDeck(t).Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	pres, err := Read(data)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(pres.Slides) != 0 {
		t.Errorf("len(Slides) = %d, want 0", len(pres.Slides))
	}
	if pres.Size != DefaultSize {
		t.Errorf("Size = %+v, want %+v", pres.Size, DefaultSize)
	}
}

// ---------------------------------------------------------------------------
// TestReadThemeColor - Inherited colors are not reported as RGB
// ---------------------------------------------------------------------------

func TestReadThemeColor(t *testing.T) {
	t.Parallel()

	notesXML := `<p:notes xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `"><p:cSld><p:spTree>` +
		`<p:sp><p:nvSpPr><p:cNvPr id="2" name="img"/><p:cNvSpPr/><p:nvPr><p:ph type="sldImg"/></p:nvPr></p:nvSpPr></p:sp>` +
		`<p:sp><p:nvSpPr><p:cNvPr id="3" name="body"/><p:cNvSpPr/><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr>` +
		`<p:txBody><a:bodyPr/><a:p>` +
		`<a:r><a:rPr b="true"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill></a:rPr><a:t>theme</a:t></a:r>` +
		`<a:r><a:rPr u="sng"><a:solidFill><a:srgbClr val="00ff7f"/></a:solidFill></a:rPr><a:t>rgb</a:t></a:r>` +
		`<a:r><a:t>plain</a:t></a:r>` +
		`</a:p></p:txBody></p:sp></p:spTree></p:cSld></p:notes>`

	pres, err := Read(buildPackage(t, notesXML))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := &TextBody{Paragraphs: []*Paragraph{{Runs: []*Run{
		{Text: "theme", Font: Font{Bold: Bool(true)}},
		{Text: "rgb", Font: Font{Underline: UnderlineSingle, Color: &RGB{R: 0x00, G: 0xFF, B: 0x7F}}},
		{Text: "plain"},
	}}}}
	if diff := cmp.Diff(want, pres.NotesAt(0)); diff != "" {
		t.Errorf("notes mismatch (-want +got):\n%s", diff)
	}
}

func TestReadNotesWithoutBody(t *testing.T) {
	t.Parallel()

	notesXML := `<p:notes xmlns:a="` + nsA + `" xmlns:p="` + nsP + `"><p:cSld><p:spTree>` +
		`<p:sp><p:nvSpPr><p:cNvPr id="2" name="img"/><p:cNvSpPr/><p:nvPr><p:ph type="sldImg"/></p:nvPr></p:nvSpPr></p:sp>` +
		`</p:spTree></p:cSld></p:notes>`

	pres, err := Read(buildPackage(t, notesXML))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if pres.NotesAt(0) != nil {
		t.Errorf("NotesAt(0) = %+v, want nil", pres.NotesAt(0))
	}
}

// ---------------------------------------------------------------------------
// TestReadErrors - Invalid inputs
// ---------------------------------------------------------------------------

func TestReadErrors(t *testing.T) {
	t.Parallel()

	var emptyZip bytes.Buffer
	zw := zip.NewWriter(&emptyZip)
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"not a zip", []byte("%PDF-1.7"), ErrInvalidPackage},
		{"empty zip", emptyZip.Bytes(), ErrNotPresentation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Read(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Open(filepath.Join(t.TempDir(), "missing.pptx"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("reads file from disk", func(t *testing.T) {
		t.Parallel()
		d := newTestDeck(t)
		if _, err := d.AddSlide(DefaultSize); err != nil {
			t.Fatalf("AddSlide() error = %v", err)
		}
		data, err := d.Bytes()
		if err != nil {
			t.Fatalf("Bytes() error = %v", err)
		}
		path := filepath.Join(t.TempDir(), "deck.pptx")
		if err := os.WriteFile(path, data, 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		pres, err := Open(path)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if len(pres.Slides) != 1 {
			t.Errorf("len(Slides) = %d, want 1", len(pres.Slides))
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveTarget - Relationship target resolution
// ---------------------------------------------------------------------------

func TestResolveTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, target, want string
	}{
		{"", "ppt/presentation.xml", "ppt/presentation.xml"},
		{"", "/ppt/presentation.xml", "ppt/presentation.xml"},
		{"ppt", "slides/slide1.xml", "ppt/slides/slide1.xml"},
		{"ppt/slides", "../notesSlides/notesSlide1.xml", "ppt/notesSlides/notesSlide1.xml"},
		{"ppt/slides", "/ppt/media/image1.png", "ppt/media/image1.png"},
	}
	for _, tt := range tests {
		if got := resolveTarget(tt.base, tt.target); got != tt.want {
			t.Errorf("resolveTarget(%q, %q) = %q, want %q", tt.base, tt.target, got, tt.want)
		}
	}
}

// buildPackage writes a one-slide package whose slide links to notesXML.
// Targets use the absolute form some producers emit.
func buildPackage(t *testing.T, notesXML string) []byte {
	t.Helper()

	parts := map[string]string{
		"_rels/.rels": string(relsXML([]relationship{
			{id: "rId1", typ: relOfficeDocument, target: "/ppt/presentation.xml"},
		})),
		"ppt/presentation.xml": `<p:presentation xmlns:r="` + nsR + `" xmlns:p="` + nsP + `">` +
			`<p:sldIdLst><p:sldId id="256" r:id="rId9"/></p:sldIdLst><p:sldSz cx="9144000" cy="6858000"/></p:presentation>`,
		"ppt/_rels/presentation.xml.rels": string(relsXML([]relationship{
			{id: "rId9", typ: relSlide, target: "slides/slide1.xml"},
		})),
		"ppt/slides/slide1.xml": `<p:sld xmlns:p="` + nsP + `"><p:cSld><p:spTree/></p:cSld></p:sld>`,
		"ppt/slides/_rels/slide1.xml.rels": string(relsXML([]relationship{
			{id: "rId1", typ: relNotesSlide, target: "/ppt/notesSlides/notesSlide1.xml"},
		})),
		"ppt/notesSlides/notesSlide1.xml": notesXML,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}
