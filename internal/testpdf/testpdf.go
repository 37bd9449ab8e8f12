// Package testpdf builds small, valid PDF files for tests.
package testpdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Page is a page size in PDF points.
type Page struct {
	Width, Height float64
}

// Letter and A4 portrait pages, and a 16:9 landscape page.
var (
	Letter    = Page{612, 792}
	A4        = Page{595, 842}
	Landscape = Page{960, 540}
)

// Build returns a PDF with one page per entry. Each page holds a filled
// rectangle so rendered output is not blank.
func Build(pages ...Page) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")
	obj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := ""
	for i := range pages {
		kids += fmt.Sprintf("%d 0 R ", 3+2*i)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, len(pages)))

	for i, p := range pages {
		content := fmt.Sprintf("0.2 0.4 0.8 rg %g %g %g %g re f",
			p.Width/4, p.Height/4, p.Width/2, p.Height/2)
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %g] /Contents %d 0 R /Resources << >> >>",
			p.Width, p.Height, 4+2*i))
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

// BuildDamaged returns Build(pages...) cut off before the xref table, so
// the file has no cross-reference section and no trailer. MuPDF and poppler
// rebuild the table on open; pdfcpu rejects the file.
func BuildDamaged(pages ...Page) []byte {
	data := Build(pages...)
	return data[:bytes.Index(data, []byte("\nxref\n"))+1]
}

// WriteFile writes Build(pages...) to name inside a test temp directory
// and returns the path.
func WriteFile(t testing.TB, name string, pages ...Page) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, Build(pages...), 0o600); err != nil {
		t.Fatalf("writing test PDF: %v", err)
	}
	return path
}
