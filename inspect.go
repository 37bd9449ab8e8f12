package pdf2pptx

import (
	"github.com/alnah/go-pdf2pptx/internal/pdfinfo"
)

// pointsPerInch converts PDF user space units to inches.
const pointsPerInch = 72.0

// PageInfo describes one PDF page.
type PageInfo struct {
	Number       int     `json:"number" yaml:"number"`
	WidthPoints  float64 `json:"widthPoints" yaml:"widthPoints"`
	HeightPoints float64 `json:"heightPoints" yaml:"heightPoints"`
	WidthInches  float64 `json:"widthInches" yaml:"widthInches"`
	HeightInches float64 `json:"heightInches" yaml:"heightInches"`
}

// DocumentInfo describes a PDF without rendering it.
type DocumentInfo struct {
	Path  string     `json:"path" yaml:"path"`
	Pages []PageInfo `json:"pages" yaml:"pages"`
}

// PageCount returns the number of pages.
func (d *DocumentInfo) PageCount() int { return len(d.Pages) }

// Inspect reads the page tree of the PDF at path. It fails with
// ErrDocumentUnreadable or ErrDocumentCorrupt like Convert does.
func Inspect(path string) (*DocumentInfo, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	info, err := pdfinfo.Inspect(path)
	if err != nil {
		return nil, inspectError(path, err)
	}

	out := &DocumentInfo{Path: path, Pages: make([]PageInfo, len(info.Pages))}
	for i, p := range info.Pages {
		out.Pages[i] = PageInfo{
			Number:       i + 1,
			WidthPoints:  p.Width,
			HeightPoints: p.Height,
			WidthInches:  p.Width / pointsPerInch,
			HeightInches: p.Height / pointsPerInch,
		}
	}
	return out, nil
}
