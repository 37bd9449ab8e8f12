// Package pdfinfo inspects PDF files before rendering: it tells unreadable
// files apart from corrupt ones and reports page count and page sizes.
package pdfinfo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// Sentinel errors.
var (
	ErrUnreadable = errors.New("document unreadable")
	ErrCorrupt    = errors.New("document corrupt")
	ErrEncrypted  = errors.New("document is password protected")
)

// headerWindow is how far into the file the %PDF- marker may appear.
const headerWindow = 1024

var disableConfig sync.Once

// PageSize is a page size in PDF points, with rotation applied.
type PageSize struct {
	Width  float64
	Height float64
}

// Info describes a readable, well-formed PDF.
type Info struct {
	Path  string
	Pages []PageSize
}

// PageCount returns the number of pages.
func (i *Info) PageCount() int { return len(i.Pages) }

// Inspect opens path and parses its page tree.
//
// Missing files, directories, and permission failures return ErrUnreadable.
// Files that are not PDFs or fail to parse return ErrCorrupt.
func Inspect(path string) (*Info, error) {
	disableConfig.Do(api.DisableConfigDir)

	if err := CheckHeader(path); err != nil {
		return nil, err
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		if errors.Is(err, pdfcpu.ErrWrongPassword) {
			return nil, fmt.Errorf("%w: %w: %s", ErrCorrupt, ErrEncrypted, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}

	info := &Info{Path: path, Pages: make([]PageSize, len(dims))}
	for i, d := range dims {
		info.Pages[i] = PageSize{Width: d.Width, Height: d.Height}
	}
	return info, nil
}

// CheckHeader verifies path is a readable file that starts like a PDF.
// It does not parse the document, so damaged files a renderer can repair
// still pass.
func CheckHeader(path string) error {
	f, err := os.Open(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if st.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrUnreadable, path)
	}

	head := make([]byte, headerWindow)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if !bytes.Contains(head[:n], []byte("%PDF-")) {
		return fmt.Errorf("%w: %s has no PDF header", ErrCorrupt, path)
	}
	return nil
}
