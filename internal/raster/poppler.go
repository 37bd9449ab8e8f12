package raster

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strconv"
	"strings"

	"github.com/alnah/go-pdf2pptx/internal/process"
)

// Poppler binaries.
const (
	pdftoppmBinary = "pdftoppm"
	pdfinfoBinary  = "pdfinfo"
)

// Runner runs a command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// LookPath reports the resolved path of a binary.
type LookPath func(file string) (string, error)

// PopplerOpener renders with the poppler-utils command line tools.
type PopplerOpener struct {
	// Run defaults to process.Output.
	Run Runner
	// Look defaults to exec.LookPath.
	Look LookPath
}

// Compile-time interface checks.
var (
	_ Opener   = (*PopplerOpener)(nil)
	_ Document = (*popplerDocument)(nil)
)

// Open checks both binaries are installed and reads the page count.
func (o *PopplerOpener) Open(ctx context.Context, path string) (Document, error) {
	run := o.Run
	if run == nil {
		run = process.Output
	}
	look := o.Look
	if look == nil {
		look = exec.LookPath
	}

	for _, bin := range []string{pdfinfoBinary, pdftoppmBinary} {
		if _, err := look(bin); err != nil {
			return nil, fmt.Errorf("%w: %s not found in PATH", ErrBackendUnavailable, bin)
		}
	}

	out, err := run(ctx, pdfinfoBinary, path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	pages, err := parsePdfinfoPages(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	return &popplerDocument{path: path, pages: pages, run: run}, nil
}

// parsePdfinfoPages extracts the "Pages:" field from pdfinfo output.
func parsePdfinfoPages(out []byte) (int, error) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok || strings.TrimSpace(key) != "Pages" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid page count %q", strings.TrimSpace(value))
		}
		return n, nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("pdfinfo output has no page count")
}

type popplerDocument struct {
	path  string
	pages int
	run   Runner
}

func (d *popplerDocument) NumPages() int { return d.pages }

func (d *popplerDocument) RenderPage(ctx context.Context, index, dpi int) (image.Image, error) {
	if err := checkRenderArgs(index, dpi, d.pages); err != nil {
		return nil, err
	}
	page := strconv.Itoa(index + 1)
	out, err := d.run(ctx, pdftoppmBinary,
		"-png", "-r", strconv.Itoa(dpi),
		"-f", page, "-l", page,
		"-singlefile", d.path,
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: page %d: %v", ErrRender, index+1, err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("%w: page %d: decoding pdftoppm output: %v", ErrRender, index+1, err)
	}
	return img, nil
}

func (d *popplerDocument) Close() error { return nil }
