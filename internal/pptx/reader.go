package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// maxPartSize bounds a single XML part read from an untrusted package.
const maxPartSize = 32 << 20

// Presentation is the read-only view of an existing deck.
type Presentation struct {
	Size   Size
	Slides []*SlideContent
}

// SlideContent holds what the reader extracts from one slide.
type SlideContent struct {
	Index    int
	Path     string
	Pictures []PictureInfo
	Notes    *TextBody // nil when the slide has no notes body
}

// PictureInfo describes a picture found on a slide.
type PictureInfo struct {
	X, Y   int64
	Size   Size
	Target string // package path of the embedded image
}

// NotesAt returns the notes of slide i, or nil when the slide does not
// exist or has no notes body.
func (p *Presentation) NotesAt(i int) *TextBody {
	if p == nil || i < 0 || i >= len(p.Slides) {
		return nil
	}
	return p.Slides[i].Notes
}

// Open reads the presentation at path.
func Open(filePath string) (*Presentation, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("reading presentation: %w", err)
	}
	return Read(data)
}

// Read parses a PPTX package held in memory.
func Read(data []byte) (*Presentation, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}
	pkg := &packageReader{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		pkg.files[f.Name] = f
	}
	return pkg.presentation()
}

type packageReader struct {
	files map[string]*zip.File
}

func (r *packageReader) presentation() (*Presentation, error) {
	rootRels, err := r.rels("")
	if err != nil {
		return nil, err
	}
	presPath := ""
	for _, rel := range rootRels {
		if rel.Type == relOfficeDocument {
			presPath = resolveTarget("", rel.Target)
			break
		}
	}
	if presPath == "" {
		return nil, ErrNotPresentation
	}

	var pres xmlPresentation
	if err := r.decode(presPath, &pres); err != nil {
		return nil, err
	}
	presRels, err := r.relsOf(presPath)
	if err != nil {
		return nil, err
	}

	out := &Presentation{Size: Size{Width: pres.SlideSize.CX, Height: pres.SlideSize.CY}}
	for i, id := range pres.SlideIDs {
		rel, ok := presRels[id.RID]
		if !ok {
			return nil, fmt.Errorf("%w: slide relationship %s", ErrMissingPart, id.RID)
		}
		slide, err := r.slide(i, resolveTarget(path.Dir(presPath), rel.Target))
		if err != nil {
			return nil, err
		}
		out.Slides = append(out.Slides, slide)
	}
	return out, nil
}

func (r *packageReader) slide(index int, slidePath string) (*SlideContent, error) {
	var sld xmlSlide
	if err := r.decode(slidePath, &sld); err != nil {
		return nil, err
	}
	rels, err := r.relsOf(slidePath)
	if err != nil {
		return nil, err
	}

	content := &SlideContent{Index: index, Path: slidePath}
	for _, pic := range sld.Tree.allPictures() {
		info := PictureInfo{
			X:    pic.Off.X,
			Y:    pic.Off.Y,
			Size: Size{Width: pic.Ext.CX, Height: pic.Ext.CY},
		}
		if rel, ok := rels[pic.Blip.Embed]; ok {
			info.Target = resolveTarget(path.Dir(slidePath), rel.Target)
		}
		content.Pictures = append(content.Pictures, info)
	}

	for _, rel := range rels {
		if rel.Type != relNotesSlide {
			continue
		}
		var notes xmlSlide
		if err := r.decode(resolveTarget(path.Dir(slidePath), rel.Target), &notes); err != nil {
			return nil, err
		}
		if shape := notes.Tree.bodyPlaceholder(); shape != nil && shape.TxBody != nil {
			content.Notes = shape.TxBody.toTextBody()
		}
		break
	}
	return content, nil
}

// rels reads the relationships of the package root ("") or of a part.
func (r *packageReader) rels(partPath string) ([]xmlRelationship, error) {
	relsName := "_rels/.rels"
	if partPath != "" {
		relsName = relsPath(partPath)
	}
	if _, ok := r.files[relsName]; !ok {
		if partPath == "" {
			return nil, fmt.Errorf("%w: %s", ErrNotPresentation, relsName)
		}
		return nil, nil
	}
	var doc xmlRelationships
	if err := r.decode(relsName, &doc); err != nil {
		return nil, err
	}
	return doc.Relationships, nil
}

func (r *packageReader) relsOf(partPath string) (map[string]xmlRelationship, error) {
	list, err := r.rels(partPath)
	if err != nil {
		return nil, err
	}
	m := make(map[string]xmlRelationship, len(list))
	for _, rel := range list {
		m[rel.ID] = rel
	}
	return m, nil
}

func (r *packageReader) decode(name string, v any) error {
	f, ok := r.files[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingPart, name)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedPart, name, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(io.LimitReader(rc, maxPartSize+1))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedPart, name, err)
	}
	if len(data) > maxPartSize {
		return fmt.Errorf("%w: %s exceeds %d bytes", ErrMalformedPart, name, maxPartSize)
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedPart, name, err)
	}
	return nil
}

// resolveTarget resolves a relationship target against the source part's
// directory. Absolute targets are package-root relative.
func resolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	if baseDir == "" || baseDir == "." {
		return path.Clean(target)
	}
	return path.Join(baseDir, target)
}
