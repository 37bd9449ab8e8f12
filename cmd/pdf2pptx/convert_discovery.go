package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alnah/go-pdf2pptx/internal/fileutil"
)

// ErrInvalidExtension reports a single input file that is not a PDF.
var ErrInvalidExtension = errors.New("file must have .pdf extension")

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// outputTarget is where decks are written. A positional target names the
// deck file itself when the input is a single PDF.
type outputTarget struct {
	path       string
	positional bool
}

// namesFile reports whether the target is the output file for a single
// input rather than a directory to write into.
func (o outputTarget) namesFile() bool {
	if o.path == "" {
		return false
	}
	if fileutil.HasExtension(o.path, ".pptx") {
		return true
	}
	if !o.positional || os.IsPathSeparator(o.path[len(o.path)-1]) {
		return false
	}
	return !fileutil.IsDir(o.path)
}

// discoverFiles finds all PDF files to convert.
func discoverFiles(inputPath string, target outputTarget) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validatePDFExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := target.path
		if !target.namesFile() {
			outPath = resolveOutputPath(inputPath, target.path, "")
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isPDF(path) {
			return nil
		}
		outPath := resolveOutputPath(path, target.path, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the PPTX output path for a PDF file written
// into the outputDir directory, mirroring its location under baseInputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := filepath.Base(fileutil.ReplaceExtension(inputPath, ".pptx"))

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}

// validatePDFExtension checks that the file has a .pdf extension.
func validatePDFExtension(path string) error {
	if !isPDF(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

func isPDF(path string) bool {
	return fileutil.HasExtension(path, ".pdf")
}
