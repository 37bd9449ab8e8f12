//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-pdf2pptx/internal/pptx"
	"github.com/alnah/go-pdf2pptx/internal/testpdf"
)

func TestRunMain_Integration(t *testing.T) {
	dir := t.TempDir()
	in := testpdf.WriteFile(t, "talk.pdf", testpdf.Landscape, testpdf.Letter, testpdf.Landscape)
	notes := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(notes, []byte("Opening remarks\n\n---\n\nClosing **remarks**\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "build", "talk.pptx")

	env, stdout, stderr := testEnv()
	code := runMain([]string{"pdf2pptx", in, out, "--skip", "2,7", "--dpi", "72", "--notes-md", notes}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d\nstderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Created "+out) {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "skipped page(s) 7 not in document") {
		t.Errorf("stderr = %q, want ignored skip warning", stderr.String())
	}

	deck, err := pptx.Open(out)
	if err != nil {
		t.Fatalf("pptx.Open() error = %v", err)
	}
	if len(deck.Slides) != 2 {
		t.Fatalf("slides = %d, want 2", len(deck.Slides))
	}

	w, h := deck.Size.Inches()
	if w < 9.99 || w > 10.01 || h < 5.6 || h > 5.65 {
		t.Errorf("slide size = %.3fx%.3fin, want 10x5.625", w, h)
	}
	for i, s := range deck.Slides {
		if len(s.Pictures) != 1 {
			t.Errorf("slide %d has %d pictures, want 1", i+1, len(s.Pictures))
			continue
		}
		if p := s.Pictures[0]; p.X != 0 || p.Y != 0 || p.Size != deck.Size {
			t.Errorf("slide %d picture = %+v, want full bleed %+v", i+1, p, deck.Size)
		}
	}

	if got := deck.NotesAt(0).Text(); got != "Opening remarks" {
		t.Errorf("slide 1 notes = %q, want %q", got, "Opening remarks")
	}
	if got := deck.NotesAt(1).Text(); got != "Closing remarks" {
		t.Errorf("slide 2 notes = %q, want %q", got, "Closing remarks")
	}
}

func TestRunMain_Integration_Directory(t *testing.T) {
	dir := t.TempDir()
	inDir := filepath.Join(dir, "in")
	if err := os.MkdirAll(filepath.Join(inDir, "q3"), 0o750); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.pdf", filepath.Join("q3", "b.pdf")} {
		if err := os.WriteFile(filepath.Join(inDir, name), testpdf.Build(testpdf.A4), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	outDir := filepath.Join(dir, "out")

	env, stdout, stderr := testEnv()
	code := runMain([]string{"pdf2pptx", "convert", "--dpi", "36", "-w", "2", "-o", outDir, inDir}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d\nstderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
		t.Errorf("stdout = %q", stdout.String())
	}
	for _, name := range []string{"a.pptx", filepath.Join("q3", "b.pptx")} {
		if _, err := pptx.Open(filepath.Join(outDir, name)); err != nil {
			t.Errorf("pptx.Open(%s) error = %v", name, err)
		}
	}
}

func TestRunMain_Integration_CorruptInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(in, []byte("%PDF-1.7\ngarbage"), 0o600); err != nil {
		t.Fatal(err)
	}

	env, _, stderr := testEnv()
	code := runMain([]string{"pdf2pptx", in}, env)
	if code != ExitGeneral {
		t.Errorf("runMain() = %d, want %d", code, ExitGeneral)
	}
	if !strings.Contains(stderr.String(), "FAILED "+in) {
		t.Errorf("stderr = %q", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "broken.pptx")); !os.IsNotExist(err) {
		t.Errorf("output written for corrupt input: %v", err)
	}
}
