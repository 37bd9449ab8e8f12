package pdfinfo

// Notes:
// - Permission-denied files are not tested; running as root makes them
//   readable and the outcome depends on the environment.
// - Encrypted PDFs are not generated here; ErrEncrypted relies on pdfcpu
//   reporting a wrong password.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-pdf2pptx/internal/testpdf"
)

// ---------------------------------------------------------------------------
// TestInspect - Page sizes from well-formed files
// ---------------------------------------------------------------------------

func TestInspect(t *testing.T) {
	t.Parallel()

	path := testpdf.WriteFile(t, "deck.pdf", testpdf.Landscape, testpdf.Letter, testpdf.A4)

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	want := []PageSize{{960, 540}, {612, 792}, {595, 842}}
	if diff := cmp.Diff(want, info.Pages); diff != "" {
		t.Errorf("Pages mismatch (-want +got):\n%s", diff)
	}
	if info.PageCount() != 3 {
		t.Errorf("PageCount() = %d, want 3", info.PageCount())
	}
	if info.Path != path {
		t.Errorf("Path = %q, want %q", info.Path, path)
	}
}

// ---------------------------------------------------------------------------
// TestInspect_Errors - Unreadable versus corrupt
// ---------------------------------------------------------------------------

func TestInspect_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing file", filepath.Join(dir, "nope.pdf"), ErrUnreadable},
		{"directory", dir, ErrUnreadable},
		{"empty file", write("empty.pdf", ""), ErrCorrupt},
		{"not a pdf", write("notes.pdf", "just some text"), ErrCorrupt},
		{"truncated", write("cut.pdf", "%PDF-1.4\n1 0 obj\n<< /Type /Catalog"), ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Inspect(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Inspect() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCheckHeader - Cheap check that leaves damage to the renderer
// ---------------------------------------------------------------------------

func TestCheckHeader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name string, content []byte) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, content, 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"well formed", write("ok.pdf", testpdf.Build(testpdf.Letter)), nil},
		{"no xref or trailer", write("damaged.pdf", testpdf.BuildDamaged(testpdf.Letter, testpdf.A4)), nil},
		{"missing file", filepath.Join(dir, "nope.pdf"), ErrUnreadable},
		{"directory", dir, ErrUnreadable},
		{"not a pdf", write("notes.pdf", []byte("just some text")), ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CheckHeader(tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckHeader() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckHeader() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestInspect_DamagedDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "damaged.pdf")
	if err := os.WriteFile(path, testpdf.BuildDamaged(testpdf.Letter), 0o600); err != nil {
		t.Fatal(err)
	}

	// pdfcpu does not rebuild a missing xref table.
	if _, err := Inspect(path); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Inspect() error = %v, want %v", err, ErrCorrupt)
	}
}
