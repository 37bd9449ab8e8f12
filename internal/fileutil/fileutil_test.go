package fileutil

// Notes:
// - AtomicWriteFile failure paths after CreateTemp (write, sync, chmod) are
//   not reachable without fault injection.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFileExistsAndIsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "deck.pdf")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		path      string
		wantFile  bool
		wantIsDir bool
	}{
		{"regular file", file, true, false},
		{"directory", dir, false, true},
		{"missing", filepath.Join(dir, "missing"), false, false},
		{"empty", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FileExists(tt.path); got != tt.wantFile {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.wantFile)
			}
			if got := IsDir(tt.path); got != tt.wantIsDir {
				t.Errorf("IsDir(%q) = %v, want %v", tt.path, got, tt.wantIsDir)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"team", false},
		{"my-config", false},
		{"./deck.yaml", true},
		{"/etc/deck.yaml", true},
		{`C:\decks\deck.yaml`, true},
		{"sub/dir", true},
	}
	for _, tt := range tests {
		if got := IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestExtensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		ext     string
		has     bool
		replace string
	}{
		{"talk.pdf", ".pdf", true, "talk.pptx"},
		{"TALK.PDF", ".pdf", true, "TALK.pptx"},
		{"dir.v2/talk", ".pdf", false, "dir.v2/talk.pptx"},
		{"archive.tar.pdf", ".pdf", true, "archive.tar.pptx"},
		{"notes.md", ".pdf", false, "notes.pptx"},
	}
	for _, tt := range tests {
		if got := HasExtension(tt.path, tt.ext); got != tt.has {
			t.Errorf("HasExtension(%q, %q) = %v, want %v", tt.path, tt.ext, got, tt.has)
		}
		if got := ReplaceExtension(tt.path, ".pptx"); got != tt.replace {
			t.Errorf("ReplaceExtension(%q) = %q, want %q", tt.path, got, tt.replace)
		}
	}
}

// ---------------------------------------------------------------------------
// TestAtomicWriteFile - Temp file and rename
// ---------------------------------------------------------------------------

func TestAtomicWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("writes and replaces", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "out.pptx")

		if err := AtomicWriteFile(path, []byte("first"), 0o644); err != nil {
			t.Fatalf("AtomicWriteFile() error = %v", err)
		}
		if err := AtomicWriteFile(path, []byte("second"), 0o644); err != nil {
			t.Fatalf("AtomicWriteFile() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "second" {
			t.Errorf("content = %q, want %q", got, "second")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1 (temp files left behind)", len(entries))
		}

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if info.Mode().Perm() != 0o644 {
				t.Errorf("mode = %v, want 0644", info.Mode().Perm())
			}
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nope", "out.pptx")
		if err := AtomicWriteFile(path, []byte("x"), 0o644); err == nil {
			t.Error("expected error for missing directory")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		if err := AtomicWriteFile("", []byte("x"), 0o644); !errors.Is(err, ErrEmptyPath) {
			t.Errorf("error = %v, want ErrEmptyPath", err)
		}
	})
}
