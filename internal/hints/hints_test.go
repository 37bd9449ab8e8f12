package hints

// Notes:
// - ForPopplerMissing tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable
// These are acceptable gaps: we test observable behavior through environment manipulation.

import (
	"strings"
	"testing"
)

func clearCI(t *testing.T) {
	t.Helper()
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		t.Setenv(v, "")
	}
}

func TestForPopplerMissing_InContainer(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }
	clearCI(t)

	hint := ForPopplerMissing()

	if !strings.Contains(hint, "poppler-utils in the image") {
		t.Errorf("hint = %q, want image install suggestion", hint)
	}
	if !strings.Contains(hint, "--backend fitz") {
		t.Errorf("hint = %q, want backend suggestion", hint)
	}
}

func TestForPopplerMissing_InCI(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }
	clearCI(t)
	t.Setenv("GITHUB_ACTIONS", "true")

	if hint := ForPopplerMissing(); !strings.Contains(hint, "in the image") {
		t.Errorf("hint = %q, want image install suggestion in CI", hint)
	}
}

func TestForPopplerMissing_Local(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }
	clearCI(t)

	hint := ForPopplerMissing()
	if strings.Contains(hint, "image") {
		t.Errorf("hint = %q, want no container wording", hint)
	}
	if !strings.HasPrefix(hint, "\n  hint: install poppler") {
		t.Errorf("hint = %q", hint)
	}
}

func TestInCI(t *testing.T) {
	clearCI(t)
	if InCI() {
		t.Error("InCI() = true with no CI variables")
	}
	t.Setenv("JENKINS_URL", "http://ci.local")
	if !InCI() {
		t.Error("InCI() = false with JENKINS_URL set")
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"fitz", ForFitzUnavailable(), "CGO_ENABLED=1"},
		{"timeout", ForTimeout(), "--timeout"},
		{"corrupt", ForCorruptPDF(), "pdf2pptx info"},
		{"encrypted", ForEncryptedPDF(), "qpdf --decrypt"},
		{"skip conflict", ForSkipConflict(), "--skip"},
		{"output dir", ForOutputDirectory(), "writable"},
	}
	for _, tt := range tests {
		if !strings.HasPrefix(tt.got, "\n  hint: ") {
			t.Errorf("%s: %q lacks hint prefix", tt.name, tt.got)
		}
		if !strings.Contains(tt.got, tt.want) {
			t.Errorf("%s: %q does not contain %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	got := ForConfigNotFound([]string{"team.yaml", "/home/u/.config/go-pdf2pptx/team.yaml"})
	want := "\n  hint: use --config /path/to/file.yaml or create /home/u/.config/go-pdf2pptx/team.yaml"
	if got != want {
		t.Errorf("ForConfigNotFound() = %q, want %q", got, want)
	}

	if got := ForConfigNotFound(nil); got != "\n  hint: use --config /path/to/file.yaml" {
		t.Errorf("ForConfigNotFound(nil) = %q", got)
	}
}

func TestForCodeStyle(t *testing.T) {
	t.Parallel()

	if got := ForCodeStyle(nil); got != "" {
		t.Errorf("ForCodeStyle(nil) = %q, want empty", got)
	}
	if got := ForCodeStyle([]string{"github", "monokai"}); got != "\n  hint: available: github, monokai" {
		t.Errorf("ForCodeStyle() = %q", got)
	}
}

func TestFormatHints(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints() = %q", got)
	}
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
