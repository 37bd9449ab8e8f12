// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-pdf2pptx/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// InCI reports whether a common CI environment variable is set.
func InCI() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForPopplerMissing returns hints when pdftoppm or pdfinfo is not on PATH.
func ForPopplerMissing() string {
	hints := []string{"use --backend fitz"}
	if IsInContainer() || InCI() {
		hints = append([]string{"install poppler-utils in the image"}, hints...)
	} else {
		hints = append([]string{"install poppler (poppler-utils)"}, hints...)
	}
	return formatHints(hints)
}

// ForFitzUnavailable returns a hint when MuPDF rendering fails to load.
func ForFitzUnavailable() string {
	return format("build with CGO_ENABLED=1 or use --backend poppler")
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag or lower --dpi")
}

// ForCorruptPDF returns a hint for files that fail to parse.
func ForCorruptPDF() string {
	return format("check the file opens in a PDF viewer; run 'pdf2pptx info' for details")
}

// ForEncryptedPDF returns a hint for password protected input.
func ForEncryptedPDF() string {
	return format("remove the password first, e.g. qpdf --decrypt in.pdf out.pdf")
}

// ForSkipConflict returns a hint for --skip-first combined with --skip.
func ForSkipConflict() string {
	return format("add 1 to --skip instead of passing --skip-first")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-pdf2pptx/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-pdf2pptx") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForCodeStyle returns hints listing available chroma styles.
func ForCodeStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
