package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-pdf2pptx/internal/config"
)

// envPrefix starts every environment variable the CLI reads.
const envPrefix = "PDF2PPTX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string        // PDF2PPTX_CONFIG: config file path
	DPI        int           // PDF2PPTX_DPI: rasterization resolution
	Backend    string        // PDF2PPTX_BACKEND: fitz or poppler
	Timeout    time.Duration // PDF2PPTX_TIMEOUT: per-document timeout

	// Tier 2 - I/O
	InputDir  string // PDF2PPTX_INPUT_DIR: default input directory
	OutputDir string // PDF2PPTX_OUTPUT_DIR: default output directory
	NotesPPTX string // PDF2PPTX_NOTES_PPTX: reference deck for notes

	// Tier 3 - Extended
	Format  string // PDF2PPTX_FORMAT: png or jpeg
	Author  string // PDF2PPTX_AUTHOR: deck author
	Workers int    // PDF2PPTX_WORKERS: parallel workers
}

// knownEnvVars lists valid PDF2PPTX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"PDF2PPTX_CONFIG":  true,
	"PDF2PPTX_DPI":     true,
	"PDF2PPTX_BACKEND": true,
	"PDF2PPTX_TIMEOUT": true,
	// Tier 2 - I/O
	"PDF2PPTX_INPUT_DIR":  true,
	"PDF2PPTX_OUTPUT_DIR": true,
	"PDF2PPTX_NOTES_PPTX": true,
	// Tier 3 - Extended
	"PDF2PPTX_FORMAT":    true,
	"PDF2PPTX_AUTHOR":    true,
	"PDF2PPTX_WORKERS":   true,
	"PDF2PPTX_CONTAINER": true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and durations are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("PDF2PPTX_CONFIG"),
		Backend:    os.Getenv("PDF2PPTX_BACKEND"),
		InputDir:   os.Getenv("PDF2PPTX_INPUT_DIR"),
		OutputDir:  os.Getenv("PDF2PPTX_OUTPUT_DIR"),
		NotesPPTX:  os.Getenv("PDF2PPTX_NOTES_PPTX"),
		Format:     os.Getenv("PDF2PPTX_FORMAT"),
		Author:     os.Getenv("PDF2PPTX_AUTHOR"),
	}

	if timeout := os.Getenv("PDF2PPTX_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	cfg.DPI = positiveIntEnv("PDF2PPTX_DPI")
	cfg.Workers = positiveIntEnv("PDF2PPTX_WORKERS")

	return cfg
}

// positiveIntEnv returns the variable as a positive int, or 0.
func positiveIntEnv(name string) int {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// warnUnknownEnvVars logs warnings for unrecognized PDF2PPTX_* variables.
// Helps catch typos like PDF2PPTX_DPIS instead of PDF2PPTX_DPI.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags; timeout is resolved
// separately by resolveTimeoutWithEnv).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1 - Rendering
	if env.DPI != 0 && cfg.Render.DPI == 0 {
		cfg.Render.DPI = env.DPI
	}
	if env.Backend != "" && cfg.Render.Backend == "" {
		cfg.Render.Backend = env.Backend
	}

	// Tier 2 - I/O
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	// A config that already names a Markdown notes source keeps it.
	if env.NotesPPTX != "" && cfg.Notes.PPTX == "" && cfg.Notes.Markdown == "" {
		cfg.Notes.PPTX = env.NotesPPTX
	}

	// Tier 3 - Extended
	if env.Format != "" && cfg.Render.Format == "" {
		cfg.Render.Format = env.Format
	}
	if env.Author != "" && cfg.Document.Author == "" {
		cfg.Document.Author = env.Author
	}
	if env.Workers != 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}
