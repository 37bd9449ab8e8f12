package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-pdf2pptx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength    = 200
	MaxNameLength     = 100
	MaxSubjectLength  = 200
	MaxKeywordsLength = 500
	MaxPathLength     = 4096
	MaxStyleLength    = 50
)

// Value ranges.
const (
	MinDPI     = 1
	MaxDPI     = 1200
	MaxWorkers = 64
)

// appDirName is the directory under os.UserConfigDir searched for configs.
const appDirName = "go-pdf2pptx"

// Config holds all configuration for a conversion run.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Render   RenderConfig   `yaml:"render"`
	Notes    NotesConfig    `yaml:"notes"`
	Pages    PagesConfig    `yaml:"pages"`
	Document DocumentConfig `yaml:"document"`
	Assets   AssetsConfig   `yaml:"assets"`
	Timeout  string         `yaml:"timeout"` // Go duration, e.g. "2m" (empty = no limit)
	Workers  int            `yaml:"workers"` // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// RenderConfig defines rasterization options.
type RenderConfig struct {
	DPI         int    `yaml:"dpi"`         // 0 = default (200)
	Backend     string `yaml:"backend"`     // "fitz" or "poppler"
	Format      string `yaml:"format"`      // "png" or "jpeg"
	JPEGQuality int    `yaml:"jpegQuality"` // 1-100, 0 = default
	MaxWidth    int    `yaml:"maxWidth"`    // pixels, 0 = no limit
}

// NotesConfig defines where speaker notes come from. At most one source.
type NotesConfig struct {
	PPTX      string `yaml:"pptx"`
	Markdown  string `yaml:"markdown"`
	CodeStyle string `yaml:"codeStyle"` // chroma style for Markdown code blocks
}

// PagesConfig defines which PDF pages are skipped.
type PagesConfig struct {
	SkipFirst bool  `yaml:"skipFirst"`
	Skip      []int `yaml:"skip"` // 1-based page numbers
}

// DocumentConfig defines deck metadata written to docProps/core.xml.
type DocumentConfig struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Subject  string `yaml:"subject"`
	Keywords string `yaml:"keywords"`
}

// AssetsConfig defines package skeleton loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded parts
}

// Validate checks ranges, exclusive options and field lengths.
// Called automatically by LoadConfig, but available for callers that build
// a Config in code.
func (c *Config) Validate() error {
	if c.Render.DPI != 0 && (c.Render.DPI < MinDPI || c.Render.DPI > MaxDPI) {
		return fmt.Errorf("%w: render.dpi must be between %d and %d, got %d", ErrInvalidValue, MinDPI, MaxDPI, c.Render.DPI)
	}
	switch strings.ToLower(c.Render.Backend) {
	case "", "fitz", "poppler":
	default:
		return fmt.Errorf("%w: render.backend %q (must be fitz or poppler)", ErrInvalidValue, c.Render.Backend)
	}
	switch strings.ToLower(c.Render.Format) {
	case "", "png", "jpeg", "jpg":
	default:
		return fmt.Errorf("%w: render.format %q (must be png or jpeg)", ErrInvalidValue, c.Render.Format)
	}
	if c.Render.JPEGQuality < 0 || c.Render.JPEGQuality > 100 {
		return fmt.Errorf("%w: render.jpegQuality must be between 1 and 100, got %d", ErrInvalidValue, c.Render.JPEGQuality)
	}
	if c.Render.MaxWidth < 0 {
		return fmt.Errorf("%w: render.maxWidth must not be negative, got %d", ErrInvalidValue, c.Render.MaxWidth)
	}

	if c.Pages.SkipFirst && len(c.Pages.Skip) > 0 {
		return fmt.Errorf("%w: pages.skipFirst and pages.skip are mutually exclusive", ErrInvalidValue)
	}

	if c.Notes.PPTX != "" && c.Notes.Markdown != "" {
		return fmt.Errorf("%w: notes.pptx and notes.markdown are mutually exclusive", ErrInvalidValue)
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"notes.pptx", c.Notes.PPTX, MaxPathLength},
		{"notes.markdown", c.Notes.Markdown, MaxPathLength},
		{"notes.codeStyle", c.Notes.CodeStyle, MaxStyleLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.author", c.Document.Author, MaxNameLength},
		{"document.subject", c.Document.Subject, MaxSubjectLength},
		{"document.keywords", c.Document.Keywords, MaxKeywordsLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}
	return nil
}

// TimeoutDuration parses Timeout. Empty means zero.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %v", ErrInvalidValue, c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidValue, c.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration where every field defers to the
// library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := yamlutil.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml")
}

// resolveConfigPath searches for name.yaml then name.yml in the current
// directory, then in the user config directory.
func resolveConfigPath(name string) (string, error) {
	dirs := []string{""}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, appDirName))
	}

	var tried []string
	for _, dir := range dirs {
		for _, ext := range []string{".yaml", ".yml"} {
			p := filepath.Join(dir, name+ext)
			if fileExists(p) {
				return p, nil
			}
			tried = append(tried, p)
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
