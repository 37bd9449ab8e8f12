package assets

import (
	"embed"
	"fmt"
)

//go:embed parts/*.xml
var parts embed.FS

// EmbeddedLoader loads parts from the embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadPart loads an embedded part by name.
func (e *EmbeddedLoader) LoadPart(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := parts.ReadFile("parts/" + name + ".xml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrPartNotFound, name)
	}

	return content, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
