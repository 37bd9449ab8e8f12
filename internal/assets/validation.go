package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a part name is safe to turn into a filename.
// Extensions are added by the loaders, so dots are rejected along with path
// separators.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
