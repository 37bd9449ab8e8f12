package assets

// AssetLoader loads static package parts by name (without the .xml extension).
// Implementations may read from embedded files, a directory, or anything else.
type AssetLoader interface {
	// LoadPart returns the raw XML of a part.
	// Returns ErrPartNotFound if the part doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadPart(name string) ([]byte, error)
}
