package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadPart loads an embedded part by name.
// Returns ErrPartNotFound if the part does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or dots.
func LoadPart(name string) ([]byte, error) {
	return defaultLoader.LoadPart(name)
}
