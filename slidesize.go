package pdf2pptx

import "fmt"

// SlideWidthInches is the fixed width of every generated slide.
const SlideWidthInches = 10.0

// CalculateSlideSize returns the slide size for a raster of the given pixel
// dimensions: SlideWidthInches wide with the raster's aspect ratio.
func CalculateSlideSize(pixelWidth, pixelHeight int) (SlideSize, error) {
	if pixelWidth <= 0 || pixelHeight <= 0 {
		return SlideSize{}, fmt.Errorf("%w: %dx%d pixels", ErrInvalidImage, pixelWidth, pixelHeight)
	}
	return SlideSize{
		Width:  SlideWidthInches,
		Height: SlideWidthInches * float64(pixelHeight) / float64(pixelWidth),
	}, nil
}
