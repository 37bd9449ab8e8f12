package pptx

import "math"

// Length conversions. OOXML measures geometry in English Metric Units.
const (
	EMUPerInch  = 914400
	EMUPerPoint = 12700
)

// Slide size bounds accepted by PowerPoint for p:sldSz (1in to 56in).
const (
	MinSlideEMU = 914400
	MaxSlideEMU = 51206400
)

// DefaultSize is the 4:3 size used for a deck without slides.
var DefaultSize = Size{Width: 9144000, Height: 6858000}

// Size is a width/height pair in EMU.
type Size struct {
	Width  int64
	Height int64
}

// SizeFromInches converts inches to EMU, rounding to the nearest unit.
func SizeFromInches(width, height float64) Size {
	return Size{
		Width:  int64(math.Round(width * EMUPerInch)),
		Height: int64(math.Round(height * EMUPerInch)),
	}
}

// Inches returns the size in inches.
func (s Size) Inches() (width, height float64) {
	return float64(s.Width) / EMUPerInch, float64(s.Height) / EMUPerInch
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// clampSlideSize keeps a size inside the range PowerPoint accepts for the
// presentation-level slide size. Picture geometry is never clamped.
func clampSlideSize(s Size) Size {
	return Size{Width: clampEMU(s.Width), Height: clampEMU(s.Height)}
}

func clampEMU(v int64) int64 {
	if v < MinSlideEMU {
		return MinSlideEMU
	}
	if v > MaxSlideEMU {
		return MaxSlideEMU
	}
	return v
}
