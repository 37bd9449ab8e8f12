package pdf2pptx

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateSlideSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		w, h       int
		wantHeight float64
	}{
		{"4:3", 800, 600, 7.5},
		{"16:9", 1920, 1080, 5.625},
		{"square", 500, 500, 10},
		{"portrait letter", 1700, 2200, 10 * 2200.0 / 1700.0},
		{"one pixel", 1, 1, 10},
		{"very wide", 4000, 100, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CalculateSlideSize(tt.w, tt.h)
			if err != nil {
				t.Fatalf("CalculateSlideSize(%d, %d) error = %v", tt.w, tt.h, err)
			}
			if got.Width != SlideWidthInches {
				t.Errorf("Width = %v, want %v", got.Width, SlideWidthInches)
			}
			if math.Abs(got.Height-tt.wantHeight) > 1e-9 {
				t.Errorf("Height = %v, want %v", got.Height, tt.wantHeight)
			}
		})
	}
}

func TestCalculateSlideSize_InvalidImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"both zero", 0, 0},
		{"negative", -10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := CalculateSlideSize(tt.w, tt.h); !errors.Is(err, ErrInvalidImage) {
				t.Errorf("CalculateSlideSize(%d, %d) error = %v, want ErrInvalidImage", tt.w, tt.h, err)
			}
		})
	}
}
