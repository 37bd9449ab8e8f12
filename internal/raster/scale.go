package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Downscale shrinks img to maxWidth pixels wide, keeping the aspect ratio.
// Images already narrow enough, and maxWidth <= 0, return img unchanged.
func Downscale(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}
	height := b.Dy() * maxWidth / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
