// Package raster renders PDF pages to images.
//
// Two backends implement Opener: FitzOpener uses MuPDF through go-fitz and
// PopplerOpener shells out to pdftoppm and pdfinfo. Downscale and Encode
// turn a rendered page into the bytes embedded in a slide.
package raster
