// Package assets prepares raster images for embedding: the avatar photograph
// (with format fallback) and the QR code pointing at the canonical CV URL.
//
// Every function returns nil instead of an error on failure; a missing or
// unreadable image means "skip this visual element", never an aborted run.
// Images are fully decoded and normalized to PNG here so that a corrupt asset
// can never poison the document builder's error state later.
package assets

import (
	"bytes"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"golang.org/x/image/webp"
)

// Image is a normalized, embeddable raster asset.
type Image struct {
	// Name keys the image inside the document's resource dictionary.
	Name string
	// PNG holds the re-encoded image bytes.
	PNG []byte
	// Width and Height are pixel dimensions of the decoded image.
	Width  int
	Height int
}

func encode(name string, img image.Image) *Image {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	b := img.Bounds()
	return &Image{Name: name, PNG: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}
}

// Avatar decodes avatar bytes in any supported format and normalizes them to
// PNG. PNG, JPEG and GIF decode natively; WebP goes through the x/image
// decoder. Unknown or corrupt bytes yield nil.
func Avatar(data []byte) *Image {
	if len(data) == 0 {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		img, err = webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil
		}
	}
	return encode("avatar", img)
}

// QR encodes a URL as a scannable QR code image of sizePx × sizePx pixels.
// Empty URLs and encoding failures yield nil.
func QR(url string, sizePx int) *Image {
	if url == "" || sizePx <= 0 {
		return nil
	}
	code, err := qr.Encode(url, qr.M, qr.Auto)
	if err != nil {
		return nil
	}
	scaled, err := barcode.Scale(code, sizePx, sizePx)
	if err != nil {
		return nil
	}
	return encode("qr", scaled)
}
