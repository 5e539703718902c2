// Package image decodes and encodes the 8-bit rasters texel works with.
//
// Decoding goes through the standard image registry. PNG, JPEG and GIF come
// from the standard library, BMP, TIFF and WebP from golang.org/x/image.
// Every decoded image is flattened to opaque, row-major RGB bytes.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when an output format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// RGB is a decoded raster with 3 bytes per pixel in red, green, blue order.
// Rows are stored top to bottom without padding.
type RGB struct {
	Width  int
	Height int
	Pix    []byte

	// Format is the name the decoder registered under, e.g. "png".
	Format string
}

// Decode decodes an image from r, auto-detecting the format.
// Decoder errors are returned unchanged.
func Decode(r io.Reader) (*RGB, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	out := FromStdImage(img)
	out.Format = format
	return out, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (*RGB, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// FromStdImage flattens any image.Image to RGB. Alpha is discarded without
// compositing, so translucent pixels keep their straight color.
func FromStdImage(img image.Image) *RGB {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	out := &RGB{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
			packRGB(out.Pix[y*width*3:(y+1)*width*3], src)
		}
		return out
	}

	// Fast path for opaque RGBA images, where premultiplied equals straight
	if rgba, ok := img.(*image.RGBA); ok && rgba.Opaque() {
		for y := range height {
			src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
			packRGB(out.Pix[y*width*3:(y+1)*width*3], src)
		}
		return out
	}

	// Generic path: let x/image/draw convert into straight RGBA first
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)
	for y := range height {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		packRGB(out.Pix[y*width*3:(y+1)*width*3], src)
	}
	return out
}

// packRGB copies 4-byte pixels from src into 3-byte pixels in dst.
func packRGB(dst, src []byte) {
	for i, j := 0, 0; j+3 < len(src); i, j = i+3, j+4 {
		dst[i] = src[j]
		dst[i+1] = src[j+1]
		dst[i+2] = src[j+2]
	}
}

// BGR is an image.Image view over a row-major, 3 bytes per pixel buffer in
// blue, green, red order. The bytes are reported as they are stored.
type BGR struct {
	Width  int
	Height int
	Pix    []byte
}

// ColorModel implements image.Image.
func (b *BGR) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (b *BGR) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// At implements image.Image.
func (b *BGR) At(x, y int) color.Color {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return color.RGBA{}
	}
	i := (y*b.Width + x) * 3
	return color.RGBA{R: b.Pix[i+2], G: b.Pix[i+1], B: b.Pix[i], A: 0xff}
}

// ToRGBA converts the buffer to an *image.RGBA, which the standard encoders
// handle without per-pixel interface calls.
func (b *BGR) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(b.Bounds())
	for y := range b.Height {
		row := b.Pix[y*b.Width*3 : (y+1)*b.Width*3]
		dstStart := y * rgba.Stride
		for x := range b.Width {
			srcOff := x * 3
			dstOff := dstStart + x*4
			rgba.Pix[dstOff] = row[srcOff+2]   // R <- B
			rgba.Pix[dstOff+1] = row[srcOff+1] // G <- G
			rgba.Pix[dstOff+2] = row[srcOff]   // B <- R
			rgba.Pix[dstOff+3] = 255           // Opaque
		}
	}
	return rgba
}

// EncodeBMP encodes img as a 24-bit BMP.
func EncodeBMP(w io.Writer, img image.Image) error {
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode BMP: %w", err)
	}
	return nil
}

// EncodePNG encodes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// Save encodes img into the file at path, choosing the encoder from the
// extension. Supported extensions: .bmp, .png.
func Save(path string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		encode = EncodeBMP
	case ".png":
		encode = EncodePNG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := encode(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
