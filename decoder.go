package texel

import (
	"io"

	iimage "github.com/gogpu/texel/internal/image"
)

// Raster is a decoded image: Width*Height pixels, 3 bytes each in red, green,
// blue order, row-major from the top row, sRGB-encoded.
type Raster struct {
	Width  int
	Height int
	Pix    []byte

	// Format names the source encoding, e.g. "png". It is informational.
	Format string
}

// Decoder turns an encoded image into a Raster.
//
// Errors returned by Decode reach the caller of Load unchanged, wrapped
// only in a *LoadError.
type Decoder interface {
	Decode(r io.Reader) (Raster, error)
}

// DecoderFunc adapts an ordinary function to the Decoder interface.
type DecoderFunc func(r io.Reader) (Raster, error)

// Decode calls f(r).
func (f DecoderFunc) Decode(r io.Reader) (Raster, error) {
	return f(r)
}

// DefaultDecoder decodes PNG, JPEG, GIF, BMP, TIFF and WebP images.
// Alpha channels are discarded.
var DefaultDecoder Decoder = DecoderFunc(decodeStd)

func decodeStd(r io.Reader) (Raster, error) {
	img, err := iimage.Decode(r)
	if err != nil {
		return Raster{}, err
	}
	return Raster{
		Width:  img.Width,
		Height: img.Height,
		Pix:    img.Pix,
		Format: img.Format,
	}, nil
}
