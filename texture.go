package texel

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	icolor "github.com/gogpu/texel/internal/color"
)

// ErrInvalidRaster is reported inside a *LoadError when a decoder returns a
// raster whose buffer does not hold Width*Height*3 bytes.
var ErrInvalidRaster = errors.New("texel: decoder returned an inconsistent raster")

// LoadError reports a failed texture load. Err is the decoder's error as it
// was returned, or the error from opening the file.
type LoadError struct {
	Path string // empty for Decode
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "texel: decode texture: " + e.Err.Error()
	}
	return fmt.Sprintf("texel: load texture %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ErrorDescription renders a load error for display as "error #<cause>",
// where cause is the decoder's own description of the failure.
func ErrorDescription(err error) string {
	var le *LoadError
	if errors.As(err, &le) {
		err = le.Err
	}
	return fmt.Sprintf("error #%v", err)
}

// Texture is an immutable sRGB-encoded RGB raster.
//
// Texels are decoded to linear light on every lookup. A Texture has no
// mutable state and is safe for concurrent use.
type Texture struct {
	width  int
	height int
	data   []byte // Row-major: data[3*(y*width+x) : 3*(y*width+x)+3] is R, G, B
}

// NewTexture wraps an sRGB-encoded RGB buffer of width*height*3 bytes.
// The texture takes ownership of data; the caller must not modify it
// afterwards.
//
// NewTexture panics if a dimension is not positive or the buffer length
// disagrees with the dimensions.
func NewTexture(width, height int, data []byte) *Texture {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("texel: invalid texture dimensions %dx%d", width, height))
	}
	if len(data) != width*height*3 {
		panic(fmt.Sprintf("texel: texture buffer is %d bytes, want %d for %dx%d",
			len(data), width*height*3, width, height))
	}
	return &Texture{width: width, height: height, data: data}
}

// Load reads and decodes the image file at path.
// The image is assumed to be sRGB-encoded with 8 bits per channel.
// Failures are returned as *LoadError.
func Load(path string, opts ...LoadOption) (*Texture, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	return decode(f, path, resolveLoadOptions(opts))
}

// Decode decodes a texture from r.
// Failures are returned as *LoadError.
func Decode(r io.Reader, opts ...LoadOption) (*Texture, error) {
	return decode(r, "", resolveLoadOptions(opts))
}

func decode(r io.Reader, path string, o loadOptions) (*Texture, error) {
	raster, err := o.decoder.Decode(r)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if raster.Width <= 0 || raster.Height <= 0 || len(raster.Pix) != raster.Width*raster.Height*3 {
		return nil, &LoadError{Path: path, Err: ErrInvalidRaster}
	}

	o.logger.Debug("texel: texture decoded",
		"path", path,
		"format", raster.Format,
		"width", raster.Width,
		"height", raster.Height)

	return &Texture{width: raster.Width, height: raster.Height, data: raster.Pix}, nil
}

// Width returns the width of the texture in texels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the height of the texture in texels.
func (t *Texture) Height() int {
	return t.height
}

// Bounds returns the texel rectangle (0, 0)-(Width, Height).
func (t *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.width, t.height)
}

// At returns the linear color of texel (x, y).
// It panics if x or y is outside the texture.
func (t *Texture) At(x, y int) Color {
	if uint(x) >= uint(t.width) || uint(y) >= uint(t.height) {
		panic(fmt.Sprintf("texel: texel (%d, %d) outside %dx%d texture", x, y, t.width, t.height))
	}
	i := 3 * (y*t.width + x)
	return Color{
		R: icolor.SRGBToLinear(t.data[i]),
		G: icolor.SRGBToLinear(t.data[i+1]),
		B: icolor.SRGBToLinear(t.data[i+2]),
	}
}

// Sample returns the bilinearly interpolated color at (u, v).
//
// (0, 0) is the center of the top-left texel and (1, 1) the center of the
// bottom-right texel. Coordinates outside [0, 1] are clamped, NaN is treated
// as 0. Neighbours past the last row or column repeat the edge texel, so
// there is no extrapolation at the border. Blending happens in linear space.
func (t *Texture) Sample(u, v float64) Color {
	x := clamp01(u) * float64(t.width-1)
	y := clamp01(v) * float64(t.height-1)

	x0 := int(x)
	y0 := int(y)
	fx := x - float64(x0)
	fy := y - float64(y0)
	x1 := min(x0+1, t.width-1)
	y1 := min(y0+1, t.height-1)

	top := Lerp(t.At(x0, y0), t.At(x1, y0), fx)
	bottom := Lerp(t.At(x0, y1), t.At(x1, y1), fx)
	return Lerp(top, bottom, fy)
}

// clamp01 clamps x to [0, 1]. NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
