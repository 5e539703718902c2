package texel

import (
	"fmt"
	"image"
	"io"

	icolor "github.com/gogpu/texel/internal/color"
	iimage "github.com/gogpu/texel/internal/image"
	"github.com/gogpu/texel/internal/parallel"
)

// Frame is an output pixel buffer: row-major, 3 bytes per pixel in blue,
// green, red order, each byte sRGB-encoded. This is the pixel layout of
// 24-bit BMP files.
//
// Thread safety: writers touching different pixels may run concurrently.
// Writers touching the same pixel must be serialized by the caller.
type Frame struct {
	width  int
	height int
	data   []byte
}

// NewFrame creates a black frame with the given dimensions.
// It panics if a dimension is not positive.
func NewFrame(width, height int) *Frame {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("texel: invalid frame dimensions %dx%d", width, height))
	}
	return &Frame{
		width:  width,
		height: height,
		data:   make([]byte, width*height*3),
	}
}

// FrameFromBuffer wraps a caller-owned buffer without copying.
// It panics if a dimension is not positive or buf is shorter than
// width*height*3 bytes.
func FrameFromBuffer(width, height int, buf []byte) *Frame {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("texel: invalid frame dimensions %dx%d", width, height))
	}
	if len(buf) < width*height*3 {
		panic(fmt.Sprintf("texel: frame buffer is %d bytes, want at least %d", len(buf), width*height*3))
	}
	return &Frame{
		width:  width,
		height: height,
		data:   buf[:width*height*3],
	}
}

// Width returns the width of the frame.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame.
func (f *Frame) Height() int {
	return f.height
}

// Data returns the raw pixel data (BGR format).
func (f *Frame) Data() []byte {
	return f.data
}

// Set encodes c into pixel (x, y).
// It panics if (x, y) is outside the frame.
func (f *Frame) Set(x, y int, c Color) {
	f.checkBounds(x, y)
	c.WriteBGR(f.data, y*f.width+x)
}

// At decodes pixel (x, y) back to linear light.
// It panics if (x, y) is outside the frame.
func (f *Frame) At(x, y int) Color {
	f.checkBounds(x, y)
	i := (y*f.width + x) * 3
	return Color{
		R: icolor.SRGBToLinear(f.data[i+2]),
		G: icolor.SRGBToLinear(f.data[i+1]),
		B: icolor.SRGBToLinear(f.data[i]),
	}
}

func (f *Frame) checkBounds(x, y int) {
	if uint(x) >= uint(f.width) || uint(y) >= uint(f.height) {
		panic(fmt.Sprintf("texel: pixel (%d, %d) outside %dx%d frame", x, y, f.width, f.height))
	}
}

// Render sets every pixel to shade(x, y).
//
// Rows are distributed over a pool of workers; workers <= 0 uses GOMAXPROCS.
// shade is called concurrently and must be safe for that. Each pixel is
// written exactly once.
func (f *Frame) Render(workers int, shade func(x, y int) Color) {
	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	pool.ForEach(f.height, func(y int) {
		row := y * f.width
		for x := range f.width {
			shade(x, y).WriteBGR(f.data, row+x)
		}
	})
}

// Resample fills the frame by bilinearly sampling tex, scaling each sample
// by exposure. The first and last pixels of each axis land on the texture's
// edge texels. A frame axis of length 1 samples coordinate 0.
func (f *Frame) Resample(tex *Texture, workers int, exposure float64) {
	f.Render(workers, func(x, y int) Color {
		return tex.Sample(coord(x, f.width), coord(y, f.height)).Scale(exposure)
	})
}

// coord maps pixel i of an axis of length n to [0, 1].
func coord(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// Image returns a copy of the frame as an *image.RGBA with the stored
// (sRGB-encoded) bytes.
func (f *Frame) Image() *image.RGBA {
	return f.bgr().ToRGBA()
}

func (f *Frame) bgr() *iimage.BGR {
	return &iimage.BGR{Width: f.width, Height: f.height, Pix: f.data}
}

// EncodeBMP writes the frame as a 24-bit BMP.
func (f *Frame) EncodeBMP(w io.Writer) error {
	return iimage.EncodeBMP(w, f.Image())
}

// EncodePNG writes the frame as PNG.
func (f *Frame) EncodePNG(w io.Writer) error {
	return iimage.EncodePNG(w, f.Image())
}

// Save writes the frame to path. The format is chosen by extension:
// ".bmp" or ".png".
func (f *Frame) Save(path string) error {
	if err := iimage.Save(path, f.Image()); err != nil {
		return err
	}
	Logger().Debug("texel: frame saved", "path", path, "width", f.width, "height", f.height)
	return nil
}
