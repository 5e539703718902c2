package texel

import (
	"fmt"
	"image/color"

	icolor "github.com/gogpu/texel/internal/color"
)

// Color is a linear light quantity with red, green, and blue components.
//
// Components are usually in [0, 1] but may leave that range as an
// intermediate result of arithmetic. Only the byte export methods clamp.
// Color is a value type; all methods return new values.
type Color struct {
	R, G, B float64
}

// Black is the color with no energy in any channel.
var Black = Color{}

// RGB creates a color from linear components without clamping.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// SRGB creates a color from sRGB-encoded bytes, decoding each channel to
// linear light.
func SRGB(r, g, b uint8) Color {
	return Color{
		R: icolor.SRGBToLinear(r),
		G: icolor.SRGBToLinear(g),
		B: icolor.SRGBToLinear(b),
	}
}

// Add returns c + o.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns c - o.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Mul returns the componentwise product of c and o.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Div returns the componentwise quotient of c and o.
// A zero channel in o yields an infinite or NaN channel.
func (c Color) Div(o Color) Color {
	return Color{R: c.R / o.R, G: c.G / o.G, B: c.B / o.B}
}

// Scale multiplies every channel by k.
func (c Color) Scale(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

// DivScalar divides every channel by k.
// A zero k yields infinite or NaN channels.
func (c Color) DivScalar(k float64) Color {
	return Color{R: c.R / k, G: c.G / k, B: c.B / k}
}

// Lerp blends a toward b: a*(1-t) + b*t.
func Lerp(a, b Color, t float64) Color {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Significance returns the sum of the channels.
func (c Color) Significance() float64 {
	return c.R + c.G + c.B
}

// RGB8 returns the channels as bytes in red, green, blue order.
// Each channel is scaled by 255, clamped to [0, 255] and truncated.
// No gamma encoding is applied.
func (c Color) RGB8() [3]uint8 {
	return [3]uint8{clamp255(c.R), clamp255(c.G), clamp255(c.B)}
}

// BGR8 is like RGB8 but returns blue, green, red.
func (c Color) BGR8() [3]uint8 {
	return [3]uint8{clamp255(c.B), clamp255(c.G), clamp255(c.R)}
}

// WriteBGR sRGB-encodes c and stores it as pixel i of buf: blue at buf[i*3],
// green at buf[i*3+1], red at buf[i*3+2].
//
// It panics if buf is shorter than (i+1)*3. Writers touching disjoint pixels
// may run concurrently.
func (c Color) WriteBGR(buf []byte, i int) {
	p := buf[i*3 : i*3+3 : i*3+3]
	p[0] = icolor.LinearToSRGB(c.B)
	p[1] = icolor.LinearToSRGB(c.G)
	p[2] = icolor.LinearToSRGB(c.R)
}

// RGBA implements the color.Color interface.
// The channels are sRGB-encoded and the color is fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(icolor.LinearToSRGB(c.R)) * 0x101
	g = uint32(icolor.LinearToSRGB(c.G)) * 0x101
	b = uint32(icolor.LinearToSRGB(c.B)) * 0x101
	return r, g, b, 0xffff
}

// String returns a debug representation of the color.
func (c Color) String() string {
	return fmt.Sprintf("texel.Color{R: %g, G: %g, B: %g}", c.R, c.G, c.B)
}

// ColorModel converts any color.Color to a linear Color by decoding its
// 8-bit sRGB channels. Alpha is discarded.
var ColorModel = color.ModelFunc(toLinear)

func toLinear(c color.Color) color.Color {
	if lc, ok := c.(Color); ok {
		return lc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return SRGB(n.R, n.G, n.B)
}

// clamp255 scales v to [0, 255] and truncates toward zero. NaN maps to 0.
func clamp255(v float64) uint8 {
	x := v * 255
	if !(x >= 0) {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x)
}
