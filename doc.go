// Package texel provides linear-light colors, sRGB textures, and
// gamma-encoded output frames for image synthesis.
//
// # Overview
//
// Shading arithmetic happens on [Color], a three-channel linear light value.
// Images enter through [Texture], which keeps the decoded sRGB bytes and
// converts texels to linear light on lookup. Results leave through [Frame], a
// BGR byte buffer that is sRGB-encoded again on write.
//
// # Quick Start
//
//	import "github.com/gogpu/texel"
//
//	sky, err := texel.Load("sky.png")
//	if err != nil {
//	    log.Fatal(texel.ErrorDescription(err))
//	}
//
//	fb := texel.NewFrame(640, 480)
//	fb.Render(0, func(x, y int) texel.Color {
//	    c := sky.Sample(float64(x)/639, float64(y)/479)
//	    return c.Mul(texel.RGB(1, 0.9, 0.8))
//	})
//	_ = fb.Save("out.bmp")
//
// # Encoding
//
// Conversion between bytes and linear light uses fixed lookup tables, not the
// analytic sRGB curve. Decoding a byte and encoding the result always returns
// the original byte. [Color.RGB8] and [Color.BGR8] are the exception: they
// scale and truncate without gamma encoding.
//
// # Sampling
//
// [Texture.Sample] maps (0, 0) and (1, 1) onto the centers of the corner
// texels, clamps coordinates outside that range, and blends the four
// neighbouring texels bilinearly in linear space. At the last row and column
// the edge texel is repeated.
//
// # Errors
//
// Only loading can fail at run time; such errors are *[LoadError]. Out of
// range texel or pixel coordinates and undersized buffers are programming
// errors and panic.
//
// # Logging
//
// texel is silent by default. Use [SetLogger] to route debug output to an
// [log/slog.Logger].
package texel
