package texel

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

const tol = 1e-12

func assertColorNear(t *testing.T, want, got Color) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, tol, "R")
	assert.InDelta(t, want.G, got.G, tol, "G")
	assert.InDelta(t, want.B, got.B, tol, "B")
}

func TestColorArithmetic(t *testing.T) {
	a := RGB(0.25, 0.5, 1.5)
	b := RGB(2, -0.5, 0.25)

	assert.Equal(t, RGB(2.25, 0, 1.75), a.Add(b))
	assert.Equal(t, RGB(-1.75, 1, 1.25), a.Sub(b))
	assert.Equal(t, RGB(0.5, -0.25, 0.375), a.Mul(b))
	assert.Equal(t, RGB(0.125, -1, 6), a.Div(b))
	assert.Equal(t, RGB(0.5, 1, 3), a.Scale(2))
	assert.Equal(t, RGB(0.125, 0.25, 0.75), a.DivScalar(2))
}

func TestColorAddProperties(t *testing.T) {
	a := RGB(0.1, 0.2, 0.3)
	b := RGB(0.7, -0.4, 1.9)
	c := RGB(-3.3, 0.01, 0.6)

	assert.Equal(t, a.Add(b), b.Add(a), "addition must be commutative")
	assertColorNear(t, a.Add(b).Add(c), a.Add(b.Add(c)))
}

func TestColorScaleIdentity(t *testing.T) {
	colors := []Color{
		RGB(0.1, 0.2, 0.3),
		RGB(-5, 1e-9, 42),
		Black,
	}
	for _, c := range colors {
		assert.Equal(t, c, c.Scale(1))
		for _, k := range []float64{3, 0.1, -7.5, 1e6} {
			assertColorNear(t, c, c.Scale(k).DivScalar(k))
		}
	}
}

func TestColorDivisionByZero(t *testing.T) {
	got := RGB(1, -1, 0).Div(Black)
	assert.True(t, math.IsInf(got.R, 1), "1/0 = %v, want +Inf", got.R)
	assert.True(t, math.IsInf(got.G, -1), "-1/0 = %v, want -Inf", got.G)
	assert.True(t, math.IsNaN(got.B), "0/0 = %v, want NaN", got.B)

	got = RGB(2, 0, -2).DivScalar(0)
	assert.True(t, math.IsInf(got.R, 1))
	assert.True(t, math.IsNaN(got.G))
	assert.True(t, math.IsInf(got.B, -1))
}

func TestColorSRGB(t *testing.T) {
	c := SRGB(0, 128, 255)
	assert.Equal(t, 0.0, c.R)
	assert.Equal(t, 0.215860500113899261843, c.G)
	assert.Equal(t, 1.0, c.B)
}

func TestColorClampedBytes(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		wantRGB [3]uint8
	}{
		{"truncates not rounds", RGB(-1, 0.5, 2), [3]uint8{0, 127, 255}},
		{"black", Black, [3]uint8{0, 0, 0}},
		{"exact one", RGB(1, 1, 1), [3]uint8{255, 255, 255}},
		{"just below one", RGB(0.999, 0.998, 0.997), [3]uint8{254, 254, 254}},
		{"tiny positive", RGB(1e-9, 0.003, 0.004), [3]uint8{0, 0, 1}},
		{"nan", RGB(math.NaN(), math.Inf(1), math.Inf(-1)), [3]uint8{0, 255, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRGB, tt.c.RGB8())
			want := [3]uint8{tt.wantRGB[2], tt.wantRGB[1], tt.wantRGB[0]}
			assert.Equal(t, want, tt.c.BGR8())
		})
	}
}

func TestColorWriteBGR(t *testing.T) {
	buf := make([]byte, 9)
	RGB(1, 0.5, 0).WriteBGR(buf, 1)

	assert.Equal(t, []byte{0, 0, 0, 0, 188, 255, 0, 0, 0}, buf)

	// Gamma encoding, not clamp-and-truncate.
	RGB(0.2, 0.2, 0.2).WriteBGR(buf, 2)
	assert.Equal(t, []byte{124, 124, 124}, buf[6:9])
	assert.NotEqual(t, RGB(0.2, 0.2, 0.2).BGR8(), [3]uint8{124, 124, 124})
}

func TestColorWriteBGRRoundTrip(t *testing.T) {
	buf := make([]byte, 3)
	for i := 0; i < 256; i++ {
		b := uint8(i)
		SRGB(b, 255-b, b/2).WriteBGR(buf, 0)
		require.Equal(t, []byte{b / 2, 255 - b, b}, buf, "byte %d", i)
	}
}

func TestColorWriteBGRShortBuffer(t *testing.T) {
	assert.Panics(t, func() { RGB(1, 1, 1).WriteBGR(make([]byte, 5), 1) })
	assert.Panics(t, func() { RGB(1, 1, 1).WriteBGR(nil, 0) })
	assert.NotPanics(t, func() { RGB(1, 1, 1).WriteBGR(make([]byte, 6), 1) })
}

func TestColorSignificance(t *testing.T) {
	assert.Equal(t, 0.0, Black.Significance())
	assert.Equal(t, 1.75, RGB(0.25, 0.5, 1).Significance())
	assert.Equal(t, -1.0, RGB(-2, 0.5, 0.5).Significance())
}

func TestLerp(t *testing.T) {
	a := RGB(0.2, 0.4, 0.6)
	b := RGB(1, 0, -1)

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, a.Add(b).DivScalar(2), Lerp(a, b, 0.5))
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"black", Black, 0, 0, 0, 0xffff},
		{"white", RGB(1, 1, 1), 0xffff, 0xffff, 0xffff, 0xffff},
		{"half linear", RGB(0.5, 0, 2), 188 * 0x101, 0, 0xffff, 0xffff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			assert.Equal(t, []uint32{tt.wantR, tt.wantG, tt.wantB, tt.wantA}, []uint32{r, g, b, a})
		})
	}
}

func TestColorModel(t *testing.T) {
	got := ColorModel.Convert(color.RGBA{R: 128, G: 0, B: 255, A: 255})
	assert.Equal(t, SRGB(128, 0, 255), got)

	c := RGB(-1, 3, 0.5)
	assert.Equal(t, c, ColorModel.Convert(c), "linear colors pass through unchanged")

	// Straight (non-premultiplied) channels are decoded, alpha is dropped.
	got = ColorModel.Convert(color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	assert.Equal(t, SRGB(200, 100, 50), got)
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "texel.Color{R: 0.5, G: 0, B: -1}", RGB(0.5, 0, -1).String())
}
