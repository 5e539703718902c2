package color

import "math"

// SRGBCurveToLinear evaluates the sRGB EOTF on a normalized value.
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
//
// The curve is only used to diagnose the lookup tables. Encoding and decoding
// must go through SRGBToLinear and LinearToSRGB, which are bit-exact.
func SRGBCurveToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearCurveToSRGB evaluates the sRGB OETF on a linear value.
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
//
// The result is a normalized encoded value, not a byte.
func LinearCurveToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}
