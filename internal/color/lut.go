// Package color provides the sRGB codec used by texel.
//
// Conversion in both directions goes through fixed lookup tables rather than
// the analytic transfer curve. Decoding is a direct index into a 256-entry
// table of linear intensities. Encoding classifies a linear value against the
// 255 midpoints between consecutive table entries, so every byte survives a
// decode/encode round trip bit for bit.
//
// The tables are constant data shared read-only by all goroutines.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - GPU Gems 3, Chapter 24: https://developer.nvidia.com/gpugems/gpugems3/part-iv-image-effects/chapter-24-importance-being-linear
package color

import "sort"

// SRGBToLinear converts an sRGB-encoded byte to its linear intensity.
//
// Example:
//
//	l := SRGBToLinear(128) // ~0.2159 (not 0.5!)
func SRGBToLinear(s uint8) float64 {
	return srgbToLinear[s]
}

// LinearToSRGB converts a linear intensity to the nearest sRGB-encoded byte.
//
// The result is the smallest i in [0, 255) with l < srgbMidpoints[i], or 255
// when no midpoint exceeds l. Values below zero encode to 0, values above one
// and NaN encode to 255.
//
// The midpoint table is strictly increasing, so a binary search returns the
// same byte as LinearToSRGBScan for every input.
//
// Example:
//
//	s := LinearToSRGB(0.5) // 188 (not 128!)
func LinearToSRGB(l float64) uint8 {
	i := sort.Search(len(srgbMidpoints), func(i int) bool {
		return l < srgbMidpoints[i]
	})
	//nolint:gosec // G115: sort.Search returns a value in [0, 255]
	return uint8(i)
}

// LinearToSRGBScan is the reference linear scan behind LinearToSRGB.
//
// Used for testing and verification only.
func LinearToSRGBScan(l float64) uint8 {
	for i, m := range srgbMidpoints {
		if l < m {
			//nolint:gosec // G115: i < 255
			return uint8(i)
		}
	}
	return 255
}

// Midpoint returns the i-th encoding threshold, the linear value halfway
// between SRGBToLinear(i) and SRGBToLinear(i+1).
// It panics if i is not in [0, 254].
func Midpoint(i int) float64 {
	return srgbMidpoints[i]
}
