// SPDX-License-Identifier: EPL-2.0

// Package utils holds small sample conversion and formatting helpers.
package utils

// Float32ToInt16 converts a [-1,1] sample to 16 bit PCM, truncating toward
// zero. Out of range input is clamped.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Symmetric scale keeps -1 at -32767.
	return int16(x * 32767.0)
}

// Float32sToInt16 converts a whole buffer; dst is grown as needed.
func Float32sToInt16(dst []int16, src []float32) []int16 {
	if cap(dst) < len(src) {
		dst = make([]int16, len(src))
	}
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = Float32ToInt16(v)
	}
	return dst
}
