// SPDX-License-Identifier: EPL-2.0

package colormap

import "math"

// HSL is a hue/saturation/lightness triple. H is in degrees [0,360), S and
// L are in [0,1].
type HSL struct {
	H, S, L float64
}

// ToHSL converts an RGB color.
func ToHSL(c Color) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	delta := hi - lo
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (hi + lo)
	} else {
		s = delta / (2 - hi - lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h >= 360 {
		h -= 360
	}

	return HSL{H: h, S: s, L: l}
}

// RGB converts back to 8-bit channels, rounding to the nearest value.
func (c HSL) RGB() Color {
	if c.S == 0 {
		v := toByte(c.L)
		return Color{R: v, G: v, B: v}
	}

	var q float64
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q
	h := c.H / 360

	return Color{
		R: toByte(hueToRGB(p, q, h+1.0/3)),
		G: toByte(hueToRGB(p, q, h)),
		B: toByte(hueToRGB(p, q, h-1.0/3)),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func toByte(v float64) uint8 {
	v = math.Round(v * 255)
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
