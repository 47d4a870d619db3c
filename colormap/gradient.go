// SPDX-License-Identifier: EPL-2.0

package colormap

import (
	"math"
	"sync"
)

// GradientSize is the number of entries in every lookup table.
const GradientSize = 256

// Gradient maps a normalized level (index 0..255) to a color.
type Gradient [GradientSize]Color

// At returns the color for v in [0,1]; values outside are clamped and NaN
// maps to the first entry.
func (g *Gradient) At(v float32) Color {
	return g[Index(v)]
}

// Index converts a normalized level into a table index.
func Index(v float32) int {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		v = 1
	}
	idx := int(math.Round(float64(v) * (GradientSize - 1)))
	return min(idx, GradientSize-1)
}

// Build expands stops into a 256-entry table by interpolating in HSL space.
// Hue follows the shorter arc around the color wheel.
//
// Build panics when stops is empty: every Scheme has stops, so an empty list
// is a programming error.
func Build(stops []Color) Gradient {
	if len(stops) == 0 {
		panic("colormap: list of reference colors cannot be empty")
	}

	var g Gradient
	if len(stops) == 1 {
		for i := range g {
			g[i] = stops[0]
		}
		return g
	}

	hsl := make([]HSL, len(stops))
	for i, c := range stops {
		hsl[i] = ToHSL(c)
	}
	segments := len(hsl) - 1

	for i := range g {
		progress := float64(i) / (GradientSize - 1)

		seg, p := segments-1, 1.0
		if progress < 1 {
			f := progress * float64(segments)
			seg = int(math.Floor(f))
			p = f - float64(seg)
		}

		g[i] = lerpHSL(hsl[seg], hsl[seg+1], p).RGB()
	}

	// The round trip through HSL is exact for 8-bit input, but the ends are
	// part of the contract so they are pinned.
	g[0] = stops[0]
	g[GradientSize-1] = stops[len(stops)-1]

	return g
}

func lerpHSL(a, b HSL, p float64) HSL {
	s := a.S + (b.S-a.S)*p
	l := a.L + (b.L-a.L)*p

	h0 := a.H
	diff := b.H - h0
	if math.Abs(diff) > 180 {
		if diff > 0 {
			h0 += 360
		} else {
			h0 -= 360
		}
	}
	h := math.Mod(h0+(b.H-h0)*p, 360)
	if h < 0 {
		h += 360
	}

	return HSL{H: h, S: s, L: l}
}

var gradientCache [numSchemes]struct {
	once sync.Once
	g    Gradient
}

// ForScheme returns the gradient of s, building it on first use. An unknown
// scheme falls back to DefaultScheme.
func ForScheme(s Scheme) Gradient {
	if !s.valid() {
		s = DefaultScheme
	}

	c := &gradientCache[s]
	c.once.Do(func() {
		c.g = Build(schemeStops[s])
	})
	return c.g
}
