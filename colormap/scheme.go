// SPDX-License-Identifier: EPL-2.0

package colormap

import (
	"fmt"
	"strings"
)

// StopsVersion identifies the revision of the palette stop tables below.
// Bump it whenever a stop changes so rendered output can be traced back.
const StopsVersion = 1

// Scheme names a palette.
type Scheme int

const (
	Oceanic Scheme = iota
	Grayscale
	Inferno
	Viridis
	Synthwave
	Sunset

	numSchemes
)

// DefaultScheme is used when nothing else is configured.
const DefaultScheme = Oceanic

var schemeNames = [numSchemes]string{
	Oceanic:   "oceanic",
	Grayscale: "grayscale",
	Inferno:   "inferno",
	Viridis:   "viridis",
	Synthwave: "synthwave",
	Sunset:    "sunset",
}

var schemeStops = [numSchemes][]Color{
	Oceanic:   {RGB(0x01041B), RGB(0x072E69), RGB(0x4DA4D5), RGB(0xDCF3FF)},
	Grayscale: {RGB(0x000000), RGB(0x888888), RGB(0xFFFFFF)},
	Inferno:   {RGB(0x000004), RGB(0x3B0F70), RGB(0xAC255E), RGB(0xF98E09), RGB(0xFCFD21)},
	Viridis:   {RGB(0x440154), RGB(0x3B528B), RGB(0x21918C), RGB(0x5EC962), RGB(0xFDE725)},
	Synthwave: {RGB(0x0D0221), RGB(0x2D134B), RGB(0xA537FD), RGB(0x00F6FF)},
	Sunset:    {RGB(0x3C031C), RGB(0x9C1521), RGB(0xFD6A02), RGB(0xFEC812)},
}

func (s Scheme) valid() bool { return s >= 0 && s < numSchemes }

func (s Scheme) String() string {
	if !s.valid() {
		return "unknown"
	}
	return schemeNames[s]
}

// Stops returns a copy of the reference colors of s. An unknown scheme has
// no stops.
func (s Scheme) Stops() []Color {
	if !s.valid() {
		return nil
	}
	return append([]Color(nil), schemeStops[s]...)
}

// Schemes lists every palette in declaration order.
func Schemes() []Scheme {
	out := make([]Scheme, 0, numSchemes)
	for s := range numSchemes {
		out = append(out, s)
	}
	return out
}

// ParseScheme resolves a palette name (case-insensitive).
func ParseScheme(name string) (Scheme, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, known := range schemeNames {
		if known == n {
			return Scheme(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}
