// SPDX-License-Identifier: EPL-2.0

package window

import (
	"math"
	"strings"
)

// Type identifies a window function.
type Type int

const (
	TypeHann Type = iota
	TypeHamming
)

var typeNames = map[Type]string{
	TypeHann:    "hann",
	TypeHamming: "hamming",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseType resolves a window name (case-insensitive).
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hann", "hanning":
		return TypeHann, nil
	case "hamming":
		return TypeHamming, nil
	}
	return 0, &UnknownTypeError{Name: name}
}

// Types lists every supported window type.
func Types() []Type {
	return []Type{TypeHann, TypeHamming}
}

// Generate returns size coefficients of the symmetric window t.
//
// A size of zero (or less) yields an empty slice. A size of one divides by
// zero inside the cosine argument and yields a single NaN coefficient; callers
// that need a usable one-sample window must pick a larger size.
func Generate(t Type, size int) []float32 {
	if size <= 0 {
		return []float32{}
	}

	w := make([]float32, size)
	denom := float32(size - 1)

	switch t {
	case TypeHamming:
		for i := range w {
			w[i] = 0.54 - 0.46*cos32(2*math.Pi*float32(i)/denom)
		}
	default:
		for i := range w {
			w[i] = 0.5 * (1 - cos32(2*math.Pi*float32(i)/denom))
		}
	}

	return w
}

func cos32(x float32) float32 {
	return float32(math.Cos(float64(x)))
}
