// SPDX-License-Identifier: EPL-2.0

package stft

import (
	"fmt"
	"strings"

	godsp "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT is a forward complex transform of a fixed length.
type FFT interface {
	Len() int
	// Forward transforms src into dst and returns dst. Both must have
	// length Len(). Implementations may allocate when dst is nil.
	Forward(dst, src []complex128) []complex128
}

// Backend selects the FFT implementation.
type Backend int

const (
	BackendGonum Backend = iota
	BackendGoDSP
)

func (b Backend) String() string {
	switch b {
	case BackendGonum:
		return "gonum"
	case BackendGoDSP:
		return "go-dsp"
	}
	return "unknown"
}

// ParseBackend resolves a backend name.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "gonum":
		return BackendGonum, nil
	case "go-dsp", "godsp":
		return BackendGoDSP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// New builds a transform of length n.
func (b Backend) New(n int) FFT {
	if b == BackendGoDSP {
		return &goDSPFFT{n: n}
	}
	return &gonumFFT{plan: fourier.NewCmplxFFT(n)}
}

type gonumFFT struct {
	plan *fourier.CmplxFFT
}

func (f *gonumFFT) Len() int { return f.plan.Len() }

func (f *gonumFFT) Forward(dst, src []complex128) []complex128 {
	return f.plan.Coefficients(dst, src)
}

// goDSPFFT has no reusable plan; go-dsp caches twiddle factors globally.
type goDSPFFT struct {
	n int
}

func (f *goDSPFFT) Len() int { return f.n }

func (f *goDSPFFT) Forward(dst, src []complex128) []complex128 {
	out := godsp.FFT(src)
	if dst == nil {
		return out
	}
	copy(dst, out)
	return dst
}
