// SPDX-License-Identifier: EPL-2.0

package stft

import (
	"fmt"

	"github.com/ik5/specvis/window"
)

// Defaults used when the caller does not override them.
const (
	DefaultFFTSize   = 2048
	DefaultHopLength = 512
)

// CalcParams describes how the signal is tiled into frames.
type CalcParams struct {
	// NFFT is the transform size; it also sets the bin count (NFFT/2+1).
	NFFT int
	// HopLength is the number of samples between consecutive frames.
	HopLength int
	// WindowSize is the number of samples taken per frame. Samples past
	// WindowSize up to NFFT are zero padded.
	WindowSize int
	Window     window.Type
}

// DefaultParams returns the 2048/512 Hann configuration.
func DefaultParams() CalcParams {
	return CalcParams{
		NFFT:       DefaultFFTSize,
		HopLength:  DefaultHopLength,
		WindowSize: DefaultFFTSize,
		Window:     window.TypeHann,
	}
}

// Validate reports the first violated invariant.
func (p CalcParams) Validate() error {
	if p.NFFT < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidFFTSize, p.NFFT)
	}
	if p.HopLength < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidHopLength, p.HopLength)
	}
	if p.WindowSize < 0 || p.WindowSize > p.NFFT {
		return fmt.Errorf("%w: window %d, fft %d", ErrWindowTooLarge, p.WindowSize, p.NFFT)
	}
	return nil
}

// Bins is the half-spectrum length produced per frame.
func (p CalcParams) Bins() int { return p.NFFT/2 + 1 }

// Frames returns how many columns a signal of n samples produces.
func (p CalcParams) Frames(n int) int {
	if p.HopLength < 1 || n < p.WindowSize {
		return 0
	}
	return (n - p.WindowSize) / p.HopLength
}
