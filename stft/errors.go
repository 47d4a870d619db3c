// SPDX-License-Identifier: EPL-2.0

package stft

import "errors"

var (
	ErrInvalidFFTSize   = errors.New("fft size must be at least 1")
	ErrInvalidHopLength = errors.New("hop length must be at least 1")
	ErrWindowTooLarge   = errors.New("window size must be between 0 and the fft size")
	ErrUnknownBackend   = errors.New("unknown fft backend")
)
