// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the stream does not start with a FLAC signature
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedBitDepth indicates a sample size other than 8, 16, 24 or 32 bits
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")

	// ErrChannelMismatch indicates a frame whose subframe count differs from
	// the stream info
	ErrChannelMismatch = errors.New("FLAC frame channel count mismatch")
)
