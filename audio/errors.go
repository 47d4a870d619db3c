// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize      = errors.New("dst size must be multiple of channels")
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	ErrInvalidChannel      = errors.New("channel index out of range")
)

// ErrNotSeekable is returned by Seek for sources without random access.
var ErrNotSeekable = errors.New("source does not support seeking")
