// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/specvis/utils"
)

// SignalType tells how the channels of a stream are interpreted.
type SignalType int

const (
	// SignalReal is a single real valued channel.
	SignalReal SignalType = iota
	// SignalIQ is a two channel in-phase/quadrature recording.
	SignalIQ
)

func (s SignalType) String() string {
	switch s {
	case SignalReal:
		return "real"
	case SignalIQ:
		return "i/q"
	}
	return "unknown"
}

// SignalTypeFromChannels maps a channel count to a signal kind. Only 1 and 2
// channels are meaningful.
func SignalTypeFromChannels(channels int) (SignalType, error) {
	switch channels {
	case 1:
		return SignalReal, nil
	case 2:
		return SignalIQ, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
}

// SampleType is the storage format of the samples before conversion to
// float32.
type SampleType int

const (
	SampleU8 SampleType = iota
	SampleI16
	SampleI24
	SampleI32
	SampleF32
)

func (s SampleType) String() string {
	switch s {
	case SampleU8:
		return "u8"
	case SampleI16:
		return "i16"
	case SampleI24:
		return "i24"
	case SampleI32:
		return "i32"
	case SampleF32:
		return "f32"
	}
	return "unknown"
}

// SampleTypeFromBitDepth returns the integer sample type for a PCM bit
// depth. 8 bit PCM is unsigned.
func SampleTypeFromBitDepth(bits int) (SampleType, bool) {
	switch bits {
	case 8:
		return SampleU8, true
	case 16:
		return SampleI16, true
	case 24:
		return SampleI24, true
	case 32:
		return SampleI32, true
	}
	return 0, false
}

// Metadata describes a decoded stream.
type Metadata struct {
	Codec      string
	SampleRate uint32
	// TotalSamples counts frames per channel, 0 when unknown.
	TotalSamples uint64
	Signal       SignalType
	Sample       SampleType
}

// Duration is the stream length in seconds.
func (m Metadata) Duration() float64 {
	if m.SampleRate == 0 {
		return 0
	}
	return float64(m.TotalSamples) / float64(m.SampleRate)
}

// String formats m as "'pcm_s16le', 44100 Hz, real i16, 1s".
func (m Metadata) String() string {
	return fmt.Sprintf("'%s', %d Hz, %s %s, %s",
		m.Codec, m.SampleRate, m.Signal, m.Sample, utils.FormatDuration(m.Duration()))
}
