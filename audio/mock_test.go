// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
)

// mockSource generates audio data for tests.
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float32
	closed       bool
	closeErr     error
}

func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func newSilentSource(sampleRate, channels, totalSamples int) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(int, int) float32 { return 0 })
}

func newSineSource(sampleRate, channels, totalSamples int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func newConstantSource(sampleRate, channels, totalSamples int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(int, int) float32 { return value })
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }

func (m *mockSource) Metadata() Metadata {
	sig, _ := SignalTypeFromChannels(m.channels)
	return Metadata{
		Codec:        "mock",
		SampleRate:   uint32(m.sampleRate),
		TotalSamples: uint64(m.totalSamples),
		Signal:       sig,
		Sample:       SampleF32,
	}
}

// Reset rewinds the generator.
func (m *mockSource) Reset() { m.generated = 0 }

func (m *mockSource) Close() error {
	m.closed = true
	return m.closeErr
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for frame := range frames {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

// failingSource errors after its first read.
type failingSource struct {
	*mockSource
	reads int
}

var errBroken = errors.New("broken stream")

func (f *failingSource) ReadSamples(dst []float32) (int, error) {
	f.reads++
	if f.reads > 1 {
		return 0, errBroken
	}
	n := min(len(dst), 4)
	for i := range n {
		dst[i] = 0.25
	}
	return n, nil
}
