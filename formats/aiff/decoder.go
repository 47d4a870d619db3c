// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/specvis/audio"
	"github.com/ik5/specvis/internal/memio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec      aiffReader
	meta     audio.Metadata
	channels int
	bitDepth int
	intBuf   *goaudio.IntBuffer
	done     bool
}

func (s *source) SampleRate() int          { return int(s.meta.SampleRate) }
func (s *source) Channels() int            { return s.channels }
func (s *source) Metadata() audio.Metadata { return s.meta }
func (s *source) Close() error             { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("aiff: %w", err)
	}
	if n == 0 {
		s.done = true
		return 0, io.EOF
	}

	// AIFF samples are signed at every depth.
	scale := float32(1) / float32(goaudio.IntMaxSignedValue(s.bitDepth)+1)
	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) * scale
	}

	if n < len(dst) || err == io.EOF {
		s.done = true
		return n, io.EOF
	}
	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, err := memio.AsReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	sampleType, ok := audio.SampleTypeFromBitDepth(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}
	signal, _ := audio.SignalTypeFromChannels(format.NumChannels)

	return &source{
		dec:      dec,
		channels: format.NumChannels,
		bitDepth: bitDepth,
		meta: audio.Metadata{
			Codec:        codecName(bitDepth),
			SampleRate:   uint32(format.SampleRate),
			TotalSamples: uint64(dec.NumSampleFrames),
			Signal:       signal,
			Sample:       sampleType,
		},
	}, nil
}

func codecName(bitDepth int) string {
	if bitDepth == 8 {
		return "pcm_s8"
	}
	return fmt.Sprintf("pcm_s%dbe", bitDepth)
}
