// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/specvis/audio"
	"github.com/ik5/specvis/internal/memio"
)

// WAVE format tags.
const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// pcmReader is the part of wav.Decoder the source needs; tests can fake it.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec      pcmReader
	meta     audio.Metadata
	channels int
	bitDepth int
	format   *goaudio.Format
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
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("wav: %w", err)
	}
	if n == 0 {
		s.done = true
		return 0, io.EOF
	}

	// 8 bit WAV is unsigned, everything wider is two's complement.
	if s.bitDepth == 8 {
		for i := range n {
			dst[i] = float32(s.intBuf.Data[i]-128) / 128
		}
	} else {
		scale := float32(1) / float32(goaudio.IntMaxSignedValue(s.bitDepth)+1)
		for i := range n {
			dst[i] = float32(s.intBuf.Data[i]) * scale
		}
	}

	if n < len(dst) || err == io.EOF {
		s.done = true
		return n, io.EOF
	}
	return n, nil
}

// Decoder reads integer PCM WAV files (8, 16, 24 and 32 bit) through
// github.com/go-audio/wav. Inputs that cannot seek are buffered in memory.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := memio.AsReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}
	bitDepth := int(dec.BitDepth)
	sampleType, ok := audio.SampleTypeFromBitDepth(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	// Channel counts outside {1,2} are decodable; the caller decides.
	signal, _ := audio.SignalTypeFromChannels(channels)

	var frames uint64
	if frameSize := channels * bitDepth / 8; frameSize > 0 && dec.PCMSize > 0 {
		frames = uint64(dec.PCMSize / frameSize)
	}

	return &source{
		dec:      dec,
		channels: channels,
		bitDepth: bitDepth,
		format:   dec.Format(),
		meta: audio.Metadata{
			Codec:        codecName(bitDepth),
			SampleRate:   dec.SampleRate,
			TotalSamples: frames,
			Signal:       signal,
			Sample:       sampleType,
		},
	}, nil
}

func codecName(bitDepth int) string {
	if bitDepth == 8 {
		return "pcm_u8"
	}
	return fmt.Sprintf("pcm_s%dle", bitDepth)
}
