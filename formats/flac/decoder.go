// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/specvis/audio"
	"github.com/ik5/specvis/internal/memio"
)

// signature opens every FLAC stream.
var signature = []byte("fLaC")

// frameReader is the part of flac.Stream the source needs; tests can fake it.
type frameReader interface {
	ParseNext() (*frame.Frame, error)
	Seek(sampleNum uint64) (uint64, error)
}

type source struct {
	dec      frameReader
	meta     audio.Metadata
	channels int
	scale    float32

	// pending holds interleaved samples of the current frame not yet read;
	// it aliases frameBuf.
	pending  []float32
	frameBuf []float32
	done    bool
}

func (s *source) SampleRate() int          { return int(s.meta.SampleRate) }
func (s *source) Channels() int            { return s.channels }
func (s *source) Metadata() audio.Metadata { return s.meta }
func (s *source) Close() error             { return nil }
func (s *source) BufSize() int             { return 4096 * s.channels }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(dst) {
		if len(s.pending) == 0 {
			if s.done {
				break
			}
			if err := s.next(); err != nil {
				return n, err
			}
			continue
		}
		c := copy(dst[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if s.done && len(s.pending) == 0 {
		return n, io.EOF
	}
	return n, nil
}

// next decodes one frame into pending.
func (s *source) next() error {
	f, err := s.dec.ParseNext()
	if errors.Is(err, io.EOF) {
		s.done = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("flac: %w", err)
	}
	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: %d, want %d", ErrChannelMismatch, len(f.Subframes), s.channels)
	}

	frames := len(f.Subframes[0].Samples)
	buf := s.frameBuf[:0]
	if cap(buf) < frames*s.channels {
		buf = make([]float32, 0, frames*s.channels)
	}
	for i := range frames {
		for _, sub := range f.Subframes {
			buf = append(buf, float32(sub.Samples[i])*s.scale)
		}
	}
	s.frameBuf = buf
	s.pending = buf
	return nil
}

// Seek moves to frame. The decoder lands on the start of the enclosing FLAC
// frame; the samples before the target are dropped.
func (s *source) Seek(target uint64) error {
	start, err := s.dec.Seek(target)
	if err != nil {
		return fmt.Errorf("flac: seek: %w", err)
	}
	s.pending = nil
	s.done = false

	skip := (target - min(start, target)) * uint64(s.channels)
	for skip > 0 {
		if len(s.pending) == 0 {
			if err := s.next(); err != nil {
				return err
			}
			if s.done {
				return nil
			}
			continue
		}
		d := min(skip, uint64(len(s.pending)))
		s.pending = s.pending[d:]
		skip -= d
	}
	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// Seeking needs io.ReadSeeker.
	rs, err := memio.AsReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading flac data: %w", err)
	}

	head := make([]byte, len(signature))
	if _, err := io.ReadFull(rs, head); err != nil || !bytes.Equal(head, signature) {
		return nil, ErrNotFlacFile
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("flac: %w", err)
	}

	stream, err := flac.NewSeek(rs)
	if err != nil {
		return nil, fmt.Errorf("flac: %w", err)
	}
	info := stream.Info

	bitDepth := int(info.BitsPerSample)
	sampleType, ok := audio.SampleTypeFromBitDepth(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	channels := int(info.NChannels)
	signal, _ := audio.SignalTypeFromChannels(channels)

	return &source{
		dec:      stream,
		channels: channels,
		scale:    1 / float32(uint64(1)<<(bitDepth-1)),
		meta: audio.Metadata{
			Codec:        "flac",
			SampleRate:   info.SampleRate,
			TotalSamples: info.NSamples,
			Signal:       signal,
			Sample:       sampleType,
		},
	}, nil
}
