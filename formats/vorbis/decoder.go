// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/specvis/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec      oggReader
	meta     audio.Metadata
	channels int
}

func (s *source) SampleRate() int          { return int(s.meta.SampleRate) }
func (s *source) Channels() int            { return s.channels }
func (s *source) Metadata() audio.Metadata { return s.meta }
func (s *source) Close() error             { return nil }
func (s *source) BufSize() int             { return 4096 * s.channels }

// ReadSamples reads whole frames; oggvorbis counts interleaved values.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) / s.channels * s.channels
	if want == 0 {
		return 0, fmt.Errorf("%w: %d < %d", audio.ErrInvalidDstSize, len(dst), s.channels)
	}

	n, err := s.dec.Read(dst[:want])
	if err == io.EOF {
		return n, io.EOF
	}
	if err != nil {
		return n, fmt.Errorf("vorbis: %w", err)
	}
	return n, nil
}

type positioner interface {
	SetPosition(pos int64) error
}

// Seek moves to frame; oggvorbis needs a seekable input for this.
func (s *source) Seek(frame uint64) error {
	p, ok := s.dec.(positioner)
	if !ok {
		return fmt.Errorf("vorbis: %w", audio.ErrNotSeekable)
	}
	if err := p.SetPosition(int64(frame)); err != nil {
		return fmt.Errorf("vorbis: seek: %w", err)
	}
	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}

	signal, _ := audio.SignalTypeFromChannels(dec.Channels())

	var frames uint64
	if l := dec.Length(); l > 0 {
		frames = uint64(l)
	}

	return &source{
		dec:      dec,
		channels: dec.Channels(),
		meta: audio.Metadata{
			Codec:        "vorbis",
			SampleRate:   uint32(dec.SampleRate()),
			TotalSamples: frames,
			Signal:       signal,
			Sample:       audio.SampleF32,
		},
	}, nil
}
