// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/specvis/audio"
)

// go-mp3 always emits 16 bit little endian stereo.
const (
	channels      = 2
	bytesPerFrame = channels * 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec  mp3Reader
	meta audio.Metadata
	buf  []byte
	done bool
}

func (s *source) SampleRate() int          { return int(s.meta.SampleRate) }
func (s *source) Channels() int            { return channels }
func (s *source) Metadata() audio.Metadata { return s.meta }
func (s *source) Close() error             { return nil }
func (s *source) BufSize() int             { return cap(s.buf) / 2 } // samples, not bytes

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := io.ReadFull(s.dec, s.buf)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
		err = io.EOF
	case err != nil:
		return 0, fmt.Errorf("mp3: %w", err)
	}

	samples := n / 2
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}
	return samples, err
}

// Seek moves to frame. go-mp3 only seeks when the input is an io.Seeker.
func (s *source) Seek(frame uint64) error {
	sk, ok := s.dec.(io.Seeker)
	if !ok {
		return fmt.Errorf("mp3: %w", audio.ErrNotSeekable)
	}
	if _, err := sk.Seek(int64(frame)*bytesPerFrame, io.SeekStart); err != nil {
		return fmt.Errorf("mp3: seek: %w", err)
	}
	s.done = false
	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	// Length is only known for seekable input.
	var frames uint64
	if l := dec.Length(); l > 0 {
		frames = uint64(l / bytesPerFrame)
	}

	return &source{
		dec: dec,
		meta: audio.Metadata{
			Codec:        "mp3",
			SampleRate:   uint32(dec.SampleRate()),
			TotalSamples: frames,
			Signal:       audio.SignalIQ,
			Sample:       audio.SampleI16,
		},
		buf: make([]byte, 8192),
	}, nil
}
