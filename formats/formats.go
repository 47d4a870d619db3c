// SPDX-License-Identifier: EPL-2.0

// Package formats wires the codec packages into an audio.Registry and opens
// signal files by extension.
package formats

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/specvis/audio"
	"github.com/ik5/specvis/formats/aiff"
	"github.com/ik5/specvis/formats/flac"
	"github.com/ik5/specvis/formats/mp3"
	"github.com/ik5/specvis/formats/vorbis"
	"github.com/ik5/specvis/formats/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// NewRegistry returns a registry with every built-in decoder. IQW captures
// are plain WAV files.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	for _, ext := range []string{"wav", "wave", "iqw"} {
		r.Register(ext, wav.Decoder{})
	}
	for _, ext := range []string{"aif", "aiff"} {
		r.Register(ext, aiff.Decoder{})
	}
	r.Register("flac", flac.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	for _, ext := range []string{"ogg", "oga"} {
		r.Register(ext, vorbis.Decoder{})
	}
	return r
}

var defaultRegistry = NewRegistry()

// Ext returns the lowercase extension of path without the dot.
func Ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Open decodes path with the default registry.
func Open(path string) (audio.Source, error) {
	return OpenWith(defaultRegistry, path)
}

// OpenWith picks a decoder by extension. Files with unknown extensions are
// tried as WAV. Closing the returned source closes the file.
func OpenWith(reg *audio.Registry, path string) (audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	ext := Ext(path)
	src, err := decode(reg, f, ext)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &fileSource{Source: src, f: f}, nil
}

func decode(reg *audio.Registry, f io.ReadSeeker, ext string) (audio.Source, error) {
	if d, ok := reg.Get(ext); ok {
		src, err := d.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", ext, err)
		}
		return src, nil
	}

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return src, nil
}

type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Seek(frame uint64) error { return audio.Seek(s.Source, frame) }

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.f.Close())
}
