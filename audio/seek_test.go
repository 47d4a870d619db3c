// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"testing"

	"github.com/ik5/specvis/audio"
	"github.com/ik5/specvis/internal/audiotest"
)

// rampSource returns frame index / 1000 on channel 0 and its negation on
// channel 1.
func rampSource(frames int) *audiotest.MockSource {
	return audiotest.NewMockSource(8000, 2, frames, func(i, ch int) float32 {
		v := float32(i) / 1000
		if ch == 1 {
			return -v
		}
		return v
	})
}

type plainSource struct{ audio.Source }

func TestSeek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		wrap  func(audio.Source) audio.Source
		frame uint64
		want  float32
	}{
		{"direct", func(s audio.Source) audio.Source { return s }, 10, 0.010},
		{"selector q", func(s audio.Source) audio.Source {
			sel, _ := audio.NewChannelSelector(s, 1)
			return sel
		}, 20, -0.020},
		{"mixer", func(s audio.Source) audio.Source { return audio.NewMonoMixer(s) }, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := tt.wrap(rampSource(100))
			if err := audio.Seek(src, tt.frame); err != nil {
				t.Fatalf("Seek() error = %v", err)
			}
			buf := make([]float32, src.Channels())
			if _, err := src.ReadSamples(buf); err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if buf[0] != tt.want {
				t.Errorf("first sample after Seek(%d) = %v, want %v", tt.frame, buf[0], tt.want)
			}
		})
	}
}

func TestSeek_PastEnd(t *testing.T) {
	t.Parallel()

	src := rampSource(10)
	if err := audio.Seek(src, 50); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if samples, err := audio.ReadAll(src, 0); err != nil || len(samples) != 0 {
		t.Errorf("ReadAll() after end = %d samples, %v; want 0, nil", len(samples), err)
	}
}

func TestSeek_NotSeekable(t *testing.T) {
	t.Parallel()

	src := plainSource{rampSource(10)}
	if err := audio.Seek(src, 1); !errors.Is(err, audio.ErrNotSeekable) {
		t.Errorf("Seek() error = %v, want ErrNotSeekable", err)
	}

	sel, err := audio.NewChannelSelector(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := sel.Seek(1); !errors.Is(err, audio.ErrNotSeekable) {
		t.Errorf("ChannelSelector.Seek() error = %v, want ErrNotSeekable", err)
	}
}
