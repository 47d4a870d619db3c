// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"

	"github.com/ik5/specvis/audio"
)

// mockFrameReader serves pre-built frames like flac.Stream.ParseNext.
// Every frame holds blockSize samples per channel.
type mockFrameReader struct {
	frames   []*frame.Frame
	next     int
	failWith error
}

func (m *mockFrameReader) ParseNext() (*frame.Frame, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.next >= len(m.frames) {
		return nil, io.EOF
	}
	f := m.frames[m.next]
	m.next++
	return f, nil
}

// Seek lands on the start of the frame holding sampleNum.
func (m *mockFrameReader) Seek(sampleNum uint64) (uint64, error) {
	var start uint64
	for i, f := range m.frames {
		n := uint64(len(f.Subframes[0].Samples))
		if sampleNum < start+n {
			m.next = i
			return start, nil
		}
		start += n
	}
	m.next = len(m.frames)
	return start, nil
}

// buildFrames splits per-channel sample series into frames of blockSize.
func buildFrames(blockSize int, channels ...[]int32) []*frame.Frame {
	var out []*frame.Frame
	for off := 0; off < len(channels[0]); off += blockSize {
		end := min(off+blockSize, len(channels[0]))
		f := &frame.Frame{}
		for _, ch := range channels {
			f.Subframes = append(f.Subframes, &frame.Subframe{Samples: ch[off:end]})
		}
		out = append(out, f)
	}
	return out
}

func newMockSource(bitDepth int, blockSize int, channels ...[]int32) *source {
	sig, _ := audio.SignalTypeFromChannels(len(channels))
	return &source{
		dec:      &mockFrameReader{frames: buildFrames(blockSize, channels...)},
		channels: len(channels),
		scale:    1 / float32(uint64(1)<<(bitDepth-1)),
		meta: audio.Metadata{
			Codec:        "flac",
			SampleRate:   48000,
			TotalSamples: uint64(len(channels[0])),
			Signal:       sig,
		},
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{[]byte("This is not FLAC data"), []byte("fL"), {}} {
		_, err := Decoder{}.Decode(bytes.NewReader(data))
		if !errors.Is(err, ErrNotFlacFile) {
			t.Errorf("Decode(%q) error = %v, want ErrNotFlacFile", data, err)
		}
	}
}

func TestDecoder_TruncatedStream(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("fLaC\x00\x00"))); err == nil {
		t.Error("Decode(truncated) error = nil, want error")
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		channels [][]int32
		want     []float32
	}{
		{
			name:     "mono 16",
			bitDepth: 16,
			channels: [][]int32{{0, 16384, -16384, -32768, 32767}},
			want:     []float32{0, 0.5, -0.5, -1, 32767.0 / 32768},
		},
		{
			name:     "iq 24",
			bitDepth: 24,
			channels: [][]int32{{4194304, 0, -8388608}, {-4194304, 2097152, 0}},
			want:     []float32{0.5, -0.5, 0, 0.25, -1, 0},
		},
		{
			name:     "mono 8",
			bitDepth: 8,
			channels: [][]int32{{64, -128, 0}},
			want:     []float32{0.5, -1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Block size 2 makes reads straddle frame boundaries.
			src := newMockSource(tt.bitDepth, 2, tt.channels...)
			got, err := audio.ReadAll(src, 3*len(tt.channels))
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newMockSource(16, 4, []int32{1, 2, 3})
	dst := make([]float32, 10)
	n, err := src.ReadSamples(dst)
	if n != 3 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 3, io.EOF", n, err)
	}
	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newMockSource(16, 4, []int32{1, 2, 3})
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_Errors(t *testing.T) {
	t.Parallel()

	src := newMockSource(16, 4, []int32{1, 2})
	src.dec.(*mockFrameReader).failWith = io.ErrUnexpectedEOF
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}

	mismatch := newMockSource(16, 4, []int32{1, 2})
	mismatch.channels = 2
	if _, err := mismatch.ReadSamples(make([]float32, 4)); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("ReadSamples() error = %v, want ErrChannelMismatch", err)
	}
}

func TestSource_Seek(t *testing.T) {
	t.Parallel()

	ramp := make([]int32, 10)
	for i := range ramp {
		ramp[i] = int32(i) * 1024
	}

	tests := []struct {
		target uint64
		want   []float32
	}{
		{0, []float32{0, 1.0 / 32, 2.0 / 32}},
		{4, []float32{4.0 / 32, 5.0 / 32, 6.0 / 32}},
		{5, []float32{5.0 / 32, 6.0 / 32, 7.0 / 32}},
		{9, []float32{9.0 / 32}},
	}

	src := newMockSource(16, 4, ramp)
	for _, tt := range tests {
		if err := src.Seek(tt.target); err != nil {
			t.Fatalf("Seek(%d) error = %v", tt.target, err)
		}
		dst := make([]float32, 3)
		n, err := src.ReadSamples(dst)
		if err != nil && err != io.EOF {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if n != len(tt.want) {
			t.Fatalf("Seek(%d): read %d samples, want %d", tt.target, n, len(tt.want))
		}
		for i := range tt.want {
			if dst[i] != tt.want[i] {
				t.Errorf("Seek(%d): sample %d = %v, want %v", tt.target, i, dst[i], tt.want[i])
			}
		}
	}

	if err := src.Seek(100); err != nil {
		t.Fatalf("Seek(100) error = %v", err)
	}
	if n, err := src.ReadSamples(make([]float32, 3)); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() past end = %d, %v; want 0, io.EOF", n, err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	ramp := make([]int32, 44100)
	for i := range ramp {
		ramp[i] = int32(i % 1000 * 32)
	}
	frames := buildFrames(4096, ramp, ramp)
	buf := make([]float32, 8192)

	b.ReportAllocs()

	for b.Loop() {
		src := newMockSource(16, 4096, ramp, ramp)
		src.dec = &mockFrameReader{frames: frames}
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
