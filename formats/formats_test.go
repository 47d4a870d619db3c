// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/specvis/audio"
	"github.com/ik5/specvis/formats/flac"
	"github.com/ik5/specvis/formats/wav"
)

func writeWAV(t *testing.T, path string, channels int, samples []int16) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, 8000, channels, samples); err != nil {
		t.Fatal(err)
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	want := []string{"aif", "aiff", "flac", "iqw", "mp3", "oga", "ogg", "wav", "wave"}
	got := NewRegistry().Formats()
	if len(got) != len(want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Formats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExt(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"song.WAV":       "wav",
		"/a/b/c.iqw":     "iqw",
		"noext":          "",
		"archive.tar.gz": "gz",
		"dir.d/capture":  "",
	}
	for in, want := range tests {
		if got := Ext(in); got != want {
			t.Errorf("Ext(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	samples := []int16{0, 1000, -1000, 2000, -2000, 3000}

	tests := []struct {
		name     string
		file     string
		channels int
		signal   audio.SignalType
	}{
		{"wav", "tone.wav", 1, audio.SignalReal},
		{"upper case", "TONE2.WAV", 1, audio.SignalReal},
		{"iqw", "capture.iqw", 2, audio.SignalIQ},
		{"unknown extension", "capture.raw", 2, audio.SignalIQ},
		{"no extension", "capture", 1, audio.SignalReal},
	}

	for _, tt := range tests {
		path := filepath.Join(dir, tt.file)
		writeWAV(t, path, tt.channels, samples)

		src, err := Open(path)
		if err != nil {
			t.Errorf("%s: Open() error = %v", tt.name, err)
			continue
		}
		if src.Channels() != tt.channels || src.Metadata().Signal != tt.signal {
			t.Errorf("%s: channels %d signal %v, want %d %v", tt.name, src.Channels(), src.Metadata().Signal, tt.channels, tt.signal)
		}
		got, err := audio.ReadAll(src, 0)
		if err != nil || len(got) != len(samples) {
			t.Errorf("%s: ReadAll() = %d samples, %v", tt.name, len(got), err)
		}
		if err := src.Close(); err != nil {
			t.Errorf("%s: Close() error = %v", tt.name, err)
		}
	}
}

func TestOpen_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := Open(filepath.Join(dir, "missing.wav")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}

	junk := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(junk, []byte("plain text, not a signal"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(junk); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("unknown format error = %v, want ErrUnsupportedFormat", err)
	}

	badWav := filepath.Join(dir, "broken.wav")
	if err := os.WriteFile(badWav, []byte("RIFF....not really"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(badWav); !errors.Is(err, wav.ErrNotWavFile) {
		t.Errorf("broken wav error = %v, want wav.ErrNotWavFile", err)
	}

	badFlac := filepath.Join(dir, "broken.flac")
	if err := os.WriteFile(badFlac, []byte("OggS, not flac"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(badFlac); !errors.Is(err, flac.ErrNotFlacFile) {
		t.Errorf("broken flac error = %v, want flac.ErrNotFlacFile", err)
	}
}

func TestOpen_SeekForwarding(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tone.wav")
	writeWAV(t, path, 1, []int16{1, 2, 3})

	src, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	if _, ok := src.(audio.Seeker); !ok {
		t.Fatal("opened source does not expose Seek")
	}
	// go-audio tracks the PCM chunk position itself, so WAV cannot seek.
	if err := audio.Seek(src, 1); !errors.Is(err, audio.ErrNotSeekable) {
		t.Errorf("Seek() error = %v, want ErrNotSeekable", err)
	}
}
