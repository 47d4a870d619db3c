// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeChunk is the number of samples converted per encoder call.
const writeChunk = 8192

// WriteWAV16 writes interleaved 16 bit PCM samples as a WAV file. The
// encoder rewrites the chunk sizes on close, so w must be seekable.
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	enc := wav.NewEncoder(w, sampleRate, 16, channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, 0, min(len(samples), writeChunk)),
		SourceBitDepth: 16,
	}

	// Always write once so the header and data chunk exist for empty input.
	for i := 0; i == 0 || i < len(samples); i += writeChunk {
		end := min(i+writeChunk, len(samples))
		buf.Data = buf.Data[:0]
		for _, s := range samples[i:end] {
			buf.Data = append(buf.Data, int(s))
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("wav: write: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: close: %w", err)
	}
	return nil
}
