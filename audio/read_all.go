// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadAll drains src and returns every sample it produced. bufSize <= 0
// uses src.BufSize(). Reaching io.EOF is success.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	if bufSize <= 0 {
		bufSize = 4096
	}
	if ch := src.Channels(); ch > 1 && bufSize%ch != 0 {
		bufSize += ch - bufSize%ch
	}

	var out []float32
	if total := src.Metadata().TotalSamples; total > 0 {
		out = make([]float32, 0, total*uint64(src.Channels()))
	}

	buf := make([]float32, bufSize)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("read samples: %w", err)
		}
		if n == 0 {
			return out, nil
		}
	}
}
