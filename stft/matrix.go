// SPDX-License-Identifier: EPL-2.0

package stft

import "math"

// Matrix is the master spectrogram: one column of dB magnitudes per frame.
// It is produced once by Compute and read-only afterwards.
type Matrix struct {
	// Columns[i][k] is the level of bin k in frame i, in dB.
	Columns    [][]float32
	SampleRate uint32
	NFFT       int
}

// Frames is the number of time columns.
func (m *Matrix) Frames() int {
	if m == nil {
		return 0
	}
	return len(m.Columns)
}

// Bins is the number of frequency rows per column.
func (m *Matrix) Bins() int {
	if m == nil || len(m.Columns) == 0 {
		return 0
	}
	return len(m.Columns[0])
}

// Empty reports whether there is nothing to render.
func (m *Matrix) Empty() bool { return m.Frames() == 0 }

// BinFrequency is the center frequency of bin k in Hz.
func (m *Matrix) BinFrequency(k int) float64 {
	if m.NFFT == 0 {
		return 0
	}
	return float64(k) * float64(m.SampleRate) / float64(m.NFFT)
}

// FrameTime is the start time of frame i in seconds for the given hop.
func (m *Matrix) FrameTime(i, hop int) float64 {
	if m.SampleRate == 0 {
		return 0
	}
	return float64(i*hop) / float64(m.SampleRate)
}

// Range returns the smallest and largest cell values. An empty matrix
// returns (0, 0).
func (m *Matrix) Range() (minDB, maxDB float32) {
	if m.Empty() {
		return 0, 0
	}

	minDB = float32(math.Inf(1))
	maxDB = float32(math.Inf(-1))
	for _, col := range m.Columns {
		for _, v := range col {
			if v < minDB {
				minDB = v
			}
			if v > maxDB {
				maxDB = v
			}
		}
	}
	return minDB, maxDB
}
