// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"
	"testing"

	"github.com/ik5/specvis/stft"
)

func TestSine(t *testing.T) {
	t.Parallel()

	s := Sine(1000, 8000, 8, 1)
	want := []float64{0, math.Sqrt2 / 2, 1, math.Sqrt2 / 2, 0, -math.Sqrt2 / 2, -1, -math.Sqrt2 / 2}
	for i, w := range want {
		if math.Abs(float64(s[i])-w) > 1e-6 {
			t.Errorf("s[%d] = %v, want %v", i, s[i], w)
		}
	}

	if Sine(440, 0, 10, 1) != nil || Sine(440, 8000, 0, 1) != nil {
		t.Error("Sine with non-positive sizes should be nil")
	}
}

func TestThreeToneLengthAndPeak(t *testing.T) {
	t.Parallel()

	s := ThreeTone(8000, 2)
	if len(s) != 16000 {
		t.Fatalf("len = %d, want 16000", len(s))
	}

	var peak float32
	for _, v := range s {
		peak = max(peak, float32(math.Abs(float64(v))))
	}
	if peak > 0.35+1e-6 {
		t.Errorf("peak = %v, want <= 0.35", peak)
	}
	if peak < 0.3 {
		t.Errorf("peak = %v, suspiciously low", peak)
	}

	if ThreeTone(0, 1) != nil || ThreeTone(8000, 0) != nil {
		t.Error("ThreeTone with non-positive sizes should be nil")
	}
}

// peakBin is the strongest bin above minBin in column col.
func peakBin(m *stft.Matrix, col, minBin int) int {
	best := minBin
	for k := minBin; k < m.Bins(); k++ {
		if m.Columns[col][k] > m.Columns[col][best] {
			best = k
		}
	}
	return best
}

func TestThreeToneSpectrum(t *testing.T) {
	t.Parallel()

	const rate = 44100
	s := ThreeTone(rate, 2)

	params := stft.CalcParams{NFFT: 4096, HopLength: 4096, WindowSize: 4096}
	m, err := stft.Compute(s, rate, params, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Bins above the 220 Hz tone.
	above := int(500 * float64(params.NFFT) / rate)

	first := m.BinFrequency(peakBin(m, 2, above))
	if math.Abs(first-MidTone) > 2*float64(rate)/float64(params.NFFT) {
		t.Errorf("first half upper tone at %.1f Hz, want ~%v", first, MidTone)
	}

	last := m.BinFrequency(peakBin(m, m.Frames()-2, above))
	if math.Abs(last-HighTone) > 2*float64(rate)/float64(params.NFFT) {
		t.Errorf("second half upper tone at %.1f Hz, want ~%v", last, HighTone)
	}

	low := m.BinFrequency(peakBin(m, 2, 1))
	if math.Abs(low-LowTone) > 2*float64(rate)/float64(params.NFFT) {
		t.Errorf("lowest tone at %.1f Hz, want ~%v", low, LowTone)
	}
}

func BenchmarkThreeTone(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		ThreeTone(DefaultSampleRate, 1)
	}
}
