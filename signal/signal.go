// SPDX-License-Identifier: EPL-2.0

// Package signal synthesizes reference signals for checking the renderer.
package signal

import "math"

// Test signal constants.
const (
	DefaultSampleRate = 44100
	DefaultSeconds    = 10

	LowTone  = 220.0
	MidTone  = 880.0
	HighTone = 3520.0

	// Amplitude scales the mixed tones; the peak stays below 0.5.
	Amplitude = 0.5
)

// Sine returns n samples of amp*sin(2*pi*freq*t).
func Sine(freq float64, sampleRate, n int, amp float32) []float32 {
	if n <= 0 || sampleRate <= 0 {
		return nil
	}
	out := make([]float32, n)
	step := 2 * math.Pi * freq / float64(sampleRate)
	for i := range out {
		out[i] = amp * float32(math.Sin(step*float64(i)))
	}
	return out
}

// ThreeTone is the spectrogram test pattern: a 220 Hz tone throughout, an
// 880 Hz tone in the first half and a 3520 Hz tone in the second half.
//
// Each output sample is Amplitude * (0.4*low + 0.3*(mid or high)).
func ThreeTone(sampleRate, seconds int) []float32 {
	if sampleRate <= 0 || seconds <= 0 {
		return nil
	}

	n := sampleRate * seconds
	half := float64(seconds) / 2
	out := make([]float32, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)

		v := 0.4 * math.Sin(2*math.Pi*LowTone*t)
		if t < half {
			v += 0.3 * math.Sin(2*math.Pi*MidTone*t)
		} else {
			v += 0.3 * math.Sin(2*math.Pi*HighTone*t)
		}
		out[i] = float32(v * Amplitude)
	}
	return out
}
