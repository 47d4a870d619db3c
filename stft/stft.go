// SPDX-License-Identifier: EPL-2.0

package stft

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/specvis/window"
)

// MagnitudeFloor keeps silent bins finite: log10(0) would be -Inf.
const MagnitudeFloor = 1e-9

// FloorDB is the level reported for a bin whose magnitude is at or below
// MagnitudeFloor.
var FloorDB = toDB(0)

// progressEvery is the frame stride between progress reports.
const progressEvery = 10

// ProgressFunc receives the number of finished frames and the total. It runs
// synchronously on the computing goroutine and gates further progress.
type ProgressFunc func(done, total int)

// Option configures Compute.
type Option func(*options)

type options struct {
	backend Backend
	workers int
}

// WithBackend selects the FFT implementation.
func WithBackend(b Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithWorkers computes frames on n goroutines. Values below 2 keep the
// computation on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Compute runs the short-time Fourier transform over samples.
//
// The only error is an invalid params; once the parameters are accepted the
// transform itself cannot fail. A signal shorter than params.WindowSize
// yields a matrix with zero columns.
func Compute(samples []float32, sampleRate uint32, params CalcParams, progress ProgressFunc, opts ...Option) (*Matrix, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("stft: %w", err)
	}

	o := options{backend: BackendGonum, workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if progress == nil {
		progress = func(int, int) {}
	}

	win := window.Generate(params.Window, params.WindowSize)
	total := params.Frames(len(samples))
	columns := make([][]float32, total)

	if total == 0 {
		progress(0, 0)
		return &Matrix{Columns: columns, SampleRate: sampleRate, NFFT: params.NFFT}, nil
	}

	if o.workers < 2 || total < 2 {
		fr := newFramer(params, win, o.backend)
		for i := range total {
			columns[i] = fr.frame(samples, i)
			if i%progressEvery == 0 || i == total-1 {
				progress(i+1, total)
			}
		}
	} else {
		computeParallel(samples, params, win, o, columns, progress)
	}

	return &Matrix{Columns: columns, SampleRate: sampleRate, NFFT: params.NFFT}, nil
}

func computeParallel(samples []float32, params CalcParams, win []float32, o options, columns [][]float32, progress ProgressFunc) {
	total := len(columns)
	workers := min(o.workers, total)
	chunk := (total + workers - 1) / workers

	var (
		mu   sync.Mutex
		done int
	)
	report := func() {
		mu.Lock()
		defer mu.Unlock()

		done++
		if (done-1)%progressEvery == 0 || done == total {
			progress(done, total)
		}
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for start := 0; start < total; start += chunk {
		end := min(start+chunk, total)
		g.Go(func() error {
			fr := newFramer(params, win, o.backend)
			for i := start; i < end; i++ {
				columns[i] = fr.frame(samples, i)
				report()
			}
			return nil
		})
	}

	_ = g.Wait()
}

// framer owns the scratch buffers and the FFT plan for one goroutine.
type framer struct {
	params CalcParams
	win    []float32
	fft    FFT
	in     []complex128
	out    []complex128
}

func newFramer(params CalcParams, win []float32, b Backend) *framer {
	return &framer{
		params: params,
		win:    win,
		fft:    b.New(params.NFFT),
		in:     make([]complex128, params.NFFT),
		out:    make([]complex128, params.NFFT),
	}
}

// frame returns the dB half-spectrum of frame i.
func (f *framer) frame(samples []float32, i int) []float32 {
	start := i * f.params.HopLength

	for j := range f.params.WindowSize {
		f.in[j] = complex(float64(samples[start+j]*f.win[j]), 0)
	}
	for j := f.params.WindowSize; j < f.params.NFFT; j++ {
		f.in[j] = 0
	}

	f.out = f.fft.Forward(f.out, f.in)

	bins := f.params.Bins()
	col := make([]float32, bins)
	for k := range bins {
		re, im := real(f.out[k]), imag(f.out[k])
		col[k] = toDB(math.Sqrt(re*re + im*im))
	}
	return col
}

func toDB(magnitude float64) float32 {
	return float32(20 * math.Log10(math.Max(magnitude, MagnitudeFloor)))
}
