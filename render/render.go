// SPDX-License-Identifier: EPL-2.0

package render

import (
	"sync"

	"github.com/ik5/specvis/colormap"
	"github.com/ik5/specvis/stft"
)

// DefaultDynamicRange is the span below the peak (dB) that stays visible.
const DefaultDynamicRange = 110

// Option configures Render.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers paints pixel columns on n goroutines.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Render resamples m to width x height and colors it through g.
//
// Time is downsampled with a max-pool so that short peaks survive when many
// columns collapse into one pixel; frequency uses nearest neighbor with low
// bins at the bottom. Levels below (peak - dynamicRangeDB) take g[0].
//
// An empty matrix yields a Background image. A zero dynamic range, or a
// matrix whose cells all hold the same level (silent or perfectly flat
// input), normalizes every cell to 0, i.e. g[0].
func Render(m *stft.Matrix, width, height int, g colormap.Gradient, dynamicRangeDB float32, opts ...Option) *Image {
	img := NewImage(width, height)
	if m.Empty() || img.Width == 0 {
		return img
	}

	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	dataMin, maxDB := m.Range()
	minDB := maxDB - dynamicRangeDB
	if dataMin == maxDB {
		// Flat input, e.g. silence at the dB floor.
		minDB = maxDB
	}
	r := raster{
		m:     m,
		img:   img,
		g:     &g,
		minDB: minDB,
		maxDB: maxDB,
	}

	if o.workers < 2 {
		for x := range img.Width {
			r.column(x)
		}
		return img
	}

	var wg sync.WaitGroup
	cols := make(chan int)
	for range min(o.workers, img.Width) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for x := range cols {
				r.column(x)
			}
		}()
	}
	for x := range img.Width {
		cols <- x
	}
	close(cols)
	wg.Wait()

	return img
}

type raster struct {
	m            *stft.Matrix
	img          *Image
	g            *colormap.Gradient
	minDB, maxDB float32
}

// column paints pixel column x.
func (r *raster) column(x int) {
	masterWidth := len(r.m.Columns)
	masterHeight := len(r.m.Columns[0])
	width, height := r.img.Width, r.img.Height

	start := x * masterWidth / width
	end := max((x+1)*masterWidth/width, start+1)

	for y := range height {
		bin := (height - 1 - y) * masterHeight / height

		value, ok := r.peak(start, end, bin)
		var c colormap.Color
		if ok {
			c = r.g[colormap.Index(r.normalize(value))]
		} else {
			c = r.g[0]
		}
		r.img.Set(x, y, c)
	}
}

// peak is the largest level of bin over columns [start, end). Indices past
// the matrix are skipped; ok is false when none was in range.
func (r *raster) peak(start, end, bin int) (float32, bool) {
	var (
		best float32
		ok   bool
	)
	for i := start; i < end && i < len(r.m.Columns); i++ {
		col := r.m.Columns[i]
		if bin >= len(col) {
			continue
		}
		if !ok || col[bin] > best {
			best = col[bin]
			ok = true
		}
	}
	return best, ok
}

func (r *raster) normalize(v float32) float32 {
	span := r.maxDB - r.minDB
	if !(span > 0) {
		return 0
	}
	n := (v - r.minDB) / span
	switch {
	case n != n:
		return 0
	case n < 0:
		return 0
	case n > 1:
		return 1
	}
	return n
}
