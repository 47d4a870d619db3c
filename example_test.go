// SPDX-License-Identifier: EPL-2.0

package specvis_test

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/ik5/specvis"
	"github.com/ik5/specvis/colormap"
	"github.com/ik5/specvis/internal/audiotest"
	"github.com/ik5/specvis/render"
	"github.com/ik5/specvis/stft"
)

// Example_pipeline turns one second of a 440 Hz tone into a PNG.
func Example_pipeline() {
	src := audiotest.NewSineSource(8000, 1, 8000, 440)
	samples, err := specvis.ReadSeries(src, specvis.ChannelFirst)
	if err != nil {
		fmt.Println(err)
		return
	}

	params := stft.CalcParams{NFFT: 512, HopLength: 256, WindowSize: 512}
	m, err := specvis.ComputeSpectrogram(samples, 8000, params, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Matrix: %d frames x %d bins\n", m.Frames(), m.Bins())

	img := specvis.RenderImage(m, 64, 32, colormap.Oceanic, render.DefaultDynamicRange)

	var buf bytes.Buffer
	if err := render.Encode(&buf, img, render.FormatPNG); err != nil {
		fmt.Println(err)
		return
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Image: %dx%d\n", cfg.Width, cfg.Height)
	// Output:
	// Matrix: 29 frames x 257 bins
	// Image: 64x32
}

// Example_progress shows when the progress callback fires.
func Example_progress() {
	samples := make([]float32, 1024+24*256)
	params := stft.CalcParams{NFFT: 1024, HopLength: 256, WindowSize: 1024}

	_, err := specvis.ComputeSpectrogram(samples, 44100, params, func(done, total int) {
		fmt.Printf("%d/%d\n", done, total)
	})
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	// 1/24
	// 11/24
	// 21/24
	// 24/24
}

func ExampleOutputPath() {
	fmt.Println(specvis.OutputPath("song.wav", render.FormatPNG))
	// Output: song.wav.png
}
