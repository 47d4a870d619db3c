// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/specvis"
	"github.com/ik5/specvis/colormap"
	"github.com/ik5/specvis/internal/logging"
	"github.com/ik5/specvis/render"
	"github.com/ik5/specvis/stft"
	"github.com/ik5/specvis/utils"
)

func (a *app) runRender(cmd *cobra.Command, args []string) error {
	input := args[0]
	cfg := a.cfg

	// Failures reported by Run carry the file too.
	a.log = a.log.WithFields(logging.Fields{"file": input})
	log := a.log

	params, err := cfg.CalcParams()
	if err != nil {
		return err
	}
	scheme, _ := cfg.Scheme()
	format, _ := cfg.Format()
	backend, _ := cfg.Backend()
	mode, _ := cfg.ChannelMode()
	width, height := cfg.Size()

	output := cfg.Output
	if output == "" {
		output = specvis.OutputPath(input, format)
	}

	log.Info("parameters", logging.Fields{
		"fft_size":      params.NFFT,
		"hop_length":    params.HopLength,
		"window_size":   params.WindowSize,
		"window":        params.Window.String(),
		"image_size":    fmt.Sprintf("%dx%d", width, height),
		"color_scheme":  scheme.String(),
		"palette":       palette(scheme),
		"dynamic_range": cfg.DynamicRange,
		"channel":       mode.String(),
		"fft_backend":   backend.String(),
		"workers":       cfg.Workers,
	})

	overall := time.Now()

	start := time.Now()
	samples, meta, err := specvis.LoadSamples(input, mode)
	if err != nil {
		return err
	}
	log.Info("loaded", logging.Fields{
		"metadata": meta.String(),
		"samples":  utils.FormatSamples(uint64(len(samples))),
		"elapsed":  elapsed(start),
	})

	start = time.Now()
	var progress stft.ProgressFunc
	var bar *progressBar
	if w := a.progressOutput(cmd); w != nil {
		bar = newProgressBar(w)
		progress = bar.update
	}
	m, err := specvis.ComputeSpectrogram(samples, meta.SampleRate, params, progress,
		stft.WithBackend(backend), stft.WithWorkers(cfg.Workers))
	if bar != nil {
		bar.wait()
	}
	if err != nil {
		return err
	}
	log.Info("computed spectrogram", logging.Fields{
		"frames":        m.Frames(),
		"bins":          m.Bins(),
		"resolution_hz": m.BinFrequency(1),
		"top_hz":        m.BinFrequency(params.Bins() - 1),
		"frame_period":  utils.FormatDuration(m.FrameTime(1, params.HopLength)),
		"elapsed":       elapsed(start),
	})
	if m.Empty() {
		log.Warn("input shorter than one window, image is blank", logging.Fields{
			"samples":     len(samples),
			"window_size": params.WindowSize,
		})
	}

	start = time.Now()
	img := specvis.RenderImage(m, width, height, scheme, float32(cfg.DynamicRange), render.WithWorkers(cfg.Workers))
	if err := writeImage(output, img, format); err != nil {
		return err
	}
	log.Info("wrote image", logging.Fields{
		"path":    output,
		"format":  format.String(),
		"elapsed": elapsed(start),
		"total":   elapsed(overall),
	})
	return nil
}

func writeImage(path string, img *render.Image, f render.Format) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()

	if err := render.Encode(out, img, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// palette describes the stop table of s as "v<version> #first..#last".
func palette(s colormap.Scheme) string {
	stops := s.Stops()
	if len(stops) == 0 {
		return ""
	}
	return fmt.Sprintf("v%d %s..%s", colormap.StopsVersion, stops[0].Hex(), stops[len(stops)-1].Hex())
}

func elapsed(since time.Time) string {
	return utils.FormatDuration(time.Since(since).Seconds())
}
