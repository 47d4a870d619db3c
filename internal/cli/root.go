// SPDX-License-Identifier: EPL-2.0

// Package cli implements the specvis command line tool.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ik5/specvis/colormap"
	"github.com/ik5/specvis/internal/config"
	"github.com/ik5/specvis/internal/logging"
	"github.com/ik5/specvis/render"
	"github.com/ik5/specvis/stft"
	"github.com/ik5/specvis/window"
)

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"fft-size":      "fft_size",
	"hop-length":    "hop_length",
	"window-size":   "window_size",
	"window-type":   "window",
	"color-scheme":  "color_scheme",
	"image-size":    "image_size",
	"dynamic-range": "dynamic_range",
	"output":        "output",
	"format":        "output_format",
	"channel":       "channel",
	"fft-backend":   "fft_backend",
	"workers":       "workers",
	"log-level":     "log_level",
	"log-format":    "log_format",
}

// app is the state shared by every command of one invocation.
type app struct {
	configFile string
	noProgress bool

	cfg *config.Config
	// log is nil until the configuration has been loaded.
	log logging.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	return new(app).command()
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "specvis [flags] <file>",
		Short: "Render spectrogram images of audio and I/Q recordings",
		Long: `specvis computes a short-time Fourier transform of an audio or I/Q
recording and renders it as an image: time runs left to right, frequency
bottom to top, and the level is mapped onto a color scheme.

Supported inputs are WAV/IQW, AIFF, FLAC, MP3 and Ogg Vorbis. The image is written
next to the input (song.wav -> song.wav.png) unless --output is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.log.Sync()
		},
		RunE: a.runRender,
	}

	pf := root.PersistentFlags()
	pf.IntP("fft-size", "f", stft.DefaultFFTSize, "FFT size (bins = fft-size/2+1)")
	pf.Int("hop-length", stft.DefaultHopLength, "samples between frames")
	pf.Int("window-size", 0, "samples per frame, 0 means fft-size")
	pf.StringP("window-type", "w", window.TypeHann.String(), "window function ("+names(window.Types())+")")
	pf.StringP("color-scheme", "c", colormap.DefaultScheme.String(), "color scheme ("+names(colormap.Schemes())+")")
	pf.StringP("image-size", "i", config.DefaultImageSize, "image size as WIDTHxHEIGHT")
	pf.Float64P("dynamic-range", "d", render.DefaultDynamicRange, "dynamic range in dB")
	pf.StringP("output", "o", "", "output image path (default <input>.<format>)")
	pf.String("format", render.FormatPNG.String(), "image format ("+names(render.Formats())+")")
	pf.String("channel", "first", "channel reduction for I/Q input (first, mix)")
	pf.String("fft-backend", "gonum", "FFT implementation (gonum, go-dsp)")
	pf.Int("workers", 1, "goroutines for the transform and the raster")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.StringVar(&a.configFile, "config", "", "config file (default ./specvis.yaml or $HOME/.config/specvis/specvis.yaml)")
	pf.BoolVar(&a.noProgress, "no-progress", false, "hide the progress bar")

	root.AddCommand(
		a.newInfoCommand(),
		a.newGenSignalCommand(),
		a.newConfigCommand(),
	)
	return root
}

// Execute runs the tool and exits with status 1 on failure.
func Execute() {
	if err := Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Run executes one invocation and reports a failure on stderr: through the
// logger once the configuration is loaded, as plain text before that.
func Run(args []string, stdout, stderr io.Writer) error {
	a := new(app)
	cmd := a.command()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return nil
	}
	if a.log == nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}
	a.log.Error(err, "command failed")
	_ = a.log.Sync()
	return err
}

func (a *app) initialize(cmd *cobra.Command) error {
	v, err := config.NewViper(a.configFile)
	if err != nil {
		return err
	}
	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, log
	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", logging.Fields{"path": used})
	}
	return nil
}

// bindFlags binds every mapped flag, local or inherited, to its key.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			lastErr = err
		}
	})

	return lastErr
}

func (a *app) progressOutput(cmd *cobra.Command) io.Writer {
	if a.noProgress {
		return nil
	}
	return cmd.ErrOrStderr()
}

func names[T fmt.Stringer](values []T) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return strings.Join(out, ", ")
}
