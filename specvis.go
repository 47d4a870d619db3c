// SPDX-License-Identifier: EPL-2.0

package specvis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ik5/specvis/audio"
	"github.com/ik5/specvis/colormap"
	"github.com/ik5/specvis/formats"
	"github.com/ik5/specvis/render"
	"github.com/ik5/specvis/stft"
)

// ChannelMode selects how a two channel recording becomes one series.
type ChannelMode int

const (
	// ChannelFirst keeps channel 0 (the in-phase component of I/Q).
	ChannelFirst ChannelMode = iota
	// ChannelMix averages the channels.
	ChannelMix
)

func (m ChannelMode) String() string {
	switch m {
	case ChannelFirst:
		return "first"
	case ChannelMix:
		return "mix"
	}
	return "unknown"
}

// ParseChannelMode resolves a mode name. The empty string means ChannelFirst.
func ParseChannelMode(s string) (ChannelMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first", "i":
		return ChannelFirst, nil
	case "mix", "mean", "average":
		return ChannelMix, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChannelMode, s)
}

// LoadSamples decodes path and returns one series of samples in [-1, 1]
// together with the stream metadata.
func LoadSamples(path string, mode ChannelMode) ([]float32, audio.Metadata, error) {
	src, err := formats.Open(path)
	if err != nil {
		return nil, audio.Metadata{}, err
	}

	meta := src.Metadata()
	samples, err := ReadSeries(src, mode)
	if err != nil {
		return nil, meta, fmt.Errorf("load %s: %w", path, err)
	}
	return samples, meta, nil
}

// ReadSeries reads src to the end, reduced to one channel, and closes it.
// Sources with other than one or two channels are rejected.
func ReadSeries(src audio.Source, mode ChannelMode) (samples []float32, err error) {
	defer func() {
		if cerr := src.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	if _, err := audio.SignalTypeFromChannels(src.Channels()); err != nil {
		return nil, err
	}

	series, err := reduce(src, mode)
	if err != nil {
		return nil, err
	}
	return audio.ReadAll(series, src.BufSize())
}

func reduce(src audio.Source, mode ChannelMode) (audio.Source, error) {
	if src.Channels() == 1 {
		return src, nil
	}
	switch mode {
	case ChannelFirst:
		sel, err := audio.NewChannelSelector(src, 0)
		if err != nil {
			return nil, err
		}
		return sel, nil
	case ChannelMix:
		return audio.NewMonoMixer(src), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownChannelMode, int(mode))
}

// ComputeSpectrogram runs the STFT over samples. progress may be nil.
func ComputeSpectrogram(samples []float32, sampleRate uint32, params stft.CalcParams, progress stft.ProgressFunc, opts ...stft.Option) (*stft.Matrix, error) {
	return stft.Compute(samples, sampleRate, params, progress, opts...)
}

// RenderImage rasterizes m with the gradient of scheme.
func RenderImage(m *stft.Matrix, width, height int, scheme colormap.Scheme, dynamicRangeDB float32, opts ...render.Option) *render.Image {
	return render.Render(m, width, height, colormap.ForScheme(scheme), dynamicRangeDB, opts...)
}

// OutputPath appends the image extension to the input path, so song.wav
// becomes song.wav.png.
func OutputPath(input string, f render.Format) string {
	return input + "." + f.Ext()
}
