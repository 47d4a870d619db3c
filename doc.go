// SPDX-License-Identifier: EPL-2.0

// Package specvis renders spectrogram images of audio and I/Q recordings.
//
// The pipeline has three steps, each usable on its own:
//
//	samples, meta, err := specvis.LoadSamples("capture.wav", specvis.ChannelFirst)
//	m, err := specvis.ComputeSpectrogram(samples, meta.SampleRate, stft.DefaultParams(), nil)
//	img := specvis.RenderImage(m, 2048, 512, colormap.Oceanic, render.DefaultDynamicRange)
//
// The result is written with render.Encode as PNG, BMP or TIFF.
//
// # Input
//
// Files are opened through formats.Open, which picks a decoder by extension:
//   - WAV and IQW (PCM 8, 16, 24 and 32 bit) via formats/wav
//   - AIFF via formats/aiff
//   - FLAC via formats/flac
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Unknown extensions are tried as WAV. One channel is treated as a real
// signal and two channels as I/Q; the spectrogram is computed over a single
// series, the first channel by default or the channel average with
// ChannelMix.
//
// # Output
//
// Time runs left to right and frequency bottom to top. When the image is
// narrower than the frame count, each column holds the loudest frame of its
// span. Levels are mapped onto a 256 entry gradient over the top
// dynamicRangeDB decibels of the matrix; a flat matrix, such as silence,
// paints the first gradient color.
//
// See the individual subpackages for the building blocks.
package specvis
