// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoded-signal contract shared by every input
// format.
//
// A Source yields interleaved float32 samples in [-1, 1] together with the
// Metadata of the stream (codec, rate, frame count, signal kind, storage
// type). Decoders are looked up by file extension through a Registry.
//
// Spectrograms are computed over a single series, so multi channel sources
// are reduced first:
//
//	sel, err := audio.NewChannelSelector(src, 0) // I of an I/Q pair
//	mono := audio.NewMonoMixer(src)              // or average all channels
//	samples, err := audio.ReadAll(sel, 0)
//
// Reads end with io.EOF; ReadAll treats it as success.
package audio
