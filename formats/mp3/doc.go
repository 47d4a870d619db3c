// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// The decoder always produces 16 bit stereo, so every MP3 source reports two
// channels (treated as an I/Q pair by the spectrogram pipeline, where the
// first channel is used unless mixing is requested). The frame count is
// known only when the input is seekable.
package mp3
