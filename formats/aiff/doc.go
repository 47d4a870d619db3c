// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files with
// github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 and 32 bits is supported with any channel count
// and sample rate. Samples are big endian and signed at every depth; they are
// scaled to [-1, 1]. The frame count comes from the COMM chunk.
//
//	file, _ := os.Open("tone.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // not AIFF, or an unsupported bit depth
//	}
//	fmt.Println(source.Metadata()) // 'pcm_s16be', 44100 Hz, real i16, 3s
//
// Inputs that cannot seek are read fully into memory first, since the
// go-audio decoder walks chunks with Seek.
package aiff
