// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC files with github.com/mewkiz/flac.
//
// Streams of 8, 16, 24 and 32 bits per sample are supported. Frames are
// decoded one at a time and interleaved; samples are scaled to [-1, 1].
// The frame count comes from STREAMINFO and is 0 when the encoder left it
// unset. Seeking uses the decoder's seek table or a frame scan.
//
//	file, _ := os.Open("capture.flac")
//	source, err := flac.Decoder{}.Decode(file)
//	if err != nil {
//	    // not FLAC, or an unsupported bit depth
//	}
//	fmt.Println(source.Metadata()) // 'flac', 48000 Hz, i/q i16, 2s
package flac
