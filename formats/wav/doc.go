// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE files with github.com/go-audio/wav.
//
// Decoder accepts integer PCM at 8, 16, 24 and 32 bits with any channel
// count; samples are scaled to [-1, 1]. 8 bit data is unsigned and centered
// on 128. IEEE float WAV files are rejected with ErrUnsupportedEncoding.
//
//	f, _ := os.Open("capture.iqw")
//	src, err := wav.Decoder{}.Decode(f)
//	fmt.Println(src.Metadata()) // 'pcm_s16le', 48000 Hz, i/q i16, 2:05.75m
//
// WriteWAV16 produces 16 bit PCM output, used for generated test signals.
package wav
