// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float32 natively, so samples need no scaling. The frame
// count comes from the last Ogg page and is only available for seekable
// input.
package vorbis
