// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format selects an image encoder.
type Format int

const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
)

var formatNames = [...]string{
	FormatPNG:  "png",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// Ext is the file extension without the dot.
func (f Format) Ext() string { return f.String() }

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatPNG, FormatBMP, FormatTIFF}
}

// ParseFormat is case insensitive and accepts "tif" for TIFF. The empty
// string selects PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Encode writes img to w as f.
func Encode(w io.Writer, img image.Image, f Format) error {
	if m, ok := img.(*Image); ok {
		img = m.RGBA()
	}

	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	if err != nil {
		return fmt.Errorf("render: encode %s: %w", f, err)
	}
	return nil
}
