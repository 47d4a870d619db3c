// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	// ErrUnknownFormat is returned by ParseFormat and Encode for image
	// formats without an encoder.
	ErrUnknownFormat = errors.New("render: unknown image format")
)
