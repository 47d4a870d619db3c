// SPDX-License-Identifier: EPL-2.0

package colormap

import "errors"

var ErrUnknownScheme = errors.New("unknown color scheme")
