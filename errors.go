// SPDX-License-Identifier: EPL-2.0

package specvis

import "errors"

var ErrUnknownChannelMode = errors.New("unknown channel mode")
