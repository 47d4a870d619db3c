// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrInvalidDynamicRange = errors.New("dynamic range must not be negative")
	ErrInvalidWorkers      = errors.New("workers must be at least 1")
)
