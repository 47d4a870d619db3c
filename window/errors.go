// SPDX-License-Identifier: EPL-2.0

package window

import (
	"errors"
	"fmt"
)

var ErrUnknownType = errors.New("unknown window type")

// UnknownTypeError carries the name that failed to parse.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: %q (want hann or hamming)", ErrUnknownType, e.Name)
}

func (e *UnknownTypeError) Unwrap() error { return ErrUnknownType }
