// SPDX-License-Identifier: EPL-2.0

package effects

import "errors"

var (
	ErrInvalidParameter = errors.New("invalid effect parameter")
	ErrLengthMismatch   = errors.New("destination and source lengths differ")
	ErrInvalidChannel   = errors.New("invalid channel index")
)
