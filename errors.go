// SPDX-License-Identifier: EPL-2.0

package audfx

import "errors"

var (
	ErrUnsupportedInput = errors.New("unsupported or undecodable audio input")
	ErrNoSource         = errors.New("no audio source loaded")
	ErrSuperseded       = errors.New("render superseded by a newer result")
	ErrInvalidOption    = errors.New("invalid engine option")
)
