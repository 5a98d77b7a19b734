// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrEmptyInput     = errors.New("empty audio input")
	ErrUnknownFormat  = errors.New("unknown audio format")
	ErrNoSamples      = errors.New("audio stream contains no samples")
	ErrInvalidBuffer  = errors.New("invalid sample buffer")
)
