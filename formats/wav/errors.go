// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported     = errors.New("only integer PCM WAV is supported")
	ErrInvalidChannelCount  = errors.New("WAV channel count must be between 1 and 65535")
	ErrInvalidSampleRate    = errors.New("WAV sample rate must be positive")
	ErrSampleCountMismatch  = errors.New("sample count is not a multiple of the channel count")
)
