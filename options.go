// SPDX-License-Identifier: EPL-2.0

package audfx

import (
	"fmt"

	"github.com/ik5/audfx/audio"
	"github.com/sirupsen/logrus"
)

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets the logger. The default is logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) error {
		if log == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidOption)
		}
		e.log = log
		return nil
	}
}

// WithRegistry replaces the decoder registry used by Load.
func WithRegistry(reg *audio.Registry) Option {
	return func(e *Engine) error {
		if reg == nil {
			return fmt.Errorf("%w: nil registry", ErrInvalidOption)
		}
		e.registry = reg
		return nil
	}
}

// WithTempoMixdown estimates tempo from all channels averaged together
// instead of the first channel only.
func WithTempoMixdown(enabled bool) Option {
	return func(e *Engine) error {
		e.mixdown = enabled
		return nil
	}
}

// WithReverbSeed makes reverb impulse responses reproducible.
func WithReverbSeed(seed int64) Option {
	return func(e *Engine) error {
		e.seed = &seed
		return nil
	}
}
