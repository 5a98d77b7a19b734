// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"

	dspfx "github.com/cwbudde/algo-dsp/dsp/effects"
)

const (
	// MinDelaySeconds and MaxDelaySeconds bound the delay line length.
	MinDelaySeconds = 0.001
	MaxDelaySeconds = 2.0

	delayFeedback = 0.4
	delayWet      = 0.4
)

// FeedbackDelay is a delay line whose output is fed back into its input:
//
//	line[n] = x[n] + 0.4*line[n-D],  y[n] = 0.6*x[n] + 0.4*line[n-D]
//
// The echo tail stops at the end of the channel.
type FeedbackDelay struct {
	sampleRate float64
	seconds    float64
	samples    int
}

// NewFeedbackDelay builds a delay of the given length, 0.001 <= seconds <= 2.
func NewFeedbackDelay(sampleRate, seconds float64) (*FeedbackDelay, error) {
	if err := checkSampleRate("delay", sampleRate); err != nil {
		return nil, err
	}
	if !isFinite(seconds) || seconds < MinDelaySeconds || seconds > MaxDelaySeconds {
		return nil, fmt.Errorf("%w: delay time must be in [%g, %g]: %g",
			ErrInvalidParameter, MinDelaySeconds, MaxDelaySeconds, seconds)
	}

	samples := int(math.Round(seconds * sampleRate))
	if samples < 1 {
		return nil, fmt.Errorf("%w: delay time %g s is shorter than one sample", ErrInvalidParameter, seconds)
	}

	d := &FeedbackDelay{sampleRate: sampleRate, seconds: seconds, samples: samples}
	if _, err := d.line(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *FeedbackDelay) Name() string { return "delay" }

// Samples returns the delay length in samples.
func (d *FeedbackDelay) Samples() int { return d.samples }

// line returns a fresh delay line. Lines carry state, so every channel
// gets its own.
func (d *FeedbackDelay) line() (*dspfx.Delay, error) {
	line, err := dspfx.NewDelay(d.sampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	if err := line.SetTime(d.seconds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	if err := line.SetFeedback(delayFeedback); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	if err := line.SetMix(delayWet); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	return line, nil
}

func (d *FeedbackDelay) Process(dst, src []float64, channel int) error {
	if err := checkBuffers(dst, src, channel); err != nil {
		return err
	}

	line, err := d.line()
	if err != nil {
		return err
	}

	copy(dst, src)
	line.ProcessInPlace(dst)
	return nil
}
