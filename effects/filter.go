// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"
)

// LowPass is a single-pole low-pass filter:
//
//	y[n] = y[n-1] + a*(x[n] - y[n-1]),  a = 1 - exp(-2*pi*fc/fs)
type LowPass struct {
	cutoff float64
	coeff  float64
}

func NewLowPass(sampleRate, cutoffHz float64) (*LowPass, error) {
	if err := checkSampleRate("low-pass", sampleRate); err != nil {
		return nil, err
	}
	if !isFinite(cutoffHz) || cutoffHz <= 0 {
		return nil, fmt.Errorf("%w: low-pass cutoff must be > 0 and finite: %g", ErrInvalidParameter, cutoffHz)
	}

	return &LowPass{
		cutoff: cutoffHz,
		coeff:  1 - math.Exp(-2*math.Pi*cutoffHz/sampleRate),
	}, nil
}

func (f *LowPass) Name() string { return "filter" }

// Cutoff returns the cutoff frequency in Hz.
func (f *LowPass) Cutoff() float64 { return f.cutoff }

// Coefficient returns the smoothing coefficient a.
func (f *LowPass) Coefficient() float64 { return f.coeff }

func (f *LowPass) Process(dst, src []float64, channel int) error {
	if err := checkBuffers(dst, src, channel); err != nil {
		return err
	}

	var y float64
	for i, x := range src {
		y += f.coeff * (x - y)
		dst[i] = y
	}
	return nil
}
