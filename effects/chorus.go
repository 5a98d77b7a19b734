// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"

	"github.com/ik5/audfx/utils"
)

const (
	chorusBaseDelay = 0.030 // seconds
	chorusDepth     = 0.002 // seconds
	chorusRate      = 0.1   // Hz
)

// Chorus mixes the signal with a copy delayed by
//
//	d(t) = 30ms + 2ms*sin(2*pi*0.1*t)
//
// read with cubic interpolation. Output is (1-mix)*dry + mix*wet.
type Chorus struct {
	sampleRate float64
	mix        float64
}

// NewChorus builds a chorus with a wet proportion in (0, 1].
func NewChorus(sampleRate, mix float64) (*Chorus, error) {
	if err := checkSampleRate("chorus", sampleRate); err != nil {
		return nil, err
	}
	if !isFinite(mix) || mix <= 0 || mix > 1 {
		return nil, fmt.Errorf("%w: chorus mix must be in (0, 1]: %g", ErrInvalidParameter, mix)
	}

	return &Chorus{sampleRate: sampleRate, mix: mix}, nil
}

func (c *Chorus) Name() string { return "chorus" }

// Mix returns the wet proportion.
func (c *Chorus) Mix() float64 { return c.mix }

// DelayAt returns the modulated delay in seconds at time t.
func (c *Chorus) DelayAt(t float64) float64 {
	return chorusBaseDelay + chorusDepth*math.Sin(2*math.Pi*chorusRate*t)
}

func (c *Chorus) Process(dst, src []float64, channel int) error {
	if err := checkBuffers(dst, src, channel); err != nil {
		return err
	}

	wet := make([]float64, len(src))
	for n := range src {
		t := float64(n) / c.sampleRate
		wet[n] = utils.SampleAt(src, float64(n)-c.DelayAt(t)*c.sampleRate)
	}

	mixInto(dst, src, wet, 1-c.mix, c.mix)
	return nil
}
