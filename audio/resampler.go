// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/audfx/utils"
)

// Resampler plays a Buffer back at a rate multiplier, the way a sampler
// voice does: output frame i reads the source at position i*Rate using cubic
// interpolation. Rate > 1 plays faster and higher, Rate < 1 slower and lower.
// The output length is fixed by Frames, independent of Rate; reads past the
// end of the source produce silence.
type Resampler struct {
	Rate   float64
	Frames int
}

// NewResampler validates the playback parameters.
func NewResampler(rate float64, frames int) (*Resampler, error) {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil, fmt.Errorf("playback rate must be > 0 and finite: %f", rate)
	}
	if frames < 0 {
		return nil, fmt.Errorf("playback frames must be >= 0: %d", frames)
	}

	return &Resampler{Rate: rate, Frames: frames}, nil
}

// ResampleChannel renders one channel.
func (r *Resampler) ResampleChannel(src []float64) []float64 {
	out := make([]float64, r.Frames)

	if r.Rate == 1 {
		copy(out, src)
		return out
	}

	for i := range out {
		out[i] = utils.SampleAt(src, float64(i)*r.Rate)
	}

	return out
}

// Resample renders every channel of b.
func (r *Resampler) Resample(b *Buffer) *Buffer {
	out := &Buffer{
		Channels: make([][]float32, len(b.Channels)),
		Rate:     b.Rate,
	}

	for c := range b.Channels {
		samples := r.ResampleChannel(b.Float64(c))
		ch := make([]float32, len(samples))
		for i, s := range samples {
			ch[i] = float32(s)
		}
		out.Channels[c] = ch
	}

	return out
}
