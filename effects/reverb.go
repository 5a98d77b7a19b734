// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-dsp/dsp/conv"
	"github.com/cwbudde/algo-vecmath"
)

const (
	// ReverbSeconds is the impulse response length.
	ReverbSeconds = 2.0
	// ReverbChannels is the impulse response channel count.
	ReverbChannels = 2

	reverbDecay = 3.0
	reverbDry   = 0.5
	reverbWet   = 0.5

	// Impulse response normalization constants.
	gainCalibration           = 0.00125
	gainCalibrationSampleRate = 44100.0
	minPower                  = 0.000125
)

// NewImpulseResponse generates decaying noise,
//
//	ir[c][i] = uniform(-1, 1) * exp(-3 * i/sampleRate)
//
// for seconds*sampleRate samples per channel. A nil rng uses a freshly
// seeded generator.
func NewImpulseResponse(sampleRate, seconds float64, channels int, rng *rand.Rand) ([][]float64, error) {
	if err := checkSampleRate("reverb", sampleRate); err != nil {
		return nil, err
	}
	if !isFinite(seconds) || seconds <= 0 {
		return nil, fmt.Errorf("%w: impulse response length must be > 0: %g", ErrInvalidParameter, seconds)
	}
	if channels < 1 {
		return nil, fmt.Errorf("%w: impulse response channels must be >= 1: %d", ErrInvalidParameter, channels)
	}

	length := int(sampleRate * seconds)
	if length < 1 {
		return nil, fmt.Errorf("%w: impulse response of %g s is empty", ErrInvalidParameter, seconds)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	ir := make([][]float64, channels)
	for c := range ir {
		ir[c] = make([]float64, length)
		for i := range ir[c] {
			t := float64(i) / sampleRate
			ir[c][i] = (rng.Float64()*2 - 1) * math.Exp(-reverbDecay*t)
		}
	}
	return ir, nil
}

// NormalizationScale returns the gain applied to an impulse response so
// that responses of different loudness produce comparable output levels.
func NormalizationScale(ir [][]float64, sampleRate float64) float64 {
	var power float64
	var count int
	for _, ch := range ir {
		for _, v := range ch {
			power += v * v
		}
		count += len(ch)
	}
	if count > 0 {
		power = math.Sqrt(power / float64(count))
	}
	if !isFinite(power) || power < minPower {
		power = minPower
	}

	return gainCalibration / power * gainCalibrationSampleRate / sampleRate
}

// ConvolutionReverb convolves each channel with a normalized impulse
// response and mixes half dry, half wet. Channel c uses response channel
// c modulo the response channel count.
type ConvolutionReverb struct {
	kernels [][]float64
}

// NewConvolutionReverb generates a 2 s stereo impulse response from rng
// and builds a reverb around it.
func NewConvolutionReverb(sampleRate float64, rng *rand.Rand) (*ConvolutionReverb, error) {
	ir, err := NewImpulseResponse(sampleRate, ReverbSeconds, ReverbChannels, rng)
	if err != nil {
		return nil, err
	}
	return NewConvolutionReverbIR(sampleRate, ir)
}

// NewConvolutionReverbIR builds a reverb from an existing impulse response.
// All response channels must have the same non-zero length.
func NewConvolutionReverbIR(sampleRate float64, ir [][]float64) (*ConvolutionReverb, error) {
	if err := checkSampleRate("reverb", sampleRate); err != nil {
		return nil, err
	}
	if len(ir) == 0 || len(ir[0]) == 0 {
		return nil, fmt.Errorf("%w: empty impulse response", ErrInvalidParameter)
	}

	kernelLen := len(ir[0])
	for c, ch := range ir {
		if len(ch) != kernelLen {
			return nil, fmt.Errorf("%w: impulse response channel %d has %d samples, want %d",
				ErrInvalidParameter, c, len(ch), kernelLen)
		}
	}

	scale := NormalizationScale(ir, sampleRate)
	r := &ConvolutionReverb{kernels: make([][]float64, len(ir))}
	for c, ch := range ir {
		r.kernels[c] = make([]float64, kernelLen)
		vecmath.ScaleBlock(r.kernels[c], ch, scale)
	}

	// Fail here rather than on the first render if the kernel cannot be
	// planned.
	if _, err := conv.NewOverlapAdd(r.kernels[0], 0); err != nil {
		return nil, fmt.Errorf("%w: reverb: %w", ErrInvalidParameter, err)
	}

	return r, nil
}

func (r *ConvolutionReverb) Name() string { return "reverb" }

// KernelLen returns the impulse response length in samples.
func (r *ConvolutionReverb) KernelLen() int { return len(r.kernels[0]) }

func (r *ConvolutionReverb) Process(dst, src []float64, channel int) error {
	if err := checkBuffers(dst, src, channel); err != nil {
		return err
	}

	wet, err := r.convolve(src, r.kernels[channel%len(r.kernels)])
	if err != nil {
		return err
	}

	mixInto(dst, src, wet, reverbDry, reverbWet)
	return nil
}

// convolve returns the first len(src) samples of src convolved with kernel.
// The tail past the input is dropped.
func (r *ConvolutionReverb) convolve(src, kernel []float64) ([]float64, error) {
	if len(src) == 0 {
		return []float64{}, nil
	}

	// OverlapAdd keeps scratch buffers, so channels rendered in parallel
	// each get their own.
	oa, err := conv.NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, fmt.Errorf("reverb: %w", err)
	}
	full, err := oa.Process(src)
	if err != nil {
		return nil, fmt.Errorf("reverb: %w", err)
	}

	return full[:len(src)], nil
}
