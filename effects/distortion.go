// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"
	"github.com/ik5/audfx/utils"
)

const (
	// DefaultDistortionAmount is the curve amount used by the renderer.
	DefaultDistortionAmount = 50.0
	// CurveLength is the number of points in the shaping curve.
	CurveLength = 44100

	oversampleFactor = 4
	antiAliasTaps    = 63
	antiAliasCutoff  = 0.45 / oversampleFactor // cycles per oversampled sample
)

// DistortionCurve samples
//
//	f(x) = ((3+k)*x*20*deg) / (pi + k*|x|),  deg = pi/180
//
// at x_i = 2i/n - 1 for i in [0, n).
func DistortionCurve(amount float64, n int) []float64 {
	const deg = math.Pi / 180

	curve := make([]float64, n)
	for i := range curve {
		x := float64(i)*2/float64(n) - 1
		curve[i] = ((3 + amount) * x * 20 * deg) / (math.Pi + amount*math.Abs(x))
	}
	return curve
}

// WaveShaper maps each sample through a distortion curve. The signal is
// upsampled 4x before shaping and low-pass filtered before decimation to
// keep the generated harmonics from folding back.
type WaveShaper struct {
	amount float64
	curve  []float64
	fir    []float64
}

func NewWaveShaper(sampleRate, amount float64) (*WaveShaper, error) {
	if err := checkSampleRate("distortion", sampleRate); err != nil {
		return nil, err
	}
	if !isFinite(amount) || amount < 0 {
		return nil, fmt.Errorf("%w: distortion amount must be >= 0 and finite: %g", ErrInvalidParameter, amount)
	}

	return &WaveShaper{
		amount: amount,
		curve:  DistortionCurve(amount, CurveLength),
		fir:    lowPassFIR(antiAliasTaps, antiAliasCutoff),
	}, nil
}

func (w *WaveShaper) Name() string { return "distortion" }

// Shape looks x up on the curve with linear interpolation. Inputs outside
// [-1, 1] take the end values.
func (w *WaveShaper) Shape(x float64) float64 {
	n := len(w.curve)
	if x <= -1 || math.IsNaN(x) {
		return w.curve[0]
	}
	if x >= 1 {
		return w.curve[n-1]
	}

	v := (x + 1) * float64(n-1) / 2
	k := int(v)
	if k >= n-1 {
		return w.curve[n-1]
	}
	f := v - float64(k)
	return w.curve[k] + (w.curve[k+1]-w.curve[k])*f
}

func (w *WaveShaper) Process(dst, src []float64, channel int) error {
	if err := checkBuffers(dst, src, channel); err != nil {
		return err
	}

	up := make([]float64, len(src)*oversampleFactor)
	for i := range up {
		up[i] = w.Shape(utils.SampleAt(src, float64(i)/oversampleFactor))
	}

	center := len(w.fir) / 2
	for k := range dst {
		var acc float64
		pos := k*oversampleFactor - center
		for j, h := range w.fir {
			if idx := pos + j; idx >= 0 && idx < len(up) {
				acc += h * up[idx]
			}
		}
		dst[k] = acc
	}
	return nil
}

// lowPassFIR designs a Blackman-windowed sinc with unity DC gain.
func lowPassFIR(taps int, cutoff float64) []float64 {
	h := make([]float64, taps)
	m := float64(taps - 1)

	for i := range h {
		x := float64(i) - m/2
		if x == 0 {
			h[i] = 2 * cutoff
		} else {
			h[i] = math.Sin(2*math.Pi*cutoff*x) / (math.Pi * x)
		}
	}
	window.Apply(window.TypeBlackman, h)

	var sum float64
	for _, v := range h {
		sum += v
	}
	vecmath.ScaleBlock(h, h, 1/sum)

	return h
}
