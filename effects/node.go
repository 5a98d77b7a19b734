// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Node transforms one channel of audio.
type Node interface {
	// Name identifies the node kind in logs and errors.
	Name() string
	// Process writes the transformed src into dst. Both slices have the
	// same length. channel is the zero-based channel index of src.
	Process(dst, src []float64, channel int) error
}

func checkBuffers(dst, src []float64, channel int) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}
	if channel < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannel, channel)
	}
	return nil
}

func checkSampleRate(name string, sampleRate float64) error {
	if !isFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("%w: %s sample rate must be > 0 and finite: %g", ErrInvalidParameter, name, sampleRate)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundHalfUp rounds to the nearest integer, halves toward +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// mixInto writes dryGain*dry + wetGain*wet into dst. wet is used as scratch.
func mixInto(dst, dry, wet []float64, dryGain, wetGain float64) {
	vecmath.ScaleBlock(dst, dry, dryGain)
	vecmath.ScaleBlock(wet, wet, wetGain)
	vecmath.AddBlockInPlace(dst, wet)
}
