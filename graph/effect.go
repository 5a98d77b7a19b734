// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"
	"math"
)

// Kind tags the effect held by a slot.
type Kind string

const (
	KindPitch      Kind = "pitch"
	KindTempo      Kind = "tempo"
	KindFilter     Kind = "filter"
	KindDelay      Kind = "delay"
	KindBitcrush   Kind = "bitcrush"
	KindChorus     Kind = "chorus"
	KindDistortion Kind = "distortion"
	KindReverb     Kind = "reverb"
)

// Kinds lists every effect kind in menu order.
func Kinds() []Kind {
	return []Kind{
		KindPitch, KindTempo, KindFilter, KindDelay,
		KindBitcrush, KindChorus, KindDistortion, KindReverb,
	}
}

// Parameter ranges accepted at the API boundary.
const (
	MinSemitones = -12
	MaxSemitones = 12

	MinTempoPercent  = -50
	MaxTempoPercent  = 100
	TempoPercentStep = 5

	MinCutoffHz = 20
	MaxCutoffHz = 20000

	MinDelayMs  = 0
	MaxDelayMs  = 1000
	DelayMsStep = 10

	MinBits = 1
	MaxBits = 16

	MinChorusMix = 0
	MaxChorusMix = 100
)

// Effect is one slot's effect and its parameters. Only the fields that
// belong to Kind are meaningful.
type Effect struct {
	Kind Kind

	Semitones    float64 // pitch
	TempoPercent float64 // tempo
	CutoffHz     float64 // filter
	DelayMs      float64 // delay
	Bits         int     // bitcrush
	ChorusMix    float64 // chorus, percent
	Enabled      bool    // distortion, reverb
}

func snap(v, step float64) float64 {
	return math.Round(v/step) * step
}

// Pitch shifts by whole semitones.
func Pitch(semitones float64) Effect {
	return Effect{Kind: KindPitch, Semitones: snap(semitones, 1)}
}

// Tempo changes the playback speed by a percentage in steps of 5.
func Tempo(percent float64) Effect {
	return Effect{Kind: KindTempo, TempoPercent: snap(percent, TempoPercentStep)}
}

// Filter sets the low-pass cutoff in Hz.
func Filter(cutoffHz float64) Effect {
	return Effect{Kind: KindFilter, CutoffHz: cutoffHz}
}

// Delay sets the echo time in milliseconds, in steps of 10.
func Delay(ms float64) Effect {
	return Effect{Kind: KindDelay, DelayMs: snap(ms, DelayMsStep)}
}

// Bitcrush sets the quantization depth in bits.
func Bitcrush(bits int) Effect {
	return Effect{Kind: KindBitcrush, Bits: bits}
}

// Chorus sets the wet mix in percent.
func Chorus(mixPercent float64) Effect {
	return Effect{Kind: KindChorus, ChorusMix: mixPercent}
}

// Distortion toggles the waveshaper.
func Distortion(enabled bool) Effect {
	return Effect{Kind: KindDistortion, Enabled: enabled}
}

// Reverb toggles the convolution reverb.
func Reverb(enabled bool) Effect {
	return Effect{Kind: KindReverb, Enabled: enabled}
}

// TempoRatio converts a tempo percentage to a playback rate multiplier.
func TempoRatio(percent float64) float64 {
	return 1 + percent/100
}

// TempoPercent is the inverse of TempoRatio, rounded to a whole percent.
func TempoPercent(ratio float64) float64 {
	return math.Round((ratio - 1) * 100)
}

// Validate checks the parameters that belong to e.Kind against the API
// ranges. Unknown kinds are valid and ignored by the builder.
func (e Effect) Validate() error {
	switch e.Kind {
	case KindPitch:
		return checkRange("semitones", e.Semitones, MinSemitones, MaxSemitones)
	case KindTempo:
		return checkRange("tempo percent", e.TempoPercent, MinTempoPercent, MaxTempoPercent)
	case KindFilter:
		return checkRange("cutoff", e.CutoffHz, MinCutoffHz, MaxCutoffHz)
	case KindDelay:
		return checkRange("delay ms", e.DelayMs, MinDelayMs, MaxDelayMs)
	case KindBitcrush:
		if e.Bits < MinBits || e.Bits > MaxBits {
			return fmt.Errorf("%w: bits must be in [%d, %d]: %d", ErrInvalidParameter, MinBits, MaxBits, e.Bits)
		}
	case KindChorus:
		return checkRange("chorus mix", e.ChorusMix, MinChorusMix, MaxChorusMix)
	}
	return nil
}

func checkRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < lo || v > hi {
		return fmt.Errorf("%w: %s must be in [%g, %g]: %g", ErrInvalidParameter, name, lo, hi, v)
	}
	return nil
}
