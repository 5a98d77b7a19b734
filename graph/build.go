// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/effects"
)

// Graph is a built, ready to run signal chain.
type Graph struct {
	Source   *audio.Buffer
	Playback *audio.Resampler
	Nodes    []effects.Node
}

// Frames returns the output length.
func (g *Graph) Frames() int { return g.Playback.Frames }

// PlaybackRate combines a tempo ratio with a pitch offset in semitones.
func PlaybackRate(tempoRatio, semitones float64) float64 {
	return tempoRatio * math.Pow(2, semitones/12)
}

// OutputFrames is the rendered length for a source of n frames.
func OutputFrames(n int, tempoRatio float64) int {
	return int(math.Floor(float64(n) / tempoRatio))
}

// Build validates req and assembles its graph. The tempo ratio must lie in
// [0.5, 2] and the pitch offset in [-12, 12] semitones. Pitch and tempo slots,
// empty slots, unknown kinds, a zero delay, a zero chorus mix and disabled
// distortion or reverb add no node. Every failure wraps
// ErrGraphConstruction.
func Build(req Request) (*Graph, error) {
	if err := req.Source.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGraphConstruction, err)
	}
	if err := checkRange("tempo ratio", req.TempoRatio,
		TempoRatio(MinTempoPercent), TempoRatio(MaxTempoPercent)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGraphConstruction, err)
	}
	if err := checkRange("pitch semitones", req.PitchSemitones, MinSemitones, MaxSemitones); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGraphConstruction, err)
	}

	frames := OutputFrames(req.Source.Frames(), req.TempoRatio)
	if frames < 1 {
		return nil, fmt.Errorf("%w: %d source frames at tempo ratio %g render nothing",
			ErrGraphConstruction, req.Source.Frames(), req.TempoRatio)
	}

	playback, err := audio.NewResampler(PlaybackRate(req.TempoRatio, req.PitchSemitones), frames)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGraphConstruction, err)
	}

	g := &Graph{Source: req.Source, Playback: playback}

	var rng *rand.Rand
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	}

	rate := float64(req.Source.Rate)
	for i, slot := range req.Chain {
		if slot == nil {
			continue
		}

		node, err := newNode(*slot, rate, rng)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %d (%s): %w", ErrGraphConstruction, i, slot.Kind, err)
		}
		if node != nil {
			g.Nodes = append(g.Nodes, node)
		}
	}

	return g, nil
}

// newNode returns nil for slots that contribute no processing.
func newNode(e Effect, rate float64, rng *rand.Rand) (effects.Node, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	switch e.Kind {
	case KindFilter:
		return effects.NewLowPass(rate, e.CutoffHz)
	case KindDelay:
		if e.DelayMs == 0 {
			return nil, nil
		}
		return effects.NewFeedbackDelay(rate, e.DelayMs/1000)
	case KindBitcrush:
		return effects.NewBitcrusher(e.Bits)
	case KindChorus:
		if e.ChorusMix == 0 {
			return nil, nil
		}
		return effects.NewChorus(rate, e.ChorusMix/100)
	case KindDistortion:
		if !e.Enabled {
			return nil, nil
		}
		return effects.NewWaveShaper(rate, effects.DefaultDistortionAmount)
	case KindReverb:
		if !e.Enabled {
			return nil, nil
		}
		return effects.NewConvolutionReverb(rate, rng)
	}

	return nil, nil
}
