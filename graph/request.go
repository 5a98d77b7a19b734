// SPDX-License-Identifier: EPL-2.0

package graph

import "github.com/ik5/audfx/audio"

// Request is everything needed for one render. It is built fresh for each
// render and never modified afterwards.
type Request struct {
	Source *audio.Buffer
	Chain  Chain

	PitchSemitones float64
	TempoRatio     float64

	// Seed makes reverb impulse responses reproducible. Nil draws fresh
	// noise for every render.
	Seed *int64
}

// NewRequest takes pitch and tempo from the chain's Pitch and Tempo slots,
// defaulting to no shift and normal speed.
func NewRequest(src *audio.Buffer, chain Chain) Request {
	req := Request{
		Source:     src,
		Chain:      chain,
		TempoRatio: 1,
	}
	if e, ok := chain.Find(KindPitch); ok {
		req.PitchSemitones = e.Semitones
	}
	if e, ok := chain.Find(KindTempo); ok {
		req.TempoRatio = TempoRatio(e.TempoPercent)
	}
	return req
}

// WithSeed returns a copy of r that uses seed for reverb noise.
func (r Request) WithSeed(seed int64) Request {
	r.Seed = &seed
	return r
}
