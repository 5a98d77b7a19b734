// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"math/rand"

	"github.com/ik5/audfx/audio"
)

// Waveform returns the value of frame i on channel ch.
type Waveform func(i int, ch int) float32

// NewBuffer builds a buffer from a waveform function.
func NewBuffer(sampleRate, channels, frames int, waveform Waveform) *audio.Buffer {
	b := audio.NewBuffer(sampleRate, channels, frames)
	for ch := range b.Channels {
		for i := range b.Channels[ch] {
			b.Channels[ch][i] = waveform(i, ch)
		}
	}
	return b
}

// Sine is a sine waveform of the given amplitude and frequency.
func Sine(sampleRate int, frequency, amplitude float64) Waveform {
	return func(i int, ch int) float32 {
		t := float64(i) / float64(sampleRate)
		return float32(amplitude * math.Sin(2*math.Pi*frequency*t))
	}
}

// NewSineBuffer generates a full-scale sine wave on every channel.
func NewSineBuffer(sampleRate, channels, frames int, frequency float64) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, Sine(sampleRate, frequency, 1))
}

// NewConstantBuffer fills every sample with value.
func NewConstantBuffer(sampleRate, channels, frames int, value float32) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewNoiseBuffer generates reproducible uniform noise in [-amplitude, amplitude].
func NewNoiseBuffer(sampleRate, channels, frames int, amplitude float64, seed int64) *audio.Buffer {
	rng := rand.New(rand.NewSource(seed))
	return NewBuffer(sampleRate, channels, frames, func(int, int) float32 {
		return float32(amplitude * (rng.Float64()*2 - 1))
	})
}

// NewBurstBuffer is silence of the given length with a full-scale 1 kHz
// burst of burstSeconds starting at each of the given times.
func NewBurstBuffer(sampleRate, frames int, burstSeconds float64, starts ...float64) *audio.Buffer {
	b := audio.NewBuffer(sampleRate, 1, frames)
	width := int(math.Round(burstSeconds * float64(sampleRate)))
	tone := Sine(sampleRate, 1000, 1)

	for _, start := range starts {
		first := int(math.Round(start * float64(sampleRate)))
		for i := first; i < first+width && i < frames; i++ {
			if i >= 0 {
				b.Channels[0][i] = tone(i-first, 0)
			}
		}
	}
	return b
}

// MaxAbsDiff returns the largest per-sample difference between two buffers
// of the same shape, or +Inf when the shapes differ.
func MaxAbsDiff(a, b *audio.Buffer) float64 {
	if a.NumChannels() != b.NumChannels() || a.Frames() != b.Frames() {
		return math.Inf(1)
	}

	var worst float64
	for ch := range a.Channels {
		for i := range a.Channels[ch] {
			worst = max(worst, math.Abs(float64(a.Channels[ch][i])-float64(b.Channels[ch][i])))
		}
	}
	return worst
}
