// SPDX-License-Identifier: EPL-2.0

package tempo

import (
	"fmt"
	"math"
)

const (
	// ChunkSeconds is the width of one energy window.
	ChunkSeconds = 0.1
	// MinBPM and MaxBPM bound every estimate.
	MinBPM = 60
	MaxBPM = 200

	peakThreshold = 0.5
)

// Energies splits samples into windows of round(rate/10) samples and returns
// the sum of absolute amplitudes of each. The last window may be partial.
func Energies(samples []float32, sampleRate int) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrIndeterminate, sampleRate)
	}
	chunk := int(math.Round(float64(sampleRate) * ChunkSeconds))
	if chunk <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d too low", ErrIndeterminate, sampleRate)
	}

	energies := make([]float64, 0, len(samples)/chunk+1)
	for i := 0; i < len(samples); i += chunk {
		var e float64
		for _, s := range samples[i:min(i+chunk, len(samples))] {
			e += math.Abs(float64(s))
		}
		energies = append(energies, e)
	}

	return energies, nil
}

// Peaks returns the indexes of interior windows that are strictly louder
// than both neighbours and than half of the loudest window.
func Peaks(energies []float64) []int {
	var loudest float64
	for _, e := range energies {
		loudest = max(loudest, e)
	}
	threshold := loudest * peakThreshold

	var peaks []int
	for i := 1; i < len(energies)-1; i++ {
		e := energies[i]
		if e > threshold && e > energies[i-1] && e > energies[i+1] {
			peaks = append(peaks, i)
		}
	}

	return peaks
}

// EstimateBPM estimates the tempo of a mono signal from the spacing of its
// energy peaks. The result is clamped to [MinBPM, MaxBPM]. With fewer than
// two peaks it returns ErrIndeterminate.
func EstimateBPM(samples []float32, sampleRate int) (int, error) {
	energies, err := Energies(samples, sampleRate)
	if err != nil {
		return 0, err
	}

	peaks := Peaks(energies)
	if len(peaks) < 2 {
		return 0, fmt.Errorf("%w: %d peaks in %d windows", ErrIndeterminate, len(peaks), len(energies))
	}

	var total float64
	for i := 1; i < len(peaks); i++ {
		total += float64(peaks[i]-peaks[i-1]) * ChunkSeconds
	}
	average := total / float64(len(peaks)-1)

	bpm := int(math.Round(60 / average))
	return min(max(bpm, MinBPM), MaxBPM), nil
}

// Adjusted scales an estimated tempo by a playback rate ratio, rounding to
// the nearest whole BPM.
func Adjusted(bpm int, ratio float64) int {
	return int(math.Round(float64(bpm) * ratio))
}
