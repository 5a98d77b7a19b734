// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/ik5/audfx/audio"
)

// Example_resampler plays a clip back at double speed.
func Example_resampler() {
	buf := &audio.Buffer{Rate: 8000, Channels: [][]float32{{0, 0.1, 0.2, 0.3, 0.4, 0.5}}}

	r, err := audio.NewResampler(2, buf.Frames()/2)
	if err != nil {
		fmt.Println(err)
		return
	}
	out := r.Resample(buf)

	fmt.Println(out.Frames(), out.Channels[0])
	// Output: 3 [0 0.2 0.4]
}

// Example_monoMixer folds a stereo buffer to mono.
func Example_monoMixer() {
	buf := &audio.Buffer{Rate: 8000, Channels: [][]float32{{1, 0.5}, {0, 0.5}}}

	mono, err := audio.MixDown(buf)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(mono)
	// Output: [0.5 0.5]
}
