// SPDX-License-Identifier: EPL-2.0

// Package effects implements the per-channel effect nodes applied by the
// renderer after playback resampling.
//
// Every node is a pure transform of one whole channel: Process reads src and
// writes exactly len(src) samples into dst, keeping all state local to the
// call. A single node may therefore process several channels concurrently.
//
// Available nodes:
//   - LowPass: single-pole low-pass filter.
//   - FeedbackDelay: delay line with 0.4 feedback, 0.6 dry and 0.4 wet.
//   - Bitcrusher: amplitude quantization to 2^-bits steps.
//   - Chorus: slowly modulated 30 ms delay mixed with the dry signal.
//   - WaveShaper: distortion curve applied with 4x oversampling.
//   - ConvolutionReverb: exponentially decaying noise impulse response
//     applied by FFT convolution and mixed half dry, half wet.
//
// Tails that would extend past the end of the channel are truncated.
package effects
