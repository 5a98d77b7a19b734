// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample containers and low-level primitives the
// renderer is built on.
//
// This package contains:
//   - Source interface for streaming decoded audio
//   - Buffer, a whole clip held in memory one slice per channel
//   - Registry for decoder registration and container sniffing
//   - Resampler for sampler-style playback at a rate multiplier
//   - MonoMixer for channel mixing
//
// # Source Interface
//
// Decoders return a Source, which is drained into a Buffer with ReadAll:
//
//	src, _ := wav.Decoder{}.Decode(reader)
//	buf, err := audio.ReadAll(src)
//
// # Detecting Formats
//
// Decoders that implement Detector can be picked from the first bytes of a
// stream:
//
//	name, dec, err := registry.Detect(data[:audio.HeaderSize])
//
// # Playback Resampling
//
// The Resampler reads a Buffer at a rate multiplier with cubic interpolation
// and produces a fixed number of frames. A rate of 1 copies the input:
//
//	r, _ := audio.NewResampler(1.25, frames)
//	out := r.Resample(buf)
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(audio.NewBufferSource(buf))
package audio
