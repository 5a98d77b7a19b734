// SPDX-License-Identifier: EPL-2.0

// Package render executes a built graph against the whole source buffer.
//
// Each channel is resampled and run through the node chain independently,
// so channels are rendered concurrently. The output keeps the source's
// channel count and sample rate and has exactly Graph.Frames() frames.
// Samples are not clamped here; the encoder clamps when quantizing.
package render
