// SPDX-License-Identifier: EPL-2.0

// Package audfx renders an ordered chain of audio effects over a decoded
// clip and hands the result back as a 16-bit PCM WAV file.
//
// # Pipeline
//
// An Engine holds one loaded source. Each call to Render builds a fresh
// signal graph from the parameters, then estimates the source tempo and
// renders the graph in parallel. The rendered buffer is encoded as WAV and
// delivered to the Sink together with the original and tempo-adjusted BPM.
//
//	e, _ := audfx.New(sink)
//	_ = e.Load("loop.wav", data)
//
//	chain, _ := graph.NewChain(graph.Filter(800), graph.Delay(250), graph.Reverb(true))
//	_ = e.Render(audfx.NewParams(chain))
//
// # Effects
//
// A chain has four slots processed left to right: pitch, tempo, filter,
// delay, bitcrush, chorus, distortion and reverb. Pitch and tempo are
// applied together by the playback stage; the other kinds become effect
// nodes. See the graph and effects packages.
//
// # Supported Formats
//
// DefaultRegistry recognises the input container from its first bytes:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// # Errors
//
// Undecodable input fails with ErrUnsupportedInput, invalid parameters with
// graph.ErrGraphConstruction and processing failures with render.ErrRender.
// A missing tempo estimate is not an error; Output.BPMKnown is false.
package audfx
