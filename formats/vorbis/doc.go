// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// Decoding is done by github.com/jfreymuth/oggvorbis, which yields
// interleaved float32 samples at the stream's native channel count and
// sample rate.
//
// Decoder implements audio.Detector and recognises the "OggS" page capture
// pattern.
//
//	source, err := vorbis.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(source)
package vorbis
