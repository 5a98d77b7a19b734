// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files with 8, 16,
// 24 or 32-bit signed PCM samples. Readers that cannot seek are buffered in
// memory first, since go-audio needs to walk the chunk list.
//
// Decoder implements audio.Detector and recognises FORM containers of type
// AIFF and AIFC.
//
//	source, err := aiff.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(source)
package aiff
