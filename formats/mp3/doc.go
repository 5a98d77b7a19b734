// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always produces
// interleaved stereo 16-bit PCM; mono files come back with both channels
// equal. Samples are converted to float32 in [-1.0, 1.0].
//
// Decoder implements audio.Detector and recognises streams that start with an
// ID3v2 tag or an MPEG audio frame sync.
//
//	source, err := mp3.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(source)
package mp3
