// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding uses github.com/go-audio/wav, so files with extra chunks (LIST,
// fact, ...) before the sample data are accepted. Encoding always produces
// the canonical 44-byte header followed by 16-bit PCM.
//
// # Supported Formats
//
// Decoding:
//   - Integer PCM at 8, 16, 24 and 32 bits
//   - Any channel count and sample rate
//
// Encoding:
//   - PCM 16-bit, any channel count
//
// # Decoding WAV Files
//
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadAll(source)
//
// Samples come back as float32 in [-1.0, 1.0]. The conversion is the exact
// inverse of the encoder's, so an encode/decode round trip is off by at most
// half a quantization step.
//
// # Writing WAV Files
//
// Encode writes a float Buffer, clamping each sample to [-1, 1] and scaling
// negative values by 32768 and the rest by 32767:
//
//	err := wav.Encode(file, buf)
//
// WriteWAV16 writes samples that are already quantized:
//
//	err := wav.WriteWAV16(file, 8000, 1, []int16{100, -100})
package wav
