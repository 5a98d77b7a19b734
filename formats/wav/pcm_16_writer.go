// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/utils"
)

// HeaderSize is the length of the canonical PCM WAV header.
const HeaderSize = 44

// header builds the canonical 44-byte PCM 16-bit header.
func header(sampleRate, channels int, dataSize uint32) []byte {
	bitsPerSample := uint16(16)
	blockAlign := uint16(channels) * (bitsPerSample / 8)
	byteRate := uint32(sampleRate) * uint32(blockAlign)

	h := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], 36+dataSize)
	copy(h[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(h[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(h[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], byteRate)
	binary.LittleEndian.PutUint16(h[32:34], blockAlign)
	binary.LittleEndian.PutUint16(h[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}

func checkLayout(sampleRate, channels int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if channels < 1 || channels > 0xFFFF {
		return fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}
	return nil
}

// WriteWAV16 writes interleaved 16-bit PCM samples at sampleRate.
// len(samples) must be a multiple of channels.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if err := checkLayout(sampleRate, channels); err != nil {
		return err
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrSampleCountMismatch, len(samples), channels)
	}

	if _, err := w.Write(header(sampleRate, channels, uint32(len(samples)*2))); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunkSize = 8192 // samples per write
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*2)
	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// Encode serializes b as a canonical 16-bit PCM WAV stream: the 44-byte
// header followed by interleaved little-endian frames in channel order.
// Samples are clamped to [-1, 1] and quantized with utils.Float32ToInt16.
func Encode(w io.Writer, b *audio.Buffer) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}
	channels := b.NumChannels()
	if err := checkLayout(b.Rate, channels); err != nil {
		return err
	}

	frames := b.Frames()
	if _, err := w.Write(header(b.Rate, channels, uint32(frames*channels*2))); err != nil {
		return fmt.Errorf("%w", err)
	}

	const framesPerChunk = 4096
	buf := make([]byte, min(frames, framesPerChunk)*channels*2)

	for start := 0; start < frames; start += framesPerChunk {
		end := min(start+framesPerChunk, frames)
		chunk := buf[:(end-start)*channels*2]

		off := 0
		for f := start; f < end; f++ {
			for c := range channels {
				binary.LittleEndian.PutUint16(chunk[off:off+2], uint16(utils.Float32ToInt16(b.Channels[c][f])))
				off += 2
			}
		}

		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
