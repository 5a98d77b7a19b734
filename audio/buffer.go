// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math"
)

// Buffer is a whole decoded or rendered clip held in memory, one slice per
// channel. Buffers are not modified after they are produced; stages that
// transform audio allocate a new Buffer.
type Buffer struct {
	Channels [][]float32
	Rate     int
}

// NewBuffer allocates a silent buffer.
func NewBuffer(rate, channels, frames int) *Buffer {
	b := &Buffer{
		Channels: make([][]float32, channels),
		Rate:     rate,
	}
	for c := range b.Channels {
		b.Channels[c] = make([]float32, frames)
	}

	return b
}

// Frames returns the per-channel sample count.
func (b *Buffer) Frames() int {
	if b == nil || len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int {
	if b == nil {
		return 0
	}
	return len(b.Channels)
}

// Duration returns the clip length in seconds.
func (b *Buffer) Duration() float64 {
	if b == nil || b.Rate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.Rate)
}

// Validate checks the buffer invariants: a positive rate, at least one
// channel and equal channel lengths.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if b.Rate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidBuffer, b.Rate)
	}
	if len(b.Channels) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidBuffer)
	}

	frames := len(b.Channels[0])
	for c, ch := range b.Channels {
		if len(ch) != frames {
			return fmt.Errorf("%w: channel %d has %d samples, want %d", ErrInvalidBuffer, c, len(ch), frames)
		}
	}

	return nil
}

// Fingerprint identifies the buffer content. Two buffers with the same rate,
// channel layout and sample bits share a fingerprint.
func (b *Buffer) Fingerprint() string {
	h := sha256.New()

	var scratch [8]byte
	binary.LittleEndian.PutUint32(scratch[:4], uint32(b.Rate))
	binary.LittleEndian.PutUint32(scratch[4:], uint32(len(b.Channels)))
	h.Write(scratch[:])

	buf := make([]byte, 4*4096)
	for _, ch := range b.Channels {
		binary.LittleEndian.PutUint32(scratch[:4], uint32(len(ch)))
		h.Write(scratch[:4])

		for i := 0; i < len(ch); i += 4096 {
			end := min(i+4096, len(ch))
			chunk := buf[:(end-i)*4]
			for j, s := range ch[i:end] {
				binary.LittleEndian.PutUint32(chunk[j*4:], math.Float32bits(s))
			}
			h.Write(chunk)
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Interleaved returns the samples frame by frame, channels in order.
func (b *Buffer) Interleaved() []float32 {
	channels := len(b.Channels)
	frames := b.Frames()
	out := make([]float32, frames*channels)
	for c, ch := range b.Channels {
		for f, s := range ch {
			out[f*channels+c] = s
		}
	}

	return out
}

// Float64 returns channel c widened to float64 for processing.
func (b *Buffer) Float64(c int) []float64 {
	out := make([]float64, len(b.Channels[c]))
	for i, s := range b.Channels[c] {
		out[i] = float64(s)
	}

	return out
}

// maxEmptyReads bounds consecutive (0, nil) reads before ReadAll gives up.
const maxEmptyReads = 8

// ReadAll drains src into a Buffer. A trailing partial frame is dropped.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidBuffer, channels)
	}
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidBuffer, src.SampleRate())
	}

	b := &Buffer{
		Channels: make([][]float32, channels),
		Rate:     src.SampleRate(),
	}

	buf := make([]float32, 4096*channels)
	var pending []float32
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			frames := len(pending) / channels
			for f := range frames {
				for c := range channels {
					b.Channels[c] = append(b.Channels[c], pending[f*channels+c])
				}
			}
			pending = pending[frames*channels:]
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			empty++
			if empty > maxEmptyReads {
				break
			}
			continue
		}
		empty = 0
	}

	if b.Frames() == 0 {
		return nil, ErrNoSamples
	}

	return b, nil
}

// bufferSource streams a Buffer as an interleaved Source.
type bufferSource struct {
	buf *Buffer
	pos int
}

// NewBufferSource exposes b through the streaming Source interface.
func NewBufferSource(b *Buffer) Source {
	return &bufferSource{buf: b}
}

func (s *bufferSource) SampleRate() int { return s.buf.Rate }
func (s *bufferSource) Channels() int   { return len(s.buf.Channels) }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := len(s.buf.Channels)
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := min(len(dst)/channels, s.buf.Frames()-s.pos)
	if frames <= 0 {
		return 0, io.EOF
	}

	for f := range frames {
		for c := range channels {
			dst[f*channels+c] = s.buf.Channels[c][s.pos+f]
		}
	}
	s.pos += frames

	if s.pos >= s.buf.Frames() {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}
