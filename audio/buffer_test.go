// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"
)

func TestReadAll_Stereo(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 10000, func(sample, channel int) float32 {
		return float32(channel+1) * 0.1
	})

	b, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if b.Rate != 8000 {
		t.Errorf("Rate = %d, want 8000", b.Rate)
	}
	if b.NumChannels() != 2 {
		t.Fatalf("NumChannels() = %d, want 2", b.NumChannels())
	}
	if b.Frames() != 10000 {
		t.Errorf("Frames() = %d, want 10000", b.Frames())
	}
	if b.Channels[0][42] != 0.1 || b.Channels[1][42] != 0.2 {
		t.Errorf("deinterleaved frame = (%v, %v), want (0.1, 0.2)", b.Channels[0][42], b.Channels[1][42])
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestReadAll_Empty(t *testing.T) {
	t.Parallel()

	_, err := ReadAll(newSilentSource(8000, 1, 0))
	if !errors.Is(err, ErrNoSamples) {
		t.Errorf("ReadAll() error = %v, want %v", err, ErrNoSamples)
	}
}

type brokenSource struct{ mockSource }

func (b *brokenSource) ReadSamples([]float32) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestReadAll_SourceError(t *testing.T) {
	t.Parallel()

	src := &brokenSource{mockSource{sampleRate: 8000, channels: 1}}
	if _, err := ReadAll(src); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadAll() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestBuffer_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  *Buffer
	}{
		{name: "nil", buf: nil},
		{name: "zero rate", buf: &Buffer{Channels: [][]float32{{0}}}},
		{name: "no channels", buf: &Buffer{Rate: 8000}},
		{name: "ragged", buf: &Buffer{Rate: 8000, Channels: [][]float32{{0, 0}, {0}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.buf.Validate(); !errors.Is(err, ErrInvalidBuffer) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidBuffer)
			}
		})
	}
}

func TestBuffer_Fingerprint(t *testing.T) {
	t.Parallel()

	a := NewBuffer(8000, 2, 100)
	b := NewBuffer(8000, 2, 100)
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical buffers have different fingerprints")
	}

	b.Channels[1][99] = 0.5
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("different content shares a fingerprint")
	}

	c := NewBuffer(16000, 2, 100)
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different sample rates share a fingerprint")
	}
}

func TestBuffer_Interleaved(t *testing.T) {
	t.Parallel()

	b := &Buffer{Rate: 8000, Channels: [][]float32{{1, 2}, {-1, -2}}}
	got := b.Interleaved()
	want := []float32{1, -1, 2, -2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Interleaved()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if d := b.Duration(); math.Abs(d-2.0/8000) > 1e-12 {
		t.Errorf("Duration() = %v, want %v", d, 2.0/8000)
	}
}

func TestBufferSource_RoundTrip(t *testing.T) {
	t.Parallel()

	b, err := ReadAll(newSineSource(44100, 2, 5000, 440))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	again, err := ReadAll(NewBufferSource(b))
	if err != nil {
		t.Fatalf("ReadAll(NewBufferSource()) error = %v", err)
	}
	if again.Fingerprint() != b.Fingerprint() {
		t.Error("buffer source did not reproduce the buffer")
	}

	if _, err := NewBufferSource(b).ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want %v", err, ErrInvalidDstSize)
	}
}
