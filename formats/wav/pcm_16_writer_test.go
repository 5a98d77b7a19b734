// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/ik5/audfx/audio"
)

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, 1, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	if buf.Len() != HeaderSize {
		t.Errorf("WAV file size = %d, want %d (header only)", buf.Len(), HeaderSize)
	}
}

func TestWriteWAV16_Stereo(t *testing.T) {
	t.Parallel()

	samples := []int16{1, -1, 2, -2, 3, -3}
	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 22050, 2, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 2 {
		t.Errorf("num channels = %d, want 2", got)
	}
	for i, want := range samples {
		got := int16(binary.LittleEndian.Uint16(data[HeaderSize+2*i:]))
		if got != want {
			t.Errorf("sample %d = %d, want %d", i, got, want)
		}
	}
}

func TestWriteWAV16_InvalidLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
		samples  []int16
		wantErr  error
	}{
		{name: "zero rate", rate: 0, channels: 1, wantErr: ErrInvalidSampleRate},
		{name: "zero channels", rate: 8000, channels: 0, wantErr: ErrInvalidChannelCount},
		{name: "ragged frames", rate: 8000, channels: 2, samples: []int16{1, 2, 3}, wantErr: ErrSampleCountMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := WriteWAV16(new(bytes.Buffer), tt.rate, tt.channels, tt.samples)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("WriteWAV16() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncode_CanonicalHeader(t *testing.T) {
	t.Parallel()

	b := audio.NewBuffer(44100, 2, 10)
	buf := new(bytes.Buffer)
	if err := Encode(buf, b); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	data := buf.Bytes()
	dataSize := uint32(10 * 2 * 2)
	if len(data) != HeaderSize+int(dataSize) {
		t.Fatalf("len = %d, want %d", len(data), HeaderSize+int(dataSize))
	}

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"RIFF tag", string(data[0:4]), "RIFF"},
		{"riff size", binary.LittleEndian.Uint32(data[4:8]), 36 + dataSize},
		{"WAVE tag", string(data[8:12]), "WAVE"},
		{"fmt tag", string(data[12:16]), "fmt "},
		{"fmt size", binary.LittleEndian.Uint32(data[16:20]), uint32(16)},
		{"format", binary.LittleEndian.Uint16(data[20:22]), uint16(1)},
		{"channels", binary.LittleEndian.Uint16(data[22:24]), uint16(2)},
		{"sample rate", binary.LittleEndian.Uint32(data[24:28]), uint32(44100)},
		{"byte rate", binary.LittleEndian.Uint32(data[28:32]), uint32(44100 * 2 * 2)},
		{"block align", binary.LittleEndian.Uint16(data[32:34]), uint16(4)},
		{"bits per sample", binary.LittleEndian.Uint16(data[34:36]), uint16(16)},
		{"data tag", string(data[36:40]), "data"},
		{"data size", binary.LittleEndian.Uint32(data[40:44]), dataSize},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestEncode_SampleConversion(t *testing.T) {
	t.Parallel()

	b := &audio.Buffer{
		Rate:     8000,
		Channels: [][]float32{{-1, 1, 0.5, -0.5, 2, -2, 0}},
	}
	want := []int16{math.MinInt16, math.MaxInt16, 16384, -16384, math.MaxInt16, math.MinInt16, 0}

	buf := new(bytes.Buffer)
	if err := Encode(buf, b); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	data := buf.Bytes()[HeaderSize:]
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(data[2*i:]))
		if got != w {
			t.Errorf("sample %d (%v) = %d, want %d", i, b.Channels[0][i], got, w)
		}
	}
}

func TestEncode_InterleavesChannels(t *testing.T) {
	t.Parallel()

	b := &audio.Buffer{
		Rate:     8000,
		Channels: [][]float32{{0, 1}, {-1, 0}},
	}

	buf := new(bytes.Buffer)
	if err := Encode(buf, b); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	data := buf.Bytes()[HeaderSize:]
	want := []int16{0, math.MinInt16, math.MaxInt16, 0}
	for i, w := range want {
		if got := int16(binary.LittleEndian.Uint16(data[2*i:])); got != w {
			t.Errorf("interleaved sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestEncode_InvalidBuffer(t *testing.T) {
	t.Parallel()

	err := Encode(new(bytes.Buffer), &audio.Buffer{Rate: 8000})
	if !errors.Is(err, audio.ErrInvalidBuffer) {
		t.Errorf("Encode() error = %v, want %v", err, audio.ErrInvalidBuffer)
	}
}
