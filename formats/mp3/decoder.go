// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/utils"
)

// go-mp3 always decodes to interleaved stereo 16-bit little-endian PCM.
const channels = 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	carry      []byte // odd trailing byte from the previous read
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	k := copy(s.buf, s.carry)
	s.carry = s.carry[:0]

	n, err := s.dec.Read(s.buf[k:])
	n += k
	if n < 2 {
		s.carry = append(s.carry, s.buf[:n]...)
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := range samples {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(s.buf[2*i:])))
	}
	s.carry = append(s.carry, s.buf[samples*2:n]...)

	return samples, err
}

type Decoder struct{}

// Detect recognises an ID3v2 tag or a bare MPEG audio frame sync.
func (Decoder) Detect(header []byte) bool {
	if bytes.HasPrefix(header, []byte("ID3")) {
		return true
	}
	// 11 sync bits, layer bits != 00.
	return len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0 && header[1]&0x06 != 0
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
