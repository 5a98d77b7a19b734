// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sort"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Detector is implemented by decoders that can recognise their container
// from the first bytes of a stream.
type Detector interface {
	Detect(header []byte) bool
}

// HeaderSize is the number of leading bytes handed to Detector.Detect.
const HeaderSize = 16

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Detect returns the first registered decoder (in format key order) whose
// Detector accepts header.
func (r *Registry) Detect(header []byte) (string, Decoder, error) {
	if len(header) == 0 {
		return "", nil, ErrEmptyInput
	}

	for _, name := range r.Formats() {
		d, _ := r.Get(name)
		det, ok := d.(Detector)
		if ok && det.Detect(header) {
			return name, d, nil
		}
	}

	return "", nil, ErrUnknownFormat
}
