// SPDX-License-Identifier: EPL-2.0

package audfx

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/formats/wav"
	"github.com/ik5/audfx/graph"
	"github.com/ik5/audfx/render"
	"github.com/ik5/audfx/tempo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Output is one successfully processed render.
type Output struct {
	Name       string
	WAV        []byte
	Frames     int
	Channels   int
	SampleRate int

	// OriginalBPM is the source tempo and BPM the tempo after the tempo
	// change. Both are zero when BPMKnown is false.
	OriginalBPM int
	BPM         int
	BPMKnown    bool

	Generation uint64
}

// Sink receives render results. Failed means there is no processed output.
type Sink interface {
	Processed(out Output)
	Failed(err error)
}

type discardSink struct{}

func (discardSink) Processed(Output) {}
func (discardSink) Failed(error)     {}

// Params are the render parameters supplied by the caller.
type Params struct {
	Chain          graph.Chain
	PitchSemitones float64
	TempoRatio     float64
}

// NewParams derives pitch and tempo from the chain's Pitch and Tempo slots.
func NewParams(chain graph.Chain) Params {
	req := graph.NewRequest(nil, chain)
	return Params{
		Chain:          chain,
		PitchSemitones: req.PitchSemitones,
		TempoRatio:     req.TempoRatio,
	}
}

type loaded struct {
	name   string
	format string
	key    string
	buf    *audio.Buffer
}

// Engine decodes one source at a time and renders it on request. It is safe
// for concurrent use; renders run independently and a result older than
// the newest one already delivered is dropped.
type Engine struct {
	log      logrus.FieldLogger
	registry *audio.Registry
	tempo    *tempo.Cache
	sink     Sink
	seed     *int64
	mixdown  bool

	mtx    sync.Mutex
	source *loaded

	// sinkMtx orders deliveries; delivered is the newest delivered generation.
	sinkMtx   sync.Mutex
	delivered uint64

	issued atomic.Uint64
}

// New creates an engine reporting to sink. A nil sink discards results.
// Sink methods are called one at a time and must not call Render.
func New(sink Sink, opts ...Option) (*Engine, error) {
	e := &Engine{
		log:      logrus.StandardLogger(),
		registry: DefaultRegistry(),
		sink:     sink,
	}
	if e.sink == nil {
		e.sink = discardSink{}
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	e.tempo = tempo.NewCache(tempo.WithMixdown(e.mixdown))

	return e, nil
}

// Load decodes data and makes it the current source. The container format
// is detected from the leading bytes. On failure the previous source is
// kept, the sink is told and the error wraps ErrUnsupportedInput.
func (e *Engine) Load(name string, data []byte) error {
	log := e.log.WithField("name", name)

	format, buf, err := e.decode(data)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrUnsupportedInput, name, err)
		log.WithError(err).Warn("cannot decode input")
		e.sinkMtx.Lock()
		e.sink.Failed(err)
		e.sinkMtx.Unlock()
		return err
	}

	src := &loaded{
		name:   name,
		format: format,
		key:    buf.Fingerprint(),
		buf:    buf,
	}

	e.mtx.Lock()
	prev := e.source
	e.source = src
	e.mtx.Unlock()

	if prev != nil && prev.key != src.key {
		e.tempo.Forget(prev.key)
	}

	log.WithFields(logrus.Fields{
		"format":   format,
		"rate":     buf.Rate,
		"channels": buf.NumChannels(),
		"frames":   buf.Frames(),
	}).Info("source loaded")

	return nil
}

func (e *Engine) decode(data []byte) (format string, buf *audio.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()

	header := data[:min(len(data), audio.HeaderSize)]
	format, dec, err := e.registry.Detect(header)
	if err != nil {
		return "", nil, err
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return format, nil, err
	}
	defer src.Close()

	buf, err = audio.ReadAll(src)
	if err != nil {
		return format, nil, err
	}

	return format, buf, nil
}

// Source returns the loaded buffer, or nil.
func (e *Engine) Source() *audio.Buffer {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.source == nil {
		return nil
	}
	return e.source.buf
}

// Render processes the current source with p and delivers the outcome to
// the sink. It returns the same error the sink receives, or ErrSuperseded
// when a newer render was delivered first.
func (e *Engine) Render(p Params) error {
	gen := e.issued.Add(1)
	log := e.log.WithField("generation", gen)

	e.mtx.Lock()
	src := e.source
	e.mtx.Unlock()

	if src == nil {
		return e.fail(log, gen, ErrNoSource)
	}
	log = log.WithField("name", src.name)

	req := graph.Request{
		Source:         src.buf,
		Chain:          p.Chain,
		PitchSemitones: p.PitchSemitones,
		TempoRatio:     p.TempoRatio,
		Seed:           e.seed,
	}

	var (
		est tempo.Estimate
		out *audio.Buffer
		eg  errgroup.Group
	)
	eg.Go(func() error {
		est = e.tempo.Lookup(src.key, src.buf)
		return nil
	})
	eg.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: panic: %v", render.ErrRender, r)
			}
		}()

		out, err = render.Request(req)
		return err
	})
	if err := eg.Wait(); err != nil {
		return e.fail(log, gen, err)
	}

	var wavData bytes.Buffer
	if err := wav.Encode(&wavData, out); err != nil {
		return e.fail(log, gen, fmt.Errorf("%w: encode: %w", render.ErrRender, err))
	}

	result := Output{
		Name:       src.name,
		WAV:        wavData.Bytes(),
		Frames:     out.Frames(),
		Channels:   out.NumChannels(),
		SampleRate: out.Rate,
		Generation: gen,
	}
	if est.Known() {
		result.OriginalBPM = est.BPM
		result.BPM = tempo.Adjusted(est.BPM, req.TempoRatio)
		result.BPMKnown = true
		log.WithFields(logrus.Fields{"bpm": est.BPM, "adjusted": result.BPM}).Debug("tempo estimated")
	} else {
		log.WithError(est.Err).Debug("tempo indeterminate")
	}

	delivered := e.deliver(gen, func() {
		log.WithFields(logrus.Fields{
			"frames":   result.Frames,
			"duration": out.Duration(),
			"effects":  len(p.Chain.Used()),
		}).Info("render complete")
		e.sink.Processed(result)
	})
	if !delivered {
		log.Debug("dropping stale render")
		return ErrSuperseded
	}

	return nil
}

// deliver runs send if gen is not older than the newest delivered
// generation and records gen as the newest.
func (e *Engine) deliver(gen uint64, send func()) bool {
	e.sinkMtx.Lock()
	defer e.sinkMtx.Unlock()

	if gen < e.delivered {
		return false
	}
	e.delivered = gen
	send()
	return true
}

func (e *Engine) fail(log logrus.FieldLogger, gen uint64, err error) error {
	delivered := e.deliver(gen, func() {
		log.WithError(err).Error("render failed")
		e.sink.Failed(err)
	})
	if !delivered {
		log.WithError(err).Debug("dropping stale render failure")
		return ErrSuperseded
	}

	return err
}
