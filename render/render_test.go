// SPDX-License-Identifier: EPL-2.0

package render

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/effects"
	"github.com/ik5/audfx/formats/wav"
	"github.com/ik5/audfx/graph"
	"github.com/ik5/audfx/internal/audiotest"
)

func mustChain(t *testing.T, es ...graph.Effect) graph.Chain {
	t.Helper()

	c, err := graph.NewChain(es...)
	if err != nil {
		t.Fatalf("NewChain() error = %v", err)
	}
	return c
}

func TestRenderIdentity(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineBuffer(44100, 2, 4410, 440)
	out, err := Request(graph.NewRequest(src, graph.Chain{}))
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	if out.Frames() != src.Frames() || out.NumChannels() != 2 || out.Rate != 44100 {
		t.Fatalf("output %d frames x %d channels @ %d, want %d x 2 @ 44100",
			out.Frames(), out.NumChannels(), out.Rate, src.Frames())
	}
	if d := audiotest.MaxAbsDiff(src, out); d != 0 {
		t.Errorf("MaxAbsDiff() = %v, want 0", d)
	}
}

func TestRenderOutputLength(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineBuffer(8000, 1, 8001, 220)
	for _, ratio := range []float64{0.5, 0.55, 0.75, 1, 1.05, 1.5, 1.95, 2} {
		for _, semitones := range []float64{-12, 0, 7} {
			req := graph.Request{Source: src, TempoRatio: ratio, PitchSemitones: semitones}
			out, err := Request(req)
			if err != nil {
				t.Fatalf("Request(ratio=%v) error = %v", ratio, err)
			}

			want := int(math.Floor(float64(src.Frames()) / ratio))
			if out.Frames() != want {
				t.Errorf("ratio %v pitch %v: Frames() = %d, want %d", ratio, semitones, out.Frames(), want)
			}
		}
	}
}

func TestRenderPlaysPastEndAsSilence(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantBuffer(1000, 1, 100, 0.5)
	out, err := Request(graph.Request{Source: src, TempoRatio: 1, PitchSemitones: 12})
	if err != nil {
		t.Fatal(err)
	}

	// Playback at twice the speed exhausts the source halfway through.
	for i, s := range out.Channels[0] {
		want := float32(0.5)
		if i >= 50 {
			want = 0
		}
		if s != want {
			t.Fatalf("out[%d] = %v, want %v", i, s, want)
		}
	}
}

func TestRenderBitcrush(t *testing.T) {
	t.Parallel()

	src := audiotest.NewBuffer(8000, 1, 8000, audiotest.Sine(8000, 50, 0.5))

	out, err := Request(graph.NewRequest(src, mustChain(t, graph.Bitcrush(1))))
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range out.Channels[0] {
		if s != 0 && s != 0.5 && s != -0.5 {
			t.Fatalf("1-bit out[%d] = %v, want one of -0.5, 0, 0.5", i, s)
		}
	}

	out, err = Request(graph.NewRequest(src, mustChain(t, graph.Bitcrush(16))))
	if err != nil {
		t.Fatal(err)
	}
	if d := audiotest.MaxAbsDiff(src, out); d > math.Pow(0.5, 16) {
		t.Errorf("16-bit MaxAbsDiff() = %v, want <= %v", d, math.Pow(0.5, 16))
	}
}

func TestRenderIsOrderSensitive(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineBuffer(44100, 1, 4410, 3000)

	a, err := Request(graph.NewRequest(src, mustChain(t, graph.Filter(500), graph.Bitcrush(3))))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Request(graph.NewRequest(src, mustChain(t, graph.Bitcrush(3), graph.Filter(500))))
	if err != nil {
		t.Fatal(err)
	}

	if d := audiotest.MaxAbsDiff(a, b); d <= 1e-6 {
		t.Errorf("MaxAbsDiff(filter>bitcrush, bitcrush>filter) = %v, want > 1e-6", d)
	}
}

func TestRenderSeededReverbIsDeterministic(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineBuffer(8000, 2, 8000, 330)
	req := graph.NewRequest(src, mustChain(t, graph.Reverb(true), graph.Chorus(40))).WithSeed(11)

	a, err := Request(req)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Request(req)
	if err != nil {
		t.Fatal(err)
	}
	if d := audiotest.MaxAbsDiff(a, b); d != 0 {
		t.Errorf("MaxAbsDiff() = %v, want 0", d)
	}
}

func TestRenderAllEffects(t *testing.T) {
	t.Parallel()

	src := audiotest.NewNoiseBuffer(8000, 2, 8000, 0.8, 3)
	req := graph.NewRequest(src, mustChain(t,
		graph.Distortion(true), graph.Delay(120), graph.Filter(2000), graph.Reverb(true),
	)).WithSeed(1)

	out, err := Request(req)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if out.Frames() != src.Frames() || out.NumChannels() != src.NumChannels() {
		t.Errorf("output %d x %d, want %d x %d", out.Frames(), out.NumChannels(), src.Frames(), src.NumChannels())
	}
}

type nodeFunc struct {
	name string
	fn   func(dst, src []float64) error
}

func (n nodeFunc) Name() string { return n.name }

func (n nodeFunc) Process(dst, src []float64, _ int) error { return n.fn(dst, src) }

func TestRenderFailures(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineBuffer(8000, 2, 800, 440)
	playback, err := audio.NewResampler(1, src.Frames())
	if err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	tests := []struct {
		name string
		node effects.Node
		want error
	}{
		{"node error", nodeFunc{"failing", func(_, _ []float64) error { return boom }}, boom},
		{"non-finite output", nodeFunc{"nan", func(dst, _ []float64) error {
			dst[len(dst)/2] = math.NaN()
			return nil
		}}, nil},
		{"panic", nodeFunc{"panicky", func(_, _ []float64) error { panic("bad slice") }}, nil},
		{"float32 overflow", nodeFunc{"huge", func(dst, _ []float64) error {
			dst[0] = math.MaxFloat64
			return nil
		}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := &graph.Graph{Source: src, Playback: playback, Nodes: []effects.Node{tt.node}}
			out, err := Render(g)
			if !errors.Is(err, ErrRender) {
				t.Fatalf("Render() error = %v, want ErrRender", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Render() error = %v, want %v", err, tt.want)
			}
			if out != nil {
				t.Errorf("Render() returned partial output")
			}
		})
	}

	if _, err := Render(nil); !errors.Is(err, ErrRender) {
		t.Errorf("Render(nil) error = %v, want ErrRender", err)
	}
}

func TestRenderPropagatesGraphErrors(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineBuffer(8000, 1, 800, 440)
	_, err := Request(graph.Request{Source: src, TempoRatio: 0})
	if !errors.Is(err, graph.ErrGraphConstruction) {
		t.Errorf("Request() error = %v, want ErrGraphConstruction", err)
	}
}

func TestRenderWAVRoundTrip(t *testing.T) {
	t.Parallel()

	src := audiotest.NewBuffer(44100, 1, 44100, audiotest.Sine(44100, 440, 0.9))
	out, err := Request(graph.NewRequest(src, graph.Chain{}))
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	var buf bytes.Buffer
	if err := wav.Encode(&buf, out); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	dec, err := wav.Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, err := audio.ReadAll(dec)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if got.Frames() != 44100 || got.NumChannels() != 1 || got.Rate != 44100 {
		t.Fatalf("decoded %d frames x %d channels @ %d, want 44100 x 1 @ 44100",
			got.Frames(), got.NumChannels(), got.Rate)
	}
	if d := audiotest.MaxAbsDiff(src, got); d > 1.0/32767 {
		t.Errorf("MaxAbsDiff() = %v, want <= %v", d, 1.0/32767)
	}
}
