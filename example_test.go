// SPDX-License-Identifier: EPL-2.0

package audfx_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/audfx"
	"github.com/ik5/audfx/formats/wav"
	"github.com/ik5/audfx/graph"
	"github.com/ik5/audfx/internal/audiotest"
	"github.com/sirupsen/logrus"
)

type printSink struct{}

func (printSink) Processed(out audfx.Output) {
	fmt.Printf("%s: %d frames, %d -> %d BPM\n", out.Name, out.Frames, out.OriginalBPM, out.BPM)
}

func (printSink) Failed(err error) {
	fmt.Println("failed:", err)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Example_engine loads a drum loop, speeds it up by half and reports the
// new tempo.
func Example_engine() {
	var loop bytes.Buffer
	beats := audiotest.NewBurstBuffer(44100, 2*44100, 0.1, 0.5, 1.0, 1.5)
	if err := wav.Encode(&loop, beats); err != nil {
		fmt.Println(err)
		return
	}

	e, err := audfx.New(printSink{}, audfx.WithLogger(quietLogger()))
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := e.Load("loop.wav", loop.Bytes()); err != nil {
		return
	}

	chain, _ := graph.NewChain(graph.Tempo(50), graph.Filter(4000))
	_ = e.Render(audfx.NewParams(chain))
	// Output: loop.wav: 58800 frames, 120 -> 180 BPM
}

// Example_process renders a clip in one call.
func Example_process() {
	var in bytes.Buffer
	if err := wav.Encode(&in, audiotest.NewSineBuffer(8000, 1, 8000, 440)); err != nil {
		fmt.Println(err)
		return
	}

	chain, _ := graph.NewChain(graph.Tempo(100), graph.Bitcrush(8))
	out, err := audfx.Process(in.Bytes(), audfx.NewParams(chain))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(out)-wav.HeaderSize, "bytes of PCM")
	// Output: 8000 bytes of PCM
}

// Example_unsupportedInput shows how undecodable input is reported.
func Example_unsupportedInput() {
	_, err := audfx.Process([]byte("not audio"), audfx.NewParams(graph.Chain{}))
	fmt.Println(err)
	// Output: unsupported or undecodable audio input: input: unknown audio format
}
