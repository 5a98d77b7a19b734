// SPDX-License-Identifier: EPL-2.0

package audfx

import "github.com/sirupsen/logrus"

type collector struct {
	out Output
	err error
}

func (c *collector) Processed(out Output) { c.out = out }
func (c *collector) Failed(err error)     { c.err = err }

// Process decodes data, renders it with p and returns the WAV bytes.
func Process(data []byte, p Params, opts ...Option) ([]byte, error) {
	var sink collector

	quiet := logrus.New()
	quiet.SetLevel(logrus.WarnLevel)

	e, err := New(&sink, append([]Option{WithLogger(quiet)}, opts...)...)
	if err != nil {
		return nil, err
	}
	if err := e.Load("input", data); err != nil {
		return nil, err
	}
	if err := e.Render(p); err != nil {
		return nil, err
	}

	return sink.out.WAV, nil
}
