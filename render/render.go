// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"math"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/graph"
	"golang.org/x/sync/errgroup"
)

// Render runs g and returns the rendered buffer. Any stage failure or a
// non-finite output sample fails the whole render with ErrRender.
func Render(g *graph.Graph) (*audio.Buffer, error) {
	if g == nil || g.Playback == nil {
		return nil, fmt.Errorf("%w: empty graph", ErrRender)
	}
	if err := g.Source.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	out := &audio.Buffer{
		Channels: make([][]float32, g.Source.NumChannels()),
		Rate:     g.Source.Rate,
	}

	var eg errgroup.Group
	for c := range out.Channels {
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: channel %d: panic: %v", ErrRender, c, r)
				}
			}()

			samples, err := renderChannel(g, c)
			if err != nil {
				return err
			}
			out.Channels[c] = samples
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Request builds the graph for req and renders it.
func Request(req graph.Request) (*audio.Buffer, error) {
	g, err := graph.Build(req)
	if err != nil {
		return nil, err
	}
	return Render(g)
}

func renderChannel(g *graph.Graph, c int) ([]float32, error) {
	cur := g.Playback.ResampleChannel(g.Source.Float64(c))
	next := make([]float64, len(cur))

	for i, node := range g.Nodes {
		if err := node.Process(next, cur, c); err != nil {
			return nil, fmt.Errorf("%w: channel %d node %d (%s): %w", ErrRender, c, i, node.Name(), err)
		}
		cur, next = next, cur
	}

	out := make([]float32, len(cur))
	for i, s := range cur {
		v := float32(s)
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return nil, fmt.Errorf("%w: channel %d sample %d is %v", ErrRender, c, i, s)
		}
		out[i] = v
	}

	return out, nil
}
