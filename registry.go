// SPDX-License-Identifier: EPL-2.0

package audfx

import (
	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/formats/aiff"
	"github.com/ik5/audfx/formats/mp3"
	"github.com/ik5/audfx/formats/vorbis"
	"github.com/ik5/audfx/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return reg
}
