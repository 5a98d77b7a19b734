// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"
)

const (
	MinBits = 1
	MaxBits = 16

	bitcrushBlock = 4096
)

// Bitcrusher snaps every sample to the nearest multiple of 2^-bits.
type Bitcrusher struct {
	bits int
	step float64
}

func NewBitcrusher(bits int) (*Bitcrusher, error) {
	if bits < MinBits || bits > MaxBits {
		return nil, fmt.Errorf("%w: bit depth must be in [%d, %d]: %d", ErrInvalidParameter, MinBits, MaxBits, bits)
	}
	return &Bitcrusher{bits: bits, step: math.Pow(0.5, float64(bits))}, nil
}

func (b *Bitcrusher) Name() string { return "bitcrush" }

// Step returns the quantization step.
func (b *Bitcrusher) Step() float64 { return b.step }

func (b *Bitcrusher) Process(dst, src []float64, channel int) error {
	if err := checkBuffers(dst, src, channel); err != nil {
		return err
	}

	for start := 0; start < len(src); start += bitcrushBlock {
		end := min(start+bitcrushBlock, len(src))
		for i := start; i < end; i++ {
			dst[i] = roundHalfUp(src[i]/b.step) * b.step
		}
	}
	return nil
}
