// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1, 1] and quantizes it to 16-bit PCM.
// Negative values scale by 32768 and the rest by 32767, so both ends of the
// range map onto the full int16 span.
func Float32ToInt16(x float32) int16 {
	s := float64(Clamp(x))
	if s < 0 {
		return int16(math.Round(s * 32768.0))
	}

	return int16(math.Round(s * 32767.0))
}

// Int16ToFloat32 is the inverse of Float32ToInt16.
func Int16ToFloat32(v int16) float32 {
	if v < 0 {
		return float32(v) / 32768.0
	}

	return float32(v) / 32767.0
}

// IntToFloat32 normalizes a signed PCM integer of the given bit depth.
// Unknown depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	if bitDepth < 8 || bitDepth > 32 {
		bitDepth = 16
	}
	neg := math.Exp2(float64(bitDepth - 1))
	if v < 0 {
		return float32(float64(v) / neg)
	}

	return float32(float64(v) / (neg - 1))
}

// Clamp limits x to [-1, 1].
func Clamp(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}

	return x
}
