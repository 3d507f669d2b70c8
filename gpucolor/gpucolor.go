// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpucolor converts between the acolor sRGB types and the
// [gputypes.Color] value used by WebGPU-style render APIs.
//
// These are plain field copies with the same component order; alpha
// defaults to opaque when the source type has none. The core package
// does not depend on this one.
package gpucolor

import (
	"github.com/gogpu/gputypes"

	"github.com/andamira/acolor"
)

// FromSRGB8 returns the color as a [gputypes.Color] with opaque alpha.
func FromSRGB8(c acolor.SRGB8) gputypes.Color {
	return FromSRGB32(c.ToSRGB32())
}

// FromSRGBA8 returns the color as a [gputypes.Color].
func FromSRGBA8(c acolor.SRGBA8) gputypes.Color {
	return FromSRGBA32(c.ToSRGBA32())
}

// FromSRGB32 returns the color as a [gputypes.Color] with opaque alpha.
func FromSRGB32(c acolor.SRGB32) gputypes.Color {
	return gputypes.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: 1}
}

// FromSRGBA32 returns the color as a [gputypes.Color].
func FromSRGBA32(c acolor.SRGBA32) gputypes.Color {
	return gputypes.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

// SRGB8 returns the [gputypes.Color] as a quantized [acolor.SRGB8],
// dropping alpha.
func SRGB8(c gputypes.Color) acolor.SRGB8 {
	return SRGB32(c).ToSRGB8()
}

// SRGBA8 returns the [gputypes.Color] as a quantized [acolor.SRGBA8].
func SRGBA8(c gputypes.Color) acolor.SRGBA8 {
	return SRGBA32(c).ToSRGBA8()
}

// SRGB32 returns the [gputypes.Color] as an [acolor.SRGB32],
// dropping alpha.
func SRGB32(c gputypes.Color) acolor.SRGB32 {
	return acolor.SRGB32{R: float32(c.R), G: float32(c.G), B: float32(c.B)}
}

// SRGBA32 returns the [gputypes.Color] as an [acolor.SRGBA32].
func SRGBA32(c gputypes.Color) acolor.SRGBA32 {
	return acolor.SRGBA32{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}
}
