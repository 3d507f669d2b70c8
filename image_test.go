// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acolor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rgba(c color.Color) [4]uint32 {
	r, g, b, a := c.RGBA()
	return [4]uint32{r, g, b, a}
}

func TestRGBA(t *testing.T) {
	// the 8-bit types behave exactly like the non-premultiplied
	// standard types
	assert.Equal(t, rgba(color.NRGBA{10, 20, 30, 255}), rgba(SRGB8{10, 20, 30}))
	assert.Equal(t, rgba(color.NRGBA{200, 100, 50, 128}), rgba(SRGBA8{200, 100, 50, 128}))
	assert.Equal(t, rgba(color.NRGBA{200, 100, 50, 0}), rgba(SRGBA8{200, 100, 50, 0}))

	// float components quantize to the full 16-bit range
	assert.Equal(t, [4]uint32{0, 0xffff, 0xffff, 0xffff}, rgba(SRGB32{0, 1, 2}))
	assert.Equal(t, [4]uint32{0, 0, 0, 0xffff}, rgba(SRGB32{-1, 0, 0}))

	// premultiplication happens at the boundary
	assert.Equal(t, [4]uint32{16384, 16384, 16384, 32768}, rgba(SRGBA32{0.5, 0.5, 0.5, 0.5}))

	// linear and Oklab forms encode through SRGB32
	lin := LinearSRGB32{0.1, 0.2, 0.3}
	assert.Equal(t, rgba(lin.ToSRGB32()), rgba(lin))
	lab := Oklab32{0.62, 0.1, -0.1}
	assert.Equal(t, rgba(lab.ToSRGB32()), rgba(lab))
	lch := Oklch32{0.62, 0.1, 40}
	assert.Equal(t, rgba(lch.ToSRGB32()), rgba(lch))
}

func TestAsRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{64, 64, 64, 128}, SRGBA32{0.5, 0.5, 0.5, 0.5}.AsRGBA())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, SRGBA32{1, 0, 0, 1}.AsRGBA())
	assert.Equal(t, color.RGBA{}, SRGBA32{0.5, 0.5, 0.5, 0}.AsRGBA())
}

func TestFromColor(t *testing.T) {
	// identity fast paths
	c8 := SRGBA8{10, 20, 30, 40}
	assert.Equal(t, c8, SRGBA8FromColor(c8))
	assert.Equal(t, SRGB8{10, 20, 30}, SRGB8FromColor(SRGB8{10, 20, 30}))

	// through the standard types, non-premultiplied values survive
	assert.Equal(t, SRGBA8{1, 2, 3, 4}, SRGBA8FromColor(color.NRGBA{1, 2, 3, 4}))
	assert.Equal(t, SRGB8{1, 2, 3}, SRGB8FromColor(color.NRGBA{1, 2, 3, 255}))

	// un-premultiplying recovers the color components
	got := SRGBA32FromColor(color.NRGBA{200, 100, 50, 128})
	want := SRGBA32{200.0 / 255, 100.0 / 255, 50.0 / 255, 128.0 / 255}
	assert.True(t, got.AlmostEqual(want, 0.01))

	// fully transparent input has no color to recover
	assert.Equal(t, SRGBA32{}, SRGBA32FromColor(color.NRGBA{200, 100, 50, 0}))

	// conversions compose through the mesh
	n := color.NRGBA{200, 100, 50, 255}
	assert.Equal(t, SRGB32FromColor(n).ToLinearSRGB32(), LinearSRGB32FromColor(n))
	assert.Equal(t, SRGB32FromColor(n).ToOklab32(), Oklab32FromColor(n))
	assert.Equal(t, SRGB32FromColor(n).ToOklch32(), Oklch32FromColor(n))
}

func TestModels(t *testing.T) {
	n := color.NRGBA{200, 100, 50, 128}

	c, ok := SRGB8Model.Convert(n).(SRGB8)
	assert.True(t, ok)
	assert.Equal(t, SRGB8{200, 100, 50}, c)

	a, ok := SRGBA8Model.Convert(n).(SRGBA8)
	assert.True(t, ok)
	assert.Equal(t, SRGBA8{200, 100, 50, 128}, a)

	_, ok = SRGB32Model.Convert(n).(SRGB32)
	assert.True(t, ok)
	_, ok = SRGBA32Model.Convert(n).(SRGBA32)
	assert.True(t, ok)
	_, ok = LinearSRGB32Model.Convert(n).(LinearSRGB32)
	assert.True(t, ok)
	_, ok = LinearSRGBA32Model.Convert(n).(LinearSRGBA32)
	assert.True(t, ok)
	_, ok = Oklab32Model.Convert(n).(Oklab32)
	assert.True(t, ok)
	_, ok = Oklch32Model.Convert(n).(Oklch32)
	assert.True(t, ok)
}
