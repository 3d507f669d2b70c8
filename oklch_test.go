// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acolor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andamira/acolor/tolassert"
)

func TestOklabToOklch(t *testing.T) {
	// the cardinal directions of the a, b plane
	l, c, h := OklabToOklch(0.5, 0.1, 0)
	assert.Equal(t, float32(0.5), l)
	tolassert.EqualTol(t, float32(0.1), c, 1e-6)
	tolassert.EqualTol(t, float32(0), h, 1e-4)

	_, c, h = OklabToOklch(0.5, 0, 0.1)
	tolassert.EqualTol(t, float32(0.1), c, 1e-6)
	tolassert.EqualTol(t, float32(90), h, 1e-4)

	_, c, h = OklabToOklch(0.5, -0.1, 0)
	tolassert.EqualTol(t, float32(180), h, 1e-4)

	// negative angles wrap into [0, 360)
	_, _, h = OklabToOklch(0.5, 0, -0.1)
	tolassert.EqualTol(t, float32(270), h, 1e-4)

	_, _, h = OklabToOklch(0.5, 0.1, -0.001)
	assert.Less(t, float64(359), float64(h))
	assert.Less(t, float64(h), float64(360))

	// diagonal
	_, c, h = OklabToOklch(0.5, 0.1, 0.1)
	tolassert.EqualTol(t, float32(0.14142136), c, 1e-6)
	tolassert.EqualTol(t, float32(45), h, 1e-4)
}

func TestOklchGray(t *testing.T) {
	// pure gray has zero chroma; the hue it reports is irrelevant
	_, c, _ := OklabToOklch(0.5, 0, 0)
	assert.Equal(t, float32(0), c)

	g := LinearSRGB32{0.5, 0.5, 0.5}.ToOklch32()
	assert.Less(t, float64(g.C), 1e-4)
}

func TestOklchPolarRoundTrip(t *testing.T) {
	for hue := 0; hue < 360; hue += 45 {
		c := Oklch32{0.7, 0.1, float32(hue)}
		got := c.ToOklab32().ToOklch32()
		if !got.AlmostEqual(c, 0.01) {
			t.Fatalf("round trip failed for hue %d: got %+v", hue, got)
		}
	}

	// near the wrap point the angle comes back just under 360
	c := Oklch32{0.7, 0.1, 359}
	got := c.ToOklab32().ToOklch32()
	assert.True(t, got.AlmostEqual(c, 0.01))
}

func TestNewOklch32(t *testing.T) {
	assert.Equal(t, Oklch32{100, 0.5, 360}, NewOklch32(120, 0.7, 400))
	assert.Equal(t, Oklch32{0, 0, 0}, NewOklch32(-1, -0.1, -20))
	assert.Equal(t, Oklch32{0.7, 0.1, 359}, NewOklch32(0.7, 0.1, 359))
	assert.Equal(t, Oklch32{0.7, 0.1, 359}, Oklch32FromArray([3]float32{0.7, 0.1, 359}))
}

func TestOklchDistance(t *testing.T) {
	c := Oklch32{0.7, 0.1, 40}
	assert.Equal(t, float32(0), c.DistanceSquared(c))
	assert.Equal(t, float32(0), c.Distance(c))

	// hues 359° and 1° are neighbors, not 358° apart
	a := Oklch32{0.5, 0.1, 359}
	b := Oklch32{0.5, 0.1, 1}
	assert.Less(t, float64(a.Distance(b)), 0.01)

	// the same 2° separation anywhere on the circle
	d := Oklch32{0.5, 0.1, 100}.Distance(Oklch32{0.5, 0.1, 102})
	tolassert.EqualTol(t, d, a.Distance(b), 1e-5)

	// opposite hues are two chroma radii apart
	tolassert.EqualTol(t, float32(0.2),
		Oklch32{0.5, 0.1, 0}.Distance(Oklch32{0.5, 0.1, 180}), 1e-5)
}

func TestOklchConversionMesh(t *testing.T) {
	c := Oklch32{0.7, 0.1, 40}

	assert.True(t, c.ToSRGB32().ToOklch32().AlmostEqual(c, 0.01))
	assert.True(t, c.ToSRGBA32(1).ToOklch32().AlmostEqual(c, 0.01))
	assert.True(t, c.ToLinearSRGB32().ToOklch32().AlmostEqual(c, 0.01))
	assert.True(t, c.ToLinearSRGBA32(1).ToOklch32().AlmostEqual(c, 0.01))
	// quantization at chroma 0.1 can move the hue by a degree or two
	assert.True(t, c.ToSRGB8().ToOklch32().AlmostEqual(c, 2))
	assert.True(t, c.ToSRGBA8(255).ToOklch32().AlmostEqual(c, 2))
}
