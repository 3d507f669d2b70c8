// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acolor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andamira/acolor/tolassert"
)

func TestOklabKnownValues(t *testing.T) {
	// reference values from https://bottosson.github.io/posts/oklab/
	l, a, b := LinearSRGBToOklab(1, 1, 1)
	tolassert.EqualTol(t, float32(1), l, 1e-4)
	tolassert.EqualTol(t, float32(0), a, 1e-4)
	tolassert.EqualTol(t, float32(0), b, 1e-4)

	l, a, b = LinearSRGBToOklab(0, 0, 0)
	assert.Equal(t, float32(0), l)
	assert.Equal(t, float32(0), a)
	assert.Equal(t, float32(0), b)

	l, a, b = LinearSRGBToOklab(1, 0, 0)
	tolassert.EqualTol(t, float32(0.6279554), l, 2e-4)
	tolassert.EqualTol(t, float32(0.2248631), a, 2e-4)
	tolassert.EqualTol(t, float32(0.1258463), b, 2e-4)

	l, a, b = LinearSRGBToOklab(0, 1, 0)
	tolassert.EqualTol(t, float32(0.8664396), l, 2e-4)
	tolassert.EqualTol(t, float32(-0.2338876), a, 2e-4)
	tolassert.EqualTol(t, float32(0.1794985), b, 2e-4)

	l, a, b = LinearSRGBToOklab(0, 0, 1)
	tolassert.EqualTol(t, float32(0.4520137), l, 2e-4)
	tolassert.EqualTol(t, float32(-0.0324548), a, 2e-4)
	tolassert.EqualTol(t, float32(-0.3115281), b, 2e-4)
}

func TestOklabRoundTrip(t *testing.T) {
	colors := []LinearSRGB32{
		{0, 0, 0},
		{1, 1, 1},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.1, 0.2, 0.3},
		{0.9, 0.5, 0.05},
	}
	for _, c := range colors {
		got := c.ToOklab32().ToLinearSRGB32()
		if !got.AlmostEqual(c, 1e-5) {
			t.Fatalf("round trip failed for %+v: got %+v", c, got)
		}
	}
}

func TestOklab8BitRoundTrip(t *testing.T) {
	// the quantized round trip must land back on the same code
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				c := SRGB8{uint8(r), uint8(g), uint8(b)}
				if got := c.ToOklab32().ToSRGB8(); got != c {
					t.Fatalf("round trip failed for %+v: got %+v", c, got)
				}
			}
		}
	}
}

func TestNewOklab32(t *testing.T) {
	// only the constructor clamps
	assert.Equal(t, Oklab32{0, 0.5, -0.5}, NewOklab32(-1, 0.7, -0.7))
	assert.Equal(t, Oklab32{0.5, 0.1, -0.2}, NewOklab32(0.5, 0.1, -0.2))
	assert.Equal(t, Oklab32{0.5, 0.1, -0.2}, Oklab32FromArray([3]float32{0.5, 0.1, -0.2}))
	assert.Equal(t, Oklab32{-1, 0.7, -0.7}, Oklab32FromArray([3]float32{-1, 0.7, -0.7}))
}

func TestOklabDistance(t *testing.T) {
	c := Oklab32{0.5, 0.1, -0.2}
	assert.Equal(t, float32(0), c.DistanceSquared(c))
	assert.Equal(t, float32(0), c.Distance(c))

	o := Oklab32{0.5, 0.1, 0.2}
	tolassert.Equal(t, float32(0.16), c.DistanceSquared(o))
	tolassert.Equal(t, float32(0.4), c.Distance(o))
	assert.Equal(t, c.DistanceSquared(o), o.DistanceSquared(c))

	// white and black sit a full lightness unit apart
	white := LinearSRGB32{1, 1, 1}.ToOklab32()
	black := LinearSRGB32{0, 0, 0}.ToOklab32()
	tolassert.EqualTol(t, float32(1), white.Distance(black), 1e-4)
}
