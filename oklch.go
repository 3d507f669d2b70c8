// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acolor

import (
	"github.com/andamira/acolor/math32"
)

// Oklch32 is the polar form of [Oklab32]: perceived lightness, chroma
// (distance from gray) and hue angle, with 3 × float32 components.
//
// Hue is in degrees in [0, 360): 0° points along the positive a axis
// (purplish red), 90° along the positive b axis (mustard yellow), 180°
// along the negative a axis (greenish cyan) and 270° along the negative
// b axis (sky blue).
type Oklch32 struct {

	// Perceived lightness.
	L float32

	// Chroma, the distance from gray.
	C float32

	// Hue angle in degrees.
	H float32
}

// Documented component ranges for [Oklch32]. Chroma is theoretically
// unbounded but in practice does not exceed 0.5 for in-gamut colors.
// Conversions can produce values outside these ranges; only [NewOklch32]
// clamps.
const (
	Oklch32LMin float32 = 0
	Oklch32LMax float32 = 100
	Oklch32CMin float32 = 0
	Oklch32CMax float32 = 0.5
	Oklch32HMin float32 = 0
	Oklch32HMax float32 = 360
)

// NewOklch32 returns a new Oklch color with each component clamped
// to its documented range.
func NewOklch32(lightness, chroma, hue float32) Oklch32 {
	return Oklch32{
		L: math32.Clamp(lightness, Oklch32LMin, Oklch32LMax),
		C: math32.Clamp(chroma, Oklch32CMin, Oklch32CMax),
		H: math32.Clamp(hue, Oklch32HMin, Oklch32HMax),
	}
}

// Oklch32FromArray returns a new [Oklch32] from an [l, c, h] array,
// without clamping.
func Oklch32FromArray(c [3]float32) Oklch32 {
	return Oklch32{c[0], c[1], c[2]}
}

// OklabToOklch maps the Cartesian Oklab axes to polar chroma and hue.
// Lightness passes through unchanged. The hue is returned in degrees,
// wrapped into [0, 360).
//
// The hue of pure gray (chroma ≈ 0) is unspecified.
func OklabToOklch(l, a, b float32) (lo, c, h float32) {
	lo = l
	c = math32.Hypot(a, b)
	h = math32.RadToDeg(math32.Atan2(b, a))
	if h < 0 {
		h += 360
	}
	return
}

// OklchToOklab maps polar chroma and hue back to the Cartesian Oklab
// axes. Lightness passes through unchanged.
func OklchToOklab(l, c, h float32) (lo, a, b float32) {
	lo = l
	a = c * math32.Cos(math32.DegToRad(h))
	b = c * math32.Sin(math32.DegToRad(h))
	return
}

//////// Oklch32 conversions

// ToSRGB8 converts through [Oklab32], [LinearSRGB32] and [SRGB32].
func (c Oklch32) ToSRGB8() SRGB8 {
	return c.ToOklab32().ToSRGB8()
}

// ToSRGBA8 converts through [Oklab32], [LinearSRGB32] and [SRGB32],
// adding the given linear alpha channel.
func (c Oklch32) ToSRGBA8(a uint8) SRGBA8 {
	return c.ToOklab32().ToSRGBA8(a)
}

// ToSRGB32 converts through [Oklab32] and [LinearSRGB32].
func (c Oklch32) ToSRGB32() SRGB32 {
	return c.ToOklab32().ToSRGB32()
}

// ToSRGBA32 converts through [Oklab32] and [LinearSRGB32],
// adding the given linear alpha channel.
func (c Oklch32) ToSRGBA32(a float32) SRGBA32 {
	return c.ToOklab32().ToSRGBA32(a)
}

// ToLinearSRGB32 converts through [Oklab32].
func (c Oklch32) ToLinearSRGB32() LinearSRGB32 {
	return c.ToOklab32().ToLinearSRGB32()
}

// ToLinearSRGBA32 converts through [Oklab32],
// adding the given linear alpha channel.
func (c Oklch32) ToLinearSRGBA32(a float32) LinearSRGBA32 {
	return c.ToOklab32().ToLinearSRGBA32(a)
}

// ToOklab32 maps polar chroma and hue back to the Cartesian axes.
func (c Oklch32) ToOklab32() Oklab32 {
	l, a, b := OklchToOklab(c.L, c.C, c.H)
	return Oklab32{l, a, b}
}

//////// Oklch32 operations

// DistanceSquared returns the squared Euclidean distance to the other
// color, computed in the Cartesian [Oklab32] space so that hues near 0°
// and near 360° compare as neighbors rather than as opposites.
func (c Oklch32) DistanceSquared(o Oklch32) float32 {
	return c.ToOklab32().DistanceSquared(o.ToOklab32())
}

// Distance returns the Euclidean distance to the other color,
// computed in the Cartesian [Oklab32] space.
func (c Oklch32) Distance(o Oklch32) float32 {
	return math32.Sqrt(c.DistanceSquared(o))
}

// AlmostEqual reports whether each component of the two colors
// differs by at most tol. Hue is compared as a plain number,
// without wrapping.
func (c Oklch32) AlmostEqual(o Oklch32, tol float32) bool {
	return almostEqual(c.L, o.L, tol) && almostEqual(c.C, o.C, tol) &&
		almostEqual(c.H, o.H, tol)
}
