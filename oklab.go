// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acolor

import (
	"github.com/andamira/acolor/math32"
)

// Oklab32 is a perceptually uniform color in the Oklab space,
// with 3 × float32 Cartesian components and a D65 whitepoint.
//
// It is the form best suited for perceptual color manipulation:
// Euclidean distance in (L, A, B) approximates perceived difference.
//
// See https://bottosson.github.io/posts/oklab/ for the derivation
// of the transform.
type Oklab32 struct {

	// Perceived lightness.
	L float32

	// Distance along the a axis, from greenish cyan to purplish red.
	A float32

	// Distance along the b axis, from sky blue to mustard yellow.
	B float32
}

// Documented component ranges for [Oklab32]. Conversions can produce
// values outside of them; only [NewOklab32] clamps.
const (
	Oklab32LMin float32 = 0
	Oklab32LMax float32 = 100
	Oklab32AMin float32 = -0.5
	Oklab32AMax float32 = 0.5
	Oklab32BMin float32 = -0.5
	Oklab32BMax float32 = 0.5
)

// NewOklab32 returns a new Oklab color, clamping lightness to ≥ 0
// and the a and b axes to [-0.5, 0.5].
func NewOklab32(lightness, a, b float32) Oklab32 {
	return Oklab32{
		L: math32.Max(lightness, 0),
		A: math32.Clamp(a, Oklab32AMin, Oklab32AMax),
		B: math32.Clamp(b, Oklab32BMin, Oklab32BMax),
	}
}

// Oklab32FromArray returns a new [Oklab32] from an [l, a, b] array,
// without clamping.
func Oklab32FromArray(c [3]float32) Oklab32 {
	return Oklab32{c[0], c[1], c[2]}
}

// LinearSRGBToOklab converts linear sRGB components to Oklab,
// through the cube-rooted LMS cone responses.
//
// The matrix coefficients are the published Oklab constants and must not
// be rounded or "improved": conformance requires reproducing them exactly.
func LinearSRGBToOklab(rl, gl, bl float32) (l, a, b float32) {
	lc := math32.Cbrt(0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl)
	mc := math32.Cbrt(0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl)
	sc := math32.Cbrt(0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl)

	l = 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	a = 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	b = 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc
	return
}

// OklabToLinearSRGB converts Oklab components to linear sRGB,
// cubing the intermediate LMS cone responses.
//
// It is the inverse of [LinearSRGBToOklab] only up to float32 precision:
// the cube-root / cube round trip loses a few ULPs.
func OklabToLinearSRGB(l, a, b float32) (rl, gl, bl float32) {
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	lc := lp * lp * lp
	mc := mp * mp * mp
	sc := sp * sp * sp

	rl = 4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	gl = -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	bl = -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc
	return
}

//////// Oklab32 conversions

// ToSRGB8 converts through [LinearSRGB32] and [SRGB32].
func (c Oklab32) ToSRGB8() SRGB8 {
	return c.ToLinearSRGB32().ToSRGB8()
}

// ToSRGBA8 converts through [LinearSRGB32] and [SRGB32],
// adding the given linear alpha channel.
func (c Oklab32) ToSRGBA8(a uint8) SRGBA8 {
	return c.ToLinearSRGB32().ToSRGBA8(a)
}

// ToSRGB32 converts through [LinearSRGB32].
func (c Oklab32) ToSRGB32() SRGB32 {
	return c.ToLinearSRGB32().ToSRGB32()
}

// ToSRGBA32 converts through [LinearSRGB32],
// adding the given linear alpha channel.
func (c Oklab32) ToSRGBA32(a float32) SRGBA32 {
	return c.ToLinearSRGB32().ToSRGBA32(a)
}

// ToLinearSRGB32 applies the inverse Oklab matrix transform.
func (c Oklab32) ToLinearSRGB32() LinearSRGB32 {
	r, g, b := OklabToLinearSRGB(c.L, c.A, c.B)
	return LinearSRGB32{r, g, b}
}

// ToLinearSRGBA32 applies the inverse Oklab matrix transform
// and adds the given linear alpha channel.
func (c Oklab32) ToLinearSRGBA32(a float32) LinearSRGBA32 {
	return c.ToLinearSRGB32().ToLinearSRGBA32(a)
}

// ToOklch32 maps the Cartesian a, b axes to polar chroma and hue.
func (c Oklab32) ToOklch32() Oklch32 {
	l, ch, h := OklabToOklch(c.L, c.A, c.B)
	return Oklch32{l, ch, h}
}

//////// Oklab32 operations

// DistanceSquared returns the squared Euclidean distance to the other
// color in the Oklab space, a cheap measure of perceptual difference.
func (c Oklab32) DistanceSquared(o Oklab32) float32 {
	dl := c.L - o.L
	da := c.A - o.A
	db := c.B - o.B
	return dl*dl + da*da + db*db
}

// Distance returns the Euclidean distance to the other color
// in the Oklab space.
func (c Oklab32) Distance(o Oklab32) float32 {
	return math32.Sqrt(c.DistanceSquared(o))
}

// AlmostEqual reports whether each component of the two colors
// differs by at most tol.
func (c Oklab32) AlmostEqual(o Oklab32, tol float32) bool {
	return almostEqual(c.L, o.L, tol) && almostEqual(c.A, o.A, tol) &&
		almostEqual(c.B, o.B, tol)
}
