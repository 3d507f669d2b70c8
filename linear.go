// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acolor

import (
	"github.com/andamira/acolor/math32"
	"github.com/andamira/acolor/unorm"
)

// Linearize converts a gamma-encoded sRGB component to linear light,
// using the given gamma exponent for the power-law segment.
//
// It is total over the finite floats; inputs outside [0, 1] pass through
// the formulas and may produce out-of-domain results.
func Linearize(v, gamma float32) float32 {
	if v >= 0.04045 {
		return math32.Pow((v+0.055)/1.055, gamma)
	}
	return v / 12.92
}

// Nonlinearize converts a linear light component to gamma-encoded sRGB,
// using the given gamma exponent for the power-law segment.
// It is the inverse of [Linearize] up to float32 rounding.
func Nonlinearize(v, gamma float32) float32 {
	if v >= 0.0031308 {
		return 1.055*math32.Pow(v, 1/gamma) - 0.055
	}
	return 12.92 * v
}

// SRGBToLinear converts gamma-encoded sRGB components to linear light,
// using [DefaultGamma].
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = Linearize(r, DefaultGamma)
	gl = Linearize(g, DefaultGamma)
	bl = Linearize(b, DefaultGamma)
	return
}

// SRGBFromLinear converts linear light components to gamma-encoded sRGB,
// using [DefaultGamma].
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = Nonlinearize(rl, DefaultGamma)
	g = Nonlinearize(gl, DefaultGamma)
	b = Nonlinearize(bl, DefaultGamma)
	return
}

// LinearSRGB32 is a linear sRGB color with 3 × float32 components,
// nominally in [0, 1].
//
// Linear light is additive, making this the form best suited for
// physical calculations.
type LinearSRGB32 struct {

	// Linear red luminosity.
	R float32

	// Linear green luminosity.
	G float32

	// Linear blue luminosity.
	B float32
}

// NewLinearSRGB32 returns a new linear float32 sRGB color.
func NewLinearSRGB32(r, g, b float32) LinearSRGB32 {
	return LinearSRGB32{r, g, b}
}

// LinearSRGB32FromArray returns a new [LinearSRGB32] from an
// [r, g, b] array.
func LinearSRGB32FromArray(c [3]float32) LinearSRGB32 {
	return LinearSRGB32{c[0], c[1], c[2]}
}

// LinearSRGBA32 is a linear sRGB color with alpha, 4 × float32 components,
// nominally in [0, 1].
type LinearSRGBA32 struct {

	// Linear red luminosity.
	R float32

	// Linear green luminosity.
	G float32

	// Linear blue luminosity.
	B float32

	// Linear alpha channel.
	A float32
}

// NewLinearSRGBA32 returns a new linear float32 sRGB color with alpha.
func NewLinearSRGBA32(r, g, b, a float32) LinearSRGBA32 {
	return LinearSRGBA32{r, g, b, a}
}

// LinearSRGBA32FromArray returns a new [LinearSRGBA32] from an
// [r, g, b, a] array.
func LinearSRGBA32FromArray(c [4]float32) LinearSRGBA32 {
	return LinearSRGBA32{c[0], c[1], c[2], c[3]}
}

//////// LinearSRGB32 conversions

// ToSRGB8 applies gamma encoding and quantizes each component.
func (c LinearSRGB32) ToSRGB8() SRGB8 {
	return c.ToSRGB32().ToSRGB8()
}

// ToSRGBA8 applies gamma encoding and quantizes each component,
// adding the given linear alpha channel.
func (c LinearSRGB32) ToSRGBA8(a uint8) SRGBA8 {
	return c.ToSRGB32().ToSRGBA8(a)
}

// ToSRGB32 applies gamma encoding with [DefaultGamma].
func (c LinearSRGB32) ToSRGB32() SRGB32 {
	r, g, b := SRGBFromLinear(c.R, c.G, c.B)
	return SRGB32{r, g, b}
}

// ToSRGBA32 applies gamma encoding and adds the given linear
// alpha channel, which is not encoded.
func (c LinearSRGB32) ToSRGBA32(a float32) SRGBA32 {
	s := c.ToSRGB32()
	return SRGBA32{s.R, s.G, s.B, a}
}

// ToLinearSRGBA32 adds the given linear alpha channel.
func (c LinearSRGB32) ToLinearSRGBA32(a float32) LinearSRGBA32 {
	return LinearSRGBA32{c.R, c.G, c.B, a}
}

// ToOklab32 applies the Oklab matrix transform.
func (c LinearSRGB32) ToOklab32() Oklab32 {
	l, a, b := LinearSRGBToOklab(c.R, c.G, c.B)
	return Oklab32{l, a, b}
}

// ToOklch32 converts through [Oklab32].
func (c LinearSRGB32) ToOklch32() Oklch32 {
	return c.ToOklab32().ToOklch32()
}

// AlmostEqual reports whether each component of the two colors
// differs by at most tol.
func (c LinearSRGB32) AlmostEqual(o LinearSRGB32, tol float32) bool {
	return almostEqual(c.R, o.R, tol) && almostEqual(c.G, o.G, tol) &&
		almostEqual(c.B, o.B, tol)
}

//////// LinearSRGBA32 conversions

// ToSRGB8 applies gamma encoding and quantizes, dropping alpha.
func (c LinearSRGBA32) ToSRGB8() SRGB8 {
	return c.ToLinearSRGB32().ToSRGB8()
}

// ToSRGBA8 applies gamma encoding and quantizes the color components.
// Alpha is quantized but not encoded.
func (c LinearSRGBA32) ToSRGBA8() SRGBA8 {
	return c.ToLinearSRGB32().ToSRGBA8(uint8(unorm.FromFloat32(c.A)))
}

// ToSRGB32 applies gamma encoding, dropping alpha.
func (c LinearSRGBA32) ToSRGB32() SRGB32 {
	return c.ToLinearSRGB32().ToSRGB32()
}

// ToSRGBA32 applies gamma encoding to the color components.
// Alpha is copied unchanged.
func (c LinearSRGBA32) ToSRGBA32() SRGBA32 {
	return c.ToLinearSRGB32().ToSRGBA32(c.A)
}

// ToLinearSRGB32 drops the alpha channel.
func (c LinearSRGBA32) ToLinearSRGB32() LinearSRGB32 {
	return LinearSRGB32{c.R, c.G, c.B}
}

// ToOklab32 applies the Oklab matrix transform, dropping alpha.
func (c LinearSRGBA32) ToOklab32() Oklab32 {
	return c.ToLinearSRGB32().ToOklab32()
}

// ToOklch32 converts through [Oklab32], dropping alpha.
func (c LinearSRGBA32) ToOklch32() Oklch32 {
	return c.ToOklab32().ToOklch32()
}

// AlmostEqual reports whether each component of the two colors,
// including alpha, differs by at most tol.
func (c LinearSRGBA32) AlmostEqual(o LinearSRGBA32, tol float32) bool {
	return almostEqual(c.R, o.R, tol) && almostEqual(c.G, o.G, tol) &&
		almostEqual(c.B, o.B, tol) && almostEqual(c.A, o.A, tol)
}
