// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acolor

import (
	"github.com/andamira/acolor/unorm"
)

// SRGB8 is a gamma-encoded sRGB color with 3 × uint8 components.
//
// It is the form best suited for saving to a final graphics buffer.
// Alpha is implicitly maximal.
type SRGB8 struct {

	// Gamma encoded red luminosity.
	R uint8

	// Gamma encoded green luminosity.
	G uint8

	// Gamma encoded blue luminosity.
	B uint8
}

// NewSRGB8 returns a new gamma-encoded 8-bit sRGB color.
func NewSRGB8(r, g, b uint8) SRGB8 {
	return SRGB8{r, g, b}
}

// SRGB8FromArray returns a new [SRGB8] from an [r, g, b] array.
func SRGB8FromArray(c [3]uint8) SRGB8 {
	return SRGB8{c[0], c[1], c[2]}
}

// SRGBA8 is a gamma-encoded sRGB color with alpha, 4 × uint8 components.
//
// The alpha channel is linear, not gamma-encoded.
type SRGBA8 struct {

	// Gamma encoded red luminosity.
	R uint8

	// Gamma encoded green luminosity.
	G uint8

	// Gamma encoded blue luminosity.
	B uint8

	// Linear alpha channel.
	A uint8
}

// NewSRGBA8 returns a new gamma-encoded 8-bit sRGB color with alpha.
func NewSRGBA8(r, g, b, a uint8) SRGBA8 {
	return SRGBA8{r, g, b, a}
}

// SRGBA8FromArray returns a new [SRGBA8] from an [r, g, b, a] array.
func SRGBA8FromArray(c [4]uint8) SRGBA8 {
	return SRGBA8{c[0], c[1], c[2], c[3]}
}

// SRGB32 is a gamma-encoded sRGB color with 3 × float32 components
// normalized to [0, 1].
type SRGB32 struct {

	// Gamma encoded red luminosity.
	R float32

	// Gamma encoded green luminosity.
	G float32

	// Gamma encoded blue luminosity.
	B float32
}

// NewSRGB32 returns a new gamma-encoded float32 sRGB color.
func NewSRGB32(r, g, b float32) SRGB32 {
	return SRGB32{r, g, b}
}

// SRGB32FromArray returns a new [SRGB32] from an [r, g, b] array.
func SRGB32FromArray(c [3]float32) SRGB32 {
	return SRGB32{c[0], c[1], c[2]}
}

// SRGBA32 is a gamma-encoded sRGB color with alpha, 4 × float32 components
// normalized to [0, 1].
//
// The alpha channel is linear, not gamma-encoded.
type SRGBA32 struct {

	// Gamma encoded red luminosity.
	R float32

	// Gamma encoded green luminosity.
	G float32

	// Gamma encoded blue luminosity.
	B float32

	// Linear alpha channel.
	A float32
}

// NewSRGBA32 returns a new gamma-encoded float32 sRGB color with alpha.
func NewSRGBA32(r, g, b, a float32) SRGBA32 {
	return SRGBA32{r, g, b, a}
}

// SRGBA32FromArray returns a new [SRGBA32] from an [r, g, b, a] array.
func SRGBA32FromArray(c [4]float32) SRGBA32 {
	return SRGBA32{c[0], c[1], c[2], c[3]}
}

//////// SRGB8 conversions

// ToSRGBA8 adds the given linear alpha channel.
func (c SRGB8) ToSRGBA8(a uint8) SRGBA8 {
	return SRGBA8{c.R, c.G, c.B, a}
}

// ToSRGB32 dequantizes each component onto [0, 1].
func (c SRGB8) ToSRGB32() SRGB32 {
	return SRGB32{
		R: unorm.Unorm8(c.R).ToFloat32(),
		G: unorm.Unorm8(c.G).ToFloat32(),
		B: unorm.Unorm8(c.B).ToFloat32(),
	}
}

// ToSRGBA32 dequantizes each component onto [0, 1]
// and adds the given linear alpha channel.
func (c SRGB8) ToSRGBA32(a float32) SRGBA32 {
	s := c.ToSRGB32()
	return SRGBA32{s.R, s.G, s.B, a}
}

// ToLinearSRGB32 dequantizes and linearizes the components.
func (c SRGB8) ToLinearSRGB32() LinearSRGB32 {
	return c.ToSRGB32().ToLinearSRGB32()
}

// ToLinearSRGBA32 dequantizes and linearizes the components
// and adds the given linear alpha channel, which is not linearized.
func (c SRGB8) ToLinearSRGBA32(a float32) LinearSRGBA32 {
	return c.ToSRGB32().ToLinearSRGBA32(a)
}

// ToOklab32 converts through [SRGB32] and [LinearSRGB32].
func (c SRGB8) ToOklab32() Oklab32 {
	return c.ToSRGB32().ToLinearSRGB32().ToOklab32()
}

// ToOklch32 converts through [SRGB32], [LinearSRGB32] and [Oklab32].
func (c SRGB8) ToOklch32() Oklch32 {
	return c.ToOklab32().ToOklch32()
}

//////// SRGBA8 conversions

// ToSRGB8 drops the alpha channel.
func (c SRGBA8) ToSRGB8() SRGB8 {
	return SRGB8{c.R, c.G, c.B}
}

// ToSRGB32 dequantizes each component onto [0, 1], dropping alpha.
func (c SRGBA8) ToSRGB32() SRGB32 {
	return c.ToSRGB8().ToSRGB32()
}

// ToSRGBA32 dequantizes each component onto [0, 1], including alpha.
func (c SRGBA8) ToSRGBA32() SRGBA32 {
	s := c.ToSRGB8().ToSRGB32()
	return SRGBA32{s.R, s.G, s.B, unorm.Unorm8(c.A).ToFloat32()}
}

// ToLinearSRGB32 dequantizes and linearizes the components, dropping alpha.
func (c SRGBA8) ToLinearSRGB32() LinearSRGB32 {
	return c.ToSRGB32().ToLinearSRGB32()
}

// ToLinearSRGBA32 dequantizes and linearizes the color components.
// Alpha is dequantized but not linearized.
func (c SRGBA8) ToLinearSRGBA32() LinearSRGBA32 {
	return c.ToSRGB32().ToLinearSRGBA32(unorm.Unorm8(c.A).ToFloat32())
}

// ToOklab32 converts through [SRGB32] and [LinearSRGB32], dropping alpha.
func (c SRGBA8) ToOklab32() Oklab32 {
	return c.ToSRGB32().ToLinearSRGB32().ToOklab32()
}

// ToOklch32 converts through [Oklab32], dropping alpha.
func (c SRGBA8) ToOklch32() Oklch32 {
	return c.ToOklab32().ToOklch32()
}

//////// SRGB32 conversions

// ToSRGB8 quantizes each component, rounding to nearest and saturating.
func (c SRGB32) ToSRGB8() SRGB8 {
	return SRGB8{
		R: uint8(unorm.FromFloat32(c.R)),
		G: uint8(unorm.FromFloat32(c.G)),
		B: uint8(unorm.FromFloat32(c.B)),
	}
}

// ToSRGBA8 quantizes each component and adds the given linear alpha channel.
func (c SRGB32) ToSRGBA8(a uint8) SRGBA8 {
	return c.ToSRGB8().ToSRGBA8(a)
}

// ToSRGBA32 adds the given linear alpha channel.
func (c SRGB32) ToSRGBA32(a float32) SRGBA32 {
	return SRGBA32{c.R, c.G, c.B, a}
}

// ToLinearSRGB32 linearizes the components with [DefaultGamma].
func (c SRGB32) ToLinearSRGB32() LinearSRGB32 {
	r, g, b := SRGBToLinear(c.R, c.G, c.B)
	return LinearSRGB32{r, g, b}
}

// ToLinearSRGBA32 linearizes the components with [DefaultGamma]
// and adds the given linear alpha channel, which is not linearized.
func (c SRGB32) ToLinearSRGBA32(a float32) LinearSRGBA32 {
	r, g, b := SRGBToLinear(c.R, c.G, c.B)
	return LinearSRGBA32{r, g, b, a}
}

// ToOklab32 converts through [LinearSRGB32].
func (c SRGB32) ToOklab32() Oklab32 {
	return c.ToLinearSRGB32().ToOklab32()
}

// ToOklch32 converts through [LinearSRGB32] and [Oklab32].
func (c SRGB32) ToOklch32() Oklch32 {
	return c.ToOklab32().ToOklch32()
}

//////// SRGBA32 conversions

// ToSRGB8 quantizes each component, dropping alpha.
func (c SRGBA32) ToSRGB8() SRGB8 {
	return c.ToSRGB32().ToSRGB8()
}

// ToSRGBA8 quantizes each component, including alpha.
func (c SRGBA32) ToSRGBA8() SRGBA8 {
	s := c.ToSRGB32().ToSRGB8()
	return SRGBA8{s.R, s.G, s.B, uint8(unorm.FromFloat32(c.A))}
}

// ToSRGB32 drops the alpha channel.
func (c SRGBA32) ToSRGB32() SRGB32 {
	return SRGB32{c.R, c.G, c.B}
}

// ToLinearSRGB32 linearizes the color components, dropping alpha.
func (c SRGBA32) ToLinearSRGB32() LinearSRGB32 {
	return c.ToSRGB32().ToLinearSRGB32()
}

// ToLinearSRGBA32 linearizes the color components.
// Alpha is copied unchanged.
func (c SRGBA32) ToLinearSRGBA32() LinearSRGBA32 {
	return c.ToSRGB32().ToLinearSRGBA32(c.A)
}

// ToOklab32 converts through [LinearSRGB32], dropping alpha.
func (c SRGBA32) ToOklab32() Oklab32 {
	return c.ToSRGB32().ToOklab32()
}

// ToOklch32 converts through [Oklab32], dropping alpha.
func (c SRGBA32) ToOklch32() Oklch32 {
	return c.ToOklab32().ToOklch32()
}

// AlmostEqual reports whether each component of the two colors,
// including alpha, differs by at most tol.
func (c SRGBA32) AlmostEqual(o SRGBA32, tol float32) bool {
	return almostEqual(c.R, o.R, tol) && almostEqual(c.G, o.G, tol) &&
		almostEqual(c.B, o.B, tol) && almostEqual(c.A, o.A, tol)
}

// AlmostEqual reports whether each component of the two colors
// differs by at most tol.
func (c SRGB32) AlmostEqual(o SRGB32, tol float32) bool {
	return almostEqual(c.R, o.R, tol) && almostEqual(c.G, o.G, tol) &&
		almostEqual(c.B, o.B, tol)
}
