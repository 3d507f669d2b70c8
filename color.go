// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acolor

import (
	"github.com/andamira/acolor/unorm"
)

// Component is the constraint satisfied by the native numeric domains
// of the color representations: 8-bit unsigned integer or float32.
type Component interface {
	~uint8 | ~float32
}

// Color is the capability set shared by every color representation,
// parameterized by its native component domain (uint8 for [SRGB8] and
// [SRGBA8], float32 for the rest).
//
// Every method is a pure total function: there is no error path, and
// out-of-gamut conversion results are produced silently.
type Color[T Component] interface {

	// Red returns the red luminosity in the native component domain.
	// For Oklab and Oklch it is derived through [LinearSRGB32].
	Red() T

	// Green returns the green luminosity in the native component domain.
	Green() T

	// Blue returns the blue luminosity in the native component domain.
	Blue() T

	// Alpha returns the linear alpha channel, or the domain's opaque
	// maximum when the representation has no native alpha.
	Alpha() T

	// Luminosity returns the perceived lightness, derived through the
	// Oklab L axis unless the representation already carries it.
	Luminosity() T

	// Hue returns the hue, derived through the Oklch H angle unless the
	// representation already carries it. In the 8-bit domain the angle
	// is quantized as a fraction of the full turn.
	Hue() T

	// Array3 returns the 3 components, without alpha.
	Array3() [3]T

	// Array4 returns the 4 components, with alpha. When the
	// representation has no native alpha the opaque maximum is used.
	Array4() [4]T

	// AsSRGB8 converts to [SRGB8].
	AsSRGB8() SRGB8

	// AsSRGBA8 converts to [SRGBA8], with opaque alpha when the
	// representation has no native alpha channel.
	AsSRGBA8() SRGBA8

	// AsSRGB32 converts to [SRGB32].
	AsSRGB32() SRGB32

	// AsSRGBA32 converts to [SRGBA32], with opaque alpha when the
	// representation has no native alpha channel.
	AsSRGBA32() SRGBA32

	// AsLinearSRGB32 converts to [LinearSRGB32].
	AsLinearSRGB32() LinearSRGB32

	// AsLinearSRGBA32 converts to [LinearSRGBA32], with opaque alpha
	// when the representation has no native alpha channel.
	AsLinearSRGBA32() LinearSRGBA32

	// AsOklab32 converts to [Oklab32].
	AsOklab32() Oklab32

	// AsOklch32 converts to [Oklch32].
	AsOklch32() Oklch32
}

var (
	_ Color[uint8]   = SRGB8{}
	_ Color[uint8]   = SRGBA8{}
	_ Color[float32] = SRGB32{}
	_ Color[float32] = SRGBA32{}
	_ Color[float32] = LinearSRGB32{}
	_ Color[float32] = LinearSRGBA32{}
	_ Color[float32] = Oklab32{}
	_ Color[float32] = Oklch32{}
)

// hue8 quantizes a hue angle in degrees into the 8-bit domain,
// as a fraction of the full turn.
func hue8(h float32) uint8 {
	return uint8(unorm.FromFloat32(h / 360))
}

//////// SRGB8

// Red returns the gamma encoded red luminosity.
func (c SRGB8) Red() uint8 { return c.R }

// Green returns the gamma encoded green luminosity.
func (c SRGB8) Green() uint8 { return c.G }

// Blue returns the gamma encoded blue luminosity.
func (c SRGB8) Blue() uint8 { return c.B }

// Alpha returns the maximum opacity alpha.
func (c SRGB8) Alpha() uint8 { return 255 }

// Luminosity returns the quantized Oklab perceived lightness.
func (c SRGB8) Luminosity() uint8 { return uint8(unorm.FromFloat32(c.ToOklab32().L)) }

// Hue returns the Oklch hue quantized as a fraction of the full turn.
func (c SRGB8) Hue() uint8 { return hue8(c.ToOklch32().H) }

// Array3 returns the [r, g, b] components.
func (c SRGB8) Array3() [3]uint8 { return [3]uint8{c.R, c.G, c.B} }

// Array4 returns the [r, g, b, a] components with opaque alpha.
func (c SRGB8) Array4() [4]uint8 { return [4]uint8{c.R, c.G, c.B, 255} }

// AsSRGB8 is a no-op.
func (c SRGB8) AsSRGB8() SRGB8                 { return c }
func (c SRGB8) AsSRGBA8() SRGBA8               { return c.ToSRGBA8(255) }
func (c SRGB8) AsSRGB32() SRGB32               { return c.ToSRGB32() }
func (c SRGB8) AsSRGBA32() SRGBA32             { return c.ToSRGBA32(1) }
func (c SRGB8) AsLinearSRGB32() LinearSRGB32   { return c.ToLinearSRGB32() }
func (c SRGB8) AsLinearSRGBA32() LinearSRGBA32 { return c.ToLinearSRGBA32(1) }
func (c SRGB8) AsOklab32() Oklab32             { return c.ToOklab32() }
func (c SRGB8) AsOklch32() Oklch32             { return c.ToOklch32() }

//////// SRGBA8

// Red returns the gamma encoded red luminosity.
func (c SRGBA8) Red() uint8 { return c.R }

// Green returns the gamma encoded green luminosity.
func (c SRGBA8) Green() uint8 { return c.G }

// Blue returns the gamma encoded blue luminosity.
func (c SRGBA8) Blue() uint8 { return c.B }

// Alpha returns the linear alpha channel.
func (c SRGBA8) Alpha() uint8 { return c.A }

// Luminosity returns the quantized Oklab perceived lightness.
func (c SRGBA8) Luminosity() uint8 { return uint8(unorm.FromFloat32(c.ToOklab32().L)) }

// Hue returns the Oklch hue quantized as a fraction of the full turn.
func (c SRGBA8) Hue() uint8 { return hue8(c.ToOklch32().H) }

// Array3 returns the [r, g, b] components, without alpha.
func (c SRGBA8) Array3() [3]uint8 { return [3]uint8{c.R, c.G, c.B} }

// Array4 returns the [r, g, b, a] components.
func (c SRGBA8) Array4() [4]uint8 { return [4]uint8{c.R, c.G, c.B, c.A} }

func (c SRGBA8) AsSRGB8() SRGB8 { return c.ToSRGB8() }

// AsSRGBA8 is a no-op.
func (c SRGBA8) AsSRGBA8() SRGBA8               { return c }
func (c SRGBA8) AsSRGB32() SRGB32               { return c.ToSRGB32() }
func (c SRGBA8) AsSRGBA32() SRGBA32             { return c.ToSRGBA32() }
func (c SRGBA8) AsLinearSRGB32() LinearSRGB32   { return c.ToLinearSRGB32() }
func (c SRGBA8) AsLinearSRGBA32() LinearSRGBA32 { return c.ToLinearSRGBA32() }
func (c SRGBA8) AsOklab32() Oklab32             { return c.ToOklab32() }
func (c SRGBA8) AsOklch32() Oklch32             { return c.ToOklch32() }

//////// SRGB32

// Red returns the gamma encoded red luminosity.
func (c SRGB32) Red() float32 { return c.R }

// Green returns the gamma encoded green luminosity.
func (c SRGB32) Green() float32 { return c.G }

// Blue returns the gamma encoded blue luminosity.
func (c SRGB32) Blue() float32 { return c.B }

// Alpha returns the maximum opacity alpha.
func (c SRGB32) Alpha() float32 { return 1 }

// Luminosity returns the Oklab perceived lightness.
func (c SRGB32) Luminosity() float32 { return c.ToOklab32().L }

// Hue returns the Oklch hue in degrees.
func (c SRGB32) Hue() float32 { return c.ToOklch32().H }

// Array3 returns the [r, g, b] components.
func (c SRGB32) Array3() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Array4 returns the [r, g, b, a] components with opaque alpha.
func (c SRGB32) Array4() [4]float32 { return [4]float32{c.R, c.G, c.B, 1} }

func (c SRGB32) AsSRGB8() SRGB8   { return c.ToSRGB8() }
func (c SRGB32) AsSRGBA8() SRGBA8 { return c.ToSRGBA8(255) }

// AsSRGB32 is a no-op.
func (c SRGB32) AsSRGB32() SRGB32               { return c }
func (c SRGB32) AsSRGBA32() SRGBA32             { return c.ToSRGBA32(1) }
func (c SRGB32) AsLinearSRGB32() LinearSRGB32   { return c.ToLinearSRGB32() }
func (c SRGB32) AsLinearSRGBA32() LinearSRGBA32 { return c.ToLinearSRGBA32(1) }
func (c SRGB32) AsOklab32() Oklab32             { return c.ToOklab32() }
func (c SRGB32) AsOklch32() Oklch32             { return c.ToOklch32() }

//////// SRGBA32

// Red returns the gamma encoded red luminosity.
func (c SRGBA32) Red() float32 { return c.R }

// Green returns the gamma encoded green luminosity.
func (c SRGBA32) Green() float32 { return c.G }

// Blue returns the gamma encoded blue luminosity.
func (c SRGBA32) Blue() float32 { return c.B }

// Alpha returns the linear alpha channel.
func (c SRGBA32) Alpha() float32 { return c.A }

// Luminosity returns the Oklab perceived lightness.
func (c SRGBA32) Luminosity() float32 { return c.ToOklab32().L }

// Hue returns the Oklch hue in degrees.
func (c SRGBA32) Hue() float32 { return c.ToOklch32().H }

// Array3 returns the [r, g, b] components, without alpha.
func (c SRGBA32) Array3() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Array4 returns the [r, g, b, a] components.
func (c SRGBA32) Array4() [4]float32 { return [4]float32{c.R, c.G, c.B, c.A} }

func (c SRGBA32) AsSRGB8() SRGB8   { return c.ToSRGB8() }
func (c SRGBA32) AsSRGBA8() SRGBA8 { return c.ToSRGBA8() }
func (c SRGBA32) AsSRGB32() SRGB32 { return c.ToSRGB32() }

// AsSRGBA32 is a no-op.
func (c SRGBA32) AsSRGBA32() SRGBA32             { return c }
func (c SRGBA32) AsLinearSRGB32() LinearSRGB32   { return c.ToLinearSRGB32() }
func (c SRGBA32) AsLinearSRGBA32() LinearSRGBA32 { return c.ToLinearSRGBA32() }
func (c SRGBA32) AsOklab32() Oklab32             { return c.ToOklab32() }
func (c SRGBA32) AsOklch32() Oklch32             { return c.ToOklch32() }

//////// LinearSRGB32

// Red returns the linear red luminosity.
func (c LinearSRGB32) Red() float32 { return c.R }

// Green returns the linear green luminosity.
func (c LinearSRGB32) Green() float32 { return c.G }

// Blue returns the linear blue luminosity.
func (c LinearSRGB32) Blue() float32 { return c.B }

// Alpha returns the maximum opacity alpha.
func (c LinearSRGB32) Alpha() float32 { return 1 }

// Luminosity returns the Oklab perceived lightness.
func (c LinearSRGB32) Luminosity() float32 { return c.ToOklab32().L }

// Hue returns the Oklch hue in degrees.
func (c LinearSRGB32) Hue() float32 { return c.ToOklch32().H }

// Array3 returns the [r, g, b] components.
func (c LinearSRGB32) Array3() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Array4 returns the [r, g, b, a] components with opaque alpha.
func (c LinearSRGB32) Array4() [4]float32 { return [4]float32{c.R, c.G, c.B, 1} }

func (c LinearSRGB32) AsSRGB8() SRGB8     { return c.ToSRGB8() }
func (c LinearSRGB32) AsSRGBA8() SRGBA8   { return c.ToSRGBA8(255) }
func (c LinearSRGB32) AsSRGB32() SRGB32   { return c.ToSRGB32() }
func (c LinearSRGB32) AsSRGBA32() SRGBA32 { return c.ToSRGBA32(1) }

// AsLinearSRGB32 is a no-op.
func (c LinearSRGB32) AsLinearSRGB32() LinearSRGB32   { return c }
func (c LinearSRGB32) AsLinearSRGBA32() LinearSRGBA32 { return c.ToLinearSRGBA32(1) }
func (c LinearSRGB32) AsOklab32() Oklab32             { return c.ToOklab32() }
func (c LinearSRGB32) AsOklch32() Oklch32             { return c.ToOklch32() }

//////// LinearSRGBA32

// Red returns the linear red luminosity.
func (c LinearSRGBA32) Red() float32 { return c.R }

// Green returns the linear green luminosity.
func (c LinearSRGBA32) Green() float32 { return c.G }

// Blue returns the linear blue luminosity.
func (c LinearSRGBA32) Blue() float32 { return c.B }

// Alpha returns the linear alpha channel.
func (c LinearSRGBA32) Alpha() float32 { return c.A }

// Luminosity returns the Oklab perceived lightness.
func (c LinearSRGBA32) Luminosity() float32 { return c.ToOklab32().L }

// Hue returns the Oklch hue in degrees.
func (c LinearSRGBA32) Hue() float32 { return c.ToOklch32().H }

// Array3 returns the [r, g, b] components, without alpha.
func (c LinearSRGBA32) Array3() [3]float32 { return [3]float32{c.R, c.G, c.B} }

// Array4 returns the [r, g, b, a] components.
func (c LinearSRGBA32) Array4() [4]float32 { return [4]float32{c.R, c.G, c.B, c.A} }

func (c LinearSRGBA32) AsSRGB8() SRGB8               { return c.ToSRGB8() }
func (c LinearSRGBA32) AsSRGBA8() SRGBA8             { return c.ToSRGBA8() }
func (c LinearSRGBA32) AsSRGB32() SRGB32             { return c.ToSRGB32() }
func (c LinearSRGBA32) AsSRGBA32() SRGBA32           { return c.ToSRGBA32() }
func (c LinearSRGBA32) AsLinearSRGB32() LinearSRGB32 { return c.ToLinearSRGB32() }

// AsLinearSRGBA32 is a no-op.
func (c LinearSRGBA32) AsLinearSRGBA32() LinearSRGBA32 { return c }
func (c LinearSRGBA32) AsOklab32() Oklab32             { return c.ToOklab32() }
func (c LinearSRGBA32) AsOklch32() Oklch32             { return c.ToOklch32() }

//////// Oklab32

// Red returns the linear red luminosity, after converting
// to [LinearSRGB32].
func (c Oklab32) Red() float32 { return c.ToLinearSRGB32().R }

// Green returns the linear green luminosity, after converting
// to [LinearSRGB32].
func (c Oklab32) Green() float32 { return c.ToLinearSRGB32().G }

// Blue returns the linear blue luminosity, after converting
// to [LinearSRGB32].
func (c Oklab32) Blue() float32 { return c.ToLinearSRGB32().B }

// Alpha returns the maximum opacity alpha.
func (c Oklab32) Alpha() float32 { return 1 }

// Luminosity returns the perceived lightness.
func (c Oklab32) Luminosity() float32 { return c.L }

// Hue returns the Oklch hue in degrees.
func (c Oklab32) Hue() float32 { return c.ToOklch32().H }

// Array3 returns the [l, a, b] components.
func (c Oklab32) Array3() [3]float32 { return [3]float32{c.L, c.A, c.B} }

// Array4 returns the [l, a, b, alpha] components with opaque alpha.
func (c Oklab32) Array4() [4]float32 { return [4]float32{c.L, c.A, c.B, 1} }

func (c Oklab32) AsSRGB8() SRGB8                 { return c.ToSRGB8() }
func (c Oklab32) AsSRGBA8() SRGBA8               { return c.ToSRGBA8(255) }
func (c Oklab32) AsSRGB32() SRGB32               { return c.ToSRGB32() }
func (c Oklab32) AsSRGBA32() SRGBA32             { return c.ToSRGBA32(1) }
func (c Oklab32) AsLinearSRGB32() LinearSRGB32   { return c.ToLinearSRGB32() }
func (c Oklab32) AsLinearSRGBA32() LinearSRGBA32 { return c.ToLinearSRGBA32(1) }

// AsOklab32 is a no-op.
func (c Oklab32) AsOklab32() Oklab32 { return c }
func (c Oklab32) AsOklch32() Oklch32 { return c.ToOklch32() }

//////// Oklch32

// Red returns the linear red luminosity, after converting
// to [LinearSRGB32].
func (c Oklch32) Red() float32 { return c.ToLinearSRGB32().R }

// Green returns the linear green luminosity, after converting
// to [LinearSRGB32].
func (c Oklch32) Green() float32 { return c.ToLinearSRGB32().G }

// Blue returns the linear blue luminosity, after converting
// to [LinearSRGB32].
func (c Oklch32) Blue() float32 { return c.ToLinearSRGB32().B }

// Alpha returns the maximum opacity alpha.
func (c Oklch32) Alpha() float32 { return 1 }

// Luminosity returns the perceived lightness.
func (c Oklch32) Luminosity() float32 { return c.L }

// Hue returns the hue in degrees.
func (c Oklch32) Hue() float32 { return c.H }

// Array3 returns the [l, c, h] components.
func (c Oklch32) Array3() [3]float32 { return [3]float32{c.L, c.C, c.H} }

// Array4 returns the [l, c, h, alpha] components with opaque alpha.
func (c Oklch32) Array4() [4]float32 { return [4]float32{c.L, c.C, c.H, 1} }

func (c Oklch32) AsSRGB8() SRGB8                 { return c.ToSRGB8() }
func (c Oklch32) AsSRGBA8() SRGBA8               { return c.ToSRGBA8(255) }
func (c Oklch32) AsSRGB32() SRGB32               { return c.ToSRGB32() }
func (c Oklch32) AsSRGBA32() SRGBA32             { return c.ToSRGBA32(1) }
func (c Oklch32) AsLinearSRGB32() LinearSRGB32   { return c.ToLinearSRGB32() }
func (c Oklch32) AsLinearSRGBA32() LinearSRGBA32 { return c.ToLinearSRGBA32(1) }
func (c Oklch32) AsOklab32() Oklab32             { return c.ToOklab32() }

// AsOklch32 is a no-op.
func (c Oklch32) AsOklch32() Oklch32 { return c }
