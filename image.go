// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acolor

import (
	"image/color"

	"github.com/andamira/acolor/unorm"
)

// The color types also satisfy the standard library color interface.
var (
	_ color.Color = SRGB8{}
	_ color.Color = SRGBA8{}
	_ color.Color = SRGB32{}
	_ color.Color = SRGBA32{}
	_ color.Color = LinearSRGB32{}
	_ color.Color = LinearSRGBA32{}
	_ color.Color = Oklab32{}
	_ color.Color = Oklch32{}
)

// RGBA implements the [color.Color] interface.
func (c SRGB8) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// RGBA implements the [color.Color] interface.
// The components are premultiplied by alpha at this point,
// as [color.NRGBA] does.
func (c SRGBA8) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

// RGBA implements the [color.Color] interface,
// clamping each component to [0, 1].
func (c SRGB32) RGBA() (r, g, b, a uint32) {
	r = uint32(unorm.FromFloat32To16(c.R))
	g = uint32(unorm.FromFloat32To16(c.G))
	b = uint32(unorm.FromFloat32To16(c.B))
	a = 0xffff
	return
}

// RGBA implements the [color.Color] interface, clamping each component
// to [0, 1]. The components are premultiplied by alpha at this point.
func (c SRGBA32) RGBA() (r, g, b, a uint32) {
	r = uint32(unorm.FromFloat32To16(c.R * c.A))
	g = uint32(unorm.FromFloat32To16(c.G * c.A))
	b = uint32(unorm.FromFloat32To16(c.B * c.A))
	a = uint32(unorm.FromFloat32To16(c.A))
	return
}

// RGBA implements the [color.Color] interface,
// gamma encoding the components.
func (c LinearSRGB32) RGBA() (r, g, b, a uint32) {
	return c.ToSRGB32().RGBA()
}

// RGBA implements the [color.Color] interface,
// gamma encoding the color components.
func (c LinearSRGBA32) RGBA() (r, g, b, a uint32) {
	return c.ToSRGBA32().RGBA()
}

// RGBA implements the [color.Color] interface,
// converting through [LinearSRGB32] and [SRGB32].
func (c Oklab32) RGBA() (r, g, b, a uint32) {
	return c.ToSRGB32().RGBA()
}

// RGBA implements the [color.Color] interface,
// converting through [Oklab32].
func (c Oklch32) RGBA() (r, g, b, a uint32) {
	return c.ToSRGB32().RGBA()
}

// AsRGBA returns the color as an alpha-premultiplied [color.RGBA].
func (c SRGBA32) AsRGBA() color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

//////// From standard colors

// SRGB8FromColor converts any [color.Color], dropping alpha.
func SRGB8FromColor(c color.Color) SRGB8 {
	if s, ok := c.(SRGB8); ok {
		return s
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return SRGB8{n.R, n.G, n.B}
}

// SRGBA8FromColor converts any [color.Color],
// un-premultiplying the alpha channel.
func SRGBA8FromColor(c color.Color) SRGBA8 {
	if s, ok := c.(SRGBA8); ok {
		return s
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return SRGBA8{n.R, n.G, n.B, n.A}
}

// SRGBA32FromColor converts any [color.Color],
// un-premultiplying the alpha channel.
func SRGBA32FromColor(c color.Color) SRGBA32 {
	if s, ok := c.(SRGBA32); ok {
		return s
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return SRGBA32{}
	}
	fa := float32(a) / 65535
	return SRGBA32{
		R: float32(r) / 65535 / fa,
		G: float32(g) / 65535 / fa,
		B: float32(b) / 65535 / fa,
		A: fa,
	}
}

// SRGB32FromColor converts any [color.Color], dropping alpha.
func SRGB32FromColor(c color.Color) SRGB32 {
	if s, ok := c.(SRGB32); ok {
		return s
	}
	return SRGBA32FromColor(c).ToSRGB32()
}

// LinearSRGB32FromColor converts any [color.Color],
// linearizing the components and dropping alpha.
func LinearSRGB32FromColor(c color.Color) LinearSRGB32 {
	if s, ok := c.(LinearSRGB32); ok {
		return s
	}
	return SRGB32FromColor(c).ToLinearSRGB32()
}

// LinearSRGBA32FromColor converts any [color.Color], linearizing the
// color components and un-premultiplying the alpha channel.
func LinearSRGBA32FromColor(c color.Color) LinearSRGBA32 {
	if s, ok := c.(LinearSRGBA32); ok {
		return s
	}
	return SRGBA32FromColor(c).ToLinearSRGBA32()
}

// Oklab32FromColor converts any [color.Color], dropping alpha.
func Oklab32FromColor(c color.Color) Oklab32 {
	if s, ok := c.(Oklab32); ok {
		return s
	}
	return SRGB32FromColor(c).ToOklab32()
}

// Oklch32FromColor converts any [color.Color], dropping alpha.
func Oklch32FromColor(c color.Color) Oklch32 {
	if s, ok := c.(Oklch32); ok {
		return s
	}
	return SRGB32FromColor(c).ToOklch32()
}

//////// Models

// Standard [color.Model] values converting to each representation.
var (
	SRGB8Model         = color.ModelFunc(func(c color.Color) color.Color { return SRGB8FromColor(c) })
	SRGBA8Model        = color.ModelFunc(func(c color.Color) color.Color { return SRGBA8FromColor(c) })
	SRGB32Model        = color.ModelFunc(func(c color.Color) color.Color { return SRGB32FromColor(c) })
	SRGBA32Model       = color.ModelFunc(func(c color.Color) color.Color { return SRGBA32FromColor(c) })
	LinearSRGB32Model  = color.ModelFunc(func(c color.Color) color.Color { return LinearSRGB32FromColor(c) })
	LinearSRGBA32Model = color.ModelFunc(func(c color.Color) color.Color { return LinearSRGBA32FromColor(c) })
	Oklab32Model       = color.ModelFunc(func(c color.Color) color.Color { return Oklab32FromColor(c) })
	Oklch32Model       = color.ModelFunc(func(c color.Color) color.Color { return Oklch32FromColor(c) })
)
