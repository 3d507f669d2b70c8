// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unorm implements unsigned normalized integers: fixed-size
// integer codes for float values in the [0, 1] range.
package unorm

// Unorm8 is an 8-bit unsigned integer representing a normalized
// value in the [0, 1] range, where 0 maps to 0.0 and 255 maps to 1.0.
type Unorm8 uint8

// FromFloat32 quantizes x into a [Unorm8], rounding to the nearest code
// and saturating for inputs outside [0, 1]. NaN maps to 0.
// It is the round-trip inverse of [Unorm8.ToFloat32] for all 256 codes.
func FromFloat32(x float32) Unorm8 {
	if !(x > 0) { // also catches NaN
		return 0
	}
	if x >= 1 {
		return 255
	}
	return Unorm8(x*255 + 0.5)
}

// ToFloat32 maps the code linearly onto [0, 1].
func (u Unorm8) ToFloat32() float32 {
	return float32(u) / 255
}

// Unorm16 is a 16-bit unsigned integer representing a normalized
// value in the [0, 1] range, where 0 maps to 0.0 and 65535 maps to 1.0.
// It matches the channel range of the standard image/color interfaces.
type Unorm16 uint16

// FromFloat32To16 quantizes x into a [Unorm16], rounding to the nearest
// code and saturating for inputs outside [0, 1]. NaN maps to 0.
func FromFloat32To16(x float32) Unorm16 {
	if !(x > 0) {
		return 0
	}
	if x >= 1 {
		return 65535
	}
	return Unorm16(x*65535 + 0.5)
}

// ToFloat32 maps the code linearly onto [0, 1].
func (u Unorm16) ToFloat32() float32 {
	return float32(u) / 65535
}
