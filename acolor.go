// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package acolor provides a handy selection of color representations,
// conversions and operations: gamma-encoded and linear sRGB with 8-bit and
// float32 components, and the perceptually uniform Oklab and Oklch spaces.
//
// All types are small value structs with exported fields, and every
// operation is a pure function: converting never mutates the source and
// never fails. Out-of-gamut results are produced silently; only the
// documented constructors clamp.
//
// The alpha channel is always linear. It is never passed through the gamma
// or Oklab transforms, only copied or quantized.
package acolor

import "github.com/andamira/acolor/math32"

// DefaultGamma is the gamma exponent used by the sRGB transfer functions.
// It approximates the standard sRGB curve with a single 2.4 exponent
// instead of the exact IEC 61966-2-1 piecewise definition, keeping numeric
// compatibility with existing consumers of these conversions.
const DefaultGamma float32 = 2.4

// almostEqual is the absolute per-component tolerance comparison
// behind the AlmostEqual methods.
func almostEqual(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}
