// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/andamira/acolor/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestWrappers(t *testing.T) {
	tolassert.Equal(t, float32(3), Cbrt(27))
	tolassert.Equal(t, float32(5), Hypot(3, 4))
	tolassert.Equal(t, float32(8), Pow(2, 3))
	tolassert.Equal(t, float32(Pi), Atan2(0, -1))
	tolassert.Equal(t, float32(1), Sin(Pi/2))
	tolassert.Equal(t, float32(-1), Cos(Pi))
	tolassert.Equal(t, float32(2), Sqrt(4))
	tolassert.Equal(t, float32(1.5), Abs(-1.5))
	assert.True(t, IsNaN(Sqrt(-1)))
}

func TestAngles(t *testing.T) {
	tolassert.Equal(t, float32(Pi), DegToRad(180))
	tolassert.Equal(t, float32(90), RadToDeg(Pi/2))
	tolassert.Equal(t, float32(360), RadToDeg(DegToRad(360)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, Clamp(3, 2, 5))
	assert.Equal(t, 2, Clamp(1, 2, 5))
	assert.Equal(t, 5, Clamp(7, 2, 5))
	assert.Equal(t, float32(2.5), Clamp(float32(2.5), 0, 360))

	assert.Equal(t, 2, Min(2, 5))
	assert.Equal(t, 2, Min(5, 2))
	assert.Equal(t, 5, Max(2, 5))
	assert.Equal(t, 5, Max(5, 2))
}
