// Copyright (c) 2025, The acolor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, approximate equality).
package tolassert

import (
	"github.com/stretchr/testify/assert"
)

// Equal asserts that two numbers are equal within a tolerance of 0.001.
func Equal[T float32 | float64](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that two numbers are equal within the given tolerance.
func EqualTol[T float32 | float64](t assert.TestingT, expected T, actual T, tol T, msgAndArgs ...any) bool {
	if diff(expected, actual) <= tol {
		return true
	}
	// produces the standard not-equal failure output
	return assert.Equal(t, expected, actual, msgAndArgs...)
}

// EqualTolSlice asserts that two slices of numbers are equal within the
// given tolerance, element by element.
func EqualTolSlice[T float32 | float64](t assert.TestingT, expected []T, actual []T, tol T, msgAndArgs ...any) bool {
	if len(expected) != len(actual) {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	for i := range expected {
		if diff(expected[i], actual[i]) > tol {
			return assert.Equal(t, expected, actual, msgAndArgs...)
		}
	}
	return true
}

func diff[T float32 | float64](a, b T) T {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
