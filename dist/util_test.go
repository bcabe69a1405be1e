// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func aeq(expect, got, tol float64) bool {
	return scalar.EqualWithinAbs(got, expect, tol)
}

// testFunc checks a mass or distribution function against a table of
// known values.
func testFunc(t *testing.T, name string, f func(int) (float64, error), vals map[int]float64) {
	t.Helper()
	for k, want := range vals {
		got, err := f(k)
		if err != nil {
			t.Errorf("%s(%d): %s", name, k, err)
		} else if !aeq(want, got, 1e-8) {
			t.Errorf("want %s(%d)=%v, got %v", name, k, want, got)
		}
	}
}
