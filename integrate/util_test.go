// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import "gonum.org/v1/gonum/floats/scalar"

func aeq(expect, got, tol float64) bool {
	return scalar.EqualWithinAbs(got, expect, tol)
}
