// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides discrete probability distributions over the
// non-negative integers, with both direct mass-function arithmetic and
// probability generating functions. The direct forms serve as exact
// references for results recovered by generating-function inversion.
package dist // import "github.com/numstat/go-pgfinv/dist"

import "errors"

// ErrDomain is returned when a distribution parameter or an evaluation
// point is outside the distribution's domain. It is always wrapped with
// the offending parameter; test with errors.Is.
var ErrDomain = errors.New("parameter out of domain")

// A Discrete is a discrete probability distribution on the
// non-negative integers with a known probability generating function.
type Discrete interface {
	// Validate returns nil if the distribution's parameters are in
	// domain, and an error wrapping ErrDomain otherwise.
	Validate() error

	// PMF returns P(X = k). It can fail with ErrDomain if the
	// distribution's parameters or k are out of domain.
	PMF(k int) (float64, error)

	// CDF returns P(X ≤ k). It can fail with ErrDomain if the
	// distribution's parameters or k are out of domain.
	CDF(k int) (float64, error)

	// PGF returns E[z**X], the probability generating function
	// evaluated at z. It is defined at least on the closed unit
	// disk. PGF assumes the distribution's parameters are valid;
	// call Validate first when they are not known to be.
	PGF(z complex128) complex128
}
