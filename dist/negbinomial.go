// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// NegBinomial is a negative binomial distribution in its
// mean-dispersion parameterization: success probability p = M/(R+M),
// mass function
//
//	P(X = k) = Γ(k+R)/(Γ(R) k!) p**k (1-p)**R,
//
// mean M, and variance M(R+M)/R. As R grows the distribution
// approaches Poisson(M); small R gives heavier overdispersion.
type NegBinomial struct {
	// R is the dispersion parameter. R > 0, and non-integer values
	// are allowed. When R is a positive integer, this is the
	// classical distribution of the number of successes seen before
	// the R'th failure.
	R float64

	// M is the mean. M >= 0. M=0 concentrates all mass at zero.
	M float64
}

// Validate returns nil if d's parameters are in domain.
func (d NegBinomial) Validate() error {
	if math.IsNaN(d.R) || d.R <= 0 {
		return fmt.Errorf("negative binomial dispersion R = %v: %w", d.R, ErrDomain)
	}
	if math.IsNaN(d.M) || d.M < 0 {
		return fmt.Errorf("negative binomial mean M = %v: %w", d.M, ErrDomain)
	}
	return nil
}

// PMF returns P(X = k). It can fail with ErrDomain if d's parameters
// are invalid or k is negative.
func (d NegBinomial) PMF(k int) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if k < 0 {
		return 0, fmt.Errorf("negative binomial evaluation point k = %v: %w", k, ErrDomain)
	}
	return d.pmf(k), nil
}

func (d NegBinomial) pmf(k int) float64 {
	// 1-p computed as R/(R+M) rather than by subtraction; it stays
	// exact even when p is close to 1.
	p := d.M / (d.R + d.M)
	q := d.R / (d.R + d.M)
	lkr, _ := math.Lgamma(float64(k) + d.R)
	lr, _ := math.Lgamma(d.R)
	lk1, _ := math.Lgamma(float64(k) + 1)
	return math.Exp(lkr-lr-lk1) * math.Pow(p, float64(k)) * math.Pow(q, d.R)
}

// CDF returns P(X ≤ k), computed by summing the mass function. It can
// fail with ErrDomain if d's parameters are invalid or k is negative.
func (d NegBinomial) CDF(k int) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if k < 0 {
		return 0, fmt.Errorf("negative binomial evaluation point k = %v: %w", k, ErrDomain)
	}
	terms := make([]float64, k+1)
	for j := range terms {
		terms[j] = d.pmf(j)
	}
	return floats.Sum(terms), nil
}

// PGF returns E[z**X] = ((1-p)/(1-p*z))**d.R with p = d.M/(d.R+d.M).
// With p < 1 the base stays in the right half-plane for |z| ≤ 1, so
// the complex power never crosses a branch cut.
func (d NegBinomial) PGF(z complex128) complex128 {
	p := d.M / (d.R + d.M)
	base := complex(d.R/(d.R+d.M), 0) / (1 - complex(p, 0)*z)
	return cmplx.Pow(base, complex(d.R, 0))
}

// Mean returns d.M.
func (d NegBinomial) Mean() float64 {
	return d.M
}

func (d NegBinomial) Variance() float64 {
	return d.M * (d.R + d.M) / d.R
}
