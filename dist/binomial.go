// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"
)

// Binomial is the distribution of the number of successes in N
// independent Bernoulli trials.
type Binomial struct {
	// N is the number of trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// Validate returns nil if d's parameters are in domain.
func (d Binomial) Validate() error {
	if d.N < 0 {
		return fmt.Errorf("binomial trials N = %v: %w", d.N, ErrDomain)
	}
	if math.IsNaN(d.P) || d.P < 0 || d.P > 1 {
		return fmt.Errorf("binomial success probability P = %v: %w", d.P, ErrDomain)
	}
	return nil
}

// PMF is the probability of exactly k successes in d.N trials. It can
// fail with ErrDomain if d's parameters are invalid or k is outside
// [0, d.N].
func (d Binomial) PMF(k int) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if k < 0 || k > d.N {
		return 0, fmt.Errorf("binomial evaluation point k = %v: %w", k, ErrDomain)
	}
	return d.pmf(k), nil
}

func (d Binomial) pmf(k int) float64 {
	lc := combin.LogGeneralizedBinomial(float64(d.N), float64(k))
	return math.Exp(lc) * math.Pow(d.P, float64(k)) * math.Pow(1-d.P, float64(d.N-k))
}

// CDF is the probability of k or fewer successes in d.N trials,
// computed by summing the mass function. It can fail with ErrDomain if
// d's parameters are invalid or k is outside [0, d.N].
func (d Binomial) CDF(k int) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if k < 0 || k > d.N {
		return 0, fmt.Errorf("binomial evaluation point k = %v: %w", k, ErrDomain)
	}
	terms := make([]float64, k+1)
	for j := range terms {
		terms[j] = d.pmf(j)
	}
	return floats.Sum(terms), nil
}

// PGF returns E[z**X] = (1 - d.P + d.P*z)**d.N.
func (d Binomial) PGF(z complex128) complex128 {
	base := complex(1-d.P, 0) + complex(d.P, 0)*z
	return cmplx.Pow(base, complex(float64(d.N), 0))
}

func (d Binomial) Mean() float64 {
	return float64(d.N) * d.P
}

func (d Binomial) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}
