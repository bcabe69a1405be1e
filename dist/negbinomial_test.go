// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestNegBinomialPMF(t *testing.T) {
	// R=1 is geometric: P(X = k) = p**k (1-p).
	d := NegBinomial{R: 1, M: 1}
	testFunc(t, fmt.Sprintf("%+v.PMF", d), d.PMF,
		map[int]float64{
			0: 0.5,
			1: 0.25,
			2: 0.125,
			3: 0.0625,
		})

	// The mass function satisfies the recurrence
	// PMF(k+1)/PMF(k) = p (k+R)/(k+1).
	d = NegBinomial{R: 40, M: 10}
	p := d.M / (d.R + d.M)
	prev, err := d.PMF(0)
	if err != nil {
		t.Fatal(err)
	}
	if want := math.Pow(d.R/(d.R+d.M), d.R); !aeq(want, prev, 1e-14) {
		t.Errorf("want %+v.PMF(0)=%v, got %v", d, want, prev)
	}
	for k := 0; k < 30; k++ {
		next, err := d.PMF(k + 1)
		if err != nil {
			t.Fatal(err)
		}
		want := p * (float64(k) + d.R) / (float64(k) + 1)
		if got := next / prev; !aeq(want, got, 1e-10) {
			t.Errorf("want %+v.PMF(%d)/PMF(%d)=%v, got %v", d, k+1, k, want, got)
		}
		prev = next
	}
}

func TestNegBinomialCDF(t *testing.T) {
	d := NegBinomial{R: 40, M: 10}

	// Monotone, and 1 far into the tail.
	prev := 0.0
	for k := 0; k <= 150; k++ {
		got, err := d.CDF(k)
		if err != nil {
			t.Fatalf("%+v.CDF(%d): %s", d, k, err)
		}
		if got < prev {
			t.Errorf("%+v.CDF(%d)=%v < CDF(%d)=%v", d, k, got, k-1, prev)
		}
		prev = got
	}
	if !aeq(1, prev, 1e-12) {
		t.Errorf("want %+v.CDF(150)=1, got %v", d, prev)
	}
}

func TestNegBinomialMoments(t *testing.T) {
	d := NegBinomial{R: 40, M: 10}
	var mean, msq float64
	for k := 0; k <= 200; k++ {
		p, err := d.PMF(k)
		if err != nil {
			t.Fatal(err)
		}
		mean += float64(k) * p
		msq += float64(k) * float64(k) * p
	}
	if !aeq(d.Mean(), mean, 1e-9) {
		t.Errorf("want mean %v, got %v", d.Mean(), mean)
	}
	if v := msq - mean*mean; !aeq(d.Variance(), v, 1e-8) {
		t.Errorf("want variance %v, got %v", d.Variance(), v)
	}
}

func TestNegBinomialPointMass(t *testing.T) {
	d := NegBinomial{R: 3, M: 0}
	testFunc(t, fmt.Sprintf("%+v.PMF", d), d.PMF,
		map[int]float64{0: 1, 1: 0, 2: 0, 10: 0})
	got, err := d.CDF(5)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("want %+v.CDF(5)=1, got %v", d, got)
	}
}

func TestNegBinomialDomainErrors(t *testing.T) {
	for _, test := range []struct {
		d NegBinomial
		k int
	}{
		{NegBinomial{R: -1, M: 5}, 0},
		{NegBinomial{R: 0, M: 10}, 0},
		{NegBinomial{R: 40, M: -10}, 0},
		{NegBinomial{R: 40, M: 10}, -1},
		{NegBinomial{R: math.NaN(), M: 10}, 0},
		{NegBinomial{R: 40, M: math.NaN()}, 0},
	} {
		if _, err := test.d.PMF(test.k); !errors.Is(err, ErrDomain) {
			t.Errorf("want %+v.PMF(%d) to fail with ErrDomain, got %v", test.d, test.k, err)
		}
		if _, err := test.d.CDF(test.k); !errors.Is(err, ErrDomain) {
			t.Errorf("want %+v.CDF(%d) to fail with ErrDomain, got %v", test.d, test.k, err)
		}
	}

	if err := (NegBinomial{R: 40, M: 10}).Validate(); err != nil {
		t.Errorf("want valid parameters to validate, got %v", err)
	}
}

func TestNegBinomialPGF(t *testing.T) {
	for _, d := range []NegBinomial{
		{R: 40, M: 10},
		{R: 2.5, M: 7},
		{R: 1, M: 1},
		{R: 3, M: 0},
	} {
		if got := d.PGF(1); !aeq(1, real(got), 1e-12) || imag(got) != 0 {
			t.Errorf("want %+v.PGF(1)=1, got %v", d, got)
		}
		p0, err := d.PMF(0)
		if err != nil {
			t.Fatal(err)
		}
		if got := d.PGF(0); !aeq(p0, real(got), 1e-14) {
			t.Errorf("want %+v.PGF(0)=%v, got %v", d, p0, got)
		}
	}
}
