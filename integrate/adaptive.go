// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrate provides adaptive numerical integration of real
// functions over bounded intervals at a configurable target precision.
package integrate // import "github.com/numstat/go-pgfinv/integrate"

import (
	"container/heap"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// DefaultDigits is the target precision, in significant decimal digits,
// used when Adaptive.Digits is zero. It matches the precision float64
// arithmetic can resolve.
const DefaultDigits = 15

const (
	defaultPoints   = 21
	defaultMaxSteps = 2000
	defaultMaxDepth = 48
)

// Adaptive integrates functions of one real variable over a bounded
// interval, subdividing the interval where the integrand is hard and
// leaving it coarse where it is easy.
//
// Each subinterval ("panel") is estimated twice, with Gauss-Legendre
// rules of Points and 2*Points+1 nodes; the difference between the two
// estimates bounds the local error and the finer estimate is kept. The
// panel with the largest bound is bisected until the summed bound
// reaches the tolerance implied by Digits. Gauss-Legendre rules are
// open: a panel's endpoints are never evaluated, so an integrand with a
// removable singularity at an interval endpoint integrates without any
// special-casing of the singular point. An integrand that is undefined
// at an isolated interior point also recovers, because subdivision
// turns the offending point into a panel endpoint.
//
// The zero value of Adaptive is a reasonable default configuration. An
// Adaptive is an immutable value and Integrate keeps all working state
// on its own stack, so distinct calls, including concurrent calls with
// different configurations, are fully independent.
type Adaptive struct {
	// Digits is the target precision in significant decimal digits:
	// refinement stops once the estimated absolute error is at most
	// 10**-Digits. If Digits is zero, DefaultDigits is used.
	//
	// float64 arithmetic carries just under 16 significant digits, so
	// targets much beyond DefaultDigits are not generally reachable;
	// when the error bound cannot be improved at machine resolution
	// the failure is reported as a *NumericalError rather than
	// returning an estimate that silently misses the target.
	Digits int

	// Points is the node count of the base Gauss-Legendre rule
	// applied to each panel. If zero, 21 is used. The refined
	// estimate uses 2*Points+1 nodes.
	Points int

	// MaxSteps bounds the number of refinement steps (panel
	// bisections) before Integrate gives up with a *NumericalError.
	// If zero, 2000 is used. Convergence that slow means the
	// integrand, not the grid, is the problem.
	MaxSteps int

	// MaxDepth bounds how many times any single panel may be
	// bisected. If zero, 48 is used. A panel at full default depth
	// spans under 4e-15 of the original interval; needing one means
	// the integrand has a genuine, non-removable singularity.
	MaxDepth int
}

// A NumericalError reports that adaptive refinement could not reach the
// requested precision within its budget. It carries the best estimate
// so that slow convergence can be told apart from outright divergence,
// but the estimate has not converged and must not be used as a result.
type NumericalError struct {
	Estimate float64 // best available estimate of the integral
	ErrBound float64 // estimated absolute error of Estimate
	Tol      float64 // requested absolute tolerance
	Steps    int     // refinement steps performed
	Depth    int     // deepest panel bisection reached
	A, B     float64 // the integration interval
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("integral over [%g, %g] did not converge: %g ± %g after %d steps (depth %d), want error ≤ %g",
		e.A, e.B, e.Estimate, e.ErrBound, e.Steps, e.Depth, e.Tol)
}

// Integrate estimates the integral of f from a to b to opt's target
// precision. If a > b the orientation convention applies: the result is
// the negated integral from b to a.
//
// f is never evaluated at a, at b, or at any panel endpoint, and it is
// evaluated nowhere outside (a, b). A non-finite value returned by f
// poisons its panel and drives subdivision toward the offending region.
//
// On failure the returned value is 0 and the error is a *NumericalError
// carrying the best estimate, the achieved error bound, and the
// refinement diagnostics. Non-finite bounds fail immediately the same
// way, since no finite panel can cover them. Integrate panics if opt
// holds a negative option value.
func (opt Adaptive) Integrate(f func(float64) float64, a, b float64) (float64, error) {
	const debug = false

	if a == b {
		return 0, nil
	}
	if a > b {
		v, err := opt.Integrate(f, b, a)
		return -v, err
	}

	digits, points, maxSteps, maxDepth := opt.Digits, opt.Points, opt.MaxSteps, opt.MaxDepth
	if digits == 0 {
		digits = DefaultDigits
	}
	if points == 0 {
		points = defaultPoints
	}
	if maxSteps == 0 {
		maxSteps = defaultMaxSteps
	}
	if maxDepth == 0 {
		maxDepth = defaultMaxDepth
	}
	if digits < 1 || points < 1 || maxSteps < 1 || maxDepth < 1 {
		panic("integrate: negative Adaptive option")
	}
	tol := math.Pow(10, -float64(digits))
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return 0, &NumericalError{ErrBound: math.Inf(1), Tol: tol, A: a, B: b}
	}

	in := newIntegrator(f, points)
	var q panelQueue
	first := panel{a: a, b: b}
	in.estimate(&first)
	heap.Push(&q, first)

	steps, deepest := 0, 0
	est, bound := q.totals()
	for bound > tol {
		fail := &NumericalError{
			Estimate: est, ErrBound: bound, Tol: tol,
			Steps: steps, Depth: deepest, A: a, B: b,
		}
		if steps >= maxSteps {
			return 0, fail
		}
		worst := heap.Pop(&q).(panel)
		mid := worst.a + (worst.b-worst.a)/2
		if worst.depth >= maxDepth || // genuine singularity: bisection cannot help
			mid <= worst.a || mid >= worst.b || // panel no longer bisectable in float64
			worst.err <= panelFloor(worst.est) { // at machine resolution, yet over budget
			heap.Push(&q, worst)
			return 0, fail
		}
		left := panel{a: worst.a, b: mid, depth: worst.depth + 1}
		right := panel{a: mid, b: worst.b, depth: worst.depth + 1}
		in.estimate(&left)
		in.estimate(&right)
		heap.Push(&q, left)
		heap.Push(&q, right)
		if worst.depth+1 > deepest {
			deepest = worst.depth + 1
		}
		steps++
		// Resum rather than update incrementally: a poisoned panel
		// carries an infinite bound that incremental updates cannot
		// cancel back out.
		est, bound = q.totals()
		if debug {
			fmt.Printf("step %d: split [%g, %g] at depth %d; total %g ± %g over %d panels\n",
				steps, worst.a, worst.b, worst.depth, est, bound, len(q))
		}
	}
	return est, nil
}

// panelFloor is the smallest local error bound float64 can resolve for
// a panel estimate; refining below it only reshuffles rounding error.
func panelFloor(est float64) float64 {
	const eps = 0x1p-52
	return 4 * eps * math.Abs(est)
}

// A panel is one subinterval of the integration domain together with
// its refined estimate and local error bound.
type panel struct {
	a, b  float64
	est   float64 // estimate from the 2*Points+1 node rule
	err   float64 // difference between the refined and base estimates
	depth int     // bisections between the original interval and this panel
}

// panelQueue is a worst-first heap of panels ordered by error bound.
type panelQueue []panel

func (q panelQueue) Len() int           { return len(q) }
func (q panelQueue) Less(i, j int) bool { return q[i].err > q[j].err }
func (q panelQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *panelQueue) Push(x any) { *q = append(*q, x.(panel)) }

func (q *panelQueue) Pop() any {
	old := *q
	n := len(old)
	p := old[n-1]
	*q = old[:n-1]
	return p
}

func (q panelQueue) totals() (est, bound float64) {
	for _, p := range q {
		est += p.est
		bound += p.err
	}
	return est, bound
}

// An integrator holds the integrand and the node, weight, and value
// buffers for one Integrate call. Buffers are sized for the refined
// rule and shared by both rules of every panel.
type integrator struct {
	f        func(float64) float64
	rule     quad.Legendre
	x, w, fx []float64
	base     int
}

func newIntegrator(f func(float64) float64, points int) *integrator {
	n := 2*points + 1
	return &integrator{
		f:    f,
		x:    make([]float64, n),
		w:    make([]float64, n),
		fx:   make([]float64, n),
		base: points,
	}
}

// estimate fills p.est and p.err for the panel [p.a, p.b].
func (in *integrator) estimate(p *panel) {
	lo := in.apply(in.base, p.a, p.b)
	hi := in.apply(2*in.base+1, p.a, p.b)
	p.est = hi
	p.err = math.Abs(hi - lo)
	if math.IsNaN(p.err) || math.IsInf(p.est, 0) || math.IsNaN(p.est) {
		// A non-finite node value makes the panel maximally wrong so
		// that refinement closes in on the offending region. Its
		// estimate is worthless, so drop it from the running total.
		p.est = 0
		p.err = math.Inf(1)
	}
}

// apply evaluates the n-node Gauss-Legendre rule on [a, b].
func (in *integrator) apply(n int, a, b float64) float64 {
	x, w, fx := in.x[:n], in.w[:n], in.fx[:n]
	in.rule.FixedLocations(x, w, a, b)
	for i, xi := range x {
		fx[i] = in.f(xi)
	}
	return floats.Dot(w, fx)
}
