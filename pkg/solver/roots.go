// Package solver provides the root finders behind the intersection kernel:
// closed-form quadratics for the analytic primitives, companion-matrix
// eigenvalue extraction for higher-degree polynomials (the torus quartic),
// and a bracketed Newton/bisection search for implicit surfaces.
package solver

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrNoConvergence is returned when a root finder exhausts its iteration
// budget or fails to factorize. Callers treat it as a miss for the ray in
// question; it is never fatal.
var ErrNoConvergence = errors.New("solver: root finder did not converge")

// imagTolerance decides when a complex eigenvalue counts as a real root.
// Near-degenerate (almost double) roots pick up small imaginary parts, so
// this is deliberately loose.
const imagTolerance = 1e-6

// Quadratic returns the real roots of a*t^2 + b*t + c in ascending order.
// A vanishing leading coefficient degrades to the linear case.
func Quadratic(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-300 {
		if math.Abs(b) < 1e-300 {
			return nil
		}
		return []float64{-c / b}
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}
	if discriminant == 0 {
		return []float64{-b / (2 * a)}
	}

	sqrtD := math.Sqrt(discriminant)
	// Citardauq form for the root that would suffer cancellation
	var q float64
	if b >= 0 {
		q = -0.5 * (b + sqrtD)
	} else {
		q = -0.5 * (b - sqrtD)
	}
	t1, t2 := q/a, c/q
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return []float64{t1, t2}
}

// PolynomialRoots returns the real roots of the polynomial
// coeffs[0] + coeffs[1]*t + ... + coeffs[n]*t^n in ascending order,
// via the eigenvalues of its companion matrix. Complex conjugate pairs
// with small imaginary parts (near-degenerate real roots) are kept.
func PolynomialRoots(coeffs []float64) ([]float64, error) {
	// Drop a numerically vanishing leading coefficient rather than build a
	// near-singular companion matrix.
	degree := len(coeffs) - 1
	scale := 0.0
	for _, c := range coeffs {
		scale = math.Max(scale, math.Abs(c))
	}
	if scale == 0 {
		return nil, nil
	}
	for degree > 0 && math.Abs(coeffs[degree]) < 1e-12*scale {
		degree--
	}

	switch degree {
	case 0:
		return nil, nil
	case 1:
		return []float64{-coeffs[0] / coeffs[1]}, nil
	case 2:
		return Quadratic(coeffs[2], coeffs[1], coeffs[0]), nil
	}

	// Companion matrix of the monic polynomial: ones on the subdiagonal,
	// -c_i/c_n down the last column.
	lead := coeffs[degree]
	companion := mat.NewDense(degree, degree, nil)
	for i := 0; i < degree; i++ {
		if i > 0 {
			companion.Set(i, i-1, 1)
		}
		companion.Set(i, degree-1, -coeffs[i]/lead)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil, ErrNoConvergence
	}

	var roots []float64
	for _, v := range eig.Values(nil) {
		re, im := real(v), imag(v)
		if math.Abs(im) <= imagTolerance*math.Max(1, math.Abs(re)) {
			roots = append(roots, re)
		}
	}
	sort.Float64s(roots)

	// A double real root surfaces as a conjugate pair whose members both
	// pass the imaginary filter; collapse the pair to one root.
	deduped := roots[:0]
	for _, r := range roots {
		if len(deduped) > 0 {
			prev := deduped[len(deduped)-1]
			if r-prev <= imagTolerance*math.Max(1, math.Abs(r)) {
				continue
			}
		}
		deduped = append(deduped, r)
	}
	return deduped, nil
}
