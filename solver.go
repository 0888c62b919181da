package warp

import (
	"math"
	"math/cmplx"
)

// Per-pixel numeric solvers used by the root-finding filters.
//
// The routines here favor robustness over precision: every loop has a hard
// iteration cap and every division is guarded, so a render pass is bounded
// by pixels x maxIterations regardless of parameter values.

const (
	// angularMaxIter caps the Newton-Raphson iterations per pixel.
	angularMaxIter = 20

	// angularDerivEps is the derivative magnitude below which the solver
	// switches from Newton-Raphson to a plain fixed-point step.
	angularDerivEps = 1e-4

	// angularTol is the residual tolerance for early termination.
	angularTol = 1e-7
)

// solveAngular solves theta + amp*sin(m*theta + phase) = target for theta.
//
// Newton-Raphson with at most angularMaxIter iterations, falling back to a
// fixed-point step theta = target - amp*sin(m*theta + phase) wherever the
// derivative magnitude drops below angularDerivEps. Convergence is not
// guaranteed for extreme amplitude/harmonic combinations; the caller accepts
// the final iterate in that case.
func solveAngular(target, amp float64, m float64, phase float64) float64 {
	theta := target
	for i := 0; i < angularMaxIter; i++ {
		s, c := math.Sincos(m*theta + phase)
		g := theta + amp*s - target
		if math.Abs(g) < angularTol {
			break
		}
		d := 1 + amp*m*c
		if math.Abs(d) < angularDerivEps {
			// Near-flat derivative: fixed-point step.
			theta = target - amp*s
			continue
		}
		theta -= g / d
	}
	if !isFinite(theta) {
		return target
	}
	return theta
}

// integrandReciprocalQuartic is 1/sqrt(1 - t^4) on the principal branch.
// The second return value is false at (or numerically near) a singularity.
func integrandReciprocalQuartic(t complex128) (complex128, bool) {
	d := 1 - t*t*t*t
	if cmplx.Abs(d) < 1e-9 {
		return 0, false
	}
	return 1 / cmplx.Sqrt(d), true
}

// simpsonQuartic integrates 1/sqrt(1-t^4) from 0 to z along the straight
// segment using composite Simpson's rule with a fixed step count. ok is
// false when the path runs through a singularity of the integrand.
func simpsonQuartic(z complex128, steps int) (complex128, bool) {
	if steps%2 != 0 {
		steps++
	}
	h := z / complex(float64(steps), 0)
	sum := complex(0, 0)

	f0, ok := integrandReciprocalQuartic(0)
	if !ok {
		return 0, false
	}
	fn, ok := integrandReciprocalQuartic(z)
	if !ok {
		return 0, false
	}
	sum = f0 + fn

	for i := 1; i < steps; i++ {
		f, ok := integrandReciprocalQuartic(h * complex(float64(i), 0))
		if !ok {
			return 0, false
		}
		if i%2 == 1 {
			sum += 4 * f
		} else {
			sum += 2 * f
		}
	}
	return sum * h / 3, true
}

// isFinite checks if a float64 is finite (not Inf or NaN).
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// isFiniteC checks both components of a complex number.
func isFiniteC(z complex128) bool {
	return isFinite(real(z)) && isFinite(imag(z))
}
