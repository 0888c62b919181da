package warp

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestSolveAngularResidual(t *testing.T) {
	tests := []struct {
		name          string
		amp, m, phase float64
	}{
		{"mild", 0.2, 3, 0},
		{"phase shifted", 0.3, 2, 1.1},
		{"negative amplitude", -0.4, 1, 0},
		{"contractive bound", 0.15, 5, -0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for target := -math.Pi; target <= math.Pi; target += 0.37 {
				theta := solveAngular(target, tt.amp, tt.m, tt.phase)
				resid := theta + tt.amp*math.Sin(tt.m*theta+tt.phase) - target
				if math.Abs(resid) > 1e-6 {
					t.Errorf("target %v: residual %v", target, resid)
				}
			}
		})
	}
}

func TestSolveAngularZeroAmplitude(t *testing.T) {
	if got := solveAngular(1.234, 0, 3, 0); got != 1.234 {
		t.Errorf("solveAngular with zero amplitude = %v, want target", got)
	}
}

func TestSolveAngularAlwaysFinite(t *testing.T) {
	// Extreme amplitude/harmonic combinations may not converge; the result
	// must still be a finite angle.
	for _, amp := range []float64{-1.5, 1.5, 3} {
		for m := 1.0; m <= 8; m++ {
			for target := -math.Pi; target <= math.Pi; target += 0.5 {
				theta := solveAngular(target, amp, m, 0.3)
				if !isFinite(theta) {
					t.Fatalf("solveAngular(%v, %v, %v) not finite", target, amp, m)
				}
			}
		}
	}
}

func TestSimpsonQuarticReferenceValue(t *testing.T) {
	// Series expansion of the integral of 1/sqrt(1-t^4) at z = 0.5:
	// z + z^5/10 + z^9/24 + 5z^13/208 + ...
	const want = 0.5032094299
	got, ok := simpsonQuartic(complex(0.5, 0), quarticSteps)
	if !ok {
		t.Fatal("unexpected singularity")
	}
	if math.Abs(real(got)-want) > 1e-7 || math.Abs(imag(got)) > 1e-12 {
		t.Errorf("F(0.5) = %v, want %v", got, want)
	}
}

func TestSimpsonQuarticSingularEndpoint(t *testing.T) {
	// z = 1 is a branch point of the integrand.
	if _, ok := simpsonQuartic(complex(1, 0), quarticSteps); ok {
		t.Error("integral through t = 1 reported ok")
	}
}

func TestSimpsonQuarticZero(t *testing.T) {
	got, ok := simpsonQuartic(0, quarticSteps)
	if !ok || got != 0 {
		t.Errorf("F(0) = %v, %v, want 0", got, ok)
	}
}

func TestIsFinite(t *testing.T) {
	if !isFinite(0) || !isFinite(-1e300) {
		t.Error("finite values rejected")
	}
	if isFinite(math.Inf(1)) || isFinite(math.Inf(-1)) || isFinite(math.NaN()) {
		t.Error("non-finite values accepted")
	}
	if isFiniteC(cmplx.Inf()) || isFiniteC(complex(0, math.NaN())) {
		t.Error("non-finite complex accepted")
	}
	if !isFiniteC(complex(1, -2)) {
		t.Error("finite complex rejected")
	}
}
