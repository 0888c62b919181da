package warp

import (
	"math"
	"math/cmplx"
)

// Shared plumbing for the complex-analytic filter family.
//
// Every conformal filter works in a user-defined frame: the output pixel is
// translated by the effect center, scaled so that a "scale" of 100% maps one
// complex unit to half the shorter image dimension, and rotated by the frame
// angle. The mapped value w = f(z) is converted back through the same frame.

const (
	// zeroEps is the magnitude below which a complex value is treated as a
	// singularity input (log of zero, division by zero).
	zeroEps = 1e-9

	// hugeMag is the magnitude above which a mapped value is treated as
	// numerically escaped; the filter reports transparency instead of
	// sampling a meaningless far-away coordinate.
	hugeMag = 1e9
)

// frame converts between source-pixel space and the complex plane.
type frame struct {
	cx, cy float64
	scale  float64    // pixels per complex unit
	rot    complex128 // e^{i*theta}
	invRot complex128 // e^{-i*theta}
}

// newFrame builds a frame from resolved parameters. scalePct follows the
// shared convention: 100% = min(W,H)/2 pixels per unit.
func newFrame(g Geometry, scalePct, rotateDeg float64) frame {
	s := scalePct / 100 * g.MinDim() * 0.5
	if s < zeroEps {
		s = zeroEps
	}
	theta := rotateDeg * math.Pi / 180
	sin, cos := math.Sincos(theta)
	return frame{
		cx:     g.CX,
		cy:     g.CY,
		scale:  s,
		rot:    complex(cos, sin),
		invRot: complex(cos, -sin),
	}
}

// toPlane converts a source-pixel coordinate to a frame-space complex value.
func (f frame) toPlane(x, y float64) complex128 {
	return complex((x-f.cx)/f.scale, (y-f.cy)/f.scale) * f.invRot
}

// toPixel converts a frame-space complex value back to a source coordinate.
func (f frame) toPixel(w complex128) (u, v float64) {
	w *= f.rot
	return f.cx + real(w)*f.scale, f.cy + imag(w)*f.scale
}

// logBranch is the complex logarithm on the branch selected by k:
// Log z + 2*pi*i*k.
func logBranch(z complex128, k int) complex128 {
	return cmplx.Log(z) + complex(0, 2*math.Pi*float64(k))
}

// blend linearly interpolates between the identity value z and the mapped
// value w. amount is the 0..100 strength percentage; 0 yields z exactly.
func blend(z, w complex128, amount float64) complex128 {
	if amount <= 0 {
		return z
	}
	if amount >= 100 {
		return w
	}
	t := complex(amount/100, 0)
	return z*(1-t) + w*t
}

// finishConformal converts a mapped value back to pixel space, enforcing
// the shared guard policy: a non-finite w falls back to the identity
// mapping, an escaped magnitude maps to transparent.
func finishConformal(f frame, x, y float64, w complex128) Mapping {
	if !isFiniteC(w) {
		return mapAt(x, y)
	}
	if cmplx.Abs(w) > hugeMag {
		return mapTransparent()
	}
	u, v := f.toPixel(w)
	if !isFinite(u) || !isFinite(v) {
		return mapAt(x, y)
	}
	return mapAt(u, v)
}

// scaleSpec declares the shared conformal frame scale parameter.
func scaleSpec() ParamSpec {
	return rangeSpec("scale", "Scale", 5, 400, 1, 100.0)
}

// rotateSpec declares the shared conformal frame rotation parameter.
func rotateSpec() ParamSpec {
	return rangeSpec("rotate", "Rotate", -180, 180, 1, 0.0)
}

// amountSpec declares the shared effect strength blend. Every conformal
// filter carries one so that a zero setting is the exact identity.
func amountSpec() ParamSpec {
	return rangeSpec("amount", "Amount", 0, 100, 1, 100.0)
}

// branchSpec declares the branch index for multivalued maps.
func branchSpec() ParamSpec {
	return numberSpec("branch", "Branch", -8, 8, 1, 0.0)
}
