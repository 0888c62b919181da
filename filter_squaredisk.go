package warp

import "math/cmplx"

// Schwarz-Christoffel mapping between the unit disk and the square.
//
// The disk-to-square direction evaluates F(z) = integral of dt/sqrt(1-t^4)
// from 0 to z by fixed-step Simpson quadrature, normalized by the real
// half-period F(1) so the disk boundary lands on the square boundary. The
// square-to-disk direction inverts F by Newton iteration with a hard cap.
// Paths through the four boundary singularities map to transparent.

const (
	// lemniscateHalf is F(1) = integral 0..1 of dt/sqrt(1-t^4).
	lemniscateHalf = 1.3110287771460599

	// quarticSteps is the Simpson step count per F evaluation.
	quarticSteps = 32

	// sdMaxIter caps the Newton iterations of the square-to-disk inverse.
	sdMaxIter = 20

	sdTol = 1e-10
)

func squareDiskFilters() []Descriptor {
	return []Descriptor{
		{
			ID: "squaredisk", Name: "Square-Disk",
			Params: append([]ParamSpec{
				amountSpec(),
				{
					Key: "direction", Label: "Direction", Type: ParamSelect, Default: "disk2square",
					Options: []ParamOption{
						{Value: "disk2square", Label: "Disk to Square"},
						{Value: "square2disk", Label: "Square to Disk"},
					},
				},
				scaleSpec(), rotateSpec(),
			}, centerSpecs()...),
			New: func(p Params) Mapper {
				return &squareDiskMapper{
					conformalBase: newConformalBase(p),
					toSquare:      p.String("direction") != "square2disk",
				}
			},
		},
	}
}

type squareDiskMapper struct {
	conformalBase
	toSquare bool
}

// diskToSquare evaluates the normalized Schwarz-Christoffel integral.
func diskToSquare(z complex128) (complex128, bool) {
	s, ok := simpsonQuartic(z, quarticSteps)
	if !ok {
		return 0, false
	}
	return s / complex(lemniscateHalf, 0), true
}

// squareToDisk inverts diskToSquare by Newton iteration. The derivative of
// the normalized integral is 1/(F(1)*sqrt(1-z^4)); its zeros at z^4 = 1 are
// the square's corners, reported as singular.
func squareToDisk(target complex128) (complex128, bool) {
	z := target
	for i := 0; i < sdMaxIter; i++ {
		fz, ok := diskToSquare(z)
		if !ok {
			return 0, false
		}
		diff := fz - target
		if cmplx.Abs(diff) < sdTol {
			return z, true
		}
		d := 1 - z*z*z*z
		if cmplx.Abs(d) < 1e-9 {
			return 0, false
		}
		// dF/dz = 1/(lemniscateHalf * sqrt(1-z^4))
		z -= diff * complex(lemniscateHalf, 0) * cmplx.Sqrt(d)
		if !isFiniteC(z) {
			return 0, false
		}
	}
	return z, true
}

func (m *squareDiskMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	f := m.frameFor(g)
	z := f.toPlane(x, y)

	var w complex128
	var ok bool
	if m.toSquare {
		w, ok = diskToSquare(z)
	} else {
		w, ok = squareToDisk(z)
	}
	if !ok {
		return mapTransparent()
	}
	return finishConformal(f, x, y, blend(z, w, m.amount))
}
