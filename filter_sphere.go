package warp

import "math"

// Stereographic sphere rotation: lift the plane onto the unit sphere
// through the inverse stereographic projection, rotate the sphere, and
// project back. Points carried to the projection pole map to transparent.

func sphereFilters() []Descriptor {
	return []Descriptor{
		{
			ID: "sphere", Name: "Sphere Rotate",
			Params: append([]ParamSpec{
				amountSpec(),
				rangeSpec("pitch", "Pitch", -180, 180, 1, 30.0),
				rangeSpec("yaw", "Yaw", -180, 180, 1, 0.0),
				rangeSpec("roll", "Roll", -180, 180, 1, 0.0),
				scaleSpec(), rotateSpec(),
			}, centerSpecs()...),
			New: func(p Params) Mapper {
				return &sphereMapper{
					conformalBase: newConformalBase(p),
					rot: rotationMatrix(
						p.Float("pitch")*math.Pi/180,
						p.Float("yaw")*math.Pi/180,
						p.Float("roll")*math.Pi/180,
					),
					isIdentity: p.Float("pitch") == 0 && p.Float("yaw") == 0 && p.Float("roll") == 0,
				}
			},
		},
	}
}

// rotationMatrix builds the combined rotation Rz(roll)*Ry(yaw)*Rx(pitch).
func rotationMatrix(pitch, yaw, roll float64) [3][3]float64 {
	sp, cp := math.Sincos(pitch)
	sy, cy := math.Sincos(yaw)
	sr, cr := math.Sincos(roll)

	// Rx(pitch)
	rx := [3][3]float64{{1, 0, 0}, {0, cp, -sp}, {0, sp, cp}}
	// Ry(yaw)
	ry := [3][3]float64{{cy, 0, sy}, {0, 1, 0}, {-sy, 0, cy}}
	// Rz(roll)
	rz := [3][3]float64{{cr, -sr, 0}, {sr, cr, 0}, {0, 0, 1}}

	return matMul(rz, matMul(ry, rx))
}

func matMul(a, b [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out
}

type sphereMapper struct {
	conformalBase
	rot        [3][3]float64
	isIdentity bool
}

func (m *sphereMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 || m.isIdentity {
		return mapAt(x, y)
	}
	f := m.frameFor(g)
	z := f.toPlane(x, y)
	re := real(z)
	im := imag(z)

	// Inverse stereographic projection from the north pole.
	norm := 1 + re*re + im*im
	sx := 2 * re / norm
	sy := 2 * im / norm
	sz := (re*re + im*im - 1) / norm

	rx := m.rot[0][0]*sx + m.rot[0][1]*sy + m.rot[0][2]*sz
	ry := m.rot[1][0]*sx + m.rot[1][1]*sy + m.rot[1][2]*sz
	rz := m.rot[2][0]*sx + m.rot[2][1]*sy + m.rot[2][2]*sz

	// Project back; the north pole itself has no planar image.
	denom := 1 - rz
	if denom < zeroEps {
		return mapTransparent()
	}
	w := complex(rx/denom, ry/denom)
	return finishConformal(f, x, y, blend(z, w, m.amount))
}
