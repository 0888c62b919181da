package warp

import "math/cmplx"

// Weierstrass elliptic function over a user-shaped lattice, evaluated as a
// truncated lattice sum. The lattice is spanned by 1 and tau; the sum runs
// over |m|, |n| <= 2, which is enough structure for a visual distortion
// while keeping the per-pixel cost constant.

const weierstrassOrder = 2

func weierstrassFilters() []Descriptor {
	return []Descriptor{
		{
			ID: "weierstrass", Name: "Weierstrass P",
			Params: append([]ParamSpec{
				amountSpec(),
				rangeSpec("tauRe", "Lattice Re", -1, 1, 0.05, 0.0),
				rangeSpec("tauIm", "Lattice Im", 0.3, 3, 0.05, 1.0),
				scaleSpec(), rotateSpec(),
			}, centerSpecs()...),
			New: func(p Params) Mapper {
				m := &weierstrassMapper{conformalBase: newConformalBase(p)}
				tau := complex(p.Float("tauRe"), p.Float("tauIm"))
				for i := -weierstrassOrder; i <= weierstrassOrder; i++ {
					for j := -weierstrassOrder; j <= weierstrassOrder; j++ {
						if i == 0 && j == 0 {
							continue
						}
						m.lattice = append(m.lattice, complex(float64(i), 0)+complex(float64(j), 0)*tau)
					}
				}
				return m
			},
		},
	}
}

type weierstrassMapper struct {
	conformalBase
	lattice []complex128
}

func (m *weierstrassMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	f := m.frameFor(g)
	z := f.toPlane(x, y)
	if cmplx.Abs(z) < zeroEps {
		return mapTransparent()
	}
	w := 1 / (z * z)
	for _, omega := range m.lattice {
		d := z - omega
		if cmplx.Abs(d) < zeroEps {
			return mapTransparent()
		}
		w += 1/(d*d) - 1/(omega*omega)
	}
	return finishConformal(f, x, y, blend(z, w, m.amount))
}
