package warp

import "math/cmplx"

// Mobius transform and Blaschke product. Both are rational maps of the
// plane; their poles map to transparent.

func mobiusFilters() []Descriptor {
	coeff := func(key, label string, def float64) ParamSpec {
		return numberSpec(key, label, -4, 4, 0.1, def)
	}
	blaschkeCoeff := func(key, label string) ParamSpec {
		return rangeSpec(key, label, -0.95, 0.95, 0.01, 0.0)
	}
	return []Descriptor{
		{
			ID: "mobius", Name: "Mobius",
			Params: append([]ParamSpec{
				amountSpec(),
				coeff("aRe", "a (re)", 1), coeff("aIm", "a (im)", 0),
				coeff("bRe", "b (re)", 0), coeff("bIm", "b (im)", 0),
				coeff("cRe", "c (re)", 0), coeff("cIm", "c (im)", 0),
				coeff("dRe", "d (re)", 1), coeff("dIm", "d (im)", 0),
				{Key: "normalize", Label: "Normalize", Type: ParamCheckbox, Default: false},
				scaleSpec(), rotateSpec(),
			}, centerSpecs()...),
			New: newMobiusMapper,
		},
		{
			ID: "blaschke", Name: "Blaschke Product",
			Params: append([]ParamSpec{
				amountSpec(),
				blaschkeCoeff("a1Re", "a1 (re)"), blaschkeCoeff("a1Im", "a1 (im)"),
				blaschkeCoeff("a2Re", "a2 (re)"), blaschkeCoeff("a2Im", "a2 (im)"),
				blaschkeCoeff("a3Re", "a3 (re)"), blaschkeCoeff("a3Im", "a3 (im)"),
				scaleSpec(), rotateSpec(),
			}, centerSpecs()...),
			New: newBlaschkeMapper,
		},
	}
}

// mobiusMapper applies w = (az+b)/(cz+d). With normalize enabled the
// coefficients are divided by sqrt(ad-bc) once at construction; a zero
// determinant degenerates the whole map to transparent.
type mobiusMapper struct {
	conformalBase
	a, b, c, d complex128
	degenerate bool
}

func newMobiusMapper(p Params) Mapper {
	m := &mobiusMapper{
		conformalBase: newConformalBase(p),
		a:             complex(p.Float("aRe"), p.Float("aIm")),
		b:             complex(p.Float("bRe"), p.Float("bIm")),
		c:             complex(p.Float("cRe"), p.Float("cIm")),
		d:             complex(p.Float("dRe"), p.Float("dIm")),
	}
	if p.Bool("normalize") {
		det := m.a*m.d - m.b*m.c
		if cmplx.Abs(det) < zeroEps {
			m.degenerate = true
		} else {
			s := cmplx.Sqrt(det)
			m.a /= s
			m.b /= s
			m.c /= s
			m.d /= s
		}
	}
	return m
}

func (m *mobiusMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	if m.degenerate {
		return mapTransparent()
	}
	f := m.frameFor(g)
	z := f.toPlane(x, y)
	denom := m.c*z + m.d
	if cmplx.Abs(denom) < zeroEps {
		return mapTransparent()
	}
	w := (m.a*z + m.b) / denom
	return finishConformal(f, x, y, blend(z, w, m.amount))
}

// blaschkeMapper multiplies up to three disk automorphism factors
// (z-a)/(1-conj(a)z). Zero coefficients contribute no factor, so the
// default record is the identity.
type blaschkeMapper struct {
	conformalBase
	zeros []complex128
}

func newBlaschkeMapper(p Params) Mapper {
	m := &blaschkeMapper{conformalBase: newConformalBase(p)}
	for _, keys := range [][2]string{{"a1Re", "a1Im"}, {"a2Re", "a2Im"}, {"a3Re", "a3Im"}} {
		a := complex(p.Float(keys[0]), p.Float(keys[1]))
		if cmplx.Abs(a) < zeroEps {
			continue
		}
		// Zeros must stay strictly inside the unit disk.
		if cmplx.Abs(a) > 0.99 {
			a *= complex(0.99/cmplx.Abs(a), 0)
		}
		m.zeros = append(m.zeros, a)
	}
	return m
}

func (m *blaschkeMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	f := m.frameFor(g)
	z := f.toPlane(x, y)
	w := z
	if len(m.zeros) > 0 {
		w = complex(1, 0)
		for _, a := range m.zeros {
			denom := 1 - cmplx.Conj(a)*z
			if cmplx.Abs(denom) < zeroEps {
				return mapTransparent()
			}
			w *= (z - a) / denom
		}
	}
	return finishConformal(f, x, y, blend(z, w, m.amount))
}
