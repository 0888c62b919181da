package warp

import (
	"math"
	"math/cmplx"
)

// Closed-form conformal maps: exp, log, pow, spiral unwrap, hyperbolic
// tangent, and the Joukowski transform. Each treats the output pixel as a
// complex number in the shared frame, applies w = f(z), and converts back.
// Poles and branch points map to transparent; non-finite results fall back
// to the identity mapping.

func conformalFilters() []Descriptor {
	return []Descriptor{
		{
			ID: "exp", Name: "Exponential",
			Params: append([]ParamSpec{
				amountSpec(), scaleSpec(), rotateSpec(),
			}, centerSpecs()...),
			New: func(p Params) Mapper {
				return &expMapper{conformalBase: newConformalBase(p)}
			},
		},
		{
			ID: "log", Name: "Logarithm",
			Params: append([]ParamSpec{
				amountSpec(), scaleSpec(), rotateSpec(), branchSpec(),
			}, centerSpecs()...),
			New: func(p Params) Mapper {
				return &logMapper{conformalBase: newConformalBase(p), branch: p.Int("branch")}
			},
		},
		{
			ID: "pow", Name: "Power",
			Params: append([]ParamSpec{
				amountSpec(),
				rangeSpec("exponent", "Exponent", -4, 4, 0.1, 2.0),
				scaleSpec(), rotateSpec(), branchSpec(),
			}, centerSpecs()...),
			New: func(p Params) Mapper {
				return &powMapper{
					conformalBase: newConformalBase(p),
					exponent:      p.Float("exponent"),
					branch:        p.Int("branch"),
				}
			},
		},
		{
			ID: "spiral", Name: "Spiral Unwrap",
			Params: append([]ParamSpec{
				amountSpec(),
				rangeSpec("twist", "Twist", -80, 80, 1, 30.0),
				scaleSpec(), rotateSpec(), branchSpec(),
			}, centerSpecs()...),
			New: func(p Params) Mapper {
				return &spiralMapper{
					conformalBase: newConformalBase(p),
					twistTan:      math.Tan(p.Float("twist") * math.Pi / 180),
					branch:        p.Int("branch"),
				}
			},
		},
		{
			ID: "tanh", Name: "Hyperbolic Tangent",
			Params: append([]ParamSpec{
				amountSpec(), scaleSpec(), rotateSpec(),
			}, centerSpecs()...),
			New: func(p Params) Mapper {
				return &tanhMapper{conformalBase: newConformalBase(p)}
			},
		},
		{
			ID: "joukowski", Name: "Joukowski",
			Params: append([]ParamSpec{
				amountSpec(),
				rangeSpec("coefficient", "Coefficient", 0, 2, 0.01, 1.0),
				scaleSpec(), rotateSpec(),
			}, centerSpecs()...),
			New: func(p Params) Mapper {
				return &joukowskiMapper{
					conformalBase: newConformalBase(p),
					coef:          p.Float("coefficient"),
				}
			},
		},
	}
}

// conformalBase carries the shared frame parameters of the family.
// It is embedded by every conformal mapper; geometry arrives per call, so
// the frame is rebuilt lazily from the stored percentages.
type conformalBase struct {
	amount    float64
	scalePct  float64
	rotateDeg float64
}

func newConformalBase(p Params) conformalBase {
	return conformalBase{
		amount:    p.Float("amount"),
		scalePct:  p.Float("scale"),
		rotateDeg: p.Float("rotate"),
	}
}

func (b conformalBase) frameFor(g Geometry) frame {
	return newFrame(g, b.scalePct, b.rotateDeg)
}

type expMapper struct {
	conformalBase
}

func (m *expMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	f := m.frameFor(g)
	z := f.toPlane(x, y)
	w := cmplx.Exp(z)
	return finishConformal(f, x, y, blend(z, w, m.amount))
}

type logMapper struct {
	conformalBase
	branch int
}

func (m *logMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	f := m.frameFor(g)
	z := f.toPlane(x, y)
	if cmplx.Abs(z) < zeroEps {
		return mapTransparent()
	}
	w := logBranch(z, m.branch)
	return finishConformal(f, x, y, blend(z, w, m.amount))
}

type powMapper struct {
	conformalBase
	exponent float64
	branch   int
}

func (m *powMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	f := m.frameFor(g)
	z := f.toPlane(x, y)
	if cmplx.Abs(z) < zeroEps {
		if m.exponent > 0 {
			return finishConformal(f, x, y, blend(z, 0, m.amount))
		}
		// Negative or zero exponent at the origin is a pole.
		return mapTransparent()
	}
	w := cmplx.Exp(complex(m.exponent, 0) * logBranch(z, m.branch))
	return finishConformal(f, x, y, blend(z, w, m.amount))
}

// spiralMapper applies w = exp((1 + i*tan(twist)) * log z): a logarithmic
// spiral reparametrization that reduces to the identity at twist 0 for any
// branch index.
type spiralMapper struct {
	conformalBase
	twistTan float64
	branch   int
}

func (m *spiralMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	f := m.frameFor(g)
	z := f.toPlane(x, y)
	if cmplx.Abs(z) < zeroEps {
		return mapTransparent()
	}
	w := cmplx.Exp(complex(1, m.twistTan) * logBranch(z, m.branch))
	return finishConformal(f, x, y, blend(z, w, m.amount))
}

type tanhMapper struct {
	conformalBase
}

func (m *tanhMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	f := m.frameFor(g)
	z := f.toPlane(x, y)
	// Poles of tanh sit at the zeros of cosh: i*pi/2 + i*k*pi.
	if cmplx.Abs(cmplx.Cosh(z)) < zeroEps {
		return mapTransparent()
	}
	w := cmplx.Tanh(z)
	return finishConformal(f, x, y, blend(z, w, m.amount))
}

// joukowskiMapper applies w = z + c^2/z, the airfoil transform. A zero
// coefficient is the identity; the origin is a pole for any other setting.
type joukowskiMapper struct {
	conformalBase
	coef float64
}

func (m *joukowskiMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 || m.coef == 0 {
		return mapAt(x, y)
	}
	f := m.frameFor(g)
	z := f.toPlane(x, y)
	if cmplx.Abs(z) < zeroEps {
		return mapTransparent()
	}
	w := z + complex(m.coef*m.coef, 0)/z
	return finishConformal(f, x, y, blend(z, w, m.amount))
}
