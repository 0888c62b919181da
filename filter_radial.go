package warp

import "math"

// Radial warps: pinch, spherize, twirl, zigzag. Each reparametrizes the
// radius and/or angle as a function of the normalized distance from the
// effect center and is the identity outside the radius of effect.

// falloffWeight tapers an effect from full strength at the center to zero
// at the edge of the radius. t is the normalized distance in [0, 1].
func falloffWeight(kind string, t float64) float64 {
	w := 1 - t
	switch kind {
	case "quadratic":
		return w * w
	case "cubic":
		return w * w * w
	default: // linear
		return w
	}
}

func falloffSpec() ParamSpec {
	return ParamSpec{
		Key: "falloff", Label: "Falloff", Type: ParamSelect, Default: "quadratic",
		Options: []ParamOption{
			{Value: "linear", Label: "Linear"},
			{Value: "quadratic", Label: "Quadratic"},
			{Value: "cubic", Label: "Cubic"},
		},
	}
}

func radialFilters() []Descriptor {
	return []Descriptor{
		{
			ID: "pinch", Name: "Pinch",
			Params: append(append([]ParamSpec{
				rangeSpec("amount", "Amount", -100, 100, 1, 50.0),
				falloffSpec(),
			}, centerSpecs()...), radiusSpec()),
			New: func(p Params) Mapper {
				return &pinchMapper{amount: p.Float("amount"), falloff: p.String("falloff")}
			},
		},
		{
			ID: "spherize", Name: "Spherize",
			Params: append(append([]ParamSpec{
				rangeSpec("amount", "Amount", -100, 100, 1, 60.0),
			}, centerSpecs()...), radiusSpec()),
			New: func(p Params) Mapper {
				return &spherizeMapper{amount: p.Float("amount")}
			},
		},
		{
			ID: "twirl", Name: "Twirl",
			Params: append(append([]ParamSpec{
				rangeSpec("angle", "Angle", -720, 720, 1, 120.0),
				falloffSpec(),
			}, centerSpecs()...), radiusSpec()),
			New: func(p Params) Mapper {
				return &twirlMapper{angleRad: p.Float("angle") * math.Pi / 180, falloff: p.String("falloff")}
			},
		},
		{
			ID: "zigzag", Name: "ZigZag",
			Params: append(append([]ParamSpec{
				rangeSpec("amount", "Amount", -50, 50, 1, 10.0),
				numberSpec("ridges", "Ridges", 1, 20, 1, 5.0),
			}, centerSpecs()...), radiusSpec()),
			New: func(p Params) Mapper {
				return &zigzagMapper{amount: p.Float("amount"), ridges: p.Float("ridges")}
			},
		},
	}
}

// pinchMapper reparametrizes the normalized radius as t^gamma. The exponent
// doubles every 50% of amount, so the map is monotonic for the whole
// parameter range and gamma is exactly 1 at amount 0.
type pinchMapper struct {
	amount  float64
	falloff string
}

func (m *pinchMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	dx := x - g.CX
	dy := y - g.CY
	r := math.Hypot(dx, dy)
	if r >= g.RadiusPx || r < 1e-9 {
		return mapAt(x, y)
	}
	t := r / g.RadiusPx
	gamma := math.Pow(2, m.amount/50*falloffWeight(m.falloff, t))
	factor := math.Pow(t, gamma-1)
	if !isFinite(factor) {
		return mapAt(x, y)
	}
	return mapAt(g.CX+dx*factor, g.CY+dy*factor)
}

// spherizeMapper blends the normalized radius toward the arcsine lens curve
// (positive amounts, convex) or its sine inverse (negative amounts, concave).
type spherizeMapper struct {
	amount float64
}

func (m *spherizeMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	dx := x - g.CX
	dy := y - g.CY
	r := math.Hypot(dx, dy)
	if r >= g.RadiusPx || r < 1e-9 {
		return mapAt(x, y)
	}
	t := r / g.RadiusPx
	var tn float64
	if m.amount > 0 {
		tn = math.Asin(t) / (math.Pi / 2)
	} else {
		tn = math.Sin(t * math.Pi / 2)
	}
	newT := t + (tn-t)*math.Abs(m.amount)/100
	factor := newT / t
	return mapAt(g.CX+dx*factor, g.CY+dy*factor)
}

// twirlMapper rotates each point about the center by an angle that tapers
// to zero at the radius edge.
type twirlMapper struct {
	angleRad float64
	falloff  string
}

func (m *twirlMapper) Map(x, y float64, g Geometry) Mapping {
	if m.angleRad == 0 {
		return mapAt(x, y)
	}
	dx := x - g.CX
	dy := y - g.CY
	r := math.Hypot(dx, dy)
	if r >= g.RadiusPx {
		return mapAt(x, y)
	}
	t := r / g.RadiusPx
	ang := m.angleRad * falloffWeight(m.falloff, t)
	sin, cos := math.Sincos(ang)
	return mapAt(g.CX+dx*cos-dy*sin, g.CY+dx*sin+dy*cos)
}

// zigzagMapper offsets the radius by a sinusoid of the normalized distance,
// producing concentric ridges that fade toward the radius edge.
type zigzagMapper struct {
	amount float64
	ridges float64
}

func (m *zigzagMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	dx := x - g.CX
	dy := y - g.CY
	r := math.Hypot(dx, dy)
	if r >= g.RadiusPx || r < 1e-9 {
		return mapAt(x, y)
	}
	t := r / g.RadiusPx
	dr := m.amount * math.Sin(t*m.ridges*2*math.Pi) * (1 - t)
	newR := r + dr
	if newR < 0 {
		newR = 0
	}
	factor := newR / r
	return mapAt(g.CX+dx*factor, g.CY+dy*factor)
}
