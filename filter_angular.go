package warp

import "math"

// Angular modulation: the output angle Theta relates to the source angle
// theta through theta + A*sin(m*theta + phase) = Theta, solved per pixel by
// the bounded Newton-Raphson routine in solver.go.

func angularFilters() []Descriptor {
	return []Descriptor{
		{
			ID: "angular", Name: "Angular Modulation",
			Params: append(append([]ParamSpec{
				rangeSpec("amplitude", "Amplitude", -90, 90, 1, 30.0),
				numberSpec("harmonics", "Harmonics", 1, 8, 1, 3.0),
				rangeSpec("phase", "Phase", -180, 180, 1, 0.0),
			}, centerSpecs()...), radiusSpec()),
			New: func(p Params) Mapper {
				return &angularMapper{
					amp:   p.Float("amplitude") * math.Pi / 180,
					m:     p.Float("harmonics"),
					phase: p.Float("phase") * math.Pi / 180,
				}
			},
		},
	}
}

type angularMapper struct {
	amp   float64
	m     float64
	phase float64
}

func (a *angularMapper) Map(x, y float64, g Geometry) Mapping {
	if a.amp == 0 {
		return mapAt(x, y)
	}
	dx := x - g.CX
	dy := y - g.CY
	r := math.Hypot(dx, dy)
	if r >= g.RadiusPx || r < 1e-9 {
		return mapAt(x, y)
	}
	target := math.Atan2(dy, dx)
	theta := solveAngular(target, a.amp, a.m, a.phase)
	sin, cos := math.Sincos(theta)
	return mapAt(g.CX+r*cos, g.CY+r*sin)
}
