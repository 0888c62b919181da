package warp

import "math"

// Affine and polar remappings: closed-form linear or trigonometric
// coordinate transforms.

func affineFilters() []Descriptor {
	return []Descriptor{
		{
			ID: "shear", Name: "Shear",
			Params: append([]ParamSpec{
				rangeSpec("shearX", "Shear X", -100, 100, 1, 20.0),
				rangeSpec("shearY", "Shear Y", -100, 100, 1, 0.0),
			}, centerSpecs()...),
			New: func(p Params) Mapper {
				return &shearMapper{
					sx: p.Float("shearX") / 100,
					sy: p.Float("shearY") / 100,
				}
			},
		},
		{
			ID: "polar", Name: "Polar Coordinates",
			Params: append(append([]ParamSpec{
				amountSpec(),
				{
					Key: "direction", Label: "Direction", Type: ParamSelect, Default: "rect2polar",
					Options: []ParamOption{
						{Value: "rect2polar", Label: "Rectangular to Polar"},
						{Value: "polar2rect", Label: "Polar to Rectangular"},
					},
				},
			}, centerSpecs()...), radiusSpec()),
			New: func(p Params) Mapper {
				return &polarMapper{
					amount:     p.Float("amount"),
					rect2polar: p.String("direction") != "polar2rect",
				}
			},
		},
	}
}

// shearMapper slides rows and columns proportionally to their distance
// from the center axes.
type shearMapper struct {
	sx, sy float64
}

func (m *shearMapper) Map(x, y float64, g Geometry) Mapping {
	return mapAt(x+m.sx*(y-g.CY), y+m.sy*(x-g.CX))
}

// polarMapper remaps between rectangular and polar interpretations of the
// canvas. In rect2polar the output row index selects a radius and the
// column an angle; polar2rect is its inverse. The amount parameter blends
// against the identity so a zero setting leaves the image untouched.
type polarMapper struct {
	amount     float64
	rect2polar bool
}

func (m *polarMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	w := float64(g.W)
	h := float64(g.H)
	maxR := g.RadiusPx

	var u, v float64
	if m.rect2polar {
		// Column selects the angle, row the radius; angle 0 points up.
		theta := x/w*2*math.Pi - math.Pi
		r := y / h * maxR
		u = g.CX + r*math.Sin(theta)
		v = g.CY - r*math.Cos(theta)
	} else {
		dx := x - g.CX
		dy := y - g.CY
		r := math.Hypot(dx, dy)
		theta := math.Atan2(dx, -dy) // angle 0 up, matching rect2polar
		u = (theta + math.Pi) / (2 * math.Pi) * w
		if maxR < 1e-9 {
			v = 0
		} else {
			v = r / maxR * h
		}
	}
	t := m.amount / 100
	return mapAt(x+(u-x)*t, y+(v-y)*t)
}
