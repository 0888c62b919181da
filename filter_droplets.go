package warp

import (
	"fmt"
	"math"
)

// Droplets: up to three independent local radial bubbles, each applied
// sequentially to the accumulating coordinate. Order matters where bubbles
// overlap, matching the superposition convention of the family.

const maxDroplets = 3

func dropletFilters() []Descriptor {
	params := []ParamSpec{}
	defaults := []struct {
		enabled  bool
		x, y     float64
		radius   float64
		strength float64
	}{
		{true, 30, 40, 25, 50},
		{false, 65, 60, 25, 50},
		{false, 50, 25, 20, 50},
	}
	for i, d := range defaults {
		n := i + 1
		params = append(params,
			ParamSpec{Key: fmt.Sprintf("d%dEnabled", n), Label: fmt.Sprintf("Droplet %d", n), Type: ParamCheckbox, Default: d.enabled},
			rangeSpec(fmt.Sprintf("d%dX", n), fmt.Sprintf("X %d", n), 0, 100, 1, d.x),
			rangeSpec(fmt.Sprintf("d%dY", n), fmt.Sprintf("Y %d", n), 0, 100, 1, d.y),
			rangeSpec(fmt.Sprintf("d%dRadius", n), fmt.Sprintf("Radius %d", n), 1, 100, 1, d.radius),
			rangeSpec(fmt.Sprintf("d%dStrength", n), fmt.Sprintf("Strength %d", n), -100, 100, 1, d.strength),
		)
	}
	return []Descriptor{
		{
			ID: "droplets", Name: "Droplets",
			Params: params,
			New:    newDropletMapper,
		},
	}
}

type droplet struct {
	xPct, yPct float64
	radiusPct  float64
	strength   float64
}

type dropletMapper struct {
	drops []droplet
}

func newDropletMapper(p Params) Mapper {
	m := &dropletMapper{}
	for n := 1; n <= maxDroplets; n++ {
		if !p.Bool(fmt.Sprintf("d%dEnabled", n)) {
			continue
		}
		m.drops = append(m.drops, droplet{
			xPct:      p.Float(fmt.Sprintf("d%dX", n)),
			yPct:      p.Float(fmt.Sprintf("d%dY", n)),
			radiusPct: p.Float(fmt.Sprintf("d%dRadius", n)),
			strength:  p.Float(fmt.Sprintf("d%dStrength", n)),
		})
	}
	return m
}

func (m *dropletMapper) Map(x, y float64, g Geometry) Mapping {
	px := x
	py := y
	minDim := g.MinDim()
	for _, d := range m.drops {
		if d.strength == 0 {
			continue
		}
		cx := d.xPct / 100 * float64(g.W)
		cy := d.yPct / 100 * float64(g.H)
		radius := d.radiusPct / 100 * minDim * 0.5
		if radius < 1e-9 {
			continue
		}
		dx := px - cx
		dy := py - cy
		r := math.Hypot(dx, dy)
		if r >= radius || r < 1e-9 {
			continue
		}
		t := r / radius
		// Bubble curve: full displacement at the center, continuous at the
		// rim (factor 1 when t = 1).
		factor := 1 - d.strength/100*(1-t)*(1-t)
		if factor < 0 {
			factor = 0
		}
		px = cx + dx*factor
		py = cy + dy*factor
	}
	return mapAt(px, py)
}
