package warp

import (
	"github.com/aquilax/go-perlin"
)

// Fractal noise displacement. Two independently seeded Perlin fields drive
// the x and y components of the displacement vector; the declared seed fully
// determines the output, so the mapping stays pure and repeatable.

const (
	noiseAlpha = 2.0 // harmonic weight divisor between octaves
	noiseBeta  = 2.0 // frequency multiplier between octaves
)

func noiseFilters() []Descriptor {
	return []Descriptor{
		{
			ID: "noise", Name: "Noise Displace",
			Params: []ParamSpec{
				rangeSpec("amount", "Amount", 0, 200, 1, 25.0),
				rangeSpec("scale", "Feature Size", 4, 400, 1, 64.0),
				numberSpec("octaves", "Octaves", 1, 6, 1, 4.0),
				numberSpec("seed", "Seed", 0, 99999, 1, 0.0),
			},
			New: func(p Params) Mapper {
				seed := int64(p.Int("seed"))
				oct := int32(p.Int("octaves"))
				return &noiseMapper{
					amount: p.Float("amount"),
					scale:  p.Float("scale"),
					nx:     perlin.NewPerlin(noiseAlpha, noiseBeta, oct, seed),
					ny:     perlin.NewPerlin(noiseAlpha, noiseBeta, oct, seed+1),
				}
			},
		},
	}
}

type noiseMapper struct {
	amount float64
	scale  float64
	nx, ny *perlin.Perlin
}

func (m *noiseMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	fx := x / m.scale
	fy := y / m.scale
	du := m.amount * m.nx.Noise2D(fx, fy)
	dv := m.amount * m.ny.Noise2D(fx, fy)
	if !isFinite(du) || !isFinite(dv) {
		return mapAt(x, y)
	}
	return mapAt(x+du, y+dv)
}
