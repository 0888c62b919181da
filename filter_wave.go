package warp

import "math"

// Periodic displacement filters: wave, ripple, two-source interference, and
// a multi-harmonic Fourier sum. All of them compute a displacement field
// and add it to the identity coordinates, so a zero amplitude is the exact
// identity.

func waveFilters() []Descriptor {
	return []Descriptor{
		{
			ID: "wave", Name: "Wave",
			Params: []ParamSpec{
				rangeSpec("ampX", "Amplitude X", 0, 100, 1, 10.0),
				rangeSpec("ampY", "Amplitude Y", 0, 100, 1, 10.0),
				rangeSpec("wavelengthX", "Wavelength X", 1, 500, 1, 60.0),
				rangeSpec("wavelengthY", "Wavelength Y", 1, 500, 1, 60.0),
				rangeSpec("phase", "Phase", -180, 180, 1, 0.0),
			},
			New: func(p Params) Mapper {
				return &waveMapper{
					ampX:  p.Float("ampX"),
					ampY:  p.Float("ampY"),
					wlX:   math.Max(p.Float("wavelengthX"), 1e-3),
					wlY:   math.Max(p.Float("wavelengthY"), 1e-3),
					phase: p.Float("phase") * math.Pi / 180,
				}
			},
		},
		{
			ID: "ripple", Name: "Ripple",
			Params: append(append([]ParamSpec{
				rangeSpec("amount", "Amount", 0, 100, 1, 10.0),
				rangeSpec("wavelength", "Wavelength", 1, 500, 1, 40.0),
				rangeSpec("phase", "Phase", -180, 180, 1, 0.0),
			}, centerSpecs()...), radiusSpec()),
			New: func(p Params) Mapper {
				return &rippleMapper{
					amount: p.Float("amount"),
					wl:     math.Max(p.Float("wavelength"), 1e-3),
					phase:  p.Float("phase") * math.Pi / 180,
				}
			},
		},
		{
			ID: "interference", Name: "Interference",
			Params: append([]ParamSpec{
				rangeSpec("amount", "Amount", 0, 100, 1, 8.0),
				rangeSpec("wavelength", "Wavelength", 1, 500, 1, 30.0),
				rangeSpec("separation", "Separation", 0, 100, 1, 40.0),
				rangeSpec("phase", "Phase", -180, 180, 1, 0.0),
			}, centerSpecs()...),
			New: func(p Params) Mapper {
				return &interferenceMapper{
					amount:     p.Float("amount"),
					wl:         math.Max(p.Float("wavelength"), 1e-3),
					separation: p.Float("separation"),
					phase:      p.Float("phase") * math.Pi / 180,
				}
			},
		},
		{
			ID: "fourier", Name: "Fourier Sum",
			Params: []ParamSpec{
				rangeSpec("amount", "Amount", 0, 100, 1, 12.0),
				numberSpec("harmonics", "Harmonics", 1, 5, 1, 3.0),
				rangeSpec("wavelength", "Wavelength", 4, 500, 1, 120.0),
				rangeSpec("decay", "Decay", 0.1, 1, 0.05, 0.6),
				rangeSpec("phase", "Phase", -180, 180, 1, 0.0),
			},
			New: func(p Params) Mapper {
				return &fourierMapper{
					amount:    p.Float("amount"),
					harmonics: p.Int("harmonics"),
					wl:        math.Max(p.Float("wavelength"), 1e-3),
					decay:     p.Float("decay"),
					phase:     p.Float("phase") * math.Pi / 180,
				}
			},
		},
	}
}

// waveMapper displaces each axis by a sinusoid of the other axis.
type waveMapper struct {
	ampX, ampY float64
	wlX, wlY   float64
	phase      float64
}

func (m *waveMapper) Map(x, y float64, g Geometry) Mapping {
	u := x + m.ampX*math.Sin(2*math.Pi*y/m.wlX+m.phase)
	v := y + m.ampY*math.Sin(2*math.Pi*x/m.wlY+m.phase)
	return mapAt(u, v)
}

// rippleMapper displaces the radius by a sinusoid of the distance from the
// center, fading out at the radius edge.
type rippleMapper struct {
	amount float64
	wl     float64
	phase  float64
}

func (m *rippleMapper) Map(x, y float64, g Geometry) Mapping {
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
	dr := m.amount * math.Sin(2*math.Pi*r/m.wl+m.phase) * (1 - t)
	factor := (r + dr) / r
	return mapAt(g.CX+dx*factor, g.CY+dy*factor)
}

// interferenceMapper superimposes the radial displacement fields of two
// point sources placed symmetrically about the center, producing a
// standing-wave pattern between them.
type interferenceMapper struct {
	amount     float64
	wl         float64
	separation float64
	phase      float64
}

func (m *interferenceMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	half := m.separation / 100 * g.MinDim() * 0.5
	sources := [2]Vec2{
		{X: g.CX - half, Y: g.CY},
		{X: g.CX + half, Y: g.CY},
	}
	var d Vec2
	for _, s := range sources {
		dv := V2(x-s.X, y-s.Y)
		r := dv.Length()
		if r < 1e-9 {
			continue
		}
		mag := m.amount * 0.5 * math.Sin(2*math.Pi*r/m.wl+m.phase)
		d = d.Add(dv.Mul(mag / r))
	}
	return mapAt(x+d.X, y+d.Y)
}

// fourierMapper sums a small number of harmonics with geometrically
// decaying amplitudes, one sum per axis.
type fourierMapper struct {
	amount    float64
	harmonics int
	wl        float64
	decay     float64
	phase     float64
}

func (m *fourierMapper) Map(x, y float64, g Geometry) Mapping {
	if m.amount == 0 {
		return mapAt(x, y)
	}
	var du, dv float64
	amp := m.amount
	for k := 1; k <= m.harmonics; k++ {
		fk := float64(k)
		du += amp * math.Sin(2*math.Pi*fk*y/m.wl+fk*m.phase)
		dv += amp * math.Sin(2*math.Pi*fk*x/m.wl+fk*m.phase)
		amp *= m.decay
	}
	return mapAt(x+du, y+dv)
}
