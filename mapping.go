package warp

// Geometry carries the derived per-pass geometry injected by the engine:
// the source dimensions, the resolved center in source-pixel space, and the
// resolved radius of effect in pixels.
type Geometry struct {
	W, H     int
	CX, CY   float64
	RadiusPx float64
}

// MinDim returns the shorter source dimension as a float.
func (g Geometry) MinDim() float64 {
	if g.W < g.H {
		return float64(g.W)
	}
	return float64(g.H)
}

// Mapping is the result of an inverse map invocation: either a source
// coordinate to sample, or an explicitly transparent pixel (used by filters
// at poles and branch points, honored regardless of edge mode).
type Mapping struct {
	U, V        float64
	Transparent bool
}

// mapAt builds a sample mapping.
func mapAt(u, v float64) Mapping {
	return Mapping{U: u, V: v}
}

// mapTransparent builds the transparent mapping.
func mapTransparent() Mapping {
	return Mapping{Transparent: true}
}

// Mapper is the inverse coordinate mapping of one configured filter.
//
// Map receives an output pixel position already translated to source space
// and returns the source coordinate to sample there. Implementations must be
// pure: no shared mutable state, same inputs always yield the same outputs
// (seeded noise counts as pure — the seed is a declared parameter). Results
// need not be in bounds; the edge resolver handles that. Implementations
// guard their own singularities and never return NaN or Inf; the engine
// additionally recovers any non-finite result to the identity mapping.
type Mapper interface {
	Map(x, y float64, g Geometry) Mapping
}

// Descriptor is the immutable description of one filter: its identity, its
// parameter schema, and a constructor that decodes a fully resolved
// parameter record into a configured Mapper.
type Descriptor struct {
	ID     string
	Name   string
	Params []ParamSpec

	// New builds a mapper from a record that Resolve has already populated:
	// every declared key is present, bounded, and of the schema's type.
	New func(p Params) Mapper
}
