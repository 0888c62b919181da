package warp

import "math"

// EdgeMode determines how sample coordinates outside the source bounds
// are handled.
type EdgeMode uint8

const (
	// EdgeClamp saturates coordinates to the nearest edge pixel (default).
	EdgeClamp EdgeMode = iota

	// EdgeWrap tiles the source; coordinates reduce modulo the dimension.
	EdgeWrap

	// EdgeMirror reflects coordinates off the boundary in a triangle-wave
	// pattern with period 2*(dimension-1).
	EdgeMirror

	// EdgeTransparent renders transparent black for any coordinate outside
	// [0, dimension-1]. Flagged coordinates are never sampled.
	EdgeTransparent
)

// String returns a string representation of the edge mode.
func (m EdgeMode) String() string {
	switch m {
	case EdgeClamp:
		return "clamp"
	case EdgeWrap:
		return "wrap"
	case EdgeMirror:
		return "mirror"
	case EdgeTransparent:
		return "transparent"
	default:
		return "unknown"
	}
}

// ParseEdgeMode converts a string value to an EdgeMode.
// Unrecognized values resolve to EdgeClamp.
func ParseEdgeMode(s string) EdgeMode {
	switch s {
	case "wrap":
		return EdgeWrap
	case "mirror":
		return EdgeMirror
	case "transparent":
		return EdgeTransparent
	default:
		return EdgeClamp
	}
}

// resolveAxis normalizes a single coordinate against one dimension.
// outside is only ever true for EdgeTransparent.
func resolveAxis(v float64, dim int, mode EdgeMode) (float64, bool) {
	max := float64(dim - 1)
	switch mode {
	case EdgeWrap:
		v = math.Mod(v, float64(dim))
		if v < 0 {
			v += float64(dim)
		}
		return v, false
	case EdgeMirror:
		if dim <= 1 {
			return 0, false
		}
		period := 2 * max
		v = math.Mod(v, period)
		if v < 0 {
			v += period
		}
		if v > max {
			v = period - v
		}
		return v, false
	case EdgeTransparent:
		if v < 0 || v > max {
			return v, true
		}
		return v, false
	default: // EdgeClamp
		if v < 0 {
			return 0, false
		}
		if v > max {
			return max, false
		}
		return v, false
	}
}

// resolveEdge normalizes a source coordinate pair against the buffer
// dimensions. When outside is true the caller must emit transparent black
// and skip sampling entirely.
func resolveEdge(u, v float64, w, h int, mode EdgeMode) (ru, rv float64, outside bool) {
	ru, ox := resolveAxis(u, w, mode)
	rv, oy := resolveAxis(v, h, mode)
	return ru, rv, ox || oy
}
