package warp

import "testing"

func TestParseEdgeMode(t *testing.T) {
	tests := []struct {
		in   string
		want EdgeMode
	}{
		{"clamp", EdgeClamp},
		{"wrap", EdgeWrap},
		{"mirror", EdgeMirror},
		{"transparent", EdgeTransparent},
		{"", EdgeClamp},
		{"bogus", EdgeClamp},
		{"CLAMP", EdgeClamp},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseEdgeMode(tt.in); got != tt.want {
				t.Errorf("ParseEdgeMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveAxisClamp(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		dim  int
		want float64
	}{
		{"inside", 3.5, 10, 3.5},
		{"negative", -2, 10, 0},
		{"past end", 12, 10, 9},
		{"exact end", 9, 10, 9},
		{"just past last texel", 9.5, 10, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, outside := resolveAxis(tt.v, tt.dim, EdgeClamp)
			if outside {
				t.Fatalf("clamp flagged outside for %v", tt.v)
			}
			if got != tt.want {
				t.Errorf("resolveAxis(%v, %d, clamp) = %v, want %v", tt.v, tt.dim, got, tt.want)
			}
		})
	}
}

func TestResolveAxisWrapRoundTrip(t *testing.T) {
	// wrap of W+k must equal wrap of k for non-negative k < W.
	const dim = 16
	for k := 0; k < dim; k++ {
		a, _ := resolveAxis(float64(dim+k), dim, EdgeWrap)
		b, _ := resolveAxis(float64(k), dim, EdgeWrap)
		if a != b {
			t.Errorf("wrap(%d) = %v, wrap(%d) = %v, want equal", dim+k, a, k, b)
		}
	}
	// Negative coordinates wrap to a non-negative result.
	v, _ := resolveAxis(-3, dim, EdgeWrap)
	if v != 13 {
		t.Errorf("wrap(-3) = %v, want 13", v)
	}
}

func TestResolveAxisMirror(t *testing.T) {
	const dim = 10
	tests := []struct {
		name string
		a, b float64
	}{
		{"reflect at zero", -1, 1},
		{"reflect at end", 10, 8},
		{"two past end", 11, 7},
		{"full period", 18, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra, _ := resolveAxis(tt.a, dim, EdgeMirror)
			rb, _ := resolveAxis(tt.b, dim, EdgeMirror)
			if ra != rb {
				t.Errorf("mirror(%v) = %v, mirror(%v) = %v, want equal", tt.a, ra, tt.b, rb)
			}
		})
	}
}

func TestResolveAxisMirrorSinglePixel(t *testing.T) {
	for _, v := range []float64{-5, 0, 0.4, 17} {
		got, outside := resolveAxis(v, 1, EdgeMirror)
		if got != 0 || outside {
			t.Errorf("mirror(%v, dim=1) = (%v, %v), want (0, false)", v, got, outside)
		}
	}
}

func TestResolveAxisTransparent(t *testing.T) {
	tests := []struct {
		v       float64
		outside bool
	}{
		{-0.001, true},
		{0, false},
		{4.5, false},
		{9, false},
		{9.001, true},
		{-5, true},
	}
	for _, tt := range tests {
		_, outside := resolveAxis(tt.v, 10, EdgeTransparent)
		if outside != tt.outside {
			t.Errorf("transparent(%v): outside = %v, want %v", tt.v, outside, tt.outside)
		}
	}
}

func TestResolveEdgeCombines(t *testing.T) {
	// A single out-of-bounds axis flags the whole coordinate.
	if _, _, outside := resolveEdge(5, -1, 10, 10, EdgeTransparent); !outside {
		t.Error("y=-1 not flagged outside")
	}
	if _, _, outside := resolveEdge(-1, 5, 10, 10, EdgeTransparent); !outside {
		t.Error("x=-1 not flagged outside")
	}
	if _, _, outside := resolveEdge(5, 5, 10, 10, EdgeTransparent); outside {
		t.Error("in-bounds coordinate flagged outside")
	}
}
