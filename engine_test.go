package warp

import (
	"errors"
	"sync"
	"testing"
)

// countingSource wraps a pixmap and counts Decode calls so cache behavior
// is observable.
type countingSource struct {
	mu      sync.Mutex
	pix     *Pixmap
	version uint64
	decodes int
}

func newCountingSource(p *Pixmap) *countingSource {
	return &countingSource{pix: p, version: 1}
}

func (s *countingSource) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pix.Width(), s.pix.Height()
}

func (s *countingSource) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *countingSource) Decode() (*Pixmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decodes++
	return s.pix, nil
}

func (s *countingSource) replace(p *Pixmap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pix = p
	s.version++
}

func (s *countingSource) decodeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decodes
}

func TestRenderNilSource(t *testing.T) {
	e := NewEngine()
	if _, err := e.Render(nil, Request{Scale: 1}); !errors.Is(err, ErrNilSource) {
		t.Errorf("err = %v, want ErrNilSource", err)
	}
}

func TestRenderEmptySource(t *testing.T) {
	e := NewEngine()
	src := NewStaticSource(NewPixmap(0, 0))
	if _, err := e.Render(src, Request{Scale: 1}); !errors.Is(err, ErrEmptySource) {
		t.Errorf("err = %v, want ErrEmptySource", err)
	}
}

func TestRenderSourceCache(t *testing.T) {
	e := NewEngine(WithWorkers(1))
	src := newCountingSource(checkerboard(8, 8))

	for i := 0; i < 3; i++ {
		if _, err := e.Render(src, Request{Scale: 1}); err != nil {
			t.Fatalf("Render %d: %v", i, err)
		}
	}
	if got := src.decodeCount(); got != 1 {
		t.Errorf("decodes after repeated renders = %d, want 1", got)
	}

	src.replace(checkerboard(8, 8))
	if _, err := e.Render(src, Request{Scale: 1}); err != nil {
		t.Fatalf("Render after replace: %v", err)
	}
	if got := src.decodeCount(); got != 2 {
		t.Errorf("decodes after version bump = %d, want 2", got)
	}
}

func TestRenderUnknownFilterFallsBackToResize(t *testing.T) {
	e := NewEngine(WithWorkers(1))
	src := NewStaticSource(checkerboard(8, 8))

	dst, err := e.Render(src, Request{FilterID: "nope", Scale: 2})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if dst.Width() != 16 || dst.Height() != 16 {
		t.Errorf("fallback dims = %dx%d, want 16x16", dst.Width(), dst.Height())
	}
	// Nearest-neighbor resize preserves the top-left texel.
	sr, sg, sb, sa := checkerboard(8, 8).RGBA8At(0, 0)
	dr, dg, db, da := dst.RGBA8At(0, 0)
	if dr != sr || dg != sg || db != sb || da != sa {
		t.Errorf("dst(0,0) = (%d,%d,%d,%d), want source texel (%d,%d,%d,%d)",
			dr, dg, db, da, sr, sg, sb, sa)
	}
}

func TestRenderScaleClamp(t *testing.T) {
	e := NewEngine(WithWorkers(1))
	src := NewStaticSource(checkerboard(8, 8))
	tests := []struct {
		name  string
		scale float64
		wantW int
		wantH int
	}{
		{"tiny clamps to min", 0.001, 1, 1},
		{"huge clamps to max", 1000, 128, 128},
		{"zero clamps to min", 0, 1, 1},
		{"unit", 1, 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst, err := e.Render(src, Request{Scale: tt.scale})
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if dst.Width() != tt.wantW || dst.Height() != tt.wantH {
				t.Errorf("dims = %dx%d, want %dx%d", dst.Width(), dst.Height(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderIdentityPassCopiesSource(t *testing.T) {
	e := NewEngine(WithWorkers(1))
	src := NewStaticSource(checkerboard(8, 8))

	// Zero shear is the exact identity, so the pass reproduces the source.
	dst, err := e.Render(src, Request{
		FilterID: "shear",
		Params:   Params{"shearX": 0.0, "shearY": 0.0},
		Scale:    1,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := checkerboard(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			wr, wg, wb, wa := want.RGBA8At(x, y)
			dr, dg, db, da := dst.RGBA8At(x, y)
			if dr != wr || dg != wg || db != wb || da != wa {
				t.Fatalf("dst(%d,%d) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					x, y, dr, dg, db, da, wr, wg, wb, wa)
			}
		}
	}
}

func TestRenderEdgePolicies(t *testing.T) {
	e := NewEngine(WithWorkers(1))
	pm := NewPixmap(8, 8)
	pm.Clear(White)
	src := NewStaticSource(pm)

	// Full shear maps row 0 to u = x - 4: the left half of the row reads
	// outside the source.
	req := Request{
		FilterID: "shear",
		Params:   Params{"shearX": 100.0, "shearY": 0.0},
		Scale:    1,
	}

	req.Edge = EdgeTransparent
	dst, err := e.Render(src, req)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, _, _, a := dst.RGBA8At(0, 0); a != 0 {
		t.Errorf("transparent edge: alpha at (0,0) = %d, want 0", a)
	}
	if _, _, _, a := dst.RGBA8At(7, 0); a != 255 {
		t.Errorf("transparent edge: alpha at (7,0) = %d, want 255", a)
	}

	req.Edge = EdgeClamp
	dst, err = e.Render(src, req)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, _, _, a := dst.RGBA8At(0, 0); a != 255 {
		t.Errorf("clamp edge: alpha at (0,0) = %d, want 255", a)
	}
}

// panicMapper exercises the per-pixel recovery path.
type panicMapper struct{}

func (panicMapper) Map(x, y float64, g Geometry) Mapping {
	if x == 3 && y == 3 {
		panic("boom")
	}
	return mapAt(x, y)
}

func TestSafeMapRecovers(t *testing.T) {
	g := testGeometry(8, 8)
	got := safeMap(panicMapper{}, 3, 3, g)
	if got.Transparent || got.U != 3 || got.V != 3 {
		t.Errorf("recovered mapping = %+v, want identity at (3, 3)", got)
	}
	got = safeMap(panicMapper{}, 2, 2, g)
	if got.U != 2 || got.V != 2 {
		t.Errorf("non-panicking mapping = %+v", got)
	}
}

func TestResolveGeometry(t *testing.T) {
	g := resolveGeometry(Params{"centerX": 25.0, "centerY": 75.0, "radius": 50.0}, 200, 100)
	if g.CX != 50 || g.CY != 75 {
		t.Errorf("center = (%v, %v), want (50, 75)", g.CX, g.CY)
	}
	if g.RadiusPx != 25 {
		t.Errorf("RadiusPx = %v, want 25", g.RadiusPx)
	}

	// Records without geometry keys get the full-image defaults.
	g = resolveGeometry(Params{}, 200, 100)
	if g.CX != 100 || g.CY != 50 || g.RadiusPx != 50 {
		t.Errorf("defaults = %+v", g)
	}
}

func TestRoundDim(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.1, 1},
		{0.5, 1},
		{1.4, 1},
		{1.5, 2},
		{127.9, 128},
	}
	for _, tt := range tests {
		if got := roundDim(tt.in); got != tt.want {
			t.Errorf("roundDim(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
