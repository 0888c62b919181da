package warp

import (
	"errors"
	"runtime"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"
)

// Common errors for engine operations.
var (
	// ErrNilSource is returned when Render is called without a source.
	ErrNilSource = errors.New("warp: nil source")

	// ErrEmptySource is returned when the source decodes to zero pixels.
	ErrEmptySource = errors.New("warp: source has no pixels")
)

// Default engine limits.
const (
	// DefaultMinScale and DefaultMaxScale bound the view scale so a render
	// pass can neither allocate unbounded memory nor round to zero pixels.
	DefaultMinScale = 1.0 / 16
	DefaultMaxScale = 16.0
)

// Source is the canonical image the engine renders from. The engine caches
// the decoded buffer and calls Decode again only when Size or Version
// changes.
type Source interface {
	Size() (w, h int)
	Version() uint64
	Decode() (*Pixmap, error)
}

// StaticSource is an in-memory Source over a Pixmap. Replacing the pixmap
// bumps the version so engine caches re-decode.
type StaticSource struct {
	mu      sync.Mutex
	pix     *Pixmap
	version uint64
}

// NewStaticSource wraps a pixmap as a Source.
func NewStaticSource(p *Pixmap) *StaticSource {
	return &StaticSource{pix: p, version: 1}
}

// Size returns the current pixmap dimensions.
func (s *StaticSource) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pix == nil {
		return 0, 0
	}
	return s.pix.Width(), s.pix.Height()
}

// Version returns the current content version.
func (s *StaticSource) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Decode returns the wrapped pixmap.
func (s *StaticSource) Decode() (*Pixmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pix, nil
}

// Replace swaps the pixmap and bumps the version (load, paste, commit).
func (s *StaticSource) Replace(p *Pixmap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pix = p
	s.version++
}

// Request describes one render pass.
type Request struct {
	// FilterID selects the distortion. Empty or unknown ids degrade the
	// pass to a plain nearest-neighbor resize.
	FilterID string

	// Params is the parameter record; missing keys are filled from the
	// filter's schema defaults, unknown keys are ignored.
	Params Params

	// Scale is the view scale. Non-finite values are treated as 1;
	// the result is clamped to the engine's scale limits.
	Scale float64

	// Edge is the out-of-bounds sampling policy.
	Edge EdgeMode
}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithWorkers sets the number of row-parallel workers for a render pass.
// Zero or negative selects the default.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithScaleLimits overrides the view scale clamp range.
func WithScaleLimits(min, max float64) Option {
	return func(e *Engine) {
		if min > 0 && max >= min {
			e.minScale = min
			e.maxScale = max
		}
	}
}

// sourceCache holds the decoded source buffer together with the identity
// it was decoded from. It belongs to one engine instance; there is no
// process-global render state.
type sourceCache struct {
	valid   bool
	w, h    int
	version uint64
	pix     *Pixmap
}

// Engine drives render passes: it owns the source cache, resolves filter
// geometry once per pass, and runs the row-parallel resampling loop.
//
// An Engine serializes its own render passes; use Loop for latest-wins
// scheduling of rapid successive requests.
type Engine struct {
	mu       sync.Mutex
	workers  int
	minScale float64
	maxScale float64
	cache    sourceCache
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		minScale: DefaultMinScale,
		maxScale: DefaultMaxScale,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers <= 0 {
		e.workers = defaultWorkers()
	}
	return e
}

// defaultWorkers mirrors the sweet spot measured for CPU image loops:
// beyond ~6 workers the per-row work is memory bound.
func defaultWorkers() int {
	n := runtime.NumCPU()
	if n > 6 {
		n = 6
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ensureSource refreshes the cache when the source identity (dimensions or
// version) changed since the last pass. The decoded buffer is read-only for
// the duration of a pass.
func (e *Engine) ensureSource(src Source) error {
	w, h := src.Size()
	ver := src.Version()
	if e.cache.valid && e.cache.w == w && e.cache.h == h && e.cache.version == ver {
		return nil
	}
	pix, err := src.Decode()
	if err != nil {
		return err
	}
	if pix == nil || pix.Width() == 0 || pix.Height() == 0 {
		return ErrEmptySource
	}
	Logger().Debug("warp: source cache rebuilt",
		"width", pix.Width(), "height", pix.Height(), "version", ver)
	e.cache = sourceCache{
		valid:   true,
		w:       pix.Width(),
		h:       pix.Height(),
		version: ver,
		pix:     pix,
	}
	return nil
}

// clampScale normalizes the requested view scale into the configured range.
func (e *Engine) clampScale(s float64) float64 {
	if !isFinite(s) {
		return 1
	}
	if s < e.minScale {
		return e.minScale
	}
	if s > e.maxScale {
		return e.maxScale
	}
	return s
}

// Render runs one full pass and returns a freshly allocated destination
// buffer. The buffer is never published partially: Render either returns a
// complete pixmap or an error.
//
// Per-pixel failures never abort the pass: a mapper panic or a non-finite
// mapping recovers that pixel to the identity coordinate and the pass
// continues.
func (e *Engine) Render(src Source, req Request) (*Pixmap, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureSource(src); err != nil {
		return nil, err
	}
	sp := e.cache.pix
	sw := sp.Width()
	sh := sp.Height()

	scale := e.clampScale(req.Scale)
	dw := roundDim(float64(sw) * scale)
	dh := roundDim(float64(sh) * scale)
	dst := NewPixmap(dw, dh)

	desc, ok := Lookup(req.FilterID)
	if !ok {
		if req.FilterID != "" {
			Logger().Warn("warp: unknown filter id, falling back to resize", "filter", req.FilterID)
		}
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), sp, sp.Bounds(), xdraw.Src, nil)
		return dst, nil
	}

	resolved := Resolve(desc, req.Params)
	mapper := desc.New(resolved)
	geom := resolveGeometry(resolved, sw, sh)

	start := time.Now()
	e.renderRows(dst, sp, mapper, geom, scale, req.Edge)
	Logger().Debug("warp: render pass",
		"filter", desc.ID, "width", dw, "height", dh,
		"scale", scale, "edge", req.Edge.String(), "elapsed", time.Since(start))
	return dst, nil
}

// renderRows partitions the destination rows into contiguous bands, one
// per worker. Rows share only the read-only source buffer, so no
// synchronization beyond the final wait is needed.
func (e *Engine) renderRows(dst, src *Pixmap, mapper Mapper, geom Geometry, scale float64, edge EdgeMode) {
	dh := dst.Height()
	workers := e.workers
	if workers > dh {
		workers = dh
	}
	if workers <= 1 {
		renderBand(dst, src, mapper, geom, scale, edge, 0, dh)
		return
	}

	band := (dh + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < dh; y0 += band {
		y1 := y0 + band
		if y1 > dh {
			y1 = dh
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			renderBand(dst, src, mapper, geom, scale, edge, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

// renderBand renders destination rows [y0, y1).
func renderBand(dst, src *Pixmap, mapper Mapper, geom Geometry, scale float64, edge EdgeMode, y0, y1 int) {
	dw := dst.Width()
	sw := src.Width()
	sh := src.Height()
	inv := 1 / scale

	for y := y0; y < y1; y++ {
		sy := float64(y) * inv
		for x := 0; x < dw; x++ {
			sx := float64(x) * inv

			m := safeMap(mapper, sx, sy, geom)
			if m.Transparent {
				dst.SetRGBA8(x, y, 0, 0, 0, 0)
				continue
			}
			u, v := m.U, m.V
			if !isFinite(u) || !isFinite(v) {
				u, v = sx, sy
			}

			ru, rv, outside := resolveEdge(u, v, sw, sh, edge)
			if outside {
				dst.SetRGBA8(x, y, 0, 0, 0, 0)
				continue
			}
			r, g, b, a := sampleBilinear(src, ru, rv)
			dst.SetRGBA8(x, y, r, g, b, a)
		}
	}
}

// safeMap invokes the mapper, recovering a panicking filter to the
// identity mapping for that pixel.
func safeMap(mapper Mapper, x, y float64, g Geometry) (m Mapping) {
	defer func() {
		if r := recover(); r != nil {
			m = mapAt(x, y)
		}
	}()
	return mapper.Map(x, y, g)
}

// resolveGeometry derives the injected per-pass geometry from the resolved
// record. Filters without center/radius parameters get the full-image
// defaults.
func resolveGeometry(p Params, w, h int) Geometry {
	cxPct := 50.0
	cyPct := 50.0
	rPct := 100.0
	if p.Has("centerX") {
		cxPct = p.Float("centerX")
	}
	if p.Has("centerY") {
		cyPct = p.Float("centerY")
	}
	if p.Has("radius") {
		rPct = p.Float("radius")
	}
	minDim := float64(w)
	if h < w {
		minDim = float64(h)
	}
	return Geometry{
		W:        w,
		H:        h,
		CX:       cxPct / 100 * float64(w),
		CY:       cyPct / 100 * float64(h),
		RadiusPx: rPct / 100 * minDim * 0.5,
	}
}

// roundDim rounds a scaled dimension, keeping it at least one pixel.
func roundDim(v float64) int {
	n := int(v + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}
