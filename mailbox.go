package warp

import (
	"context"
	"sync"
)

// Mailbox is a single-slot, latest-request-wins handoff between request
// producers (UI parameter changes) and the one goroutine that renders.
// Posting overwrites any pending request; a burst of rapid changes
// coalesces into a single pass over the newest parameters.
type Mailbox struct {
	mu      sync.Mutex
	pending Request
	has     bool
	wake    chan struct{}
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{wake: make(chan struct{}, 1)}
}

// Post stores a request, replacing any pending one. It never blocks.
func (m *Mailbox) Post(r Request) {
	m.mu.Lock()
	m.pending = r
	m.has = true
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// take removes and returns the pending request, if any.
func (m *Mailbox) take() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.has {
		return Request{}, false
	}
	r := m.pending
	m.has = false
	m.pending = Request{}
	return r, true
}

// Next blocks until a request is pending or the context is canceled.
func (m *Mailbox) Next(ctx context.Context) (Request, error) {
	for {
		if r, ok := m.take(); ok {
			return r, nil
		}
		select {
		case <-ctx.Done():
			return Request{}, ctx.Err()
		case <-m.wake:
		}
	}
}

// Loop drains a mailbox from a single goroutine, rendering the newest
// request through an engine and publishing each completed frame. A request
// posted while a pass is in flight supersedes any earlier pending one; the
// in-flight pass still completes and publishes (buffers are never partially
// visible).
type Loop struct {
	engine  *Engine
	source  Source
	mailbox *Mailbox
	onFrame func(*Pixmap)
}

// NewLoop creates a render loop. onFrame receives each completed
// destination buffer and must not retain the engine's source buffers.
func NewLoop(e *Engine, src Source, onFrame func(*Pixmap)) *Loop {
	return &Loop{
		engine:  e,
		source:  src,
		mailbox: NewMailbox(),
		onFrame: onFrame,
	}
}

// Post schedules a render of the given request, superseding any pending one.
func (l *Loop) Post(r Request) {
	l.mailbox.Post(r)
}

// Run processes requests until the context is canceled. Render errors are
// logged and skipped; they do not stop the loop.
func (l *Loop) Run(ctx context.Context) error {
	for {
		req, err := l.mailbox.Next(ctx)
		if err != nil {
			return err
		}
		dst, err := l.engine.Render(l.source, req)
		if err != nil {
			Logger().Warn("warp: render failed", "filter", req.FilterID, "error", err)
			continue
		}
		if l.onFrame != nil {
			l.onFrame(dst)
		}
	}
}
