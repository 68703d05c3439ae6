package geoloc

import (
	"context"
	"log"
	"sync"
	"time"

	"backend-rutacorrentina/internal/shared/geo"
)

// Options mirrors the position-watch configuration of the device stream.
type Options struct {
	HighAccuracy bool
	MaximumAge   time.Duration
	Timeout      time.Duration
}

func DefaultOptions() Options {
	return Options{
		HighAccuracy: true,
		MaximumAge:   10 * time.Second,
		Timeout:      15 * time.Second,
	}
}

// Source is a continuous position stream. Implementations call update for
// every new fix and fail for acquisition errors until ctx is done.
type Source interface {
	Watch(ctx context.Context, opts Options, update func(geo.Coordinate), fail func(error))
}

// Feed keeps the single most recent known coordinate from a Source.
// Updates are applied and fanned out one at a time, in arrival order.
// Acquisition errors are logged and leave the last coordinate in place,
// so consumers degrade to a stale-but-available value, never a failure.
type Feed struct {
	src  Source
	opts Options

	mu        sync.Mutex
	current   geo.Coordinate
	hasFix    bool
	listeners []func(geo.Coordinate)
	cancel    context.CancelFunc

	// notifyMu serializes whole updates: the next fix is not applied until
	// every listener finished with the previous one.
	notifyMu sync.Mutex
}

func NewFeed(src Source, opts Options) *Feed {
	return &Feed{src: src, opts: opts}
}

// Start subscribes to the source. The subscription lives until Stop or
// until ctx is done.
func (f *Feed) Start(ctx context.Context) {
	f.mu.Lock()
	if f.cancel != nil {
		f.mu.Unlock()
		return
	}
	watchCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.mu.Unlock()

	f.src.Watch(watchCtx, f.opts, f.handleUpdate, f.handleError)
}

func (f *Feed) Stop() {
	f.mu.Lock()
	cancel := f.cancel
	f.cancel = nil
	f.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Current returns the latest known coordinate, if any fix arrived yet.
func (f *Feed) Current() (geo.Coordinate, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current, f.hasFix
}

// OnUpdate registers a listener invoked for every position update.
// Listeners run synchronously in registration order; a listener must not
// re-enter the feed.
func (f *Feed) OnUpdate(fn func(geo.Coordinate)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

func (f *Feed) handleUpdate(c geo.Coordinate) {
	f.notifyMu.Lock()
	defer f.notifyMu.Unlock()

	f.mu.Lock()
	f.current = c
	f.hasFix = true
	listeners := append(([]func(geo.Coordinate))(nil), f.listeners...)
	f.mu.Unlock()

	for _, fn := range listeners {
		fn(c)
	}
}

func (f *Feed) handleError(err error) {
	log.Printf("geolocation error: %v", err)
}
