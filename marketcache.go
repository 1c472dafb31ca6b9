// Package marketcache keeps market data close to the screen. It provides a
// generic per-key TTL cache that coalesces concurrent fetches for the same key
// and falls back to the previous value when a fetch fails, and binds it to the
// five kinds of data a market client shows: price snapshots, price history,
// AI responses, outlooks, and news.
//
// Stores are built explicitly by New and handed to whatever needs them; there
// are no package-level instances.
//
//    stores, err := marketcache.New(marketcache.DefaultConfig(), client,
//        marketcache.WithLogger(logger))
//    if err != nil {
//        log.Fatal(err)
//    }
//    defer func() { _ = stores.Close() }()
//
//    snap, ok := stores.Snapshots.Read("aapl") // never blocks
package marketcache

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// FetchFunc performs the remote lookup for one key. Retries, if any, are the
// responsibility of the function, not of the cache.
type FetchFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

type options struct {
	clock        clock.Clock
	logger       *zap.Logger
	hub          *Hub
	fetchTimeout time.Duration
}

// Option configures a KeyedCache or a Stores instance.
type Option func(*options)

// WithClock sets the time source. Tests pass clock.NewMock().
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithHub publishes cache state changes to h.
func WithHub(h *Hub) Option {
	return func(o *options) { o.hub = h }
}

// WithFetchTimeout bounds every fetch. The zero value means no bound beyond
// what the fetch function imposes itself.
func WithFetchTimeout(d time.Duration) Option {
	return func(o *options) { o.fetchTimeout = d }
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
