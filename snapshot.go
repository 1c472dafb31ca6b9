package marketcache

import (
	"context"
	"time"
)

const snapshotStoreName = "snapshot"

// SnapshotStore caches the current quote per symbol. A failed refresh leaves
// the previous quote in place and records the error for the symbol.
type SnapshotStore struct {
	s       *store[Symbol, TickerSnapshot]
	fetcher SnapshotFetcher
}

// NewSnapshotStore returns an empty store loading quotes through fetcher.
func NewSnapshotStore(fetcher SnapshotFetcher, policy FreshnessPolicy, opts ...Option) *SnapshotStore {
	return &SnapshotStore{
		s:       newStore[Symbol, TickerSnapshot](snapshotStoreName, policy, opts),
		fetcher: fetcher,
	}
}

func (st *SnapshotStore) fetch(ctx context.Context, symbol Symbol) (TickerSnapshot, error) {
	return st.fetcher.FetchSnapshot(ctx, string(symbol))
}

// Read returns the cached quote for symbol, starting a background refresh
// when it is missing or older than the cache window. It never blocks.
func (st *SnapshotStore) Read(symbol string) (TickerSnapshot, bool) {
	key := NormalizeSymbol(symbol)
	if key == "" {
		return TickerSnapshot{}, false
	}
	return st.s.read(key, st.fetch)
}

// ForceRefresh fetches the quote for symbol now and waits for it.
func (st *SnapshotStore) ForceRefresh(ctx context.Context, symbol string) (TickerSnapshot, error) {
	key := NormalizeSymbol(symbol)
	if key == "" {
		return TickerSnapshot{}, errSymbolRequired
	}
	return st.s.forceRefresh(ctx, key, st.fetch)
}

// LastUpdateTime returns when the quote for symbol was last fetched.
func (st *SnapshotStore) LastUpdateTime(symbol string) (time.Time, bool) {
	return st.s.lastUpdate(NormalizeSymbol(symbol))
}

// IsStale reports whether the quote for symbol is missing or too old to show
// without a warning.
func (st *SnapshotStore) IsStale(symbol string) bool {
	return st.s.isStale(NormalizeSymbol(symbol))
}

// LastError returns the classification of the last failed fetch for symbol,
// or nil.
func (st *SnapshotStore) LastError(symbol string) *FetchError {
	return st.s.lastError(NormalizeSymbol(symbol))
}

// Entry returns a copy of the state held for symbol.
func (st *SnapshotStore) Entry(symbol string) (CacheEntry[TickerSnapshot], bool) {
	return st.s.cache.Entry(NormalizeSymbol(symbol))
}

// Cache exposes the underlying cache.
func (st *SnapshotStore) Cache() *KeyedCache[Symbol, TickerSnapshot] { return st.s.cache }

// ClearAll drops every cached quote.
func (st *SnapshotStore) ClearAll() { st.s.cache.Clear() }

// Wait blocks until background refreshes started by Read have completed.
func (st *SnapshotStore) Wait() { st.s.wait() }
