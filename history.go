package marketcache

import (
	"context"
	"sort"
	"time"
)

const historyStoreName = "history"

// HistoryStore caches price series per symbol and range.
type HistoryStore struct {
	s       *store[HistoryKey, History]
	fetcher HistoryFetcher
}

// NewHistoryStore returns an empty store loading series through fetcher.
func NewHistoryStore(fetcher HistoryFetcher, policy FreshnessPolicy, opts ...Option) *HistoryStore {
	return &HistoryStore{
		s:       newStore[HistoryKey, History](historyStoreName, policy, opts),
		fetcher: fetcher,
	}
}

// fetch loads a series and sorts it by date. An empty series is EmptyData.
func (st *HistoryStore) fetch(ctx context.Context, key HistoryKey) (History, error) {
	points, err := st.fetcher.FetchHistory(ctx, string(key.Symbol), string(key.Range))
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, &FetchError{Kind: KindEmptyData, Message: "no price history for " + key.String()}
	}
	series := make(History, len(points))
	copy(series, points)
	sort.SliceStable(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series, nil
}

// Read returns the cached series for symbol and rng, starting a background
// refresh when it is missing or older than the cache window. An empty rng
// means DefaultHistoryRange. It never blocks.
func (st *HistoryStore) Read(symbol, rng string) (History, bool) {
	key := NewHistoryKey(symbol, rng)
	if key.Symbol == "" {
		return nil, false
	}
	return st.s.read(key, st.fetch)
}

// ForceRefresh fetches the series for symbol and rng now and waits for it.
func (st *HistoryStore) ForceRefresh(ctx context.Context, symbol, rng string) (History, error) {
	key := NewHistoryKey(symbol, rng)
	if key.Symbol == "" {
		return nil, errSymbolRequired
	}
	return st.s.forceRefresh(ctx, key, st.fetch)
}

// LatestClose returns the most recent cached close for symbol and rng
// without triggering a fetch.
func (st *HistoryStore) LatestClose(symbol, rng string) (PricePoint, bool) {
	series, ok := st.s.cache.Get(NewHistoryKey(symbol, rng))
	if !ok {
		return PricePoint{}, false
	}
	return series.Latest()
}

// LastUpdateTime returns when the series for symbol and rng was last fetched.
func (st *HistoryStore) LastUpdateTime(symbol, rng string) (time.Time, bool) {
	return st.s.lastUpdate(NewHistoryKey(symbol, rng))
}

// IsStale reports whether the series is missing or too old to show without
// a warning.
func (st *HistoryStore) IsStale(symbol, rng string) bool {
	return st.s.isStale(NewHistoryKey(symbol, rng))
}

// LastError returns the classification of the last failed fetch, or nil.
func (st *HistoryStore) LastError(symbol, rng string) *FetchError {
	return st.s.lastError(NewHistoryKey(symbol, rng))
}

// Entry returns a copy of the state held for symbol and rng.
func (st *HistoryStore) Entry(symbol, rng string) (CacheEntry[History], bool) {
	return st.s.cache.Entry(NewHistoryKey(symbol, rng))
}

// Cache exposes the underlying cache.
func (st *HistoryStore) Cache() *KeyedCache[HistoryKey, History] { return st.s.cache }

// ClearAll drops every cached series.
func (st *HistoryStore) ClearAll() { st.s.cache.Clear() }

// Wait blocks until background refreshes started by Read have completed.
func (st *HistoryStore) Wait() { st.s.wait() }
