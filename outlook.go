package marketcache

import (
	"context"
	"time"
)

const outlookStoreName = "outlook"

// OutlookStore caches outlooks per symbol and timeframe. When a refresh
// fails and an earlier outlook exists, that outlook keeps being served and
// IsUsingFallback reports true until a refresh succeeds.
type OutlookStore struct {
	s       *store[OutlookKey, Outlook]
	fetcher OutlookFetcher
}

// NewOutlookStore returns an empty store loading outlooks through fetcher.
func NewOutlookStore(fetcher OutlookFetcher, policy FreshnessPolicy, opts ...Option) *OutlookStore {
	return &OutlookStore{
		s:       newStore[OutlookKey, Outlook](outlookStoreName, policy, opts),
		fetcher: fetcher,
	}
}

func (st *OutlookStore) fetch(ctx context.Context, key OutlookKey) (Outlook, error) {
	return st.fetcher.FetchOutlook(ctx, string(key.Symbol), key.TimeframeDays)
}

// Read returns the cached outlook, starting a background refresh when it is
// missing or older than the cache window. A non-positive timeframeDays means
// unspecified. It never blocks.
func (st *OutlookStore) Read(symbol string, timeframeDays int) (Outlook, bool) {
	key := NewOutlookKey(symbol, timeframeDays)
	if key.Symbol == "" {
		return Outlook{}, false
	}
	return st.s.read(key, st.fetch)
}

// ForceRefresh fetches the outlook now and waits for it. On failure with an
// earlier outlook cached, that outlook is returned without error and
// IsUsingFallback reports true.
func (st *OutlookStore) ForceRefresh(ctx context.Context, symbol string, timeframeDays int) (Outlook, error) {
	key := NewOutlookKey(symbol, timeframeDays)
	if key.Symbol == "" {
		return Outlook{}, errSymbolRequired
	}
	return st.s.forceRefresh(ctx, key, st.fetch)
}

// IsUsingFallback reports whether the most recent refresh for the key failed
// and the cached outlook is left over from an earlier success.
func (st *OutlookStore) IsUsingFallback(symbol string, timeframeDays int) bool {
	e, ok := st.s.cache.Entry(NewOutlookKey(symbol, timeframeDays))
	return ok && e.UsingFallback
}

// LastUpdateTime returns when the outlook was last fetched.
func (st *OutlookStore) LastUpdateTime(symbol string, timeframeDays int) (time.Time, bool) {
	return st.s.lastUpdate(NewOutlookKey(symbol, timeframeDays))
}

// IsStale reports whether no outlook has been fetched. Outlooks signal age
// through IsUsingFallback rather than a stale warning threshold by default.
func (st *OutlookStore) IsStale(symbol string, timeframeDays int) bool {
	return st.s.isStale(NewOutlookKey(symbol, timeframeDays))
}

// LastError returns the classification of the last failed fetch, or nil.
func (st *OutlookStore) LastError(symbol string, timeframeDays int) *FetchError {
	return st.s.lastError(NewOutlookKey(symbol, timeframeDays))
}

// Entry returns a copy of the state held for the key.
func (st *OutlookStore) Entry(symbol string, timeframeDays int) (CacheEntry[Outlook], bool) {
	return st.s.cache.Entry(NewOutlookKey(symbol, timeframeDays))
}

// Cache exposes the underlying cache.
func (st *OutlookStore) Cache() *KeyedCache[OutlookKey, Outlook] { return st.s.cache }

// ClearAll drops every cached outlook.
func (st *OutlookStore) ClearAll() { st.s.cache.Clear() }

// Wait blocks until background refreshes started by Read have completed.
func (st *OutlookStore) Wait() { st.s.wait() }
