package marketcache

import "time"

// CacheEntry is a point-in-time copy of the state held for one key. It is
// meant to be consumed by upstream clients; mutating it has no effect on the
// cache.
type CacheEntry[V any] struct {
	Value    V
	HasValue bool

	// LastSuccessAt is when Value was fetched. The zero value means never.
	LastSuccessAt time.Time

	// IsFetching is true while exactly one fetch for the key is outstanding.
	IsFetching bool

	// LastError is the classification of the most recent failed fetch, and is
	// cleared when a fetch starts or succeeds.
	LastError *FetchError

	// LastFailureAt is when LastError was recorded.
	LastFailureAt time.Time

	// UsingFallback is true when the most recent completed fetch failed and
	// Value is left over from an earlier success.
	UsingFallback bool
}

// flight is one outstanding fetch. done is closed after result and err are
// written, so waiters read them without holding the cache lock.
type flight[V any] struct {
	done   chan struct{}
	result Result[V]
	err    error
}

// cacheEntry is the single record kept per key. Every field is guarded by the
// owning KeyedCache's lock; the flight pointer doubles as the in-flight flag,
// so there is one place that decides whether a fetch may start.
type cacheEntry[V any] struct {
	value         V
	hasValue      bool
	lastSuccessAt time.Time
	lastError     *FetchError
	lastFailureAt time.Time
	usingFallback bool
	flight        *flight[V]
}

// WARNING: must hold the cache lock for the duration of this call.
func (e *cacheEntry[V]) snapshot() CacheEntry[V] {
	return CacheEntry[V]{
		Value:         e.value,
		HasValue:      e.hasValue,
		LastSuccessAt: e.lastSuccessAt,
		IsFetching:    e.flight != nil,
		LastError:     e.lastError,
		LastFailureAt: e.lastFailureAt,
		UsingFallback: e.usingFallback,
	}
}

// WARNING: must hold the cache lock for the duration of this call.
func (e *cacheEntry[V]) storeValue(now time.Time, value V) {
	e.value = value
	e.hasValue = true
	e.lastSuccessAt = now
	e.lastError = nil
	e.lastFailureAt = time.Time{}
	e.usingFallback = false
}

// storeError records a failure. A previously fetched value is kept, since a
// good value is only ever replaced by another good value. WARNING: must hold
// the cache lock for the duration of this call.
func (e *cacheEntry[V]) storeError(now time.Time, fe *FetchError) {
	e.lastError = fe
	e.lastFailureAt = now
	e.usingFallback = e.hasValue
}
