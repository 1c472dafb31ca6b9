package marketcache

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// store binds a KeyedCache to the read and refresh discipline shared by every
// entity store. Keys reaching it are already normalized.
type store[K comparable, V any] struct {
	cache      *KeyedCache[K, V]
	clock      clock.Clock
	background sync.WaitGroup
}

func newStore[K comparable, V any](name string, policy FreshnessPolicy, opts []Option) *store[K, V] {
	o := buildOptions(opts)
	return &store[K, V]{
		cache: NewKeyedCache[K, V](name, policy, opts...),
		clock: o.clock,
	}
}

// read returns whatever is cached for key. When the value is missing or past
// the cache window it also starts a refresh in the background; that refresh
// becomes visible to later reads and through the store's events, never to
// this one. read itself never blocks on a fetch.
func (s *store[K, V]) read(key K, fetch FetchFunc[K, V]) (V, bool) {
	now := s.clock.Now()

	refreshing := false
	if s.cache.ShouldRefresh(key, now) && !s.backingOff(key, now) {
		refreshing = true
		done := s.cache.Trigger(context.Background(), key, fetch)
		s.background.Add(1)
		go func() {
			<-done
			s.background.Done()
		}()
	}

	value, ok := s.cache.Get(key)
	recordRead(s.cache.Name(), ok, refreshing)
	return value, ok
}

func (s *store[K, V]) backingOff(key K, now time.Time) bool {
	e, ok := s.cache.Entry(key)
	if !ok || e.LastError == nil {
		return false
	}
	return s.cache.Policy().inBackoff(e.LastFailureAt, now)
}

// forceRefresh refreshes key regardless of freshness and waits for the
// outcome. A fallback or in-flight value is returned without error; the
// failure, if any, stays recorded on the entry.
func (s *store[K, V]) forceRefresh(ctx context.Context, key K, fetch FetchFunc[K, V]) (V, error) {
	res, err := s.cache.Refresh(ctx, key, fetch)
	if err != nil {
		var zero V
		return zero, err
	}
	return res.Value, nil
}

func (s *store[K, V]) lastUpdate(key K) (time.Time, bool) {
	return s.cache.LastUpdate(key)
}

func (s *store[K, V]) isStale(key K) bool {
	return s.cache.IsStale(key, s.clock.Now())
}

func (s *store[K, V]) lastError(key K) *FetchError {
	if e, ok := s.cache.Entry(key); ok {
		return e.LastError
	}
	return nil
}

// wait blocks until every background refresh started by read has completed.
func (s *store[K, V]) wait() {
	s.background.Wait()
}
