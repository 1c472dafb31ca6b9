package marketcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// KeyedCache memoizes the results of a remote fetch per key. Values never
// expire on their own: a value is served for as long as it is held, and the
// policy only decides when a refresh is due and when the value is too old to
// show without a warning. At most one fetch per key is outstanding at any
// time; refreshes for different keys proceed independently.
type KeyedCache[K comparable, V any] struct {
	name         string
	clock        clock.Clock
	logger       *zap.Logger
	hub          *Hub
	fetchTimeout time.Duration

	lock   sync.RWMutex // *all* access to policy and data requires holding this lock
	policy FreshnessPolicy
	data   map[K]*cacheEntry[V]
}

// NewKeyedCache returns an empty cache named name (used in logs, metrics and
// events) governed by policy.
func NewKeyedCache[K comparable, V any](name string, policy FreshnessPolicy, opts ...Option) *KeyedCache[K, V] {
	o := buildOptions(opts)
	return &KeyedCache[K, V]{
		name:         name,
		clock:        o.clock,
		logger:       o.logger.Named(name),
		hub:          o.hub,
		fetchTimeout: o.fetchTimeout,
		policy:       policy,
		data:         make(map[K]*cacheEntry[V]),
	}
}

// Name returns the name the cache was created with.
func (c *KeyedCache[K, V]) Name() string { return c.name }

// Policy returns the policy currently in force.
func (c *KeyedCache[K, V]) Policy() FreshnessPolicy {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.policy
}

// SetPolicy replaces the policy. Existing entries are judged against the new
// policy from the next call on.
func (c *KeyedCache[K, V]) SetPolicy(p FreshnessPolicy) {
	c.lock.Lock()
	c.policy = p
	c.lock.Unlock()
}

// Get returns the cached value for key regardless of its age. It never
// triggers a fetch.
func (c *KeyedCache[K, V]) Get(key K) (V, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if e, ok := c.data[key]; ok && e.hasValue {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Entry returns a copy of the state held for key, and whether any state is
// held at all.
func (c *KeyedCache[K, V]) Entry(key K) (CacheEntry[V], bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	e, ok := c.data[key]
	if !ok {
		return CacheEntry[V]{}, false
	}
	return e.snapshot(), true
}

// LastUpdate returns when the value for key was last fetched successfully.
func (c *KeyedCache[K, V]) LastUpdate(key K) (time.Time, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if e, ok := c.data[key]; ok && !e.lastSuccessAt.IsZero() {
		return e.lastSuccessAt, true
	}
	return time.Time{}, false
}

// IsStale reports whether the value for key is missing or older than the
// stale warning threshold at now.
func (c *KeyedCache[K, V]) IsStale(key K, now time.Time) bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	var last time.Time
	if e, ok := c.data[key]; ok {
		last = e.lastSuccessAt
	}
	return c.policy.isStale(last, now)
}

// ShouldRefresh reports whether the value for key is missing or older than
// the cache window at now.
func (c *KeyedCache[K, V]) ShouldRefresh(key K, now time.Time) bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	var last time.Time
	if e, ok := c.data[key]; ok {
		last = e.lastSuccessAt
	}
	return c.policy.needsRefresh(last, now)
}

// Len returns the number of keys holding state.
func (c *KeyedCache[K, V]) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.data)
}

// Delete removes the state held for key. A fetch already in flight for key
// still completes and reaches its waiters, but its result is not cached.
func (c *KeyedCache[K, V]) Delete(key K) {
	c.lock.Lock()
	_, ok := c.data[key]
	delete(c.data, key)
	n := len(c.data)
	c.lock.Unlock()
	if ok {
		entriesGauge.WithLabelValues(c.name).Set(float64(n))
		c.publish(Event{Key: fmt.Sprint(key), Kind: EventCleared})
	}
}

// Clear removes all state. Fetches in flight behave as described for Delete.
func (c *KeyedCache[K, V]) Clear() {
	c.lock.Lock()
	c.data = make(map[K]*cacheEntry[V])
	c.lock.Unlock()
	entriesGauge.WithLabelValues(c.name).Set(0)
	c.publish(Event{Kind: EventCleared})
}

// Refresh fetches a new value for key unless a fetch for key is already
// outstanding, in which case no second fetch is started: if a value is cached
// it is returned at once with SourceInFlight, otherwise the caller waits for
// the outstanding fetch and shares its outcome.
//
// A successful fetch returns SourceFresh. A failed fetch is classified and
// recorded; if an earlier value exists it is returned with SourceFallback,
// otherwise the *FetchError is returned.
//
// The fetch runs on its own goroutine with a context that does not inherit
// ctx's cancellation, so a caller that gives up (ctx done) leaves the fetch to
// finish and update the cache. Such a caller gets ErrStillLoading.
func (c *KeyedCache[K, V]) Refresh(ctx context.Context, key K, fetch FetchFunc[K, V]) (Result[V], error) {
	c.lock.Lock()
	e := c.getOrCreateEntry(key)

	if f := e.flight; f != nil {
		coalescedTotal.WithLabelValues(c.name).Inc()
		if e.hasValue {
			value := e.value
			c.lock.Unlock()
			return Result[V]{Value: value, Source: SourceInFlight}, nil
		}
		c.lock.Unlock()
		return c.wait(ctx, f)
	}

	f := c.launch(ctx, key, e, fetch)
	return c.wait(ctx, f)
}

// Trigger starts a fetch for key unless one is already outstanding, and
// returns without waiting. The returned channel is closed when the
// outstanding fetch for key, new or existing, completes.
func (c *KeyedCache[K, V]) Trigger(ctx context.Context, key K, fetch FetchFunc[K, V]) <-chan struct{} {
	c.lock.Lock()
	e := c.getOrCreateEntry(key)

	if f := e.flight; f != nil {
		c.lock.Unlock()
		coalescedTotal.WithLabelValues(c.name).Inc()
		return f.done
	}

	return c.launch(ctx, key, e, fetch).done
}

// launch marks e as fetching and starts the fetch. WARNING: must be called
// holding the cache lock, which it releases.
func (c *KeyedCache[K, V]) launch(ctx context.Context, key K, e *cacheEntry[V], fetch FetchFunc[K, V]) *flight[V] {
	f := &flight[V]{done: make(chan struct{})}
	e.flight = f
	e.lastError = nil
	c.lock.Unlock()

	c.publish(Event{Key: fmt.Sprint(key), Kind: EventFetchStarted})
	go c.run(context.WithoutCancel(ctx), key, e, f, fetch)
	return f
}

// WARNING: must hold the cache lock for the duration of this call.
func (c *KeyedCache[K, V]) getOrCreateEntry(key K) *cacheEntry[V] {
	e, ok := c.data[key]
	if !ok {
		e = &cacheEntry[V]{}
		c.data[key] = e
		entriesGauge.WithLabelValues(c.name).Set(float64(len(c.data)))
	}
	return e
}

func (c *KeyedCache[K, V]) wait(ctx context.Context, f *flight[V]) (Result[V], error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return Result[V]{}, fmt.Errorf("%w: %w", ErrStillLoading, ctx.Err())
	}
}

// run performs one fetch and settles the entry. It is the only place that
// clears an entry's flight.
func (c *KeyedCache[K, V]) run(ctx context.Context, key K, e *cacheEntry[V], f *flight[V], fetch FetchFunc[K, V]) {
	if c.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.fetchTimeout)
		defer cancel()
	}

	start := c.clock.Now()
	value, err := c.invoke(ctx, key, fetch)
	now := c.clock.Now()
	fetchDuration.WithLabelValues(c.name).Observe(now.Sub(start).Seconds())

	ev := Event{Key: fmt.Sprint(key), At: now}

	c.lock.Lock()
	if err == nil {
		e.storeValue(now, value)
		f.result = Result[V]{Value: value, Source: SourceFresh}
		ev.Kind = EventFetchSucceeded
	} else {
		fe := Classify(err)
		e.storeError(now, fe)
		if e.hasValue {
			f.result = Result[V]{Value: e.value, Source: SourceFallback}
		} else {
			f.err = fe
		}
		ev.Kind = EventFetchFailed
		ev.Err = fe
	}
	hasValue := e.hasValue
	e.flight = nil
	c.lock.Unlock()

	if err == nil {
		fetchesTotal.WithLabelValues(c.name, "success").Inc()
		c.logger.Debug("fetched", zap.String("key", ev.Key), zap.Duration("took", now.Sub(start)))
	} else {
		fetchesTotal.WithLabelValues(c.name, "failure").Inc()
		if hasValue {
			fallbacksTotal.WithLabelValues(c.name).Inc()
			c.logger.Warn("fetch failed, keeping previous value",
				zap.String("key", ev.Key), zap.Stringer("kind", ev.Err.Kind), zap.Error(err))
		} else {
			c.logger.Error("fetch failed with nothing to fall back to",
				zap.String("key", ev.Key), zap.Stringer("kind", ev.Err.Kind), zap.Error(err))
		}
	}
	c.publish(ev)
	close(f.done)
}

// invoke calls fetch, turning a panic into an error so the entry is always
// settled.
func (c *KeyedCache[K, V]) invoke(ctx context.Context, key K, fetch FetchFunc[K, V]) (value V, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FetchError{Kind: KindUnknown, Message: fmt.Sprintf("fetch panicked: %v", r)}
		}
	}()
	return fetch(ctx, key)
}

func (c *KeyedCache[K, V]) publish(ev Event) {
	if c.hub == nil {
		return
	}
	ev.Store = c.name
	if ev.At.IsZero() {
		ev.At = c.clock.Now()
	}
	c.hub.Publish(ev)
}
