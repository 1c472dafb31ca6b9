package marketcache

// Source tells a Refresh caller where the returned value came from.
type Source uint8

const (
	SourceNone     Source = iota
	SourceFresh           // this refresh fetched the value
	SourceFallback        // this refresh failed; the previous value is returned
	SourceInFlight        // another refresh is outstanding; the current value is returned
)

func (s Source) String() string {
	switch s {
	case SourceFresh:
		return "fresh"
	case SourceFallback:
		return "fallback"
	case SourceInFlight:
		return "in_flight"
	default:
		return "none"
	}
}

// Result is the outcome of a successful Refresh: a value and its source. A
// refresh that has nothing to return reports an error instead.
type Result[V any] struct {
	Value  V
	Source Source
}

// IsFallback reports whether the value is stale because the fetch failed.
func (r Result[V]) IsFallback() bool { return r.Source == SourceFallback }
