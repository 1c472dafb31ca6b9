package marketcache

import "time"

// FreshnessPolicy governs one store. It is per store, not per key.
type FreshnessPolicy struct {
	// CacheWindow is the age beyond which a read triggers a refresh.
	CacheWindow time.Duration `yaml:"cache_window" validate:"gt=0s"`

	// StaleWarningThreshold is the age beyond which data is too old to show
	// without a warning. The zero value means no threshold is enforced, and
	// an entry is only stale when it has never been fetched successfully.
	StaleWarningThreshold time.Duration `yaml:"stale_warning_threshold" validate:"omitempty,gtefield=CacheWindow"`

	// FailureBackoff suppresses background refreshes triggered by reads for
	// this long after a failed fetch. Forced refreshes ignore it. The zero
	// value disables it.
	FailureBackoff time.Duration `yaml:"failure_backoff" validate:"gte=0s"`
}

// Default policies per entity kind.
var (
	SnapshotPolicy   = FreshnessPolicy{CacheWindow: 60 * time.Second, StaleWarningThreshold: 120 * time.Second}
	HistoryPolicy    = FreshnessPolicy{CacheWindow: 300 * time.Second, StaleWarningThreshold: 600 * time.Second}
	AIResponsePolicy = FreshnessPolicy{CacheWindow: 300 * time.Second}
	OutlookPolicy    = FreshnessPolicy{CacheWindow: 300 * time.Second}
	NewsPolicy       = FreshnessPolicy{CacheWindow: 600 * time.Second, StaleWarningThreshold: 1800 * time.Second}
)

// needsRefresh reports whether a value last fetched at lastSuccess should be
// refreshed at now. The zero time means never fetched.
func (p FreshnessPolicy) needsRefresh(lastSuccess, now time.Time) bool {
	if lastSuccess.IsZero() {
		return true
	}
	return now.Sub(lastSuccess) > p.CacheWindow
}

// isStale reports whether a value last fetched at lastSuccess is too old to
// display without a warning.
func (p FreshnessPolicy) isStale(lastSuccess, now time.Time) bool {
	if lastSuccess.IsZero() {
		return true
	}
	if p.StaleWarningThreshold <= 0 {
		return false
	}
	return now.Sub(lastSuccess) > p.StaleWarningThreshold
}

// inBackoff reports whether a failure at lastFailure still suppresses
// read-triggered refreshes at now.
func (p FreshnessPolicy) inBackoff(lastFailure, now time.Time) bool {
	if p.FailureBackoff <= 0 || lastFailure.IsZero() {
		return false
	}
	return now.Sub(lastFailure) < p.FailureBackoff
}
