package marketcache

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize/english"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// priceMismatchTolerance is the relative difference between the quote and the
// latest close above which CheckConsistency warns.
const priceMismatchTolerance = 0.001

// WarningKind names a consistency finding.
type WarningKind uint8

const (
	WarningPriceMismatch WarningKind = iota + 1
	WarningSnapshotStale
	WarningHistoryStale
)

func (k WarningKind) String() string {
	switch k {
	case WarningPriceMismatch:
		return "price_mismatch"
	case WarningSnapshotStale:
		return "snapshot_stale"
	case WarningHistoryStale:
		return "history_stale"
	default:
		return "unknown"
	}
}

// Warning is one consistency finding. Warnings are diagnostic only.
type Warning struct {
	Kind    WarningKind
	Symbol  Symbol
	Message string
}

// RefreshSummary reports the outcome of RefreshAll per store. A nil error
// means the store holds a value for the symbol, fresh or fallback.
type RefreshSummary struct {
	Symbol      Symbol
	SnapshotErr error
	HistoryErr  error
}

// OK reports whether both stores refreshed without error.
func (r RefreshSummary) OK() bool { return r.SnapshotErr == nil && r.HistoryErr == nil }

// Coordinator reads across the snapshot and history stores of a symbol to
// report overall freshness. It only uses the stores' public methods.
type Coordinator struct {
	snapshots    *SnapshotStore
	history      *HistoryStore
	historyRange string
	location     *time.Location
	logger       *zap.Logger
}

// NewCoordinator returns a coordinator over snapshots and history. History is
// consulted at historyRange (empty means DefaultHistoryRange) and banner
// times are rendered in loc (nil means local time).
func NewCoordinator(snapshots *SnapshotStore, history *HistoryStore, historyRange string, loc *time.Location, opts ...Option) *Coordinator {
	o := buildOptions(opts)
	if loc == nil {
		loc = time.Local
	}
	return &Coordinator{
		snapshots:    snapshots,
		history:      history,
		historyRange: string(NormalizeRange(historyRange)),
		location:     loc,
		logger:       o.logger.Named("coordinator"),
	}
}

// RefreshAll force-refreshes the snapshot and history of symbol in parallel
// and waits for both. It does not fail when either store fails; the summary
// says which did.
func (c *Coordinator) RefreshAll(ctx context.Context, symbol string) RefreshSummary {
	summary := RefreshSummary{Symbol: NormalizeSymbol(symbol)}

	var g errgroup.Group
	g.Go(func() error {
		_, summary.SnapshotErr = c.snapshots.ForceRefresh(ctx, symbol)
		return nil
	})
	g.Go(func() error {
		_, summary.HistoryErr = c.history.ForceRefresh(ctx, symbol, c.historyRange)
		return nil
	})
	_ = g.Wait()

	if !summary.OK() {
		c.logger.Warn("partial refresh",
			zap.Stringer("symbol", summary.Symbol),
			zap.NamedError("snapshot", summary.SnapshotErr),
			zap.NamedError("history", summary.HistoryErr))
	}
	return summary
}

// MostRecentSync returns the later of the last successful snapshot and
// history fetches for symbol.
func (c *Coordinator) MostRecentSync(symbol string) (time.Time, bool) {
	snapAt, snapOK := c.snapshots.LastUpdateTime(symbol)
	histAt, histOK := c.history.LastUpdateTime(symbol, c.historyRange)
	switch {
	case snapOK && histOK:
		if histAt.After(snapAt) {
			return histAt, true
		}
		return snapAt, true
	case snapOK:
		return snapAt, true
	case histOK:
		return histAt, true
	default:
		return time.Time{}, false
	}
}

// SyncBannerText describes the most recent sync for symbol as of now, for
// example "Updated 3 minutes ago · 2:41 PM". It returns false when nothing
// has ever been synced.
func (c *Coordinator) SyncBannerText(symbol string, now time.Time) (string, bool) {
	at, ok := c.MostRecentSync(symbol)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("Updated %s · %s", relativeAge(now.Sub(at)), at.In(c.location).Format("3:04 PM")), true
}

// relativeAge renders age as "just now" below a minute and as whole minutes
// otherwise.
func relativeAge(age time.Duration) string {
	if age < time.Minute {
		return "just now"
	}
	return english.Plural(int(age/time.Minute), "minute", "") + " ago"
}

// HasStaleData reports whether either store is stale for symbol.
func (c *Coordinator) HasStaleData(symbol string) bool {
	return c.snapshots.IsStale(symbol) || c.history.IsStale(symbol, c.historyRange)
}

// CheckConsistency compares the quote for symbol with the latest close of its
// history and reports staleness of either store. It never alters what the
// stores hold or return.
func (c *Coordinator) CheckConsistency(symbol string) []Warning {
	sym := NormalizeSymbol(symbol)
	var warnings []Warning

	snap, snapOK := c.snapshots.Entry(symbol)
	latest, closeOK := c.history.LatestClose(symbol, c.historyRange)
	if snapOK && snap.HasValue && closeOK && latest.Close != 0 {
		price := snap.Value.Price
		diff := math.Abs(price-latest.Close) / math.Abs(latest.Close)
		if diff > priceMismatchTolerance {
			warnings = append(warnings, Warning{
				Kind:   WarningPriceMismatch,
				Symbol: sym,
				Message: fmt.Sprintf("snapshot price %.2f differs from latest close %.2f by %.2f%%",
					price, latest.Close, diff*100),
			})
		}
	}

	if c.snapshots.IsStale(symbol) {
		warnings = append(warnings, Warning{Kind: WarningSnapshotStale, Symbol: sym, Message: "snapshot data is stale"})
	}
	if c.history.IsStale(symbol, c.historyRange) {
		warnings = append(warnings, Warning{Kind: WarningHistoryStale, Symbol: sym, Message: "history data is stale"})
	}

	for _, w := range warnings {
		c.logger.Debug("consistency warning", zap.Stringer("symbol", sym), zap.Stringer("kind", w.Kind), zap.String("message", w.Message))
	}
	return warnings
}
