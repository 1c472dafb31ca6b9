package marketcache

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

const newsStoreName = "news"

// NewsStore caches headlines per symbol. Until a real news source exists it
// is fed by PlaceholderNews; any NewsFetcher can take its place without
// changing the store.
type NewsStore struct {
	s       *store[Symbol, []NewsItem]
	fetcher NewsFetcher
}

// NewNewsStore returns an empty store loading headlines through fetcher.
func NewNewsStore(fetcher NewsFetcher, policy FreshnessPolicy, opts ...Option) *NewsStore {
	return &NewsStore{
		s:       newStore[Symbol, []NewsItem](newsStoreName, policy, opts),
		fetcher: fetcher,
	}
}

func (st *NewsStore) fetch(ctx context.Context, symbol Symbol) ([]NewsItem, error) {
	return st.fetcher.FetchNews(ctx, string(symbol))
}

// Read returns the cached headlines for symbol, starting a background load
// when they are missing or older than the cache window. It never blocks.
func (st *NewsStore) Read(symbol string) ([]NewsItem, bool) {
	key := NormalizeSymbol(symbol)
	if key == "" {
		return nil, false
	}
	return st.s.read(key, st.fetch)
}

// ForceRefresh loads headlines for symbol now and waits for them.
func (st *NewsStore) ForceRefresh(ctx context.Context, symbol string) ([]NewsItem, error) {
	key := NormalizeSymbol(symbol)
	if key == "" {
		return nil, errSymbolRequired
	}
	return st.s.forceRefresh(ctx, key, st.fetch)
}

// LastUpdateTime returns when headlines for symbol were last loaded.
func (st *NewsStore) LastUpdateTime(symbol string) (time.Time, bool) {
	return st.s.lastUpdate(NormalizeSymbol(symbol))
}

// IsStale reports whether headlines for symbol are missing or too old.
func (st *NewsStore) IsStale(symbol string) bool {
	return st.s.isStale(NormalizeSymbol(symbol))
}

// LastError returns the classification of the last failed load, or nil.
func (st *NewsStore) LastError(symbol string) *FetchError {
	return st.s.lastError(NormalizeSymbol(symbol))
}

// Entry returns a copy of the state held for symbol.
func (st *NewsStore) Entry(symbol string) (CacheEntry[[]NewsItem], bool) {
	return st.s.cache.Entry(NormalizeSymbol(symbol))
}

// Cache exposes the underlying cache.
func (st *NewsStore) Cache() *KeyedCache[Symbol, []NewsItem] { return st.s.cache }

// ClearAll drops every cached headline.
func (st *NewsStore) ClearAll() { st.s.cache.Clear() }

// Wait blocks until background loads started by Read have completed.
func (st *NewsStore) Wait() { st.s.wait() }

////////////////////////////////////////

// newsNamespace scopes the name-based UUIDs of placeholder items.
var newsNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://marketcache.local/news"))

type newsTemplate struct {
	headline string
	summary  string
	source   string
	age      time.Duration
}

var newsTemplates = []newsTemplate{
	{"%s shares move as traders weigh latest guidance", "Investors are reassessing %s after management updated its outlook.", "Market Wire", 1 * time.Hour},
	{"Analysts revisit price targets on %s", "Several desks adjusted their models for %s following recent trading.", "Street Notes", 3 * time.Hour},
	{"Options activity picks up in %s", "Unusual volume in near-dated contracts points to heightened interest in %s.", "Derivatives Daily", 5 * time.Hour},
	{"What the sector rotation means for %s", "Money flows between sectors are putting %s in focus this week.", "Macro Brief", 8 * time.Hour},
	{"%s: key levels to watch", "Technical traders are eyeing support and resistance zones on %s.", "Chart Room", 12 * time.Hour},
	{"Institutional filings show shifts in %s holdings", "Quarterly filings reveal changes among large holders of %s.", "Filings Tracker", 20 * time.Hour},
}

// placeholderCount is how many items PlaceholderNews yields per symbol.
const placeholderCount = 4

// PlaceholderNews stands in for a news service that does not exist yet. For
// a given symbol it always yields the same items: IDs, headlines, and order
// depend only on the symbol, and timestamps sit at fixed offsets before the
// start of the current hour. It never fails.
type PlaceholderNews struct {
	Clock clock.Clock
}

// FetchNews implements NewsFetcher.
func (p PlaceholderNews) FetchNews(_ context.Context, symbol string) ([]NewsItem, error) {
	sym := string(NormalizeSymbol(symbol))
	c := p.Clock
	if c == nil {
		c = clock.New()
	}
	anchor := c.Now().UTC().Truncate(time.Hour)

	h := fnv.New32a()
	_, _ = h.Write([]byte(sym))
	offset := int(h.Sum32() % uint32(len(newsTemplates)))

	items := make([]NewsItem, 0, placeholderCount)
	for i := 0; i < placeholderCount; i++ {
		t := newsTemplates[(offset+i)%len(newsTemplates)]
		id := uuid.NewSHA1(newsNamespace, []byte(fmt.Sprintf("%s/%d", sym, i)))
		items = append(items, NewsItem{
			ID:          id.String(),
			Symbol:      sym,
			Headline:    fmt.Sprintf(t.headline, sym),
			Summary:     fmt.Sprintf(t.summary, sym),
			Source:      t.source,
			PublishedAt: anchor.Add(-t.age),
		})
	}
	return items, nil
}
