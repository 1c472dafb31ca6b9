package marketcache

import (
	"context"
	"strings"
	"time"
)

const aiResponseStoreName = "ai_response"

// AIResponseStore caches answers by normalized question text alone. The
// symbol, timeframe and verbosity of a request shape the remote call but not
// the cache identity, so the same question asked with different parameters
// shares one entry.
type AIResponseStore struct {
	s       *store[string, StructuredResponse]
	fetcher AIFetcher
}

// NewAIResponseStore returns an empty store asking questions through fetcher.
func NewAIResponseStore(fetcher AIFetcher, policy FreshnessPolicy, opts ...Option) *AIResponseStore {
	return &AIResponseStore{
		s:       newStore[string, StructuredResponse](aiResponseStoreName, policy, opts),
		fetcher: fetcher,
	}
}

// fetchFor binds the non-key parameters of req to a fetch for its key.
func (st *AIResponseStore) fetchFor(req AIRequest) FetchFunc[string, StructuredResponse] {
	req.Question = strings.TrimSpace(req.Question)
	if req.Symbol != "" {
		req.Symbol = string(NormalizeSymbol(req.Symbol))
	}
	if req.TimeframeDays < 0 {
		req.TimeframeDays = 0
	}
	return func(ctx context.Context, _ string) (StructuredResponse, error) {
		return st.fetcher.FetchAIResponse(ctx, req)
	}
}

// Read returns the cached answer for req's question, starting a background
// request when it is missing or older than the cache window. It never blocks.
func (st *AIResponseStore) Read(req AIRequest) (StructuredResponse, bool) {
	key := NormalizeQuestion(req.Question)
	if key == "" {
		return StructuredResponse{}, false
	}
	return st.s.read(key, st.fetchFor(req))
}

// ForceRefresh asks req now and waits for the answer.
func (st *AIResponseStore) ForceRefresh(ctx context.Context, req AIRequest) (StructuredResponse, error) {
	key := NormalizeQuestion(req.Question)
	if key == "" {
		return StructuredResponse{}, errQuestionRequired
	}
	return st.s.forceRefresh(ctx, key, st.fetchFor(req))
}

// LastUpdateTime returns when the answer to question was last fetched.
func (st *AIResponseStore) LastUpdateTime(question string) (time.Time, bool) {
	return st.s.lastUpdate(NormalizeQuestion(question))
}

// IsStale reports whether no answer to question has been fetched. AI
// responses have no stale warning threshold by default.
func (st *AIResponseStore) IsStale(question string) bool {
	return st.s.isStale(NormalizeQuestion(question))
}

// LastError returns the classification of the last failed request, or nil.
func (st *AIResponseStore) LastError(question string) *FetchError {
	return st.s.lastError(NormalizeQuestion(question))
}

// Entry returns a copy of the state held for question.
func (st *AIResponseStore) Entry(question string) (CacheEntry[StructuredResponse], bool) {
	return st.s.cache.Entry(NormalizeQuestion(question))
}

// Cache exposes the underlying cache.
func (st *AIResponseStore) Cache() *KeyedCache[string, StructuredResponse] { return st.s.cache }

// ClearAll drops every cached answer.
func (st *AIResponseStore) ClearAll() { st.s.cache.Clear() }

// Wait blocks until background requests started by Read have completed.
func (st *AIResponseStore) Wait() { st.s.wait() }
