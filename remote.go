package marketcache

import "context"

//go:generate mockgen -package=mock -source=remote.go -destination=mock/remote.go

// SnapshotFetcher loads the current quote for a symbol.
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context, symbol string) (TickerSnapshot, error)
}

// HistoryFetcher loads a price series for a symbol and range token.
type HistoryFetcher interface {
	FetchHistory(ctx context.Context, symbol, rng string) ([]PricePoint, error)
}

// AIFetcher asks the AI service a question.
type AIFetcher interface {
	FetchAIResponse(ctx context.Context, req AIRequest) (StructuredResponse, error)
}

// OutlookFetcher loads an outlook. A zero timeframe means unspecified.
type OutlookFetcher interface {
	FetchOutlook(ctx context.Context, symbol string, timeframeDays int) (Outlook, error)
}

// NewsFetcher loads headlines for a symbol.
type NewsFetcher interface {
	FetchNews(ctx context.Context, symbol string) ([]NewsItem, error)
}

// RemoteClient is the data service behind the stores. News is optional and
// comes from PlaceholderNews unless a NewsFetcher is supplied to New.
type RemoteClient interface {
	SnapshotFetcher
	HistoryFetcher
	AIFetcher
	OutlookFetcher
}
