package marketcache

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderNewsIsDeterministic(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 3, 15, 14, 41, 7, 0, time.UTC))
	p := PlaceholderNews{Clock: mock}

	first, err := p.FetchNews(context.Background(), "aapl")
	require.NoError(t, err)
	require.Len(t, first, placeholderCount)

	mock.Add(10 * time.Minute)
	second, err := p.FetchNews(context.Background(), " AAPL ")
	require.NoError(t, err)
	assert.Equal(t, first, second, "same symbol within the hour yields identical items")

	anchor := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)
	ids := make(map[string]bool)
	for _, item := range first {
		assert.Equal(t, "AAPL", item.Symbol)
		assert.Contains(t, item.Headline, "AAPL")
		assert.True(t, item.PublishedAt.Before(anchor))
		ids[item.ID] = true
	}
	assert.Len(t, ids, placeholderCount, "IDs are unique")
}

func TestPlaceholderNewsVariesBySymbol(t *testing.T) {
	p := PlaceholderNews{Clock: clock.NewMock()}

	aapl, err := p.FetchNews(context.Background(), "AAPL")
	require.NoError(t, err)
	msft, err := p.FetchNews(context.Background(), "MSFT")
	require.NoError(t, err)

	assert.NotEqual(t, aapl[0].ID, msft[0].ID)
}
