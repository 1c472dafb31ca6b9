package marketcache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dock108/marketcache"
	"github.com/dock108/marketcache/mock"
)

func TestCoordinatorMostRecentSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockRemoteClient(ctrl)
	stores, clk := newTestStores(t, testConfig(), client)
	coord := stores.Coordinator

	_, ok := coord.MostRecentSync("TSLA")
	assert.False(t, ok)
	_, ok = coord.SyncBannerText("TSLA", clk.Now())
	assert.False(t, ok)
	assert.True(t, coord.HasStaleData("TSLA"), "nothing fetched is stale")

	client.EXPECT().FetchSnapshot(gomock.Any(), "TSLA").Return(marketcache.TickerSnapshot{Price: 175}, nil)
	client.EXPECT().FetchHistory(gomock.Any(), "TSLA", "1M").Return(series(170, 175), nil)

	_, err := stores.Snapshots.ForceRefresh(context.Background(), "TSLA")
	require.NoError(t, err)
	clk.Add(100 * time.Second)
	_, err = stores.History.ForceRefresh(context.Background(), "TSLA", "1M")
	require.NoError(t, err)
	clk.Add(30 * time.Second)

	now := clk.Now()
	at, ok := coord.MostRecentSync("tsla")
	require.True(t, ok)
	assert.Equal(t, now.Add(-30*time.Second), at)
	assert.True(t, coord.HasStaleData("TSLA"), "snapshot is 130s old")
}

func TestCoordinatorSyncBannerText(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockRemoteClient(ctrl)
	stores, clk := newTestStores(t, testConfig(), client)

	clk.Add(41 * time.Minute)
	client.EXPECT().FetchSnapshot(gomock.Any(), "AAPL").Return(marketcache.TickerSnapshot{Price: 1}, nil)
	_, err := stores.Snapshots.ForceRefresh(context.Background(), "AAPL")
	require.NoError(t, err)
	synced := clk.Now()

	tests := []struct {
		age  time.Duration
		want string
	}{
		{-5 * time.Second, "Updated just now · 2:41 PM"},
		{0, "Updated just now · 2:41 PM"},
		{59 * time.Second, "Updated just now · 2:41 PM"},
		{90 * time.Second, "Updated 1 minute ago · 2:41 PM"},
		{5*time.Minute + 30*time.Second, "Updated 5 minutes ago · 2:41 PM"},
	}
	for _, tt := range tests {
		got, ok := stores.Coordinator.SyncBannerText("AAPL", synced.Add(tt.age))
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "age %s", tt.age)
	}
}

func TestCoordinatorCheckConsistency(t *testing.T) {
	tests := []struct {
		name      string
		lastClose float64
		mismatch  bool
	}{
		{"beyond tolerance", 99.80, true},
		{"within tolerance", 99.95, false},
		{"identical", 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mock.NewMockRemoteClient(ctrl)
			stores, _ := newTestStores(t, testConfig(), client)

			client.EXPECT().FetchSnapshot(gomock.Any(), "AAPL").Return(marketcache.TickerSnapshot{Price: 100}, nil)
			client.EXPECT().FetchHistory(gomock.Any(), "AAPL", "1M").Return(series(98, tt.lastClose), nil)
			summary := stores.Coordinator.RefreshAll(context.Background(), "AAPL")
			require.True(t, summary.OK())

			warnings := stores.Coordinator.CheckConsistency("AAPL")
			if tt.mismatch {
				require.Len(t, warnings, 1)
				assert.Equal(t, marketcache.WarningPriceMismatch, warnings[0].Kind)
				assert.Equal(t, marketcache.Symbol("AAPL"), warnings[0].Symbol)
			} else {
				assert.Empty(t, warnings)
			}

			snap, _ := stores.Snapshots.Read("AAPL")
			assert.Equal(t, 100.0, snap.Price, "checking never alters stored data")
		})
	}
}

func TestCoordinatorCheckConsistencyReportsStaleness(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockRemoteClient(ctrl)
	stores, clk := newTestStores(t, testConfig(), client)

	client.EXPECT().FetchSnapshot(gomock.Any(), "AAPL").Return(marketcache.TickerSnapshot{Price: 100}, nil)
	client.EXPECT().FetchHistory(gomock.Any(), "AAPL", "1M").Return(series(100), nil)
	require.True(t, stores.Coordinator.RefreshAll(context.Background(), "AAPL").OK())

	clk.Add(3 * time.Minute)
	warnings := stores.Coordinator.CheckConsistency("AAPL")
	require.Len(t, warnings, 1)
	assert.Equal(t, marketcache.WarningSnapshotStale, warnings[0].Kind)

	clk.Add(8 * time.Minute)
	warnings = stores.Coordinator.CheckConsistency("AAPL")
	require.Len(t, warnings, 2)
	assert.Equal(t, marketcache.WarningSnapshotStale, warnings[0].Kind)
	assert.Equal(t, marketcache.WarningHistoryStale, warnings[1].Kind)
}

func TestCoordinatorRefreshAllRunsInParallel(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockRemoteClient(ctrl)
	stores, _ := newTestStores(t, testConfig(), client)

	snapStarted := make(chan struct{})
	histStarted := make(chan struct{})
	rendezvous := func(mine, theirs chan struct{}) error {
		close(mine)
		select {
		case <-theirs:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("refreshes ran one after the other")
		}
	}

	client.EXPECT().
		FetchSnapshot(gomock.Any(), "TSLA").
		DoAndReturn(func(context.Context, string) (marketcache.TickerSnapshot, error) {
			return marketcache.TickerSnapshot{Price: 175}, rendezvous(snapStarted, histStarted)
		})
	client.EXPECT().
		FetchHistory(gomock.Any(), "TSLA", "1M").
		DoAndReturn(func(context.Context, string, string) ([]marketcache.PricePoint, error) {
			return series(175), rendezvous(histStarted, snapStarted)
		})

	summary := stores.Coordinator.RefreshAll(context.Background(), "tsla")
	assert.Equal(t, marketcache.Symbol("TSLA"), summary.Symbol)
	assert.True(t, summary.OK())
}

func TestCoordinatorRefreshAllPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockRemoteClient(ctrl)
	stores, _ := newTestStores(t, testConfig(), client)

	client.EXPECT().FetchSnapshot(gomock.Any(), "TSLA").Return(marketcache.TickerSnapshot{}, &marketcache.StatusError{StatusCode: 503})
	client.EXPECT().FetchHistory(gomock.Any(), "TSLA", "1M").Return(series(175), nil)

	summary := stores.Coordinator.RefreshAll(context.Background(), "TSLA")
	assert.False(t, summary.OK())
	assert.ErrorIs(t, summary.SnapshotErr, marketcache.ErrServer)
	assert.NoError(t, summary.HistoryErr)

	_, ok := stores.History.Read("TSLA", "1M")
	assert.True(t, ok)
}
