package marketcache

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Stores is the composition root: one instance of each entity store, the
// coordinator over them, and the hub their events are published on. Build it
// once and pass it, or individual stores, to whatever needs them.
type Stores struct {
	Snapshots   *SnapshotStore
	History     *HistoryStore
	AIResponses *AIResponseStore
	Outlooks    *OutlookStore
	News        *NewsStore
	Coordinator *Coordinator
	Events      *Hub

	eventBuffer int
	logger      *zap.Logger
}

// New builds every store from cfg (nil means DefaultConfig) on top of client.
// Headlines come from PlaceholderNews unless client also implements
// NewsFetcher.
func New(cfg *Config, client RemoteClient, opts ...Option) (*Stores, error) {
	if client == nil {
		return nil, errors.New("cannot create stores without a remote client")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.location()
	if err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	hub := o.hub
	if hub == nil {
		hub = NewHub()
	}
	storeOpts := append([]Option{WithFetchTimeout(cfg.FetchTimeout)}, opts...)
	storeOpts = append(storeOpts, WithHub(hub))

	news, ok := client.(NewsFetcher)
	if !ok {
		news = PlaceholderNews{Clock: o.clock}
	}

	s := &Stores{
		Snapshots:   NewSnapshotStore(client, cfg.Snapshot, storeOpts...),
		History:     NewHistoryStore(client, cfg.History, storeOpts...),
		AIResponses: NewAIResponseStore(client, cfg.AIResponse, storeOpts...),
		Outlooks:    NewOutlookStore(client, cfg.Outlook, storeOpts...),
		News:        NewNewsStore(news, cfg.News, storeOpts...),
		Events:      hub,
		eventBuffer: cfg.EventBuffer,
		logger:      o.logger,
	}
	s.Coordinator = NewCoordinator(s.Snapshots, s.History, cfg.HistoryRange, loc, storeOpts...)
	return s, nil
}

// Subscribe registers for store events with the configured buffer depth.
func (s *Stores) Subscribe() (<-chan Event, func()) {
	return s.Events.Subscribe(s.eventBuffer)
}

// ApplyConfig replaces every store's freshness policy. The coordinator's
// history range and banner location are fixed at construction.
func (s *Stores) ApplyConfig(cfg *Config) {
	s.Snapshots.Cache().SetPolicy(cfg.Snapshot)
	s.History.Cache().SetPolicy(cfg.History)
	s.AIResponses.Cache().SetPolicy(cfg.AIResponse)
	s.Outlooks.Cache().SetPolicy(cfg.Outlook)
	s.News.Cache().SetPolicy(cfg.News)
	s.logger.Info("Applied freshness policies",
		zap.Duration("snapshot_window", cfg.Snapshot.CacheWindow),
		zap.Duration("history_window", cfg.History.CacheWindow),
		zap.Duration("ai_response_window", cfg.AIResponse.CacheWindow),
		zap.Duration("outlook_window", cfg.Outlook.CacheWindow),
		zap.Duration("news_window", cfg.News.CacheWindow))
}

// Watch reloads the config at path whenever it changes and applies its
// policies. It blocks until ctx is cancelled.
func (s *Stores) Watch(ctx context.Context, path string) error {
	return WatchConfig(ctx, path, s.logger, s.ApplyConfig)
}

// ClearAll drops everything every store holds.
func (s *Stores) ClearAll() {
	s.Snapshots.ClearAll()
	s.History.ClearAll()
	s.AIResponses.ClearAll()
	s.Outlooks.ClearAll()
	s.News.ClearAll()
}

// Wait blocks until background refreshes in every store have completed.
func (s *Stores) Wait() {
	s.Snapshots.Wait()
	s.History.Wait()
	s.AIResponses.Wait()
	s.Outlooks.Wait()
	s.News.Wait()
}

// Close waits for background refreshes, for at most ten seconds, then closes
// the event hub. It returns context.DeadlineExceeded if refreshes were still
// running.
func (s *Stores) Close() error {
	return s.CloseTimeout(defaultCloseTimeout)
}

const defaultCloseTimeout = 10 * time.Second

// CloseTimeout is Close with an explicit bound on the wait.
func (s *Stores) CloseTimeout(timeout time.Duration) error {
	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-time.After(timeout):
		err = context.DeadlineExceeded
	}
	s.Events.Close()
	return err
}
