// Package settings maintains a live view of the business-settings
// document and fans out full-snapshot updates to subscribers.
package settings

import (
	"context"
	"sync"
	"time"

	"digital-menu/internal/model"
	"digital-menu/internal/repository"

	"github.com/rs/zerolog"
)

// Feed delivers business-settings snapshots to subscribers. Every
// delivery is a complete snapshot that replaces whatever the subscriber
// held before; there is no merge logic on the consumer side.
type Feed struct {
	repo   repository.SettingsRepository
	logger zerolog.Logger

	mu      sync.Mutex
	subs    map[int]func(model.BusinessSettings)
	nextID  int
	current model.BusinessSettings
	loaded  bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewFeed creates a feed over the given settings repository.
func NewFeed(repo repository.SettingsRepository, logger zerolog.Logger) *Feed {
	return &Feed{
		repo:   repo,
		logger: logger.With().Str("component", "settings-feed").Logger(),
		subs:   make(map[int]func(model.BusinessSettings)),
	}
}

// Start performs the initial fetch and, when refreshInterval is positive,
// begins periodic re-fetching to pick up writes made outside this
// process. A missing settings document yields the defaults, not an error.
func (f *Feed) Start(ctx context.Context, refreshInterval time.Duration) error {
	current, err := f.repo.Get(ctx)
	if err != nil {
		return err
	}
	f.publish(current)

	if refreshInterval > 0 {
		refreshCtx, cancel := context.WithCancel(ctx)
		f.cancel = cancel
		f.done = make(chan struct{})
		go f.refreshLoop(refreshCtx, refreshInterval)
	}

	return nil
}

// Subscribe registers a callback for settings snapshots and returns its
// cancellation handle. The current snapshot, when one has been loaded, is
// delivered immediately.
func (f *Feed) Subscribe(fn func(model.BusinessSettings)) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	deliver := f.loaded
	current := f.current
	f.mu.Unlock()

	if deliver {
		fn(current)
	}

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

// Current returns the latest known settings snapshot, or the defaults
// before the first fetch completes.
func (f *Feed) Current() model.BusinessSettings {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loaded {
		return model.DefaultBusinessSettings()
	}
	return f.current
}

// Update merges the partial update through the repository, then fetches
// and republishes the resulting snapshot. Validation errors abort before
// anything is written.
func (f *Feed) Update(ctx context.Context, update model.BusinessSettingsUpdate) error {
	if err := f.repo.Update(ctx, update); err != nil {
		return err
	}

	current, err := f.repo.Get(ctx)
	if err != nil {
		// The write landed; subscribers just miss one refresh.
		f.logger.Warn().Err(err).Msg("failed to re-fetch settings after update")
		return nil
	}

	f.publish(current)
	return nil
}

// Close stops the periodic refresher, if one is running.
func (f *Feed) Close() {
	if f.cancel != nil {
		f.cancel()
		<-f.done
	}
}

func (f *Feed) refreshLoop(ctx context.Context, interval time.Duration) {
	defer close(f.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current, err := f.repo.Get(ctx)
			if err != nil {
				f.logger.Warn().Err(err).Msg("settings refresh failed")
				continue
			}
			f.publish(current)
		}
	}
}

func (f *Feed) publish(current model.BusinessSettings) {
	f.mu.Lock()
	f.current = current
	f.loaded = true
	subs := make([]func(model.BusinessSettings), 0, len(f.subs))
	for _, fn := range f.subs {
		subs = append(subs, fn)
	}
	f.mu.Unlock()

	for _, fn := range subs {
		fn(current)
	}
}
