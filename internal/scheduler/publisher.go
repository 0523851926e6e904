package scheduler

import (
	"context"
	"time"

	"github.com/moscowmix/sitesync/internal/engine"
	"github.com/moscowmix/sitesync/internal/logger"
)

// Publisher scans for scheduled blog posts whose publication instant has
// passed and promotes them to published. Promotion goes through the
// engine's standard save-first pipeline, so this writer path respects the
// same in-flight guard as every other mutation.
type Publisher struct {
	store    *engine.Store
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

func NewPublisher(store *engine.Store, log logger.Logger, interval time.Duration) *Publisher {
	return &Publisher{
		store:    store,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start scans immediately, then on every interval tick until Stop or ctx
// cancellation.
func (p *Publisher) Start(ctx context.Context) error {
	p.Scan(ctx)

	ticker := time.NewTicker(p.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.Scan(ctx)
			case <-p.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the publisher.
func (p *Publisher) Stop() {
	close(p.stopCh)
}

// Scan runs one promotion pass. Failures are logged, never fatal: a post
// that could not be promoted this cycle is still due on the next one.
func (p *Publisher) Scan(ctx context.Context) {
	n, err := p.store.PublishDuePosts(ctx)
	if err != nil {
		p.logger.Error("failed to publish due posts", logger.Error(err))
		return
	}
	if n > 0 {
		p.logger.Info("published scheduled posts", logger.Int("count", n))
	}
}
