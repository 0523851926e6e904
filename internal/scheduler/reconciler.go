package scheduler

import (
	"context"
	"time"

	"github.com/moscowmix/sitesync/internal/engine"
	"github.com/moscowmix/sitesync/internal/logger"
)

// Reconciler periodically refreshes the engine from the remote document
// and serves manual refresh triggers from the HTTP layer. The gating
// (cooldown, in-flight save) lives in the engine; the reconciler only
// drives the cadence.
type Reconciler struct {
	store         *engine.Store
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

func NewReconciler(
	store *engine.Store,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *Reconciler {
	return &Reconciler{
		store:         store,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start runs one reconciliation immediately, then keeps reconciling on
// the interval and on manual triggers until Stop or ctx cancellation.
// The initial pass is best-effort: the engine can serve from the local
// cache while the remote store is unreachable.
func (r *Reconciler) Start(ctx context.Context) error {
	if err := r.store.Refresh(ctx); err != nil {
		r.logger.Warn("initial reconciliation failed, serving cached state",
			logger.Error(err))
	}

	ticker := time.NewTicker(r.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := r.store.Refresh(ctx); err != nil {
					r.logger.Error("periodic reconciliation failed", logger.Error(err))
				}
			case <-r.manualTrigger:
				r.logger.Info("manual refresh triggered")
				if err := r.store.Refresh(ctx); err != nil {
					r.logger.Error("manual reconciliation failed", logger.Error(err))
				}
			case <-r.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reconciler.
func (r *Reconciler) Stop() {
	close(r.stopCh)
}
