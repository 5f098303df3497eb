package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/helpdesk-pro/helpdesk-service/internal/cache"
	"github.com/helpdesk-pro/helpdesk-service/internal/repository"
)

// RefreshWorker re-primes the shared view cache on a fixed interval. This
// is the server-side counterpart of the UI's polling refresh: pull-based,
// independent of user action, and cancelled with the server's context at
// shutdown. A refresh that loses the race to a newer one is simply dropped
// by the cache's generation check.
type RefreshWorker struct {
	views      *cache.ViewCache
	tickets    repository.TicketRepository
	categories repository.CategoryRepository
	interval   time.Duration
	logger     *zap.Logger
}

// NewRefreshWorker constructs the worker.
func NewRefreshWorker(views *cache.ViewCache, tickets repository.TicketRepository, categories repository.CategoryRepository, interval time.Duration, logger *zap.Logger) *RefreshWorker {
	return &RefreshWorker{
		views:      views,
		tickets:    tickets,
		categories: categories,
		interval:   interval,
		logger:     logger,
	}
}

// Run blocks until ctx is cancelled, refreshing on every tick.
func (w *RefreshWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("refresh worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	generation, err := w.views.Begin(ctx)
	if err != nil {
		w.logger.Warn("refresh skipped", zap.Error(err))
		return
	}

	tickets, err := w.tickets.ListWithFilter(ctx, repository.TicketFilter{Limit: 20})
	if err != nil {
		w.logger.Warn("ticket refresh failed", zap.Error(err))
		return
	}
	if _, err := w.views.PutTickets(ctx, "all", generation, tickets); err != nil {
		w.logger.Warn("ticket snapshot write failed", zap.Error(err))
	}

	categories, err := w.categories.ListActive(ctx)
	if err != nil {
		w.logger.Warn("category refresh failed", zap.Error(err))
		return
	}
	if _, err := w.views.PutCategories(ctx, generation, categories); err != nil {
		w.logger.Warn("category snapshot write failed", zap.Error(err))
	}
}
