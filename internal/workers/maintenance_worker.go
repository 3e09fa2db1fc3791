package workers

import (
	"context"
	"time"

	"celobuddy/internal/logger"
	"celobuddy/internal/repositories"

	"gorm.io/gorm"
)

const (
	expireInterval   = time.Hour
	pruneInterval    = 6 * time.Hour
	sessionRetention = 7 * 24 * time.Hour
)

// MaintenanceWorker снимает просроченные возможности и чистит старые сессии карточек
type MaintenanceWorker struct {
	db          *gorm.DB
	opportunity repositories.OpportunityRepository
	sessions    repositories.SwipeSessionRepository
	now         func() time.Time
}

func NewMaintenanceWorker(
	db *gorm.DB,
	opportunity repositories.OpportunityRepository,
	sessions repositories.SwipeSessionRepository,
) *MaintenanceWorker {
	return &MaintenanceWorker{
		db:          db,
		opportunity: opportunity,
		sessions:    sessions,
		now:         time.Now,
	}
}

// Start запускает фоновые задачи до отмены ctx
func (w *MaintenanceWorker) Start(ctx context.Context) {
	go w.loop(ctx, "expire_opportunities", expireInterval, w.ExpireOpportunities)
	go w.loop(ctx, "prune_swipe_sessions", pruneInterval, w.PruneSessions)
}

func (w *MaintenanceWorker) loop(ctx context.Context, name string, every time.Duration, job func(context.Context) (int64, error)) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Maintenance job stopped", "job", name)
			return
		case <-ticker.C:
			affected, err := job(ctx)
			if err != nil {
				logger.WithError(err).Error("Maintenance job failed", "job", name)
			} else if affected > 0 {
				logger.Info("Maintenance job done", "job", name, "rows", affected)
			}
		}
	}
}

// ExpireOpportunities выключает возможности, у которых прошел дедлайн
func (w *MaintenanceWorker) ExpireOpportunities(ctx context.Context) (int64, error) {
	return w.opportunity.DeactivateExpired(w.db.WithContext(ctx), w.now().UTC())
}

// PruneSessions удаляет сессии карточек старше недели
func (w *MaintenanceWorker) PruneSessions(ctx context.Context) (int64, error) {
	return w.sessions.DeleteOlderThan(w.db.WithContext(ctx), w.now().UTC().Add(-sessionRetention))
}
