package workers

import (
	"context"
	"testing"
	"time"

	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newWorker(t *testing.T) (*MaintenanceWorker, time.Time) {
	t.Helper()
	db := testutil.NewDB(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	w := NewMaintenanceWorker(db, repositories.NewOpportunityRepository(), repositories.NewSwipeSessionRepository())
	w.now = func() time.Time { return now }
	return w, now
}

func TestExpireOpportunities(t *testing.T) {
	w, now := newWorker(t)
	provider := testutil.CreateFounder(t, w.db, "provider@example.com")

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	expired := testutil.CreateOpportunity(t, w.db, provider.ID, "funding", now)
	require.NoError(t, w.db.Model(expired).Update("deadline", past).Error)
	open := testutil.CreateOpportunity(t, w.db, provider.ID, "funding", now)
	require.NoError(t, w.db.Model(open).Update("deadline", future).Error)
	noDeadline := testutil.CreateOpportunity(t, w.db, provider.ID, "talent", now)

	affected, err := w.ExpireOpportunities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	for id, active := range map[string]bool{expired.ID: false, open.ID: true, noDeadline.ID: true} {
		var opp models.Opportunity
		require.NoError(t, w.db.First(&opp, "id = ?", id).Error)
		assert.Equal(t, active, opp.IsActive, id)
	}

	affected, err = w.ExpireOpportunities(context.Background())
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestPruneSessions(t *testing.T) {
	w, now := newWorker(t)
	founder := testutil.CreateFounder(t, w.db, "ada@example.com")

	old := &models.SwipeSession{BaseModel: models.BaseModel{CreatedAt: now.Add(-8 * 24 * time.Hour)}, UserID: founder.ID}
	fresh := &models.SwipeSession{BaseModel: models.BaseModel{CreatedAt: now.Add(-time.Hour)}, UserID: founder.ID}
	require.NoError(t, w.db.Create(old).Error)
	require.NoError(t, w.db.Create(fresh).Error)

	affected, err := w.PruneSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	var left []models.SwipeSession
	require.NoError(t, w.db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, fresh.ID, left[0].ID)
}

func TestStart_StopsOnCancel(t *testing.T) {
	w, _ := newWorker(t)
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()
}
