package services

import (
	"context"
	"testing"
	"time"

	"celobuddy/internal/models"
	"celobuddy/internal/services/dto"
	"celobuddy/internal/testutil"
	"celobuddy/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeeds_Ownership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	founder := testutil.CreateFounder(t, env.db, "founder@example.com")
	stranger := testutil.CreateFounder(t, env.db, "stranger@example.com")

	need, err := env.svc.NeedService.Create(ctx, env.db, founder.ID, &dto.NeedRequest{
		Title:       "Seed round",
		Description: "Raising 500k",
		Category:    models.NeedCategoryFunding,
		Urgency:     models.UrgencyHigh,
	})
	require.NoError(t, err)
	assert.True(t, need.IsActive)

	_, err = env.svc.NeedService.Update(ctx, env.db, stranger.ID, need.ID, &dto.NeedRequest{
		Title: "Hijack", Description: "x", Category: models.NeedCategoryTalent, Urgency: models.UrgencyLow,
	})
	requireAppError(t, err, apperrors.CodeNotFound)

	err = env.svc.NeedService.SetActive(ctx, env.db, stranger.ID, need.ID, false)
	requireAppError(t, err, apperrors.CodeNotFound)

	require.NoError(t, env.svc.NeedService.SetActive(ctx, env.db, founder.ID, need.ID, false))

	mine, err := env.svc.NeedService.ListMine(ctx, env.db, founder.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.False(t, mine[0].IsActive)
}

func TestDashboard_Summary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	founder := testutil.CreateFounder(t, env.db, "founder@example.com")
	other := testutil.CreateFounder(t, env.db, "other@example.com")

	now := time.Now()
	var needs []*models.Need
	for i := 0; i < 4; i++ {
		needs = append(needs, testutil.CreateNeed(t, env.db, founder.ID, models.NeedCategoryFunding, now.Add(time.Duration(i)*time.Minute)))
	}
	opp := testutil.CreateOpportunity(t, env.db, other.ID, "funding", now)

	for i, status := range []models.MatchStatus{models.MatchStatusPending, models.MatchStatusAccepted, models.MatchStatusAccepted} {
		require.NoError(t, env.db.Create(&models.Match{
			NeedID: needs[i].ID, OpportunityID: opp.ID, RequesterID: founder.ID, ProviderID: other.ID,
			Status: status,
		}).Error)
	}

	dash, err := env.svc.DashboardService.GetFounderDashboard(ctx, env.db, founder.ID)
	require.NoError(t, err)
	assert.Equal(t, founder.ID, dash.Profile.ID)
	assert.EqualValues(t, 4, dash.ActiveNeeds)
	require.Len(t, dash.RecentNeeds, 3)
	assert.Equal(t, needs[3].ID, dash.RecentNeeds[0].ID)
	assert.EqualValues(t, 3, dash.TotalMatches)
	assert.EqualValues(t, 2, dash.AcceptedMatches)
	require.Len(t, dash.RecentMatches, 3)
	assert.Equal(t, opp.Title, dash.RecentMatches[0].OpportunityTitle)

	accepted, err := env.svc.MatchService.ListMine(ctx, env.db, founder.ID, models.MatchStatusAccepted, 10)
	require.NoError(t, err)
	assert.Len(t, accepted, 2)

	_, err = env.svc.MatchService.ListMine(ctx, env.db, founder.ID, "bogus", 10)
	requireAppError(t, err, apperrors.CodeValidationFailed)
}
