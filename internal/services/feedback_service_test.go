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

func TestFeedback_Submit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	founder := testutil.CreateFounder(t, env.db, "founder@example.com")
	other := testutil.CreateFounder(t, env.db, "other@example.com")

	now := time.Now()
	need := testutil.CreateNeed(t, env.db, founder.ID, models.NeedCategoryFunding, now)
	opp := testutil.CreateOpportunity(t, env.db, other.ID, "funding", now)
	match := &models.Match{
		NeedID: need.ID, OpportunityID: opp.ID, RequesterID: founder.ID, ProviderID: other.ID,
		Status: models.MatchStatusAccepted,
	}
	require.NoError(t, env.db.Create(match).Error)

	t.Run("platform feedback", func(t *testing.T) {
		fb, err := env.svc.FeedbackService.Submit(ctx, env.db, founder.ID, &dto.FeedbackRequest{
			Type:    models.FeedbackTypePlatform,
			Message: "  Great onboarding ",
			Rating:  intPtr(5),
		})
		require.NoError(t, err)
		assert.Equal(t, "Great onboarding", fb.Message)
		assert.Nil(t, fb.MatchID)
	})

	t.Run("match feedback for own match", func(t *testing.T) {
		fb, err := env.svc.FeedbackService.Submit(ctx, env.db, founder.ID, &dto.FeedbackRequest{
			Type:    models.FeedbackTypeMatch,
			Message: "Useful intro",
			MatchID: &match.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, fb.MatchID)
		assert.Equal(t, match.ID, *fb.MatchID)
	})

	t.Run("foreign match is rejected", func(t *testing.T) {
		_, err := env.svc.FeedbackService.Submit(ctx, env.db, other.ID, &dto.FeedbackRequest{
			Type:    models.FeedbackTypeMatch,
			Message: "Not mine",
			MatchID: &match.ID,
		})
		appErr := requireAppError(t, err, apperrors.CodeValidationFailed)
		assert.Contains(t, appErr.Details, "match_id")
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := env.svc.FeedbackService.Submit(ctx, env.db, founder.ID, &dto.FeedbackRequest{Type: models.FeedbackTypePlatform, Message: "   "})
		requireAppError(t, err, apperrors.CodeValidationFailed)

		_, err = env.svc.FeedbackService.Submit(ctx, env.db, founder.ID, &dto.FeedbackRequest{Type: models.FeedbackTypePlatform, Message: "ok", Rating: intPtr(6)})
		requireAppError(t, err, apperrors.CodeValidationFailed)
	})

	page, err := env.svc.FeedbackService.FeedbackPage(ctx, env.db, founder.ID)
	require.NoError(t, err)
	assert.Len(t, page.Feedback, 2)
	require.Len(t, page.AcceptedMatches, 1)
	assert.Equal(t, match.ID, page.AcceptedMatches[0].ID)
}
