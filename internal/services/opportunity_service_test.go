package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"celobuddy/internal/models"
	"celobuddy/internal/services/dto"
	"celobuddy/internal/testutil"
	"celobuddy/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opportunityRequest() *dto.OpportunityRequest {
	return &dto.OpportunityRequest{
		Title:        " Celo Camp Batch 9 ",
		Description:  "Accelerator for early stage teams",
		Category:     "Funding",
		Type:         "Program",
		Requirements: []string{"MVP on Celo"},
		Benefits:     []string{"$50k", "Mentors"},
		ContactInfo:  json.RawMessage(`{"email":"camp@example.com"}`),
	}
}

func TestOpportunity_CreateAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := testutil.CreateFounder(t, env.db, "admin@example.com", testutil.WithRole(models.UserRoleAdmin))

	opp, err := env.svc.OpportunityService.Create(ctx, env.db, admin.ID, opportunityRequest())
	require.NoError(t, err)
	assert.Equal(t, "Celo Camp Batch 9", opp.Title)
	assert.Equal(t, "funding", opp.Category)
	assert.Equal(t, "program", opp.Type)
	assert.Equal(t, admin.ID, opp.ProviderID)
	assert.Equal(t, admin.ID, opp.CreatedBy)
	assert.True(t, opp.IsActive)
	assert.JSONEq(t, `{"email":"camp@example.com"}`, string(opp.ContactInfo))

	req := opportunityRequest()
	inactive := false
	req.IsActive = &inactive
	req.Title = "Celo Camp Batch 10"

	updated, err := env.svc.OpportunityService.Update(ctx, env.db, opp.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Celo Camp Batch 10", updated.Title)
	assert.False(t, updated.IsActive)
	assert.Equal(t, admin.ID, updated.ProviderID)

	_, err = env.svc.OpportunityService.Update(ctx, env.db, "missing", req)
	requireAppError(t, err, apperrors.CodeNotFound)
}

func TestOpportunity_CreatePublicUsesPlaceholderProvider(t *testing.T) {
	env := newTestEnv(t)

	opp, err := env.svc.OpportunityService.CreatePublic(context.Background(), env.db, opportunityRequest())
	require.NoError(t, err)
	assert.Equal(t, models.PlaceholderProviderID, opp.ProviderID)
	assert.Empty(t, opp.CreatedBy)
}

func TestOpportunity_List(t *testing.T) {
	env := newTestEnv(t)
	other := testutil.CreateFounder(t, env.db, "other@example.com")

	now := time.Now()
	for i := 0; i < 5; i++ {
		testutil.CreateOpportunity(t, env.db, other.ID, "funding", now.Add(time.Duration(i)*time.Second))
	}
	testutil.CreateOpportunity(t, env.db, other.ID, "talent", now)

	page, err := env.svc.OpportunityService.List(context.Background(), env.db, &dto.OpportunityListRequest{Category: "FUNDING"}, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Opportunities, 2)

	empty, err := env.svc.OpportunityService.List(context.Background(), env.db, &dto.OpportunityListRequest{Category: "advisors"}, 1, 20)
	require.NoError(t, err)
	assert.NotNil(t, empty.Opportunities)
	assert.Empty(t, empty.Opportunities)
}

func TestOpportunity_DeleteRefusedWhileMatched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	founder := testutil.CreateFounder(t, env.db, "founder@example.com")
	other := testutil.CreateFounder(t, env.db, "other@example.com")

	now := time.Now()
	need := testutil.CreateNeed(t, env.db, founder.ID, models.NeedCategoryFunding, now)
	matched := testutil.CreateOpportunity(t, env.db, other.ID, "funding", now)
	free := testutil.CreateOpportunity(t, env.db, other.ID, "funding", now)

	require.NoError(t, env.db.Create(&models.Match{
		NeedID: need.ID, OpportunityID: matched.ID, RequesterID: founder.ID, ProviderID: other.ID,
		Status: models.MatchStatusPending,
	}).Error)

	err := env.svc.OpportunityService.Delete(ctx, env.db, matched.ID)
	require.ErrorIs(t, err, apperrors.ErrOpportunityInUse)

	_, err = env.svc.OpportunityService.Get(ctx, env.db, matched.ID)
	require.NoError(t, err)

	require.NoError(t, env.svc.OpportunityService.Delete(ctx, env.db, free.ID))
	_, err = env.svc.OpportunityService.Get(ctx, env.db, free.ID)
	requireAppError(t, err, apperrors.CodeNotFound)

	err = env.svc.OpportunityService.Delete(ctx, env.db, free.ID)
	requireAppError(t, err, apperrors.CodeNotFound)
}
