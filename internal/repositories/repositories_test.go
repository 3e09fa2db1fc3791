package repositories

import (
	"testing"
	"time"

	"celobuddy/internal/models"
	"celobuddy/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository()

	user := &models.User{Email: "  Ana@Example.com ", PasswordHash: "hash"}
	require.NoError(t, repo.Create(db, user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)

	found, err := repo.FindByEmail(db, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	assert.ErrorIs(t, repo.Create(db, &models.User{Email: "ana@example.com", PasswordHash: "x"}), ErrUserAlreadyExists)

	_, err = repo.FindByID(db, "nope")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileRepository_UpsertKeepsRole(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProfileRepository()

	admin := testutil.CreateFounder(t, db, "admin@example.com", testutil.WithRole(models.UserRoleAdmin))

	require.NoError(t, repo.Upsert(db, &models.Profile{
		ID:           admin.ID,
		FullName:     "New Name",
		CompanyName:  "New Co",
		CompanyStage: models.CompanyStageGrowth,
		Role:         models.UserRoleUser,
	}))

	role, err := repo.FindRole(db, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, role)

	p, err := repo.FindByID(db, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Co", p.CompanyName)
	assert.Equal(t, models.CompanyStageGrowth, p.CompanyStage)

	_, err = repo.FindRole(db, "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestNeedRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewNeedRepository()
	founder := testutil.CreateFounder(t, db, "f@example.com")

	now := time.Now().UTC()
	require.NoError(t, repo.CreateBatch(db, []models.Need{
		{UserID: founder.ID, Title: "a", Category: models.NeedCategoryFunding, Urgency: models.UrgencyLow, IsActive: true},
		{UserID: founder.ID, Title: "b", Category: models.NeedCategoryFunding, Urgency: models.UrgencyLow, IsActive: true},
		{UserID: founder.ID, Title: "c", Category: models.NeedCategoryTalent, Urgency: models.UrgencyLow, IsActive: true},
	}))
	off := testutil.CreateNeed(t, db, founder.ID, models.NeedCategoryAdvisors, now)
	require.NoError(t, repo.SetActive(db, off.ID, false))

	count, err := repo.CountActiveByUser(db, founder.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	cats, err := repo.ActiveCategories(db, founder.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"funding", "talent"}, cats)

	all, err := repo.FindByUser(db, founder.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	recent, err := repo.FindRecentActive(db, founder.ID, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	assert.ErrorIs(t, repo.SetActive(db, "missing", true), ErrNeedNotFound)
}

func TestSwipeSessionRepository_CompareAndSet(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSwipeSessionRepository()

	session := &models.SwipeSession{UserID: "u", OpportunityIDs: models.StringList{"a", "b"}}
	require.NoError(t, repo.Create(db, session))

	require.NoError(t, repo.AdvanceCursor(db, session.ID, 0, 1))
	assert.ErrorIs(t, repo.AdvanceCursor(db, session.ID, 0, 1), ErrStaleCursor)

	loaded, err := repo.FindByID(db, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Cursor)
	assert.Equal(t, models.StringList{"a", "b"}, loaded.OpportunityIDs)

	_, err = repo.FindByID(db, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestOnboardingRepository_Save(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOnboardingRepository()

	require.NoError(t, repo.Save(db, &models.OnboardingState{UserID: "u", Step: "profile"}))
	require.NoError(t, repo.Save(db, &models.OnboardingState{UserID: "u", Step: "needs"}))

	state, err := repo.Find(db, "u")
	require.NoError(t, err)
	assert.Equal(t, "needs", state.Step)

	_, err = repo.Find(db, "other")
	assert.ErrorIs(t, err, ErrOnboardingNotFound)
}

func TestMatchRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewMatchRepository()

	founder := testutil.CreateFounder(t, db, "f@example.com")
	need := testutil.CreateNeed(t, db, founder.ID, models.NeedCategoryFunding, time.Now())
	opp := testutil.CreateOpportunity(t, db, models.PlaceholderProviderID, "funding", time.Now())

	for _, status := range []models.MatchStatus{models.MatchStatusPending, models.MatchStatusAccepted} {
		require.NoError(t, repo.Create(db, &models.Match{
			NeedID: need.ID, OpportunityID: opp.ID, RequesterID: founder.ID,
			ProviderID: opp.ProviderID, Status: status,
		}))
	}

	matches, err := repo.FindByRequester(db, founder.ID, "", 0)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.NotNil(t, matches[0].Opportunity)
	require.NotNil(t, matches[0].Need)
	assert.Equal(t, opp.Title, matches[0].Opportunity.Title)

	accepted, err := repo.CountByRequester(db, founder.ID, models.MatchStatusAccepted)
	require.NoError(t, err)
	assert.EqualValues(t, 1, accepted)

	byOpp, err := repo.CountByOpportunity(db, opp.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, byOpp)
}

func TestAnalyticsRepository_Snapshots(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAnalyticsRepository()

	testutil.CreateFounder(t, db, "a@example.com", testutil.WithLocation("Lagos"))
	testutil.CreateOpportunity(t, db, models.PlaceholderProviderID, "funding", time.Now())
	testutil.CreateOpportunity(t, db, models.PlaceholderProviderID, "funding", time.Now())
	testutil.CreateOpportunity(t, db, models.PlaceholderProviderID, "talent", time.Now())

	rating := 4
	require.NoError(t, db.Create(&models.Feedback{UserID: "u", Type: models.FeedbackTypePlatform, Message: "ok", Rating: &rating}).Error)
	require.NoError(t, db.Create(&models.Feedback{UserID: "u", Type: models.FeedbackTypeMatch, Message: "no rating"}).Error)

	profiles, err := repo.ProfileSnapshots(db)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Lagos", profiles[0].Location)
	assert.False(t, profiles[0].CreatedAt.IsZero())

	counts, err := repo.OpportunityCategoryCounts(db)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"funding": 2, "talent": 1}, counts)

	feedback, err := repo.FeedbackSnapshots(db)
	require.NoError(t, err)
	require.Len(t, feedback, 2)
	rated := 0
	for _, f := range feedback {
		if f.Rating != nil {
			rated++
			assert.Equal(t, 4, *f.Rating)
		}
	}
	assert.Equal(t, 1, rated)
}

func TestSingleColumnUpdates_UnchangedValueIsNotMissing(t *testing.T) {
	db := testutil.NewDB(t)
	founder := testutil.CreateFounder(t, db, "same@example.com")
	opp := testutil.CreateOpportunity(t, db, models.PlaceholderProviderID, "funding", time.Now())
	need := testutil.CreateNeed(t, db, founder.ID, models.NeedCategoryFunding, time.Now())

	opps := NewOpportunityRepository()
	require.NoError(t, opps.SetActive(db, opp.ID, true))
	require.NoError(t, opps.SetActive(db, opp.ID, true))
	assert.ErrorIs(t, opps.SetActive(db, "missing", true), ErrOpportunityNotFound)

	needs := NewNeedRepository()
	require.NoError(t, needs.SetActive(db, need.ID, true))
	require.NoError(t, needs.SetActive(db, need.ID, true))

	profiles := NewProfileRepository()
	require.NoError(t, profiles.UpdateAvatar(db, founder.ID, "/files/a.png"))
	require.NoError(t, profiles.UpdateAvatar(db, founder.ID, "/files/a.png"))
	assert.ErrorIs(t, profiles.UpdateAvatar(db, "missing", "/files/a.png"), ErrProfileNotFound)

	p, err := profiles.FindByID(db, founder.ID)
	require.NoError(t, err)
	require.NoError(t, profiles.Update(db, p))
}
