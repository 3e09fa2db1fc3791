package services

import (
	"context"
	"testing"
	"time"

	"celobuddy/internal/models"
	"celobuddy/internal/services/dto"
	"celobuddy/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeFeed_Scenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	founder := testutil.CreateFounder(t, env.db, "founder@example.com")
	other := testutil.CreateFounder(t, env.db, "other@example.com")

	base := time.Now().Add(-time.Hour)
	testutil.CreateNeed(t, env.db, founder.ID, models.NeedCategoryFunding, base)
	testutil.CreateNeed(t, env.db, founder.ID, models.NeedCategoryMentorship, base)

	funding := testutil.CreateOpportunity(t, env.db, other.ID, "funding", base.Add(1*time.Minute))
	testutil.CreateOpportunity(t, env.db, founder.ID, "talent", base.Add(2*time.Minute))
	mentorship := testutil.CreateOpportunity(t, env.db, other.ID, "mentorship", base.Add(3*time.Minute))

	feed := env.svc.FeedService.ComposeFeed(ctx, env.db, founder.ID)

	require.Len(t, feed.Opportunities, 2)
	assert.Equal(t, mentorship.ID, feed.Opportunities[0].ID)
	assert.Equal(t, funding.ID, feed.Opportunities[1].ID)
	assert.Equal(t, []string{"funding", "mentorship"}, feed.Categories)
}

func TestComposeFeed_Properties(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	founder := testutil.CreateFounder(t, env.db, "founder@example.com")
	other := testutil.CreateFounder(t, env.db, "other@example.com")

	now := time.Now()
	for i, category := range []string{"funding", "talent", "mentorship", "customers", "funding"} {
		testutil.CreateOpportunity(t, env.db, other.ID, category, now.Add(time.Duration(i)*time.Second))
		testutil.CreateOpportunity(t, env.db, founder.ID, category, now.Add(time.Duration(i)*time.Second))
	}

	t.Run("no active needs means no category filter", func(t *testing.T) {
		feed := env.svc.FeedService.ComposeFeed(ctx, env.db, founder.ID)
		assert.Len(t, feed.Opportunities, 5)
		assert.Empty(t, feed.Categories)
		for _, o := range feed.Opportunities {
			assert.NotEqual(t, founder.ID, o.ProviderID)
		}
	})

	t.Run("inactive needs are ignored", func(t *testing.T) {
		need := testutil.CreateNeed(t, env.db, founder.ID, models.NeedCategoryAdvisors, now)
		require.NoError(t, env.svc.NeedService.SetActive(ctx, env.db, founder.ID, need.ID, false))

		feed := env.svc.FeedService.ComposeFeed(ctx, env.db, founder.ID)
		assert.Len(t, feed.Opportunities, 5)
	})

	t.Run("categories restrict the feed", func(t *testing.T) {
		testutil.CreateNeed(t, env.db, founder.ID, models.NeedCategoryFunding, now)

		feed := env.svc.FeedService.ComposeFeed(ctx, env.db, founder.ID)
		require.Len(t, feed.Opportunities, 2)
		for i, o := range feed.Opportunities {
			assert.Equal(t, "funding", o.Category)
			assert.NotEqual(t, founder.ID, o.ProviderID)
			if i > 0 {
				assert.False(t, o.CreatedAt.After(feed.Opportunities[i-1].CreatedAt), "newest first")
			}
		}
	})
}

func TestComposeFeed_CapAndProvider(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	founder := testutil.CreateFounder(t, env.db, "founder@example.com")
	other := testutil.CreateFounder(t, env.db, "other@example.com")

	now := time.Now()
	for i := 0; i < 25; i++ {
		testutil.CreateOpportunity(t, env.db, other.ID, "funding", now.Add(time.Duration(i)*time.Second))
	}

	feed := env.svc.FeedService.ComposeFeed(ctx, env.db, founder.ID)
	require.Len(t, feed.Opportunities, 20)
	require.NotNil(t, feed.Opportunities[0].Provider)
	assert.Equal(t, other.FullName, feed.Opportunities[0].Provider.FullName)
}

func TestComposeFeed_QueryFailureDegradesToEmpty(t *testing.T) {
	env := newTestEnv(t)
	founder := testutil.CreateFounder(t, env.db, "founder@example.com")

	require.NoError(t, env.db.Migrator().DropTable(&models.Opportunity{}))

	feed := env.svc.FeedService.ComposeFeed(context.Background(), env.db, founder.ID)
	require.NotNil(t, feed)
	assert.Empty(t, feed.Opportunities)
	assert.NotNil(t, feed.Opportunities)
}

func TestPreviewFeed(t *testing.T) {
	env := newTestEnv(t)
	other := testutil.CreateFounder(t, env.db, "other@example.com")

	now := time.Now()
	for i := 0; i < 15; i++ {
		category := "funding"
		if i%3 == 0 {
			category = "talent"
		}
		testutil.CreateOpportunity(t, env.db, other.ID, category, now.Add(time.Duration(i)*time.Second))
	}

	all := env.svc.FeedService.PreviewFeed(context.Background(), env.db, &dto.ChatAnswers{})
	assert.Len(t, all.Opportunities, 12)

	talent := env.svc.FeedService.PreviewFeed(context.Background(), env.db, &dto.ChatAnswers{Needs: []string{"Talent", "talent", " "}})
	assert.Equal(t, []string{"talent"}, talent.Categories)
	assert.Len(t, talent.Opportunities, 5)
}
