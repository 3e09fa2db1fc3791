package services

import (
	"context"
	"time"

	"celobuddy/internal/algorithms"
	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/services/dto"
	"celobuddy/pkg/apperrors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	recentWindow      = 30 * 24 * time.Hour
	topLocationsLimit = 8
	unknownBucket     = "unknown"
)

// AnalyticsService - только чтение: счетчики и гистограммы по снимкам таблиц
type AnalyticsService interface {
	AdminDashboard(ctx context.Context, db *gorm.DB) (*dto.AdminDashboard, error)
	PlatformAnalytics(ctx context.Context, db *gorm.DB) (*dto.PlatformAnalytics, error)
}

type AnalyticsServiceImpl struct {
	analyticsRepo    repositories.AnalyticsRepository
	opportunityRepo  repositories.OpportunityRepository
	subscriptionRepo repositories.SubscriptionRepository
	matchRepo        repositories.MatchRepository
	profileRepo      repositories.ProfileRepository
	now              func() time.Time
}

func NewAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	opportunityRepo repositories.OpportunityRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	matchRepo repositories.MatchRepository,
	profileRepo repositories.ProfileRepository,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		analyticsRepo:    analyticsRepo,
		opportunityRepo:  opportunityRepo,
		subscriptionRepo: subscriptionRepo,
		matchRepo:        matchRepo,
		profileRepo:      profileRepo,
		now:              time.Now,
	}
}

// AdminDashboard - шесть независимых счетчиков параллельно; первая ошибка отменяет остальные
func (s *AnalyticsServiceImpl) AdminDashboard(ctx context.Context, db *gorm.DB) (*dto.AdminDashboard, error) {
	g, gctx := errgroup.WithContext(ctx)
	qdb := db.WithContext(gctx)

	var resp dto.AdminDashboard
	g.Go(func() (err error) {
		resp.TotalOpportunities, err = s.opportunityRepo.Count(qdb, false)
		return err
	})
	g.Go(func() (err error) {
		resp.ActiveOpportunities, err = s.opportunityRepo.Count(qdb, true)
		return err
	})
	g.Go(func() (err error) {
		resp.TotalSubscriptions, err = s.subscriptionRepo.Count(qdb, false)
		return err
	})
	g.Go(func() (err error) {
		resp.ActiveSubscriptions, err = s.subscriptionRepo.Count(qdb, true)
		return err
	})
	g.Go(func() (err error) {
		resp.TotalMatches, err = s.matchRepo.Count(qdb)
		return err
	})
	g.Go(func() (err error) {
		resp.TotalProfiles, err = s.profileRepo.Count(qdb)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}

	categories, err := s.analyticsRepo.OpportunityCategoryCounts(db.WithContext(ctx))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp.Categories = categories

	return &resp, nil
}

type analyticsSnapshots struct {
	profiles      []repositories.ProfileSnapshot
	opportunities []repositories.OpportunitySnapshot
	needs         []repositories.NeedSnapshot
	matches       []repositories.MatchSnapshot
	feedback      []repositories.FeedbackSnapshot
}

// PlatformAnalytics: снимки читаются параллельно, агрегаты считаются одним проходом
func (s *AnalyticsServiceImpl) PlatformAnalytics(ctx context.Context, db *gorm.DB) (*dto.PlatformAnalytics, error) {
	snap, err := s.fetchSnapshots(ctx, db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildPlatformAnalytics(snap, s.now().UTC()), nil
}

func (s *AnalyticsServiceImpl) fetchSnapshots(ctx context.Context, db *gorm.DB) (*analyticsSnapshots, error) {
	g, gctx := errgroup.WithContext(ctx)
	qdb := db.WithContext(gctx)

	var snap analyticsSnapshots
	g.Go(func() (err error) {
		snap.profiles, err = s.analyticsRepo.ProfileSnapshots(qdb)
		return err
	})
	g.Go(func() (err error) {
		snap.opportunities, err = s.analyticsRepo.OpportunitySnapshots(qdb)
		return err
	})
	g.Go(func() (err error) {
		snap.needs, err = s.analyticsRepo.NeedSnapshots(qdb)
		return err
	})
	g.Go(func() (err error) {
		snap.matches, err = s.analyticsRepo.MatchSnapshots(qdb)
		return err
	})
	g.Go(func() (err error) {
		snap.feedback, err = s.analyticsRepo.FeedbackSnapshots(qdb)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func buildPlatformAnalytics(snap *analyticsSnapshots, now time.Time) *dto.PlatformAnalytics {
	since := now.Add(-recentWindow)
	out := &dto.PlatformAnalytics{GeneratedAt: now}

	profileTimes := make([]time.Time, 0, len(snap.profiles))
	for _, p := range snap.profiles {
		profileTimes = append(profileTimes, p.CreatedAt)
	}

	oppTimes := make([]time.Time, 0, len(snap.opportunities))
	for _, o := range snap.opportunities {
		oppTimes = append(oppTimes, o.CreatedAt)
		if o.IsActive {
			out.Totals.ActiveOpportunities++
		}
	}

	needTimes := make([]time.Time, 0, len(snap.needs))
	for _, n := range snap.needs {
		needTimes = append(needTimes, n.CreatedAt)
		if n.IsActive {
			out.Totals.ActiveNeeds++
		}
	}

	matchTimes := make([]time.Time, 0, len(snap.matches))
	for _, m := range snap.matches {
		matchTimes = append(matchTimes, m.CreatedAt)
		if m.Status == string(models.MatchStatusAccepted) {
			out.Totals.AcceptedMatches++
		}
	}

	out.Totals.Profiles = len(snap.profiles)
	out.Totals.Opportunities = len(snap.opportunities)
	out.Totals.Needs = len(snap.needs)
	out.Totals.Matches = len(snap.matches)
	out.Totals.Feedback = len(snap.feedback)

	out.Growth = dto.GrowthSeries{
		Profiles:      algorithms.GrowthByMonth(profileTimes),
		Opportunities: algorithms.GrowthByMonth(oppTimes),
		Needs:         algorithms.GrowthByMonth(needTimes),
		Matches:       algorithms.GrowthByMonth(matchTimes),
	}

	out.OpportunityCategories = algorithms.SortedBuckets(algorithms.CountBy(snap.opportunities,
		func(o repositories.OpportunitySnapshot) string { return o.Category }, unknownBucket))
	out.OpportunityTypes = algorithms.SortedBuckets(algorithms.CountBy(snap.opportunities,
		func(o repositories.OpportunitySnapshot) string { return o.Type }, unknownBucket))
	out.NeedCategories = algorithms.SortedBuckets(algorithms.CountBy(snap.needs,
		func(n repositories.NeedSnapshot) string { return n.Category }, unknownBucket))
	out.NeedUrgency = algorithms.SortedBuckets(algorithms.CountBy(snap.needs,
		func(n repositories.NeedSnapshot) string { return n.Urgency }, unknownBucket))
	out.MatchStatuses = algorithms.SortedBuckets(algorithms.CountBy(snap.matches,
		func(m repositories.MatchSnapshot) string { return m.Status }, unknownBucket))

	// необязательные поля профиля: незаполненные не попадают в распределение
	out.CompanyStages = algorithms.SortedBuckets(algorithms.CountPresent(snap.profiles,
		func(p repositories.ProfileSnapshot) string { return p.CompanyStage }))
	out.Industries = algorithms.SortedBuckets(algorithms.CountPresent(snap.profiles,
		func(p repositories.ProfileSnapshot) string { return p.Industry }))
	out.TopLocations = algorithms.TopN(algorithms.CountPresent(snap.profiles,
		func(p repositories.ProfileSnapshot) string { return p.Location }), topLocationsLimit)

	out.Recent = dto.RecentActivity{
		Profiles:      algorithms.CountSince(profileTimes, since),
		Opportunities: algorithms.CountSince(oppTimes, since),
		Needs:         algorithms.CountSince(needTimes, since),
		Matches:       algorithms.CountSince(matchTimes, since),
	}

	out.SuccessRate = algorithms.Percent(out.Totals.AcceptedMatches, out.Totals.Matches)
	out.AverageRatings = averageRatings(snap.feedback)

	return out
}

// averageRatings - отдельное среднее для отзывов о платформе и о совпадениях; без оценки запись не учитывается
func averageRatings(feedback []repositories.FeedbackSnapshot) dto.AverageRatings {
	var platform, match []int
	for _, f := range feedback {
		if f.Rating == nil {
			continue
		}
		switch models.FeedbackType(f.Type) {
		case models.FeedbackTypePlatform:
			platform = append(platform, *f.Rating)
		case models.FeedbackTypeMatch:
			match = append(match, *f.Rating)
		}
	}
	return dto.AverageRatings{
		Platform: algorithms.Average(platform),
		Match:    algorithms.Average(match),
	}
}
