package services

import (
	"celobuddy/internal/auth"
	"celobuddy/internal/email"
	"celobuddy/internal/repositories"
	"celobuddy/internal/storage"
)

// Repositories - stateless репозитории, общие для всех сервисов
type Repositories struct {
	User         repositories.UserRepository
	Profile      repositories.ProfileRepository
	Need         repositories.NeedRepository
	Opportunity  repositories.OpportunityRepository
	Match        repositories.MatchRepository
	Feedback     repositories.FeedbackRepository
	Subscription repositories.SubscriptionRepository
	Onboarding   repositories.OnboardingRepository
	SwipeSession repositories.SwipeSessionRepository
	Analytics    repositories.AnalyticsRepository
}

func NewRepositories() *Repositories {
	return &Repositories{
		User:         repositories.NewUserRepository(),
		Profile:      repositories.NewProfileRepository(),
		Need:         repositories.NewNeedRepository(),
		Opportunity:  repositories.NewOpportunityRepository(),
		Match:        repositories.NewMatchRepository(),
		Feedback:     repositories.NewFeedbackRepository(),
		Subscription: repositories.NewSubscriptionRepository(),
		Onboarding:   repositories.NewOnboardingRepository(),
		SwipeSession: repositories.NewSwipeSessionRepository(),
		Analytics:    repositories.NewAnalyticsRepository(),
	}
}

// Deps - внешние зависимости сервисов
type Deps struct {
	Tokens        *auth.TokenManager
	Storage       storage.Storage
	EmailProvider email.Provider
	Avatar        AvatarPolicy
	FeedLimit     int
	PreviewLimit  int
}

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	Repos               *Repositories
	AuthService         AuthService
	ProfileService      ProfileService
	OnboardingService   OnboardingService
	NeedService         NeedService
	FeedService         FeedService
	SwipeService        SwipeService
	MatchService        MatchService
	DashboardService    DashboardService
	OpportunityService  OpportunityService
	AnalyticsService    AnalyticsService
	FeedbackService     FeedbackService
	SubscriptionService SubscriptionService
	ExportService       ExportService
}

func NewServiceContainer(repos *Repositories, deps Deps) *ServiceContainer {
	profiles := NewProfileService(repos.Profile, deps.Storage, deps.Avatar)
	feed := NewFeedService(repos.Need, repos.Opportunity, deps.FeedLimit, deps.PreviewLimit)
	matches := NewMatchService(repos.Match)
	analytics := NewAnalyticsService(repos.Analytics, repos.Opportunity, repos.Subscription, repos.Match, repos.Profile)
	export := NewExportService(repos.Profile, repos.Opportunity, repos.Need, repos.Match, repos.Feedback, repos.Subscription)

	return &ServiceContainer{
		Repos:               repos,
		AuthService:         NewAuthService(repos.User, repos.Profile, repos.Onboarding, deps.Tokens),
		ProfileService:      profiles,
		OnboardingService:   NewOnboardingService(repos.Onboarding, repos.Profile, repos.Need),
		NeedService:         NewNeedService(repos.Need),
		FeedService:         feed,
		SwipeService:        NewSwipeService(repos.SwipeSession, repos.Opportunity, repos.Need, repos.Match, feed),
		MatchService:        matches,
		DashboardService:    NewDashboardService(profiles, repos.Need, repos.Match),
		OpportunityService:  NewOpportunityService(repos.Opportunity, repos.Match),
		AnalyticsService:    analytics,
		FeedbackService:     NewFeedbackService(repos.Feedback, repos.Match, matches),
		SubscriptionService: NewSubscriptionService(repos.Subscription, deps.EmailProvider),
		ExportService:       export,
	}
}
