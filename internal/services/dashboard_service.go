package services

import (
	"context"

	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/services/dto"
	"celobuddy/pkg/apperrors"

	"gorm.io/gorm"
)

const dashboardRecentLimit = 3

type DashboardService interface {
	GetFounderDashboard(ctx context.Context, db *gorm.DB, userID string) (*dto.FounderDashboard, error)
}

type DashboardServiceImpl struct {
	profiles  ProfileService
	needRepo  repositories.NeedRepository
	matchRepo repositories.MatchRepository
}

func NewDashboardService(
	profiles ProfileService,
	needRepo repositories.NeedRepository,
	matchRepo repositories.MatchRepository,
) DashboardService {
	return &DashboardServiceImpl{
		profiles:  profiles,
		needRepo:  needRepo,
		matchRepo: matchRepo,
	}
}

// GetFounderDashboard - без заполненного профиля ответ ErrProfileIncomplete с redirect на онбординг
func (s *DashboardServiceImpl) GetFounderDashboard(ctx context.Context, db *gorm.DB, userID string) (*dto.FounderDashboard, error) {
	profile, err := s.profiles.RequireComplete(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	recentNeeds, err := s.needRepo.FindRecentActive(db, userID, dashboardRecentLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if recentNeeds == nil {
		recentNeeds = []models.Need{}
	}

	activeNeeds, err := s.needRepo.CountActiveByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	matches, err := s.matchRepo.FindByRequester(db, userID, "", dashboardRecentLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	total, err := s.matchRepo.CountByRequester(db, userID, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	accepted, err := s.matchRepo.CountByRequester(db, userID, models.MatchStatusAccepted)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.FounderDashboard{
		Profile:         profile,
		RecentNeeds:     recentNeeds,
		ActiveNeeds:     activeNeeds,
		RecentMatches:   toMatchSummaries(matches),
		TotalMatches:    total,
		AcceptedMatches: accepted,
	}, nil
}
