package services

import (
	"context"

	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/services/dto"
	"celobuddy/pkg/apperrors"

	"gorm.io/gorm"
)

const FeedbackMatchesLimit = 5

type MatchService interface {
	ListMine(ctx context.Context, db *gorm.DB, userID string, status models.MatchStatus, limit int) ([]dto.MatchSummary, error)
	ListAcceptedForFeedback(ctx context.Context, db *gorm.DB, userID string) ([]dto.MatchSummary, error)
}

type MatchServiceImpl struct {
	matchRepo repositories.MatchRepository
}

func NewMatchService(matchRepo repositories.MatchRepository) MatchService {
	return &MatchServiceImpl{matchRepo: matchRepo}
}

func (s *MatchServiceImpl) ListMine(ctx context.Context, db *gorm.DB, userID string, status models.MatchStatus, limit int) ([]dto.MatchSummary, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.NewBadRequestError("Invalid match status: " + string(status))
	}

	matches, err := s.matchRepo.FindByRequester(db, userID, status, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toMatchSummaries(matches), nil
}

// ListAcceptedForFeedback - последние принятые совпадения, о которых можно оставить отзыв
func (s *MatchServiceImpl) ListAcceptedForFeedback(ctx context.Context, db *gorm.DB, userID string) ([]dto.MatchSummary, error) {
	return s.ListMine(ctx, db, userID, models.MatchStatusAccepted, FeedbackMatchesLimit)
}

func toMatchSummaries(matches []models.Match) []dto.MatchSummary {
	out := make([]dto.MatchSummary, 0, len(matches))
	for _, m := range matches {
		out = append(out, toMatchSummary(m))
	}
	return out
}

func toMatchSummary(m models.Match) dto.MatchSummary {
	summary := dto.MatchSummary{
		ID:            m.ID,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		OpportunityID: m.OpportunityID,
		NeedID:        m.NeedID,
	}
	if m.Opportunity != nil {
		summary.OpportunityTitle = m.Opportunity.Title
		summary.OpportunityCategory = m.Opportunity.Category
		summary.OpportunityDesc = m.Opportunity.Description
	}
	if m.Need != nil {
		summary.NeedTitle = m.Need.Title
	}
	return summary
}
