package services

import (
	"context"
	"errors"
	"strings"

	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/services/dto"
	"celobuddy/pkg/apperrors"

	"gorm.io/gorm"
)

const feedbackHistoryLimit = 10

type FeedbackService interface {
	Submit(ctx context.Context, db *gorm.DB, userID string, req *dto.FeedbackRequest) (*models.Feedback, error)
	ListMine(ctx context.Context, db *gorm.DB, userID string) ([]models.Feedback, error)
	FeedbackPage(ctx context.Context, db *gorm.DB, userID string) (*dto.FeedbackPage, error)
}

type FeedbackServiceImpl struct {
	feedbackRepo repositories.FeedbackRepository
	matchRepo    repositories.MatchRepository
	matches      MatchService
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	matchRepo repositories.MatchRepository,
	matches MatchService,
) FeedbackService {
	return &FeedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		matchRepo:    matchRepo,
		matches:      matches,
	}
}

// Submit: сообщение обязательно, оценка 1..5 необязательна, match_id только свой
func (s *FeedbackServiceImpl) Submit(ctx context.Context, db *gorm.DB, userID string, req *dto.FeedbackRequest) (*models.Feedback, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, apperrors.ValidationError(map[string]string{"message": "This field is required"})
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, apperrors.ValidationError(map[string]string{"rating": "Value must be between 1 and 5"})
	}

	var matchID *string
	if req.MatchID != nil && *req.MatchID != "" {
		match, err := s.matchRepo.FindByID(db, *req.MatchID)
		if err != nil {
			if errors.Is(err, repositories.ErrMatchNotFound) {
				return nil, apperrors.ValidationError(map[string]string{"match_id": "Match not found"})
			}
			return nil, apperrors.InternalError(err)
		}
		if match.RequesterID != userID {
			return nil, apperrors.ValidationError(map[string]string{"match_id": "Match not found"})
		}
		matchID = &match.ID
	}

	feedback := &models.Feedback{
		UserID:   userID,
		Type:     req.Type,
		Category: req.Category,
		Message:  message,
		Rating:   req.Rating,
		MatchID:  matchID,
	}
	if err := s.feedbackRepo.Create(db, feedback); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return feedback, nil
}

func (s *FeedbackServiceImpl) ListMine(ctx context.Context, db *gorm.DB, userID string) ([]models.Feedback, error) {
	feedback, err := s.feedbackRepo.FindByUser(db, userID, feedbackHistoryLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if feedback == nil {
		feedback = []models.Feedback{}
	}
	return feedback, nil
}

// FeedbackPage - принятые совпадения для отзыва и история отзывов пользователя
func (s *FeedbackServiceImpl) FeedbackPage(ctx context.Context, db *gorm.DB, userID string) (*dto.FeedbackPage, error) {
	accepted, err := s.matches.ListAcceptedForFeedback(ctx, db, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.ListMine(ctx, db, userID)
	if err != nil {
		return nil, err
	}
	return &dto.FeedbackPage{AcceptedMatches: accepted, Feedback: history}, nil
}
