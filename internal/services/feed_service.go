package services

import (
	"context"
	"slices"
	"strings"

	"celobuddy/internal/logger"
	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/services/dto"

	"gorm.io/gorm"
)

const (
	DefaultFeedLimit    = 20
	DefaultPreviewLimit = 12
)

// FeedService собирает ленту возможностей. Ошибки чтения не выходят наружу:
// лента деградирует до пустого списка, причина пишется в лог.
type FeedService interface {
	ComposeFeed(ctx context.Context, db *gorm.DB, founderID string) *dto.FeedResponse
	PreviewFeed(ctx context.Context, db *gorm.DB, answers *dto.ChatAnswers) *dto.ChatResultsResponse
}

type FeedServiceImpl struct {
	needRepo        repositories.NeedRepository
	opportunityRepo repositories.OpportunityRepository
	limit           int
	previewLimit    int
}

func NewFeedService(
	needRepo repositories.NeedRepository,
	opportunityRepo repositories.OpportunityRepository,
	limit, previewLimit int,
) FeedService {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if previewLimit <= 0 {
		previewLimit = DefaultPreviewLimit
	}
	return &FeedServiceImpl{
		needRepo:        needRepo,
		opportunityRepo: opportunityRepo,
		limit:           limit,
		previewLimit:    previewLimit,
	}
}

// ComposeFeed: активные, не свои, категории из активных потребностей (если они есть), новые сверху
func (s *FeedServiceImpl) ComposeFeed(ctx context.Context, db *gorm.DB, founderID string) *dto.FeedResponse {
	resp := &dto.FeedResponse{Opportunities: []models.Opportunity{}, Categories: []string{}}

	categories, err := s.needRepo.ActiveCategories(db, founderID)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to load need categories for feed", err, "user_id", founderID)
		return resp
	}
	categories = normalizeCategories(categories)

	opps, err := s.opportunityRepo.FindFeed(db, repositories.FeedQuery{
		ExcludeProviderID: founderID,
		Categories:        categories,
		Limit:             s.limit,
	})
	if err != nil {
		logger.CtxWithError(ctx, "Failed to load feed", err, "user_id", founderID)
		return resp
	}

	resp.Categories = categories
	if opps != nil {
		resp.Opportunities = opps
	}
	return resp
}

// PreviewFeed - анонимная подборка для страницы результатов чата, без исключения провайдера
func (s *FeedServiceImpl) PreviewFeed(ctx context.Context, db *gorm.DB, answers *dto.ChatAnswers) *dto.ChatResultsResponse {
	categories := normalizeCategories(answers.Needs)
	resp := &dto.ChatResultsResponse{Opportunities: []models.Opportunity{}, Categories: categories}

	opps, err := s.opportunityRepo.FindFeed(db, repositories.FeedQuery{
		Categories: categories,
		Limit:      s.previewLimit,
	})
	if err != nil {
		logger.CtxWithError(ctx, "Failed to load preview feed", err, "categories", categories)
		return resp
	}
	if opps != nil {
		resp.Opportunities = opps
	}
	return resp
}

// normalizeCategories - нижний регистр, без пустых и повторов, по алфавиту
func normalizeCategories(in []string) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}
