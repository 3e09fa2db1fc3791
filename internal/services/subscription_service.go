package services

import (
	"context"
	"strings"

	"celobuddy/internal/email"
	"celobuddy/internal/logger"
	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/services/dto"
	"celobuddy/pkg/apperrors"

	"gorm.io/gorm"
)

const welcomeSubject = "Welcome to CeloBuddy"

type SubscriptionService interface {
	Subscribe(ctx context.Context, db *gorm.DB, req *dto.SubscribeRequest) (*models.EmailSubscription, error)
}

type SubscriptionServiceImpl struct {
	subscriptionRepo repositories.SubscriptionRepository
	emailProvider    email.Provider
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	emailProvider email.Provider,
) SubscriptionService {
	return &SubscriptionServiceImpl{
		subscriptionRepo: subscriptionRepo,
		emailProvider:    emailProvider,
	}
}

// Subscribe сохраняет подписку и отправляет приветствие.
// Ошибка отправки только логируется: подписка уже сохранена.
func (s *SubscriptionServiceImpl) Subscribe(ctx context.Context, db *gorm.DB, req *dto.SubscribeRequest) (*models.EmailSubscription, error) {
	interests := normalizeCategories(req.Interests)

	sub := &models.EmailSubscription{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Interests:    models.StringList(interests),
		ProjectName:  strings.TrimSpace(req.ProjectName),
		ProjectStage: strings.TrimSpace(req.ProjectStage),
		IsActive:     true,
	}
	if err := s.subscriptionRepo.Create(db, sub); err != nil {
		return nil, apperrors.InternalError(err)
	}

	data := email.TemplateData{
		"ProjectName":  sub.ProjectName,
		"ProjectStage": sub.ProjectStage,
		"Interests":    interests,
	}
	if err := s.emailProvider.SendTemplate([]string{sub.Email}, welcomeSubject, email.TemplateWelcome, data); err != nil {
		logger.CtxWithError(ctx, "Failed to send welcome email", err, "subscription_id", sub.ID)
	}

	return sub, nil
}
