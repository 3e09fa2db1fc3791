package dto

import "celobuddy/internal/models"

// FeedbackRequest - отзыв о платформе или о совпадении
type FeedbackRequest struct {
	Type     models.FeedbackType `json:"type" validate:"required,feedback-type"`
	Category string              `json:"category" validate:"omitempty,max=50"`
	Message  string              `json:"message" validate:"required,max=5000"`
	Rating   *int                `json:"rating" validate:"omitempty,min=1,max=5"`
	MatchID  *string             `json:"match_id"`
}

// FeedbackPage - данные страницы отзывов
type FeedbackPage struct {
	AcceptedMatches []MatchSummary    `json:"accepted_matches"`
	Feedback        []models.Feedback `json:"feedback"`
}
