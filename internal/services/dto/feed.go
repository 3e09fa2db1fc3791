package dto

import (
	"time"

	"celobuddy/internal/models"
)

// FeedResponse - лента и категории, по которым она отфильтрована
type FeedResponse struct {
	Opportunities []models.Opportunity `json:"opportunities"`
	Categories    []string             `json:"categories"`
}

// SwipeSessionResponse - состояние сессии карточек
type SwipeSessionResponse struct {
	ID        string              `json:"id"`
	Cursor    int                 `json:"cursor"`
	Total     int                 `json:"total"`
	Remaining int                 `json:"remaining"`
	Exhausted bool                `json:"exhausted"`
	Current   *models.Opportunity `json:"current,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// SwipeRequest - курсор, который видел клиент; проверяется compare-and-set
type SwipeRequest struct {
	Cursor *int `json:"cursor" validate:"omitempty,min=0"`
}

// SwipeResultResponse - результат pass/interest
type SwipeResultResponse struct {
	Session SwipeSessionResponse `json:"session"`
	MatchID string               `json:"match_id,omitempty"`
}
