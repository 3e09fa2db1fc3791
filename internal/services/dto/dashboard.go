package dto

import (
	"time"

	"celobuddy/internal/models"
)

// MatchSummary - совпадение с заголовками связанных записей
type MatchSummary struct {
	ID                  string             `json:"id"`
	Status              models.MatchStatus `json:"status"`
	CreatedAt           time.Time          `json:"created_at"`
	OpportunityID       string             `json:"opportunity_id"`
	OpportunityTitle    string             `json:"opportunity_title"`
	OpportunityCategory string             `json:"opportunity_category"`
	OpportunityDesc     string             `json:"opportunity_description,omitempty"`
	NeedID              string             `json:"need_id"`
	NeedTitle           string             `json:"need_title"`
}

// FounderDashboard - сводка на главной странице основателя
type FounderDashboard struct {
	Profile         *models.Profile `json:"profile"`
	RecentNeeds     []models.Need   `json:"recent_needs"`
	ActiveNeeds     int64           `json:"active_needs"`
	RecentMatches   []MatchSummary  `json:"recent_matches"`
	TotalMatches    int64           `json:"total_matches"`
	AcceptedMatches int64           `json:"accepted_matches"`
}
