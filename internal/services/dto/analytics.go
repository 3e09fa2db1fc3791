package dto

import (
	"time"

	"celobuddy/internal/algorithms"
)

// AdminDashboard - шесть счетчиков админской главной
type AdminDashboard struct {
	TotalOpportunities  int64            `json:"total_opportunities"`
	ActiveOpportunities int64            `json:"active_opportunities"`
	TotalSubscriptions  int64            `json:"total_subscriptions"`
	ActiveSubscriptions int64            `json:"active_subscriptions"`
	TotalMatches        int64            `json:"total_matches"`
	TotalProfiles       int64            `json:"total_profiles"`
	Categories          map[string]int64 `json:"categories"`
}

type AnalyticsTotals struct {
	Profiles            int `json:"profiles"`
	Opportunities       int `json:"opportunities"`
	ActiveOpportunities int `json:"active_opportunities"`
	Needs               int `json:"needs"`
	ActiveNeeds         int `json:"active_needs"`
	Matches             int `json:"matches"`
	AcceptedMatches     int `json:"accepted_matches"`
	Feedback            int `json:"feedback"`
}

// RecentActivity - записи за последние 30 дней
type RecentActivity struct {
	Profiles      int `json:"profiles"`
	Opportunities int `json:"opportunities"`
	Needs         int `json:"needs"`
	Matches       int `json:"matches"`
}

type GrowthSeries struct {
	Profiles      []algorithms.Bucket `json:"profiles"`
	Opportunities []algorithms.Bucket `json:"opportunities"`
	Needs         []algorithms.Bucket `json:"needs"`
	Matches       []algorithms.Bucket `json:"matches"`
}

// AverageRatings - средние оценки по типам отзывов, 0 если оценок нет
type AverageRatings struct {
	Platform float64 `json:"platform"`
	Match    float64 `json:"match"`
}

// PlatformAnalytics - страница аналитики
type PlatformAnalytics struct {
	Totals                AnalyticsTotals     `json:"totals"`
	Growth                GrowthSeries        `json:"growth"`
	OpportunityCategories []algorithms.Bucket `json:"opportunity_categories"`
	OpportunityTypes      []algorithms.Bucket `json:"opportunity_types"`
	NeedCategories        []algorithms.Bucket `json:"need_categories"`
	NeedUrgency           []algorithms.Bucket `json:"need_urgency"`
	MatchStatuses         []algorithms.Bucket `json:"match_statuses"`
	CompanyStages         []algorithms.Bucket `json:"company_stages"`
	Industries            []algorithms.Bucket `json:"industries"`
	TopLocations          []algorithms.Bucket `json:"top_locations"`
	Recent                RecentActivity      `json:"recent"`
	SuccessRate           int                 `json:"success_rate"`
	AverageRatings        AverageRatings      `json:"average_ratings"`
	GeneratedAt           time.Time           `json:"generated_at"`
}
